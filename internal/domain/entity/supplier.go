package entity

import "time"

// Supplier representa un proveedor. La relación desde Product es opcional (cero o uno).
type Supplier struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
