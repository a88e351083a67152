package entity

import "time"

// Company representa una organización/tenant del sistema. Las consultas de
// alertas y reposición siempre se filtran por empresa activa.
type Company struct {
	ID        string
	Name      string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
