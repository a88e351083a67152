package entity

import "time"

// SalesTransaction es un hecho de venta inmutable (append-only).
// Es la fuente para el cálculo de velocidad de ventas.
type SalesTransaction struct {
	ID           string
	ProductID    string
	WarehouseID  string
	SaleDate     time.Time
	QuantitySold int // siempre > 0
}
