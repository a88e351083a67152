package entity

import "time"

// Tipos de transacción de inventario. Solo INITIAL_STOCK se genera en este
// servicio; el resto los producen los procesos externos de venta y recepción.
const (
	TxTypeInitialStock = "INITIAL_STOCK"
)

// InventoryTransaction es el registro de auditoría de una mutación de inventario.
// Append-only: una fila por operación, nunca se actualiza.
type InventoryTransaction struct {
	ID          string
	ProductID   string
	WarehouseID string
	Type        string
	Quantity    int
	Reason      string
	CreatedBy   string
	CreatedAt   time.Time
}
