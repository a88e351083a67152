package entity

import "time"

// InventoryRecord representa el stock de un producto en una bodega.
// Se crea de forma atómica junto con el producto; las mutaciones posteriores
// llegan por los procesos de venta y recepción, fuera de este servicio.
type InventoryRecord struct {
	ID             string
	ProductID      string
	WarehouseID    string
	CurrentStock   int
	ReservedStock  int
	AvailableStock int
	CreatedBy      string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
