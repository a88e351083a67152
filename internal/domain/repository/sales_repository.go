package repository

import (
	"context"
	"time"
)

// DailySalesTotal total vendido de un producto en una bodega durante un día
// con al menos una venta. Los días sin ventas no producen fila.
type DailySalesTotal struct {
	ProductID   string
	WarehouseID string
	SaleDay     time.Time
	TotalSold   int
}

// SalesRepository consultas de solo lectura sobre el historial de ventas.
type SalesRepository interface {
	// DailyTotals agrupa las ventas de la empresa por producto, bodega y día
	// desde la fecha dada. warehouseID vacío = todas las bodegas.
	DailyTotals(ctx context.Context, companyID string, since time.Time, warehouseID string) ([]DailySalesTotal, error)
}
