package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// LowStockRow fila cruda del join productos × inventario × bodegas × proveedores
// para un producto bajo su umbral. La produce la DB; el use case la enriquece.
type LowStockRow struct {
	ProductID         string
	SKU               string
	ProductName       string
	Price             *decimal.Decimal // NULL permitido
	LowStockThreshold int
	WarehouseID       string
	WarehouseName     string
	CurrentStock      int
	ReservedStock     int
	AvailableStock    int

	// Proveedor opcional. Aquí se incluye aunque esté inactivo: la alerta
	// muestra el proveedor vinculado tal cual, a diferencia de las sugerencias
	// de reposición que exigen proveedor activo.
	SupplierID    *string
	SupplierName  *string
	SupplierEmail *string
	SupplierPhone *string
}

// LowStockFilter condiciones opcionales del listado de stock bajo.
type LowStockFilter struct {
	CompanyID        string
	IncludeZeroStock bool   // false = excluir filas con stock en cero
	WarehouseID      string // vacío = todas las bodegas
}

// ReorderRow fila cruda de candidatos a reposición. Solo incluye productos con
// proveedor vinculado y activo (sin proveedor activo no hay a quién comprarle).
type ReorderRow struct {
	ProductID       string
	SKU             string
	ProductName     string
	ReorderQuantity int
	CurrentStock    int
	WarehouseID     string
	WarehouseName   string
	SupplierName    string
	SupplierEmail   string
}

// LowStockRepository consultas de lectura para alertas y sugerencias de reposición.
type LowStockRepository interface {
	// ListLowStock devuelve los productos activos de la empresa, en bodegas
	// activas, con stock actual <= umbral, aplicando los filtros opcionales.
	ListLowStock(ctx context.Context, filter LowStockFilter) ([]LowStockRow, error)

	// ListReorderCandidates devuelve los productos bajo umbral con proveedor activo.
	ListReorderCandidates(ctx context.Context, companyID string) ([]ReorderRow, error)
}
