package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto o SKU del catálogo (multi-bodega).
// El stock por bodega vive en InventoryRecord; aquí solo quedan los atributos
// del producto y los parámetros de reposición.
type Product struct {
	ID                string
	CompanyID         string
	SKU               string // único global
	Name              string
	Description       string
	Price             *decimal.Decimal // precio de venta; NULL permitido en la tabla
	LowStockThreshold int              // umbral de alerta de stock bajo (default 10)
	ReorderQuantity   int              // cantidad de pedido por defecto cuando no hay velocidad de ventas
	SupplierID        *string          // proveedor opcional (cero o uno)
	IsActive          bool
	CreatedBy         string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
