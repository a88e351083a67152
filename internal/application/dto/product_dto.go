package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body de POST /add_product. Los campos requeridos son
// punteros para distinguir "ausente" de "valor cero" y poder nombrar el campo
// faltante en el error. Price acepta número o string JSON (decimal exacto,
// nunca float64, para no arrastrar error de redondeo monetario).
type CreateProductRequest struct {
	SKU               *string          `json:"sku"`
	Name              *string          `json:"name"`
	Price             *decimal.Decimal `json:"price"`
	WarehouseID       *string          `json:"warehouse_id"`
	Quantity          *int             `json:"quantity"`
	Description       string           `json:"description"`
	SupplierID        *string          `json:"supplier_id"`
	CompanyID         string           `json:"company_id"`
	LowStockThreshold *int             `json:"low_stock_threshold"`
	CreatedBy         string           `json:"created_by"`
}

// ProductCreatedData datos del producto recién creado (eco de la entrada).
type ProductCreatedData struct {
	ProductID    string    `json:"product_id"`
	SKU          string    `json:"sku"`
	Name         string    `json:"name"`
	Price        string    `json:"price"`
	WarehouseID  string    `json:"warehouse_id"`
	InitialStock int       `json:"initial_stock"`
	CreatedAt    time.Time `json:"created_at"`
}

// ProductCreatedResponse respuesta 201 de POST /add_product.
type ProductCreatedResponse struct {
	Success bool               `json:"success"`
	Message string             `json:"message"`
	Data    ProductCreatedData `json:"data"`
}
