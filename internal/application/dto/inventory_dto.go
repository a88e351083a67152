package dto

import "time"

// WarehouseDTO bodega de una alerta.
type WarehouseDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// StockInfoDTO estado de stock de la fila de alerta.
type StockInfoDTO struct {
	CurrentStock       int     `json:"current_stock"`
	ReservedStock      int     `json:"reserved_stock"`
	AvailableStock     int     `json:"available_stock"`
	LowStockThreshold  int     `json:"low_stock_threshold"`
	StockCoverageRatio float64 `json:"stock_coverage_ratio"` // % del umbral, 1 decimal
}

// SalesAnalysisDTO velocidad de ventas y proyección de agotamiento.
type SalesAnalysisDTO struct {
	AvgDailySales      float64 `json:"avg_daily_sales"` // 2 decimales
	TotalRecentSales   int     `json:"total_recent_sales"`
	AnalysisPeriodDays int     `json:"analysis_period_days"`
	DaysUntilStockout  *int    `json:"days_until_stockout"` // null sin señal de ventas
}

// SupplierDTO proveedor vinculado al producto (puede venir inactivo; la alerta
// lo muestra igual para que el operador tenga a quién contactar).
type SupplierDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// AlertDTO una alerta de stock bajo. Derivada, nunca persistida.
type AlertDTO struct {
	ProductID     string           `json:"product_id"`
	SKU           string           `json:"sku"`
	ProductName   string           `json:"product_name"`
	Price         *string          `json:"price"` // null cuando el producto no tiene precio
	Warehouse     WarehouseDTO     `json:"warehouse"`
	StockInfo     StockInfoDTO     `json:"stock_info"`
	SalesAnalysis SalesAnalysisDTO `json:"sales_analysis"`
	Supplier      *SupplierDTO     `json:"supplier"` // null sin proveedor vinculado
	UrgencyLevel  string           `json:"urgency_level"`
	GeneratedAt   time.Time        `json:"generated_at"`
}

// AlertSummaryDTO estadísticas del conjunto de alertas generado.
type AlertSummaryDTO struct {
	TotalAlerts             int `json:"total_alerts"`
	CriticalAlerts          int `json:"critical_alerts"`
	HighPriorityAlerts      int `json:"high_priority_alerts"`
	ZeroStockProducts       int `json:"zero_stock_products"`
	ProductsWithoutSupplier int `json:"products_without_supplier"`
}

// AlertParametersDTO eco de los parámetros efectivos de la consulta.
type AlertParametersDTO struct {
	DaysLookback     int     `json:"days_lookback"`
	IncludeZeroStock bool    `json:"include_zero_stock"`
	WarehouseFilter  *string `json:"warehouse_filter"`
}

// LowStockAlertsResponse respuesta de GET /api/v1/inventory/low-stock-alerts/{company_id}.
type LowStockAlertsResponse struct {
	Success     bool               `json:"success"`
	CompanyID   string             `json:"company_id"`
	Summary     AlertSummaryDTO    `json:"summary"`
	Alerts      []AlertDTO         `json:"alerts"`
	GeneratedAt time.Time          `json:"generated_at"`
	Parameters  AlertParametersDTO `json:"parameters"`
}

// ReorderSuggestionDTO sugerencia de reposición para un producto bajo umbral
// con proveedor activo.
type ReorderSuggestionDTO struct {
	ProductID              string `json:"product_id"`
	SKU                    string `json:"sku"`
	ProductName            string `json:"product_name"`
	CurrentStock           int    `json:"current_stock"`
	Warehouse              string `json:"warehouse"`
	Supplier               string `json:"supplier"`
	SupplierEmail          string `json:"supplier_email"`
	SuggestedOrderQuantity int    `json:"suggested_order_quantity"`
	DefaultReorderQuantity int    `json:"default_reorder_quantity"`
}

// ReorderSuggestionsResponse respuesta de GET /api/v1/inventory/reorder-suggestions/{company_id}.
type ReorderSuggestionsResponse struct {
	Success            bool                   `json:"success"`
	ReorderSuggestions []ReorderSuggestionDTO `json:"reorder_suggestions"`
	GeneratedAt        time.Time              `json:"generated_at"`
}
