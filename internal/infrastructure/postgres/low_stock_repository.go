package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/stock-alertas-api/internal/domain/repository"
)

var _ repository.LowStockRepository = (*LowStockRepo)(nil)

// LowStockRepo consultas de lectura para alertas de stock bajo y reposición.
type LowStockRepo struct {
	q Querier
}

// NewLowStockRepository construye el adaptador de lectura.
func NewLowStockRepository(q Querier) *LowStockRepo {
	return &LowStockRepo{q: q}
}

// ListLowStock devuelve las filas candidatas a alerta: producto activo de la
// empresa, bodega activa y stock actual <= umbral. El proveedor se adjunta con
// LEFT JOIN sin filtrar por is_active: la alerta muestra el proveedor vinculado
// aunque esté inactivo (las sugerencias de reposición sí lo exigen activo).
func (r *LowStockRepo) ListLowStock(ctx context.Context, filter repository.LowStockFilter) ([]repository.LowStockRow, error) {
	f := &filterSet{}
	f.Add("p.company_id = %s", filter.CompanyID)
	f.AddRaw("p.is_active")
	f.AddRaw("w.is_active")
	f.AddRaw("i.current_stock <= p.low_stock_threshold")
	if !filter.IncludeZeroStock {
		f.AddRaw("i.current_stock > 0")
	}
	if filter.WarehouseID != "" {
		f.Add("w.id = %s", filter.WarehouseID)
	}
	where, args := f.Where()

	query := fmt.Sprintf(`
		SELECT p.id, p.sku, p.name, p.price, p.low_stock_threshold,
		       w.id, w.name,
		       i.current_stock, i.reserved_stock, i.available_stock,
		       s.id, s.name, s.email, s.phone
		FROM products p
		JOIN inventory i ON i.product_id = p.id
		JOIN warehouses w ON w.id = i.warehouse_id
		LEFT JOIN suppliers s ON s.id = p.supplier_id
		%s`, where)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("lowstock.ListLowStock: %w", err)
	}
	defer rows.Close()

	var list []repository.LowStockRow
	for rows.Next() {
		var row repository.LowStockRow
		if err := rows.Scan(
			&row.ProductID, &row.SKU, &row.ProductName, &row.Price, &row.LowStockThreshold,
			&row.WarehouseID, &row.WarehouseName,
			&row.CurrentStock, &row.ReservedStock, &row.AvailableStock,
			&row.SupplierID, &row.SupplierName, &row.SupplierEmail, &row.SupplierPhone,
		); err != nil {
			return nil, fmt.Errorf("lowstock.ListLowStock scan: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// ListReorderCandidates devuelve los productos bajo umbral que tienen proveedor
// activo. El JOIN (no LEFT) con s.is_active excluye productos sin proveedor o
// con proveedor inactivo, comportamiento intencional de la reposición.
func (r *LowStockRepo) ListReorderCandidates(ctx context.Context, companyID string) ([]repository.ReorderRow, error) {
	f := &filterSet{}
	f.Add("p.company_id = %s", companyID)
	f.AddRaw("p.is_active")
	f.AddRaw("w.is_active")
	f.AddRaw("s.is_active")
	f.AddRaw("i.current_stock <= p.low_stock_threshold")
	where, args := f.Where()

	query := fmt.Sprintf(`
		SELECT p.id, p.sku, p.name, p.reorder_quantity,
		       i.current_stock, w.id, w.name,
		       s.name, s.email
		FROM products p
		JOIN inventory i ON i.product_id = p.id
		JOIN warehouses w ON w.id = i.warehouse_id
		JOIN suppliers s ON s.id = p.supplier_id
		%s`, where)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("lowstock.ListReorderCandidates: %w", err)
	}
	defer rows.Close()

	var list []repository.ReorderRow
	for rows.Next() {
		var row repository.ReorderRow
		if err := rows.Scan(
			&row.ProductID, &row.SKU, &row.ProductName, &row.ReorderQuantity,
			&row.CurrentStock, &row.WarehouseID, &row.WarehouseName,
			&row.SupplierName, &row.SupplierEmail,
		); err != nil {
			return nil, fmt.Errorf("lowstock.ListReorderCandidates scan: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}
