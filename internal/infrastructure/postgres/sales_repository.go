package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/stock-alertas-api/internal/domain/repository"
)

var _ repository.SalesRepository = (*SalesRepo)(nil)

// SalesRepo consultas de solo lectura sobre sales_transactions.
type SalesRepo struct {
	q Querier
}

// NewSalesRepository construye el adaptador de historial de ventas.
func NewSalesRepository(q Querier) *SalesRepo {
	return &SalesRepo{q: q}
}

// DailyTotals agrupa las ventas por producto, bodega y día desde la fecha dada.
// Solo produce filas para días con al menos una venta, que es exactamente lo
// que el cálculo de velocidad necesita (los días en cero no promedian).
func (r *SalesRepo) DailyTotals(ctx context.Context, companyID string, since time.Time, warehouseID string) ([]repository.DailySalesTotal, error) {
	f := &filterSet{}
	f.Add("p.company_id = %s", companyID)
	f.Add("st.sale_date >= %s", since)
	if warehouseID != "" {
		f.Add("st.warehouse_id = %s", warehouseID)
	}
	where, args := f.Where()

	query := fmt.Sprintf(`
		SELECT st.product_id, st.warehouse_id, DATE(st.sale_date) AS sale_day,
		       SUM(st.quantity_sold) AS total_sold
		FROM sales_transactions st
		JOIN products p ON p.id = st.product_id
		%s
		GROUP BY st.product_id, st.warehouse_id, DATE(st.sale_date)`, where)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("sales.DailyTotals: %w", err)
	}
	defer rows.Close()

	var totals []repository.DailySalesTotal
	for rows.Next() {
		var t repository.DailySalesTotal
		if err := rows.Scan(&t.ProductID, &t.WarehouseID, &t.SaleDay, &t.TotalSold); err != nil {
			return nil, fmt.Errorf("sales.DailyTotals scan: %w", err)
		}
		totals = append(totals, t)
	}
	return totals, rows.Err()
}
