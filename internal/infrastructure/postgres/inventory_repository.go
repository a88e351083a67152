package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/stock-alertas-api/internal/domain/entity"
	"github.com/jhoicas/stock-alertas-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)
var _ repository.InventoryTransactionRepository = (*InventoryTransactionRepo)(nil)

// InventoryRepo implementación de InventoryRepository sobre PostgreSQL (usable con pool o tx).
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// Create inserta el registro de inventario de un producto en una bodega.
func (r *InventoryRepo) Create(ctx context.Context, record *entity.InventoryRecord) error {
	query := `
		INSERT INTO inventory (id, product_id, warehouse_id, current_stock, reserved_stock,
		                       available_stock, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		record.ID, record.ProductID, record.WarehouseID, record.CurrentStock,
		record.ReservedStock, record.AvailableStock, record.CreatedBy,
		record.CreatedAt, record.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert inventory: %w", err)
	}
	return nil
}

// InventoryTransactionRepo implementación del registro de auditoría sobre PostgreSQL.
type InventoryTransactionRepo struct {
	q Querier
}

// NewInventoryTransactionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryTransactionRepository(q Querier) *InventoryTransactionRepo {
	return &InventoryTransactionRepo{q: q}
}

// Create inserta una transacción de inventario (append-only, nunca se actualiza).
func (r *InventoryTransactionRepo) Create(ctx context.Context, tx *entity.InventoryTransaction) error {
	query := `
		INSERT INTO inventory_transactions (id, product_id, warehouse_id, transaction_type,
		                                    quantity, reason, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		tx.ID, tx.ProductID, tx.WarehouseID, tx.Type, tx.Quantity, tx.Reason, tx.CreatedBy, tx.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert inventory transaction: %w", err)
	}
	return nil
}
