package repository

import (
	"context"

	"github.com/jhoicas/stock-alertas-api/internal/domain/entity"
)

// InventoryRepository persistencia de registros de inventario (producto × bodega).
type InventoryRepository interface {
	Create(ctx context.Context, record *entity.InventoryRecord) error
}

// InventoryTransactionRepository persistencia del registro de auditoría (append-only).
type InventoryTransactionRepository interface {
	Create(ctx context.Context, tx *entity.InventoryTransaction) error
}
