package usecase

import (
	"context"

	"github.com/jhoicas/stock-alertas-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción del store con repos atados a
// ella. Si fn devuelve error la transacción se revierte completa: ningún
// lector ve estado parcial.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		inventoryRepo repository.InventoryRepository,
		auditRepo repository.InventoryTransactionRepository,
		warehouseRepo repository.WarehouseRepository,
	) error) error
}
