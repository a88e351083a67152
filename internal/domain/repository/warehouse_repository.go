package repository

import (
	"context"

	"github.com/jhoicas/stock-alertas-api/internal/domain/entity"
)

// WarehouseRepository acceso de lectura a bodegas.
type WarehouseRepository interface {
	// GetByID devuelve la bodega o nil si no existe.
	GetByID(ctx context.Context, id string) (*entity.Warehouse, error)
}
