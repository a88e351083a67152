package repository

import (
	"context"

	"github.com/jhoicas/stock-alertas-api/internal/domain/entity"
)

// ProductRepository persistencia de productos.
type ProductRepository interface {
	// GetBySKU devuelve el producto con ese SKU o nil si no existe. El SKU es único global.
	GetBySKU(ctx context.Context, sku string) (*entity.Product, error)

	// Create inserta el producto. Devuelve domain.ErrDuplicate si el constraint
	// único de SKU lo rechaza (cierre autoritativo de la carrera check-then-act).
	Create(ctx context.Context, product *entity.Product) error
}
