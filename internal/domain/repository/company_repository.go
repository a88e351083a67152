package repository

import (
	"context"

	"github.com/jhoicas/stock-alertas-api/internal/domain/entity"
)

// CompanyRepository acceso de lectura a empresas.
type CompanyRepository interface {
	// GetByID devuelve la empresa o nil si no existe.
	GetByID(ctx context.Context, id string) (*entity.Company, error)
}
