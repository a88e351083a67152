package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/stock-alertas-api/internal/application/dto"
	"github.com/jhoicas/stock-alertas-api/internal/domain"
	"github.com/jhoicas/stock-alertas-api/internal/domain/entity"
	"github.com/jhoicas/stock-alertas-api/internal/domain/repository"
	"github.com/jhoicas/stock-alertas-api/pkg/logger"
)

// Valores por defecto de la creación de productos.
const (
	DefaultLowStockThreshold = 10
	DefaultCreatedBy         = "system"
)

// CreateProductUseCase crea un producto con su inventario inicial y el
// registro de auditoría INITIAL_STOCK en una sola transacción. La validación
// corre completa antes de la transacción: una entrada inválida nunca deja
// escritura parcial.
type CreateProductUseCase struct {
	tx  TxRunner
	log *logger.Logger
}

// NewCreateProductUseCase construye el caso de uso.
func NewCreateProductUseCase(tx TxRunner, log *logger.Logger) *CreateProductUseCase {
	return &CreateProductUseCase{tx: tx, log: log}
}

// Create valida y persiste el producto. Errores: campo faltante o inválido ->
// ErrInvalidInput (nombrando el campo); SKU ya existente detectado en el
// pre-check -> ErrInvalidInput; SKU rechazado por el constraint único pese al
// pre-check (creación concurrente) -> ErrDuplicate, que el transporte mapea a
// 409 y no a un 500 genérico.
func (uc *CreateProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductCreatedData, error) {
	required := []struct {
		name    string
		present bool
	}{
		{"sku", in.SKU != nil},
		{"name", in.Name != nil},
		{"price", in.Price != nil},
		{"warehouse_id", in.WarehouseID != nil},
		{"quantity", in.Quantity != nil},
	}
	for _, field := range required {
		if !field.present {
			return nil, domain.Invalidf("campo requerido faltante: %s", field.name)
		}
	}

	sku := strings.TrimSpace(*in.SKU)
	name := strings.TrimSpace(*in.Name)
	warehouseID := *in.WarehouseID
	quantity := *in.Quantity
	price := *in.Price

	if sku == "" {
		return nil, domain.Invalidf("sku no puede estar vacío")
	}
	if name == "" {
		return nil, domain.Invalidf("name no puede estar vacío")
	}
	if quantity < 0 {
		return nil, domain.Invalidf("quantity no puede ser negativa")
	}
	if price.LessThan(decimal.Zero) {
		return nil, domain.Invalidf("price no puede ser negativo")
	}

	threshold := DefaultLowStockThreshold
	if in.LowStockThreshold != nil {
		if *in.LowStockThreshold < 0 {
			return nil, domain.Invalidf("low_stock_threshold no puede ser negativo")
		}
		threshold = *in.LowStockThreshold
	}
	createdBy := in.CreatedBy
	if createdBy == "" {
		createdBy = DefaultCreatedBy
	}

	now := time.Now().UTC()
	product := &entity.Product{
		ID:                uuid.New().String(),
		CompanyID:         in.CompanyID,
		SKU:               sku,
		Name:              name,
		Description:       in.Description,
		Price:             &price,
		LowStockThreshold: threshold,
		SupplierID:        in.SupplierID,
		IsActive:          true,
		CreatedBy:         createdBy,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	err := uc.tx.Run(ctx, func(
		productRepo repository.ProductRepository,
		inventoryRepo repository.InventoryRepository,
		auditRepo repository.InventoryTransactionRepository,
		warehouseRepo repository.WarehouseRepository,
	) error {
		warehouse, err := warehouseRepo.GetByID(ctx, warehouseID)
		if err != nil {
			return err
		}
		if warehouse == nil {
			return domain.Invalidf("la bodega %s no existe", warehouseID)
		}

		// Pre-check de unicidad. El constraint único de la tabla es la
		// garantía final: dos creaciones concurrentes pueden pasar ambas por
		// aquí y solo una sobrevive al INSERT.
		existing, err := productRepo.GetBySKU(ctx, sku)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.Invalidf("ya existe un producto con sku %s", sku)
		}

		if err := productRepo.Create(ctx, product); err != nil {
			return err
		}

		if err := inventoryRepo.Create(ctx, &entity.InventoryRecord{
			ID:             uuid.New().String(),
			ProductID:      product.ID,
			WarehouseID:    warehouseID,
			CurrentStock:   quantity,
			ReservedStock:  0,
			AvailableStock: quantity,
			CreatedBy:      createdBy,
			CreatedAt:      now,
			UpdatedAt:      now,
		}); err != nil {
			return err
		}

		return auditRepo.Create(ctx, &entity.InventoryTransaction{
			ID:          uuid.New().String(),
			ProductID:   product.ID,
			WarehouseID: warehouseID,
			Type:        entity.TxTypeInitialStock,
			Quantity:    quantity,
			Reason:      "Product creation",
			CreatedBy:   createdBy,
			CreatedAt:   now,
		})
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			// Carrera check-then-act perdida contra otra creación del mismo SKU.
			uc.log.Warn().Str("sku", sku).Msg("condición de carrera detectada en creación de producto")
		}
		return nil, err
	}

	uc.log.Info().
		Str("sku", sku).
		Str("product_id", product.ID).
		Str("created_by", createdBy).
		Msg("producto creado")

	return &dto.ProductCreatedData{
		ProductID:    product.ID,
		SKU:          sku,
		Name:         name,
		Price:        price.String(),
		WarehouseID:  warehouseID,
		InitialStock: quantity,
		CreatedAt:    now,
	}, nil
}
