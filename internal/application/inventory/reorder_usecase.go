package inventory

import (
	"context"
	"sort"
	"time"

	"github.com/jhoicas/stock-alertas-api/internal/application/dto"
	dominv "github.com/jhoicas/stock-alertas-api/internal/domain/inventory"
	"github.com/jhoicas/stock-alertas-api/internal/domain/repository"
	"github.com/jhoicas/stock-alertas-api/pkg/logger"
)

// reorderWindowDays ventana fija de la velocidad usada para reposición;
// la cantidad sugerida cubre ese mismo número de días de venta.
const reorderWindowDays = 30

// ReorderUseCase genera sugerencias de reposición para los productos bajo
// umbral con proveedor activo. A diferencia de las alertas, aquí un proveedor
// inactivo excluye la fila: sin proveedor activo no hay a quién pedirle.
type ReorderUseCase struct {
	lowStockRepo repository.LowStockRepository
	salesRepo    repository.SalesRepository
	log          *logger.Logger
}

// NewReorderUseCase construye el caso de uso.
func NewReorderUseCase(
	lowStockRepo repository.LowStockRepository,
	salesRepo repository.SalesRepository,
	log *logger.Logger,
) *ReorderUseCase {
	return &ReorderUseCase{lowStockRepo: lowStockRepo, salesRepo: salesRepo, log: log}
}

// Suggest calcula las sugerencias de la empresa. Cantidad sugerida:
// floor(velocidad_diaria_30d × 30) con ventas recientes, si no la cantidad de
// pedido por defecto del producto. Orden: stock ascendente, luego velocidad
// descendente. Sin paginación: devuelve el conjunto completo.
func (uc *ReorderUseCase) Suggest(ctx context.Context, companyID string) (*dto.ReorderSuggestionsResponse, error) {
	rows, err := uc.lowStockRepo.ListReorderCandidates(ctx, companyID)
	if err != nil {
		return nil, err
	}

	since := time.Now().UTC().AddDate(0, 0, -reorderWindowDays)
	totals, err := uc.salesRepo.DailyTotals(ctx, companyID, since, "")
	if err != nil {
		return nil, err
	}
	byPair := make(map[velocityKey][]int)
	for _, t := range totals {
		key := velocityKey{t.ProductID, t.WarehouseID}
		byPair[key] = append(byPair[key], t.TotalSold)
	}

	type ranked struct {
		dto      dto.ReorderSuggestionDTO
		dailyAvg float64
	}
	suggestions := make([]ranked, 0, len(rows))
	for _, row := range rows {
		vel := dominv.CalculateVelocity(byPair[velocityKey{row.ProductID, row.WarehouseID}])

		suggested := row.ReorderQuantity
		if vel.AvgDailySales > 0 {
			suggested = int(vel.AvgDailySales * reorderWindowDays)
		}

		suggestions = append(suggestions, ranked{
			dto: dto.ReorderSuggestionDTO{
				ProductID:              row.ProductID,
				SKU:                    row.SKU,
				ProductName:            row.ProductName,
				CurrentStock:           row.CurrentStock,
				Warehouse:              row.WarehouseName,
				Supplier:               row.SupplierName,
				SupplierEmail:          row.SupplierEmail,
				SuggestedOrderQuantity: suggested,
				DefaultReorderQuantity: row.ReorderQuantity,
			},
			dailyAvg: vel.AvgDailySales,
		})
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		if suggestions[i].dto.CurrentStock != suggestions[j].dto.CurrentStock {
			return suggestions[i].dto.CurrentStock < suggestions[j].dto.CurrentStock
		}
		return suggestions[i].dailyAvg > suggestions[j].dailyAvg
	})

	out := make([]dto.ReorderSuggestionDTO, 0, len(suggestions))
	for _, s := range suggestions {
		out = append(out, s.dto)
	}

	uc.log.Info().
		Str("company_id", companyID).
		Int("suggestions", len(out)).
		Msg("sugerencias de reposición generadas")

	return &dto.ReorderSuggestionsResponse{
		Success:            true,
		ReorderSuggestions: out,
		GeneratedAt:        time.Now().UTC(),
	}, nil
}
