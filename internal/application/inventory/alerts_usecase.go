package inventory

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/jhoicas/stock-alertas-api/internal/application/dto"
	"github.com/jhoicas/stock-alertas-api/internal/domain"
	dominv "github.com/jhoicas/stock-alertas-api/internal/domain/inventory"
	"github.com/jhoicas/stock-alertas-api/internal/domain/repository"
	"github.com/jhoicas/stock-alertas-api/pkg/logger"
)

// Límites de la ventana de análisis de ventas.
const (
	MinDaysLookback     = 1
	MaxDaysLookback     = 365
	DefaultDaysLookback = 30
)

// GenerateAlertsInput parámetros efectivos de la generación de alertas.
type GenerateAlertsInput struct {
	CompanyID        string
	DaysLookback     int
	IncludeZeroStock bool
	WarehouseID      string // vacío = todas las bodegas
}

// AlertsUseCase ensambla las alertas de stock bajo de una empresa: join de
// catálogo e inventario, velocidad de ventas, proyección de agotamiento,
// orden determinista y estadísticas de resumen. Solo lectura.
type AlertsUseCase struct {
	companyRepo  repository.CompanyRepository
	lowStockRepo repository.LowStockRepository
	salesRepo    repository.SalesRepository
	log          *logger.Logger
}

// NewAlertsUseCase construye el caso de uso.
func NewAlertsUseCase(
	companyRepo repository.CompanyRepository,
	lowStockRepo repository.LowStockRepository,
	salesRepo repository.SalesRepository,
	log *logger.Logger,
) *AlertsUseCase {
	return &AlertsUseCase{
		companyRepo:  companyRepo,
		lowStockRepo: lowStockRepo,
		salesRepo:    salesRepo,
		log:          log,
	}
}

// velocityKey identifica un par producto/bodega en el índice de ventas.
type velocityKey struct {
	productID   string
	warehouseID string
}

// Generate produce las alertas y su resumen. Valida parámetros antes de tocar
// la base: DaysLookback fuera de [1,365] -> ErrInvalidInput; empresa
// inexistente o inactiva -> ErrNotFound.
func (uc *AlertsUseCase) Generate(ctx context.Context, in GenerateAlertsInput) (*dto.LowStockAlertsResponse, error) {
	if in.CompanyID == "" {
		return nil, domain.Invalidf("company_id es requerido")
	}
	if in.DaysLookback < MinDaysLookback || in.DaysLookback > MaxDaysLookback {
		return nil, domain.Invalidf("days_lookback debe estar entre %d y %d", MinDaysLookback, MaxDaysLookback)
	}

	company, err := uc.companyRepo.GetByID(ctx, in.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil || !company.IsActive {
		return nil, domain.ErrNotFound
	}

	rows, err := uc.lowStockRepo.ListLowStock(ctx, repository.LowStockFilter{
		CompanyID:        in.CompanyID,
		IncludeZeroStock: in.IncludeZeroStock,
		WarehouseID:      in.WarehouseID,
	})
	if err != nil {
		return nil, err
	}

	velocities, err := uc.velocityIndex(ctx, in.CompanyID, in.DaysLookback, in.WarehouseID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	alerts := make([]dto.AlertDTO, 0, len(rows))
	for _, row := range rows {
		vel := velocities[velocityKey{row.ProductID, row.WarehouseID}]
		proj := dominv.ProjectStockout(row.CurrentStock, vel.AvgDailySales, row.LowStockThreshold)

		var price *string
		if row.Price != nil {
			s := row.Price.String()
			price = &s
		}

		var supplier *dto.SupplierDTO
		if row.SupplierID != nil {
			supplier = &dto.SupplierDTO{
				ID:    *row.SupplierID,
				Name:  deref(row.SupplierName),
				Email: deref(row.SupplierEmail),
				Phone: deref(row.SupplierPhone),
			}
		}

		alerts = append(alerts, dto.AlertDTO{
			ProductID:   row.ProductID,
			SKU:         row.SKU,
			ProductName: row.ProductName,
			Price:       price,
			Warehouse:   dto.WarehouseDTO{ID: row.WarehouseID, Name: row.WarehouseName},
			StockInfo: dto.StockInfoDTO{
				CurrentStock:       row.CurrentStock,
				ReservedStock:      row.ReservedStock,
				AvailableStock:     row.AvailableStock,
				LowStockThreshold:  row.LowStockThreshold,
				StockCoverageRatio: dominv.CoverageRatio(row.CurrentStock, row.LowStockThreshold),
			},
			SalesAnalysis: dto.SalesAnalysisDTO{
				AvgDailySales:      math.Round(vel.AvgDailySales*100) / 100,
				TotalRecentSales:   vel.TotalRecentSales,
				AnalysisPeriodDays: in.DaysLookback,
				DaysUntilStockout:  proj.DaysUntilStockout,
			},
			Supplier:     supplier,
			UrgencyLevel: proj.Urgency,
			GeneratedAt:  now,
		})
	}

	sortAlerts(alerts)

	summary := dto.AlertSummaryDTO{TotalAlerts: len(alerts)}
	for _, a := range alerts {
		if a.UrgencyLevel == dominv.UrgencyCritical {
			summary.CriticalAlerts++
		}
		if a.UrgencyLevel == dominv.UrgencyHigh {
			summary.HighPriorityAlerts++
		}
		if a.StockInfo.CurrentStock == 0 {
			summary.ZeroStockProducts++
		}
		if a.Supplier == nil {
			summary.ProductsWithoutSupplier++
		}
	}

	uc.log.Info().
		Str("company_id", in.CompanyID).
		Int("days_lookback", in.DaysLookback).
		Int("alerts", len(alerts)).
		Msg("alertas de stock bajo generadas")

	var warehouseFilter *string
	if in.WarehouseID != "" {
		warehouseFilter = &in.WarehouseID
	}

	return &dto.LowStockAlertsResponse{
		Success:     true,
		CompanyID:   in.CompanyID,
		Summary:     summary,
		Alerts:      alerts,
		GeneratedAt: now,
		Parameters: dto.AlertParametersDTO{
			DaysLookback:     in.DaysLookback,
			IncludeZeroStock: in.IncludeZeroStock,
			WarehouseFilter:  warehouseFilter,
		},
	}, nil
}

// velocityIndex consulta los totales diarios de la ventana y calcula la
// velocidad por par producto/bodega. Los pares sin ventas no aparecen en el
// índice y el lookup devuelve el cero (0 unidades, promedio 0).
func (uc *AlertsUseCase) velocityIndex(ctx context.Context, companyID string, daysLookback int, warehouseID string) (map[velocityKey]dominv.Velocity, error) {
	since := time.Now().UTC().AddDate(0, 0, -daysLookback)
	totals, err := uc.salesRepo.DailyTotals(ctx, companyID, since, warehouseID)
	if err != nil {
		return nil, err
	}

	byPair := make(map[velocityKey][]int)
	for _, t := range totals {
		key := velocityKey{t.ProductID, t.WarehouseID}
		byPair[key] = append(byPair[key], t.TotalSold)
	}

	index := make(map[velocityKey]dominv.Velocity, len(byPair))
	for key, daily := range byPair {
		index[key] = dominv.CalculateVelocity(daily)
	}
	return index, nil
}

// sortAlerts ordena in situ: filas con stock en cero primero, dentro de cada
// grupo por ratio stock/umbral ascendente (umbral en cero = ratio indefinido,
// va al final de su grupo) y por nombre de producto como desempate estable.
func sortAlerts(alerts []dto.AlertDTO) {
	sort.SliceStable(alerts, func(i, j int) bool {
		a, b := alerts[i], alerts[j]

		groupA, groupB := 1, 1
		if a.StockInfo.CurrentStock == 0 {
			groupA = 0
		}
		if b.StockInfo.CurrentStock == 0 {
			groupB = 0
		}
		if groupA != groupB {
			return groupA < groupB
		}

		ratioA := sortRatio(a.StockInfo.CurrentStock, a.StockInfo.LowStockThreshold)
		ratioB := sortRatio(b.StockInfo.CurrentStock, b.StockInfo.LowStockThreshold)
		if ratioA != ratioB {
			return ratioA < ratioB
		}

		return a.ProductName < b.ProductName
	})
}

// sortRatio replica NULLIF(threshold, 0): sin umbral el ratio es indefinido y
// se empuja al final del grupo con +Inf.
func sortRatio(currentStock, threshold int) float64 {
	if threshold == 0 {
		return math.Inf(1)
	}
	return float64(currentStock) / float64(threshold)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
