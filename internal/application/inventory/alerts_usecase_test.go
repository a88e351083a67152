package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appinv "github.com/jhoicas/stock-alertas-api/internal/application/inventory"
	"github.com/jhoicas/stock-alertas-api/internal/domain"
	"github.com/jhoicas/stock-alertas-api/internal/domain/entity"
	dominv "github.com/jhoicas/stock-alertas-api/internal/domain/inventory"
	"github.com/jhoicas/stock-alertas-api/internal/domain/repository"
	"github.com/jhoicas/stock-alertas-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de los puertos de lectura
// ──────────────────────────────────────────────────────────────────────────────

type fakeCompanyRepo struct {
	company *entity.Company
}

func (f *fakeCompanyRepo) GetByID(_ context.Context, _ string) (*entity.Company, error) {
	return f.company, nil
}

type fakeLowStockRepo struct {
	rows       []repository.LowStockRow
	candidates []repository.ReorderRow
	lastFilter repository.LowStockFilter
}

func (f *fakeLowStockRepo) ListLowStock(_ context.Context, filter repository.LowStockFilter) ([]repository.LowStockRow, error) {
	f.lastFilter = filter
	return f.rows, nil
}

func (f *fakeLowStockRepo) ListReorderCandidates(_ context.Context, _ string) ([]repository.ReorderRow, error) {
	return f.candidates, nil
}

type fakeSalesRepo struct {
	totals []repository.DailySalesTotal
}

func (f *fakeSalesRepo) DailyTotals(_ context.Context, _ string, _ time.Time, _ string) ([]repository.DailySalesTotal, error) {
	return f.totals, nil
}

const testCompanyID = "00000000-0000-0000-0000-000000000001"

func activeCompany() *entity.Company {
	return &entity.Company{ID: testCompanyID, Name: "ACME", IsActive: true}
}

func newAlertsUC(company *entity.Company, rows []repository.LowStockRow, totals []repository.DailySalesTotal) (*appinv.AlertsUseCase, *fakeLowStockRepo) {
	lowStock := &fakeLowStockRepo{rows: rows}
	return appinv.NewAlertsUseCase(
		&fakeCompanyRepo{company: company},
		lowStock,
		&fakeSalesRepo{totals: totals},
		logger.Nop(),
	), lowStock
}

func lowStockRow(productID, name string, stock, threshold int) repository.LowStockRow {
	return repository.LowStockRow{
		ProductID:         productID,
		SKU:               "SKU-" + productID,
		ProductName:       name,
		LowStockThreshold: threshold,
		WarehouseID:       "w-1",
		WarehouseName:     "Bodega Principal",
		CurrentStock:      stock,
		AvailableStock:    stock,
	}
}

func defaultInput() appinv.GenerateAlertsInput {
	return appinv.GenerateAlertsInput{
		CompanyID:        testCompanyID,
		DaysLookback:     30,
		IncludeZeroStock: true,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Validación de parámetros
// ──────────────────────────────────────────────────────────────────────────────

func TestGenerate_DaysLookbackFueraDeRango(t *testing.T) {
	uc, _ := newAlertsUC(activeCompany(), nil, nil)

	for _, days := range []int{0, -1, 366} {
		in := defaultInput()
		in.DaysLookback = days

		_, err := uc.Generate(context.Background(), in)

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

func TestGenerate_DaysLookbackBordesValidos(t *testing.T) {
	// 1 y 365 están dentro del rango: nunca deben fallar solo por el valor.
	uc, _ := newAlertsUC(activeCompany(), nil, nil)

	for _, days := range []int{1, 30, 365} {
		in := defaultInput()
		in.DaysLookback = days

		out, err := uc.Generate(context.Background(), in)

		require.NoError(t, err)
		assert.True(t, out.Success)
		assert.Equal(t, days, out.Parameters.DaysLookback)
	}
}

func TestGenerate_CompanyIDRequerido(t *testing.T) {
	uc, _ := newAlertsUC(activeCompany(), nil, nil)
	in := defaultInput()
	in.CompanyID = ""

	_, err := uc.Generate(context.Background(), in)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGenerate_EmpresaInexistenteOInactiva(t *testing.T) {
	t.Run("inexistente", func(t *testing.T) {
		uc, _ := newAlertsUC(nil, nil, nil)

		_, err := uc.Generate(context.Background(), defaultInput())

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("inactiva", func(t *testing.T) {
		company := activeCompany()
		company.IsActive = false
		uc, _ := newAlertsUC(company, nil, nil)

		_, err := uc.Generate(context.Background(), defaultInput())

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestGenerate_FiltrosLleganAlRepositorio(t *testing.T) {
	uc, lowStock := newAlertsUC(activeCompany(), nil, nil)
	in := defaultInput()
	in.IncludeZeroStock = false
	in.WarehouseID = "w-7"

	out, err := uc.Generate(context.Background(), in)

	require.NoError(t, err)
	assert.Equal(t, repository.LowStockFilter{
		CompanyID:        testCompanyID,
		IncludeZeroStock: false,
		WarehouseID:      "w-7",
	}, lowStock.lastFilter)
	require.NotNil(t, out.Parameters.WarehouseFilter)
	assert.Equal(t, "w-7", *out.Parameters.WarehouseFilter)
}

// ──────────────────────────────────────────────────────────────────────────────
// Orden determinista: stock cero primero, luego ratio ascendente (umbral cero
// al final de su grupo), luego nombre.
// ──────────────────────────────────────────────────────────────────────────────

func TestGenerate_OrdenDeAlertas(t *testing.T) {
	rows := []repository.LowStockRow{
		lowStockRow("p-inf", "Sin Umbral", 1, 0),      // ratio indefinido: último del grupo con stock
		lowStockRow("p-20", "Casi Critico", 2, 10),    // ratio 0.2
		lowStockRow("p-05", "Muy Critico", 5, 100),    // ratio 0.05
		lowStockRow("p-z2", "Zapato", 0, 10),          // stock cero
		lowStockRow("p-z1", "Abrigo", 0, 10),          // stock cero, primero por nombre
	}
	uc, _ := newAlertsUC(activeCompany(), rows, nil)

	out, err := uc.Generate(context.Background(), defaultInput())

	require.NoError(t, err)
	require.Len(t, out.Alerts, 5)

	got := make([]string, 0, len(out.Alerts))
	for _, a := range out.Alerts {
		got = append(got, a.ProductID)
	}
	assert.Equal(t, []string{"p-z1", "p-z2", "p-05", "p-20", "p-inf"}, got)

	// Propiedad par a par: nunca una fila con stock aparece antes que una en cero.
	for i, a := range out.Alerts {
		for _, b := range out.Alerts[i+1:] {
			if a.StockInfo.CurrentStock > 0 {
				assert.Positive(t, b.StockInfo.CurrentStock,
					"fila con stock %s no puede preceder a una en cero", a.ProductID)
			}
		}
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Enriquecimiento: velocidad, proyección, proveedor y resumen
// ──────────────────────────────────────────────────────────────────────────────

func TestGenerate_VelocidadYProyeccion(t *testing.T) {
	row := lowStockRow("p-1", "Cafetera", 20, 20)
	day := time.Now().UTC()
	totals := []repository.DailySalesTotal{
		{ProductID: "p-1", WarehouseID: "w-1", SaleDay: day.AddDate(0, 0, -1), TotalSold: 1},
		{ProductID: "p-1", WarehouseID: "w-1", SaleDay: day.AddDate(0, 0, -2), TotalSold: 2},
		// Otra bodega: no debe mezclarse en la velocidad del par p-1/w-1.
		{ProductID: "p-1", WarehouseID: "w-2", SaleDay: day, TotalSold: 50},
	}
	uc, _ := newAlertsUC(activeCompany(), []repository.LowStockRow{row}, totals)

	out, err := uc.Generate(context.Background(), defaultInput())

	require.NoError(t, err)
	require.Len(t, out.Alerts, 1)
	alert := out.Alerts[0]

	assert.InDelta(t, 1.5, alert.SalesAnalysis.AvgDailySales, 1e-9)
	assert.Equal(t, 3, alert.SalesAnalysis.TotalRecentSales)
	assert.Equal(t, 30, alert.SalesAnalysis.AnalysisPeriodDays)
	require.NotNil(t, alert.SalesAnalysis.DaysUntilStockout)
	assert.Equal(t, 13, *alert.SalesAnalysis.DaysUntilStockout) // floor(20/1.5)
	assert.Equal(t, dominv.UrgencyHigh, alert.UrgencyLevel)
	assert.InDelta(t, 100.0, alert.StockInfo.StockCoverageRatio, 1e-9)
}

func TestGenerate_SinVentasProyeccionNula(t *testing.T) {
	row := lowStockRow("p-1", "Tetera", 8, 10)
	uc, _ := newAlertsUC(activeCompany(), []repository.LowStockRow{row}, nil)

	out, err := uc.Generate(context.Background(), defaultInput())

	require.NoError(t, err)
	alert := out.Alerts[0]
	assert.Nil(t, alert.SalesAnalysis.DaysUntilStockout)
	assert.Equal(t, dominv.UrgencyLow, alert.UrgencyLevel) // 8 > 0.5*10
	assert.Zero(t, alert.SalesAnalysis.AvgDailySales)
}

func TestGenerate_ProveedorYPrecio(t *testing.T) {
	price := decimal.RequireFromString("19.99")
	supplierID, supplierName := "s-1", "Proveedor SA"
	withSupplier := lowStockRow("p-1", "Con Proveedor", 1, 10)
	withSupplier.Price = &price
	withSupplier.SupplierID = &supplierID
	withSupplier.SupplierName = &supplierName
	without := lowStockRow("p-2", "Sin Proveedor", 2, 10)

	uc, _ := newAlertsUC(activeCompany(), []repository.LowStockRow{withSupplier, without}, nil)

	out, err := uc.Generate(context.Background(), defaultInput())

	require.NoError(t, err)
	require.Len(t, out.Alerts, 2)

	first := out.Alerts[0] // "Con Proveedor" va primero por ratio 0.1 < 0.2
	require.NotNil(t, first.Supplier)
	assert.Equal(t, "s-1", first.Supplier.ID)
	assert.Equal(t, "Proveedor SA", first.Supplier.Name)
	require.NotNil(t, first.Price)
	assert.Equal(t, "19.99", *first.Price)

	second := out.Alerts[1]
	assert.Nil(t, second.Supplier)
	assert.Nil(t, second.Price)
}

func TestGenerate_Resumen(t *testing.T) {
	supplierID := "s-1"
	critical := lowStockRow("p-zero", "Agotado", 0, 10) // CRITICAL por stock cero
	critical.SupplierID = &supplierID
	high := lowStockRow("p-high", "Por Agotarse", 10, 10) // 10 días -> HIGH
	low := lowStockRow("p-low", "Tranquilo", 9, 10)       // sin ventas, 9 > 5 -> LOW

	day := time.Now().UTC()
	totals := []repository.DailySalesTotal{
		{ProductID: "p-high", WarehouseID: "w-1", SaleDay: day, TotalSold: 1},
	}
	uc, _ := newAlertsUC(activeCompany(), []repository.LowStockRow{critical, high, low}, totals)

	out, err := uc.Generate(context.Background(), defaultInput())

	require.NoError(t, err)
	assert.Equal(t, 3, out.Summary.TotalAlerts)
	assert.Equal(t, 1, out.Summary.CriticalAlerts)
	assert.Equal(t, 1, out.Summary.HighPriorityAlerts)
	assert.Equal(t, 1, out.Summary.ZeroStockProducts)
	assert.Equal(t, 2, out.Summary.ProductsWithoutSupplier)
}
