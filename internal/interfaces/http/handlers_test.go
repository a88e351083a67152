package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-alertas-api/internal/application/dto"
	appinv "github.com/jhoicas/stock-alertas-api/internal/application/inventory"
	"github.com/jhoicas/stock-alertas-api/internal/domain"
	apphttp "github.com/jhoicas/stock-alertas-api/internal/interfaces/http"
	"github.com/jhoicas/stock-alertas-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de los puertos de los handlers
// ──────────────────────────────────────────────────────────────────────────────

type fakeAlerts struct {
	out   *dto.LowStockAlertsResponse
	err   error
	gotIn appinv.GenerateAlertsInput
}

func (f *fakeAlerts) Generate(_ context.Context, in appinv.GenerateAlertsInput) (*dto.LowStockAlertsResponse, error) {
	f.gotIn = in
	if f.err != nil {
		return nil, f.err
	}
	return f.out, nil
}

type fakeReorder struct {
	out *dto.ReorderSuggestionsResponse
	err error
}

func (f *fakeReorder) Suggest(_ context.Context, _ string) (*dto.ReorderSuggestionsResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.out, nil
}

type fakeCreator struct {
	data *dto.ProductCreatedData
	err  error
}

func (f *fakeCreator) Create(_ context.Context, _ dto.CreateProductRequest) (*dto.ProductCreatedData, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.data, nil
}

func buildApp(alerts *fakeAlerts, reorder *fakeReorder, creator *fakeCreator) *fiber.App {
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		Alerts:        alerts,
		Reorder:       reorder,
		CreateProduct: creator,
		Log:           logger.Nop(),
	})
	return app
}

func emptyAlertsResponse() *dto.LowStockAlertsResponse {
	return &dto.LowStockAlertsResponse{
		Success:     true,
		CompanyID:   "c-1",
		Alerts:      []dto.AlertDTO{},
		GeneratedAt: time.Now().UTC(),
	}
}

func decodeBody(t *testing.T, body io.Reader) map[string]any {
	t.Helper()
	raw, err := io.ReadAll(body)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))
	return m
}

// ──────────────────────────────────────────────────────────────────────────────
// GET /api/v1/health
// ──────────────────────────────────────────────────────────────────────────────

func TestHealthCheck(t *testing.T) {
	app := buildApp(&fakeAlerts{out: emptyAlertsResponse()}, &fakeReorder{}, &fakeCreator{})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/health", nil))

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp.Body)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, apphttp.Version, body["version"])
	assert.NotEmpty(t, body["timestamp"])
}

// ──────────────────────────────────────────────────────────────────────────────
// GET /api/v1/inventory/low-stock-alerts/{company_id}
// ──────────────────────────────────────────────────────────────────────────────

func TestLowStockAlerts_ParametrosPorDefecto(t *testing.T) {
	alerts := &fakeAlerts{out: emptyAlertsResponse()}
	app := buildApp(alerts, &fakeReorder{}, &fakeCreator{})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/inventory/low-stock-alerts/c-1", nil))

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "c-1", alerts.gotIn.CompanyID)
	assert.Equal(t, appinv.DefaultDaysLookback, alerts.gotIn.DaysLookback)
	assert.True(t, alerts.gotIn.IncludeZeroStock)
	assert.Empty(t, alerts.gotIn.WarehouseID)
}

func TestLowStockAlerts_ParametrosExplicitos(t *testing.T) {
	alerts := &fakeAlerts{out: emptyAlertsResponse()}
	app := buildApp(alerts, &fakeReorder{}, &fakeCreator{})

	req := httptest.NewRequest("GET",
		"/api/v1/inventory/low-stock-alerts/c-1?days_lookback=90&include_zero_stock=false&warehouse_id=w-3", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 90, alerts.gotIn.DaysLookback)
	assert.False(t, alerts.gotIn.IncludeZeroStock)
	assert.Equal(t, "w-3", alerts.gotIn.WarehouseID)
}

func TestLowStockAlerts_DaysLookbackNoNumerico(t *testing.T) {
	app := buildApp(&fakeAlerts{out: emptyAlertsResponse()}, &fakeReorder{}, &fakeCreator{})

	req := httptest.NewRequest("GET", "/api/v1/inventory/low-stock-alerts/c-1?days_lookback=abc", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestLowStockAlerts_MapeoDeErrores(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"rango inválido", domain.Invalidf("days_lookback debe estar entre 1 y 365"), fiber.StatusBadRequest},
		{"empresa no encontrada", domain.ErrNotFound, fiber.StatusNotFound},
		{"error de store", assert.AnError, fiber.StatusInternalServerError},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			app := buildApp(&fakeAlerts{err: tc.err}, &fakeReorder{}, &fakeCreator{})

			resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/inventory/low-stock-alerts/c-1", nil))

			require.NoError(t, err)
			assert.Equal(t, tc.status, resp.StatusCode)
			if tc.status == fiber.StatusInternalServerError {
				body := decodeBody(t, resp.Body)
				assert.Equal(t, "error interno", body["message"],
					"el texto crudo del store nunca llega al cliente")
			}
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// GET /api/v1/inventory/reorder-suggestions/{company_id}
// ──────────────────────────────────────────────────────────────────────────────

func TestReorderSuggestions(t *testing.T) {
	reorder := &fakeReorder{out: &dto.ReorderSuggestionsResponse{
		Success:            true,
		ReorderSuggestions: []dto.ReorderSuggestionDTO{},
		GeneratedAt:        time.Now().UTC(),
	}}
	app := buildApp(&fakeAlerts{}, reorder, &fakeCreator{})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/inventory/reorder-suggestions/c-1", nil))

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp.Body)
	assert.Equal(t, true, body["success"])
}

// ──────────────────────────────────────────────────────────────────────────────
// POST /add_product
// ──────────────────────────────────────────────────────────────────────────────

func TestAddProduct_Exito(t *testing.T) {
	creator := &fakeCreator{data: &dto.ProductCreatedData{
		ProductID:    "p-1",
		SKU:          "CAF-001",
		Name:         "Cafetera",
		Price:        "19.99",
		WarehouseID:  "w-1",
		InitialStock: 5,
		CreatedAt:    time.Now().UTC(),
	}}
	app := buildApp(&fakeAlerts{}, &fakeReorder{}, creator)

	req := httptest.NewRequest("POST", "/add_product",
		strings.NewReader(`{"sku":"CAF-001","name":"Cafetera","price":"19.99","warehouse_id":"w-1","quantity":5}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	body := decodeBody(t, resp.Body)
	assert.Equal(t, true, body["success"])
	data := body["data"].(map[string]any)
	assert.Equal(t, "19.99", data["price"])
	assert.Equal(t, float64(5), data["initial_stock"])
}

func TestAddProduct_CuerpoInvalido(t *testing.T) {
	app := buildApp(&fakeAlerts{}, &fakeReorder{}, &fakeCreator{})

	req := httptest.NewRequest("POST", "/add_product", strings.NewReader(`{no-es-json`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestAddProduct_MapeoDeErrores(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"campo faltante", domain.Invalidf("campo requerido faltante: sku"), fiber.StatusBadRequest},
		{"carrera de SKU", domain.ErrDuplicate, fiber.StatusConflict},
		{"fallo de store", assert.AnError, fiber.StatusInternalServerError},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			app := buildApp(&fakeAlerts{}, &fakeReorder{}, &fakeCreator{err: tc.err})

			req := httptest.NewRequest("POST", "/add_product",
				strings.NewReader(`{"sku":"X","name":"Y","price":"1","warehouse_id":"w-1","quantity":1}`))
			req.Header.Set("Content-Type", "application/json")
			resp, err := app.Test(req)

			require.NoError(t, err)
			assert.Equal(t, tc.status, resp.StatusCode)
		})
	}
}
