package http

import (
	"context"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/stock-alertas-api/internal/application/dto"
	appinv "github.com/jhoicas/stock-alertas-api/internal/application/inventory"
	"github.com/jhoicas/stock-alertas-api/pkg/logger"
)

// AlertsGenerator puerto del ensamblador de alertas de stock bajo.
type AlertsGenerator interface {
	Generate(ctx context.Context, in appinv.GenerateAlertsInput) (*dto.LowStockAlertsResponse, error)
}

// ReorderSuggester puerto del motor de sugerencias de reposición.
type ReorderSuggester interface {
	Suggest(ctx context.Context, companyID string) (*dto.ReorderSuggestionsResponse, error)
}

// InventoryHandler maneja las consultas de inventario (solo lectura).
type InventoryHandler struct {
	alerts  AlertsGenerator
	reorder ReorderSuggester
	log     *logger.Logger
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(alerts AlertsGenerator, reorder ReorderSuggester, log *logger.Logger) *InventoryHandler {
	return &InventoryHandler{alerts: alerts, reorder: reorder, log: log}
}

// LowStockAlerts godoc
// @Summary      Alertas de stock bajo con análisis de velocidad de ventas
// @Tags         inventory
// @Produce      json
// @Param        company_id          path   string  true   "ID de la empresa"
// @Param        days_lookback       query  int     false  "Ventana de análisis en días (1-365)"  default(30)
// @Param        include_zero_stock  query  string  false  "Incluir productos con stock en cero"  default(true)
// @Param        warehouse_id        query  string  false  "Filtrar por bodega"
// @Success      200  {object}  dto.LowStockAlertsResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/inventory/low-stock-alerts/{company_id} [get]
func (h *InventoryHandler) LowStockAlerts(c *fiber.Ctx) error {
	companyID := c.Params("company_id")
	if companyID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "company_id es requerido"})
	}

	daysLookback := appinv.DefaultDaysLookback
	if raw := c.Query("days_lookback"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "days_lookback debe ser un entero"})
		}
		daysLookback = n
	}
	includeZeroStock := strings.EqualFold(c.Query("include_zero_stock", "true"), "true")

	out, err := h.alerts.Generate(c.UserContext(), appinv.GenerateAlertsInput{
		CompanyID:        companyID,
		DaysLookback:     daysLookback,
		IncludeZeroStock: includeZeroStock,
		WarehouseID:      c.Query("warehouse_id"),
	})
	if err != nil {
		return writeError(c, h.log, "low_stock_alerts", err)
	}
	return c.JSON(out)
}

// ReorderSuggestions godoc
// @Summary      Sugerencias de reposición según velocidad de ventas
// @Tags         inventory
// @Produce      json
// @Param        company_id  path  string  true  "ID de la empresa"
// @Success      200  {object}  dto.ReorderSuggestionsResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/v1/inventory/reorder-suggestions/{company_id} [get]
func (h *InventoryHandler) ReorderSuggestions(c *fiber.Ctx) error {
	out, err := h.reorder.Suggest(c.UserContext(), c.Params("company_id"))
	if err != nil {
		return writeError(c, h.log, "reorder_suggestions", err)
	}
	return c.JSON(out)
}
