package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/stock-alertas-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Alerts        AlertsGenerator
	Reorder       ReorderSuggester
	CreateProduct ProductCreator
	Log           *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api/v1")
	api.Get("/health", HealthCheck)

	inventoryHandler := NewInventoryHandler(deps.Alerts, deps.Reorder, deps.Log)
	inv := api.Group("/inventory")
	inv.Get("/low-stock-alerts/:company_id", inventoryHandler.LowStockAlerts)
	inv.Get("/reorder-suggestions/:company_id", inventoryHandler.ReorderSuggestions)

	productHandler := NewProductHandler(deps.CreateProduct, deps.Log)
	app.Post("/add_product", productHandler.Create)
}
