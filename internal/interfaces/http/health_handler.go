package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// Version de la API expuesta en el health check.
const Version = "1.0.0"

// HealthCheck godoc
// @Summary      Health check para monitoreo
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /api/v1/health [get]
func HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"version":   Version,
	})
}
