package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/stock-alertas-api/internal/application/dto"
	"github.com/jhoicas/stock-alertas-api/internal/domain"
	"github.com/jhoicas/stock-alertas-api/pkg/logger"
)

// writeError mapea errores de dominio a códigos HTTP. Los errores no
// clasificados se registran con contexto y responden un cuerpo genérico:
// el texto crudo del store nunca llega al cliente.
func writeError(c *fiber.Ctx, log *logger.Logger, operation string, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "empresa no encontrada o inactiva"})
	case errors.Is(err, domain.ErrDuplicate), errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "el SKU ya existe"})
	default:
		log.Error().Err(err).Str("operation", operation).Str("path", c.Path()).Msg("error no clasificado")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
}
