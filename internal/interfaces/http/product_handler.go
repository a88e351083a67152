package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/stock-alertas-api/internal/application/dto"
	"github.com/jhoicas/stock-alertas-api/pkg/logger"
)

// ProductCreator puerto del transactor de creación de productos.
type ProductCreator interface {
	Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductCreatedData, error)
}

// ProductHandler maneja la creación de productos con inventario inicial.
type ProductHandler struct {
	creator ProductCreator
	log     *logger.Logger
}

// NewProductHandler construye el handler.
func NewProductHandler(creator ProductCreator, log *logger.Logger) *ProductHandler {
	return &ProductHandler{creator: creator, log: log}
}

// Create godoc
// @Summary      Crear producto con stock inicial
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.ProductCreatedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /add_product [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo JSON inválido"})
	}

	data, err := h.creator.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, h.log, "add_product", err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.ProductCreatedResponse{
		Success: true,
		Message: "producto e inventario creados",
		Data:    *data,
	})
}
