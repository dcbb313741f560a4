package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/marvinbvivass/admin-sub001/internal/application/dto"
	"github.com/marvinbvivass/admin-sub001/internal/application/usecase"
)

// RateHandler maneja las peticiones HTTP de tasas de cambio (protegido).
type RateHandler struct {
	uc *usecase.RateUseCase
}

// NewRateHandler construye el handler.
func NewRateHandler(uc *usecase.RateUseCase) *RateHandler {
	return &RateHandler{uc: uc}
}

// Get devuelve las tasas vigentes.
func (h *RateHandler) Get(c *fiber.Ctx) error {
	resp, err := h.uc.Get()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Update guarda tasas nuevas. Las ventas ya confirmadas conservan su snapshot.
func (h *RateHandler) Update(c *fiber.Ctx) error {
	var in dto.RatesRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.Update(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}
