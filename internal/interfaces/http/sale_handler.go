package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/marvinbvivass/admin-sub001/internal/application/dto"
	"github.com/marvinbvivass/admin-sub001/internal/application/sales"
	"github.com/marvinbvivass/admin-sub001/internal/domain/report"
)

// SaleHandler maneja las peticiones HTTP de ventas (protegido).
type SaleHandler struct {
	uc *sales.CommitSaleUseCase
}

// NewSaleHandler construye el handler.
func NewSaleHandler(uc *sales.CommitSaleUseCase) *SaleHandler {
	return &SaleHandler{uc: uc}
}

// Commit godoc
// @Summary      Confirmar una venta contra el stock del vehículo
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CommitSaleRequest  true  "client_id, vehicle_id, lines[{product_id, quantity}]"
// @Success      201   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SaleHandler) Commit(c *fiber.Ctx) error {
	operatorID := GetOperatorID(c)
	if operatorID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.CommitSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.CommitSale(c.Context(), operatorID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetByID obtiene una venta por ID.
func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
	operatorID := GetOperatorID(c)
	resp, err := h.uc.GetSale(c.Context(), operatorID, c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// List lista las ventas abiertas del operador para un día (query ?day=YYYY-MM-DD,
// por defecto hoy).
func (h *SaleHandler) List(c *fiber.Ctx) error {
	operatorID := GetOperatorID(c)
	day, err := parseDay(c.Query("day"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DAY", Message: "formato esperado: YYYY-MM-DD"})
	}
	list, err := h.uc.ListOpenSales(c.Context(), operatorID, day)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(list), "sales": list})
}

// Report godoc
// @Summary      Descargar el reporte CSV de una venta
// @Tags         sales
// @Security     Bearer
// @Produce      text/csv
// @Param        id  path  string  true  "ID de la venta"
// @Success      200  {string}  string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/report [get]
func (h *SaleHandler) Report(c *fiber.Ctx) error {
	operatorID := GetOperatorID(c)
	sale, err := h.uc.GetSaleEntity(c.Context(), operatorID, c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="venta-`+sale.ID+`.csv"`)
	return c.SendString(report.SerializeSale(sale))
}

// parseDay interpreta YYYY-MM-DD en hora local; vacío significa hoy.
func parseDay(s string) (time.Time, error) {
	if s == "" {
		return time.Now(), nil
	}
	return time.ParseInLocation("2006-01-02", s, time.Local)
}
