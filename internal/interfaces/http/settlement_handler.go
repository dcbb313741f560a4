package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/marvinbvivass/admin-sub001/internal/application/dto"
	"github.com/marvinbvivass/admin-sub001/internal/application/settlement"
	"github.com/marvinbvivass/admin-sub001/internal/domain/report"
)

// SettlementHandler maneja las peticiones HTTP de cierres diarios (protegido).
type SettlementHandler struct {
	uc *settlement.CloseDayUseCase
}

// NewSettlementHandler construye el handler.
func NewSettlementHandler(uc *settlement.CloseDayUseCase) *SettlementHandler {
	return &SettlementHandler{uc: uc}
}

// Close godoc
// @Summary      Cerrar el día: consolidar las ventas del operador y retirarlas
// @Description  Consolida las ventas del día en la matriz cliente×producto.
//
//	El cierre se escribe antes de eliminar cualquier venta; fallas de
//	eliminación se reportan y el cierre puede repetirse con seguridad.
//
// @Tags         settlements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        day  query  string  false  "Día a cerrar (YYYY-MM-DD, por defecto hoy)"
// @Success      200  {object}  dto.SettlementResult
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/settlements/close [post]
func (h *SettlementHandler) Close(c *fiber.Ctx) error {
	operatorID := GetOperatorID(c)
	if operatorID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	day, err := parseDay(c.Query("day"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DAY", Message: "formato esperado: YYYY-MM-DD"})
	}
	result, err := h.uc.CloseDay(c.Context(), operatorID, day)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(result)
}

// Get obtiene el cierre de un día (path :date = YYYY-MM-DD).
func (h *SettlementHandler) Get(c *fiber.Ctx) error {
	operatorID := GetOperatorID(c)
	day, err := parseDay(c.Params("date"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DAY", Message: "formato esperado: YYYY-MM-DD"})
	}
	result, err := h.uc.GetSettlement(c.Context(), operatorID, day)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(result)
}

// Report godoc
// @Summary      Descargar el reporte CSV de un cierre diario
// @Tags         settlements
// @Security     Bearer
// @Produce      text/csv
// @Param        date  path  string  true  "Día del cierre (YYYY-MM-DD)"
// @Success      200  {string}  string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/settlements/{date}/report [get]
func (h *SettlementHandler) Report(c *fiber.Ctx) error {
	operatorID := GetOperatorID(c)
	day, err := parseDay(c.Params("date"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DAY", Message: "formato esperado: YYYY-MM-DD"})
	}
	stt, err := h.uc.GetSettlementEntity(c.Context(), operatorID, day)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="cierre-`+stt.Day+`.csv"`)
	return c.SendString(report.SerializeSettlement(stt, report.ItemOrder(stt.Items)))
}
