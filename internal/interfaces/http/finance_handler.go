package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/erp-produccion/internal/application/dto"
	"github.com/tu-usuario/erp-produccion/internal/application/reports"
)

// FinanceHandler expone el resumen financiero (protegido).
type FinanceHandler struct {
	uc *reports.SummaryUseCase
}

// NewFinanceHandler construye el handler.
func NewFinanceHandler(uc *reports.SummaryUseCase) *FinanceHandler {
	return &FinanceHandler{uc: uc}
}

// GetSummary godoc
// @Summary      Resumen de caja de hoy y del mes, con top de deudores
// @Tags         finance
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.FinanceSummaryDTO
// @Router       /api/finance/summary [get]
func (h *FinanceHandler) GetSummary(c *fiber.Ctx) error {
	out, err := h.uc.GetSummary(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
