package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/agrovida/produccion-api/internal/application/dto"
	"github.com/agrovida/produccion-api/internal/application/production"
	"github.com/agrovida/produccion-api/internal/domain"
)

// BalanceHandler expone el reporte de saldos (protegido, solo lectura).
type BalanceHandler struct {
	uc *production.BalanceUseCase
}

// NewBalanceHandler construye el handler.
func NewBalanceHandler(uc *production.BalanceUseCase) *BalanceHandler {
	return &BalanceHandler{uc: uc}
}

// GetBalance godoc
// @Summary      Saldos por lote o por lote y ubicación
// @Description  Suma el libro de movimientos; lotes sin movimientos no aparecen.
// @Tags         balances
// @Security     Bearer
// @Produce      json
// @Param        group_by  query  string  false  "lot (default) o lot+location"
// @Success      200  {object}  dto.BalanceReportResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/balances [get]
func (h *BalanceHandler) GetBalance(c *fiber.Ctx) error {
	tenantID := GetTenantID(c)
	groupBy := c.Query("group_by", dto.GroupByLot)
	// El '+' de "lot+location" llega decodificado como espacio en la query string.
	if groupBy == "lot location" {
		groupBy = dto.GroupByLotLocation
	}
	out, err := h.uc.GetBalance(c.Context(), tenantID, groupBy)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "group_by debe ser lot o lot+location"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
