package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/agrovida/produccion-api/internal/application/dto"
	"github.com/agrovida/produccion-api/internal/application/production"
)

// KanbanHandler expone el tablero de etapas (protegido, solo lectura).
type KanbanHandler struct {
	uc *production.KanbanUseCase
}

// NewKanbanHandler construye el handler.
func NewKanbanHandler(uc *production.KanbanUseCase) *KanbanHandler {
	return &KanbanHandler{uc: uc}
}

// GetBoard godoc
// @Summary      Tablero kanban de una cadena
// @Description  Una columna por etapa activa, en orden de sort_order, con los lotes que ocupan cada etapa.
// @Tags         kanban
// @Security     Bearer
// @Produce      json
// @Param        chain    query  string  true   "Cadena productiva"
// @Param        purpose  query  string  false  "Propósito; vacío = etapas sin propósito; ausente = todas"
// @Success      200  {object}  dto.KanbanBoardResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/kanban [get]
func (h *KanbanHandler) GetBoard(c *fiber.Ctx) error {
	tenantID := GetTenantID(c)
	chain := c.Query("chain")
	if chain == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "chain es requerido"})
	}
	out, err := h.uc.GetBoard(c.Context(), tenantID, chain, purposeFilterFromQuery(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
