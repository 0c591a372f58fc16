package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/agrovida/produccion-api/internal/application/dto"
	"github.com/agrovida/produccion-api/internal/application/usecase"
	"github.com/agrovida/produccion-api/internal/domain"
	"github.com/agrovida/produccion-api/internal/domain/production"
	"github.com/agrovida/produccion-api/pkg/validator"
)

// StageHandler maneja las peticiones HTTP del catálogo de etapas (protegido).
type StageHandler struct {
	uc *usecase.StageUseCase
}

// NewStageHandler construye el handler.
func NewStageHandler(uc *usecase.StageUseCase) *StageHandler {
	return &StageHandler{uc: uc}
}

// purposeFilterFromQuery arma el filtro tri-estado desde la query string:
// sin parámetro no filtra, ?purpose= (vacío) pide etapas sin propósito,
// ?purpose=huevos pide el valor exacto.
func purposeFilterFromQuery(c *fiber.Ctx) production.PurposeFilter {
	if !c.Context().QueryArgs().Has("purpose") {
		return production.PurposeAny()
	}
	p := c.Query("purpose")
	if p == "" {
		return production.PurposeNone()
	}
	return production.PurposeExact(p)
}

// List godoc
// @Summary      Listar etapas de una cadena
// @Tags         stages
// @Security     Bearer
// @Produce      json
// @Param        chain    query  string  true   "Cadena productiva (avicultura, porcicultura, ...)"
// @Param        purpose  query  string  false  "Propósito; vacío = etapas sin propósito; ausente = todas"
// @Success      200  {object}  dto.StageListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/stages [get]
func (h *StageHandler) List(c *fiber.Ctx) error {
	tenantID := GetTenantID(c)
	chain := c.Query("chain")
	if chain == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "chain es requerido"})
	}
	out, err := h.uc.List(tenantID, chain, purposeFilterFromQuery(c))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Sembrar una etapa
// @Tags         stages
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateStageRequest  true  "Datos de la etapa"
// @Success      201   {object}  dto.StageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/stages [post]
func (h *StageHandler) Create(c *fiber.Ctx) error {
	tenantID := GetTenantID(c)
	var in dto.CreateStageRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if fieldErrs := validator.ValidateStruct(in); fieldErrs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"code": "VALIDATION", "errors": fieldErrs})
	}
	out, err := h.uc.Create(tenantID, in)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe una etapa con ese código en la cadena"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar una etapa (parcial)
// @Tags         stages
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la etapa"
// @Param        body  body  dto.UpdateStageRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.StageResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stages/{id} [patch]
func (h *StageHandler) Update(c *fiber.Ctx) error {
	tenantID := GetTenantID(c)
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateStageRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(tenantID, id, in)
	if err != nil {
		if errors.Is(err, domain.ErrStageNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "etapa no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
