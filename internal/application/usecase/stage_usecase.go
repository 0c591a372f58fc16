package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/agrovida/produccion-api/internal/application/dto"
	"github.com/agrovida/produccion-api/internal/domain"
	"github.com/agrovida/produccion-api/internal/domain/entity"
	"github.com/agrovida/produccion-api/internal/domain/production"
	"github.com/agrovida/produccion-api/internal/domain/repository"
	"github.com/agrovida/produccion-api/pkg/normalize"
)

// StageUseCase administra el catálogo de etapas de un tenant: listar por cadena,
// sembrar nuevas etapas y actualizarlas (renombrar, reordenar, retirar).
// Las etapas nunca se borran: el historial las referencia por ID.
type StageUseCase struct {
	repo repository.StageRepository
}

// NewStageUseCase construye el caso de uso.
func NewStageUseCase(repo repository.StageRepository) *StageUseCase {
	return &StageUseCase{repo: repo}
}

// List devuelve las etapas activas de una cadena ordenadas por sort_order.
// Una cadena sin sembrar produce una lista vacía, no un error.
func (uc *StageUseCase) List(tenantID, chain string, purpose production.PurposeFilter) (*dto.StageListResponse, error) {
	if chain == "" {
		return nil, domain.ErrInvalidInput
	}
	stages, err := uc.repo.ListByChain(tenantID, chain, purpose)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StageResponse, 0, len(stages))
	for _, s := range stages {
		items = append(items, *toStageResponse(s))
	}
	return &dto.StageListResponse{Items: items}, nil
}

// Create siembra una etapa. Defaults: sort_order 0, is_terminal false,
// is_active true. Si falta el código se deriva del nombre (INCUBACION, etc.).
func (uc *StageUseCase) Create(tenantID string, in dto.CreateStageRequest) (*dto.StageResponse, error) {
	if in.Chain == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	code := in.Code
	if code == "" {
		code = normalize.Code(in.Name)
	}
	now := time.Now()
	stage := &entity.Stage{
		ID:         uuid.New().String(),
		TenantID:   tenantID,
		Chain:      in.Chain,
		Purpose:    in.Purpose,
		Name:       in.Name,
		Code:       code,
		SortOrder:  0,
		IsTerminal: false,
		IsActive:   true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if in.SortOrder != nil {
		stage.SortOrder = *in.SortOrder
	}
	if in.IsTerminal != nil {
		stage.IsTerminal = *in.IsTerminal
	}
	if in.IsActive != nil {
		stage.IsActive = *in.IsActive
	}
	if err := uc.repo.Create(stage); err != nil {
		return nil, err
	}
	return toStageResponse(stage), nil
}

// Update aplica solo los campos presentes. Una etapa de otro tenant se trata
// como inexistente para no filtrar existencia entre tenants.
func (uc *StageUseCase) Update(tenantID, stageID string, in dto.UpdateStageRequest) (*dto.StageResponse, error) {
	stage, err := uc.repo.GetByID(stageID)
	if err != nil {
		return nil, err
	}
	if stage == nil || stage.TenantID != tenantID {
		return nil, domain.ErrStageNotFound
	}
	if in.Name != nil {
		stage.Name = *in.Name
	}
	if in.Purpose != nil {
		stage.Purpose = in.Purpose
	}
	if in.SortOrder != nil {
		stage.SortOrder = *in.SortOrder
	}
	if in.IsTerminal != nil {
		stage.IsTerminal = *in.IsTerminal
	}
	if in.IsActive != nil {
		stage.IsActive = *in.IsActive
	}
	stage.UpdatedAt = time.Now()
	if err := uc.repo.Update(stage); err != nil {
		return nil, err
	}
	return toStageResponse(stage), nil
}

func toStageResponse(s *entity.Stage) *dto.StageResponse {
	if s == nil {
		return nil
	}
	return &dto.StageResponse{
		ID:         s.ID,
		TenantID:   s.TenantID,
		Chain:      s.Chain,
		Purpose:    s.Purpose,
		Name:       s.Name,
		Code:       s.Code,
		SortOrder:  s.SortOrder,
		IsTerminal: s.IsTerminal,
		IsActive:   s.IsActive,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}
