package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/agrovida/produccion-api/internal/application/dto"
	"github.com/agrovida/produccion-api/internal/domain"
	"github.com/agrovida/produccion-api/internal/domain/entity"
	"github.com/agrovida/produccion-api/internal/domain/repository"
	"github.com/agrovida/produccion-api/pkg/normalize"
)

// LotUseCase casos de uso CRUD para lotes. El stage_id del lote no se escribe
// aquí: solo lo muta el movimiento de etapa (production.MoveLotUseCase).
type LotUseCase struct {
	repo repository.LotRepository
}

// NewLotUseCase construye el caso de uso.
func NewLotUseCase(repo repository.LotRepository) *LotUseCase {
	return &LotUseCase{repo: repo}
}

// Create crea un lote sin etapa asignada.
func (uc *LotUseCase) Create(tenantID string, in dto.CreateLotRequest) (*dto.LotResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	code := in.Code
	if code == "" {
		code = normalize.Code(in.Name)
	}
	now := time.Now()
	lot := &entity.Lot{
		ID:        uuid.New().String(),
		TenantID:  tenantID,
		Name:      in.Name,
		Code:      code,
		StageID:   nil,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(lot); err != nil {
		return nil, err
	}
	return toLotResponse(lot), nil
}

// GetByID obtiene un lote del tenant; de otro tenant se trata como inexistente.
func (uc *LotUseCase) GetByID(tenantID, id string) (*dto.LotResponse, error) {
	lot, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if lot == nil || lot.TenantID != tenantID {
		return nil, domain.ErrLotNotFound
	}
	return toLotResponse(lot), nil
}

// Update renombra o recodifica un lote (campos parciales).
func (uc *LotUseCase) Update(tenantID, id string, in dto.UpdateLotRequest) (*dto.LotResponse, error) {
	lot, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if lot == nil || lot.TenantID != tenantID {
		return nil, domain.ErrLotNotFound
	}
	if in.Name != nil {
		lot.Name = *in.Name
	}
	if in.Code != nil {
		lot.Code = *in.Code
	}
	lot.UpdatedAt = time.Now()
	if err := uc.repo.Update(lot); err != nil {
		return nil, err
	}
	return toLotResponse(lot), nil
}

// List lista lotes del tenant con paginación.
func (uc *LotUseCase) List(tenantID string, limit, offset int) (*dto.LotListResponse, error) {
	lots, err := uc.repo.ListByTenant(tenantID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.LotResponse, 0, len(lots))
	for _, l := range lots {
		items = append(items, *toLotResponse(l))
	}
	return &dto.LotListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toLotResponse(l *entity.Lot) *dto.LotResponse {
	if l == nil {
		return nil
	}
	return &dto.LotResponse{
		ID:        l.ID,
		TenantID:  l.TenantID,
		Name:      l.Name,
		Code:      l.Code,
		StageID:   l.StageID,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}
