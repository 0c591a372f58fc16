package production

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/agrovida/produccion-api/internal/application/dto"
	"github.com/agrovida/produccion-api/internal/domain"
	"github.com/agrovida/produccion-api/internal/domain/entity"
	"github.com/agrovida/produccion-api/internal/domain/production"
	"github.com/agrovida/produccion-api/internal/domain/repository"
)

// eventDateLayout formato de la fecha de negocio de un evento.
const eventDateLayout = "2006-01-02"

// MoveLotUseCase mueve un lote a otra etapa y deja el evento en el historial.
// La actualización del lote y el append del evento van en una sola transacción;
// la actualización es compare-and-swap sobre el stage_id previo, así dos
// movimientos concurrentes del mismo lote no pueden duplicar historial.
type MoveLotUseCase struct {
	txRunner  TxRunner
	lotRepo   repository.LotRepository
	stageRepo repository.StageRepository
	eventRepo repository.StageEventRepository
}

// NewMoveLotUseCase construye el caso de uso.
func NewMoveLotUseCase(
	txRunner TxRunner,
	lotRepo repository.LotRepository,
	stageRepo repository.StageRepository,
	eventRepo repository.StageEventRepository,
) *MoveLotUseCase {
	return &MoveLotUseCase{
		txRunner:  txRunner,
		lotRepo:   lotRepo,
		stageRepo: stageRepo,
		eventRepo: eventRepo,
	}
}

// MoveLot ejecuta la transición "mover lote a etapa":
//
//  1. Resuelve el lote y su etapa actual (from, puede ser nil).
//  2. Rechaza con ErrAlreadyInStage si from == destino (única guarda de no-op).
//  3. La etapa destino debe existir, ser del tenant y estar activa.
//  4. Normaliza meta a un mapa concreto.
//  5. En una transacción: CAS del stage_id del lote + append del evento.
//
// Cualquier fallo antes del paso 5 no deja escrituras. Dentro del paso 5, un
// CAS fallido (otro movimiento ganó la carrera) aborta con ErrConflict y la
// transacción revierte el conjunto completo.
func (uc *MoveLotUseCase) MoveLot(ctx context.Context, tenantID, lotID string, in dto.MoveLotRequest) (*dto.StageEventResponse, error) {
	if lotID == "" || in.ToStageID == "" {
		return nil, domain.ErrInvalidInput
	}
	eventDate, err := time.Parse(eventDateLayout, in.EventDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	lot, err := uc.lotRepo.GetByID(lotID)
	if err != nil {
		return nil, err
	}
	if lot == nil || lot.TenantID != tenantID {
		return nil, domain.ErrLotNotFound
	}

	from := lot.StageID
	if from != nil && *from == in.ToStageID {
		return nil, domain.ErrAlreadyInStage
	}

	stage, err := uc.stageRepo.GetByID(in.ToStageID)
	if err != nil {
		return nil, err
	}
	if stage == nil || stage.TenantID != tenantID {
		return nil, domain.ErrStageNotFound
	}
	if !stage.IsActive {
		return nil, domain.ErrStageInactive
	}

	now := time.Now()
	event := &entity.StageEvent{
		ID:          uuid.New().String(),
		TenantID:    tenantID,
		LotID:       lot.ID,
		FromStageID: from,
		ToStageID:   stage.ID,
		EventDate:   eventDate,
		Notes:       in.Notes,
		Meta:        production.NormalizeMeta(in.Meta),
		CreatedAt:   now,
	}

	err = uc.txRunner.Run(ctx, func(
		lotRepo repository.LotRepository,
		eventRepo repository.StageEventRepository,
	) error {
		ok, err := lotRepo.UpdateStageIf(lot.ID, from, stage.ID, now)
		if err != nil {
			return err
		}
		if !ok {
			// El stage_id ya no es el que leímos: otro movimiento ganó.
			return domain.ErrConflict
		}
		return eventRepo.Create(event)
	})
	if err != nil {
		return nil, err
	}
	return toStageEventResponse(event), nil
}

// ListEvents devuelve el historial de transiciones de un lote, del más reciente
// al más antiguo, con la metadata siempre materializada como mapa.
func (uc *MoveLotUseCase) ListEvents(ctx context.Context, tenantID, lotID string) (*dto.StageEventListResponse, error) {
	lot, err := uc.lotRepo.GetByID(lotID)
	if err != nil {
		return nil, err
	}
	if lot == nil || lot.TenantID != tenantID {
		return nil, domain.ErrLotNotFound
	}
	events, err := uc.eventRepo.ListByLot(tenantID, lotID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StageEventResponse, 0, len(events))
	for _, ev := range events {
		items = append(items, *toStageEventResponse(ev))
	}
	return &dto.StageEventListResponse{Items: items}, nil
}

func toStageEventResponse(ev *entity.StageEvent) *dto.StageEventResponse {
	if ev == nil {
		return nil
	}
	return &dto.StageEventResponse{
		ID:          ev.ID,
		LotID:       ev.LotID,
		FromStageID: ev.FromStageID,
		ToStageID:   ev.ToStageID,
		EventDate:   ev.EventDate.Format(eventDateLayout),
		Notes:       ev.Notes,
		Meta:        production.NormalizeMeta(ev.Meta),
		CreatedAt:   ev.CreatedAt,
	}
}
