package production_test

import (
	"context"
	"errors"
	"time"

	"github.com/agrovida/produccion-api/internal/domain/entity"
	domainproduction "github.com/agrovida/produccion-api/internal/domain/production"
	"github.com/agrovida/produccion-api/internal/domain/repository"
)

// Dobles en memoria para los casos de uso de producción.

type fakeStageRepo struct {
	stages map[string]*entity.Stage
}

func newFakeStageRepo(stages ...*entity.Stage) *fakeStageRepo {
	r := &fakeStageRepo{stages: map[string]*entity.Stage{}}
	for _, s := range stages {
		r.stages[s.ID] = s
	}
	return r
}

func (r *fakeStageRepo) Create(stage *entity.Stage) error {
	r.stages[stage.ID] = stage
	return nil
}

func (r *fakeStageRepo) GetByID(id string) (*entity.Stage, error) {
	return r.stages[id], nil
}

func (r *fakeStageRepo) Update(stage *entity.Stage) error {
	r.stages[stage.ID] = stage
	return nil
}

func (r *fakeStageRepo) ListByChain(tenantID, chain string, purpose domainproduction.PurposeFilter) ([]*entity.Stage, error) {
	var out []*entity.Stage
	for _, s := range r.stages {
		if s.TenantID != tenantID || s.Chain != chain || !s.IsActive {
			continue
		}
		if !purpose.Matches(s.Purpose) {
			continue
		}
		out = append(out, s)
	}
	// Orden por sort_order, como el adaptador real
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if out[j].SortOrder < out[i].SortOrder {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	return out, nil
}

type fakeLotRepo struct {
	lots map[string]*entity.Lot
	// forceCASFail simula una escritura concurrente: el CAS nunca coincide.
	forceCASFail bool
}

func newFakeLotRepo(lots ...*entity.Lot) *fakeLotRepo {
	r := &fakeLotRepo{lots: map[string]*entity.Lot{}}
	for _, l := range lots {
		r.lots[l.ID] = l
	}
	return r
}

func (r *fakeLotRepo) Create(lot *entity.Lot) error {
	r.lots[lot.ID] = lot
	return nil
}

func (r *fakeLotRepo) GetByID(id string) (*entity.Lot, error) {
	return r.lots[id], nil
}

func (r *fakeLotRepo) Update(lot *entity.Lot) error {
	r.lots[lot.ID] = lot
	return nil
}

func (r *fakeLotRepo) ListByTenant(tenantID string, limit, offset int) ([]*entity.Lot, error) {
	var out []*entity.Lot
	for _, l := range r.lots {
		if l.TenantID == tenantID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *fakeLotRepo) ListByStageIDs(tenantID string, stageIDs []string) ([]*entity.Lot, error) {
	set := map[string]bool{}
	for _, id := range stageIDs {
		set[id] = true
	}
	var out []*entity.Lot
	for _, l := range r.lots {
		if l.TenantID == tenantID && l.StageID != nil && set[*l.StageID] {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *fakeLotRepo) UpdateStageIf(lotID string, from *string, to string, updatedAt time.Time) (bool, error) {
	if r.forceCASFail {
		return false, nil
	}
	lot, ok := r.lots[lotID]
	if !ok {
		return false, nil
	}
	switch {
	case from == nil && lot.StageID != nil:
		return false, nil
	case from != nil && (lot.StageID == nil || *lot.StageID != *from):
		return false, nil
	}
	lot.StageID = &to
	lot.UpdatedAt = updatedAt
	return true, nil
}

type fakeEventRepo struct {
	events  []*entity.StageEvent
	failing bool
}

func (r *fakeEventRepo) Create(event *entity.StageEvent) error {
	if r.failing {
		return errors.New("insert stage event: falla simulada")
	}
	r.events = append(r.events, event)
	return nil
}

func (r *fakeEventRepo) ListByLot(tenantID, lotID string) ([]*entity.StageEvent, error) {
	var out []*entity.StageEvent
	// Más reciente primero, como el adaptador real
	for i := len(r.events) - 1; i >= 0; i-- {
		ev := r.events[i]
		if ev.TenantID == tenantID && ev.LotID == lotID {
			out = append(out, ev)
		}
	}
	return out, nil
}

type fakeMovementRepo struct {
	movements []*entity.Movement
}

func (r *fakeMovementRepo) Create(m *entity.Movement) error {
	r.movements = append(r.movements, m)
	return nil
}

func (r *fakeMovementRepo) ListByTenant(tenantID string) ([]*entity.Movement, error) {
	var out []*entity.Movement
	for _, m := range r.movements {
		if m.TenantID == tenantID {
			out = append(out, m)
		}
	}
	return out, nil
}

// fakeTxRunner ejecuta el callback con los repos dados y revierte el estado de
// los lotes si el callback falla, imitando el rollback de la transacción real.
type fakeTxRunner struct {
	lotRepo   *fakeLotRepo
	eventRepo *fakeEventRepo
}

func (t *fakeTxRunner) Run(ctx context.Context, fn func(
	lotRepo repository.LotRepository,
	eventRepo repository.StageEventRepository,
) error) error {
	snapshot := map[string]entity.Lot{}
	for id, lot := range t.lotRepo.lots {
		snapshot[id] = *lot
	}
	if err := fn(t.lotRepo, t.eventRepo); err != nil {
		for id := range t.lotRepo.lots {
			restored := snapshot[id]
			t.lotRepo.lots[id] = &restored
		}
		return err
	}
	return nil
}
