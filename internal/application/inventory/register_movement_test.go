package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrovida/produccion-api/internal/application/dto"
	"github.com/agrovida/produccion-api/internal/application/inventory"
	"github.com/agrovida/produccion-api/internal/domain"
	"github.com/agrovida/produccion-api/internal/domain/entity"
)

const testTenant = "tenant-1"

type fakeMovementRepo struct {
	movements []*entity.Movement
}

func (r *fakeMovementRepo) Create(m *entity.Movement) error {
	r.movements = append(r.movements, m)
	return nil
}

func (r *fakeMovementRepo) ListByTenant(tenantID string) ([]*entity.Movement, error) {
	return r.movements, nil
}

type fakeLotRepo struct {
	lots map[string]*entity.Lot
}

func (r *fakeLotRepo) Create(lot *entity.Lot) error { r.lots[lot.ID] = lot; return nil }
func (r *fakeLotRepo) Update(lot *entity.Lot) error { r.lots[lot.ID] = lot; return nil }
func (r *fakeLotRepo) GetByID(id string) (*entity.Lot, error) {
	return r.lots[id], nil
}
func (r *fakeLotRepo) ListByTenant(tenantID string, limit, offset int) ([]*entity.Lot, error) {
	return nil, nil
}
func (r *fakeLotRepo) ListByStageIDs(tenantID string, stageIDs []string) ([]*entity.Lot, error) {
	return nil, nil
}
func (r *fakeLotRepo) UpdateStageIf(lotID string, from *string, to string, updatedAt time.Time) (bool, error) {
	return false, nil
}

type fakeLocationRepo struct {
	locations map[string]*entity.Location
}

func (r *fakeLocationRepo) Create(loc *entity.Location) error { return nil }
func (r *fakeLocationRepo) GetByID(id string) (*entity.Location, error) {
	return r.locations[id], nil
}
func (r *fakeLocationRepo) ListByTenant(tenantID string, limit, offset int) ([]*entity.Location, error) {
	return nil, nil
}

func newFixture() (*inventory.RegisterMovementUseCase, *fakeMovementRepo) {
	movRepo := &fakeMovementRepo{}
	lotRepo := &fakeLotRepo{lots: map[string]*entity.Lot{
		"lot-1": {ID: "lot-1", TenantID: testTenant, Name: "Lote 1", Code: "L1"},
	}}
	locRepo := &fakeLocationRepo{locations: map[string]*entity.Location{
		"loc-1": {ID: "loc-1", TenantID: testTenant, Name: "Galpón 1"},
	}}
	return inventory.NewRegisterMovementUseCase(movRepo, lotRepo, locRepo), movRepo
}

func TestRegisterMovement_INQuedaPositivo(t *testing.T) {
	uc, movRepo := newFixture()

	err := uc.RegisterMovement(context.Background(), testTenant, "user-1", dto.RegisterMovementRequest{
		LotID:    "lot-1",
		Type:     entity.MovementTypeIN,
		Quantity: decimal.NewFromInt(20),
		Date:     "2026-03-01",
	})
	require.NoError(t, err)
	require.Len(t, movRepo.movements, 1)

	m := movRepo.movements[0]
	require.NotNil(t, m.Quantity)
	assert.True(t, m.Quantity.Equal(decimal.NewFromInt(20)))
	assert.Equal(t, "user-1", m.CreatedBy)
	assert.Equal(t, "2026-03-01", m.Date.Format("2006-01-02"))
}

func TestRegisterMovement_OUTSeGuardaNegado(t *testing.T) {
	uc, movRepo := newFixture()

	err := uc.RegisterMovement(context.Background(), testTenant, "user-1", dto.RegisterMovementRequest{
		LotID:    "lot-1",
		Type:     entity.MovementTypeOUT,
		Quantity: decimal.NewFromInt(5),
	})
	require.NoError(t, err)
	require.Len(t, movRepo.movements, 1)
	assert.True(t, movRepo.movements[0].Quantity.Equal(decimal.NewFromInt(-5)),
		"OUT se almacena con signo negativo")
}

func TestRegisterMovement_AjusteConservaElSigno(t *testing.T) {
	uc, movRepo := newFixture()

	err := uc.RegisterMovement(context.Background(), testTenant, "user-1", dto.RegisterMovementRequest{
		LotID:    "lot-1",
		Type:     entity.MovementTypeADJUSTMENT,
		Quantity: decimal.NewFromInt(-3),
	})
	require.NoError(t, err)
	assert.True(t, movRepo.movements[0].Quantity.Equal(decimal.NewFromInt(-3)))
}

func TestRegisterMovement_CantidadesInvalidas(t *testing.T) {
	uc, _ := newFixture()
	ctx := context.Background()

	err := uc.RegisterMovement(ctx, testTenant, "user-1", dto.RegisterMovementRequest{
		LotID: "lot-1", Type: entity.MovementTypeIN, Quantity: decimal.Zero,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "IN requiere cantidad positiva")

	err = uc.RegisterMovement(ctx, testTenant, "user-1", dto.RegisterMovementRequest{
		LotID: "lot-1", Type: entity.MovementTypeOUT, Quantity: decimal.NewFromInt(-2),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "OUT requiere cantidad positiva")

	err = uc.RegisterMovement(ctx, testTenant, "user-1", dto.RegisterMovementRequest{
		LotID: "lot-1", Type: entity.MovementTypeADJUSTMENT, Quantity: decimal.Zero,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "ADJUSTMENT cero no tiene sentido")

	err = uc.RegisterMovement(ctx, testTenant, "user-1", dto.RegisterMovementRequest{
		LotID: "lot-1", Type: "TRANSFER", Quantity: decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "tipo desconocido se rechaza")
}

func TestRegisterMovement_LoteDeOtroTenant(t *testing.T) {
	uc, _ := newFixture()

	err := uc.RegisterMovement(context.Background(), "tenant-ajeno", "user-1", dto.RegisterMovementRequest{
		LotID: "lot-1", Type: entity.MovementTypeIN, Quantity: decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrLotNotFound)
}

func TestRegisterMovement_UbicacionInexistente(t *testing.T) {
	uc, _ := newFixture()
	loc := "loc-fantasma"

	err := uc.RegisterMovement(context.Background(), testTenant, "user-1", dto.RegisterMovementRequest{
		LotID: "lot-1", LocationID: &loc, Type: entity.MovementTypeIN, Quantity: decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
