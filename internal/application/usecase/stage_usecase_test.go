package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrovida/produccion-api/internal/application/dto"
	"github.com/agrovida/produccion-api/internal/application/usecase"
	"github.com/agrovida/produccion-api/internal/domain"
	"github.com/agrovida/produccion-api/internal/domain/entity"
	"github.com/agrovida/produccion-api/internal/domain/production"
)

const testTenant = "tenant-1"

// fakeStageRepo doble en memoria del puerto StageRepository.
type fakeStageRepo struct {
	stages map[string]*entity.Stage
}

func newFakeStageRepo() *fakeStageRepo {
	return &fakeStageRepo{stages: map[string]*entity.Stage{}}
}

func (r *fakeStageRepo) Create(stage *entity.Stage) error {
	for _, s := range r.stages {
		if s.TenantID == stage.TenantID && s.Chain == stage.Chain && s.Code == stage.Code {
			return domain.ErrDuplicate
		}
	}
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

func (r *fakeStageRepo) ListByChain(tenantID, chain string, purpose production.PurposeFilter) ([]*entity.Stage, error) {
	var out []*entity.Stage
	for _, s := range r.stages {
		if s.TenantID == tenantID && s.Chain == chain && s.IsActive && purpose.Matches(s.Purpose) {
			out = append(out, s)
		}
	}
	return out, nil
}

func TestStageCreate_DefaultsYCodigoDerivado(t *testing.T) {
	uc := usecase.NewStageUseCase(newFakeStageRepo())

	out, err := uc.Create(testTenant, dto.CreateStageRequest{
		Chain: "avicultura",
		Name:  "Incubación",
	})
	require.NoError(t, err)

	assert.Equal(t, "INCUBACION", out.Code, "el código se deriva del nombre sin tildes")
	assert.Equal(t, 0, out.SortOrder)
	assert.False(t, out.IsTerminal)
	assert.True(t, out.IsActive)
	assert.Nil(t, out.Purpose)
	assert.NotEmpty(t, out.ID)
}

func TestStageCreate_CodigoExplicitoSeRespeta(t *testing.T) {
	uc := usecase.NewStageUseCase(newFakeStageRepo())

	out, err := uc.Create(testTenant, dto.CreateStageRequest{
		Chain: "avicultura",
		Name:  "Levante",
		Code:  "LEV",
	})
	require.NoError(t, err)
	assert.Equal(t, "LEV", out.Code)
}

func TestStageCreate_CodigoDuplicadoEnCadena(t *testing.T) {
	uc := usecase.NewStageUseCase(newFakeStageRepo())

	_, err := uc.Create(testTenant, dto.CreateStageRequest{Chain: "avicultura", Name: "Venta"})
	require.NoError(t, err)
	_, err = uc.Create(testTenant, dto.CreateStageRequest{Chain: "avicultura", Name: "Venta"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestStageUpdate_ParcialYRetiro(t *testing.T) {
	repo := newFakeStageRepo()
	uc := usecase.NewStageUseCase(repo)

	created, err := uc.Create(testTenant, dto.CreateStageRequest{Chain: "avicultura", Name: "Postura"})
	require.NoError(t, err)

	inactive := false
	newName := "Postura comercial"
	out, err := uc.Update(testTenant, created.ID, dto.UpdateStageRequest{
		Name:     &newName,
		IsActive: &inactive,
	})
	require.NoError(t, err)
	assert.Equal(t, "Postura comercial", out.Name)
	assert.False(t, out.IsActive)
	assert.Equal(t, "POSTURA", out.Code, "el código no cambia al renombrar")

	// Retirada: ya no sale en el listado
	list, err := uc.List(testTenant, "avicultura", production.PurposeAny())
	require.NoError(t, err)
	assert.Empty(t, list.Items)
}

func TestStageUpdate_OtroTenantComoInexistente(t *testing.T) {
	uc := usecase.NewStageUseCase(newFakeStageRepo())
	created, err := uc.Create(testTenant, dto.CreateStageRequest{Chain: "avicultura", Name: "Ceba"})
	require.NoError(t, err)

	name := "x"
	_, err = uc.Update("tenant-ajeno", created.ID, dto.UpdateStageRequest{Name: &name})
	assert.ErrorIs(t, err, domain.ErrStageNotFound)
}

func TestStageList_CadenaRequerida(t *testing.T) {
	uc := usecase.NewStageUseCase(newFakeStageRepo())
	_, err := uc.List(testTenant, "", production.PurposeAny())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
