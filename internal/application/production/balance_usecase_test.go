package production_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrovida/produccion-api/internal/application/dto"
	"github.com/agrovida/produccion-api/internal/application/production"
	"github.com/agrovida/produccion-api/internal/domain"
	"github.com/agrovida/produccion-api/internal/domain/entity"
)

func movementAt(lotID string, locationID *string, qty string) *entity.Movement {
	d := decimal.RequireFromString(qty)
	return &entity.Movement{TenantID: testTenant, LotID: lotID, LocationID: locationID, Quantity: &d}
}

func TestBalance_SumaConSignoPorLote(t *testing.T) {
	movRepo := &fakeMovementRepo{movements: []*entity.Movement{
		movementAt("lot-1", nil, "20"),
		movementAt("lot-1", nil, "-5"),
		movementAt("lot-2", nil, "7"),
	}}
	uc := production.NewBalanceUseCase(movRepo)

	out, err := uc.GetBalance(context.Background(), testTenant, dto.GroupByLot)
	require.NoError(t, err)
	require.Len(t, out.Rows, 2)

	assert.Equal(t, "lot-1", out.Rows[0].LotID)
	assert.True(t, out.Rows[0].Balance.Equal(decimal.NewFromInt(15)), "20 - 5 = 15")
	assert.Equal(t, "lot-2", out.Rows[1].LotID)
	assert.True(t, out.Rows[1].Balance.Equal(decimal.NewFromInt(7)))
}

func TestBalance_LotesSinMovimientosNoAparecen(t *testing.T) {
	uc := production.NewBalanceUseCase(&fakeMovementRepo{})

	out, err := uc.GetBalance(context.Background(), testTenant, dto.GroupByLot)
	require.NoError(t, err)
	assert.Empty(t, out.Rows, "ausencia de movimientos produce reporte vacío, no filas en cero")
}

func TestBalance_AgrupaPorLoteYUbicacion(t *testing.T) {
	galpon := "loc-galpon"
	movRepo := &fakeMovementRepo{movements: []*entity.Movement{
		movementAt("lot-1", &galpon, "10"),
		movementAt("lot-1", &galpon, "-2"),
		movementAt("lot-1", nil, "3"), // sin ubicación: clave propia
	}}
	uc := production.NewBalanceUseCase(movRepo)

	out, err := uc.GetBalance(context.Background(), testTenant, dto.GroupByLotLocation)
	require.NoError(t, err)
	require.Len(t, out.Rows, 2)

	// nil primero en el orden
	assert.Nil(t, out.Rows[0].LocationID)
	assert.True(t, out.Rows[0].Balance.Equal(decimal.NewFromInt(3)))
	require.NotNil(t, out.Rows[1].LocationID)
	assert.Equal(t, galpon, *out.Rows[1].LocationID)
	assert.True(t, out.Rows[1].Balance.Equal(decimal.NewFromInt(8)))
}

func TestBalance_AgruparPorLoteIgnoraUbicaciones(t *testing.T) {
	galpon := "loc-galpon"
	estanque := "loc-estanque"
	movRepo := &fakeMovementRepo{movements: []*entity.Movement{
		movementAt("lot-1", &galpon, "10"),
		movementAt("lot-1", &estanque, "4"),
	}}
	uc := production.NewBalanceUseCase(movRepo)

	out, err := uc.GetBalance(context.Background(), testTenant, dto.GroupByLot)
	require.NoError(t, err)
	require.Len(t, out.Rows, 1)
	assert.True(t, out.Rows[0].Balance.Equal(decimal.NewFromInt(14)))
	assert.Nil(t, out.Rows[0].LocationID)
}

func TestBalance_CantidadNulaSumaCero(t *testing.T) {
	movRepo := &fakeMovementRepo{movements: []*entity.Movement{
		movementAt("lot-1", nil, "9"),
		{TenantID: testTenant, LotID: "lot-1", Quantity: nil}, // fila malformada
	}}
	uc := production.NewBalanceUseCase(movRepo)

	out, err := uc.GetBalance(context.Background(), testTenant, dto.GroupByLot)
	require.NoError(t, err)
	require.Len(t, out.Rows, 1)
	assert.True(t, out.Rows[0].Balance.Equal(decimal.NewFromInt(9)),
		"una cantidad NULL no debe abortar ni alterar el reporte")
}

func TestBalance_GroupByInvalido(t *testing.T) {
	uc := production.NewBalanceUseCase(&fakeMovementRepo{})
	_, err := uc.GetBalance(context.Background(), testTenant, "warehouse")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestBalance_NoMezclaTenants(t *testing.T) {
	ajeno := movementAt("lot-ajeno", nil, "100")
	ajeno.TenantID = otroTenant
	movRepo := &fakeMovementRepo{movements: []*entity.Movement{
		movementAt("lot-1", nil, "5"),
		ajeno,
	}}
	uc := production.NewBalanceUseCase(movRepo)

	out, err := uc.GetBalance(context.Background(), testTenant, dto.GroupByLot)
	require.NoError(t, err)
	require.Len(t, out.Rows, 1)
	assert.Equal(t, "lot-1", out.Rows[0].LotID)
}
