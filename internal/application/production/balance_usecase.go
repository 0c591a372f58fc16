package production

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/agrovida/produccion-api/internal/application/dto"
	"github.com/agrovida/produccion-api/internal/domain"
	"github.com/agrovida/produccion-api/internal/domain/entity"
	"github.com/agrovida/produccion-api/internal/domain/repository"
)

// BalanceUseCase agrega el libro de movimientos en saldos con signo por lote,
// u opcionalmente por (lote, ubicación). Los lotes sin movimientos no aparecen
// en el resultado: el caller distingue "ausente" de "cero".
type BalanceUseCase struct {
	movementRepo repository.MovementRepository
}

// NewBalanceUseCase construye el caso de uso.
func NewBalanceUseCase(movementRepo repository.MovementRepository) *BalanceUseCase {
	return &BalanceUseCase{movementRepo: movementRepo}
}

// balanceKey clave compuesta del agregado. La ausencia de ubicación es su
// propia clave, no se mezcla con ninguna ubicación concreta.
type balanceKey struct {
	lotID       string
	locationID  string
	hasLocation bool
}

// GetBalance suma los movimientos del tenant según groupBy ("lot" o "lot+location").
// Una cantidad NULL suma cero en lugar de abortar el reporte: una fila malformada
// no debe ocultar el informe completo.
func (uc *BalanceUseCase) GetBalance(ctx context.Context, tenantID, groupBy string) (*dto.BalanceReportResponse, error) {
	if groupBy != dto.GroupByLot && groupBy != dto.GroupByLotLocation {
		return nil, domain.ErrInvalidInput
	}

	movements, err := uc.movementRepo.ListByTenant(tenantID)
	if err != nil {
		return nil, err
	}

	totals := make(map[balanceKey]decimal.Decimal)
	for _, m := range movements {
		key := balanceKey{lotID: m.LotID}
		if groupBy == dto.GroupByLotLocation && m.LocationID != nil {
			key.locationID = *m.LocationID
			key.hasLocation = true
		}
		totals[key] = totals[key].Add(movementQuantity(m))
	}

	rows := make([]dto.BalanceRow, 0, len(totals))
	for key, total := range totals {
		row := dto.BalanceRow{LotID: key.lotID, Balance: total}
		if key.hasLocation {
			loc := key.locationID
			row.LocationID = &loc
		}
		rows = append(rows, row)
	}
	// Orden estable para el consumidor: por lote y luego por ubicación (nil primero)
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].LotID != rows[j].LotID {
			return rows[i].LotID < rows[j].LotID
		}
		li, lj := rows[i].LocationID, rows[j].LocationID
		switch {
		case li == nil:
			return lj != nil
		case lj == nil:
			return false
		default:
			return *li < *lj
		}
	})

	return &dto.BalanceReportResponse{GroupBy: groupBy, Rows: rows}, nil
}

// sumByLot acumula los saldos por lote; lo comparte la proyección kanban para
// anotar las tarjetas.
func sumByLot(movements []*entity.Movement) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal)
	for _, m := range movements {
		totals[m.LotID] = totals[m.LotID].Add(movementQuantity(m))
	}
	return totals
}

// movementQuantity devuelve la cantidad de una fila; NULL cuenta como cero.
func movementQuantity(m *entity.Movement) decimal.Decimal {
	if m.Quantity == nil {
		return decimal.Zero
	}
	return *m.Quantity
}
