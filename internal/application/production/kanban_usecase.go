package production

import (
	"context"

	"github.com/agrovida/produccion-api/internal/application/dto"
	"github.com/agrovida/produccion-api/internal/domain/production"
	"github.com/agrovida/produccion-api/internal/domain/repository"
)

// KanbanUseCase arma el tablero de lectura: una columna por etapa activa de la
// cadena, en orden de sort_order, con los lotes que apuntan a cada etapa.
// Es una proyección pura: se recalcula en cada consulta, sin estado propio.
type KanbanUseCase struct {
	stageRepo    repository.StageRepository
	lotRepo      repository.LotRepository
	movementRepo repository.MovementRepository
}

// NewKanbanUseCase construye el caso de uso.
func NewKanbanUseCase(
	stageRepo repository.StageRepository,
	lotRepo repository.LotRepository,
	movementRepo repository.MovementRepository,
) *KanbanUseCase {
	return &KanbanUseCase{stageRepo: stageRepo, lotRepo: lotRepo, movementRepo: movementRepo}
}

// GetBoard devuelve el tablero para (chain, purpose). Una cadena sin etapas
// sembradas produce un tablero vacío, no un error. Las columnas sin lotes se
// incluyen. Cada tarjeta lleva el saldo actual del lote si hay movimientos
// registrados; sin movimientos el saldo es nil ("desconocido", no cero).
func (uc *KanbanUseCase) GetBoard(ctx context.Context, tenantID, chain string, purpose production.PurposeFilter) (*dto.KanbanBoardResponse, error) {
	board := &dto.KanbanBoardResponse{
		Chain:         chain,
		PurposeFilter: purpose.Mode(),
		Purpose:       purpose.Value(),
		Columns:       []dto.KanbanColumn{},
	}

	stages, err := uc.stageRepo.ListByChain(tenantID, chain, purpose)
	if err != nil {
		return nil, err
	}
	if len(stages) == 0 {
		return board, nil
	}

	stageIDs := make([]string, 0, len(stages))
	for _, s := range stages {
		stageIDs = append(stageIDs, s.ID)
	}
	lots, err := uc.lotRepo.ListByStageIDs(tenantID, stageIDs)
	if err != nil {
		return nil, err
	}

	movements, err := uc.movementRepo.ListByTenant(tenantID)
	if err != nil {
		return nil, err
	}
	balances := sumByLot(movements)

	// Agrupar lotes por etapa actual
	byStage := make(map[string][]dto.KanbanCard, len(stages))
	for _, lot := range lots {
		if lot.StageID == nil {
			continue
		}
		card := dto.KanbanCard{LotID: lot.ID, Name: lot.Name, Code: lot.Code}
		if bal, ok := balances[lot.ID]; ok {
			b := bal
			card.Balance = &b
		}
		byStage[*lot.StageID] = append(byStage[*lot.StageID], card)
	}

	for _, s := range stages {
		cards := byStage[s.ID]
		if cards == nil {
			cards = []dto.KanbanCard{}
		}
		board.Columns = append(board.Columns, dto.KanbanColumn{
			StageID:    s.ID,
			Name:       s.Name,
			Code:       s.Code,
			IsTerminal: s.IsTerminal,
			SortOrder:  s.SortOrder,
			Lots:       cards,
		})
	}
	return board, nil
}
