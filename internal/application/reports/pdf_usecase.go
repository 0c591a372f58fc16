// Package reports arma la hoja de vida de un lote en PDF: datos del lote,
// etapa actual, saldo y el historial completo de transiciones.
package reports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/agrovida/produccion-api/internal/domain"
	"github.com/agrovida/produccion-api/internal/domain/entity"
	"github.com/agrovida/produccion-api/internal/domain/repository"
)

// PDFUseCase resuelve los datos del reporte y delega el render al generador.
type PDFUseCase struct {
	lotRepo      repository.LotRepository
	stageRepo    repository.StageRepository
	eventRepo    repository.StageEventRepository
	movementRepo repository.MovementRepository
	tenantRepo   repository.TenantRepository
	generator    LotPDFGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(
	lotRepo repository.LotRepository,
	stageRepo repository.StageRepository,
	eventRepo repository.StageEventRepository,
	movementRepo repository.MovementRepository,
	tenantRepo repository.TenantRepository,
	generator LotPDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{
		lotRepo:      lotRepo,
		stageRepo:    stageRepo,
		eventRepo:    eventRepo,
		movementRepo: movementRepo,
		tenantRepo:   tenantRepo,
		generator:    generator,
	}
}

// GenerateLotReport genera el PDF de un lote del tenant.
func (uc *PDFUseCase) GenerateLotReport(ctx context.Context, tenantID, lotID string) ([]byte, error) {
	lot, err := uc.lotRepo.GetByID(lotID)
	if err != nil {
		return nil, err
	}
	if lot == nil || lot.TenantID != tenantID {
		return nil, domain.ErrLotNotFound
	}
	tenant, err := uc.tenantRepo.GetByID(tenantID)
	if err != nil {
		return nil, err
	}

	data := LotReportData{Lot: lot, Tenant: tenant}

	// Etapa actual (si el lote tiene una)
	stageNames := map[string]string{}
	if lot.StageID != nil {
		stage, err := uc.stageRepo.GetByID(*lot.StageID)
		if err != nil {
			return nil, err
		}
		data.CurrentStage = stage
		if stage != nil {
			stageNames[stage.ID] = stage.Name
		}
	}

	// Saldo actual: suma de los movimientos del lote; sin filas queda nil
	movements, err := uc.movementRepo.ListByTenant(tenantID)
	if err != nil {
		return nil, err
	}
	data.Balance = lotBalance(movements, lot.ID)

	// Historial con nombres de etapa resueltos (cache local de lookups)
	events, err := uc.eventRepo.ListByLot(tenantID, lotID)
	if err != nil {
		return nil, err
	}
	for _, ev := range events {
		line := EventLine{EventDate: ev.EventDate, FromName: "—"}
		if ev.FromStageID != nil {
			name, err := uc.stageName(stageNames, *ev.FromStageID)
			if err != nil {
				return nil, err
			}
			line.FromName = name
		}
		name, err := uc.stageName(stageNames, ev.ToStageID)
		if err != nil {
			return nil, err
		}
		line.ToName = name
		if ev.Notes != nil {
			line.Notes = *ev.Notes
		}
		data.Events = append(data.Events, line)
	}

	return uc.generator.GenerateLotPDF(ctx, data)
}

// stageName resuelve el nombre de una etapa con cache; una etapa borrada de
// forma anómala se muestra por su ID antes que romper el reporte.
func (uc *PDFUseCase) stageName(cache map[string]string, stageID string) (string, error) {
	if name, ok := cache[stageID]; ok {
		return name, nil
	}
	stage, err := uc.stageRepo.GetByID(stageID)
	if err != nil {
		return "", err
	}
	name := stageID
	if stage != nil {
		name = stage.Name
	}
	cache[stageID] = name
	return name, nil
}

// lotBalance suma los movimientos de un lote; sin filas devuelve nil
// ("desconocido"), que el render distingue de un saldo cero real.
func lotBalance(movements []*entity.Movement, lotID string) *decimal.Decimal {
	var total decimal.Decimal
	found := false
	for _, m := range movements {
		if m.LotID != lotID {
			continue
		}
		found = true
		if m.Quantity != nil {
			total = total.Add(*m.Quantity)
		}
	}
	if !found {
		return nil
	}
	return &total
}
