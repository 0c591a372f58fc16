package reports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/agrovida/produccion-api/internal/domain/entity"
)

// EventLine una transición ya resuelta a nombres de etapa para el reporte.
type EventLine struct {
	EventDate time.Time
	FromName  string // "—" si el lote no tenía etapa previa
	ToName    string
	Notes     string
}

// LotReportData todo lo que necesita el render del reporte de un lote.
type LotReportData struct {
	Lot          *entity.Lot
	Tenant       *entity.Tenant
	CurrentStage *entity.Stage    // nil si el lote no tiene etapa
	Balance      *decimal.Decimal // nil si no hay movimientos (desconocido)
	Events       []EventLine      // más reciente primero
}

// LotPDFGenerator puerto de render del reporte (lo implementa infrastructure/pdf).
type LotPDFGenerator interface {
	GenerateLotPDF(ctx context.Context, data LotReportData) ([]byte, error)
}
