// Package pdf implementa la hoja de vida de un lote con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Granja  │  Lote (nombre + código) + fecha emisión  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ESTADO ACTUAL: etapa (badge FINAL si terminal) + saldo      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Desde | Hacia | Notas                        │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/agrovida/produccion-api/internal/application/reports"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 34, Green: 102, Blue: 51}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoLotReportGenerator implementa reports.LotPDFGenerator usando Maroto v2.
type MarotoLotReportGenerator struct{}

// NewMarotoLotReportGenerator construye el generador.
func NewMarotoLotReportGenerator() *MarotoLotReportGenerator { return &MarotoLotReportGenerator{} }

// GenerateLotPDF genera el PDF y devuelve sus bytes.
func (g *MarotoLotReportGenerator) GenerateLotPDF(_ context.Context, data reports.LotReportData) ([]byte, error) {
	title := "Hoja de vida de lote"
	author := "produccion-api"
	if data.Tenant != nil {
		author = data.Tenant.Name
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		WithAuthor(author, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(statusRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(historyHeaderRow())
	for _, r := range historyRows(data.Events) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: granja (izq) y lote + fecha de emisión (der).
func headerRow(data reports.LotReportData) core.Row {
	granja := "—"
	if data.Tenant != nil {
		granja = data.Tenant.Name
	}
	return row.New(18).Add(
		col.New(7).Add(
			text.New(granja, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Hoja de vida de lote", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(data.Lot.Name, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 1,
			}),
			text.New("Código: "+data.Lot.Code, props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
			text.New("Emitido: "+time.Now().Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 13, Color: colorGray,
			}),
		),
	)
}

// statusRow: etapa actual (con marca FINAL si es terminal) y saldo.
func statusRow(data reports.LotReportData) core.Row {
	etapa := "Sin etapa"
	if data.CurrentStage != nil {
		etapa = data.CurrentStage.Name
		if data.CurrentStage.IsTerminal {
			etapa += " (FINAL)"
		}
	}
	saldo := "desconocido"
	if data.Balance != nil {
		saldo = data.Balance.String()
	}
	return row.New(12).Add(
		col.New(6).Add(
			text.New("ETAPA ACTUAL", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(etapa, props.Text{Size: 10, Top: 6}),
		),
		col.New(6).Add(
			text.New("SALDO ACTUAL", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1, Align: align.Right,
			}),
			text.New(saldo, props.Text{Size: 10, Top: 6, Align: align.Right}),
		),
	)
}

// historyHeaderRow: cabecera de la tabla de transiciones.
func historyHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fecha", 2, align.Left),
		h("Desde", 3, align.Left),
		h("Hacia", 3, align.Left),
		h("Notas", 4, align.Left),
	)
}

// historyRows: una fila por transición, de la más reciente a la más antigua.
func historyRows(events []reports.EventLine) []core.Row {
	result := make([]core.Row, 0, len(events))
	for _, ev := range events {
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				ev.EventDate.Format("02/01/2006"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(3).Add(text.New(
				ev.FromName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(3).Add(text.New(
				ev.ToName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(4).Add(text.New(
				ev.Notes,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
		))
	}
	return result
}
