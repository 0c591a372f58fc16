package dto

import "github.com/shopspring/decimal"

// KanbanCard un lote dentro de una columna. Balance nil significa "desconocido"
// (sin movimientos registrados), distinto de cero.
type KanbanCard struct {
	LotID   string           `json:"lot_id"`
	Name    string           `json:"name"`
	Code    string           `json:"code"`
	Balance *decimal.Decimal `json:"balance"`
}

// KanbanColumn una etapa activa con sus lotes; aparece aunque esté vacía.
type KanbanColumn struct {
	StageID    string       `json:"stage_id"`
	Name       string       `json:"name"`
	Code       string       `json:"code"`
	IsTerminal bool         `json:"is_terminal"`
	SortOrder  int          `json:"sort_order"`
	Lots       []KanbanCard `json:"lots"`
}

// KanbanBoardResponse tablero para una cadena (y propósito opcional).
// Un tablero sin columnas es un estado válido (catálogo sin sembrar).
// PurposeFilter desambigua el filtro aplicado: "any", "none" o "exact";
// Purpose solo acompaña al modo "exact".
type KanbanBoardResponse struct {
	Chain         string         `json:"chain"`
	PurposeFilter string         `json:"purpose_filter"`
	Purpose       *string        `json:"purpose,omitempty"`
	Columns       []KanbanColumn `json:"columns"`
}
