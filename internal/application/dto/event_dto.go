package dto

import "time"

// MoveLotRequest body para POST /api/lots/:id/move.
// EventDate es fecha calendario "YYYY-MM-DD" (fecha de negocio, no de sistema).
// Meta acepta cualquier objeto JSON; valores no-objeto se normalizan a mapa vacío.
type MoveLotRequest struct {
	ToStageID string  `json:"to_stage_id" validate:"required"`
	EventDate string  `json:"event_date" validate:"required"`
	Notes     *string `json:"notes,omitempty"`
	Meta      any     `json:"meta,omitempty"`
}

// StageEventResponse representación de un evento de transición.
type StageEventResponse struct {
	ID          string         `json:"id"`
	LotID       string         `json:"lot_id"`
	FromStageID *string        `json:"from_stage_id"`
	ToStageID   string         `json:"to_stage_id"`
	EventDate   string         `json:"event_date"` // YYYY-MM-DD
	Notes       *string        `json:"notes"`
	Meta        map[string]any `json:"meta"` // nunca null
	CreatedAt   time.Time      `json:"created_at"`
}

// StageEventListResponse historial de transiciones de un lote (más reciente primero).
type StageEventListResponse struct {
	Items []StageEventResponse `json:"items"`
}
