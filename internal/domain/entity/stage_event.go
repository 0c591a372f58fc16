package entity

import "time"

// StageEvent es el registro inmutable de una transición de etapa: se crea
// únicamente como efecto de un movimiento aceptado y nunca se edita ni borra.
// FromStageID nil significa que el lote no tenía etapa previa.
type StageEvent struct {
	ID          string
	TenantID    string
	LotID       string
	FromStageID *string
	ToStageID   string
	EventDate   time.Time // fecha de negocio, puede diferir de CreatedAt
	Notes       *string
	Meta        map[string]any // siempre un mapa concreto, nunca nil
	CreatedAt   time.Time
}
