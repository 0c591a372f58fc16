package entity

import "time"

// Lot representa un lote de animales que ocupa a lo sumo una etapa a la vez.
// StageID es nil mientras el lote no haya entrado a ninguna etapa.
type Lot struct {
	ID        string
	TenantID  string
	Name      string
	Code      string
	StageID   *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
