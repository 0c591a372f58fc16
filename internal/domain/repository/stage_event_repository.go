package repository

import "github.com/agrovida/produccion-api/internal/domain/entity"

// StageEventRepository define el puerto de persistencia para el historial de
// transiciones. El log es append-only: no hay Update ni Delete.
type StageEventRepository interface {
	Create(event *entity.StageEvent) error
	// ListByLot devuelve el historial completo de un lote, del más reciente al
	// más antiguo (event_date, luego created_at).
	ListByLot(tenantID, lotID string) ([]*entity.StageEvent, error)
}
