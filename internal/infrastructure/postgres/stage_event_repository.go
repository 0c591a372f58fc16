package postgres

import (
	"context"
	"fmt"

	"github.com/agrovida/produccion-api/internal/domain/entity"
	"github.com/agrovida/produccion-api/internal/domain/production"
	"github.com/agrovida/produccion-api/internal/domain/repository"
)

var _ repository.StageEventRepository = (*StageEventRepo)(nil)

// StageEventRepo implementación del puerto StageEventRepository sobre PostgreSQL.
// La tabla stage_events es append-only: no hay UPDATE ni DELETE aquí.
type StageEventRepo struct {
	q Querier
}

// NewStageEventRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStageEventRepository(q Querier) *StageEventRepo {
	return &StageEventRepo{q: q}
}

// Create persiste un evento de transición. Meta va a una columna jsonb y se
// guarda siempre como objeto (nunca NULL).
func (r *StageEventRepo) Create(event *entity.StageEvent) error {
	query := `
		INSERT INTO stage_events (id, tenant_id, lot_id, from_stage_id, to_stage_id, event_date, notes, meta, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		event.ID, event.TenantID, event.LotID, event.FromStageID, event.ToStageID,
		event.EventDate, event.Notes, production.NormalizeMeta(event.Meta), event.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stage event: %w", err)
	}
	return nil
}

// ListByLot devuelve el historial de un lote del más reciente al más antiguo
// (fecha de negocio, luego fecha de creación como desempate).
func (r *StageEventRepo) ListByLot(tenantID, lotID string) ([]*entity.StageEvent, error) {
	query := `
		SELECT id, tenant_id, lot_id, from_stage_id, to_stage_id, event_date, notes, meta, created_at
		FROM stage_events WHERE tenant_id = $1 AND lot_id = $2
		ORDER BY event_date DESC, created_at DESC`
	rows, err := r.q.Query(context.Background(), query, tenantID, lotID)
	if err != nil {
		return nil, fmt.Errorf("list stage events: %w", err)
	}
	defer rows.Close()
	var list []*entity.StageEvent
	for rows.Next() {
		var ev entity.StageEvent
		if err := rows.Scan(&ev.ID, &ev.TenantID, &ev.LotID, &ev.FromStageID, &ev.ToStageID,
			&ev.EventDate, &ev.Notes, &ev.Meta, &ev.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan stage event: %w", err)
		}
		// Filas antiguas con meta NULL salen igualmente como mapa vacío
		ev.Meta = production.NormalizeMeta(ev.Meta)
		list = append(list, &ev)
	}
	return list, rows.Err()
}
