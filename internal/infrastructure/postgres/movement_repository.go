package postgres

import (
	"context"
	"fmt"

	"github.com/agrovida/produccion-api/internal/domain/entity"
	"github.com/agrovida/produccion-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del puerto MovementRepository sobre PostgreSQL.
// El libro de movimientos también es append-only.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste un movimiento de cantidades.
func (r *MovementRepo) Create(m *entity.Movement) error {
	query := `
		INSERT INTO movements (id, tenant_id, lot_id, location_id, movement_type, quantity, movement_date, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.TenantID, m.LotID, m.LocationID, m.Type, m.Quantity, m.Date, m.CreatedAt, m.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// ListByTenant devuelve todos los movimientos del tenant. El agregador de
// saldos suma en memoria, así que aquí no hay paginación.
func (r *MovementRepo) ListByTenant(tenantID string) ([]*entity.Movement, error) {
	query := `
		SELECT id, tenant_id, lot_id, location_id, movement_type, quantity, movement_date, created_at, created_by
		FROM movements WHERE tenant_id = $1 ORDER BY movement_date ASC, created_at ASC`
	rows, err := r.q.Query(context.Background(), query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movement
	for rows.Next() {
		var m entity.Movement
		if err := rows.Scan(&m.ID, &m.TenantID, &m.LotID, &m.LocationID, &m.Type,
			&m.Quantity, &m.Date, &m.CreatedAt, &m.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
