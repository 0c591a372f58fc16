package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/agrovida/produccion-api/internal/domain/entity"
	"github.com/agrovida/produccion-api/internal/domain/repository"
)

var _ repository.LotRepository = (*LotRepo)(nil)

// LotRepo implementación del puerto LotRepository sobre PostgreSQL.
type LotRepo struct {
	q Querier
}

// NewLotRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLotRepository(q Querier) *LotRepo {
	return &LotRepo{q: q}
}

// Create persiste un lote nuevo (sin etapa).
func (r *LotRepo) Create(lot *entity.Lot) error {
	query := `
		INSERT INTO lots (id, tenant_id, name, code, stage_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		lot.ID, lot.TenantID, lot.Name, lot.Code, lot.StageID, lot.CreatedAt, lot.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert lot: %w", err)
	}
	return nil
}

// GetByID obtiene un lote por ID.
func (r *LotRepo) GetByID(id string) (*entity.Lot, error) {
	query := `
		SELECT id, tenant_id, name, code, stage_id, created_at, updated_at
		FROM lots WHERE id = $1`
	var l entity.Lot
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&l.ID, &l.TenantID, &l.Name, &l.Code, &l.StageID, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lot: %w", err)
	}
	return &l, nil
}

// Update actualiza nombre y código de un lote. El stage_id se muta solo vía UpdateStageIf.
func (r *LotRepo) Update(lot *entity.Lot) error {
	query := `
		UPDATE lots SET name = $2, code = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		lot.ID, lot.Name, lot.Code, lot.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update lot: %w", err)
	}
	return nil
}

// ListByTenant lista lotes del tenant con paginación.
func (r *LotRepo) ListByTenant(tenantID string, limit, offset int) ([]*entity.Lot, error) {
	query := `
		SELECT id, tenant_id, name, code, stage_id, created_at, updated_at
		FROM lots WHERE tenant_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, tenantID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list lots: %w", err)
	}
	defer rows.Close()
	return scanLots(rows)
}

// ListByStageIDs lista los lotes del tenant cuyo stage_id está en el conjunto dado.
func (r *LotRepo) ListByStageIDs(tenantID string, stageIDs []string) ([]*entity.Lot, error) {
	if len(stageIDs) == 0 {
		return nil, nil
	}
	query := `
		SELECT id, tenant_id, name, code, stage_id, created_at, updated_at
		FROM lots WHERE tenant_id = $1 AND stage_id = ANY($2) ORDER BY created_at ASC`
	rows, err := r.q.Query(context.Background(), query, tenantID, stageIDs)
	if err != nil {
		return nil, fmt.Errorf("list lots by stages: %w", err)
	}
	defer rows.Close()
	return scanLots(rows)
}

// UpdateStageIf actualiza stage_id solo si el valor actual coincide con from
// (compare-and-swap; IS NOT DISTINCT FROM compara también contra NULL).
// Devuelve false si ninguna fila coincidió: otro movimiento ganó la carrera.
func (r *LotRepo) UpdateStageIf(lotID string, from *string, to string, updatedAt time.Time) (bool, error) {
	query := `
		UPDATE lots SET stage_id = $3, updated_at = $4
		WHERE id = $1 AND stage_id IS NOT DISTINCT FROM $2`
	cmd, err := r.q.Exec(context.Background(), query, lotID, from, to, updatedAt)
	if err != nil {
		return false, fmt.Errorf("update lot stage: %w", err)
	}
	return cmd.RowsAffected() == 1, nil
}

func scanLots(rows pgx.Rows) ([]*entity.Lot, error) {
	var list []*entity.Lot
	for rows.Next() {
		var l entity.Lot
		if err := rows.Scan(&l.ID, &l.TenantID, &l.Name, &l.Code, &l.StageID, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan lot: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
