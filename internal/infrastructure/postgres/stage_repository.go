package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/agrovida/produccion-api/internal/domain"
	"github.com/agrovida/produccion-api/internal/domain/entity"
	"github.com/agrovida/produccion-api/internal/domain/production"
	"github.com/agrovida/produccion-api/internal/domain/repository"
)

var _ repository.StageRepository = (*StageRepo)(nil)

// StageRepo implementación del puerto StageRepository sobre PostgreSQL.
type StageRepo struct {
	q Querier
}

// NewStageRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStageRepository(q Querier) *StageRepo {
	return &StageRepo{q: q}
}

// Create persiste una etapa nueva. Un código duplicado dentro de
// (tenant, chain) se reporta como ErrDuplicate.
func (r *StageRepo) Create(stage *entity.Stage) error {
	query := `
		INSERT INTO stages (id, tenant_id, chain, purpose, name, code, sort_order, is_terminal, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		stage.ID, stage.TenantID, stage.Chain, stage.Purpose, stage.Name, stage.Code,
		stage.SortOrder, stage.IsTerminal, stage.IsActive, stage.CreatedAt, stage.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert stage: %w", err)
	}
	return nil
}

// GetByID obtiene una etapa por ID.
func (r *StageRepo) GetByID(id string) (*entity.Stage, error) {
	query := `
		SELECT id, tenant_id, chain, purpose, name, code, sort_order, is_terminal, is_active, created_at, updated_at
		FROM stages WHERE id = $1`
	var s entity.Stage
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.TenantID, &s.Chain, &s.Purpose, &s.Name, &s.Code,
		&s.SortOrder, &s.IsTerminal, &s.IsActive, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stage: %w", err)
	}
	return &s, nil
}

// Update actualiza una etapa existente.
func (r *StageRepo) Update(stage *entity.Stage) error {
	query := `
		UPDATE stages SET purpose = $2, name = $3, sort_order = $4, is_terminal = $5, is_active = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		stage.ID, stage.Purpose, stage.Name, stage.SortOrder, stage.IsTerminal, stage.IsActive, stage.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update stage: %w", err)
	}
	return nil
}

// ListByChain lista las etapas activas de una cadena ordenadas por sort_order.
// El filtro de propósito es tri-estado: sin filtro / sin propósito / valor exacto.
func (r *StageRepo) ListByChain(tenantID, chain string, purpose production.PurposeFilter) ([]*entity.Stage, error) {
	query := `
		SELECT id, tenant_id, chain, purpose, name, code, sort_order, is_terminal, is_active, created_at, updated_at
		FROM stages WHERE tenant_id = $1 AND chain = $2 AND is_active = TRUE`
	args := []any{tenantID, chain}
	if purpose.Filters() {
		if v := purpose.Value(); v != nil {
			query += " AND purpose = $3"
			args = append(args, *v)
		} else {
			query += " AND purpose IS NULL"
		}
	}
	query += " ORDER BY sort_order ASC, code ASC"

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stages: %w", err)
	}
	defer rows.Close()
	var list []*entity.Stage
	for rows.Next() {
		var s entity.Stage
		if err := rows.Scan(&s.ID, &s.TenantID, &s.Chain, &s.Purpose, &s.Name, &s.Code,
			&s.SortOrder, &s.IsTerminal, &s.IsActive, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stage: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
