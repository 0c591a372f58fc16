package repository

import "github.com/agrovida/produccion-api/internal/domain/entity"

// MovementRepository define el puerto de persistencia para el libro de
// movimientos de cantidades.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	ListByTenant(tenantID string) ([]*entity.Movement, error)
}
