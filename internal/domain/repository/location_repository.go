package repository

import "github.com/agrovida/produccion-api/internal/domain/entity"

// LocationRepository define el puerto de persistencia para ubicaciones.
type LocationRepository interface {
	Create(location *entity.Location) error
	GetByID(id string) (*entity.Location, error)
	ListByTenant(tenantID string, limit, offset int) ([]*entity.Location, error)
}
