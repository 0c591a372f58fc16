package repository

import "github.com/agrovida/produccion-api/internal/domain/entity"

// TenantRepository define el puerto de persistencia para tenants (granjas).
type TenantRepository interface {
	Create(tenant *entity.Tenant) error
	GetByID(id string) (*entity.Tenant, error)
	List(limit, offset int) ([]*entity.Tenant, error)
}
