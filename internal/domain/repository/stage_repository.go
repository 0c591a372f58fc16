package repository

import (
	"github.com/agrovida/produccion-api/internal/domain/entity"
	"github.com/agrovida/produccion-api/internal/domain/production"
)

// StageRepository define el puerto de persistencia para el catálogo de etapas (DIP).
type StageRepository interface {
	Create(stage *entity.Stage) error
	GetByID(id string) (*entity.Stage, error)
	Update(stage *entity.Stage) error
	// ListByChain devuelve las etapas activas de una cadena ordenadas por sort_order.
	// El filtro de propósito es tri-estado: sin filtro, sin propósito o valor exacto.
	ListByChain(tenantID, chain string, purpose production.PurposeFilter) ([]*entity.Stage, error)
}
