package repository

import (
	"time"

	"github.com/agrovida/produccion-api/internal/domain/entity"
)

// LotRepository define el puerto de persistencia para lotes.
type LotRepository interface {
	Create(lot *entity.Lot) error
	GetByID(id string) (*entity.Lot, error)
	Update(lot *entity.Lot) error
	ListByTenant(tenantID string, limit, offset int) ([]*entity.Lot, error)
	// ListByStageIDs devuelve los lotes del tenant cuyo stage_id está en el conjunto dado.
	ListByStageIDs(tenantID string, stageIDs []string) ([]*entity.Lot, error)
	// UpdateStageIf actualiza stage_id solo si su valor actual coincide con from
	// (compare-and-swap; from nil compara contra NULL). Devuelve false si la fila
	// no coincidió, señal de una escritura concurrente.
	UpdateStageIf(lotID string, from *string, to string, updatedAt time.Time) (bool, error)
}
