// Package inventory registra movimientos de cantidades sobre el libro que
// alimenta los saldos por lote (nacimientos, muertes, ventas, ajustes).
package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/agrovida/produccion-api/internal/application/dto"
	"github.com/agrovida/produccion-api/internal/domain"
	"github.com/agrovida/produccion-api/internal/domain/entity"
	"github.com/agrovida/produccion-api/internal/domain/repository"
)

// dateLayout formato de la fecha de negocio de un movimiento.
const dateLayout = "2006-01-02"

// RegisterMovementUseCase registra movimientos de cantidades (IN, OUT, ADJUSTMENT)
// para un lote, opcionalmente atribuidos a una ubicación. El libro es append-only:
// los saldos se derivan sumando, nunca editando filas.
type RegisterMovementUseCase struct {
	movementRepo repository.MovementRepository
	lotRepo      repository.LotRepository
	locationRepo repository.LocationRepository
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(
	movementRepo repository.MovementRepository,
	lotRepo repository.LotRepository,
	locationRepo repository.LocationRepository,
) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{
		movementRepo: movementRepo,
		lotRepo:      lotRepo,
		locationRepo: locationRepo,
	}
}

// RegisterMovement valida y persiste un movimiento. Convención de signos:
// IN se guarda positivo, OUT negativo, ADJUSTMENT con el signo que traiga.
func (uc *RegisterMovementUseCase) RegisterMovement(ctx context.Context, tenantID, userID string, in dto.RegisterMovementRequest) error {
	switch in.Type {
	case entity.MovementTypeIN, entity.MovementTypeOUT:
		if !in.Quantity.GreaterThan(decimal.Zero) {
			return domain.ErrInvalidInput
		}
	case entity.MovementTypeADJUSTMENT:
		if in.Quantity.IsZero() {
			return domain.ErrInvalidInput
		}
	default:
		return domain.ErrInvalidInput
	}
	if in.LotID == "" {
		return domain.ErrInvalidInput
	}

	date := time.Now()
	if in.Date != "" {
		parsed, err := time.Parse(dateLayout, in.Date)
		if err != nil {
			return domain.ErrInvalidInput
		}
		date = parsed
	}

	lot, err := uc.lotRepo.GetByID(in.LotID)
	if err != nil {
		return err
	}
	if lot == nil || lot.TenantID != tenantID {
		return domain.ErrLotNotFound
	}
	if in.LocationID != nil {
		location, err := uc.locationRepo.GetByID(*in.LocationID)
		if err != nil {
			return err
		}
		if location == nil || location.TenantID != tenantID {
			return domain.ErrNotFound
		}
	}

	quantity := in.Quantity
	if in.Type == entity.MovementTypeOUT {
		quantity = quantity.Neg()
	}

	now := time.Now()
	movement := &entity.Movement{
		ID:         uuid.New().String(),
		TenantID:   tenantID,
		LotID:      in.LotID,
		LocationID: in.LocationID,
		Type:       in.Type,
		Quantity:   &quantity,
		Date:       date,
		CreatedAt:  now,
		CreatedBy:  userID,
	}
	return uc.movementRepo.Create(movement)
}
