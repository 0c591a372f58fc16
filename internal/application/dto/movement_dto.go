package dto

import "github.com/shopspring/decimal"

// RegisterMovementRequest body para POST /api/movements.
// Date es opcional ("YYYY-MM-DD"); si falta se usa la fecha actual.
type RegisterMovementRequest struct {
	LotID      string          `json:"lot_id" validate:"required"`
	LocationID *string         `json:"location_id,omitempty"`
	Type       string          `json:"type" validate:"required,oneof=IN OUT ADJUSTMENT"`
	Quantity   decimal.Decimal `json:"quantity"`
	Date       string          `json:"date,omitempty"`
}
