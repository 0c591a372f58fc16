package dto

import "time"

// CreateLotRequest body para POST /api/lots. El lote nace sin etapa.
type CreateLotRequest struct {
	Name string `json:"name" validate:"required"`
	Code string `json:"code,omitempty"`
}

// UpdateLotRequest body para PATCH /api/lots/:id. El stage_id no se toca aquí:
// solo cambia vía el movimiento de etapa.
type UpdateLotRequest struct {
	Name *string `json:"name,omitempty"`
	Code *string `json:"code,omitempty"`
}

// LotResponse representación de un lote en la API.
type LotResponse struct {
	ID        string    `json:"id"`
	TenantID  string    `json:"tenant_id"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	StageID   *string   `json:"stage_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LotListResponse listado paginado de lotes.
type LotListResponse struct {
	Items []LotResponse `json:"items"`
	Page  PageResponse  `json:"page"`
}
