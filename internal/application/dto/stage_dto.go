package dto

import "time"

// CreateStageRequest body para POST /api/stages.
// Code es opcional: si falta se deriva del nombre (sin tildes, mayúsculas).
type CreateStageRequest struct {
	Chain      string  `json:"chain" validate:"required"`
	Purpose    *string `json:"purpose,omitempty"`
	Name       string  `json:"name" validate:"required"`
	Code       string  `json:"code,omitempty"`
	SortOrder  *int    `json:"sort_order,omitempty"`
	IsTerminal *bool   `json:"is_terminal,omitempty"`
	IsActive   *bool   `json:"is_active,omitempty"`
}

// UpdateStageRequest body para PATCH /api/stages/:id. Solo se aplican los campos presentes.
type UpdateStageRequest struct {
	Name       *string `json:"name,omitempty"`
	Purpose    *string `json:"purpose,omitempty"`
	SortOrder  *int    `json:"sort_order,omitempty"`
	IsTerminal *bool   `json:"is_terminal,omitempty"`
	IsActive   *bool   `json:"is_active,omitempty"`
}

// StageResponse representación de una etapa en la API.
type StageResponse struct {
	ID         string    `json:"id"`
	TenantID   string    `json:"tenant_id"`
	Chain      string    `json:"chain"`
	Purpose    *string   `json:"purpose"`
	Name       string    `json:"name"`
	Code       string    `json:"code"`
	SortOrder  int       `json:"sort_order"`
	IsTerminal bool      `json:"is_terminal"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// StageListResponse listado ordenado de etapas.
type StageListResponse struct {
	Items []StageResponse `json:"items"`
}
