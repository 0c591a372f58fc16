package dto

import "time"

// CreateTenantRequest body para POST /api/tenants.
type CreateTenantRequest struct {
	Name string `json:"name" validate:"required"`
}

// TenantResponse representación de un tenant en la API.
type TenantResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TenantListResponse listado paginado de tenants.
type TenantListResponse struct {
	Items []TenantResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
