package entity

import "time"

// Location representa un sitio físico (galpón, corral, estanque) que particiona
// los movimientos de cantidades de un lote.
type Location struct {
	ID          string
	TenantID    string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
