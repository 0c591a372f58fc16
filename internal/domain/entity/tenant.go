package entity

import "time"

// Tenant representa una granja o empresa productora. Todas las operaciones del
// sistema están obligatoriamente acotadas por TenantID.
type Tenant struct {
	ID        string
	Name      string
	Status    string // "active" | "suspended"
	CreatedAt time.Time
	UpdatedAt time.Time
}
