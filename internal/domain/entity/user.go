package entity

import "time"

// Roles de usuario.
const (
	RoleAdmin    = "admin"    // administra el catálogo de etapas y usuarios
	RoleOperario = "operario" // mueve lotes y registra movimientos
	RoleConsulta = "consulta" // solo lectura (tableros, saldos, historial)
)

// User usuario de la aplicación, pertenece a un tenant.
type User struct {
	ID           string
	TenantID     string
	Email        string
	PasswordHash string
	Name         string
	Role         string
	Status       string // "active" | "disabled"
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
