package entity

import "time"

// Stage representa una etapa dentro de una cadena productiva (p. ej. incubación,
// levante, engorde, finalizado). El orden de SortOrder define la posición en el
// tablero kanban y la progresión sugerida; no restringe los movimientos.
type Stage struct {
	ID         string
	TenantID   string
	Chain      string  // cadena productiva: "avicultura", "porcicultura", ...
	Purpose    *string // subclasificación opcional: "postura" vs "engorde"
	Name       string
	Code       string // token corto estable, p. ej. "INCUBACION"
	SortOrder  int
	IsTerminal bool // informativo: los lotes aquí se consideran finalizados
	IsActive   bool // deshabilitar sin borrar (el historial referencia por ID)
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
