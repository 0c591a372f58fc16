package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")

	// Errores del ciclo de vida de etapas: cada uno implica una acción
	// correctiva distinta para el cliente, por eso se distinguen.
	ErrStageNotFound  = errors.New("etapa no encontrada")
	ErrStageInactive  = errors.New("la etapa está deshabilitada")
	ErrLotNotFound    = errors.New("lote no encontrado")
	ErrAlreadyInStage = errors.New("el lote ya está en esa etapa")
)
