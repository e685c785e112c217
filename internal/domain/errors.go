package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrEmptyCart          = errors.New("el carrito está vacío")
	ErrInvalidTransition  = errors.New("transición de estado inválida")
)
