package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrInvalidChangeType = errors.New("tipo de cambio de inventario desconocido")
	ErrInvalidQuantity   = errors.New("cantidad inválida")
	ErrMalformedAmount   = errors.New("monto no parseable")
	ErrInvalidTimestamp  = errors.New("fecha inválida")
)
