package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas). El transporte los mapea a códigos HTTP:
// ErrInvalidInput -> 400, ErrNotFound -> 404, ErrDuplicate/ErrConflict -> 409, resto -> 500.
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrConflict     = errors.New("conflicto con el estado actual")
)

// Invalidf envuelve ErrInvalidInput con un mensaje que nombra el campo o la regla violada,
// manteniendo la comparación con errors.Is en los handlers.
func Invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
