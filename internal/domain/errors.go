package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")

	// ErrInvalidWindow violación de contrato: una ventana de días no positiva
	// no puede producir un rango inclusivo bien formado.
	ErrInvalidWindow = errors.New("la ventana de días debe ser mayor que cero")
)
