package domain

import "errors"

// Errores de dominio (sin dependencias externas). Los handlers los traducen a HTTP:
// ErrInvalidInput -> 400, ErrUnauthorized -> 401, ErrForbidden -> 403,
// ErrNotFound -> 404, ErrDuplicate -> 409; cualquier otro error es un 500 genérico.
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
)
