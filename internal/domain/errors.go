package domain

import "errors"

// Errores de dominio (sin dependencias externas). Cada uno tiene un mapeo 1:1
// a código y status HTTP en la capa de interfaces.
var (
	ErrUserTaken         = errors.New("el email ya está registrado")
	ErrUserNotExists     = errors.New("usuario no encontrado")
	ErrInvalidPassword   = errors.New("credenciales inválidas")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("rol inválido para la operación")
	ErrProductExists     = errors.New("el producto ya existe")
	ErrProductNotExists  = errors.New("producto no encontrado")
	ErrOrderNotExists    = errors.New("orden no encontrada")
	ErrTooManyProducts   = errors.New("cantidad de productos fuera de rango")
	ErrMissingProducts   = errors.New("la orden referencia productos inexistentes")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrInvalidInput      = errors.New("entrada inválida")
)
