package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrEmptySale         = errors.New("la venta no tiene líneas con cantidad mayor a cero")
	ErrMissingClient     = errors.New("cliente no indicado")
	ErrMissingVehicle    = errors.New("vehículo no indicado")
	ErrNoSalesToClose    = errors.New("no hay ventas para cerrar en el período")
)
