package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrProductNotFound      = errors.New("producto no encontrado")
	ErrInsufficientStock    = errors.New("stock insuficiente")
	ErrInvalidInput         = errors.New("entrada inválida")
	ErrDuplicate            = errors.New("ya existe un producto con este código en el almacén")
	ErrFetchFailure         = errors.New("no se pudo cargar el archivo de datos")
	ErrParseFailure         = errors.New("datos con formato inválido")
	ErrConfirmationRequired = errors.New("la operación requiere confirmación")
)
