package dto

import (
	"errors"

	"github.com/jhoicas/inventario-agro/internal/domain"
)

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorWithDetails error HTTP con detalle por fila (lotes de movimientos).
type ErrorWithDetails struct {
	ErrorResponse
	Details []BatchRowFailureDTO `json:"details,omitempty"`
}

// ErrorCode código estable de un error de dominio para respuestas y detalle de lotes.
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, domain.ErrProductNotFound):
		return "NOT_FOUND"
	case errors.Is(err, domain.ErrInsufficientStock):
		return "INSUFFICIENT_STOCK"
	case errors.Is(err, domain.ErrInvalidInput):
		return "VALIDATION"
	case errors.Is(err, domain.ErrDuplicate):
		return "DUPLICATE"
	case errors.Is(err, domain.ErrParseFailure):
		return "PARSE_FAILURE"
	case errors.Is(err, domain.ErrConfirmationRequired):
		return "CONFIRMATION_REQUIRED"
	default:
		return "INTERNAL"
	}
}
