package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/inventario-agro/internal/domain/entity"
)

// RegisterMovementRequest body para POST /api/movements.
// Fecha acepta RFC3339, "2006-01-02T15:04" (datetime-local del formulario) o "2006-01-02".
type RegisterMovementRequest struct {
	Warehouse   string   `json:"almacen"`
	Kind        string   `json:"tipo"`
	ProductCode string   `json:"codigoProducto"`
	Quantity    *float64 `json:"cantidad"`
	Date        string   `json:"fecha"`
	Operator    string   `json:"usuario,omitempty"`
	Comment     string   `json:"comentario,omitempty"`
}

// BatchMovementRow una fila del formulario de movimientos múltiples.
type BatchMovementRow struct {
	ProductCode string   `json:"codigoProducto"`
	Quantity    *float64 `json:"cantidad"`
}

// BatchMovementRequest body para POST /api/movements/batch. Tipo, almacén, fecha y comentario son comunes.
type BatchMovementRequest struct {
	Warehouse string             `json:"almacen"`
	Kind      string             `json:"tipo"`
	Date      string             `json:"fecha"`
	Operator  string             `json:"usuario,omitempty"`
	Comment   string             `json:"comentario,omitempty"`
	Rows      []BatchMovementRow `json:"filas"`
}

// BatchRowFailureDTO fila omitida del lote y el motivo.
type BatchRowFailureDTO struct {
	Row         int    `json:"fila"` // 1-based, como en el formulario
	ProductCode string `json:"codigoProducto"`
	Code        string `json:"code"`
	Message     string `json:"message"`
}

// BatchMovementResponse resultado de un lote: filas aplicadas y filas omitidas.
type BatchMovementResponse struct {
	Applied   int                  `json:"aplicados"`
	Movements []entity.Movement    `json:"movimientos"`
	Failures  []BatchRowFailureDTO `json:"omitidos"`
}

// InventoryRowDTO fila de la tabla de inventario de un almacén.
type InventoryRowDTO struct {
	entity.Product
	Status string `json:"estado"`
}

// InventoryListResponse tabla de inventario de un almacén.
type InventoryListResponse struct {
	Warehouse entity.Warehouse  `json:"almacen"`
	Total     int               `json:"total"`
	Items     []InventoryRowDTO `json:"items"`
}

// MovementListResponse libro de movimientos en orden de inserción.
type MovementListResponse struct {
	Total int               `json:"total"`
	Items []entity.Movement `json:"items"`
}

// AlertListResponse alertas vigentes y contador de no leídas.
type AlertListResponse struct {
	Unread int            `json:"noLeidas"`
	Items  []entity.Alert `json:"items"`
}

// ImportResultDTO respuesta de la importación CSV (solo informa el número de registros).
type ImportResultDTO struct {
	Warehouse entity.Warehouse `json:"almacen"`
	Rows      int              `json:"registros"`
	Message   string           `json:"message"`
}

var dateLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02T15:04", "2006-01-02"}

// ParseDate interpreta la fecha del formulario. Cadena vacía devuelve time.Time{}.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("fecha %q con formato no reconocido", s)
}

// ReplenishmentSuggestionDTO producto bajo mínimo con la cantidad sugerida para llegar al máximo.
type ReplenishmentSuggestionDTO struct {
	Code         string           `json:"codigo"`
	Name         string           `json:"nombre"`
	Warehouse    entity.Warehouse `json:"almacen"`
	Unit         string           `json:"unidad"`
	CurrentStock float64          `json:"stockActual"`
	StockMin     float64          `json:"stockMin"`
	StockMax     float64          `json:"stockMax"`
	SuggestedQty float64          `json:"cantidadSugerida"`
	Status       string           `json:"estado"`
	Priority     int              `json:"prioridad"` // 1 = más urgente
}
