package entity

import "time"

// AlertKind tipo de alerta de stock.
type AlertKind string

// Tipos de alerta.
const (
	AlertOutOfStock AlertKind = "stock-cero"
	AlertLowStock   AlertKind = "stock-bajo"
)

// Alert advertencia derivada del inventario. Read es el único campo mutable.
type Alert struct {
	ID          string    `json:"id"`
	Kind        AlertKind `json:"tipo"`
	Message     string    `json:"mensaje"`
	Date        time.Time `json:"fecha"`
	Read        bool      `json:"leida"`
	Warehouse   Warehouse `json:"almacen,omitempty"`
	ProductCode string    `json:"codigoProducto,omitempty"`
}
