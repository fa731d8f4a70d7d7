package entity

import "time"

// MovementKind tipo de movimiento de inventario.
type MovementKind string

// Tipos de movimiento.
const (
	MovementIn     MovementKind = "entrada"
	MovementOut    MovementKind = "salida"
	MovementAdjust MovementKind = "ajuste" // fija el stock al valor indicado
)

// Valid indica si el tipo es uno de los soportados.
func (k MovementKind) Valid() bool {
	return k == MovementIn || k == MovementOut || k == MovementAdjust
}

// Movement es un registro inmutable del libro de movimientos.
// El orden del libro es el de inserción, no el de Date.
type Movement struct {
	ID          int64        `json:"id"`
	Date        time.Time    `json:"fecha"`
	Kind        MovementKind `json:"tipo"`
	Warehouse   Warehouse    `json:"almacen"`
	ProductCode string       `json:"codigoProducto"`
	Quantity    float64      `json:"cantidad"`
	Operator    string       `json:"usuario"`
	Comment     string       `json:"comentario"`
}
