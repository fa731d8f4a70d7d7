package entity

import "strings"

// Warehouse identifica la partición del catálogo donde vive un producto.
type Warehouse string

// Almacenes soportados.
const (
	WarehouseConventional Warehouse = "convencional"
	WarehouseOrganic      Warehouse = "organico"
)

// Warehouses lista los almacenes en el orden en que se cargan y se presentan.
var Warehouses = []Warehouse{WarehouseConventional, WarehouseOrganic}

// ParseWarehouse normaliza el nombre recibido (mayúsculas, espacios, tilde de "orgánico").
func ParseWarehouse(s string) (Warehouse, bool) {
	v := strings.ToLower(strings.TrimSpace(s))
	v = strings.ReplaceAll(v, "á", "a")
	w := Warehouse(v)
	return w, w.Valid()
}

// Valid indica si el almacén es uno de los soportados.
func (w Warehouse) Valid() bool {
	return w == WarehouseConventional || w == WarehouseOrganic
}

// DefaultCategory es la categoría asignada cuando el CSV no trae columna "categoria".
func (w Warehouse) DefaultCategory() string {
	if w == WarehouseOrganic {
		return "organico"
	}
	return "herbicida"
}
