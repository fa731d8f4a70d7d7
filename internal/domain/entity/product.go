package entity

// Product representa un producto agroquímico en un almacén.
// (Code, Warehouse) es único en el inventario; el mismo código puede existir en ambos almacenes.
// Differences y FinalStock solo vienen en el CSV del almacén orgánico.
type Product struct {
	Code             string    `json:"codigo"`
	Name             string    `json:"nombre"`
	Unit             string    `json:"unidad"`
	ActiveIngredient string    `json:"ingrediente"`
	Warehouse        Warehouse `json:"almacen"`
	Category         string    `json:"categoria"`
	Stock            float64   `json:"stock"`
	StockMin         float64   `json:"stockMin"`
	StockMax         float64   `json:"stockMax"`
	Supplier         string    `json:"proveedor,omitempty"`
	Description      string    `json:"descripcion,omitempty"`
	Differences      *float64  `json:"diferencias,omitempty"`
	FinalStock       *float64  `json:"stockFinal,omitempty"`
}

// Matches indica si el producto corresponde a la clave (código, almacén).
func (p *Product) Matches(code string, warehouse Warehouse) bool {
	return p.Code == code && p.Warehouse == warehouse
}

// DisplayStock es el stock que muestra la tabla del almacén: el orgánico usa stockFinal cuando existe.
func (p *Product) DisplayStock() float64 {
	if p.Warehouse == WarehouseOrganic && p.FinalStock != nil {
		return *p.FinalStock
	}
	return p.Stock
}

// Clone devuelve una copia independiente (los punteros opcionales no se comparten).
func (p Product) Clone() Product {
	if p.Differences != nil {
		v := *p.Differences
		p.Differences = &v
	}
	if p.FinalStock != nil {
		v := *p.FinalStock
		p.FinalStock = &v
	}
	return p
}
