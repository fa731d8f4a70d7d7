package dto

// CreateProductRequest entrada para crear un producto (formulario "Nuevo producto").
// Los numéricos son punteros para distinguir "no enviado" de cero.
type CreateProductRequest struct {
	Code             string   `json:"codigo"`
	Name             string   `json:"nombre"`
	Category         string   `json:"categoria"`
	Unit             string   `json:"unidad"`
	Warehouse        string   `json:"almacen"`
	ActiveIngredient string   `json:"ingrediente"`
	Stock            *float64 `json:"stock"`
	StockMin         *float64 `json:"stockMin"`
	StockMax         *float64 `json:"stockMax"`
	Supplier         string   `json:"proveedor"`
	Description      string   `json:"descripcion"`
}

// UpdateProductRequest entrada para editar un producto; solo se aplican los campos enviados.
// Código y almacén identifican el producto y no se modifican.
type UpdateProductRequest struct {
	Name             *string  `json:"nombre"`
	Category         *string  `json:"categoria"`
	Unit             *string  `json:"unidad"`
	ActiveIngredient *string  `json:"ingrediente"`
	Stock            *float64 `json:"stock"`
	StockMin         *float64 `json:"stockMin"`
	StockMax         *float64 `json:"stockMax"`
	Supplier         *string  `json:"proveedor"`
	Description      *string  `json:"descripcion"`
}
