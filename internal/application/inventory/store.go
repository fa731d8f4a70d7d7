package inventory

import (
	"fmt"
	"math"

	"github.com/jhoicas/inventario-agro/internal/domain"
	"github.com/jhoicas/inventario-agro/internal/domain/entity"
	stock "github.com/jhoicas/inventario-agro/internal/domain/inventory"
)

// Store colección ordenada de productos: fuente única de verdad del stock.
// No es segura para uso concurrente; Session serializa el acceso.
type Store struct {
	products []entity.Product
}

// NewStore construye el inventario validando que (código, almacén) no se repita.
func NewStore(products []entity.Product) (*Store, error) {
	s := &Store{products: make([]entity.Product, 0, len(products))}
	for _, p := range products {
		if err := s.Add(p); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Add agrega un producto al final. ErrDuplicate si la clave ya existe.
func (s *Store) Add(p entity.Product) error {
	if !p.Warehouse.Valid() || p.Code == "" {
		return fmt.Errorf("%w: código y almacén requeridos", domain.ErrInvalidInput)
	}
	if !finiteAmounts(p) {
		return fmt.Errorf("%w: %s tiene cantidades no finitas", domain.ErrInvalidInput, p.Code)
	}
	if s.find(p.Code, p.Warehouse) >= 0 {
		return fmt.Errorf("%w: %s en %s", domain.ErrDuplicate, p.Code, p.Warehouse)
	}
	s.products = append(s.products, p.Clone())
	return nil
}

// Get devuelve una copia del producto.
func (s *Store) Get(code string, warehouse entity.Warehouse) (entity.Product, error) {
	i := s.find(code, warehouse)
	if i < 0 {
		return entity.Product{}, domain.ErrProductNotFound
	}
	return s.products[i].Clone(), nil
}

// ApplyMovement aplica entrada/salida/ajuste sobre el producto (código, almacén) y devuelve el nuevo stock.
// Si falla, ningún producto cambia.
func (s *Store) ApplyMovement(code string, warehouse entity.Warehouse, kind entity.MovementKind, quantity float64) (float64, error) {
	i := s.find(code, warehouse)
	if i < 0 {
		return 0, domain.ErrProductNotFound
	}
	next, err := stock.ApplyQuantity(s.products[i].Stock, kind, quantity)
	if err != nil {
		return s.products[i].Stock, err
	}
	s.products[i].Stock = next
	return next, nil
}

// Update reemplaza el producto (código, almacén) por el resultado de fn.
// fn no puede cambiar la clave.
func (s *Store) Update(code string, warehouse entity.Warehouse, fn func(p *entity.Product)) (entity.Product, error) {
	i := s.find(code, warehouse)
	if i < 0 {
		return entity.Product{}, domain.ErrProductNotFound
	}
	p := s.products[i].Clone()
	fn(&p)
	p.Code, p.Warehouse = code, warehouse
	s.products[i] = p
	return p.Clone(), nil
}

// Snapshot copia los productos en orden de inserción.
func (s *Store) Snapshot() []entity.Product {
	out := make([]entity.Product, len(s.products))
	for i, p := range s.products {
		out[i] = p.Clone()
	}
	return out
}

// Len número de productos.
func (s *Store) Len() int { return len(s.products) }

func (s *Store) find(code string, warehouse entity.Warehouse) int {
	for i := range s.products {
		if s.products[i].Matches(code, warehouse) {
			return i
		}
	}
	return -1
}

func finiteAmounts(p entity.Product) bool {
	values := []float64{p.Stock, p.StockMin, p.StockMax}
	if p.Differences != nil {
		values = append(values, *p.Differences)
	}
	if p.FinalStock != nil {
		values = append(values, *p.FinalStock)
	}
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
