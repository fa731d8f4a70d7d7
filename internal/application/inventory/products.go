package inventory

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/inventario-agro/internal/application/dto"
	"github.com/jhoicas/inventario-agro/internal/domain"
	"github.com/jhoicas/inventario-agro/internal/domain/entity"
	stock "github.com/jhoicas/inventario-agro/internal/domain/inventory"
	"github.com/jhoicas/inventario-agro/internal/domain/repository"
)

// CreateProduct agrega un producto nuevo. Requiere código, nombre, categoría, unidad, almacén y los tres numéricos.
// No recalcula alertas; eso ocurre con el siguiente movimiento.
func (s *Session) CreateProduct(ctx context.Context, in dto.CreateProductRequest) (entity.Product, error) {
	wh, ok := entity.ParseWarehouse(in.Warehouse)
	code, name := strings.TrimSpace(in.Code), strings.TrimSpace(in.Name)
	category, unit := strings.TrimSpace(in.Category), strings.TrimSpace(in.Unit)
	if !ok || code == "" || name == "" || category == "" || unit == "" ||
		in.Stock == nil || in.StockMin == nil || in.StockMax == nil {
		return entity.Product{}, fmt.Errorf("%w: complete todos los campos obligatorios", domain.ErrInvalidInput)
	}
	if err := validAmounts(*in.Stock, *in.StockMin, *in.StockMax); err != nil {
		return entity.Product{}, err
	}

	p := entity.Product{
		Code:             code,
		Name:             name,
		Unit:             unit,
		ActiveIngredient: strings.TrimSpace(in.ActiveIngredient),
		Warehouse:        wh,
		Category:         category,
		Stock:            *in.Stock,
		StockMin:         *in.StockMin,
		StockMax:         *in.StockMax,
		Supplier:         strings.TrimSpace(in.Supplier),
		Description:      strings.TrimSpace(in.Description),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.store.Add(p); err != nil {
		return entity.Product{}, err
	}
	s.saveState(ctx, repository.KeyProducts)
	return p.Clone(), nil
}

// UpdateProduct combina los campos enviados sobre el producto existente.
func (s *Session) UpdateProduct(ctx context.Context, warehouse, code string, in dto.UpdateProductRequest) (entity.Product, error) {
	wh, ok := entity.ParseWarehouse(warehouse)
	if !ok {
		return entity.Product{}, fmt.Errorf("%w: almacén %q", domain.ErrInvalidInput, warehouse)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.store.Get(code, wh)
	if err != nil {
		return entity.Product{}, err
	}
	st, stockMin, stockMax := current.Stock, current.StockMin, current.StockMax
	if in.Stock != nil {
		st = *in.Stock
	}
	if in.StockMin != nil {
		stockMin = *in.StockMin
	}
	if in.StockMax != nil {
		stockMax = *in.StockMax
	}
	if err := validAmounts(st, stockMin, stockMax); err != nil {
		return entity.Product{}, err
	}
	for _, f := range []*string{in.Name, in.Category, in.Unit} {
		if f != nil && strings.TrimSpace(*f) == "" {
			return entity.Product{}, fmt.Errorf("%w: nombre, categoría y unidad no pueden quedar vacíos", domain.ErrInvalidInput)
		}
	}

	updated, err := s.store.Update(code, wh, func(p *entity.Product) {
		setString(&p.Name, in.Name)
		setString(&p.Category, in.Category)
		setString(&p.Unit, in.Unit)
		setString(&p.ActiveIngredient, in.ActiveIngredient)
		setString(&p.Supplier, in.Supplier)
		setString(&p.Description, in.Description)
		p.Stock, p.StockMin, p.StockMax = st, stockMin, stockMax
	})
	if err != nil {
		return entity.Product{}, err
	}
	s.saveState(ctx, repository.KeyProducts)
	return updated, nil
}

// Products lista productos en orden de inventario. warehouse vacío incluye ambos almacenes;
// query filtra por código, nombre, ingrediente, categoría o proveedor.
func (s *Session) Products(warehouse entity.Warehouse, query string) []entity.Product {
	s.mu.Lock()
	all := s.store.Snapshot()
	s.mu.Unlock()

	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]entity.Product, 0, len(all))
	for _, p := range all {
		if warehouse != "" && p.Warehouse != warehouse {
			continue
		}
		if q != "" && !containsAny(q, p.Code, p.Name, p.ActiveIngredient, p.Category, p.Supplier) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Product devuelve un producto por (almacén, código).
func (s *Session) Product(warehouse entity.Warehouse, code string) (entity.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Get(code, warehouse)
}

// Inventory tabla de un almacén con el estado de cada fila.
// En el orgánico el estado usa stockFinal cuando viene informado.
func (s *Session) Inventory(warehouse entity.Warehouse, query string) (dto.InventoryListResponse, error) {
	if !warehouse.Valid() {
		return dto.InventoryListResponse{}, fmt.Errorf("%w: almacén %q", domain.ErrInvalidInput, warehouse)
	}
	s.mu.Lock()
	all := s.store.Snapshot()
	s.mu.Unlock()

	q := strings.ToLower(strings.TrimSpace(query))
	items := make([]dto.InventoryRowDTO, 0)
	for _, p := range all {
		if p.Warehouse != warehouse {
			continue
		}
		row := InventoryRow(p)
		if q != "" && !rowMatches(row, q) {
			continue
		}
		items = append(items, row)
	}
	return dto.InventoryListResponse{Warehouse: warehouse, Total: len(items), Items: items}, nil
}

// InventoryRow fila de la tabla con su estado calculado.
func InventoryRow(p entity.Product) dto.InventoryRowDTO {
	return dto.InventoryRowDTO{
		Product: p,
		Status:  string(stock.Classify(p.DisplayStock(), p.StockMin, p.StockMax)),
	}
}

// rowMatches replica la búsqueda sobre las celdas visibles de la tabla.
func rowMatches(row dto.InventoryRowDTO, q string) bool {
	cells := []string{
		row.Code, row.Name, row.Unit, row.ActiveIngredient, row.Status,
		stock.FormatQuantity(row.Stock),
		stock.FormatQuantity(row.StockMin),
		stock.FormatQuantity(row.StockMax),
	}
	if row.FinalStock != nil {
		cells = append(cells, stock.FormatQuantity(*row.FinalStock))
	}
	if row.Differences != nil {
		cells = append(cells, stock.FormatQuantity(*row.Differences))
	}
	return containsAny(q, cells...)
}

func containsAny(q string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = strings.TrimSpace(*v)
	}
}

func validAmounts(values ...float64) error {
	for _, v := range values {
		if !stock.IsValidQuantity(v) {
			return fmt.Errorf("%w: stock, stock mínimo y máximo deben ser números no negativos", domain.ErrInvalidInput)
		}
	}
	return nil
}
