package csvsource

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/jhoicas/inventario-agro/internal/domain/entity"
	stock "github.com/jhoicas/inventario-agro/internal/domain/inventory"
)

var (
	conventionalHeader = []string{"CÓDIGO", "PRODUCTO", "U/M", "INGREDIENTE ACTIVO", "STOCK", "STOCK MÍN", "STOCK MÁX"}
	organicHeader      = []string{"CÓDIGO", "PRODUCTO", "U/M", "INGREDIENTE ACTIVO", "STOCK", "DIFERENCIAS", "STOCK FINAL", "STOCK MÍN", "STOCK MÁX"}
)

// Writer exportación CSV del inventario de un almacén.
type Writer struct{}

// NewWriter construye el exportador.
func NewWriter() *Writer { return &Writer{} }

// WriteInventory escribe encabezado fijo por almacén y una fila por producto del almacén.
func (Writer) WriteInventory(w io.Writer, warehouse entity.Warehouse, products []entity.Product) error {
	cw := csv.NewWriter(w)
	header := conventionalHeader
	if warehouse == entity.WarehouseOrganic {
		header = organicHeader
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, p := range products {
		if p.Warehouse != warehouse {
			continue
		}
		if err := cw.Write(exportRow(p)); err != nil {
			return fmt.Errorf("fila %s: %w", p.Code, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func exportRow(p entity.Product) []string {
	q := stock.FormatQuantity
	if p.Warehouse != entity.WarehouseOrganic {
		return []string{p.Code, p.Name, p.Unit, p.ActiveIngredient, q(p.Stock), q(p.StockMin), q(p.StockMax)}
	}
	return []string{
		p.Code, p.Name, p.Unit, p.ActiveIngredient, q(p.Stock),
		optional(p.Differences), optional(p.FinalStock),
		q(p.StockMin), q(p.StockMax),
	}
}

func optional(v *float64) string {
	if v == nil {
		return ""
	}
	return stock.FormatQuantity(*v)
}
