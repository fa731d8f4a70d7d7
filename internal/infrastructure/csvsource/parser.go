// Package csvsource lee el catálogo de productos desde CSV (archivo local o URL) y escribe la exportación.
package csvsource

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/spf13/cast"
	"golang.org/x/text/encoding/charmap"

	"github.com/jhoicas/inventario-agro/internal/domain"
	"github.com/jhoicas/inventario-agro/internal/domain/entity"
	"github.com/jhoicas/inventario-agro/pkg/logger"
)

// Encodings soportados para los CSV de entrada.
const (
	EncodingUTF8   = "utf-8"
	EncodingLatin1 = "latin1"
)

// Columnas del CSV (nombres exactos del encabezado).
const (
	colCode        = "codigo"
	colName        = "nombre"
	colUnit        = "unidad"
	colIngredient  = "ingrediente"
	colCategory    = "categoria"
	colStock       = "stock"
	colStockMin    = "stockMin"
	colStockMax    = "stockMax"
	colDifferences = "diferencias"
	colFinalStock  = "stockFinal"
	colSupplier    = "proveedor"
	colDescription = "descripcion"
)

// Parser convierte filas CSV con encabezado en productos.
type Parser struct {
	encoding string
	log      *logger.Logger
}

// NewParser encoding "" equivale a UTF-8.
func NewParser(encoding string, log *logger.Logger) *Parser {
	if log == nil {
		log = logger.Nop()
	}
	return &Parser{encoding: strings.ToLower(strings.TrimSpace(encoding)), log: log.Component("csv")}
}

// ParseProducts lee el encabezado y una fila por producto. Las filas vacías se saltan;
// una fila sin código o con un numérico inválido se registra y se omite.
func (p *Parser) ParseProducts(r io.Reader, warehouse entity.Warehouse) ([]entity.Product, error) {
	cr := csv.NewReader(p.decode(r))
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: csv sin encabezado", domain.ErrParseFailure)
		}
		return nil, fmt.Errorf("%w: encabezado: %v", domain.ErrParseFailure, err)
	}
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))] = i
	}
	if _, ok := cols[colCode]; !ok {
		return nil, fmt.Errorf("%w: falta la columna %q", domain.ErrParseFailure, colCode)
	}

	products := make([]entity.Product, 0)
	line := 1
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("%w: línea %d: %v", domain.ErrParseFailure, line, err)
		}
		if blank(record) {
			continue
		}
		product, err := buildProduct(rowReader{cols: cols, record: record}, warehouse)
		if err != nil {
			p.log.Warn().Err(err).Str("almacen", string(warehouse)).Int("linea", line).Msg("fila CSV omitida")
			continue
		}
		products = append(products, product)
	}
	return products, nil
}

func (p *Parser) decode(r io.Reader) io.Reader {
	if p.encoding == EncodingLatin1 || p.encoding == "iso-8859-1" {
		return charmap.ISO8859_1.NewDecoder().Reader(r)
	}
	return bufio.NewReader(r)
}

type rowReader struct {
	cols   map[string]int
	record []string
}

func (r rowReader) text(col string) string {
	i, ok := r.cols[col]
	if !ok || i >= len(r.record) {
		return ""
	}
	return strings.TrimSpace(r.record[i])
}

// number vacío → 0.
func (r rowReader) number(col string) (float64, error) {
	v := r.text(col)
	if v == "" {
		return 0, nil
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q no es numérico", domain.ErrInvalidInput, col, v)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %s=%q no es finito", domain.ErrInvalidInput, col, v)
	}
	return f, nil
}

// optional vacío → nil.
func (r rowReader) optional(col string) (*float64, error) {
	if r.text(col) == "" {
		return nil, nil
	}
	f, err := r.number(col)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func buildProduct(row rowReader, warehouse entity.Warehouse) (entity.Product, error) {
	p := entity.Product{
		Code:             row.text(colCode),
		Name:             row.text(colName),
		Unit:             row.text(colUnit),
		ActiveIngredient: row.text(colIngredient),
		Warehouse:        warehouse,
		Category:         row.text(colCategory),
		Supplier:         row.text(colSupplier),
		Description:      row.text(colDescription),
	}
	if p.Code == "" {
		return entity.Product{}, fmt.Errorf("%w: fila sin código", domain.ErrInvalidInput)
	}
	if p.Category == "" {
		p.Category = warehouse.DefaultCategory()
	}

	var err error
	if p.Stock, err = row.number(colStock); err != nil {
		return entity.Product{}, err
	}
	if p.StockMin, err = row.number(colStockMin); err != nil {
		return entity.Product{}, err
	}
	if p.StockMax, err = row.number(colStockMax); err != nil {
		return entity.Product{}, err
	}
	if warehouse == entity.WarehouseOrganic {
		if p.Differences, err = row.optional(colDifferences); err != nil {
			return entity.Product{}, err
		}
		if p.FinalStock, err = row.optional(colFinalStock); err != nil {
			return entity.Product{}, err
		}
	}
	return p, nil
}

func blank(record []string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
