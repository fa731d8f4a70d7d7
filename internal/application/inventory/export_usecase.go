package inventory

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/jhoicas/inventario-agro/internal/application/dto"
	"github.com/jhoicas/inventario-agro/internal/domain"
	"github.com/jhoicas/inventario-agro/internal/domain/entity"
)

// ExportUseCase exportación e importación CSV de un almacén.
type ExportUseCase struct {
	session *Session
	writer  InventoryCSVWriter
	parser  ProductCSVParser
}

// NewExportUseCase construye el caso de uso.
func NewExportUseCase(session *Session, writer InventoryCSVWriter, parser ProductCSVParser) *ExportUseCase {
	return &ExportUseCase{session: session, writer: writer, parser: parser}
}

// ExportCSV genera el CSV del almacén con el estado actual del inventario.
// Retorna (csvBytes, filename, nil); filename es inventario_{almacén}_{YYYY-MM-DD}.csv.
func (uc *ExportUseCase) ExportCSV(_ context.Context, warehouse entity.Warehouse) ([]byte, string, error) {
	if !warehouse.Valid() {
		return nil, "", fmt.Errorf("%w: almacén %q", domain.ErrInvalidInput, warehouse)
	}
	var buf bytes.Buffer
	if err := uc.writer.WriteInventory(&buf, warehouse, uc.session.Products(warehouse, "")); err != nil {
		return nil, "", fmt.Errorf("export: escribir csv: %w", err)
	}
	filename := fmt.Sprintf("inventario_%s_%s.csv", warehouse, uc.session.opts.Now().Format("2006-01-02"))
	return buf.Bytes(), filename, nil
}

// ImportCSV interpreta el archivo y solo informa cuántos registros trae; el inventario no cambia.
func (uc *ExportUseCase) ImportCSV(_ context.Context, warehouse entity.Warehouse, r io.Reader) (dto.ImportResultDTO, error) {
	if !warehouse.Valid() {
		return dto.ImportResultDTO{}, fmt.Errorf("%w: almacén %q", domain.ErrInvalidInput, warehouse)
	}
	products, err := uc.parser.ParseProducts(r, warehouse)
	if err != nil {
		return dto.ImportResultDTO{}, err
	}
	return dto.ImportResultDTO{
		Warehouse: warehouse,
		Rows:      len(products),
		Message:   fmt.Sprintf("Se importaron %d registros para el almacén %s", len(products), warehouse),
	}, nil
}
