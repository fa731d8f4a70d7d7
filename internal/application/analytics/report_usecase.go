package analytics

import (
	"context"
	"fmt"

	"github.com/jhoicas/inventario-agro/internal/application/dto"
	"github.com/jhoicas/inventario-agro/internal/application/inventory"
	"github.com/jhoicas/inventario-agro/internal/domain/entity"
)

// ReportUseCase genera el reporte PDF de inventario (ambos almacenes + resumen).
type ReportUseCase struct {
	reader    InventoryReader
	dashboard *DashboardUseCase
	generator inventory.InventoryReportGenerator
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(reader InventoryReader, dashboard *DashboardUseCase, generator inventory.InventoryReportGenerator) *ReportUseCase {
	return &ReportUseCase{reader: reader, dashboard: dashboard, generator: generator}
}

// InventoryReportPDF retorna (pdfBytes, filename, nil); filename es reporte_inventario_YYYY-MM-DD.pdf.
func (uc *ReportUseCase) InventoryReportPDF(ctx context.Context) ([]byte, string, error) {
	summary, err := uc.dashboard.GetSummary(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: resumen: %w", err)
	}
	now := uc.dashboard.now()

	report := dto.InventoryReportDTO{
		Title:       "Reporte de inventario",
		GeneratedAt: now.Format("2006-01-02 15:04"),
		Summary:     *summary,
	}
	for _, wh := range entity.Warehouses {
		products := uc.reader.Products(wh, "")
		rows := make([]dto.InventoryRowDTO, 0, len(products))
		for _, p := range products {
			rows = append(rows, inventory.InventoryRow(p))
		}
		report.Sections = append(report.Sections, dto.InventoryReportSection{Warehouse: wh, Rows: rows})
	}

	pdfBytes, err := uc.generator.GenerateInventoryReport(ctx, report)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: generación fallida: %w", err)
	}
	return pdfBytes, fmt.Sprintf("reporte_inventario_%s.pdf", now.Format("2006-01-02")), nil
}
