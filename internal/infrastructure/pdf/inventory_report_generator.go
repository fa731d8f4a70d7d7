// Package pdf genera el reporte de inventario en PDF con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título                        │  Fecha de emisión   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: productos | stock total | bajo | agotado | alertas │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA por almacén: Código | Producto | U/M | Stock | Estado │
//	│  ─────────────────────────────────────────────────────────  │
//	│  MOVIMIENTOS: entradas / salidas por mes                     │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/inventario-agro/internal/application/dto"
	"github.com/jhoicas/inventario-agro/internal/application/inventory"
	"github.com/jhoicas/inventario-agro/internal/domain/entity"
	stock "github.com/jhoicas/inventario-agro/internal/domain/inventory"
)

var _ inventory.InventoryReportGenerator = (*MarotoReportGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 39, Green: 114, Blue: 62}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorDanger  = &props.Color{Red: 192, Green: 57, Blue: 43}
	colorWarning = &props.Color{Red: 214, Green: 137, Blue: 16}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa inventory.InventoryReportGenerator.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateInventoryReport genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateInventoryReport(_ context.Context, report dto.InventoryReportDTO) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(report.Title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(report.Summary))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	for _, section := range report.Sections {
		m.AddRows(sectionTitleRow(section))
		m.AddRows(tableHeaderRow())
		m.AddRows(tableRows(section.Rows)...)
		m.AddRows(line.NewRow(4))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(monthlyRows(report.Summary.Monthly)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(report dto.InventoryReportDTO) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New(report.Title, props.Text{Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 2}),
		),
		col.New(4).Add(
			text.New("Emitido: "+report.GeneratedAt, props.Text{Size: 8, Align: align.Right, Top: 5, Color: colorGray}),
		),
	)
}

func summaryRow(s dto.DashboardSummaryDTO) core.Row {
	cell := func(label, value string) core.Col {
		return col.New(2).Add(
			text.New(label, props.Text{Size: 7, Align: align.Center, Color: colorGray, Top: 1}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 11, Align: align.Center, Top: 5}),
		)
	}
	return row.New(14).Add(
		cell("Productos", fmt.Sprint(s.TotalProducts)),
		cell("Stock total", s.TotalStock.StringFixed(2)),
		cell("Stock bajo", fmt.Sprint(s.LowStock)),
		cell("Agotados", fmt.Sprint(s.OutOfStock)),
		cell("Alertas no leídas", fmt.Sprint(s.UnreadAlerts)),
		cell("Categorías", fmt.Sprint(len(s.Categories))),
	)
}

func sectionTitleRow(section dto.InventoryReportSection) core.Row {
	title := "ALMACÉN " + strings.ToUpper(warehouseLabel(section.Warehouse))
	return row.New(8).Add(col.New(12).Add(
		text.New(fmt.Sprintf("%s (%d productos)", title, len(section.Rows)), props.Text{
			Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2,
		}),
	))
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
		}))
	}
	return row.New(6).Add(
		h("Código", 2, align.Left),
		h("Producto", 4, align.Left),
		h("U/M", 1, align.Center),
		h("Stock", 1, align.Right),
		h("Mín", 1, align.Right),
		h("Máx", 1, align.Right),
		h("Estado", 2, align.Center),
	)
}

func tableRows(rows []dto.InventoryRowDTO) []core.Row {
	out := make([]core.Row, 0, len(rows))
	for _, r := range rows {
		status := props.Text{Size: 8, Align: align.Center, Top: 1, Style: fontstyle.Bold}
		switch stock.StockStatus(r.Status) {
		case stock.StatusDepleted:
			status.Color = colorDanger
		case stock.StatusLow:
			status.Color = colorWarning
		}
		out = append(out, row.New(5).Add(
			col.New(2).Add(text.New(r.Code, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(4).Add(text.New(r.Name, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(1).Add(text.New(r.Unit, props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(1).Add(text.New(stock.FormatQuantity(r.DisplayStock()), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(1).Add(text.New(stock.FormatQuantity(r.StockMin), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(1).Add(text.New(stock.FormatQuantity(r.StockMax), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(r.Status, status)),
		))
	}
	if len(out) == 0 {
		out = append(out, row.New(6).Add(col.New(12).Add(
			text.New("Sin productos", props.Text{Size: 8, Align: align.Center, Color: colorGray, Top: 1}),
		)))
	}
	return out
}

func monthlyRows(months []dto.MonthlyMovementsDTO) []core.Row {
	rows := []core.Row{
		row.New(8).Add(col.New(12).Add(
			text.New("MOVIMIENTOS MENSUALES", props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2}),
		)),
		row.New(6).Add(
			col.New(4).Add(text.New("Mes", props.Text{Style: fontstyle.Bold, Size: 8, Left: 1, Top: 1})),
			col.New(4).Add(text.New("Entradas", props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 1})),
			col.New(4).Add(text.New("Salidas", props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 1, Right: 1})),
		),
	}
	for _, mm := range months {
		rows = append(rows, row.New(5).Add(
			col.New(4).Add(text.New(mm.Label, props.Text{Size: 8, Left: 1, Top: 1})),
			col.New(4).Add(text.New(fmt.Sprint(mm.Entries), props.Text{Size: 8, Align: align.Right, Top: 1})),
			col.New(4).Add(text.New(fmt.Sprint(mm.Exits), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func warehouseLabel(wh entity.Warehouse) string {
	if wh == entity.WarehouseOrganic {
		return "orgánico"
	}
	return string(wh)
}
