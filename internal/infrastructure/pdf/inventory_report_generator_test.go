package pdf_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-agro/internal/application/dto"
	"github.com/jhoicas/inventario-agro/internal/domain/entity"
	"github.com/jhoicas/inventario-agro/internal/infrastructure/pdf"
)

func TestGenerateInventoryReport_GeneraPDF(t *testing.T) {
	final := 5.0
	report := dto.InventoryReportDTO{
		Title:       "Reporte de inventario",
		GeneratedAt: "2026-03-10 09:30",
		Summary: dto.DashboardSummaryDTO{
			TotalProducts: 2,
			TotalStock:    decimal.RequireFromString("13.50"),
			LowStock:      1,
			Monthly:       []dto.MonthlyMovementsDTO{{Label: "Mar 2026", Entries: 2, Exits: 1}},
		},
		Sections: []dto.InventoryReportSection{
			{Warehouse: entity.WarehouseConventional, Rows: []dto.InventoryRowDTO{
				{Product: entity.Product{Code: "H01", Name: "Glifosato", Unit: "L", Stock: 3.5, StockMin: 5, StockMax: 20}, Status: "Bajo"},
			}},
			{Warehouse: entity.WarehouseOrganic, Rows: []dto.InventoryRowDTO{
				{Product: entity.Product{Code: "O01", Name: "Compost orgánico", Unit: "kg", Stock: 10, FinalStock: &final, StockMin: 1, StockMax: 20}, Status: "OK"},
			}},
		},
	}

	out, err := pdf.NewMarotoReportGenerator().GenerateInventoryReport(context.Background(), report)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestGenerateInventoryReport_AlmacenVacio(t *testing.T) {
	report := dto.InventoryReportDTO{
		Title:    "Reporte de inventario",
		Sections: []dto.InventoryReportSection{{Warehouse: entity.WarehouseOrganic}},
	}
	out, err := pdf.NewMarotoReportGenerator().GenerateInventoryReport(context.Background(), report)
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}
