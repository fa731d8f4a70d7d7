package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-agro/internal/domain/entity"
)

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
type DashboardSummaryDTO struct {
	TotalProducts int             `json:"totalProductos"`
	TotalStock    decimal.Decimal `json:"totalStock"` // suma de stock, 2 decimales
	LowStock      int             `json:"stockBajo"`  // 0 < stock < stockMin
	OutOfStock    int             `json:"stockCero"`  // stock <= 0

	Categories []CategoryStockDTO     `json:"categorias"`  // gráfico de torta
	Monthly    []MonthlyMovementsDTO `json:"movimientosMensuales"`

	RecentAlerts []entity.Alert `json:"alertasRecientes"` // primeras 5
	UnreadAlerts int            `json:"alertasNoLeidas"`
}

// CategoryStockDTO stock acumulado de una categoría.
type CategoryStockDTO struct {
	Category string          `json:"categoria"`
	Stock    decimal.Decimal `json:"stock"`
}

// MonthlyMovementsDTO número de entradas y salidas registradas en un mes.
type MonthlyMovementsDTO struct {
	Label   string `json:"mes"` // ej: "Mar 2026"
	Entries int    `json:"entradas"`
	Exits   int    `json:"salidas"`
}

// InventoryReportDTO datos del reporte PDF de inventario.
type InventoryReportDTO struct {
	Title       string
	GeneratedAt string
	Sections    []InventoryReportSection
	Summary     DashboardSummaryDTO
}

// InventoryReportSection tabla de un almacén dentro del reporte.
type InventoryReportSection struct {
	Warehouse entity.Warehouse
	Rows      []InventoryRowDTO
}
