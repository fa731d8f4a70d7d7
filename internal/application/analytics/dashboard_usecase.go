// Package analytics contiene los casos de uso de lectura del tablero:
// resumen de inventario, gráficos y reporte PDF.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-agro/internal/application/dto"
	"github.com/jhoicas/inventario-agro/internal/domain/entity"
	stock "github.com/jhoicas/inventario-agro/internal/domain/inventory"
)

const (
	dashboardRecentAlerts = 5 // alertas visibles en el tablero
	dashboardMonths       = 6 // meses del gráfico de movimientos
)

// InventoryReader vista de solo lectura de la sesión de inventario.
type InventoryReader interface {
	Products(warehouse entity.Warehouse, query string) []entity.Product
	Movements(query string) []entity.Movement
	RecentAlerts(n int) []entity.Alert
	UnreadCount() int
}

// DashboardUseCase genera el resumen del tablero a partir del estado en memoria.
type DashboardUseCase struct {
	inventory InventoryReader
	now       func() time.Time
}

// NewDashboardUseCase construye el caso de uso. now nil usa time.Now.
func NewDashboardUseCase(inventory InventoryReader, now func() time.Time) *DashboardUseCase {
	if now == nil {
		now = time.Now
	}
	return &DashboardUseCase{inventory: inventory, now: now}
}

// GetSummary construye el DashboardSummaryDTO:
//  1. contadores sobre todos los productos (stock bajo = 0 < stock < stockMin)
//  2. stock por categoría en orden de aparición
//  3. entradas/salidas por mes de los últimos 6 meses, desde el libro
//  4. primeras 5 alertas y contador de no leídas
func (uc *DashboardUseCase) GetSummary(_ context.Context) (*dto.DashboardSummaryDTO, error) {
	products := uc.inventory.Products("", "")

	summary := &dto.DashboardSummaryDTO{
		TotalProducts: len(products),
		Categories:    make([]dto.CategoryStockDTO, 0),
	}

	total := decimal.Zero
	categoryIdx := make(map[string]int)
	for _, p := range products {
		qty := decimal.NewFromFloat(p.Stock)
		total = total.Add(qty)

		switch stock.Classify(p.Stock, p.StockMin, p.StockMax) {
		case stock.StatusDepleted:
			summary.OutOfStock++
		case stock.StatusLow:
			summary.LowStock++
		}

		i, ok := categoryIdx[p.Category]
		if !ok {
			i = len(summary.Categories)
			categoryIdx[p.Category] = i
			summary.Categories = append(summary.Categories, dto.CategoryStockDTO{Category: p.Category, Stock: decimal.Zero})
		}
		summary.Categories[i].Stock = summary.Categories[i].Stock.Add(qty)
	}
	summary.TotalStock = total.Round(2)
	for i := range summary.Categories {
		summary.Categories[i].Stock = summary.Categories[i].Stock.Round(2)
	}

	summary.Monthly = monthlyMovements(uc.inventory.Movements(""), uc.now(), dashboardMonths)
	summary.RecentAlerts = uc.inventory.RecentAlerts(dashboardRecentAlerts)
	summary.UnreadAlerts = uc.inventory.UnreadCount()
	return summary, nil
}

// monthlyMovements cuenta entradas y salidas por mes calendario; el último bucket es el mes de now.
// Los ajustes no se cuentan.
func monthlyMovements(movements []entity.Movement, now time.Time, months int) []dto.MonthlyMovementsDTO {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -(months - 1), 0)

	out := make([]dto.MonthlyMovementsDTO, months)
	for i := range out {
		out[i].Label = monthLabel(first.AddDate(0, i, 0))
	}
	for _, m := range movements {
		d := m.Date.In(now.Location())
		idx := (d.Year()-first.Year())*12 + int(d.Month()) - int(first.Month())
		if idx < 0 || idx >= months {
			continue
		}
		switch m.Kind {
		case entity.MovementIn:
			out[idx].Entries++
		case entity.MovementOut:
			out[idx].Exits++
		}
	}
	return out
}

// monthLabel etiqueta corta del mes, ej: "Mar 2026".
func monthLabel(t time.Time) string {
	months := [...]string{"Ene", "Feb", "Mar", "Abr", "May", "Jun", "Jul", "Ago", "Sep", "Oct", "Nov", "Dic"}
	return fmt.Sprintf("%s %d", months[t.Month()-1], t.Year())
}
