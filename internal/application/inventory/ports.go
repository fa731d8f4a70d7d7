package inventory

import (
	"context"
	"io"

	"github.com/jhoicas/inventario-agro/internal/application/dto"
	"github.com/jhoicas/inventario-agro/internal/domain/entity"
)

// ProductSource carga el catálogo base de un almacén al iniciar (CSV local o remoto).
type ProductSource interface {
	LoadProducts(ctx context.Context, warehouse entity.Warehouse) ([]entity.Product, error)
}

// ProductCSVParser interpreta un CSV de productos recibido por importación.
type ProductCSVParser interface {
	ParseProducts(r io.Reader, warehouse entity.Warehouse) ([]entity.Product, error)
}

// InventoryCSVWriter escribe la exportación CSV de un almacén con sus columnas fijas.
type InventoryCSVWriter interface {
	WriteInventory(w io.Writer, warehouse entity.Warehouse, products []entity.Product) error
}

// InventoryReportGenerator genera el reporte PDF de inventario.
type InventoryReportGenerator interface {
	GenerateInventoryReport(ctx context.Context, report dto.InventoryReportDTO) ([]byte, error)
}

// MetricsRecorder observa los cambios de estado de la sesión (Prometheus en producción).
type MetricsRecorder interface {
	MovementRecorded(kind entity.MovementKind, warehouse entity.Warehouse)
	MovementRejected(reason string)
	AlertsRecomputed(total, unread int)
}

type nopMetrics struct{}

func (nopMetrics) MovementRecorded(entity.MovementKind, entity.Warehouse) {}
func (nopMetrics) MovementRejected(string)                               {}
func (nopMetrics) AlertsRecomputed(int, int)                             {}
