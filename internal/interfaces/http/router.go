package http

import (
	nethttp "net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	appanalytics "github.com/jhoicas/inventario-agro/internal/application/analytics"
	"github.com/jhoicas/inventario-agro/internal/application/inventory"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Session   *inventory.Session
	Export    *inventory.ExportUseCase
	Dashboard *appanalytics.DashboardUseCase
	Report    *appanalytics.ReportUseCase
	Metrics   nethttp.Handler // promhttp; nil omite /metrics
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(deps.Metrics))
	}

	api := app.Group("/api")

	dashboardHandler := NewDashboardHandler(deps.Dashboard, deps.Report)
	api.Get("/dashboard/summary", dashboardHandler.GetSummary)
	api.Get("/reports/inventory.pdf", dashboardHandler.DownloadInventoryReport)

	inventoryHandler := NewInventoryHandler(deps.Session)
	api.Get("/inventory/:warehouse", inventoryHandler.GetInventory)
	api.Get("/replenishment", inventoryHandler.GetReplenishmentList)

	products := api.Group("/products")
	productHandler := NewProductHandler(deps.Session)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/:warehouse/:code", productHandler.GetByCode)
	products.Put("/:warehouse/:code", productHandler.Update)

	movements := api.Group("/movements")
	movementHandler := NewMovementHandler(deps.Session)
	movements.Get("/", movementHandler.List)
	movements.Post("/", movementHandler.Register)
	movements.Post("/batch", movementHandler.RegisterBatch)

	alerts := api.Group("/alerts")
	alertHandler := NewAlertHandler(deps.Session)
	alerts.Get("/", alertHandler.List)
	alerts.Post("/read-all", alertHandler.MarkAllRead)

	dataHandler := NewDataHandler(deps.Session, deps.Export)
	api.Get("/export/:warehouse", dataHandler.ExportCSV)
	api.Post("/import/:warehouse", dataHandler.ImportCSV)
	api.Get("/backup", dataHandler.Backup)
	api.Post("/backup/restore", dataHandler.Restore)
}
