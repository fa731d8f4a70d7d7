package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	appanalytics "github.com/jhoicas/inventario-agro/internal/application/analytics"
	"github.com/jhoicas/inventario-agro/internal/application/inventory"
	"github.com/jhoicas/inventario-agro/internal/domain/entity"
	"github.com/jhoicas/inventario-agro/internal/infrastructure/csvsource"
	"github.com/jhoicas/inventario-agro/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/inventario-agro/internal/infrastructure/pdf"
	"github.com/jhoicas/inventario-agro/internal/infrastructure/statestore"
	httpRouter "github.com/jhoicas/inventario-agro/internal/interfaces/http"
	"github.com/jhoicas/inventario-agro/pkg/config"
	"github.com/jhoicas/inventario-agro/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	store, closeStore, err := statestore.Open(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Store.Driver).Msg("abrir almacenamiento de estado")
	}
	defer func() {
		if err := closeStore(); err != nil {
			log.Error().Err(err).Msg("cerrar almacenamiento de estado")
		}
	}()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	recorder := metrics.NewRecorder(registry)

	session := inventory.NewSession(store, log, inventory.Options{
		Operator:      cfg.Inventory.Operator,
		KeepReadFlags: cfg.Inventory.KeepReadAlerts,
		Metrics:       recorder,
	})

	parser := csvsource.NewParser(cfg.Data.Encoding, log)
	loader := csvsource.NewLoader(map[entity.Warehouse]string{
		entity.WarehouseConventional: cfg.Data.Conventional,
		entity.WarehouseOrganic:      cfg.Data.Organic,
	}, parser, log)

	report, err := session.Bootstrap(ctx, loader)
	if err != nil {
		log.Fatal().Err(err).Msg("carga inicial del inventario")
	}
	log.Info().
		Int("convencional", report.Loaded[entity.WarehouseConventional]).
		Int("organico", report.Loaded[entity.WarehouseOrganic]).
		Bool("productosRestaurados", report.RestoredProducts).
		Int("movimientosRestaurados", report.RestoredMovements).
		Msg("inventario listo")

	exportUC := inventory.NewExportUseCase(session, csvsource.NewWriter(), parser)
	dashboardUC := appanalytics.NewDashboardUseCase(session, nil)
	reportUC := appanalytics.NewReportUseCase(session, dashboardUC, infrapdf.NewMarotoReportGenerator())

	app := httpRouter.NewApp(cfg.App.Name, httpRouter.RouterDeps{
		Session:   session,
		Export:    exportUC,
		Dashboard: dashboardUC,
		Report:    reportUC,
		Metrics:   promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
	})

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Inventario Agro API",
	}))

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
