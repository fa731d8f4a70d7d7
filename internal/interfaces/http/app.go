package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/inventario-agro/internal/application/dto"
)

// NewApp crea la aplicación Fiber con recover, /health y las rutas de la API.
func NewApp(name string, deps RouterDeps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		UnescapePath: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var fe *fiber.Error
			if errors.As(err, &fe) {
				return c.Status(fe.Code).JSON(dto.ErrorResponse{Code: "HTTP", Message: fe.Message})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		},
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		body := fiber.Map{"status": "ok", "service": name}
		if deps.Session == nil {
			return c.JSON(body)
		}
		total, ok, err := deps.Session.PersistedStockTotal(c.Context())
		if err != nil {
			body["status"] = "degraded"
			body["error"] = err.Error()
			return c.Status(fiber.StatusServiceUnavailable).JSON(body)
		}
		if ok {
			body["stockPersistido"] = total.StringFixed(2)
		}
		return c.JSON(body)
	})

	Router(app, deps)
	return app
}
