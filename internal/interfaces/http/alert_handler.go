package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-agro/internal/application/inventory"
)

// AlertHandler alertas de stock.
type AlertHandler struct {
	session *inventory.Session
}

// NewAlertHandler construye el handler.
func NewAlertHandler(session *inventory.Session) *AlertHandler {
	return &AlertHandler{session: session}
}

// List godoc
// @Summary      Alertas vigentes
// @Tags         alerts
// @Produce      json
// @Success      200  {object}  dto.AlertListResponse
// @Router       /api/alerts [get]
func (h *AlertHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.session.Alerts())
}

// MarkAllRead godoc
// @Summary      Marcar todas las alertas como leídas
// @Tags         alerts
// @Produce      json
// @Success      200  {object}  map[string]int
// @Router       /api/alerts/read-all [post]
func (h *AlertHandler) MarkAllRead(c *fiber.Ctx) error {
	changed := h.session.MarkAllAlertsRead(c.Context())
	return c.JSON(fiber.Map{"marcadas": changed, "noLeidas": 0})
}
