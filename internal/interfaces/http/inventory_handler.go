package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-agro/internal/application/dto"
	"github.com/jhoicas/inventario-agro/internal/application/inventory"
	"github.com/jhoicas/inventario-agro/internal/domain/entity"
)

// InventoryHandler tablas de inventario por almacén y lista de reposición.
type InventoryHandler struct {
	session *inventory.Session
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(session *inventory.Session) *InventoryHandler {
	return &InventoryHandler{session: session}
}

// GetInventory godoc
// @Summary      Inventario de un almacén
// @Description  Filas con estado (Agotado, Bajo, Exceso, OK). En orgánico el estado usa stockFinal si existe.
// @Tags         inventory
// @Produce      json
// @Param        warehouse  path   string  true   "convencional | organico"
// @Param        q          query  string  false  "búsqueda sobre las celdas de la tabla"
// @Success      200  {object}  dto.InventoryListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/{warehouse} [get]
func (h *InventoryHandler) GetInventory(c *fiber.Ctx) error {
	wh, ok := warehouseParam(c)
	if !ok {
		return nil
	}
	list, err := h.session.Inventory(wh, c.Query("q"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// GetReplenishmentList godoc
// @Summary      Lista de reposición
// @Description  Productos agotados o bajo mínimo con la cantidad sugerida para llegar al stock máximo.
// @Tags         inventory
// @Produce      json
// @Param        warehouse  query  string  false  "convencional | organico; vacío = ambos"
// @Success      200  {array}   dto.ReplenishmentSuggestionDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/replenishment [get]
func (h *InventoryHandler) GetReplenishmentList(c *fiber.Ctx) error {
	var wh entity.Warehouse
	if raw := c.Query("warehouse"); raw != "" {
		parsed, ok := entity.ParseWarehouse(raw)
		if !ok {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "almacén inválido"})
		}
		wh = parsed
	}
	list := h.session.Replenishment(wh)
	return c.JSON(fiber.Map{
		"total":        len(list),
		"reposiciones": list,
	})
}
