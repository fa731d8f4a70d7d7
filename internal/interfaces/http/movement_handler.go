package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-agro/internal/application/dto"
	"github.com/jhoicas/inventario-agro/internal/application/inventory"
)

// MovementHandler registro y consulta del libro de movimientos.
type MovementHandler struct {
	session *inventory.Session
}

// NewMovementHandler construye el handler.
func NewMovementHandler(session *inventory.Session) *MovementHandler {
	return &MovementHandler{session: session}
}

// List godoc
// @Summary      Libro de movimientos
// @Tags         movements
// @Produce      json
// @Param        q  query  string  false  "filtra por código, tipo, almacén, usuario o comentario"
// @Success      200  {object}  dto.MovementListResponse
// @Router       /api/movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	items := h.session.Movements(c.Query("q"))
	return c.JSON(dto.MovementListResponse{Total: len(items), Items: items})
}

// Register godoc
// @Summary      Registrar movimiento
// @Description  entrada suma, salida resta (409 si no alcanza el stock), ajuste fija el stock.
// @Tags         movements
// @Accept       json
// @Produce      json
// @Param        body  body      dto.RegisterMovementRequest  true  "almacen, tipo, codigoProducto, cantidad, fecha"
// @Success      201   {object}  entity.Movement
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/movements [post]
func (h *MovementHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	m, err := h.session.RegisterMovementFromRequest(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(m)
}

// RegisterBatch godoc
// @Summary      Registrar movimientos múltiples
// @Description  Cada fila se aplica por separado; las filas inválidas se informan en "omitidos".
// @Description  Si ninguna fila se aplica responde 422 con el detalle.
// @Tags         movements
// @Accept       json
// @Produce      json
// @Param        body  body      dto.BatchMovementRequest  true  "almacen, tipo, fecha, filas"
// @Success      201   {object}  dto.BatchMovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorWithDetails
// @Router       /api/movements/batch [post]
func (h *MovementHandler) RegisterBatch(c *fiber.Ctx) error {
	var in dto.BatchMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	res, err := h.session.RegisterBatchFromRequest(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	if res.Applied == 0 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorWithDetails{
			ErrorResponse: dto.ErrorResponse{Code: "NO_ROWS_APPLIED", Message: "ninguna fila del lote pudo aplicarse"},
			Details:       res.Failures,
		})
	}
	return c.Status(fiber.StatusCreated).JSON(res)
}
