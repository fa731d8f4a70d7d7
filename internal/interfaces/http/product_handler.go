package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-agro/internal/application/dto"
	"github.com/jhoicas/inventario-agro/internal/application/inventory"
	"github.com/jhoicas/inventario-agro/internal/domain/entity"
)

// ProductHandler alta, edición y búsqueda de productos.
type ProductHandler struct {
	session *inventory.Session
}

// NewProductHandler construye el handler.
func NewProductHandler(session *inventory.Session) *ProductHandler {
	return &ProductHandler{session: session}
}

// List godoc
// @Summary      Listar productos
// @Tags         products
// @Produce      json
// @Param        warehouse  query  string  false  "convencional | organico; vacío = ambos"
// @Param        q          query  string  false  "código, nombre, ingrediente, categoría o proveedor"
// @Success      200  {array}   entity.Product
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	var wh entity.Warehouse
	if raw := c.Query("warehouse"); raw != "" {
		parsed, ok := entity.ParseWarehouse(raw)
		if !ok {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "almacén inválido"})
		}
		wh = parsed
	}
	return c.JSON(h.session.Products(wh, c.Query("q")))
}

// Create godoc
// @Summary      Crear producto
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateProductRequest  true  "codigo, nombre, categoria, unidad, almacen, stock, stockMin, stockMax"
// @Success      201   {object}  entity.Product
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	p, err := h.session.CreateProduct(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(p)
}

// GetByCode godoc
// @Summary      Obtener producto
// @Tags         products
// @Produce      json
// @Param        warehouse  path  string  true  "convencional | organico"
// @Param        code       path  string  true  "código del producto"
// @Success      200  {object}  dto.InventoryRowDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{warehouse}/{code} [get]
func (h *ProductHandler) GetByCode(c *fiber.Ctx) error {
	wh, ok := warehouseParam(c)
	if !ok {
		return nil
	}
	p, err := h.session.Product(wh, c.Params("code"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(inventory.InventoryRow(p))
}

// Update godoc
// @Summary      Editar producto
// @Description  Solo se modifican los campos enviados; código y almacén no cambian.
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        warehouse  path  string                    true  "convencional | organico"
// @Param        code       path  string                    true  "código del producto"
// @Param        body       body  dto.UpdateProductRequest  true  "campos a modificar"
// @Success      200  {object}  entity.Product
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{warehouse}/{code} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	p, err := h.session.UpdateProduct(c.Context(), c.Params("warehouse"), c.Params("code"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(p)
}
