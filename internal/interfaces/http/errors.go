package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-agro/internal/application/dto"
	"github.com/jhoicas/inventario-agro/internal/domain/entity"
)

var statusByCode = map[string]int{
	"NOT_FOUND":             fiber.StatusNotFound,
	"INSUFFICIENT_STOCK":    fiber.StatusConflict,
	"VALIDATION":            fiber.StatusBadRequest,
	"DUPLICATE":             fiber.StatusConflict,
	"PARSE_FAILURE":         fiber.StatusBadRequest,
	"CONFIRMATION_REQUIRED": fiber.StatusConflict,
	"INTERNAL":              fiber.StatusInternalServerError,
}

// respondError traduce un error de dominio a status HTTP + dto.ErrorResponse.
func respondError(c *fiber.Ctx, err error) error {
	code := dto.ErrorCode(err)
	return c.Status(statusByCode[code]).JSON(dto.ErrorResponse{Code: code, Message: err.Error()})
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}

// warehouseParam lee :warehouse; responde 400 si no es un almacén conocido.
func warehouseParam(c *fiber.Ctx) (entity.Warehouse, bool) {
	wh, ok := entity.ParseWarehouse(c.Params("warehouse"))
	if !ok {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "almacén inválido: use convencional u organico",
		})
	}
	return wh, ok
}
