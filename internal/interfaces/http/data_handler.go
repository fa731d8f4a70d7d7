package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-agro/internal/application/dto"
	"github.com/jhoicas/inventario-agro/internal/application/inventory"
	"github.com/jhoicas/inventario-agro/internal/domain"
)

// DataHandler exportación CSV, importación, respaldo y restauración.
type DataHandler struct {
	session *inventory.Session
	export  *inventory.ExportUseCase
}

// NewDataHandler construye el handler.
func NewDataHandler(session *inventory.Session, export *inventory.ExportUseCase) *DataHandler {
	return &DataHandler{session: session, export: export}
}

// ExportCSV godoc
// @Summary      Exportar inventario a CSV
// @Tags         data
// @Produce      text/csv
// @Param        warehouse  path  string  true  "convencional | organico"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/export/{warehouse} [get]
func (h *DataHandler) ExportCSV(c *fiber.Ctx) error {
	wh, ok := warehouseParam(c)
	if !ok {
		return nil
	}
	body, filename, err := h.export.ExportCSV(c.Context(), wh)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(body)
}

// ImportCSV godoc
// @Summary      Importar CSV
// @Description  Interpreta el archivo (campo "file" o cuerpo crudo) e informa cuántos registros trae; no modifica el inventario.
// @Tags         data
// @Accept       multipart/form-data
// @Produce      json
// @Param        warehouse  path      string  true   "convencional | organico"
// @Param        file       formData  file    false  "archivo CSV"
// @Success      200  {object}  dto.ImportResultDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/import/{warehouse} [post]
func (h *DataHandler) ImportCSV(c *fiber.Ctx) error {
	wh, ok := warehouseParam(c)
	if !ok {
		return nil
	}
	var r io.Reader = bytes.NewReader(c.Body())
	if fh, err := c.FormFile("file"); err == nil {
		f, err := fh.Open()
		if err != nil {
			return respondError(c, err)
		}
		defer f.Close()
		r = f
	}
	res, err := h.export.ImportCSV(c.Context(), wh, r)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(res)
}

// Backup godoc
// @Summary      Descargar respaldo JSON
// @Tags         data
// @Produce      json
// @Success      200  {object}  dto.BackupDTO
// @Router       /api/backup [get]
func (h *DataHandler) Backup(c *fiber.Ctx) error {
	body, err := json.Marshal(h.session.Backup())
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, h.session.BackupFilename()))
	return c.Send(body)
}

// Restore godoc
// @Summary      Restaurar respaldo
// @Description  Sobrescribe productos, movimientos y alertas presentes en el archivo. Requiere confirm=true.
// @Tags         data
// @Accept       json
// @Produce      json
// @Param        confirm  query     bool                      true  "debe ser true"
// @Param        body     body      dto.RestoreBackupRequest  true  "respaldo generado por GET /api/backup"
// @Success      200  {object}  inventory.RestoreResult
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/backup/restore [post]
func (h *DataHandler) Restore(c *fiber.Ctx) error {
	confirm := c.QueryBool("confirm", false)
	if !confirm {
		return respondError(c, domain.ErrConfirmationRequired)
	}
	var in dto.RestoreBackupRequest
	if err := json.Unmarshal(c.Body(), &in); err != nil {
		return respondError(c, fmt.Errorf("%w: respaldo: %v", domain.ErrParseFailure, err))
	}
	res, err := h.session.Restore(c.Context(), in, confirm)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(res)
}
