package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/officinemattio/verniciatura-api/internal/application/dto"
	"github.com/officinemattio/verniciatura-api/internal/application/export"
	"github.com/officinemattio/verniciatura-api/internal/domain"
)

// ExportHandler trata as três exportações da seleção de pedidos.
type ExportHandler struct {
	uc *export.ExportUseCase
}

// NewExportHandler constrói o handler de exportação.
func NewExportHandler(uc *export.ExportUseCase) *ExportHandler {
	return &ExportHandler{uc: uc}
}

// Excel godoc
// @Summary      Exportar seleção para planilha
// @Tags         export
// @Accept       json
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security     BearerAuth
// @Param        body  body  dto.ExportRequest  true  "ids dos pedidos, na ordem da seleção"
// @Success      200   {file}  file
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/orders/export/excel [post]
func (h *ExportHandler) Excel(c *fiber.Ctx) error {
	return h.serve(c, h.uc.Excel)
}

// Print godoc
// @Summary      Exportar seleção para impressão
// @Tags         export
// @Accept       json
// @Produce      html
// @Security     BearerAuth
// @Param        body  body  dto.ExportRequest  true  "ids dos pedidos, na ordem da seleção"
// @Success      200   {file}  file
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/orders/export/print [post]
func (h *ExportHandler) Print(c *fiber.Ctx) error {
	return h.serve(c, h.uc.Print)
}

// PDF godoc
// @Summary      Gerar schede colore em PDF (marca os pedidos como concluídos)
// @Tags         export
// @Accept       json
// @Produce      application/zip
// @Security     BearerAuth
// @Param        body  body  dto.ExportRequest  true  "ids dos pedidos, na ordem da seleção"
// @Success      200   {file}  file
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/orders/export/pdf [post]
func (h *ExportHandler) PDF(c *fiber.Ctx) error {
	return h.serve(c, h.uc.PDF)
}

// serve fatora o fluxo comum: parse da seleção, geração e download.
func (h *ExportHandler) serve(c *fiber.Ctx, generate func(context.Context, []string) (*export.File, error)) error {
	var in dto.ExportRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	file, err := generate(c.UserContext(), in.IDs)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, file.ContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+file.Filename+`"`)
	return c.Send(file.Data)
}
