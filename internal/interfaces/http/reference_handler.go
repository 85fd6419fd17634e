package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/officinemattio/verniciatura-api/internal/application/dto"
	"github.com/officinemattio/verniciatura-api/internal/application/reference"
)

// ReferenceHandler serve os catálogos do formulário.
type ReferenceHandler struct {
	uc *reference.ReferenceUseCase
}

// NewReferenceHandler constrói o handler de catálogos.
func NewReferenceHandler(uc *reference.ReferenceUseCase) *ReferenceHandler {
	return &ReferenceHandler{uc: uc}
}

// Models godoc
// @Summary      Modelos de bicicleta
// @Tags         reference
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.OptionResponse
// @Router       /api/reference/models [get]
func (h *ReferenceHandler) Models(c *fiber.Ctx) error {
	models, err := h.uc.ListModels()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.OptionResponse, 0, len(models))
	for _, m := range models {
		out = append(out, dto.OptionResponse{ID: m.ID, Name: m.Name})
	}
	return c.JSON(out)
}

// Agents godoc
// @Summary      Agentes comerciais
// @Tags         reference
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.OptionResponse
// @Router       /api/reference/agents [get]
func (h *ReferenceHandler) Agents(c *fiber.Ctx) error {
	agents, err := h.uc.ListAgents()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.OptionResponse, 0, len(agents))
	for _, a := range agents {
		out = append(out, dto.OptionResponse{ID: a.ID, Name: a.Name})
	}
	return c.JSON(out)
}

// Colors godoc
// @Summary      Paleta de cores
// @Tags         reference
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.ColorResponse
// @Router       /api/reference/colors [get]
func (h *ReferenceHandler) Colors(c *fiber.Ctx) error {
	colors, err := h.uc.ListColors()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.ColorResponse, 0, len(colors))
	for _, col := range colors {
		out = append(out, dto.ColorResponse{
			ID:           col.ID,
			Name:         col.Name,
			HexCode:      col.HexCode,
			DisplayOrder: col.DisplayOrder,
		})
	}
	return c.JSON(out)
}
