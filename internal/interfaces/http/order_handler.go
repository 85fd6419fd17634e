package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/officinemattio/verniciatura-api/internal/application/dto"
	"github.com/officinemattio/verniciatura-api/internal/application/orders"
	"github.com/officinemattio/verniciatura-api/internal/domain"
)

// OrderHandler trata o CRUD de pedidos e o histórico de edições.
type OrderHandler struct {
	saveUC   *orders.SaveOrderUseCase
	queryUC  *orders.QueryUseCase
	deleteUC *orders.DeleteOrderUseCase
}

// NewOrderHandler constrói o handler de pedidos.
func NewOrderHandler(
	saveUC *orders.SaveOrderUseCase,
	queryUC *orders.QueryUseCase,
	deleteUC *orders.DeleteOrderUseCase,
) *OrderHandler {
	return &OrderHandler{saveUC: saveUC, queryUC: queryUC, deleteUC: deleteUC}
}

func actor(c *fiber.Ctx) orders.Actor {
	return orders.Actor{ID: GetUserID(c), Email: GetEmail(c), Role: GetRole(c)}
}

// Create godoc
// @Summary      Criar pedido de pintura
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.OrderFormRequest  true  "formulário do pedido"
// @Success      201   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.OrderFormRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	order, err := h.saveUC.SaveOrder(c.UserContext(), actor(c), in.ToForm(), false, "")
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromOrder(order))
}

// Update godoc
// @Summary      Atualizar pedido
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                true  "id do pedido"
// @Param        body  body  dto.OrderFormRequest  true  "formulário completo"
// @Success      200   {object}  dto.OrderResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [put]
func (h *OrderHandler) Update(c *fiber.Ctx) error {
	var in dto.OrderFormRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	order, err := h.saveUC.SaveOrder(c.UserContext(), actor(c), in.ToForm(), true, c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "pedido não encontrado"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.FromOrder(order))
}

// List godoc
// @Summary      Listar pedidos
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        status  query  string  false  "pending | completed | all"
// @Param        q       query  string  false  "busca textual"
// @Success      200     {array}  dto.OrderResponse
// @Router       /api/orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	filter := orders.Filter{
		Status: c.Query("status"),
		Text:   strings.TrimSpace(c.Query("q")),
	}
	list, err := h.queryUC.List(filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		out = append(out, dto.FromOrder(o))
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Buscar pedido
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "id do pedido"
// @Success      200  {object}  dto.OrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [get]
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	order, err := h.queryUC.GetByID(c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "pedido não encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.FromOrder(order))
}

// History godoc
// @Summary      Histórico de edições do pedido
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "id do pedido"
// @Success      200  {array}  dto.EditHistoryResponse
// @Router       /api/orders/{id}/history [get]
func (h *OrderHandler) History(c *fiber.Ctx) error {
	entries, err := h.queryUC.LoadHistory(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.EditHistoryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.EditHistoryResponse{
			ID:          e.ID,
			OrderID:     e.OrderID,
			FieldName:   e.FieldName,
			OldValue:    e.OldValue,
			NewValue:    e.NewValue,
			EditedBy:    e.EditedBy,
			EditorEmail: e.EditorEmail,
			EditedAt:    e.EditedAt,
		})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Excluir pedido e seu histórico
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "id do pedido"
// @Success      204  "sem conteúdo"
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [delete]
func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	err := h.deleteUC.Delete(c.UserContext(), actor(c), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "apenas administradores podem excluir pedidos"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "pedido não encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
