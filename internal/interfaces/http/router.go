package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/officinemattio/verniciatura-api/internal/application/approval"
	"github.com/officinemattio/verniciatura-api/internal/application/auth"
	"github.com/officinemattio/verniciatura-api/internal/application/export"
	"github.com/officinemattio/verniciatura-api/internal/application/orders"
	"github.com/officinemattio/verniciatura-api/internal/application/reference"
	"github.com/officinemattio/verniciatura-api/internal/domain/entity"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	SaveOrder   *orders.SaveOrderUseCase
	QueryOrders *orders.QueryUseCase
	DeleteOrder *orders.DeleteOrderUseCase
	ExportUC    *export.ExportUseCase
	ApprovalUC  *approval.ApprovalUseCase
	ReferenceUC *reference.ReferenceUseCase
	JWTSecret   string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (cadastro e login públicos; /me exige token)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)

	// Rotas protegidas (exigem Bearer Token de conta aprovada)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Catálogos do formulário (protegido)
	refGroup := protected.Group("/reference")
	refHandler := NewReferenceHandler(deps.ReferenceUC)
	refGroup.Get("/models", refHandler.Models)
	refGroup.Get("/agents", refHandler.Agents)
	refGroup.Get("/colors", refHandler.Colors)

	// Pedidos (protegido)
	orderGroup := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.SaveOrder, deps.QueryOrders, deps.DeleteOrder)
	exportHandler := NewExportHandler(deps.ExportUC)
	// Exportações antes das rotas com :id para não colidir com /export
	orderGroup.Post("/export/excel", exportHandler.Excel)
	orderGroup.Post("/export/print", exportHandler.Print)
	orderGroup.Post("/export/pdf", exportHandler.PDF)
	orderGroup.Post("/", orderHandler.Create)
	orderGroup.Get("/", orderHandler.List)
	orderGroup.Get("/:id", orderHandler.GetByID)
	orderGroup.Put("/:id", orderHandler.Update)
	orderGroup.Delete("/:id", orderHandler.Delete)
	orderGroup.Get("/:id/history", orderHandler.History)

	// Gestão de contas (protegido + admin)
	userGroup := protected.Group("/users", RequireRole(entity.RoleAdmin))
	userHandler := NewUserHandler(deps.ApprovalUC)
	userGroup.Get("/", userHandler.List)
	userGroup.Patch("/:id/status", userHandler.UpdateStatus)
}
