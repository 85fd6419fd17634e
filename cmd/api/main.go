package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/officinemattio/verniciatura-api/internal/application/approval"
	"github.com/officinemattio/verniciatura-api/internal/application/auth"
	"github.com/officinemattio/verniciatura-api/internal/application/export"
	"github.com/officinemattio/verniciatura-api/internal/application/orders"
	"github.com/officinemattio/verniciatura-api/internal/application/reference"
	infraemail "github.com/officinemattio/verniciatura-api/internal/infrastructure/email"
	infraexcel "github.com/officinemattio/verniciatura-api/internal/infrastructure/excel"
	infrapdf "github.com/officinemattio/verniciatura-api/internal/infrastructure/pdf"
	"github.com/officinemattio/verniciatura-api/internal/infrastructure/postgres"
	"github.com/officinemattio/verniciatura-api/internal/infrastructure/printhtml"
	httpRouter "github.com/officinemattio/verniciatura-api/internal/interfaces/http"
	"github.com/officinemattio/verniciatura-api/pkg/config"
	"github.com/officinemattio/verniciatura-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	historyRepo := postgres.NewEditHistoryRepository(pool)
	refRepo := postgres.NewReferenceRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	notifier := infraemail.NewResendNotifier(infraemail.Config{
		APIKey: cfg.Notify.ResendAPIKey,
		From:   cfg.Notify.From,
		To:     cfg.Notify.To,
	})

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, cfg.Auth.AllowedEmailDomain)
	saveOrderUC := orders.NewSaveOrderUseCase(orderRepo, historyRepo, notifier, log)
	queryOrdersUC := orders.NewQueryUseCase(orderRepo, historyRepo)
	deleteOrderUC := orders.NewDeleteOrderUseCase(txRunner)
	approvalUC := approval.NewApprovalUseCase(userRepo)
	referenceUC := reference.NewReferenceUseCase(refRepo)
	exportUC := export.NewExportUseCase(
		orderRepo,
		infraexcel.NewExcelizeGenerator(),
		printhtml.NewEtreeRenderer(),
		infrapdf.NewMarotoSheetGenerator(),
		log,
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Verniciatura API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		SaveOrder:   saveOrderUC,
		QueryOrders: queryOrdersUC,
		DeleteOrder: deleteOrderUC,
		ExportUC:    exportUC,
		ApprovalUC:  approvalUC,
		ReferenceUC: referenceUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação parada")
}
