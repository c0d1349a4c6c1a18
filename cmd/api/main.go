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
	"github.com/tu-usuario/erp-produccion/internal/application/auth"
	appledger "github.com/tu-usuario/erp-produccion/internal/application/ledger"
	"github.com/tu-usuario/erp-produccion/internal/application/orders"
	"github.com/tu-usuario/erp-produccion/internal/application/reports"
	"github.com/tu-usuario/erp-produccion/internal/application/usecase"
	infrapdf "github.com/tu-usuario/erp-produccion/internal/infrastructure/pdf"
	"github.com/tu-usuario/erp-produccion/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/erp-produccion/internal/interfaces/http"
	"github.com/tu-usuario/erp-produccion/pkg/config"
	"github.com/tu-usuario/erp-produccion/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	partnerRepo := postgres.NewPartnerRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	materialRepo := postgres.NewMaterialRepository(pool)
	machineRepo := postgres.NewMachineRepository(pool)
	dieCutterRepo := postgres.NewDieCutterRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	txnRepo := postgres.NewTransactionRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	financeRepo := postgres.NewFinanceRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	partnerUC := usecase.NewPartnerUseCase(partnerRepo, orderRepo, txnRepo)
	productUC := usecase.NewProductUseCase(productRepo, materialRepo)
	materialUC := usecase.NewMaterialUseCase(materialRepo, partnerRepo)
	machineUC := usecase.NewMachineUseCase(machineRepo)
	dieCutterUC := usecase.NewDieCutterUseCase(dieCutterRepo)
	orderUC := orders.NewOrderUseCase(txRunner, orderRepo, partnerRepo, productRepo, materialRepo, txnRepo)
	transactionUC := appledger.NewTransactionUseCase(txRunner, txnRepo, orderRepo, partnerRepo, materialRepo)

	balanceUC := reports.NewBalanceUseCase(partnerRepo, orderRepo, txnRepo)
	requirementsUC := reports.NewRequirementsUseCase(orderRepo, productRepo, materialRepo)
	summaryUC := reports.NewSummaryUseCase(financeRepo)

	// PDF: extracto de cuenta del tercero
	statementGenerator := infrapdf.NewMarotoStatementGenerator()
	statementUC := reports.NewStatementUseCase(partnerRepo, orderRepo, txnRepo, statementGenerator)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "ERP Producción API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		PartnerUC:      partnerUC,
		ProductUC:      productUC,
		MaterialUC:     materialUC,
		MachineUC:      machineUC,
		DieCutterUC:    dieCutterUC,
		OrderUC:        orderUC,
		TransactionUC:  transactionUC,
		BalanceUC:      balanceUC,
		RequirementsUC: requirementsUC,
		SummaryUC:      summaryUC,
		StatementUC:    statementUC,
		AuthUC:         authUC,
		JWTSecret:      cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
