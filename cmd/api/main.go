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

	"github.com/agrovida/produccion-api/internal/application/auth"
	"github.com/agrovida/produccion-api/internal/application/inventory"
	appproduction "github.com/agrovida/produccion-api/internal/application/production"
	"github.com/agrovida/produccion-api/internal/application/reports"
	"github.com/agrovida/produccion-api/internal/application/usecase"
	infrapdf "github.com/agrovida/produccion-api/internal/infrastructure/pdf"
	"github.com/agrovida/produccion-api/internal/infrastructure/postgres"
	httpRouter "github.com/agrovida/produccion-api/internal/interfaces/http"
	"github.com/agrovida/produccion-api/pkg/config"
	"github.com/agrovida/produccion-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
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

	tenantRepo := postgres.NewTenantRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	locationRepo := postgres.NewLocationRepository(pool)
	stageRepo := postgres.NewStageRepository(pool)
	lotRepo := postgres.NewLotRepository(pool)
	eventRepo := postgres.NewStageEventRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	tenantUC := usecase.NewTenantUseCase(tenantRepo)
	locationUC := usecase.NewLocationUseCase(locationRepo)
	stageUC := usecase.NewStageUseCase(stageRepo)
	lotUC := usecase.NewLotUseCase(lotRepo)
	moveLotUC := appproduction.NewMoveLotUseCase(txRunner, lotRepo, stageRepo, eventRepo)
	kanbanUC := appproduction.NewKanbanUseCase(stageRepo, lotRepo, movementRepo)
	balanceUC := appproduction.NewBalanceUseCase(movementRepo)
	registerMovementUC := inventory.NewRegisterMovementUseCase(movementRepo, lotRepo, locationRepo)

	// PDF: hoja de vida del lote (etapa actual, saldo, historial)
	pdfGenerator := infrapdf.NewMarotoLotReportGenerator()
	lotReportUC := reports.NewPDFUseCase(lotRepo, stageRepo, eventRepo, movementRepo, tenantRepo, pdfGenerator)

	authUC := auth.NewAuthUseCase(userRepo, tenantRepo, auth.JWTConfig{
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
		Title:    "Producción API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		TenantUC:         tenantUC,
		LocationUC:       locationUC,
		StageUC:          stageUC,
		LotUC:            lotUC,
		MoveLot:          moveLotUC,
		Kanban:           kanbanUC,
		Balance:          balanceUC,
		RegisterMovement: registerMovementUC,
		LotReport:        lotReportUC,
		AuthUC:           authUC,
		JWTSecret:        cfg.JWT.Secret,
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
