package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/stock-insights/internal/application/analytics"
	"github.com/jhoicas/stock-insights/internal/domain/stock"
	"github.com/jhoicas/stock-insights/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/stock-insights/internal/infrastructure/pdf"
	"github.com/jhoicas/stock-insights/internal/infrastructure/postgres"
	infraxlsx "github.com/jhoicas/stock-insights/internal/infrastructure/xlsx"
	httpRouter "github.com/jhoicas/stock-insights/internal/interfaces/http"
	"github.com/jhoicas/stock-insights/pkg/config"
	"github.com/jhoicas/stock-insights/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Int("red_days", cfg.Analytics.RedDays).
		Int("yellow_days", cfg.Analytics.YellowDays).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	salesRepo := postgres.NewSalesRecordRepository(pool)
	invRepo := postgres.NewInventoryRecordRepository(pool)

	thresholds := stock.Thresholds{
		RedDays:            cfg.Analytics.RedDays,
		YellowDays:         cfg.Analytics.YellowDays,
		MinSalesWindowDays: cfg.Analytics.MinSalesWindowDays,
	}
	appMetrics := metrics.New(true)

	salesUC := analytics.NewSalesUseCase(salesRepo, analytics.SalesDefaults{
		WindowDays: cfg.Analytics.WindowDays,
		Span:       cfg.Analytics.SmoothingSpan,
	}, log)
	inventoryUC := analytics.NewInventoryUseCase(invRepo, log)
	alertUC := analytics.NewAlertUseCase(salesRepo, invRepo, thresholds, appMetrics, log)
	overviewUC := analytics.NewOverviewUseCase(salesRepo, invRepo, thresholds)

	// Reportes: PDF de existencias (maroto) y libro de ventas (excelize)
	reportUC := analytics.NewReportUseCase(
		salesUC, inventoryUC, alertUC,
		infrapdf.NewStockReportGenerator(), infraxlsx.NewSalesWorkbook(), log,
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(appMetrics.Middleware())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Stock Insights API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := pool.Ping(c.Context()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded", "service": cfg.App.Name})
		}
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", adaptor.HTTPHandler(appMetrics.Handler()))

	httpRouter.Router(app, httpRouter.RouterDeps{
		SalesUC:     salesUC,
		InventoryUC: inventoryUC,
		AlertUC:     alertUC,
		OverviewUC:  overviewUC,
		ReportUC:    reportUC,
		JWTSecret:   cfg.JWT.Secret,
		JWTIssuer:   cfg.JWT.Issuer,
		Log:         log,
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
