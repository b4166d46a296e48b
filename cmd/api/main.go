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

	"github.com/tu-usuario/medstock-api/internal/application/alerting"
	appanalytics "github.com/tu-usuario/medstock-api/internal/application/analytics"
	"github.com/tu-usuario/medstock-api/internal/application/export"
	appforecast "github.com/tu-usuario/medstock-api/internal/application/forecast"
	"github.com/tu-usuario/medstock-api/internal/application/ingest"
	"github.com/tu-usuario/medstock-api/internal/application/stock"
	"github.com/tu-usuario/medstock-api/internal/application/usecase"
	domforecast "github.com/tu-usuario/medstock-api/internal/domain/forecast"
	infrapdf "github.com/tu-usuario/medstock-api/internal/infrastructure/pdf"
	"github.com/tu-usuario/medstock-api/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/medstock-api/internal/interfaces/http"
	"github.com/tu-usuario/medstock-api/pkg/config"
	"github.com/tu-usuario/medstock-api/pkg/logger"
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

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	facilityRepo := postgres.NewFacilityRepository(pool)
	commodityRepo := postgres.NewCommodityRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	balanceRepo := postgres.NewStockBalanceRepository(pool)
	volumeRepo := postgres.NewServiceVolumeRepository(pool)
	leadTimeRepo := postgres.NewLeadTimeRepository(pool)
	predictionRepo := postgres.NewPredictionRepository(pool)
	alertRepo := postgres.NewAlertRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	alertGenerator := alerting.NewGenerator()
	aggregator := stock.NewAggregator(movementRepo, cfg.Forecast.WindowDays)
	stockUC := stock.NewUseCase(txRunner, facilityRepo, commodityRepo, alertGenerator)
	predictorUC := appforecast.NewPredictorUseCase(
		txRunner, balanceRepo, leadTimeRepo, predictionRepo,
		facilityRepo, commodityRepo, aggregator, alertGenerator,
		appforecast.Config{
			DefaultLeadTimeDays: cfg.Forecast.DefaultLeadTimeDays,
			Thresholds: domforecast.Thresholds{
				CriticalMult: cfg.Forecast.RiskCriticalMult,
				HighMult:     cfg.Forecast.RiskHighMult,
				MediumMult:   cfg.Forecast.RiskMediumMult,
			},
		},
	)

	catalogUC := usecase.NewCatalogUseCase(facilityRepo, commodityRepo, balanceRepo)
	dashboardUC := appanalytics.NewDashboardUseCase(facilityRepo, commodityRepo, alertRepo, predictionRepo)
	alertSvc := alerting.NewService(alertRepo)
	processor := ingest.NewProcessor(facilityRepo, commodityRepo, volumeRepo, leadTimeRepo, stockUC)
	exporter := export.NewExporter(facilityRepo, commodityRepo, balanceRepo, predictionRepo, alertRepo)
	riskReport := infrapdf.NewRiskReportGenerator()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    20 * 1024 * 1024,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "MedStock API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CatalogUC:      catalogUC,
		DashboardUC:    dashboardUC,
		PredictorUC:    predictorUC,
		AlertSvc:       alertSvc,
		Processor:      processor,
		Exporter:       exporter,
		PredictionRepo: predictionRepo,
		RiskReport:     riskReport,
		Logger:         log,
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
