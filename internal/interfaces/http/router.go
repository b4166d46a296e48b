package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/medstock-api/internal/application/alerting"
	appanalytics "github.com/tu-usuario/medstock-api/internal/application/analytics"
	"github.com/tu-usuario/medstock-api/internal/application/export"
	appforecast "github.com/tu-usuario/medstock-api/internal/application/forecast"
	"github.com/tu-usuario/medstock-api/internal/application/ingest"
	"github.com/tu-usuario/medstock-api/internal/application/usecase"
	"github.com/tu-usuario/medstock-api/internal/domain/repository"
	"github.com/tu-usuario/medstock-api/internal/infrastructure/pdf"
	"github.com/tu-usuario/medstock-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CatalogUC      *usecase.CatalogUseCase
	DashboardUC    *appanalytics.DashboardUseCase
	PredictorUC    *appforecast.PredictorUseCase
	AlertSvc       *alerting.Service
	Processor      *ingest.Processor
	Exporter       *export.Exporter
	PredictionRepo repository.PredictionRepository
	RiskReport     *pdf.RiskReportGenerator
	Logger         *logger.Logger
	JWTSecret      string
}

// Router registra las rutas de la API. Con JWTSecret definido, las rutas de
// escritura exigen Bearer token; sin secret la API queda abierta.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Escritura: protegida solo si hay secret configurado.
	write := func(handlers ...fiber.Handler) []fiber.Handler {
		if deps.JWTSecret == "" {
			return handlers
		}
		return append([]fiber.Handler{AuthMiddleware(deps.JWTSecret)}, handlers...)
	}

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	api.Get("/dashboard/stats", dashboardHandler.GetStats)

	// Catálogo
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	api.Get("/facilities", catalogHandler.ListFacilities)
	api.Get("/commodities", catalogHandler.ListCommodities)
	api.Get("/stock-balances", catalogHandler.ListStockBalances)

	// Predicciones
	predictionHandler := NewPredictionHandler(deps.PredictorUC)
	api.Get("/predictions", predictionHandler.List)
	api.Post("/predictions", write(predictionHandler.Generate)...)

	// Alertas
	alertHandler := NewAlertHandler(deps.AlertSvc)
	api.Get("/alerts", alertHandler.List)
	api.Post("/alerts/:id/resolve", write(alertHandler.Resolve)...)

	// Carga CSV
	uploadHandler := NewUploadHandler(deps.Processor, deps.Logger)
	api.Post("/upload", write(uploadHandler.Upload)...)

	// Exports y datos de ejemplo
	exportHandler := NewExportHandler(deps.Exporter, deps.PredictionRepo, deps.RiskReport)
	api.Get("/export/risk-report", exportHandler.RiskReport)
	api.Get("/export/:type", exportHandler.Export)
	api.Get("/sample-data/:type", exportHandler.SampleData)
}
