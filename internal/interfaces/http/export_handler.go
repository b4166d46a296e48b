package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/medstock-api/internal/application/export"
	"github.com/tu-usuario/medstock-api/internal/domain/repository"
	"github.com/tu-usuario/medstock-api/internal/infrastructure/pdf"
)

// riskReportRows es el máximo de predicciones incluidas en el PDF.
const riskReportRows = 50

// ExportHandler maneja exports CSV, el reporte de riesgo PDF y los datos de
// ejemplo.
type ExportHandler struct {
	exporter       *export.Exporter
	predictionRepo repository.PredictionRepository
	riskReport     *pdf.RiskReportGenerator
}

// NewExportHandler construye el handler.
func NewExportHandler(exporter *export.Exporter, predictionRepo repository.PredictionRepository, riskReport *pdf.RiskReportGenerator) *ExportHandler {
	return &ExportHandler{exporter: exporter, predictionRepo: predictionRepo, riskReport: riskReport}
}

// Export godoc
// @Summary      Exportar datos como CSV
// @Tags         export
// @Produce      text/csv
// @Param        type  path  string  true  "predictions | alerts | stock_balances | facilities | commodities"
// @Success      200  {string}  string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/export/{type} [get]
func (h *ExportHandler) Export(c *fiber.Ctx) error {
	exportType := c.Params("type")
	data, err := h.exporter.Export(c.Context(), exportType)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s.csv", exportType))
	return c.Send(data)
}

// RiskReport godoc
// @Summary      Reporte de riesgo en PDF
// @Description  PDF con las predicciones más recientes y su nivel de riesgo.
// @Tags         export
// @Produce      application/pdf
// @Success      200  {string}  string
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/export/risk-report [get]
func (h *ExportHandler) RiskReport(c *fiber.Ctx) error {
	rows, err := h.predictionRepo.List(c.Context(), repository.PredictionFilter{Limit: riskReportRows})
	if err != nil {
		return respondError(c, err)
	}
	data, err := h.riskReport.Generate(c.Context(), rows, time.Now())
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, "attachment; filename=risk-report.pdf")
	return c.Send(data)
}

// SampleData godoc
// @Summary      Datos CSV de ejemplo
// @Description  CSV de ejemplo listo para cargar vía /api/upload.
// @Tags         export
// @Produce      text/csv
// @Param        type  path  string  true  "facilities | commodities | stock_movements | stock_balances | service_volumes | lead_times"
// @Success      200  {string}  string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sample-data/{type} [get]
func (h *ExportHandler) SampleData(c *fiber.Ctx) error {
	dataType := c.Params("type")
	data, err := export.SampleData(dataType)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=sample_%s.csv", dataType))
	return c.Send(data)
}
