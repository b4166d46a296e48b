package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/tu-usuario/medstock-api/internal/application/dto"
	"github.com/tu-usuario/medstock-api/internal/domain"
	"github.com/tu-usuario/medstock-api/internal/domain/repository"
)

// Tipos de export CSV soportados.
const (
	ExportPredictions   = "predictions"
	ExportAlerts        = "alerts"
	ExportStockBalances = "stock_balances"
	ExportFacilities    = "facilities"
	ExportCommodities   = "commodities"
)

// Exporter genera archivos CSV con el estado actual del sistema.
type Exporter struct {
	facilityRepo   repository.FacilityRepository
	commodityRepo  repository.CommodityRepository
	balanceRepo    repository.StockBalanceRepository
	predictionRepo repository.PredictionRepository
	alertRepo      repository.AlertRepository
}

func NewExporter(
	facilityRepo repository.FacilityRepository,
	commodityRepo repository.CommodityRepository,
	balanceRepo repository.StockBalanceRepository,
	predictionRepo repository.PredictionRepository,
	alertRepo repository.AlertRepository,
) *Exporter {
	return &Exporter{
		facilityRepo:   facilityRepo,
		commodityRepo:  commodityRepo,
		balanceRepo:    balanceRepo,
		predictionRepo: predictionRepo,
		alertRepo:      alertRepo,
	}
}

// Export genera el CSV del tipo pedido. Devuelve ErrNotFound para tipos
// desconocidos.
func (e *Exporter) Export(ctx context.Context, exportType string) ([]byte, error) {
	switch exportType {
	case ExportPredictions:
		return e.exportPredictions(ctx)
	case ExportAlerts:
		return e.exportAlerts(ctx)
	case ExportStockBalances:
		return e.exportStockBalances(ctx)
	case ExportFacilities:
		return e.exportFacilities(ctx)
	case ExportCommodities:
		return e.exportCommodities(ctx)
	}
	return nil, fmt.Errorf("%w: tipo de export desconocido: %s", domain.ErrNotFound, exportType)
}

func writeCSV(header []string, rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return nil, err
	}
	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (e *Exporter) exportPredictions(ctx context.Context) ([]byte, error) {
	rows, err := e.predictionRepo.List(ctx, repository.PredictionFilter{})
	if err != nil {
		return nil, err
	}
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, []string{
			r.FacilityCode,
			r.FacilityName,
			r.CommodityCode,
			r.CommodityName,
			r.Prediction.PredictionDate.Format(dto.DateLayout),
			r.Prediction.PredictedStockOutDate.Format(dto.DateLayout),
			r.Prediction.RiskLevel,
			r.Prediction.ConfidenceScore.String(),
			r.Prediction.ModelUsed,
		})
	}
	return writeCSV([]string{
		"facility_code", "facility_name", "commodity_code", "commodity_name",
		"prediction_date", "predicted_stock_out_date", "risk_level",
		"confidence_score", "model_used",
	}, records)
}

func (e *Exporter) exportAlerts(ctx context.Context) ([]byte, error) {
	rows, err := e.alertRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		resolvedAt := ""
		if r.Alert.ResolvedAt != nil {
			resolvedAt = r.Alert.ResolvedAt.Format(dto.DateLayout)
		}
		records = append(records, []string{
			r.FacilityCode,
			r.FacilityName,
			r.CommodityCode,
			r.CommodityName,
			r.Alert.AlertType,
			r.Alert.AlertLevel,
			r.Alert.Message,
			strconv.FormatBool(r.Alert.IsResolved),
			r.Alert.CreatedAt.Format(dto.DateLayout),
			resolvedAt,
		})
	}
	return writeCSV([]string{
		"facility_code", "facility_name", "commodity_code", "commodity_name",
		"alert_type", "alert_level", "message", "is_resolved", "created_at",
		"resolved_at",
	}, records)
}

func (e *Exporter) exportStockBalances(ctx context.Context) ([]byte, error) {
	rows, err := e.balanceRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		status := dto.StockStatusOK
		if r.Balance.IsLow() {
			status = dto.StockStatusLow
		}
		records = append(records, []string{
			r.FacilityCode,
			r.FacilityName,
			r.CommodityCode,
			r.CommodityName,
			r.Balance.CurrentStock.String(),
			r.Balance.ReorderLevel.String(),
			r.Balance.MaximumStock.String(),
			status,
			r.Balance.LastUpdated.Format(dto.DateLayout),
		})
	}
	return writeCSV([]string{
		"facility_code", "facility_name", "commodity_code", "commodity_name",
		"current_stock", "reorder_level", "maximum_stock", "stock_status",
		"last_updated",
	}, records)
}

func (e *Exporter) exportFacilities(ctx context.Context) ([]byte, error) {
	facilities, err := e.facilityRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	records := make([][]string, 0, len(facilities))
	for _, f := range facilities {
		records = append(records, []string{f.Code, f.Name, f.District, f.Region, f.FacilityType})
	}
	return writeCSV([]string{
		"facility_code", "facility_name", "district", "region", "facility_type",
	}, records)
}

func (e *Exporter) exportCommodities(ctx context.Context) ([]byte, error) {
	commodities, err := e.commodityRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	records := make([][]string, 0, len(commodities))
	for _, c := range commodities {
		records = append(records, []string{c.Code, c.Name, c.CommodityType, c.UnitOfMeasure})
	}
	return writeCSV([]string{
		"commodity_code", "commodity_name", "commodity_type", "unit_of_measure",
	}, records)
}
