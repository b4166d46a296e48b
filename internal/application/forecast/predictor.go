// Package forecast implementa el Risk Predictor: regla determinista de días
// hasta el quiebre contra el lead time, con persistencia write-once de cada
// predicción.
package forecast

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/medstock-api/internal/application/alerting"
	"github.com/tu-usuario/medstock-api/internal/application/dto"
	"github.com/tu-usuario/medstock-api/internal/application/stock"
	"github.com/tu-usuario/medstock-api/internal/domain"
	"github.com/tu-usuario/medstock-api/internal/domain/entity"
	"github.com/tu-usuario/medstock-api/internal/domain/forecast"
	"github.com/tu-usuario/medstock-api/internal/domain/repository"
)

// ModelRuleBased identifica la regla determinista actual en model_used.
const ModelRuleBased = "rule_based_v1"

// Config parámetros del predictor.
type Config struct {
	DefaultLeadTimeDays int
	Thresholds          forecast.Thresholds
}

// PredictorUseCase genera predicciones de quiebre de stock por par.
type PredictorUseCase struct {
	txRunner       TxRunner
	balanceRepo    repository.StockBalanceRepository
	leadTimeRepo   repository.LeadTimeRepository
	predictionRepo repository.PredictionRepository
	facilityRepo   repository.FacilityRepository
	commodityRepo  repository.CommodityRepository
	aggregator     *stock.Aggregator
	alerts         *alerting.Generator
	cfg            Config
	now            func() time.Time
}

// NewPredictorUseCase construye el predictor.
func NewPredictorUseCase(
	txRunner TxRunner,
	balanceRepo repository.StockBalanceRepository,
	leadTimeRepo repository.LeadTimeRepository,
	predictionRepo repository.PredictionRepository,
	facilityRepo repository.FacilityRepository,
	commodityRepo repository.CommodityRepository,
	aggregator *stock.Aggregator,
	alerts *alerting.Generator,
	cfg Config,
) *PredictorUseCase {
	if cfg.DefaultLeadTimeDays <= 0 {
		cfg.DefaultLeadTimeDays = forecast.DefaultLeadTimeDays
	}
	if cfg.Thresholds == (forecast.Thresholds{}) {
		cfg.Thresholds = forecast.DefaultThresholds()
	}
	return &PredictorUseCase{
		txRunner:       txRunner,
		balanceRepo:    balanceRepo,
		leadTimeRepo:   leadTimeRepo,
		predictionRepo: predictionRepo,
		facilityRepo:   facilityRepo,
		commodityRepo:  commodityRepo,
		aggregator:     aggregator,
		alerts:         alerts,
		cfg:            cfg,
		now:            time.Now,
	}
}

// Predict genera y persiste una predicción para el par. No muta el balance.
//
// Errores: ErrNotFound si facility, commodity o balance no existen;
// ErrInsufficientData si la tasa de consumo no es estimable (reportado al
// caller, nunca defaulteado a un tier).
func (uc *PredictorUseCase) Predict(ctx context.Context, facilityID, commodityID string) (*dto.GeneratePredictionResult, error) {
	facility, err := uc.facilityRepo.GetByID(ctx, facilityID)
	if err != nil {
		return nil, err
	}
	commodity, err := uc.commodityRepo.GetByID(ctx, commodityID)
	if err != nil {
		return nil, err
	}
	if facility == nil || commodity == nil {
		return nil, domain.ErrNotFound
	}
	balance, err := uc.balanceRepo.Get(ctx, facilityID, commodityID)
	if err != nil {
		return nil, err
	}
	if balance == nil {
		return nil, domain.ErrNotFound
	}

	est, err := uc.aggregator.Estimate(ctx, facilityID, commodityID)
	if err != nil {
		return nil, err
	}
	days, err := forecast.DaysToStockOut(balance.CurrentStock, est)
	if err != nil {
		return nil, err
	}

	leadDays, ok, err := uc.leadTimeRepo.AverageDaysForPair(ctx, facilityID, commodityID)
	if err != nil {
		return nil, err
	}
	if !ok {
		leadDays = uc.cfg.DefaultLeadTimeDays
	}

	riskLevel := forecast.ClassifyRisk(days, leadDays, uc.cfg.Thresholds)
	confidence := forecast.Confidence(est.Samples)

	now := uc.now()
	predictionDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	predictedDate := predictionDate.AddDate(0, 0, int(days))

	pred := &entity.Prediction{
		FacilityID:            facilityID,
		CommodityID:           commodityID,
		PredictionDate:        predictionDate,
		PredictedStockOutDate: predictedDate,
		ConfidenceScore:       confidence,
		RiskLevel:             riskLevel,
		ModelUsed:             ModelRuleBased,
		CreatedAt:             now,
	}

	// Predicción + alerta REORDER del par en una sola transacción.
	err = uc.txRunner.RunForecast(ctx, func(
		predRepo repository.PredictionRepository,
		alertRepo repository.AlertRepository,
	) error {
		if err := predRepo.Create(ctx, pred); err != nil {
			return fmt.Errorf("persistir predicción: %w", err)
		}
		return uc.alerts.EvaluatePair(ctx, alertRepo, balance, pred)
	})
	if err != nil {
		return nil, err
	}

	return &dto.GeneratePredictionResult{
		PredictedDate:       predictedDate.Format(dto.DateLayout),
		DaysUntilStockOut:   int(days),
		RiskLevel:           riskLevel,
		Confidence:          confidence,
		Model:               ModelRuleBased,
		CurrentStock:        balance.CurrentStock,
		AvgDailyConsumption: est.DailyRate,
		AvgLeadTimeDays:     leadDays,
	}, nil
}

// List devuelve predicciones filtrables por facility/commodity, más recientes
// primero (tope 100, como el dashboard original).
func (uc *PredictorUseCase) List(ctx context.Context, f repository.PredictionFilter) ([]dto.PredictionDTO, error) {
	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = 100
	}
	rows, err := uc.predictionRepo.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("listar predicciones: %w", err)
	}
	out := make([]dto.PredictionDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.FromPredictionRow(r))
	}
	return out, nil
}
