package dto

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/medstock-api/internal/domain/repository"
)

// GeneratePredictionRequest body de POST /api/predictions.
type GeneratePredictionRequest struct {
	FacilityID  string `json:"facility_id"`
	CommodityID string `json:"commodity_id"`
}

// Validate valida que ambos IDs estén presentes.
func (r GeneratePredictionRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FacilityID, validation.Required),
		validation.Field(&r.CommodityID, validation.Required),
	)
}

// PredictionDTO respuesta de GET /api/predictions.
type PredictionDTO struct {
	ID                    string          `json:"id"`
	FacilityName          string          `json:"facility_name"`
	CommodityName         string          `json:"commodity_name"`
	PredictionDate        string          `json:"prediction_date"`
	PredictedStockOutDate string          `json:"predicted_stock_out_date"`
	ConfidenceScore       decimal.Decimal `json:"confidence_score"`
	RiskLevel             string          `json:"risk_level"`
	ModelUsed             string          `json:"model_used"`
	CreatedAt             string          `json:"created_at"`
}

// FromPredictionRow mapea la fila con nombres al DTO.
func FromPredictionRow(r repository.PredictionRow) PredictionDTO {
	return PredictionDTO{
		ID:                    r.Prediction.ID,
		FacilityName:          r.FacilityName,
		CommodityName:         r.CommodityName,
		PredictionDate:        r.Prediction.PredictionDate.Format(DateLayout),
		PredictedStockOutDate: r.Prediction.PredictedStockOutDate.Format(DateLayout),
		ConfidenceScore:       r.Prediction.ConfidenceScore,
		RiskLevel:             r.Prediction.RiskLevel,
		ModelUsed:             r.Prediction.ModelUsed,
		CreatedAt:             r.Prediction.CreatedAt.Format(DateLayout),
	}
}

// GeneratePredictionResult respuesta de POST /api/predictions: la predicción
// recién generada más los insumos del cálculo.
type GeneratePredictionResult struct {
	PredictedDate       string          `json:"predicted_date"`
	DaysUntilStockOut   int             `json:"days_until_stockout"`
	RiskLevel           string          `json:"risk_level"`
	Confidence          decimal.Decimal `json:"confidence"`
	Model               string          `json:"model"`
	CurrentStock        decimal.Decimal `json:"current_stock"`
	AvgDailyConsumption decimal.Decimal `json:"avg_daily_consumption"`
	AvgLeadTimeDays     int             `json:"avg_lead_time"`
}
