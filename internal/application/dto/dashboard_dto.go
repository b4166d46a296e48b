package dto

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/medstock-api/internal/domain/repository"
)

// RecentPredictionDTO entrada del widget de predicciones recientes.
type RecentPredictionDTO struct {
	FacilityName  string          `json:"facility_name"`
	CommodityName string          `json:"commodity_name"`
	PredictedDate string          `json:"predicted_date"`
	RiskLevel     string          `json:"risk_level"`
	Confidence    decimal.Decimal `json:"confidence"`
}

// DashboardStatsDTO respuesta de GET /api/dashboard/stats.
type DashboardStatsDTO struct {
	TotalFacilities   int                   `json:"total_facilities"`
	TotalCommodities  int                   `json:"total_commodities"`
	ActiveAlerts      int                   `json:"active_alerts"`
	RecentPredictions []RecentPredictionDTO `json:"recent_predictions"`
}

// FromPredictionRowRecent mapea una fila de predicción al widget.
func FromPredictionRowRecent(r repository.PredictionRow) RecentPredictionDTO {
	return RecentPredictionDTO{
		FacilityName:  r.FacilityName,
		CommodityName: r.CommodityName,
		PredictedDate: r.Prediction.PredictedStockOutDate.Format(DateLayout),
		RiskLevel:     r.Prediction.RiskLevel,
		Confidence:    r.Prediction.ConfidenceScore,
	}
}
