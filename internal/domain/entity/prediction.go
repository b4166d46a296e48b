package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Niveles de riesgo de quiebre de stock.
const (
	RiskLow      = "LOW"
	RiskMedium   = "MEDIUM"
	RiskHigh     = "HIGH"
	RiskCritical = "CRITICAL"
)

// Prediction es el resultado de una corrida del predictor para un par
// (facility, commodity). Write-once: cada invocación inserta una fila nueva y
// el histórico se conserva ordenado por fecha de predicción.
type Prediction struct {
	ID                    string
	FacilityID            string
	CommodityID           string
	PredictionDate        time.Time
	PredictedStockOutDate time.Time
	ConfidenceScore       decimal.Decimal // [0,1], monótona en el número de muestras
	RiskLevel             string
	ModelUsed             string
	CreatedAt             time.Time
}
