package forecast

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/medstock-api/internal/domain"
	"github.com/tu-usuario/medstock-api/internal/domain/entity"
)

// DefaultLeadTimeDays se usa cuando el par no tiene lead time registrado.
const DefaultLeadTimeDays = 30

// confidenceHalfSamples es el número de muestras en el que la confianza llega
// a 0.5 con la curva n/(n+k).
const confidenceHalfSamples = 10

// Thresholds son los multiplicadores del lead time que delimitan cada tier de
// riesgo. Configuración, no constantes: el clasificador es determinista dados
// los mismos (días, lead time, umbrales).
type Thresholds struct {
	CriticalMult float64 // días <= lead_time * CriticalMult ⇒ CRITICAL
	HighMult     float64 // días <= lead_time * HighMult     ⇒ HIGH
	MediumMult   float64 // días <= lead_time * MediumMult   ⇒ MEDIUM
}

// DefaultThresholds: CRITICAL dentro del lead time, HIGH hasta 2x, MEDIUM
// hasta 4x, LOW después.
func DefaultThresholds() Thresholds {
	return Thresholds{CriticalMult: 1, HighMult: 2, MediumMult: 4}
}

// DaysToStockOut devuelve stock_actual / tasa_diaria. Falla con
// ErrInsufficientData si la tasa no es estimable; el caller nunca recibe
// infinito ni un default silencioso.
func DaysToStockOut(currentStock decimal.Decimal, est ConsumptionEstimate) (float64, error) {
	if !est.Known() {
		return 0, domain.ErrInsufficientData
	}
	if currentStock.LessThan(decimal.Zero) {
		currentStock = decimal.Zero
	}
	days, _ := currentStock.Div(est.DailyRate).Float64()
	return days, nil
}

// ClassifyRisk clasifica los días hasta el quiebre contra múltiplos del lead
// time. Determinista.
func ClassifyRisk(daysToStockOut float64, leadTimeDays int, th Thresholds) string {
	lt := float64(leadTimeDays)
	switch {
	case daysToStockOut <= lt*th.CriticalMult:
		return entity.RiskCritical
	case daysToStockOut <= lt*th.HighMult:
		return entity.RiskHigh
	case daysToStockOut <= lt*th.MediumMult:
		return entity.RiskMedium
	default:
		return entity.RiskLow
	}
}

// Confidence es el score de suficiencia de datos: n/(n+k) con n = muestras de
// salida usadas. Monótona creciente en n y acotada en [0,1).
func Confidence(samples int) decimal.Decimal {
	if samples <= 0 {
		return decimal.Zero
	}
	n := decimal.NewFromInt(int64(samples))
	return n.Div(n.Add(decimal.NewFromInt(confidenceHalfSamples))).Round(4)
}
