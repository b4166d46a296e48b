// Package forecast contiene la lógica pura de estimación de quiebre de stock:
// tasa de consumo sobre ventana móvil, días hasta el quiebre, clasificación
// de riesgo por umbrales y score de confianza. Sin acceso a datos.
package forecast

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/medstock-api/internal/domain/entity"
)

// DefaultWindowDays es la ventana móvil por defecto para estimar consumo.
const DefaultWindowDays = 90

// ConsumptionEstimate es la tasa de consumo diaria estimada a partir del
// ledger de movimientos de un par (facility, commodity).
type ConsumptionEstimate struct {
	DailyRate  decimal.Decimal
	Samples    int // movimientos de salida usados en la estimación
	WindowDays int
}

// Known indica si la tasa es utilizable. Ventana sin salidas ⇒ tasa
// desconocida: el predictor debe fallar con datos insuficientes, nunca
// dividir por cero ni asumir consumo nulo.
func (e ConsumptionEstimate) Known() bool {
	return e.Samples > 0 && e.DailyRate.GreaterThan(decimal.Zero)
}

// EstimateConsumption calcula la salida diaria promedio sobre la ventana:
// suma de las cantidades de salida (ISSUE y ajustes negativos, guardadas con
// signo) dividida por los días de la ventana. Los movimientos deben venir ya
// filtrados a la ventana por el caller.
func EstimateConsumption(movements []*entity.StockMovement, windowDays int) ConsumptionEstimate {
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}
	est := ConsumptionEstimate{WindowDays: windowDays}

	total := decimal.Zero
	for _, m := range movements {
		if m.Quantity.LessThan(decimal.Zero) {
			total = total.Add(m.Quantity.Neg())
			est.Samples++
		}
	}
	if est.Samples == 0 || !total.GreaterThan(decimal.Zero) {
		return est
	}
	est.DailyRate = total.Div(decimal.NewFromInt(int64(windowDays)))
	return est
}
