// Package stock implementa el Balance Aggregator y el registro transaccional
// de movimientos: el ledger es la fuente de verdad y el balance una
// proyección cacheada actualizada en la misma transacción.
package stock

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/medstock-api/internal/domain/forecast"
	"github.com/tu-usuario/medstock-api/internal/domain/repository"
)

// Aggregator deriva la tasa de consumo de un par desde el historial de
// movimientos sobre una ventana móvil configurable.
type Aggregator struct {
	movementRepo repository.StockMovementRepository
	windowDays   int
	now          func() time.Time
}

// NewAggregator construye el agregador. windowDays <= 0 usa el default.
func NewAggregator(movementRepo repository.StockMovementRepository, windowDays int) *Aggregator {
	if windowDays <= 0 {
		windowDays = forecast.DefaultWindowDays
	}
	return &Aggregator{movementRepo: movementRepo, windowDays: windowDays, now: time.Now}
}

// Estimate calcula la estimación de consumo del par para la ventana. Una
// ventana sin salidas produce una estimación desconocida (Known() == false),
// nunca una tasa cero implícita.
func (a *Aggregator) Estimate(ctx context.Context, facilityID, commodityID string) (forecast.ConsumptionEstimate, error) {
	from := a.now().AddDate(0, 0, -a.windowDays)
	movements, err := a.movementRepo.ListByPair(ctx, facilityID, commodityID, from)
	if err != nil {
		return forecast.ConsumptionEstimate{}, fmt.Errorf("listar movimientos del par: %w", err)
	}
	return forecast.EstimateConsumption(movements, a.windowDays), nil
}
