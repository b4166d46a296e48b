package stock

import (
	"context"

	"github.com/tu-usuario/medstock-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que movimiento, balance y alertas
// de un par se apliquen atómicamente (spec de concurrencia: atomicidad por
// par; pares distintos de un mismo archivo son independientes).
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.StockMovementRepository,
		balanceRepo repository.StockBalanceRepository,
		predRepo repository.PredictionRepository,
		alertRepo repository.AlertRepository,
	) error) error
}
