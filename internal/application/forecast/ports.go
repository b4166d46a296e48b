package forecast

import (
	"context"

	"github.com/tu-usuario/medstock-api/internal/domain/repository"
)

// TxRunner ejecuta el cierre de una predicción dentro de una transacción:
// inserción de la fila Prediction y upsert/resolución de la alerta REORDER
// del par, atómicos.
type TxRunner interface {
	RunForecast(ctx context.Context, fn func(
		predRepo repository.PredictionRepository,
		alertRepo repository.AlertRepository,
	) error) error
}
