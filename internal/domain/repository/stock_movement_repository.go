package repository

import (
	"context"
	"time"

	"github.com/tu-usuario/medstock-api/internal/domain/entity"
)

// StockMovementRepository persiste el ledger append-only de movimientos.
type StockMovementRepository interface {
	Create(ctx context.Context, m *entity.StockMovement) error
	// ListByPair devuelve los movimientos de un par desde una fecha,
	// ordenados por fecha ascendente. Entrada del Balance Aggregator.
	ListByPair(ctx context.Context, facilityID, commodityID string, from time.Time) ([]*entity.StockMovement, error)
}
