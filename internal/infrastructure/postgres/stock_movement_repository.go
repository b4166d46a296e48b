package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/medstock-api/internal/domain/entity"
	"github.com/tu-usuario/medstock-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implementación de StockMovementRepository sobre PostgreSQL.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador. Acepta pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

func (r *StockMovementRepo) Create(ctx context.Context, m *entity.StockMovement) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	query := `
		INSERT INTO stock_movements
			(id, facility_id, commodity_id, movement_type, quantity, unit_cost, movement_date, reference_number, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now())`
	_, err := r.q.Exec(ctx, query,
		m.ID, m.FacilityID, m.CommodityID, m.MovementType, m.Quantity, m.UnitCost, m.MovementDate, m.ReferenceNumber,
	)
	if err != nil {
		return fmt.Errorf("create stock movement: %w", err)
	}
	return nil
}

func (r *StockMovementRepo) ListByPair(ctx context.Context, facilityID, commodityID string, from time.Time) ([]*entity.StockMovement, error) {
	query := `
		SELECT id, facility_id, commodity_id, movement_type, quantity, unit_cost, movement_date, reference_number, created_at
		FROM stock_movements
		WHERE facility_id = $1 AND commodity_id = $2 AND movement_date >= $3
		ORDER BY movement_date ASC, created_at ASC`
	rows, err := r.q.Query(ctx, query, facilityID, commodityID, from)
	if err != nil {
		return nil, fmt.Errorf("list stock movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		if err := rows.Scan(
			&m.ID, &m.FacilityID, &m.CommodityID, &m.MovementType, &m.Quantity,
			&m.UnitCost, &m.MovementDate, &m.ReferenceNumber, &m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
