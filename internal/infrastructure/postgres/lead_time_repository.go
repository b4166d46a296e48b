package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/medstock-api/internal/domain/entity"
	"github.com/tu-usuario/medstock-api/internal/domain/repository"
)

var _ repository.LeadTimeRepository = (*LeadTimeRepo)(nil)

// LeadTimeRepo implementación de LeadTimeRepository sobre PostgreSQL.
type LeadTimeRepo struct {
	q Querier
}

// NewLeadTimeRepository construye el adaptador. Acepta pool o tx (Querier).
func NewLeadTimeRepository(q Querier) *LeadTimeRepo {
	return &LeadTimeRepo{q: q}
}

func (r *LeadTimeRepo) Upsert(ctx context.Context, lt *entity.LeadTime) error {
	if lt.ID == "" {
		lt.ID = uuid.New().String()
	}
	query := `
		INSERT INTO lead_times (id, facility_id, commodity_id, supplier, average_lead_time_days, last_updated)
		VALUES ($1, $2, $3, $4, $5, now())
		ON CONFLICT (facility_id, commodity_id, supplier)
		DO UPDATE SET average_lead_time_days = EXCLUDED.average_lead_time_days,
			last_updated = now()`
	_, err := r.q.Exec(ctx, query, lt.ID, lt.FacilityID, lt.CommodityID, lt.Supplier, lt.AverageLeadTimeDays)
	if err != nil {
		return fmt.Errorf("upsert lead time: %w", err)
	}
	return nil
}

func (r *LeadTimeRepo) AverageDaysForPair(ctx context.Context, facilityID, commodityID string) (int, bool, error) {
	query := `
		SELECT ROUND(AVG(average_lead_time_days))::int
		FROM lead_times
		WHERE facility_id = $1 AND commodity_id = $2`
	var days *int
	err := r.q.QueryRow(ctx, query, facilityID, commodityID).Scan(&days)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("average lead time: %w", err)
	}
	if days == nil {
		return 0, false, nil
	}
	return *days, true, nil
}
