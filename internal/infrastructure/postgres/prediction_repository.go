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

var _ repository.PredictionRepository = (*PredictionRepo)(nil)

// PredictionRepo implementación de PredictionRepository sobre PostgreSQL.
type PredictionRepo struct {
	q Querier
}

// NewPredictionRepository construye el adaptador. Acepta pool o tx (Querier).
func NewPredictionRepository(q Querier) *PredictionRepo {
	return &PredictionRepo{q: q}
}

func (r *PredictionRepo) Create(ctx context.Context, p *entity.Prediction) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	query := `
		INSERT INTO predictions
			(id, facility_id, commodity_id, prediction_date, predicted_stock_out_date, confidence_score, risk_level, model_used, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now())`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.FacilityID, p.CommodityID, p.PredictionDate, p.PredictedStockOutDate,
		p.ConfidenceScore, p.RiskLevel, p.ModelUsed,
	)
	if err != nil {
		return fmt.Errorf("create prediction: %w", err)
	}
	return nil
}

func (r *PredictionRepo) List(ctx context.Context, f repository.PredictionFilter) ([]repository.PredictionRow, error) {
	query := `
		SELECT p.id, p.facility_id, p.commodity_id, p.prediction_date, p.predicted_stock_out_date,
			p.confidence_score, p.risk_level, p.model_used, p.created_at,
			f.code, f.name, c.code, c.name
		FROM predictions p
		JOIN facilities f ON f.id = p.facility_id
		JOIN commodities c ON c.id = p.commodity_id
		WHERE ($1 = '' OR p.facility_id::text = $1)
			AND ($2 = '' OR p.commodity_id::text = $2)
		ORDER BY p.created_at DESC
		LIMIT $3`
	limit := f.Limit
	if limit <= 0 {
		limit = 100
	}
	rows, err := r.q.Query(ctx, query, f.FacilityID, f.CommodityID, limit)
	if err != nil {
		return nil, fmt.Errorf("list predictions: %w", err)
	}
	defer rows.Close()
	var list []repository.PredictionRow
	for rows.Next() {
		var row repository.PredictionRow
		if err := rows.Scan(
			&row.Prediction.ID, &row.Prediction.FacilityID, &row.Prediction.CommodityID,
			&row.Prediction.PredictionDate, &row.Prediction.PredictedStockOutDate,
			&row.Prediction.ConfidenceScore, &row.Prediction.RiskLevel, &row.Prediction.ModelUsed,
			&row.Prediction.CreatedAt,
			&row.FacilityCode, &row.FacilityName, &row.CommodityCode, &row.CommodityName,
		); err != nil {
			return nil, fmt.Errorf("scan prediction: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

func (r *PredictionRepo) LatestByPair(ctx context.Context, facilityID, commodityID string) (*entity.Prediction, error) {
	query := `
		SELECT id, facility_id, commodity_id, prediction_date, predicted_stock_out_date,
			confidence_score, risk_level, model_used, created_at
		FROM predictions
		WHERE facility_id = $1 AND commodity_id = $2
		ORDER BY created_at DESC
		LIMIT 1`
	var p entity.Prediction
	err := r.q.QueryRow(ctx, query, facilityID, commodityID).Scan(
		&p.ID, &p.FacilityID, &p.CommodityID, &p.PredictionDate, &p.PredictedStockOutDate,
		&p.ConfidenceScore, &p.RiskLevel, &p.ModelUsed, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("latest prediction: %w", err)
	}
	return &p, nil
}
