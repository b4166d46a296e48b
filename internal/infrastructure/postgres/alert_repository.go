package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/medstock-api/internal/domain/entity"
	"github.com/tu-usuario/medstock-api/internal/domain/repository"
)

var _ repository.AlertRepository = (*AlertRepo)(nil)

// AlertRepo implementación de AlertRepository sobre PostgreSQL.
type AlertRepo struct {
	q Querier
}

// NewAlertRepository construye el adaptador. Acepta pool o tx (Querier).
func NewAlertRepository(q Querier) *AlertRepo {
	return &AlertRepo{q: q}
}

const alertColumns = `id, facility_id, commodity_id, alert_type, alert_level, message, is_resolved, created_at, updated_at, resolved_at`

func (r *AlertRepo) Create(ctx context.Context, a *entity.Alert) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	query := `
		INSERT INTO alerts (id, facility_id, commodity_id, alert_type, alert_level, message, is_resolved, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, FALSE, now(), now())`
	_, err := r.q.Exec(ctx, query, a.ID, a.FacilityID, a.CommodityID, a.AlertType, a.AlertLevel, a.Message)
	if err != nil {
		return fmt.Errorf("create alert: %w", err)
	}
	return nil
}

func (r *AlertRepo) Update(ctx context.Context, a *entity.Alert) error {
	query := `
		UPDATE alerts
		SET alert_level = $2, message = $3, updated_at = now()
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, a.ID, a.AlertLevel, a.Message)
	if err != nil {
		return fmt.Errorf("update alert: %w", err)
	}
	return nil
}

func (r *AlertRepo) GetByID(ctx context.Context, id string) (*entity.Alert, error) {
	query := `SELECT ` + alertColumns + ` FROM alerts WHERE id = $1`
	return r.getOne(ctx, query, id)
}

func (r *AlertRepo) GetActive(ctx context.Context, facilityID, commodityID, alertType string) (*entity.Alert, error) {
	query := `
		SELECT ` + alertColumns + `
		FROM alerts
		WHERE facility_id = $1 AND commodity_id = $2 AND alert_type = $3 AND NOT is_resolved
		ORDER BY created_at DESC
		LIMIT 1`
	return r.getOne(ctx, query, facilityID, commodityID, alertType)
}

func (r *AlertRepo) getOne(ctx context.Context, query string, args ...any) (*entity.Alert, error) {
	var a entity.Alert
	err := r.q.QueryRow(ctx, query, args...).Scan(
		&a.ID, &a.FacilityID, &a.CommodityID, &a.AlertType, &a.AlertLevel, &a.Message,
		&a.IsResolved, &a.CreatedAt, &a.UpdatedAt, &a.ResolvedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get alert: %w", err)
	}
	return &a, nil
}

// Resolve marca la alerta como resuelta. El WHERE NOT is_resolved preserva el
// resolved_at original si ya estaba resuelta.
func (r *AlertRepo) Resolve(ctx context.Context, id string, at time.Time) error {
	query := `
		UPDATE alerts
		SET is_resolved = TRUE, resolved_at = $2, updated_at = now()
		WHERE id = $1 AND NOT is_resolved`
	_, err := r.q.Exec(ctx, query, id, at)
	if err != nil {
		return fmt.Errorf("resolve alert: %w", err)
	}
	return nil
}

func (r *AlertRepo) List(ctx context.Context) ([]repository.AlertRow, error) {
	query := `
		SELECT a.id, a.facility_id, a.commodity_id, a.alert_type, a.alert_level, a.message,
			a.is_resolved, a.created_at, a.updated_at, a.resolved_at,
			f.code, f.name, c.code, c.name
		FROM alerts a
		JOIN facilities f ON f.id = a.facility_id
		JOIN commodities c ON c.id = a.commodity_id
		ORDER BY a.is_resolved ASC, a.created_at DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list alerts: %w", err)
	}
	defer rows.Close()
	var list []repository.AlertRow
	for rows.Next() {
		var row repository.AlertRow
		if err := rows.Scan(
			&row.Alert.ID, &row.Alert.FacilityID, &row.Alert.CommodityID,
			&row.Alert.AlertType, &row.Alert.AlertLevel, &row.Alert.Message,
			&row.Alert.IsResolved, &row.Alert.CreatedAt, &row.Alert.UpdatedAt, &row.Alert.ResolvedAt,
			&row.FacilityCode, &row.FacilityName, &row.CommodityCode, &row.CommodityName,
		); err != nil {
			return nil, fmt.Errorf("scan alert: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

func (r *AlertRepo) CountActive(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM alerts WHERE NOT is_resolved`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count active alerts: %w", err)
	}
	return n, nil
}
