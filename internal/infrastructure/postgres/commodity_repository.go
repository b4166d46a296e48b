package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/medstock-api/internal/domain"
	"github.com/tu-usuario/medstock-api/internal/domain/entity"
	"github.com/tu-usuario/medstock-api/internal/domain/repository"
)

var _ repository.CommodityRepository = (*CommodityRepo)(nil)

// CommodityRepo implementación de CommodityRepository sobre PostgreSQL.
type CommodityRepo struct {
	q Querier
}

// NewCommodityRepository construye el adaptador. Acepta pool o tx (Querier).
func NewCommodityRepository(q Querier) *CommodityRepo {
	return &CommodityRepo{q: q}
}

func (r *CommodityRepo) Create(ctx context.Context, c *entity.Commodity) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	query := `
		INSERT INTO commodities (id, code, name, commodity_type, unit_of_measure, created_at)
		VALUES ($1, $2, $3, $4, $5, now())`
	_, err := r.q.Exec(ctx, query, c.ID, c.Code, c.Name, c.CommodityType, c.UnitOfMeasure)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: ya existe un insumo con código %s", domain.ErrDuplicate, c.Code)
		}
		return fmt.Errorf("create commodity: %w", err)
	}
	return nil
}

func (r *CommodityRepo) Update(ctx context.Context, c *entity.Commodity) error {
	query := `
		UPDATE commodities
		SET name = $2, commodity_type = $3, unit_of_measure = $4
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, c.ID, c.Name, c.CommodityType, c.UnitOfMeasure)
	if err != nil {
		return fmt.Errorf("update commodity: %w", err)
	}
	return nil
}

func (r *CommodityRepo) GetByID(ctx context.Context, id string) (*entity.Commodity, error) {
	return r.get(ctx, "id = $1", id)
}

func (r *CommodityRepo) GetByCode(ctx context.Context, code string) (*entity.Commodity, error) {
	return r.get(ctx, "code = $1", code)
}

func (r *CommodityRepo) get(ctx context.Context, where string, arg any) (*entity.Commodity, error) {
	query := `
		SELECT id, code, name, commodity_type, unit_of_measure, created_at
		FROM commodities WHERE ` + where
	var c entity.Commodity
	err := r.q.QueryRow(ctx, query, arg).Scan(
		&c.ID, &c.Code, &c.Name, &c.CommodityType, &c.UnitOfMeasure, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get commodity: %w", err)
	}
	return &c, nil
}

func (r *CommodityRepo) List(ctx context.Context) ([]*entity.Commodity, error) {
	query := `
		SELECT id, code, name, commodity_type, unit_of_measure, created_at
		FROM commodities ORDER BY code`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list commodities: %w", err)
	}
	defer rows.Close()
	var list []*entity.Commodity
	for rows.Next() {
		var c entity.Commodity
		if err := rows.Scan(&c.ID, &c.Code, &c.Name, &c.CommodityType, &c.UnitOfMeasure, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan commodity: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

func (r *CommodityRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM commodities`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count commodities: %w", err)
	}
	return n, nil
}
