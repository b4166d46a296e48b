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

var _ repository.FacilityRepository = (*FacilityRepo)(nil)

// FacilityRepo implementación de FacilityRepository sobre PostgreSQL.
type FacilityRepo struct {
	q Querier
}

// NewFacilityRepository construye el adaptador. Acepta pool o tx (Querier).
func NewFacilityRepository(q Querier) *FacilityRepo {
	return &FacilityRepo{q: q}
}

func (r *FacilityRepo) Create(ctx context.Context, f *entity.Facility) error {
	if f.ID == "" {
		f.ID = uuid.New().String()
	}
	query := `
		INSERT INTO facilities (id, code, name, district, region, facility_type, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, now())`
	_, err := r.q.Exec(ctx, query, f.ID, f.Code, f.Name, f.District, f.Region, f.FacilityType)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: ya existe un establecimiento con código %s", domain.ErrDuplicate, f.Code)
		}
		return fmt.Errorf("create facility: %w", err)
	}
	return nil
}

func (r *FacilityRepo) Update(ctx context.Context, f *entity.Facility) error {
	query := `
		UPDATE facilities
		SET name = $2, district = $3, region = $4, facility_type = $5
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, f.ID, f.Name, f.District, f.Region, f.FacilityType)
	if err != nil {
		return fmt.Errorf("update facility: %w", err)
	}
	return nil
}

func (r *FacilityRepo) GetByID(ctx context.Context, id string) (*entity.Facility, error) {
	return r.get(ctx, "id = $1", id)
}

func (r *FacilityRepo) GetByCode(ctx context.Context, code string) (*entity.Facility, error) {
	return r.get(ctx, "code = $1", code)
}

func (r *FacilityRepo) get(ctx context.Context, where string, arg any) (*entity.Facility, error) {
	query := `
		SELECT id, code, name, district, region, facility_type, created_at
		FROM facilities WHERE ` + where
	var f entity.Facility
	err := r.q.QueryRow(ctx, query, arg).Scan(
		&f.ID, &f.Code, &f.Name, &f.District, &f.Region, &f.FacilityType, &f.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get facility: %w", err)
	}
	return &f, nil
}

func (r *FacilityRepo) List(ctx context.Context) ([]*entity.Facility, error) {
	query := `
		SELECT id, code, name, district, region, facility_type, created_at
		FROM facilities ORDER BY code`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list facilities: %w", err)
	}
	defer rows.Close()
	var list []*entity.Facility
	for rows.Next() {
		var f entity.Facility
		if err := rows.Scan(&f.ID, &f.Code, &f.Name, &f.District, &f.Region, &f.FacilityType, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan facility: %w", err)
		}
		list = append(list, &f)
	}
	return list, rows.Err()
}

func (r *FacilityRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM facilities`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count facilities: %w", err)
	}
	return n, nil
}
