package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/medstock-api/internal/domain/entity"
	"github.com/tu-usuario/medstock-api/internal/domain/repository"
)

var _ repository.ServiceVolumeRepository = (*ServiceVolumeRepo)(nil)

// ServiceVolumeRepo implementación de ServiceVolumeRepository sobre PostgreSQL.
type ServiceVolumeRepo struct {
	q Querier
}

// NewServiceVolumeRepository construye el adaptador. Acepta pool o tx (Querier).
func NewServiceVolumeRepository(q Querier) *ServiceVolumeRepo {
	return &ServiceVolumeRepo{q: q}
}

func (r *ServiceVolumeRepo) Create(ctx context.Context, v *entity.ServiceVolume) error {
	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	query := `
		INSERT INTO service_volumes (id, facility_id, service_type, volume_count, reporting_period, created_at)
		VALUES ($1, $2, $3, $4, $5, now())`
	_, err := r.q.Exec(ctx, query, v.ID, v.FacilityID, v.ServiceType, v.VolumeCount, v.ReportingPeriod)
	if err != nil {
		return fmt.Errorf("create service volume: %w", err)
	}
	return nil
}

func (r *ServiceVolumeRepo) ListByFacility(ctx context.Context, facilityID string, from time.Time) ([]*entity.ServiceVolume, error) {
	query := `
		SELECT id, facility_id, service_type, volume_count, reporting_period, created_at
		FROM service_volumes
		WHERE facility_id = $1 AND reporting_period >= $2
		ORDER BY reporting_period ASC`
	rows, err := r.q.Query(ctx, query, facilityID, from)
	if err != nil {
		return nil, fmt.Errorf("list service volumes: %w", err)
	}
	defer rows.Close()
	var list []*entity.ServiceVolume
	for rows.Next() {
		var v entity.ServiceVolume
		if err := rows.Scan(&v.ID, &v.FacilityID, &v.ServiceType, &v.VolumeCount, &v.ReportingPeriod, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan service volume: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}
