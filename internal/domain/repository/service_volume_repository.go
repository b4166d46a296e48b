package repository

import (
	"context"
	"time"

	"github.com/tu-usuario/medstock-api/internal/domain/entity"
)

// ServiceVolumeRepository persiste volúmenes de servicio por facility.
type ServiceVolumeRepository interface {
	Create(ctx context.Context, v *entity.ServiceVolume) error
	ListByFacility(ctx context.Context, facilityID string, from time.Time) ([]*entity.ServiceVolume, error)
}
