package repository

import (
	"context"

	"github.com/tu-usuario/medstock-api/internal/domain/entity"
)

// LeadTimeRepository persiste lead times por (facility, commodity, supplier).
type LeadTimeRepository interface {
	Upsert(ctx context.Context, lt *entity.LeadTime) error
	// AverageDaysForPair promedia el lead time entre los proveedores del par.
	// ok=false si el par no tiene lead times registrados.
	AverageDaysForPair(ctx context.Context, facilityID, commodityID string) (days int, ok bool, err error)
}
