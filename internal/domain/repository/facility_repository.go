package repository

import (
	"context"

	"github.com/tu-usuario/medstock-api/internal/domain/entity"
)

// FacilityRepository persiste facilities. Los Get devuelven (nil, nil) cuando
// el recurso no existe.
type FacilityRepository interface {
	Create(ctx context.Context, f *entity.Facility) error
	Update(ctx context.Context, f *entity.Facility) error
	GetByID(ctx context.Context, id string) (*entity.Facility, error)
	GetByCode(ctx context.Context, code string) (*entity.Facility, error)
	List(ctx context.Context) ([]*entity.Facility, error)
	Count(ctx context.Context) (int, error)
}
