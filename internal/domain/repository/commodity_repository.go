package repository

import (
	"context"

	"github.com/tu-usuario/medstock-api/internal/domain/entity"
)

// CommodityRepository persiste commodities. Los Get devuelven (nil, nil)
// cuando el recurso no existe.
type CommodityRepository interface {
	Create(ctx context.Context, c *entity.Commodity) error
	Update(ctx context.Context, c *entity.Commodity) error
	GetByID(ctx context.Context, id string) (*entity.Commodity, error)
	GetByCode(ctx context.Context, code string) (*entity.Commodity, error)
	List(ctx context.Context) ([]*entity.Commodity, error)
	Count(ctx context.Context) (int, error)
}
