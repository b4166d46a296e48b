package repository

import (
	"context"

	"github.com/tu-usuario/medstock-api/internal/domain/entity"
)

// PredictionFilter filtra el listado de predicciones. IDs vacíos = sin filtro.
type PredictionFilter struct {
	FacilityID  string
	CommodityID string
	Limit       int
}

// PredictionRow es una predicción con códigos y nombres resueltos por JOIN.
type PredictionRow struct {
	Prediction    entity.Prediction
	FacilityCode  string
	FacilityName  string
	CommodityCode string
	CommodityName string
}

// PredictionRepository persiste predicciones (write-once, histórico).
type PredictionRepository interface {
	Create(ctx context.Context, p *entity.Prediction) error
	// List devuelve predicciones ordenadas por creación descendente.
	List(ctx context.Context, f PredictionFilter) ([]PredictionRow, error)
	// LatestByPair devuelve la predicción más reciente del par, (nil, nil) si
	// nunca se predijo.
	LatestByPair(ctx context.Context, facilityID, commodityID string) (*entity.Prediction, error)
}
