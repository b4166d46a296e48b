package repository

import (
	"context"
	"time"

	"github.com/tu-usuario/medstock-api/internal/domain/entity"
)

// AlertRow es una alerta con códigos y nombres resueltos por JOIN.
type AlertRow struct {
	Alert         entity.Alert
	FacilityCode  string
	FacilityName  string
	CommodityCode string
	CommodityName string
}

// AlertRepository persiste alertas. El generador garantiza a lo sumo una
// alerta activa por (facility, commodity, tipo) usando GetActive + Update.
type AlertRepository interface {
	Create(ctx context.Context, a *entity.Alert) error
	// Update actualiza mensaje, nivel y updated_at de una alerta existente.
	Update(ctx context.Context, a *entity.Alert) error
	GetByID(ctx context.Context, id string) (*entity.Alert, error)
	// GetActive devuelve la alerta no resuelta del tipo para el par,
	// (nil, nil) si no hay.
	GetActive(ctx context.Context, facilityID, commodityID, alertType string) (*entity.Alert, error)
	// Resolve marca la alerta como resuelta con timestamp. Idempotente: una
	// alerta ya resuelta conserva su resolved_at original.
	Resolve(ctx context.Context, id string, at time.Time) error
	List(ctx context.Context) ([]AlertRow, error)
	CountActive(ctx context.Context) (int, error)
}
