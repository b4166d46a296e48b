package alerting

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/medstock-api/internal/application/dto"
	"github.com/tu-usuario/medstock-api/internal/domain"
	"github.com/tu-usuario/medstock-api/internal/domain/repository"
)

// Service expone las operaciones de lectura y resolución manual de alertas
// para la capa HTTP.
type Service struct {
	alertRepo repository.AlertRepository
	now       func() time.Time
}

// NewService construye el servicio.
func NewService(alertRepo repository.AlertRepository) *Service {
	return &Service{alertRepo: alertRepo, now: time.Now}
}

// List devuelve todas las alertas (activas y resueltas) con nombres resueltos,
// ordenadas por creación descendente.
func (s *Service) List(ctx context.Context) ([]dto.AlertDTO, error) {
	rows, err := s.alertRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar alertas: %w", err)
	}
	out := make([]dto.AlertDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.FromAlertRow(r))
	}
	return out, nil
}

// Resolve marca una alerta como resuelta. Idempotente: resolver una alerta ya
// resuelta no cambia su resolved_at. ErrNotFound si el ID no existe.
func (s *Service) Resolve(ctx context.Context, id string) error {
	a, err := s.alertRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("buscar alerta: %w", err)
	}
	if a == nil {
		return domain.ErrNotFound
	}
	if a.IsResolved {
		return nil
	}
	return s.alertRepo.Resolve(ctx, id, s.now())
}
