package alerting_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/medstock-api/internal/application/alerting"
	"github.com/tu-usuario/medstock-api/internal/domain/entity"
	"github.com/tu-usuario/medstock-api/internal/domain/repository"
)

// fakeAlertRepo es un AlertRepository en memoria para los tests del generador.
type fakeAlertRepo struct {
	alerts []*entity.Alert
	nextID int
}

var _ repository.AlertRepository = (*fakeAlertRepo)(nil)

func (f *fakeAlertRepo) Create(_ context.Context, a *entity.Alert) error {
	f.nextID++
	a.ID = fmt.Sprintf("alert-%d", f.nextID)
	clone := *a
	f.alerts = append(f.alerts, &clone)
	return nil
}

func (f *fakeAlertRepo) Update(_ context.Context, a *entity.Alert) error {
	for _, existing := range f.alerts {
		if existing.ID == a.ID {
			existing.AlertLevel = a.AlertLevel
			existing.Message = a.Message
			existing.UpdatedAt = a.UpdatedAt
			return nil
		}
	}
	return fmt.Errorf("alerta %s no existe", a.ID)
}

func (f *fakeAlertRepo) GetByID(_ context.Context, id string) (*entity.Alert, error) {
	for _, a := range f.alerts {
		if a.ID == id {
			clone := *a
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakeAlertRepo) GetActive(_ context.Context, facilityID, commodityID, alertType string) (*entity.Alert, error) {
	for _, a := range f.alerts {
		if a.FacilityID == facilityID && a.CommodityID == commodityID &&
			a.AlertType == alertType && !a.IsResolved {
			clone := *a
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakeAlertRepo) Resolve(_ context.Context, id string, at time.Time) error {
	for _, a := range f.alerts {
		if a.ID == id {
			a.Resolve(at)
			return nil
		}
	}
	return nil
}

func (f *fakeAlertRepo) List(_ context.Context) ([]repository.AlertRow, error) {
	out := make([]repository.AlertRow, 0, len(f.alerts))
	for _, a := range f.alerts {
		out = append(out, repository.AlertRow{Alert: *a})
	}
	return out, nil
}

func (f *fakeAlertRepo) CountActive(_ context.Context) (int, error) {
	n := 0
	for _, a := range f.alerts {
		if !a.IsResolved {
			n++
		}
	}
	return n, nil
}

func (f *fakeAlertRepo) active(alertType string) []*entity.Alert {
	var out []*entity.Alert
	for _, a := range f.alerts {
		if a.AlertType == alertType && !a.IsResolved {
			out = append(out, a)
		}
	}
	return out
}

func balanceWith(stock, reorder int64) *entity.StockBalance {
	return &entity.StockBalance{
		FacilityID:   "fac-1",
		CommodityID:  "com-1",
		CurrentStock: decimal.NewFromInt(stock),
		ReorderLevel: decimal.NewFromInt(reorder),
		MaximumStock: decimal.NewFromInt(1000),
	}
}

func TestEvaluatePair_StockCeroGeneraStockOutCritical(t *testing.T) {
	repo := &fakeAlertRepo{}
	gen := alerting.NewGenerator()

	err := gen.EvaluatePair(context.Background(), repo, balanceWith(0, 100), nil)
	require.NoError(t, err)

	active := repo.active(entity.AlertTypeStockOut)
	require.Len(t, active, 1)
	assert.Equal(t, entity.AlertLevelCritical, active[0].AlertLevel)
	// Stock en cero no es LOW_STOCK además de STOCK_OUT.
	assert.Empty(t, repo.active(entity.AlertTypeLowStock))
}

func TestEvaluatePair_BajoReordenGeneraLowStockWarning(t *testing.T) {
	repo := &fakeAlertRepo{}
	gen := alerting.NewGenerator()

	err := gen.EvaluatePair(context.Background(), repo, balanceWith(50, 100), nil)
	require.NoError(t, err)

	active := repo.active(entity.AlertTypeLowStock)
	require.Len(t, active, 1)
	assert.Equal(t, entity.AlertLevelWarning, active[0].AlertLevel)
	assert.Empty(t, repo.active(entity.AlertTypeStockOut))
}

func TestEvaluatePair_EvaluacionRepetidaNoDuplica(t *testing.T) {
	repo := &fakeAlertRepo{}
	gen := alerting.NewGenerator()
	balance := balanceWith(0, 100)

	for i := 0; i < 3; i++ {
		require.NoError(t, gen.EvaluatePair(context.Background(), repo, balance, nil))
	}

	assert.Len(t, repo.active(entity.AlertTypeStockOut), 1,
		"la misma condición evaluada varias veces mantiene una sola alerta activa")
}

func TestEvaluatePair_ReposicionResuelveConTimestamp(t *testing.T) {
	repo := &fakeAlertRepo{}
	gen := alerting.NewGenerator()

	require.NoError(t, gen.EvaluatePair(context.Background(), repo, balanceWith(0, 100), nil))
	require.Len(t, repo.active(entity.AlertTypeStockOut), 1)

	// El stock se repone por encima del reorden: todo se resuelve.
	require.NoError(t, gen.EvaluatePair(context.Background(), repo, balanceWith(500, 100), nil))

	assert.Empty(t, repo.active(entity.AlertTypeStockOut))
	require.Len(t, repo.alerts, 1)
	resolved := repo.alerts[0]
	assert.True(t, resolved.IsResolved)
	require.NotNil(t, resolved.ResolvedAt)
}

func TestEvaluatePair_PrediccionCriticaGeneraReorder(t *testing.T) {
	repo := &fakeAlertRepo{}
	gen := alerting.NewGenerator()
	latest := &entity.Prediction{
		RiskLevel:             entity.RiskCritical,
		PredictedStockOutDate: time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC),
	}

	err := gen.EvaluatePair(context.Background(), repo, balanceWith(500, 100), latest)
	require.NoError(t, err)

	active := repo.active(entity.AlertTypeReorder)
	require.Len(t, active, 1)
	assert.Equal(t, entity.AlertLevelCritical, active[0].AlertLevel)
}

func TestEvaluatePair_RiesgoBajoNoDisparaReorder(t *testing.T) {
	repo := &fakeAlertRepo{}
	gen := alerting.NewGenerator()
	latest := &entity.Prediction{RiskLevel: entity.RiskLow}

	require.NoError(t, gen.EvaluatePair(context.Background(), repo, balanceWith(500, 100), latest))

	assert.Empty(t, repo.alerts, "riesgo LOW no genera ninguna alerta")
}

func TestAlertResolve_Idempotente(t *testing.T) {
	first := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	later := first.Add(48 * time.Hour)

	a := &entity.Alert{ID: "a1"}
	a.Resolve(first)
	a.Resolve(later)

	require.NotNil(t, a.ResolvedAt)
	assert.Equal(t, first, *a.ResolvedAt, "resolver dos veces conserva el primer timestamp")
}
