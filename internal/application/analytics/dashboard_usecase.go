// Package analytics contiene el caso de uso del resumen del dashboard.
package analytics

import (
	"context"
	"fmt"

	"github.com/tu-usuario/medstock-api/internal/application/dto"
	"github.com/tu-usuario/medstock-api/internal/domain/repository"
)

// dashboardRecentPredictions es el tamaño del widget de predicciones.
const dashboardRecentPredictions = 10

// DashboardUseCase arma las estadísticas agregadas del dashboard:
// conteos de facilities/commodities/alertas activas y las predicciones más
// recientes. Solo lecturas; las cuatro consultas van en paralelo.
type DashboardUseCase struct {
	facilityRepo   repository.FacilityRepository
	commodityRepo  repository.CommodityRepository
	alertRepo      repository.AlertRepository
	predictionRepo repository.PredictionRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	facilityRepo repository.FacilityRepository,
	commodityRepo repository.CommodityRepository,
	alertRepo repository.AlertRepository,
	predictionRepo repository.PredictionRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		facilityRepo:   facilityRepo,
		commodityRepo:  commodityRepo,
		alertRepo:      alertRepo,
		predictionRepo: predictionRepo,
	}
}

// GetStats construye el DashboardStatsDTO.
func (uc *DashboardUseCase) GetStats(ctx context.Context) (*dto.DashboardStatsDTO, error) {
	type countResult struct {
		n   int
		err error
	}
	type predsResult struct {
		rows []repository.PredictionRow
		err  error
	}

	facilitiesCh := make(chan countResult, 1)
	commoditiesCh := make(chan countResult, 1)
	alertsCh := make(chan countResult, 1)
	predsCh := make(chan predsResult, 1)

	go func() {
		n, err := uc.facilityRepo.Count(ctx)
		facilitiesCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.commodityRepo.Count(ctx)
		commoditiesCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.alertRepo.CountActive(ctx)
		alertsCh <- countResult{n, err}
	}()
	go func() {
		rows, err := uc.predictionRepo.List(ctx, repository.PredictionFilter{Limit: dashboardRecentPredictions})
		predsCh <- predsResult{rows, err}
	}()

	facilities := <-facilitiesCh
	commodities := <-commoditiesCh
	alerts := <-alertsCh
	preds := <-predsCh

	for _, err := range []error{facilities.err, commodities.err, alerts.err, preds.err} {
		if err != nil {
			return nil, fmt.Errorf("estadísticas del dashboard: %w", err)
		}
	}

	recent := make([]dto.RecentPredictionDTO, 0, len(preds.rows))
	for _, r := range preds.rows {
		recent = append(recent, dto.FromPredictionRowRecent(r))
	}

	return &dto.DashboardStatsDTO{
		TotalFacilities:   facilities.n,
		TotalCommodities:  commodities.n,
		ActiveAlerts:      alerts.n,
		RecentPredictions: recent,
	}, nil
}
