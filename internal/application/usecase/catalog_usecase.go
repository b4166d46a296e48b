// Package usecase agrupa los casos de uso de lectura del catálogo
// (facilities, commodities y balances de stock).
package usecase

import (
	"context"
	"fmt"

	"github.com/tu-usuario/medstock-api/internal/application/dto"
	"github.com/tu-usuario/medstock-api/internal/domain/repository"
)

// CatalogUseCase listados de facilities, commodities y balances.
type CatalogUseCase struct {
	facilityRepo  repository.FacilityRepository
	commodityRepo repository.CommodityRepository
	balanceRepo   repository.StockBalanceRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(
	facilityRepo repository.FacilityRepository,
	commodityRepo repository.CommodityRepository,
	balanceRepo repository.StockBalanceRepository,
) *CatalogUseCase {
	return &CatalogUseCase{
		facilityRepo:  facilityRepo,
		commodityRepo: commodityRepo,
		balanceRepo:   balanceRepo,
	}
}

// Facilities devuelve todas las facilities.
func (uc *CatalogUseCase) Facilities(ctx context.Context) ([]dto.FacilityDTO, error) {
	list, err := uc.facilityRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar facilities: %w", err)
	}
	out := make([]dto.FacilityDTO, 0, len(list))
	for _, f := range list {
		out = append(out, dto.FromFacility(f))
	}
	return out, nil
}

// Commodities devuelve todos los commodities.
func (uc *CatalogUseCase) Commodities(ctx context.Context) ([]dto.CommodityDTO, error) {
	list, err := uc.commodityRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar commodities: %w", err)
	}
	out := make([]dto.CommodityDTO, 0, len(list))
	for _, c := range list {
		out = append(out, dto.FromCommodity(c))
	}
	return out, nil
}

// StockBalances devuelve los balances con su stock_status derivado.
func (uc *CatalogUseCase) StockBalances(ctx context.Context) ([]dto.StockBalanceDTO, error) {
	rows, err := uc.balanceRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar balances: %w", err)
	}
	out := make([]dto.StockBalanceDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.FromBalanceRow(r))
	}
	return out, nil
}
