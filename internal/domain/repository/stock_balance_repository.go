package repository

import (
	"context"

	"github.com/tu-usuario/medstock-api/internal/domain/entity"
)

// BalanceRow es un balance con los códigos y nombres de su facility y
// commodity resueltos por JOIN (para listados y exports).
type BalanceRow struct {
	Balance       entity.StockBalance
	FacilityCode  string
	FacilityName  string
	CommodityCode string
	CommodityName string
}

// StockBalanceRepository persiste el snapshot de stock por par.
type StockBalanceRepository interface {
	// Get devuelve (nil, nil) si el par no tiene balance.
	Get(ctx context.Context, facilityID, commodityID string) (*entity.StockBalance, error)
	// GetForUpdate bloquea la fila (SELECT FOR UPDATE). Si el par no tiene
	// balance devuelve uno en cero listo para Upsert.
	GetForUpdate(ctx context.Context, facilityID, commodityID string) (*entity.StockBalance, error)
	Upsert(ctx context.Context, b *entity.StockBalance) error
	List(ctx context.Context) ([]BalanceRow, error)
}
