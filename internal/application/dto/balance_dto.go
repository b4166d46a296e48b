package dto

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/medstock-api/internal/domain/repository"
)

// Estados derivados de stock para el dashboard.
const (
	StockStatusLow = "LOW" // current_stock <= reorder_level
	StockStatusOK  = "OK"
)

// StockBalanceDTO respuesta de GET /api/stock-balances, anotada con el
// stock_status derivado.
type StockBalanceDTO struct {
	FacilityCode  string          `json:"facility_code"`
	FacilityName  string          `json:"facility_name"`
	CommodityCode string          `json:"commodity_code"`
	CommodityName string          `json:"commodity_name"`
	CurrentStock  decimal.Decimal `json:"current_stock"`
	ReorderLevel  decimal.Decimal `json:"reorder_level"`
	MaximumStock  decimal.Decimal `json:"maximum_stock"`
	StockStatus   string          `json:"stock_status"`
	LastUpdated   string          `json:"last_updated"`
}

// FromBalanceRow mapea la fila con nombres al DTO y deriva el stock_status.
func FromBalanceRow(r repository.BalanceRow) StockBalanceDTO {
	status := StockStatusOK
	if r.Balance.IsLow() {
		status = StockStatusLow
	}
	return StockBalanceDTO{
		FacilityCode:  r.FacilityCode,
		FacilityName:  r.FacilityName,
		CommodityCode: r.CommodityCode,
		CommodityName: r.CommodityName,
		CurrentStock:  r.Balance.CurrentStock,
		ReorderLevel:  r.Balance.ReorderLevel,
		MaximumStock:  r.Balance.MaximumStock,
		StockStatus:   status,
		LastUpdated:   r.Balance.LastUpdated.Format(DateLayout),
	}
}
