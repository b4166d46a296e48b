package dto_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/medstock-api/internal/application/dto"
	"github.com/tu-usuario/medstock-api/internal/domain/entity"
	"github.com/tu-usuario/medstock-api/internal/domain/repository"
)

func balanceRow(stock, reorder int64) repository.BalanceRow {
	return repository.BalanceRow{
		Balance: entity.StockBalance{
			CurrentStock: decimal.NewFromInt(stock),
			ReorderLevel: decimal.NewFromInt(reorder),
		},
		FacilityCode:  "HC005",
		CommodityCode: "ARV001",
	}
}

func TestFromBalanceRow_Estado(t *testing.T) {
	assert.Equal(t, dto.StockStatusOK, dto.FromBalanceRow(balanceRow(1500, 400)).StockStatus)
	assert.Equal(t, dto.StockStatusLow, dto.FromBalanceRow(balanceRow(300, 400)).StockStatus)
	assert.Equal(t, dto.StockStatusLow, dto.FromBalanceRow(balanceRow(400, 400)).StockStatus,
		"stock igual al reorden cuenta como LOW")
	assert.Equal(t, dto.StockStatusLow, dto.FromBalanceRow(balanceRow(0, 400)).StockStatus)
}
