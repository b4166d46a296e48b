package export_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/medstock-api/internal/application/export"
	"github.com/tu-usuario/medstock-api/internal/domain"
	"github.com/tu-usuario/medstock-api/internal/domain/entity"
	"github.com/tu-usuario/medstock-api/internal/domain/repository"
)

type stubBalanceRepo struct{ rows []repository.BalanceRow }

var _ repository.StockBalanceRepository = (*stubBalanceRepo)(nil)

func (s *stubBalanceRepo) Get(context.Context, string, string) (*entity.StockBalance, error) {
	return nil, nil
}
func (s *stubBalanceRepo) GetForUpdate(context.Context, string, string) (*entity.StockBalance, error) {
	return nil, nil
}
func (s *stubBalanceRepo) Upsert(context.Context, *entity.StockBalance) error { return nil }
func (s *stubBalanceRepo) List(context.Context) ([]repository.BalanceRow, error) {
	return s.rows, nil
}

func TestExport_StockBalancesDerivaEstado(t *testing.T) {
	repo := &stubBalanceRepo{rows: []repository.BalanceRow{
		{
			Balance: entity.StockBalance{
				CurrentStock: decimal.NewFromInt(1500),
				ReorderLevel: decimal.NewFromInt(400),
				MaximumStock: decimal.NewFromInt(2000),
				LastUpdated:  time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC),
			},
			FacilityCode:  "HC005",
			FacilityName:  "Arua Health Center",
			CommodityCode: "ARV001",
			CommodityName: "TLD",
		},
		{
			Balance: entity.StockBalance{
				CurrentStock: decimal.NewFromInt(300),
				ReorderLevel: decimal.NewFromInt(400),
				MaximumStock: decimal.NewFromInt(2000),
				LastUpdated:  time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC),
			},
			FacilityCode:  "HC005",
			CommodityCode: "VAC001",
		},
	}}
	exporter := export.NewExporter(nil, nil, repo, nil, nil)

	data, err := exporter.Export(context.Background(), "stock_balances")
	require.NoError(t, err)

	records := parseCSV(t, data)
	require.Len(t, records, 3)
	assert.Equal(t, "stock_status", records[0][7])
	assert.Equal(t, "OK", records[1][7], "1500 sobre reorden 400 exporta OK")
	assert.Equal(t, "LOW", records[2][7], "300 bajo reorden 400 exporta LOW")
}

func TestExport_TipoDesconocido(t *testing.T) {
	exporter := export.NewExporter(nil, nil, nil, nil, nil)

	_, err := exporter.Export(context.Background(), "invoices")
	require.ErrorIs(t, err, domain.ErrNotFound)
}
