package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/medstock-api/internal/domain/entity"
	"github.com/tu-usuario/medstock-api/internal/domain/repository"
)

var _ repository.StockBalanceRepository = (*StockBalanceRepo)(nil)

// StockBalanceRepo implementación de StockBalanceRepository sobre PostgreSQL.
type StockBalanceRepo struct {
	q Querier
}

// NewStockBalanceRepository construye el adaptador. Acepta pool o tx (Querier).
func NewStockBalanceRepository(q Querier) *StockBalanceRepo {
	return &StockBalanceRepo{q: q}
}

const balanceColumns = `id, facility_id, commodity_id, current_stock, reorder_level, maximum_stock, last_updated`

func (r *StockBalanceRepo) Get(ctx context.Context, facilityID, commodityID string) (*entity.StockBalance, error) {
	query := `
		SELECT ` + balanceColumns + `
		FROM stock_balances
		WHERE facility_id = $1 AND commodity_id = $2`
	var b entity.StockBalance
	err := r.q.QueryRow(ctx, query, facilityID, commodityID).Scan(
		&b.ID, &b.FacilityID, &b.CommodityID, &b.CurrentStock, &b.ReorderLevel, &b.MaximumStock, &b.LastUpdated,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock balance: %w", err)
	}
	return &b, nil
}

// GetForUpdate bloquea la fila del balance durante la transacción. Si el par
// todavía no tiene balance devuelve uno en cero listo para Upsert.
func (r *StockBalanceRepo) GetForUpdate(ctx context.Context, facilityID, commodityID string) (*entity.StockBalance, error) {
	query := `
		SELECT ` + balanceColumns + `
		FROM stock_balances
		WHERE facility_id = $1 AND commodity_id = $2
		FOR UPDATE`
	var b entity.StockBalance
	err := r.q.QueryRow(ctx, query, facilityID, commodityID).Scan(
		&b.ID, &b.FacilityID, &b.CommodityID, &b.CurrentStock, &b.ReorderLevel, &b.MaximumStock, &b.LastUpdated,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.StockBalance{FacilityID: facilityID, CommodityID: commodityID}, nil
		}
		return nil, fmt.Errorf("get stock balance for update: %w", err)
	}
	return &b, nil
}

func (r *StockBalanceRepo) Upsert(ctx context.Context, b *entity.StockBalance) error {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	query := `
		INSERT INTO stock_balances (id, facility_id, commodity_id, current_stock, reorder_level, maximum_stock, last_updated)
		VALUES ($1, $2, $3, $4, $5, $6, now())
		ON CONFLICT (facility_id, commodity_id)
		DO UPDATE SET current_stock = EXCLUDED.current_stock,
			reorder_level = EXCLUDED.reorder_level,
			maximum_stock = EXCLUDED.maximum_stock,
			last_updated = now()`
	_, err := r.q.Exec(ctx, query, b.ID, b.FacilityID, b.CommodityID, b.CurrentStock, b.ReorderLevel, b.MaximumStock)
	if err != nil {
		return fmt.Errorf("upsert stock balance: %w", err)
	}
	return nil
}

func (r *StockBalanceRepo) List(ctx context.Context) ([]repository.BalanceRow, error) {
	query := `
		SELECT b.id, b.facility_id, b.commodity_id, b.current_stock, b.reorder_level, b.maximum_stock, b.last_updated,
			f.code, f.name, c.code, c.name
		FROM stock_balances b
		JOIN facilities f ON f.id = b.facility_id
		JOIN commodities c ON c.id = b.commodity_id
		ORDER BY f.code, c.code`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list stock balances: %w", err)
	}
	defer rows.Close()
	var list []repository.BalanceRow
	for rows.Next() {
		var row repository.BalanceRow
		if err := rows.Scan(
			&row.Balance.ID, &row.Balance.FacilityID, &row.Balance.CommodityID,
			&row.Balance.CurrentStock, &row.Balance.ReorderLevel, &row.Balance.MaximumStock, &row.Balance.LastUpdated,
			&row.FacilityCode, &row.FacilityName, &row.CommodityCode, &row.CommodityName,
		); err != nil {
			return nil, fmt.Errorf("scan stock balance: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}
