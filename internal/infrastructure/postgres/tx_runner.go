package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tu-usuario/medstock-api/internal/application/forecast"
	"github.com/tu-usuario/medstock-api/internal/application/stock"
	"github.com/tu-usuario/medstock-api/internal/domain/repository"
)

// Ensure TxRunner implements stock.TxRunner and forecast.TxRunner.
var _ stock.TxRunner = (*TxRunner)(nil)
var _ forecast.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	movRepo repository.StockMovementRepository,
	balanceRepo repository.StockBalanceRepository,
	predRepo repository.PredictionRepository,
	alertRepo repository.AlertRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	movRepo := NewStockMovementRepository(tx)
	balanceRepo := NewStockBalanceRepository(tx)
	predRepo := NewPredictionRepository(tx)
	alertRepo := NewAlertRepository(tx)

	if err := fn(movRepo, balanceRepo, predRepo, alertRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunForecast inicia una transacción con los repos de predicción y alertas
// (para persistir una predicción junto a las alertas que dispara).
func (r *TxRunner) RunForecast(ctx context.Context, fn func(
	predRepo repository.PredictionRepository,
	alertRepo repository.AlertRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	predRepo := NewPredictionRepository(tx)
	alertRepo := NewAlertRepository(tx)

	if err := fn(predRepo, alertRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
