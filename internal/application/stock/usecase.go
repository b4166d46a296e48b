package stock

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/medstock-api/internal/application/alerting"
	"github.com/tu-usuario/medstock-api/internal/domain"
	"github.com/tu-usuario/medstock-api/internal/domain/entity"
	"github.com/tu-usuario/medstock-api/internal/domain/repository"
)

// UseCase registra movimientos y fija balances de forma transaccional:
// por cada par, movimiento + balance + alertas se aplican en una sola tx con
// bloqueo de fila sobre el balance.
type UseCase struct {
	txRunner      TxRunner
	facilityRepo  repository.FacilityRepository
	commodityRepo repository.CommodityRepository
	alerts        *alerting.Generator
	now           func() time.Time
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	txRunner TxRunner,
	facilityRepo repository.FacilityRepository,
	commodityRepo repository.CommodityRepository,
	alerts *alerting.Generator,
) *UseCase {
	return &UseCase{
		txRunner:      txRunner,
		facilityRepo:  facilityRepo,
		commodityRepo: commodityRepo,
		alerts:        alerts,
		now:           time.Now,
	}
}

// MovementInput entrada para registrar un movimiento. La cantidad viene
// positiva para ISSUE/RECEIPT (el signo se aplica según el tipo); un
// ADJUSTMENT puede venir con signo.
type MovementInput struct {
	FacilityID      string
	CommodityID     string
	MovementType    string
	Quantity        decimal.Decimal
	UnitCost        decimal.Decimal
	MovementDate    time.Time
	ReferenceNumber string
}

// BalanceInput entrada para fijar el snapshot y los umbrales de un par.
type BalanceInput struct {
	FacilityID   string
	CommodityID  string
	CurrentStock decimal.Decimal
	ReorderLevel decimal.Decimal
	MaximumStock decimal.Decimal
}

// ApplyMovement valida el movimiento, lo inserta en el ledger con signo,
// actualiza el balance con bloqueo de fila y reevalúa las alertas del par.
// Un ISSUE que dejaría el stock negativo falla con ErrInsufficientStock.
func (uc *UseCase) ApplyMovement(ctx context.Context, in MovementInput) error {
	if !entity.ValidMovementType(in.MovementType) {
		return domain.ErrInvalidInput
	}
	switch in.MovementType {
	case entity.MovementTypeISSUE, entity.MovementTypeRECEIPT:
		if !in.Quantity.GreaterThan(decimal.Zero) {
			return domain.ErrInvalidInput
		}
	case entity.MovementTypeADJUSTMENT:
		if in.Quantity.IsZero() {
			return domain.ErrInvalidInput
		}
	}
	if err := uc.pairExists(ctx, in.FacilityID, in.CommodityID); err != nil {
		return err
	}

	signed := in.Quantity
	if in.MovementType == entity.MovementTypeISSUE {
		signed = in.Quantity.Neg()
	}
	now := uc.now()

	return uc.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		balanceRepo repository.StockBalanceRepository,
		predRepo repository.PredictionRepository,
		alertRepo repository.AlertRepository,
	) error {
		balance, err := balanceRepo.GetForUpdate(ctx, in.FacilityID, in.CommodityID)
		if err != nil {
			return err
		}
		newStock := balance.CurrentStock.Add(signed)
		if newStock.LessThan(decimal.Zero) {
			return domain.ErrInsufficientStock
		}

		if err := movRepo.Create(ctx, &entity.StockMovement{
			FacilityID:      in.FacilityID,
			CommodityID:     in.CommodityID,
			MovementType:    in.MovementType,
			Quantity:        signed,
			UnitCost:        in.UnitCost,
			MovementDate:    in.MovementDate,
			ReferenceNumber: in.ReferenceNumber,
			CreatedAt:       now,
		}); err != nil {
			return err
		}

		balance.CurrentStock = newStock
		balance.LastUpdated = now
		if err := balanceRepo.Upsert(ctx, balance); err != nil {
			return err
		}

		latest, err := predRepo.LatestByPair(ctx, in.FacilityID, in.CommodityID)
		if err != nil {
			return err
		}
		return uc.alerts.EvaluatePair(ctx, alertRepo, balance, latest)
	})
}

// SetBalance fija el snapshot de un par (carga inicial o corrección
// administrativa) y sus umbrales, y reevalúa alertas. Valida las invariantes
// del balance: montos no negativos y reorder_level <= maximum_stock.
func (uc *UseCase) SetBalance(ctx context.Context, in BalanceInput) error {
	if in.CurrentStock.LessThan(decimal.Zero) ||
		in.ReorderLevel.LessThan(decimal.Zero) ||
		in.MaximumStock.LessThan(decimal.Zero) ||
		in.ReorderLevel.GreaterThan(in.MaximumStock) {
		return domain.ErrInvalidInput
	}
	if err := uc.pairExists(ctx, in.FacilityID, in.CommodityID); err != nil {
		return err
	}
	now := uc.now()

	return uc.txRunner.Run(ctx, func(
		_ repository.StockMovementRepository,
		balanceRepo repository.StockBalanceRepository,
		predRepo repository.PredictionRepository,
		alertRepo repository.AlertRepository,
	) error {
		balance, err := balanceRepo.GetForUpdate(ctx, in.FacilityID, in.CommodityID)
		if err != nil {
			return err
		}
		balance.CurrentStock = in.CurrentStock
		balance.ReorderLevel = in.ReorderLevel
		balance.MaximumStock = in.MaximumStock
		balance.LastUpdated = now
		if err := balanceRepo.Upsert(ctx, balance); err != nil {
			return err
		}

		latest, err := predRepo.LatestByPair(ctx, in.FacilityID, in.CommodityID)
		if err != nil {
			return err
		}
		return uc.alerts.EvaluatePair(ctx, alertRepo, balance, latest)
	})
}

func (uc *UseCase) pairExists(ctx context.Context, facilityID, commodityID string) error {
	f, err := uc.facilityRepo.GetByID(ctx, facilityID)
	if err != nil {
		return err
	}
	c, err := uc.commodityRepo.GetByID(ctx, commodityID)
	if err != nil {
		return err
	}
	if f == nil || c == nil {
		return domain.ErrNotFound
	}
	return nil
}
