package stock_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/medstock-api/internal/application/alerting"
	"github.com/tu-usuario/medstock-api/internal/application/stock"
	"github.com/tu-usuario/medstock-api/internal/domain"
	"github.com/tu-usuario/medstock-api/internal/domain/entity"
	"github.com/tu-usuario/medstock-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeFacilityRepo struct{ byID map[string]*entity.Facility }

var _ repository.FacilityRepository = (*fakeFacilityRepo)(nil)

func (f *fakeFacilityRepo) Create(_ context.Context, fac *entity.Facility) error {
	f.byID[fac.ID] = fac
	return nil
}
func (f *fakeFacilityRepo) Update(_ context.Context, fac *entity.Facility) error { return nil }
func (f *fakeFacilityRepo) GetByID(_ context.Context, id string) (*entity.Facility, error) {
	return f.byID[id], nil
}
func (f *fakeFacilityRepo) GetByCode(_ context.Context, code string) (*entity.Facility, error) {
	for _, fac := range f.byID {
		if fac.Code == code {
			return fac, nil
		}
	}
	return nil, nil
}
func (f *fakeFacilityRepo) List(_ context.Context) ([]*entity.Facility, error) { return nil, nil }
func (f *fakeFacilityRepo) Count(_ context.Context) (int, error)               { return len(f.byID), nil }

type fakeCommodityRepo struct{ byID map[string]*entity.Commodity }

var _ repository.CommodityRepository = (*fakeCommodityRepo)(nil)

func (f *fakeCommodityRepo) Create(_ context.Context, c *entity.Commodity) error {
	f.byID[c.ID] = c
	return nil
}
func (f *fakeCommodityRepo) Update(_ context.Context, c *entity.Commodity) error { return nil }
func (f *fakeCommodityRepo) GetByID(_ context.Context, id string) (*entity.Commodity, error) {
	return f.byID[id], nil
}
func (f *fakeCommodityRepo) GetByCode(_ context.Context, code string) (*entity.Commodity, error) {
	for _, c := range f.byID {
		if c.Code == code {
			return c, nil
		}
	}
	return nil, nil
}
func (f *fakeCommodityRepo) List(_ context.Context) ([]*entity.Commodity, error) { return nil, nil }
func (f *fakeCommodityRepo) Count(_ context.Context) (int, error)                { return len(f.byID), nil }

type fakeMovementRepo struct{ movements []*entity.StockMovement }

var _ repository.StockMovementRepository = (*fakeMovementRepo)(nil)

func (f *fakeMovementRepo) Create(_ context.Context, m *entity.StockMovement) error {
	clone := *m
	f.movements = append(f.movements, &clone)
	return nil
}
func (f *fakeMovementRepo) ListByPair(_ context.Context, facilityID, commodityID string, from time.Time) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for _, m := range f.movements {
		if m.FacilityID == facilityID && m.CommodityID == commodityID && !m.MovementDate.Before(from) {
			out = append(out, m)
		}
	}
	return out, nil
}

type fakeBalanceRepo struct{ balances map[string]*entity.StockBalance }

var _ repository.StockBalanceRepository = (*fakeBalanceRepo)(nil)

func pairKey(facilityID, commodityID string) string { return facilityID + "/" + commodityID }

func (f *fakeBalanceRepo) Get(_ context.Context, facilityID, commodityID string) (*entity.StockBalance, error) {
	b, ok := f.balances[pairKey(facilityID, commodityID)]
	if !ok {
		return nil, nil
	}
	clone := *b
	return &clone, nil
}
func (f *fakeBalanceRepo) GetForUpdate(_ context.Context, facilityID, commodityID string) (*entity.StockBalance, error) {
	if b, ok := f.balances[pairKey(facilityID, commodityID)]; ok {
		clone := *b
		return &clone, nil
	}
	return &entity.StockBalance{FacilityID: facilityID, CommodityID: commodityID}, nil
}
func (f *fakeBalanceRepo) Upsert(_ context.Context, b *entity.StockBalance) error {
	clone := *b
	f.balances[pairKey(b.FacilityID, b.CommodityID)] = &clone
	return nil
}
func (f *fakeBalanceRepo) List(_ context.Context) ([]repository.BalanceRow, error) {
	var out []repository.BalanceRow
	for _, b := range f.balances {
		out = append(out, repository.BalanceRow{Balance: *b})
	}
	return out, nil
}

type fakePredictionRepo struct{ latest map[string]*entity.Prediction }

var _ repository.PredictionRepository = (*fakePredictionRepo)(nil)

func (f *fakePredictionRepo) Create(_ context.Context, p *entity.Prediction) error {
	f.latest[pairKey(p.FacilityID, p.CommodityID)] = p
	return nil
}
func (f *fakePredictionRepo) List(_ context.Context, _ repository.PredictionFilter) ([]repository.PredictionRow, error) {
	return nil, nil
}
func (f *fakePredictionRepo) LatestByPair(_ context.Context, facilityID, commodityID string) (*entity.Prediction, error) {
	return f.latest[pairKey(facilityID, commodityID)], nil
}

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
			return nil
		}
	}
	return nil
}
func (f *fakeAlertRepo) GetByID(_ context.Context, id string) (*entity.Alert, error) {
	for _, a := range f.alerts {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, nil
}
func (f *fakeAlertRepo) GetActive(_ context.Context, facilityID, commodityID, alertType string) (*entity.Alert, error) {
	for _, a := range f.alerts {
		if a.FacilityID == facilityID && a.CommodityID == commodityID &&
			a.AlertType == alertType && !a.IsResolved {
			return a, nil
		}
	}
	return nil, nil
}
func (f *fakeAlertRepo) Resolve(_ context.Context, id string, at time.Time) error {
	for _, a := range f.alerts {
		if a.ID == id {
			a.Resolve(at)
		}
	}
	return nil
}
func (f *fakeAlertRepo) List(_ context.Context) ([]repository.AlertRow, error) { return nil, nil }
func (f *fakeAlertRepo) CountActive(_ context.Context) (int, error) {
	n := 0
	for _, a := range f.alerts {
		if !a.IsResolved {
			n++
		}
	}
	return n, nil
}

// fakeTxRunner pasa los fakes al callback sin transacción real.
type fakeTxRunner struct {
	movRepo     *fakeMovementRepo
	balanceRepo *fakeBalanceRepo
	predRepo    *fakePredictionRepo
	alertRepo   *fakeAlertRepo
}

var _ stock.TxRunner = (*fakeTxRunner)(nil)

func (f *fakeTxRunner) Run(_ context.Context, fn func(
	movRepo repository.StockMovementRepository,
	balanceRepo repository.StockBalanceRepository,
	predRepo repository.PredictionRepository,
	alertRepo repository.AlertRepository,
) error) error {
	return fn(f.movRepo, f.balanceRepo, f.predRepo, f.alertRepo)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	uc       *stock.UseCase
	runner   *fakeTxRunner
	facility *entity.Facility
	comm     *entity.Commodity
}

func newFixture() *fixture {
	facility := &entity.Facility{ID: "fac-1", Code: "HC001"}
	comm := &entity.Commodity{ID: "com-1", Code: "ARV001"}
	runner := &fakeTxRunner{
		movRepo:     &fakeMovementRepo{},
		balanceRepo: &fakeBalanceRepo{balances: map[string]*entity.StockBalance{}},
		predRepo:    &fakePredictionRepo{latest: map[string]*entity.Prediction{}},
		alertRepo:   &fakeAlertRepo{},
	}
	uc := stock.NewUseCase(
		runner,
		&fakeFacilityRepo{byID: map[string]*entity.Facility{facility.ID: facility}},
		&fakeCommodityRepo{byID: map[string]*entity.Commodity{comm.ID: comm}},
		alerting.NewGenerator(),
	)
	return &fixture{uc: uc, runner: runner, facility: facility, comm: comm}
}

func (fx *fixture) balance(t *testing.T) *entity.StockBalance {
	t.Helper()
	b, err := fx.runner.balanceRepo.Get(context.Background(), fx.facility.ID, fx.comm.ID)
	require.NoError(t, err)
	require.NotNil(t, b)
	return b
}

func movementInput(movType string, qty int64) stock.MovementInput {
	return stock.MovementInput{
		FacilityID:   "fac-1",
		CommodityID:  "com-1",
		MovementType: movType,
		Quantity:     decimal.NewFromInt(qty),
		MovementDate: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
	}
}

func TestApplyMovement_ReceiptSumaAlBalance(t *testing.T) {
	fx := newFixture()

	err := fx.uc.ApplyMovement(context.Background(), movementInput(entity.MovementTypeRECEIPT, 500))
	require.NoError(t, err)

	assert.True(t, fx.balance(t).CurrentStock.Equal(decimal.NewFromInt(500)))
	require.Len(t, fx.runner.movRepo.movements, 1)
	assert.True(t, fx.runner.movRepo.movements[0].Quantity.Equal(decimal.NewFromInt(500)),
		"el RECEIPT se guarda con cantidad positiva")
}

func TestApplyMovement_IssueRestaYSeGuardaNegativo(t *testing.T) {
	fx := newFixture()
	require.NoError(t, fx.uc.ApplyMovement(context.Background(), movementInput(entity.MovementTypeRECEIPT, 500)))

	err := fx.uc.ApplyMovement(context.Background(), movementInput(entity.MovementTypeISSUE, 120))
	require.NoError(t, err)

	assert.True(t, fx.balance(t).CurrentStock.Equal(decimal.NewFromInt(380)))
	require.Len(t, fx.runner.movRepo.movements, 2)
	assert.True(t, fx.runner.movRepo.movements[1].Quantity.Equal(decimal.NewFromInt(-120)),
		"el ISSUE se guarda con signo negativo")
}

func TestApplyMovement_IssueSinStockFalla(t *testing.T) {
	fx := newFixture()
	require.NoError(t, fx.uc.ApplyMovement(context.Background(), movementInput(entity.MovementTypeRECEIPT, 100)))

	err := fx.uc.ApplyMovement(context.Background(), movementInput(entity.MovementTypeISSUE, 150))

	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.True(t, fx.balance(t).CurrentStock.Equal(decimal.NewFromInt(100)),
		"un movimiento rechazado no toca el balance")
	assert.Len(t, fx.runner.movRepo.movements, 1, "el ledger tampoco se toca")
}

func TestApplyMovement_TipoInvalido(t *testing.T) {
	fx := newFixture()

	err := fx.uc.ApplyMovement(context.Background(), movementInput("TRANSFER", 10))

	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestApplyMovement_CantidadCeroInvalida(t *testing.T) {
	fx := newFixture()

	require.ErrorIs(t,
		fx.uc.ApplyMovement(context.Background(), movementInput(entity.MovementTypeISSUE, 0)),
		domain.ErrInvalidInput)
	require.ErrorIs(t,
		fx.uc.ApplyMovement(context.Background(), movementInput(entity.MovementTypeADJUSTMENT, 0)),
		domain.ErrInvalidInput)
}

func TestApplyMovement_ParInexistente(t *testing.T) {
	fx := newFixture()
	in := movementInput(entity.MovementTypeRECEIPT, 10)
	in.CommodityID = "no-existe"

	require.ErrorIs(t, fx.uc.ApplyMovement(context.Background(), in), domain.ErrNotFound)
}

func TestApplyMovement_IssueADeroDisparaStockOut(t *testing.T) {
	fx := newFixture()
	require.NoError(t, fx.uc.SetBalance(context.Background(), stock.BalanceInput{
		FacilityID:   "fac-1",
		CommodityID:  "com-1",
		CurrentStock: decimal.NewFromInt(100),
		ReorderLevel: decimal.NewFromInt(40),
		MaximumStock: decimal.NewFromInt(500),
	}))

	require.NoError(t, fx.uc.ApplyMovement(context.Background(), movementInput(entity.MovementTypeISSUE, 100)))

	active, err := fx.runner.alertRepo.GetActive(context.Background(), "fac-1", "com-1", entity.AlertTypeStockOut)
	require.NoError(t, err)
	require.NotNil(t, active, "stock en cero genera STOCK_OUT en la misma operación")
	assert.Equal(t, entity.AlertLevelCritical, active.AlertLevel)
}

func TestSetBalance_ValidaInvariantes(t *testing.T) {
	fx := newFixture()

	err := fx.uc.SetBalance(context.Background(), stock.BalanceInput{
		FacilityID:   "fac-1",
		CommodityID:  "com-1",
		CurrentStock: decimal.NewFromInt(100),
		ReorderLevel: decimal.NewFromInt(600),
		MaximumStock: decimal.NewFromInt(500),
	})

	require.ErrorIs(t, err, domain.ErrInvalidInput, "reorder_level > maximum_stock debe rechazarse")
}

func TestSetBalance_FijaSnapshotYUmbrales(t *testing.T) {
	fx := newFixture()

	err := fx.uc.SetBalance(context.Background(), stock.BalanceInput{
		FacilityID:   "fac-1",
		CommodityID:  "com-1",
		CurrentStock: decimal.NewFromInt(1500),
		ReorderLevel: decimal.NewFromInt(400),
		MaximumStock: decimal.NewFromInt(2000),
	})
	require.NoError(t, err)

	b := fx.balance(t)
	assert.True(t, b.CurrentStock.Equal(decimal.NewFromInt(1500)))
	assert.True(t, b.ReorderLevel.Equal(decimal.NewFromInt(400)))
	assert.False(t, b.IsLow(), "1500 sobre un reorden de 400 no es stock bajo")
}
