package forecast_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/medstock-api/internal/domain"
	"github.com/tu-usuario/medstock-api/internal/domain/entity"
	"github.com/tu-usuario/medstock-api/internal/domain/forecast"
)

func TestDaysToStockOut_Formula(t *testing.T) {
	est := forecast.ConsumptionEstimate{
		DailyRate:  decimal.NewFromInt(5),
		Samples:    3,
		WindowDays: 90,
	}

	days, err := forecast.DaysToStockOut(decimal.NewFromInt(100), est)

	require.NoError(t, err)
	assert.InDelta(t, 20.0, days, 1e-9, "100 unidades / 5 por día = 20 días")
}

func TestDaysToStockOut_SinDatos(t *testing.T) {
	days, err := forecast.DaysToStockOut(decimal.NewFromInt(100), forecast.ConsumptionEstimate{})

	require.ErrorIs(t, err, domain.ErrInsufficientData)
	assert.Zero(t, days)
}

func TestDaysToStockOut_StockNegativoSeTrataComoCero(t *testing.T) {
	est := forecast.ConsumptionEstimate{DailyRate: decimal.NewFromInt(2), Samples: 1}

	days, err := forecast.DaysToStockOut(decimal.NewFromInt(-10), est)

	require.NoError(t, err)
	assert.Zero(t, days)
}

func TestClassifyRisk_TiersDeterministas(t *testing.T) {
	th := forecast.DefaultThresholds()
	leadTime := 30

	cases := []struct {
		name string
		days float64
		want string
	}{
		{"dentro del lead time", 15, entity.RiskCritical},
		{"justo en el lead time", 30, entity.RiskCritical},
		{"hasta 2x", 45, entity.RiskHigh},
		{"justo en 2x", 60, entity.RiskHigh},
		{"hasta 4x", 100, entity.RiskMedium},
		{"justo en 4x", 120, entity.RiskMedium},
		{"más allá de 4x", 121, entity.RiskLow},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := forecast.ClassifyRisk(tc.days, leadTime, th)
			assert.Equal(t, tc.want, got)
			// Misma entrada, mismo tier.
			assert.Equal(t, got, forecast.ClassifyRisk(tc.days, leadTime, th))
		})
	}
}

func TestClassifyRisk_UmbralesConfigurables(t *testing.T) {
	// Con umbrales más agresivos, 45 días deja de ser HIGH.
	th := forecast.Thresholds{CriticalMult: 2, HighMult: 3, MediumMult: 5}

	assert.Equal(t, entity.RiskCritical, forecast.ClassifyRisk(45, 30, th))
}

func TestConfidence_MonotonaYAcotada(t *testing.T) {
	prev := decimal.Zero
	for _, n := range []int{0, 1, 2, 5, 10, 50, 500} {
		c := forecast.Confidence(n)
		assert.True(t, c.GreaterThanOrEqual(prev),
			"confianza debe ser monótona: n=%d dio %s tras %s", n, c, prev)
		assert.True(t, c.GreaterThanOrEqual(decimal.Zero))
		assert.True(t, c.LessThan(decimal.NewFromInt(1)), "confianza acotada en [0,1)")
		prev = c
	}

	// n/(n+10): con 10 muestras la confianza es exactamente 0.5.
	assert.True(t, forecast.Confidence(10).Equal(decimal.NewFromFloat(0.5)))
}
