package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockBalance es el snapshot de stock de un par (facility, commodity).
// Única por par. Los movimientos son la fuente de verdad: el balance es una
// proyección cacheada que se actualiza en la misma transacción que inserta
// cada movimiento.
type StockBalance struct {
	ID           string
	FacilityID   string
	CommodityID  string
	CurrentStock decimal.Decimal
	ReorderLevel decimal.Decimal
	MaximumStock decimal.Decimal
	LastUpdated  time.Time
}

// IsLow indica si el stock actual está en o por debajo del nivel de reorden.
func (b *StockBalance) IsLow() bool {
	return b.CurrentStock.LessThanOrEqual(b.ReorderLevel)
}

// IsStockedOut indica si el stock actual llegó a cero.
func (b *StockBalance) IsStockedOut() bool {
	return b.CurrentStock.LessThanOrEqual(decimal.Zero)
}
