package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de stock.
const (
	MovementTypeISSUE      = "ISSUE"      // salida (consumo)
	MovementTypeRECEIPT    = "RECEIPT"    // entrada (reposición)
	MovementTypeADJUSTMENT = "ADJUSTMENT" // ajuste (conteo físico, merma)
)

// ValidMovementType indica si el tipo es uno de los conocidos.
func ValidMovementType(t string) bool {
	switch t {
	case MovementTypeISSUE, MovementTypeRECEIPT, MovementTypeADJUSTMENT:
		return true
	}
	return false
}

// StockMovement es una entrada del ledger de stock. Append-only: nunca se
// muta después de creada. La cantidad se guarda con signo: negativa para
// ISSUE, positiva para RECEIPT, con signo libre para ADJUSTMENT.
type StockMovement struct {
	ID              string
	FacilityID      string
	CommodityID     string
	MovementType    string
	Quantity        decimal.Decimal
	UnitCost        decimal.Decimal
	MovementDate    time.Time
	ReferenceNumber string
	CreatedAt       time.Time
}
