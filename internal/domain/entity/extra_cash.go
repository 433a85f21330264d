package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de ExtraCash.
const (
	CashIn  = "in"
	CashOut = "out"
)

// ExtraCash movimiento de caja fuera de ventas (gastos, ingresos varios).
type ExtraCash struct {
	ID        string
	Title     string
	Amount    decimal.Decimal
	Type      string // in, out
	Note      string
	Date      time.Time
	CreatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time
}
