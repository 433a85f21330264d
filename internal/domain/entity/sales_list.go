package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesList es una venta registrada con cobro parcial.
// NextDue siempre se recalcula desde GrandTotal y PayTotal; nunca se edita directamente.
type SalesList struct {
	ID            string
	InvoiceNo     string
	CustomerName  string
	CustomerPhone string
	GrandTotal    decimal.Decimal
	PayTotal      decimal.Decimal
	NextDue       decimal.Decimal
	Note          string
	Pay           []LedgerEntry // ordenado por Seq
	CreatedBy     string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// LedgerEntry pago registrado sobre una lista de venta. Se agrega y nunca se modifica.
type LedgerEntry struct {
	SalesListID string
	Seq         int
	Amount      decimal.Decimal
	System      string    // canal de pago: cash, bkash, card...
	Date        time.Time // día calendario en la zona del libro
	CreatedBy   string
	CreatedAt   time.Time
}

// LedgerDateLayout formato con el que se expone la fecha de cada pago.
const LedgerDateLayout = "2006-01-02"
