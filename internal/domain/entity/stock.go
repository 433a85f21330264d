package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stock cantidad disponible de una variante.
type Stock struct {
	VariantID string
	Quantity  decimal.Decimal
	UpdatedAt time.Time
}
