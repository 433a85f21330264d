package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de UserDeposit. La única transición es pending -> approved.
const (
	DepositPending  = "pending"
	DepositApproved = "approved"
)

// UserDeposit depósito de efectivo entregado por un usuario y pendiente de aprobación.
type UserDeposit struct {
	ID         string
	UserID     string // dueño del depósito (quien lo registró)
	Amount     decimal.Decimal
	System     string // canal: cash, bank, bkash...
	Note       string
	Status     string
	ApprovedBy string
	ApprovedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
