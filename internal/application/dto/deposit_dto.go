package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Backoffice-api/internal/domain/pagination"
)

// CreateDepositRequest entrada para registrar un depósito (queda pendiente).
type CreateDepositRequest struct {
	Amount decimal.Decimal `json:"amount"`
	System string          `json:"system" validate:"required,max=50"`
	Note   string          `json:"note" validate:"omitempty,max=500"`
}

// DepositResponse salida de un depósito.
type DepositResponse struct {
	ID         string          `json:"id"`
	UserID     string          `json:"user_id"`
	Amount     decimal.Decimal `json:"amount"`
	System     string          `json:"system"`
	Note       string          `json:"note"`
	Status     string          `json:"status"`
	ApprovedBy string          `json:"approved_by,omitempty"`
	ApprovedAt *time.Time      `json:"approved_at,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// DepositListResponse lista paginada de depósitos.
type DepositListResponse struct {
	Items  []DepositResponse `json:"data"`
	Meta   pagination.Meta   `json:"meta"`
	Search string            `json:"search"`
}
