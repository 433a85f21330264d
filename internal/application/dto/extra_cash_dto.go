package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Backoffice-api/internal/domain/pagination"
)

// CreateExtraCashRequest entrada para un movimiento de caja. Date en formato YYYY-MM-DD; vacío = hoy.
type CreateExtraCashRequest struct {
	Title  string          `json:"title" validate:"required,min=1,max=200"`
	Amount decimal.Decimal `json:"amount"`
	Type   string          `json:"type" validate:"required,oneof=in out"`
	Note   string          `json:"note" validate:"omitempty,max=1000"`
	Date   string          `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

// UpdateExtraCashRequest entrada para actualizar un movimiento; sólo se aplican los campos presentes.
type UpdateExtraCashRequest struct {
	Title  *string          `json:"title" validate:"omitempty,min=1,max=200"`
	Amount *decimal.Decimal `json:"amount"`
	Type   *string          `json:"type" validate:"omitempty,oneof=in out"`
	Note   *string          `json:"note"`
	Date   *string          `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

// ExtraCashResponse salida de un movimiento.
type ExtraCashResponse struct {
	ID        string          `json:"id"`
	Title     string          `json:"title"`
	Amount    decimal.Decimal `json:"amount"`
	Type      string          `json:"type"`
	Note      string          `json:"note"`
	Date      string          `json:"date"`
	CreatedBy string          `json:"created_by"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// CashSummary totales de los movimientos visibles con el filtro activo.
type CashSummary struct {
	In  decimal.Decimal `json:"in"`
	Out decimal.Decimal `json:"out"`
	Net decimal.Decimal `json:"net"`
}

// ExtraCashListResponse lista paginada de movimientos con su resumen.
type ExtraCashListResponse struct {
	Items   []ExtraCashResponse `json:"data"`
	Meta    pagination.Meta     `json:"meta"`
	Search  string              `json:"search"`
	Summary CashSummary         `json:"summary"`
}
