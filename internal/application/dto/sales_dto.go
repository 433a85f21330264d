package dto

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Backoffice-api/internal/domain/pagination"
)

// CreateSalesListRequest entrada para registrar una venta.
type CreateSalesListRequest struct {
	InvoiceNo     string          `json:"invoice_no" validate:"required,max=60"`
	CustomerName  string          `json:"customer_name" validate:"omitempty,max=200"`
	CustomerPhone string          `json:"customer_phone" validate:"omitempty,max=30"`
	GrandTotal    decimal.Decimal `json:"grandtotal"`
	Note          string          `json:"note"`
}

// PaymentLine línea de cobro. Amount se recibe crudo (número o texto) y se interpreta en el dominio.
type PaymentLine struct {
	Amount json.RawMessage `json:"amount" swaggertype:"string"`
	System string          `json:"system"`
}

// AmountText devuelve el monto como texto; nil si no vino o es null.
func (p PaymentLine) AmountText() *string {
	raw := bytes.TrimSpace(p.Amount)
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil
		}
		return &s
	}
	s := string(raw)
	return &s
}

// CollectDueRequest cobro parcial sobre una lista de venta.
type CollectDueRequest struct {
	Payments    []PaymentLine    `json:"payments"`
	TotalAmount *decimal.Decimal `json:"total_amount"`
	ForceSettle bool             `json:"force_settle"`
}

// LedgerEntryResponse pago registrado.
type LedgerEntryResponse struct {
	Amount decimal.Decimal `json:"amount"`
	System string          `json:"system"`
	Date   string          `json:"date"`
}

// SalesListResponse salida de una lista de venta con su libro de pagos.
type SalesListResponse struct {
	ID            string                `json:"id"`
	InvoiceNo     string                `json:"invoice_no"`
	CustomerName  string                `json:"customer_name"`
	CustomerPhone string                `json:"customer_phone"`
	Note          string                `json:"note"`
	Pay           []LedgerEntryResponse `json:"pay"`
	PayTotal      decimal.Decimal       `json:"paytotal"`
	GrandTotal    decimal.Decimal       `json:"grandtotal"`
	NextDue       decimal.Decimal       `json:"nextdue"`
	CreatedBy     string                `json:"created_by"`
	CreatedAt     time.Time             `json:"created_at"`
	UpdatedAt     time.Time             `json:"updated_at"`
}

// SalesListListResponse lista paginada de ventas.
type SalesListListResponse struct {
	Items  []SalesListResponse `json:"data"`
	Meta   pagination.Meta     `json:"meta"`
	Search string              `json:"search"`
}
