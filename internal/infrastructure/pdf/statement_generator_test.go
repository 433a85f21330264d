package pdf

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
)

func TestFormatMoney(t *testing.T) {
	cases := map[string]string{
		"0":         "0.00",
		"999":       "999.00",
		"1000":      "1,000.00",
		"25000":     "25,000.00",
		"1234567.5": "1,234,567.50",
		"-1234.5":   "-1,234.50",
	}
	for in, want := range cases {
		assert.Equal(t, want, formatMoney(decimal.RequireFromString(in)), in)
	}
}

func TestGenerateStatement(t *testing.T) {
	g := NewStatementGenerator("Tienda Centro", time.UTC)
	list := &entity.SalesList{
		ID:           "sl-1",
		InvoiceNo:    "INV-0001",
		CustomerName: "Rahim",
		GrandTotal:   decimal.NewFromInt(1000),
		PayTotal:     decimal.NewFromInt(500),
		NextDue:      decimal.NewFromInt(500),
		Pay: []entity.LedgerEntry{
			{Seq: 1, Amount: decimal.NewFromInt(200), System: "cash", Date: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)},
			{Seq: 2, Amount: decimal.NewFromInt(300), System: "bkash", Date: time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)},
		},
	}

	out, err := g.GenerateStatement(list)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestGenerateStatement_SinPagos(t *testing.T) {
	g := NewStatementGenerator("Tienda Centro", nil)
	out, err := g.GenerateStatement(&entity.SalesList{ID: "sl-2", InvoiceNo: "INV-0002"})
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}
