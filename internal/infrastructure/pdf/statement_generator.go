// Package pdf genera el estado de cuenta de una lista de venta.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Tienda               │  N° Factura + Fecha          │
//	│  CLIENTE: Nombre + Teléfono                                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: # | Fecha | Canal | Monto                            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Total venta / Pagado / Saldo pendiente            │
//	│  QR con la referencia de la venta                           │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strings"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Backoffice-api/internal/application/sales"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
)

var _ sales.StatementGenerator = (*StatementGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorDue     = &props.Color{Red: 170, Green: 30, Blue: 30}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// StatementGenerator implementa sales.StatementGenerator usando Maroto v2.
type StatementGenerator struct {
	storeName string
	loc       *time.Location
}

// NewStatementGenerator construye el generador. loc es la zona en la que se imprime la fecha de emisión.
func NewStatementGenerator(storeName string, loc *time.Location) *StatementGenerator {
	if loc == nil {
		loc = time.UTC
	}
	return &StatementGenerator{storeName: storeName, loc: loc}
}

// GenerateStatement genera el PDF y devuelve sus bytes.
func (g *StatementGenerator) GenerateStatement(list *entity.SalesList) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Estado de cuenta "+list.InvoiceNo, true).
		WithAuthor(g.storeName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(list))
	m.AddRows(customerRow(list))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.4}))

	m.AddRows(paymentsHeaderRow())
	m.AddRows(paymentRows(list.Pay)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(list))
	m.AddRows(line.NewRow(4))
	m.AddRows(referenceRow(list))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar estado de cuenta: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func (g *StatementGenerator) headerRow(list *entity.SalesList) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(g.storeName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Estado de cuenta", props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New(list.InvoiceNo, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 1,
			}),
			text.New("Emitido: "+time.Now().In(g.loc).Format("02 Jan 2006"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

func customerRow(list *entity.SalesList) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s   |   Tel: %s",
				nonEmpty(list.CustomerName, "-"),
				nonEmpty(list.CustomerPhone, "-"),
			), props.Text{Size: 9, Top: 6}),
		),
	)
}

func paymentsHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("#", 1, align.Center),
		h("Fecha", 3, align.Left),
		h("Canal", 4, align.Left),
		h("Monto", 4, align.Right),
	)
}

// paymentRows: una fila por pago, en el orden del libro.
func paymentRows(pay []entity.LedgerEntry) []core.Row {
	if len(pay) == 0 {
		return []core.Row{row.New(7).Add(col.New(12).Add(
			text.New("Sin pagos registrados", props.Text{Size: 8, Align: align.Center, Color: colorGray, Top: 1}),
		))}
	}
	result := make([]core.Row, 0, len(pay))
	for _, e := range pay {
		result = append(result, row.New(6).Add(
			col.New(1).Add(text.New(fmt.Sprint(e.Seq), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(3).Add(text.New(e.Date.Format(entity.LedgerDateLayout), props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(4).Add(text.New(nonEmpty(e.System, "-"), props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(4).Add(text.New(formatMoney(e.Amount), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

func totalsRow(list *entity.SalesList) core.Row {
	label := func(s string, c *props.Color) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Color: c})
	}
	value := func(s string, c *props.Color) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 1, Color: c})
	}
	dueColor := colorPrimary
	if list.NextDue.IsPositive() {
		dueColor = colorDue
	}
	return row.New(20).Add(
		col.New(4),
		col.New(4).Add(
			label("Total venta:", nil),
			label("Pagado:", nil),
			label("Saldo pendiente:", dueColor),
		),
		col.New(4).Add(
			value(formatMoney(list.GrandTotal), nil),
			value(formatMoney(list.PayTotal), nil),
			value(formatMoney(list.NextDue), dueColor),
		),
	)
}

// referenceRow: QR con la referencia de la venta para buscarla desde el mostrador.
func referenceRow(list *entity.SalesList) core.Row {
	ref := list.InvoiceNo + "|" + list.ID
	return row.New(34).Add(
		col.New(3).Add(code.NewQr(ref, props.Rect{Percent: 95, Center: true})),
		col.New(9).Add(
			text.New("Referencia: "+list.InvoiceNo, props.Text{Style: fontstyle.Bold, Size: 9, Top: 6, Left: 3}),
			text.New("Conserve este documento como comprobante de sus pagos.", props.Text{
				Size: 8, Top: 14, Left: 3, Color: colorGray,
			}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if strings.TrimSpace(s) != "" {
		return s
	}
	return fallback
}

// formatMoney imprime el monto con dos decimales y separador de miles.
// Ej: 25000 → "25,000.00", -1234.5 → "-1,234.50"
func formatMoney(d decimal.Decimal) string {
	s := d.StringFixed(2)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")
	n := len(intPart)
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, c)
	}
	return sign + string(buf) + "." + frac
}
