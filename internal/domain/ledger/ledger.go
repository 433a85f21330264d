// Package ledger aplica cobros parciales sobre una lista de venta.
//
// Reglas:
//   - Cada pago se agrega al final del libro con la fecha del día; los anteriores no se tocan.
//   - PayTotal acumula los pagos; NextDue = GrandTotal - PayTotal.
//   - Con ForceSettle se da por saldada la venta: GrandTotal = PayTotal y NextDue = 0.
package ledger

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
)

// Scale decimales con los que se guardan montos y acumulados (NUMERIC(14,2)).
const Scale = 2

// Payment línea de cobro tal como llega en la petición.
// Amount es el texto crudo; nil significa que el campo no vino.
type Payment struct {
	Amount *string
	System string
}

// Request cobro a aplicar sobre una lista.
type Request struct {
	Payments    []Payment
	TotalAmount *decimal.Decimal // total declarado por el formulario; obligatorio
	ForceSettle bool
}

// Result estado de la lista después del cobro y las líneas nuevas, listas para persistir.
type Result struct {
	List  entity.SalesList
	Added []entity.LedgerEntry
	Paid  decimal.Decimal
}

// ApplyPayments valida el cobro y devuelve la lista actualizada. No modifica list.
// today debe venir ya en la zona horaria del libro; sólo se usa su día calendario.
func ApplyPayments(list entity.SalesList, req Request, today time.Time, actorID string) (*Result, error) {
	if req.TotalAmount == nil {
		return nil, domain.Invalid("total_amount", "es obligatorio")
	}

	amounts := make([]decimal.Decimal, 0, len(req.Payments))
	totalPay := decimal.Zero
	for _, p := range req.Payments {
		amount, ok := ParseAmount(p.Amount)
		if !ok {
			return nil, &domain.InvalidRequestError{Field: "amount", Label: p.System, Reason: "el monto es obligatorio"}
		}
		if amount.IsNegative() {
			return nil, &domain.InvalidRequestError{Field: "amount", Label: p.System, Reason: "el monto no puede ser negativo"}
		}
		// se redondea antes de sumar: el libro guardado debe sumar exactamente paytotal
		amount = amount.Round(Scale)
		amounts = append(amounts, amount)
		totalPay = totalPay.Add(amount)
	}

	allowed := Allowed(list, *req.TotalAmount)
	if totalPay.GreaterThan(allowed) {
		return nil, &domain.AmountExceededError{Requested: totalPay, Allowed: allowed}
	}

	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	nextSeq := len(list.Pay) + 1
	if n := len(list.Pay); n > 0 && list.Pay[n-1].Seq >= nextSeq {
		nextSeq = list.Pay[n-1].Seq + 1
	}

	added := make([]entity.LedgerEntry, 0, len(amounts))
	for i, amount := range amounts {
		added = append(added, entity.LedgerEntry{
			SalesListID: list.ID,
			Seq:         nextSeq + i,
			Amount:      amount,
			System:      req.Payments[i].System,
			Date:        day,
			CreatedBy:   actorID,
			CreatedAt:   today,
		})
	}

	out := list
	out.Pay = make([]entity.LedgerEntry, 0, len(list.Pay)+len(added))
	out.Pay = append(out.Pay, list.Pay...)
	out.Pay = append(out.Pay, added...)
	out.PayTotal = list.PayTotal.Add(totalPay)
	if req.ForceSettle {
		out.GrandTotal = out.PayTotal
		out.NextDue = decimal.Zero
	} else {
		out.NextDue = out.GrandTotal.Sub(out.PayTotal)
	}
	out.UpdatedAt = today

	return &Result{List: out, Added: added, Paid: totalPay}, nil
}

// Allowed tope que todavía se puede cobrar: min(total declarado, GrandTotal) - PayTotal, nunca negativo.
func Allowed(list entity.SalesList, totalAmount decimal.Decimal) decimal.Decimal {
	allowed := decimal.Min(totalAmount, list.GrandTotal).Sub(list.PayTotal)
	if allowed.IsNegative() {
		return decimal.Zero
	}
	return allowed
}

var leadingNumber = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)`)

// ParseAmount interpreta el monto crudo de un pago. ok=false sólo si el campo falta o está vacío.
// Un texto no numérico se toma por su prefijo numérico ("150tk" -> 150) o como 0 si no tiene:
// comportamiento heredado del formulario de cobro; se conserva hasta que negocio decida otra cosa.
func ParseAmount(raw *string) (amount decimal.Decimal, ok bool) {
	if raw == nil {
		return decimal.Zero, false
	}
	s := strings.TrimSpace(*raw)
	if s == "" {
		return decimal.Zero, false
	}
	if d, err := decimal.NewFromString(s); err == nil {
		return d, true
	}
	prefix := leadingNumber.FindString(s)
	if prefix == "" {
		return decimal.Zero, true
	}
	d, err := decimal.NewFromString(strings.TrimSuffix(strings.TrimPrefix(prefix, "+"), "."))
	if err != nil {
		return decimal.Zero, true
	}
	return d, true
}
