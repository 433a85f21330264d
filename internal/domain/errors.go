package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Errores de dominio.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidRequest     = errors.New("solicitud inválida")
	ErrAmountExceeded     = errors.New("el monto excede el total permitido")
	ErrPersistence        = errors.New("no se pudo guardar el cambio")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
)

// InvalidRequestError detalla qué campo de la petición falló.
// Label identifica la línea afectada cuando la petición trae varias (ej. el "system" de un pago).
type InvalidRequestError struct {
	Field  string
	Label  string
	Reason string
}

func (e *InvalidRequestError) Error() string {
	if e.Label != "" {
		return fmt.Sprintf("%s (%s): %s", e.Field, e.Label, e.Reason)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *InvalidRequestError) Unwrap() error { return ErrInvalidRequest }

// Invalid construye un InvalidRequestError sin etiqueta.
func Invalid(field, reason string) error {
	return &InvalidRequestError{Field: field, Reason: reason}
}

// AmountExceededError indica que la suma de pagos supera el tope permitido.
type AmountExceededError struct {
	Requested decimal.Decimal
	Allowed   decimal.Decimal
}

func (e *AmountExceededError) Error() string {
	return fmt.Sprintf("el pago total %s supera el máximo permitido %s",
		e.Requested.StringFixed(2), e.Allowed.StringFixed(2))
}

func (e *AmountExceededError) Unwrap() error { return ErrAmountExceeded }

// Persistence envuelve un fallo de almacenamiento para que la frontera HTTP lo trate como ErrPersistence.
func Persistence(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrPersistence, err)
}

// IsBusiness informa si err es un error de negocio (no de infraestructura).
func IsBusiness(err error) bool {
	return errors.Is(err, ErrInvalidRequest) ||
		errors.Is(err, ErrAmountExceeded) ||
		errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrForbidden) ||
		errors.Is(err, ErrDuplicate)
}
