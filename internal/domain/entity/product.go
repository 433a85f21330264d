package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un artículo de la tienda. El stock vive en cada variante (talla/color).
type Product struct {
	ID          string
	CategoryID  string
	CompanyID   string // vacío si no tiene empresa asociada
	SKU         string
	Name        string
	Description string
	Price       decimal.Decimal
	Status      string
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Variants    []*Variant
}

// Variant combinación talla/color de un producto. Tiene como mucho un registro de stock.
type Variant struct {
	ID        string
	ProductID string
	Size      string
	Color     string
	SKU       string
	Price     decimal.Decimal // cero = usa el precio del producto
	Stock     *Stock
	CreatedAt time.Time
	UpdatedAt time.Time
}
