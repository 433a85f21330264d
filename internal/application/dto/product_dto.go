package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Backoffice-api/internal/domain/pagination"
)

// VariantRequest variante talla/color con su stock inicial.
type VariantRequest struct {
	Size     string          `json:"size" validate:"omitempty,max=30"`
	Color    string          `json:"color" validate:"omitempty,max=50"`
	SKU      string          `json:"sku" validate:"omitempty,max=100"`
	Price    decimal.Decimal `json:"price"`
	Quantity decimal.Decimal `json:"quantity"`
}

// CreateProductRequest entrada para crear un producto con sus variantes.
type CreateProductRequest struct {
	CategoryID  string           `json:"category_id" validate:"required,uuid"`
	CompanyID   string           `json:"company_id" validate:"omitempty,uuid"`
	SKU         string           `json:"sku" validate:"required,min=1,max=100"`
	Name        string           `json:"name" validate:"required,min=1,max=200"`
	Description string           `json:"description"`
	Price       decimal.Decimal  `json:"price"`
	Variants    []VariantRequest `json:"variants" validate:"dive"`
}

// UpdateProductRequest entrada para actualizar un producto (las variantes y el stock van aparte).
type UpdateProductRequest struct {
	CategoryID  *string          `json:"category_id" validate:"omitempty,uuid"`
	CompanyID   *string          `json:"company_id" validate:"omitempty,uuid"`
	Name        *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Status      *string          `json:"status" validate:"omitempty,oneof=active inactive"`
}

// SetStockRequest fija la cantidad de una variante.
type SetStockRequest struct {
	Quantity decimal.Decimal `json:"quantity"`
}

// VariantResponse salida de una variante.
type VariantResponse struct {
	ID       string          `json:"id"`
	Size     string          `json:"size"`
	Color    string          `json:"color"`
	SKU      string          `json:"sku"`
	Price    decimal.Decimal `json:"price"`
	Quantity decimal.Decimal `json:"quantity"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string            `json:"id"`
	CategoryID  string            `json:"category_id"`
	CompanyID   string            `json:"company_id,omitempty"`
	SKU         string            `json:"sku"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Price       decimal.Decimal   `json:"price"`
	Status      string            `json:"status"`
	TotalStock  decimal.Decimal   `json:"total_stock"`
	Variants    []VariantResponse `json:"variants"`
	CreatedBy   string            `json:"created_by"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items  []ProductResponse `json:"data"`
	Meta   pagination.Meta   `json:"meta"`
	Search string            `json:"search"`
}
