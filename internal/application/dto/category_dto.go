package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Backoffice-api/internal/domain/pagination"
)

// SaveCategoryRequest campos de una categoría (mismo cuerpo para crear y actualizar).
type SaveCategoryRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=150"`
	Description string `json:"description" validate:"omitempty,max=1000"`
	Status      string `json:"status" validate:"omitempty,oneof=active inactive"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CategoryRowResponse fila del listado con el stock total agregado.
type CategoryRowResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	ProductsCount int             `json:"products_count"`
	TotalStock    decimal.Decimal `json:"total_stock"`
	JoinedAt      string          `json:"joined_at"`
}

// CategoryListResponse lista paginada de categorías proyectadas.
type CategoryListResponse struct {
	Items  []CategoryRowResponse `json:"data"`
	Meta   pagination.Meta       `json:"meta"`
	Search string                `json:"search"`
}
