package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/internal/domain/query"
)

// ProductRepository define el puerto de persistencia para Product y sus variantes (DIP).
type ProductRepository interface {
	// Create inserta el producto y sus variantes; llamar dentro de una transacción.
	Create(ctx context.Context, product *entity.Product) error
	// GetByID carga el producto con variantes y stock.
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, c query.Criteria, page Page) ([]*entity.Product, int, error)
	// SetStock fija la cantidad en stock de una variante del producto.
	SetStock(ctx context.Context, productID, variantID string, quantity decimal.Decimal) error
}
