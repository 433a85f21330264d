package sales

import (
	"context"

	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
)

// SalesTxRunner ejecuta una función dentro de una transacción con el repositorio de ventas atado a esa tx.
// Si fn devuelve error se hace rollback y la lista queda como estaba.
type SalesTxRunner interface {
	RunSales(ctx context.Context, fn func(repo repository.SalesListRepository) error) error
}

// StatementGenerator genera el estado de cuenta (PDF) de una lista de venta con su libro de pagos.
type StatementGenerator interface {
	GenerateStatement(list *entity.SalesList) ([]byte, error)
}
