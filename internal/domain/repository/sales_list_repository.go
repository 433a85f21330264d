package repository

import (
	"context"

	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/internal/domain/query"
)

// SalesListRepository define el puerto de persistencia para listas de venta y su libro de pagos.
type SalesListRepository interface {
	Create(ctx context.Context, list *entity.SalesList) error
	// GetByID carga la lista con sus pagos ordenados.
	GetByID(ctx context.Context, id string) (*entity.SalesList, error)
	// GetForUpdate igual que GetByID pero bloquea la fila (SELECT FOR UPDATE); usar dentro de una tx.
	GetForUpdate(ctx context.Context, id string) (*entity.SalesList, error)
	List(ctx context.Context, c query.Criteria, page Page) ([]*entity.SalesList, int, error)
	// AppendPayments inserta líneas nuevas del libro.
	AppendPayments(ctx context.Context, entries []entity.LedgerEntry) error
	// UpdateTotals guarda paytotal, grandtotal y nextdue.
	UpdateTotals(ctx context.Context, list *entity.SalesList) error
}
