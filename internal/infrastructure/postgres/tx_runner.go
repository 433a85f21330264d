package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Backoffice-api/internal/application/deposit"
	"github.com/jhoicas/Backoffice-api/internal/application/sales"
	"github.com/jhoicas/Backoffice-api/internal/application/usecase"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
)

// Ensure TxRunner implements the transactional ports of the use cases.
var (
	_ sales.SalesTxRunner     = (*TxRunner)(nil)
	_ deposit.DepositTxRunner = (*TxRunner)(nil)
	_ usecase.CatalogTxRunner = (*TxRunner)(nil)
)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// run inicia una transacción, ejecuta fn con la tx y hace Commit o Rollback.
func (r *TxRunner) run(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunSales ejecuta fn con el repositorio de ventas atado a la tx (cobros parciales).
func (r *TxRunner) RunSales(ctx context.Context, fn func(repo repository.SalesListRepository) error) error {
	return r.run(ctx, func(tx pgx.Tx) error {
		return fn(NewSalesListRepository(tx))
	})
}

// RunDeposits ejecuta fn con depósitos y usuarios en la misma tx (aprobación).
func (r *TxRunner) RunDeposits(ctx context.Context, fn func(deposits repository.DepositRepository, users repository.UserRepository) error) error {
	return r.run(ctx, func(tx pgx.Tx) error {
		return fn(NewDepositRepository(tx), NewUserRepository(tx))
	})
}

// RunCatalog ejecuta fn con el repositorio de productos atado a la tx (alta con variantes y stock).
func (r *TxRunner) RunCatalog(ctx context.Context, fn func(products repository.ProductRepository) error) error {
	return r.run(ctx, func(tx pgx.Tx) error {
		return fn(NewProductRepository(tx))
	})
}
