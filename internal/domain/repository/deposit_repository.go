package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/internal/domain/query"
)

// DepositRepository define el puerto de persistencia para UserDeposit (DIP).
type DepositRepository interface {
	Create(ctx context.Context, deposit *entity.UserDeposit) error
	GetByID(ctx context.Context, id string) (*entity.UserDeposit, error)
	// GetForUpdate bloquea la fila del depósito; usar dentro de una tx.
	GetForUpdate(ctx context.Context, id string) (*entity.UserDeposit, error)
	List(ctx context.Context, c query.Criteria, page Page) ([]*entity.UserDeposit, int, error)
	MarkApproved(ctx context.Context, id, approvedBy string, at time.Time) error
}
