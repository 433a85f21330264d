package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	// AddDeposit suma amount al acumulado total_deposit del usuario.
	AddDeposit(ctx context.Context, userID string, amount decimal.Decimal) error
}
