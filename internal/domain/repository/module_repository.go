package repository

import (
	"context"

	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/internal/domain/query"
)

// ModuleRepository define el puerto de persistencia para Module (DIP).
type ModuleRepository interface {
	Create(ctx context.Context, module *entity.Module) error
	GetByID(ctx context.Context, id string) (*entity.Module, error)
	GetByName(ctx context.Context, name string) (*entity.Module, error)
	Update(ctx context.Context, module *entity.Module) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, c query.Criteria, page Page) ([]*entity.Module, int, error)
}
