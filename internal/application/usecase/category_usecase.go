package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/internal/domain/catalog"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/internal/domain/pagination"
	"github.com/jhoicas/Backoffice-api/internal/domain/query"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
)

// CategorySave es la operación de guardado: CreateCategory o UpdateCategory.
type CategorySave interface {
	fields() dto.SaveCategoryRequest
}

// CreateCategory alta de una categoría nueva.
type CreateCategory struct {
	Fields dto.SaveCategoryRequest
}

// UpdateCategory modificación de una categoría existente.
type UpdateCategory struct {
	ID     string
	Fields dto.SaveCategoryRequest
}

func (c CreateCategory) fields() dto.SaveCategoryRequest { return c.Fields }
func (u UpdateCategory) fields() dto.SaveCategoryRequest { return u.Fields }

// CategoryUseCase casos de uso de categorías.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// Save crea o actualiza según la variante recibida.
func (uc *CategoryUseCase) Save(ctx context.Context, actor entity.Actor, op CategorySave) (*dto.CategoryResponse, error) {
	in := op.fields()
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.Invalid("name", "es obligatorio")
	}
	now := time.Now()

	switch op := op.(type) {
	case CreateCategory:
		status := in.Status
		if status == "" {
			status = "active"
		}
		category := &entity.Category{
			ID:          uuid.New().String(),
			Name:        name,
			Description: in.Description,
			Status:      status,
			CreatedBy:   actor.ID,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := uc.repo.Create(ctx, category); err != nil {
			return nil, err
		}
		return entityToCategoryResponse(category), nil

	case UpdateCategory:
		category, err := uc.load(ctx, actor, op.ID)
		if err != nil {
			return nil, err
		}
		category.Name = name
		category.Description = in.Description
		if in.Status != "" {
			category.Status = in.Status
		}
		category.UpdatedAt = now
		if err := uc.repo.Update(ctx, category); err != nil {
			return nil, err
		}
		return entityToCategoryResponse(category), nil

	default:
		return nil, domain.Invalid("category", "operación desconocida")
	}
}

// GetByID obtiene una categoría visible para el actor.
func (uc *CategoryUseCase) GetByID(ctx context.Context, actor entity.Actor, id string) (*dto.CategoryResponse, error) {
	category, err := uc.load(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	return entityToCategoryResponse(category), nil
}

// Delete elimina una categoría.
func (uc *CategoryUseCase) Delete(ctx context.Context, actor entity.Actor, id string) error {
	if _, err := uc.load(ctx, actor, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

// List devuelve las categorías proyectadas con su stock total.
func (uc *CategoryUseCase) List(ctx context.Context, actor entity.Actor, q dto.ListQuery) (*dto.CategoryListResponse, error) {
	criteria := query.New(q.Search, actor)
	list, total, err := uc.repo.ListWithStock(ctx, criteria, repository.PageFor(q.Page))
	if err != nil {
		return nil, err
	}
	rows := catalog.ProjectCategories(list)
	items := make([]dto.CategoryRowResponse, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.CategoryRowResponse{
			ID:            r.ID,
			Name:          r.Name,
			ProductsCount: r.ProductsCount,
			TotalStock:    r.TotalStock,
			JoinedAt:      r.JoinedAt,
		})
	}
	return &dto.CategoryListResponse{
		Items:  items,
		Meta:   pagination.NewMeta(total, q.Page),
		Search: criteria.Search,
	}, nil
}

func (uc *CategoryUseCase) load(ctx context.Context, actor entity.Actor, id string) (*entity.Category, error) {
	if !domain.ValidID(id) {
		return nil, domain.ErrNotFound
	}
	category, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil || !actor.Owns(category.CreatedBy) {
		return nil, domain.ErrNotFound
	}
	return category, nil
}

func entityToCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	return &dto.CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Status:      c.Status,
		CreatedBy:   c.CreatedBy,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
