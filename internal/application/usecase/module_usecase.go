package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/internal/domain/pagination"
	"github.com/jhoicas/Backoffice-api/internal/domain/query"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
)

// ModuleUseCase casos de uso de módulos del back-office.
type ModuleUseCase struct {
	repo repository.ModuleRepository
}

// NewModuleUseCase construye el caso de uso.
func NewModuleUseCase(repo repository.ModuleRepository) *ModuleUseCase {
	return &ModuleUseCase{repo: repo}
}

// Create da de alta un módulo.
func (uc *ModuleUseCase) Create(ctx context.Context, actor entity.Actor, in dto.SaveModuleRequest) (*dto.ModuleResponse, error) {
	now := time.Now()
	status := in.Status
	if status == "" {
		status = "active"
	}
	module := &entity.Module{
		ID:          uuid.New().String(),
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Status:      status,
		CreatedBy:   actor.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, module); err != nil {
		return nil, err
	}
	return entityToModuleResponse(module), nil
}

// GetByID obtiene un módulo visible para el actor.
func (uc *ModuleUseCase) GetByID(ctx context.Context, actor entity.Actor, id string) (*dto.ModuleResponse, error) {
	module, err := uc.load(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	return entityToModuleResponse(module), nil
}

// Update reemplaza nombre, descripción y estado.
func (uc *ModuleUseCase) Update(ctx context.Context, actor entity.Actor, id string, in dto.SaveModuleRequest) (*dto.ModuleResponse, error) {
	module, err := uc.load(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	module.Name = strings.TrimSpace(in.Name)
	module.Description = in.Description
	if in.Status != "" {
		module.Status = in.Status
	}
	module.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, module); err != nil {
		return nil, err
	}
	return entityToModuleResponse(module), nil
}

// Delete elimina un módulo.
func (uc *ModuleUseCase) Delete(ctx context.Context, actor entity.Actor, id string) error {
	if _, err := uc.load(ctx, actor, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

// List lista módulos filtrados y paginados.
func (uc *ModuleUseCase) List(ctx context.Context, actor entity.Actor, q dto.ListQuery) (*dto.ModuleListResponse, error) {
	criteria := query.New(q.Search, actor)
	list, total, err := uc.repo.List(ctx, criteria, repository.PageFor(q.Page))
	if err != nil {
		return nil, err
	}
	items := make([]dto.ModuleResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *entityToModuleResponse(m))
	}
	return &dto.ModuleListResponse{
		Items:  items,
		Meta:   pagination.NewMeta(total, q.Page),
		Search: criteria.Search,
	}, nil
}

// IsActive informa si la sección name está habilitada. Una sección sin módulo registrado se considera activa.
func (uc *ModuleUseCase) IsActive(ctx context.Context, name string) (bool, error) {
	module, err := uc.repo.GetByName(ctx, name)
	if err != nil {
		return false, err
	}
	if module == nil {
		return true, nil
	}
	return module.Status != "inactive", nil
}

func (uc *ModuleUseCase) load(ctx context.Context, actor entity.Actor, id string) (*entity.Module, error) {
	if !domain.ValidID(id) {
		return nil, domain.ErrNotFound
	}
	module, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if module == nil || !actor.Owns(module.CreatedBy) {
		return nil, domain.ErrNotFound
	}
	return module, nil
}

func entityToModuleResponse(m *entity.Module) *dto.ModuleResponse {
	return &dto.ModuleResponse{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Status:      m.Status,
		CreatedBy:   m.CreatedBy,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
