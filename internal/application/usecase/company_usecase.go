package usecase

import (
	"context"
	"io"
	"path/filepath"
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

// FileStorage guarda archivos subidos (logos) y devuelve la ruta relativa con la que se recuperan.
type FileStorage interface {
	Save(ctx context.Context, dir, name string, r io.Reader) (string, error)
	Delete(ctx context.Context, path string) error
}

// extensiones aceptadas para el logo.
var logoExtensions = map[string]bool{".png": true, ".jpg": true, ".jpeg": true, ".webp": true, ".svg": true}

// CompanyUseCase aplica reglas de negocio para empresas (casos de uso).
type CompanyUseCase struct {
	repo    repository.CompanyRepository
	storage FileStorage
}

// NewCompanyUseCase construye el caso de uso con el puerto de persistencia y el almacenamiento de logos.
func NewCompanyUseCase(repo repository.CompanyRepository, storage FileStorage) *CompanyUseCase {
	return &CompanyUseCase{repo: repo, storage: storage}
}

// Create crea una nueva empresa a nombre del actor.
func (uc *CompanyUseCase) Create(ctx context.Context, actor entity.Actor, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	now := time.Now()
	company := &entity.Company{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(in.Name),
		Email:     strings.TrimSpace(in.Email),
		Phone:     strings.TrimSpace(in.Phone),
		Address:   in.Address,
		Status:    "active",
		CreatedBy: actor.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, company); err != nil {
		return nil, err
	}
	return entityToCompanyResponse(company), nil
}

// GetByID obtiene una empresa visible para el actor.
func (uc *CompanyUseCase) GetByID(ctx context.Context, actor entity.Actor, id string) (*dto.CompanyResponse, error) {
	company, err := uc.load(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	return entityToCompanyResponse(company), nil
}

// Update aplica los campos presentes en la petición.
func (uc *CompanyUseCase) Update(ctx context.Context, actor entity.Actor, id string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	company, err := uc.load(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		company.Name = strings.TrimSpace(*in.Name)
	}
	if in.Email != nil {
		company.Email = strings.TrimSpace(*in.Email)
	}
	if in.Phone != nil {
		company.Phone = strings.TrimSpace(*in.Phone)
	}
	if in.Address != nil {
		company.Address = *in.Address
	}
	if in.Status != nil {
		company.Status = *in.Status
	}
	company.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, company); err != nil {
		return nil, err
	}
	return entityToCompanyResponse(company), nil
}

// Delete elimina la empresa y su logo, si tiene.
func (uc *CompanyUseCase) Delete(ctx context.Context, actor entity.Actor, id string) error {
	company, err := uc.load(ctx, actor, id)
	if err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, company.ID); err != nil {
		return err
	}
	if company.LogoPath != "" && uc.storage != nil {
		// el registro ya no existe; un logo huérfano no es motivo para fallar la petición
		_ = uc.storage.Delete(ctx, company.LogoPath)
	}
	return nil
}

// UploadLogo guarda el logo y reemplaza el anterior.
func (uc *CompanyUseCase) UploadLogo(ctx context.Context, actor entity.Actor, id, filename string, r io.Reader) (*dto.CompanyResponse, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !logoExtensions[ext] {
		return nil, domain.Invalid("logo", "formato no soportado")
	}
	company, err := uc.load(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	path, err := uc.storage.Save(ctx, "logos", company.ID+"-"+uuid.New().String()+ext, r)
	if err != nil {
		return nil, err
	}
	previous := company.LogoPath
	company.LogoPath = path
	company.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, company); err != nil {
		_ = uc.storage.Delete(ctx, path)
		return nil, err
	}
	if previous != "" {
		_ = uc.storage.Delete(ctx, previous)
	}
	return entityToCompanyResponse(company), nil
}

// List lista empresas visibles para el actor, filtradas y paginadas.
func (uc *CompanyUseCase) List(ctx context.Context, actor entity.Actor, q dto.ListQuery) (*dto.CompanyListResponse, error) {
	criteria := query.New(q.Search, actor)
	list, total, err := uc.repo.List(ctx, criteria, repository.PageFor(q.Page))
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *entityToCompanyResponse(c))
	}
	return &dto.CompanyListResponse{
		Items:  items,
		Meta:   pagination.NewMeta(total, q.Page),
		Search: criteria.Search,
	}, nil
}

func (uc *CompanyUseCase) load(ctx context.Context, actor entity.Actor, id string) (*entity.Company, error) {
	if !domain.ValidID(id) {
		return nil, domain.ErrNotFound
	}
	company, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil || !actor.Owns(company.CreatedBy) {
		return nil, domain.ErrNotFound
	}
	return company, nil
}

func entityToCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		LogoPath:  c.LogoPath,
		Status:    c.Status,
		CreatedBy: c.CreatedBy,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
