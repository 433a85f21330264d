package usecase

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/internal/domain/catalog"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/internal/domain/pagination"
	"github.com/jhoicas/Backoffice-api/internal/domain/query"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
)

// CatalogTxRunner ejecuta una función dentro de una transacción con el repositorio de productos atado a esa tx.
// Producto, variantes y stock inicial se guardan juntos o no se guardan.
type CatalogTxRunner interface {
	RunCatalog(ctx context.Context, fn func(products repository.ProductRepository) error) error
}

// ProductUseCase casos de uso CRUD para productos. El stock vive en las variantes.
type ProductUseCase struct {
	repo       repository.ProductRepository
	categories repository.CategoryRepository
	tx         CatalogTxRunner
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, categories repository.CategoryRepository, tx CatalogTxRunner) *ProductUseCase {
	return &ProductUseCase{repo: repo, categories: categories, tx: tx}
}

// Create crea el producto con sus variantes y el stock inicial de cada una.
func (uc *ProductUseCase) Create(ctx context.Context, actor entity.Actor, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Price.IsNegative() {
		return nil, domain.Invalid("price", "no puede ser negativo")
	}
	if err := uc.checkCategory(ctx, actor, in.CategoryID); err != nil {
		return nil, err
	}

	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		CategoryID:  in.CategoryID,
		CompanyID:   in.CompanyID,
		SKU:         strings.TrimSpace(in.SKU),
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Price:       in.Price,
		Status:      "active",
		CreatedBy:   actor.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for i, v := range in.Variants {
		if v.Quantity.IsNegative() || v.Price.IsNegative() {
			return nil, &domain.InvalidRequestError{Field: "variants", Label: variantLabel(v, i), Reason: "precio y cantidad no pueden ser negativos"}
		}
		variantID := uuid.New().String()
		product.Variants = append(product.Variants, &entity.Variant{
			ID:        variantID,
			ProductID: product.ID,
			Size:      v.Size,
			Color:     v.Color,
			SKU:       v.SKU,
			Price:     v.Price,
			Stock:     &entity.Stock{VariantID: variantID, Quantity: v.Quantity, UpdatedAt: now},
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	err := uc.tx.RunCatalog(ctx, func(products repository.ProductRepository) error {
		return products.Create(ctx, product)
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto con variantes y stock.
func (uc *ProductUseCase) GetByID(ctx context.Context, actor entity.Actor, id string) (*dto.ProductResponse, error) {
	product, err := uc.load(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update actualiza los datos del producto. Variantes y stock no se tocan aquí.
func (uc *ProductUseCase) Update(ctx context.Context, actor entity.Actor, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.load(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if in.CategoryID != nil && *in.CategoryID != product.CategoryID {
		if err := uc.checkCategory(ctx, actor, *in.CategoryID); err != nil {
			return nil, err
		}
		product.CategoryID = *in.CategoryID
	}
	if in.CompanyID != nil {
		product.CompanyID = *in.CompanyID
	}
	if in.Name != nil {
		product.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.Invalid("price", "no puede ser negativo")
		}
		product.Price = *in.Price
	}
	if in.Status != nil {
		product.Status = *in.Status
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina el producto; variantes y stock caen en cascada.
func (uc *ProductUseCase) Delete(ctx context.Context, actor entity.Actor, id string) error {
	if _, err := uc.load(ctx, actor, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

// SetStock fija la cantidad disponible de una variante del producto.
func (uc *ProductUseCase) SetStock(ctx context.Context, actor entity.Actor, productID, variantID string, in dto.SetStockRequest) (*dto.ProductResponse, error) {
	if in.Quantity.IsNegative() {
		return nil, domain.Invalid("quantity", "no puede ser negativa")
	}
	product, err := uc.load(ctx, actor, productID)
	if err != nil {
		return nil, err
	}
	var variant *entity.Variant
	for _, v := range product.Variants {
		if v.ID == variantID {
			variant = v
			break
		}
	}
	if variant == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.repo.SetStock(ctx, productID, variantID, in.Quantity); err != nil {
		return nil, err
	}
	variant.Stock = &entity.Stock{VariantID: variantID, Quantity: in.Quantity, UpdatedAt: time.Now()}
	return toProductResponse(product), nil
}

// List lista productos filtrados y paginados.
func (uc *ProductUseCase) List(ctx context.Context, actor entity.Actor, q dto.ListQuery) (*dto.ProductListResponse, error) {
	criteria := query.New(q.Search, actor)
	list, total, err := uc.repo.List(ctx, criteria, repository.PageFor(q.Page))
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items:  items,
		Meta:   pagination.NewMeta(total, q.Page),
		Search: criteria.Search,
	}, nil
}

func (uc *ProductUseCase) load(ctx context.Context, actor entity.Actor, id string) (*entity.Product, error) {
	if !domain.ValidID(id) {
		return nil, domain.ErrNotFound
	}
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil || !actor.Owns(product.CreatedBy) {
		return nil, domain.ErrNotFound
	}
	return product, nil
}

// checkCategory exige que la categoría exista y sea visible para el actor; las de otro usuario cuentan como inexistentes.
func (uc *ProductUseCase) checkCategory(ctx context.Context, actor entity.Actor, id string) error {
	if !domain.ValidID(id) {
		return domain.ErrNotFound
	}
	category, err := uc.categories.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if category == nil || !actor.Owns(category.CreatedBy) {
		return domain.ErrNotFound
	}
	return nil
}

func variantLabel(v dto.VariantRequest, i int) string {
	if v.SKU != "" {
		return v.SKU
	}
	if label := strings.TrimSpace(v.Size + " " + v.Color); label != "" {
		return label
	}
	return "#" + strconv.Itoa(i+1)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	variants := make([]dto.VariantResponse, 0, len(p.Variants))
	for _, v := range p.Variants {
		qty := decimal.Zero
		if v.Stock != nil {
			qty = v.Stock.Quantity
		}
		variants = append(variants, dto.VariantResponse{
			ID:       v.ID,
			Size:     v.Size,
			Color:    v.Color,
			SKU:      v.SKU,
			Price:    v.Price,
			Quantity: qty,
		})
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		CategoryID:  p.CategoryID,
		CompanyID:   p.CompanyID,
		SKU:         p.SKU,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Status:      p.Status,
		TotalStock:  catalog.ProductStock(p),
		Variants:    variants,
		CreatedBy:   p.CreatedBy,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
