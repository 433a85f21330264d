package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/application/usecase"
	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/internal/domain/query"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
)

const (
	productID = "9d3f6b2a-4c1e-4a87-b5d0-6e2f1a9c3b74"
	variantM  = "1f7a2c9e-5b3d-4e60-a8f1-0c4d7b2e9a36"
	variantL  = "6c2e8a1f-3d9b-4f75-b0e4-8a1c5f7d2b49"
)

type MockProductRepo struct {
	mock.Mock
}

func (m *MockProductRepo) Create(ctx context.Context, p *entity.Product) error {
	return m.Called(p).Error(0)
}

func (m *MockProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Product), args.Error(1)
}

func (m *MockProductRepo) Update(ctx context.Context, p *entity.Product) error {
	return m.Called(p).Error(0)
}

func (m *MockProductRepo) Delete(ctx context.Context, id string) error {
	return m.Called(id).Error(0)
}

func (m *MockProductRepo) List(ctx context.Context, c query.Criteria, page repository.Page) ([]*entity.Product, int, error) {
	args := m.Called(c, page)
	return args.Get(0).([]*entity.Product), args.Int(1), args.Error(2)
}

func (m *MockProductRepo) SetStock(ctx context.Context, productID, variantID string, quantity decimal.Decimal) error {
	return m.Called(productID, variantID, quantity).Error(0)
}

// catalogTx corre fn con el mismo repo; ran cuenta las transacciones abiertas.
type catalogTx struct {
	repo repository.ProductRepository
	ran  int
}

func (f *catalogTx) RunCatalog(ctx context.Context, fn func(repository.ProductRepository) error) error {
	f.ran++
	return fn(f.repo)
}

func ownCategory() *entity.Category {
	return &entity.Category{ID: categoryID, Name: "Panjabi", CreatedBy: "u-1"}
}

func storedProduct(owner string) *entity.Product {
	qty := func(v int64) *entity.Stock { return &entity.Stock{Quantity: decimal.NewFromInt(v)} }
	return &entity.Product{
		ID:         productID,
		CategoryID: categoryID,
		Name:       "Panjabi algodón",
		Status:     "active",
		CreatedBy:  owner,
		Variants: []*entity.Variant{
			{ID: variantM, ProductID: productID, Size: "M", Stock: qty(4)},
			{ID: variantL, ProductID: productID, Size: "L", Stock: qty(6)},
		},
	}
}

func newProductUC(products *MockProductRepo, categories *MockCategoryRepo) (*usecase.ProductUseCase, *catalogTx) {
	tx := &catalogTx{repo: products}
	return usecase.NewProductUseCase(products, categories, tx), tx
}

func TestProductCreate_ConVariantesYStock(t *testing.T) {
	products, categories := new(MockProductRepo), new(MockCategoryRepo)
	categories.On("GetByID", categoryID).Return(ownCategory(), nil)
	products.On("Create", mock.MatchedBy(func(p *entity.Product) bool {
		return p.CreatedBy == "u-1" && len(p.Variants) == 2 && p.Variants[0].Stock != nil && p.Variants[0].Stock.VariantID == p.Variants[0].ID
	})).Return(nil)

	uc, tx := newProductUC(products, categories)
	out, err := uc.Create(context.Background(), staff, dto.CreateProductRequest{
		CategoryID: categoryID,
		SKU:        "PJ-01",
		Name:       " Panjabi ",
		Price:      decimal.NewFromInt(1200),
		Variants: []dto.VariantRequest{
			{Size: "M", Quantity: decimal.NewFromInt(3)},
			{Size: "L", Quantity: decimal.NewFromInt(5)},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, tx.ran, "producto y variantes en una sola transacción")
	assert.Equal(t, "Panjabi", out.Name)
	assert.True(t, out.TotalStock.Equal(decimal.NewFromInt(8)))
	require.Len(t, out.Variants, 2)
	products.AssertExpectations(t)
}

func TestProductCreate_CantidadNegativaNombraLaVariante(t *testing.T) {
	products, categories := new(MockProductRepo), new(MockCategoryRepo)
	categories.On("GetByID", categoryID).Return(ownCategory(), nil)

	uc, tx := newProductUC(products, categories)
	_, err := uc.Create(context.Background(), staff, dto.CreateProductRequest{
		CategoryID: categoryID,
		SKU:        "PJ-01",
		Name:       "Panjabi",
		Variants: []dto.VariantRequest{
			{SKU: "PJ-01-M", Quantity: decimal.NewFromInt(2)},
			{SKU: "PJ-01-L", Quantity: decimal.NewFromInt(-1)},
		},
	})
	require.ErrorIs(t, err, domain.ErrInvalidRequest)
	var invalid *domain.InvalidRequestError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, "variants", invalid.Field)
	assert.Equal(t, "PJ-01-L", invalid.Label)
	assert.Zero(t, tx.ran)
	products.AssertNotCalled(t, "Create", mock.Anything)
}

func TestProductCreate_CategoriaAjenaOInexistente(t *testing.T) {
	cases := map[string]func(*MockCategoryRepo){
		"ajena": func(c *MockCategoryRepo) {
			c.On("GetByID", categoryID).Return(&entity.Category{ID: categoryID, CreatedBy: "u-2"}, nil)
		},
		"inexistente": func(c *MockCategoryRepo) {
			c.On("GetByID", categoryID).Return(nil, nil)
		},
	}
	for name, setup := range cases {
		t.Run(name, func(t *testing.T) {
			products, categories := new(MockProductRepo), new(MockCategoryRepo)
			setup(categories)

			uc, tx := newProductUC(products, categories)
			_, err := uc.Create(context.Background(), staff, dto.CreateProductRequest{CategoryID: categoryID, SKU: "x", Name: "x"})
			assert.ErrorIs(t, err, domain.ErrNotFound)
			assert.Zero(t, tx.ran)
		})
	}
}

func TestProductUpdate_CambioACategoriaAjena(t *testing.T) {
	otherCategory := "b8e1d4a7-2f6c-4093-9a5e-3c7b1d0f6e82"
	products, categories := new(MockProductRepo), new(MockCategoryRepo)
	products.On("GetByID", productID).Return(storedProduct("u-1"), nil)
	categories.On("GetByID", otherCategory).Return(&entity.Category{ID: otherCategory, CreatedBy: "u-2"}, nil)

	uc, _ := newProductUC(products, categories)
	_, err := uc.Update(context.Background(), staff, productID, dto.UpdateProductRequest{CategoryID: &otherCategory})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	products.AssertNotCalled(t, "Update", mock.Anything)
}

func TestProductUpdate_AdminUsaCualquierCategoria(t *testing.T) {
	otherCategory := "b8e1d4a7-2f6c-4093-9a5e-3c7b1d0f6e82"
	admin := entity.Actor{ID: "admin-1", Role: entity.RoleAdmin}
	products, categories := new(MockProductRepo), new(MockCategoryRepo)
	products.On("GetByID", productID).Return(storedProduct("u-1"), nil)
	categories.On("GetByID", otherCategory).Return(&entity.Category{ID: otherCategory, CreatedBy: "u-2"}, nil)
	products.On("Update", mock.MatchedBy(func(p *entity.Product) bool { return p.CategoryID == otherCategory })).Return(nil)

	uc, _ := newProductUC(products, categories)
	out, err := uc.Update(context.Background(), admin, productID, dto.UpdateProductRequest{CategoryID: &otherCategory})
	require.NoError(t, err)
	assert.Equal(t, otherCategory, out.CategoryID)
}

func TestProductSetStock(t *testing.T) {
	products := new(MockProductRepo)
	products.On("GetByID", productID).Return(storedProduct("u-1"), nil)
	products.On("SetStock", productID, variantL, decimal.NewFromInt(10)).Return(nil)

	uc, _ := newProductUC(products, new(MockCategoryRepo))
	out, err := uc.SetStock(context.Background(), staff, productID, variantL, dto.SetStockRequest{Quantity: decimal.NewFromInt(10)})
	require.NoError(t, err)
	assert.True(t, out.TotalStock.Equal(decimal.NewFromInt(14)), "4 de M + 10 de L")
	products.AssertExpectations(t)
}

func TestProductSetStock_VarianteDesconocida(t *testing.T) {
	products := new(MockProductRepo)
	products.On("GetByID", productID).Return(storedProduct("u-1"), nil)

	uc, _ := newProductUC(products, new(MockCategoryRepo))
	_, err := uc.SetStock(context.Background(), staff, productID, "0e5a9c3d-7b2f-4d18-86a4-f1c2b3d4e5f6", dto.SetStockRequest{Quantity: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	products.AssertNotCalled(t, "SetStock", mock.Anything, mock.Anything, mock.Anything)
}

func TestProductSetStock_CantidadNegativa(t *testing.T) {
	products := new(MockProductRepo)
	uc, _ := newProductUC(products, new(MockCategoryRepo))
	_, err := uc.SetStock(context.Background(), staff, productID, variantM, dto.SetStockRequest{Quantity: decimal.NewFromInt(-3)})
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
	products.AssertNotCalled(t, "GetByID", mock.Anything)
}

func TestProduct_NoDuenoRecibeNotFound(t *testing.T) {
	products := new(MockProductRepo)
	products.On("GetByID", productID).Return(storedProduct("u-2"), nil)
	uc, _ := newProductUC(products, new(MockCategoryRepo))
	ctx := context.Background()

	_, err := uc.GetByID(ctx, staff, productID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	name := "otro"
	_, err = uc.Update(ctx, staff, productID, dto.UpdateProductRequest{Name: &name})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.SetStock(ctx, staff, productID, variantM, dto.SetStockRequest{Quantity: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.ErrorIs(t, uc.Delete(ctx, staff, productID), domain.ErrNotFound)
	products.AssertNotCalled(t, "Update", mock.Anything)
	products.AssertNotCalled(t, "Delete", mock.Anything)
}

func TestProduct_IDMalformadoNoConsulta(t *testing.T) {
	products := new(MockProductRepo)
	uc, _ := newProductUC(products, new(MockCategoryRepo))

	_, err := uc.GetByID(context.Background(), staff, "abc")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	products.AssertNotCalled(t, "GetByID", mock.Anything)
}
