package sales_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/internal/domain/query"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
)

type MockSalesRepo struct {
	mock.Mock
}

func (m *MockSalesRepo) Create(ctx context.Context, list *entity.SalesList) error {
	return m.Called(list).Error(0)
}

func (m *MockSalesRepo) GetByID(ctx context.Context, id string) (*entity.SalesList, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.SalesList), args.Error(1)
}

func (m *MockSalesRepo) GetForUpdate(ctx context.Context, id string) (*entity.SalesList, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.SalesList), args.Error(1)
}

func (m *MockSalesRepo) List(ctx context.Context, c query.Criteria, page repository.Page) ([]*entity.SalesList, int, error) {
	args := m.Called(c, page)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*entity.SalesList), args.Int(1), args.Error(2)
}

func (m *MockSalesRepo) AppendPayments(ctx context.Context, entries []entity.LedgerEntry) error {
	return m.Called(entries).Error(0)
}

func (m *MockSalesRepo) UpdateTotals(ctx context.Context, list *entity.SalesList) error {
	return m.Called(list).Error(0)
}

// fakeTx ejecuta fn con el mismo repo; no hay rollback real, sólo propaga el error.
type fakeTx struct {
	repo  repository.SalesListRepository
	calls int
}

func (f *fakeTx) RunSales(ctx context.Context, fn func(repo repository.SalesListRepository) error) error {
	f.calls++
	return fn(f.repo)
}

type fakeStatements struct {
	got *entity.SalesList
}

func (f *fakeStatements) GenerateStatement(list *entity.SalesList) ([]byte, error) {
	f.got = list
	return []byte("%PDF-1.4"), nil
}
