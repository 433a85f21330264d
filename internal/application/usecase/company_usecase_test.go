package usecase_test

import (
	"context"
	"io"
	"strings"
	"testing"

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

const companyID = "2a7d4f1b-8e3c-4b95-a6d0-5f9e2c1b7a48"

type MockCompanyRepo struct {
	mock.Mock
}

func (m *MockCompanyRepo) Create(ctx context.Context, c *entity.Company) error {
	return m.Called(c).Error(0)
}

func (m *MockCompanyRepo) GetByID(ctx context.Context, id string) (*entity.Company, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Company), args.Error(1)
}

func (m *MockCompanyRepo) Update(ctx context.Context, c *entity.Company) error {
	return m.Called(c).Error(0)
}

func (m *MockCompanyRepo) Delete(ctx context.Context, id string) error {
	return m.Called(id).Error(0)
}

func (m *MockCompanyRepo) List(ctx context.Context, c query.Criteria, page repository.Page) ([]*entity.Company, int, error) {
	args := m.Called(c, page)
	return args.Get(0).([]*entity.Company), args.Int(1), args.Error(2)
}

// memStorage guarda en memoria lo que se sube y anota lo que se borra.
type memStorage struct {
	files   map[string]string
	deleted []string
	failErr error
}

func newMemStorage() *memStorage { return &memStorage{files: map[string]string{}} }

func (s *memStorage) Save(ctx context.Context, dir, name string, r io.Reader) (string, error) {
	if s.failErr != nil {
		return "", s.failErr
	}
	raw, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	path := dir + "/" + name
	s.files[path] = string(raw)
	return path, nil
}

func (s *memStorage) Delete(ctx context.Context, path string) error {
	s.deleted = append(s.deleted, path)
	delete(s.files, path)
	return nil
}

func storedCompany(owner, logo string) *entity.Company {
	return &entity.Company{ID: companyID, Name: "Aarong", LogoPath: logo, Status: "active", CreatedBy: owner}
}

func TestCompanyUploadLogo_GuardaYReemplaza(t *testing.T) {
	repo := new(MockCompanyRepo)
	repo.On("GetByID", companyID).Return(storedCompany("u-1", "logos/old.png"), nil)
	repo.On("Update", mock.MatchedBy(func(c *entity.Company) bool {
		return strings.HasPrefix(c.LogoPath, "logos/"+companyID+"-") && strings.HasSuffix(c.LogoPath, ".png")
	})).Return(nil)
	files := newMemStorage()

	uc := usecase.NewCompanyUseCase(repo, files)
	out, err := uc.UploadLogo(context.Background(), staff, companyID, "Logo.PNG", strings.NewReader("png-bytes"))
	require.NoError(t, err)

	assert.Equal(t, "png-bytes", files.files[out.LogoPath])
	assert.Equal(t, []string{"logos/old.png"}, files.deleted, "el logo anterior se borra")
	repo.AssertExpectations(t)
}

func TestCompanyUploadLogo_FormatoNoSoportado(t *testing.T) {
	repo := new(MockCompanyRepo)
	files := newMemStorage()

	uc := usecase.NewCompanyUseCase(repo, files)
	_, err := uc.UploadLogo(context.Background(), staff, companyID, "logo.exe", strings.NewReader("x"))
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
	assert.Empty(t, files.files)
	repo.AssertNotCalled(t, "GetByID", mock.Anything)
}

func TestCompanyUploadLogo_FalloAlGuardarRevierteArchivo(t *testing.T) {
	repo := new(MockCompanyRepo)
	repo.On("GetByID", companyID).Return(storedCompany("u-1", "logos/old.png"), nil)
	repo.On("Update", mock.Anything).Return(assert.AnError)
	files := newMemStorage()

	uc := usecase.NewCompanyUseCase(repo, files)
	_, err := uc.UploadLogo(context.Background(), staff, companyID, "logo.webp", strings.NewReader("x"))
	require.ErrorIs(t, err, assert.AnError)

	assert.Empty(t, files.files, "el archivo nuevo no queda huérfano")
	require.Len(t, files.deleted, 1)
	assert.NotEqual(t, "logos/old.png", files.deleted[0], "el logo anterior se conserva")
}

func TestCompany_NoDuenoRecibeNotFound(t *testing.T) {
	repo := new(MockCompanyRepo)
	repo.On("GetByID", companyID).Return(storedCompany("u-2", ""), nil)
	files := newMemStorage()
	uc := usecase.NewCompanyUseCase(repo, files)
	ctx := context.Background()

	_, err := uc.GetByID(ctx, staff, companyID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	name := "otro"
	_, err = uc.Update(ctx, staff, companyID, dto.UpdateCompanyRequest{Name: &name})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.UploadLogo(ctx, staff, companyID, "logo.png", strings.NewReader("x"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, files.files)

	assert.ErrorIs(t, uc.Delete(ctx, staff, companyID), domain.ErrNotFound)
	repo.AssertNotCalled(t, "Update", mock.Anything)
	repo.AssertNotCalled(t, "Delete", mock.Anything)
}

func TestCompanyDelete_BorraElLogo(t *testing.T) {
	repo := new(MockCompanyRepo)
	repo.On("GetByID", companyID).Return(storedCompany("u-1", "logos/a.png"), nil)
	repo.On("Delete", companyID).Return(nil)
	files := newMemStorage()

	uc := usecase.NewCompanyUseCase(repo, files)
	require.NoError(t, uc.Delete(context.Background(), staff, companyID))
	assert.Equal(t, []string{"logos/a.png"}, files.deleted)
}

func TestCompanyCreate(t *testing.T) {
	repo := new(MockCompanyRepo)
	repo.On("Create", mock.MatchedBy(func(c *entity.Company) bool {
		return c.Name == "Yellow" && c.Email == "sales@yellow.com" && c.CreatedBy == "u-1" && c.Status == "active"
	})).Return(nil)

	uc := usecase.NewCompanyUseCase(repo, newMemStorage())
	out, err := uc.Create(context.Background(), staff, dto.CreateCompanyRequest{Name: " Yellow ", Email: "sales@yellow.com "})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	repo.AssertExpectations(t)
}
