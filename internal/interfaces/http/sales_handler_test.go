package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/application/sales"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/internal/domain/query"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
	apphttp "github.com/jhoicas/Backoffice-api/internal/interfaces/http"
	"github.com/jhoicas/Backoffice-api/pkg/logger"
)

const listID = "0b6a1f5e-8c2d-4e7a-9f31-6d2c8b4a7e10"

type salesRepo struct {
	mock.Mock
}

func (m *salesRepo) Create(ctx context.Context, list *entity.SalesList) error {
	return m.Called(list).Error(0)
}

func (m *salesRepo) GetByID(ctx context.Context, id string) (*entity.SalesList, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.SalesList), args.Error(1)
}

func (m *salesRepo) GetForUpdate(ctx context.Context, id string) (*entity.SalesList, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.SalesList), args.Error(1)
}

func (m *salesRepo) List(ctx context.Context, c query.Criteria, page repository.Page) ([]*entity.SalesList, int, error) {
	args := m.Called(c, page)
	return args.Get(0).([]*entity.SalesList), args.Int(1), args.Error(2)
}

func (m *salesRepo) AppendPayments(ctx context.Context, entries []entity.LedgerEntry) error {
	return m.Called(entries).Error(0)
}

func (m *salesRepo) UpdateTotals(ctx context.Context, list *entity.SalesList) error {
	return m.Called(list).Error(0)
}

type salesTx struct{ repo repository.SalesListRepository }

func (f salesTx) RunSales(ctx context.Context, fn func(repository.SalesListRepository) error) error {
	return fn(f.repo)
}

type pdfStub struct{}

func (pdfStub) GenerateStatement(*entity.SalesList) ([]byte, error) { return []byte("%PDF-1.7"), nil }

func salesFixture() *entity.SalesList {
	return &entity.SalesList{
		ID:         listID,
		InvoiceNo:  "INV-0001",
		GrandTotal: decimal.NewFromInt(1000),
		PayTotal:   decimal.NewFromInt(200),
		NextDue:    decimal.NewFromInt(800),
		CreatedBy:  testUserID,
	}
}

func salesApp(repo *salesRepo) *fiber.App {
	uc := sales.NewUseCase(repo, salesTx{repo: repo}, pdfStub{}, logger.Nop(), time.UTC)
	h := apphttp.NewSalesHandler(uc)
	app := fiber.New()
	auth := apphttp.AuthMiddleware(testJWTSecret)
	app.Post("/api/sales-lists/:id/collect", auth, h.CollectDue)
	app.Get("/api/sales-lists/:id/statement", auth, h.Statement)
	return app
}

func collect(t *testing.T, app *fiber.App, body string) (*http.Response, []byte) {
	t.Helper()
	return collectOn(t, app, listID, body)
}

func collectOn(t *testing.T, app *fiber.App, id, body string) (*http.Response, []byte) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/sales-lists/"+id+"/collect", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", tokenForRole(t, "staff"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func TestCollectDue_HTTP_CobroParcial(t *testing.T) {
	repo := new(salesRepo)
	repo.On("GetForUpdate", listID).Return(salesFixture(), nil)
	repo.On("AppendPayments", mock.Anything).Return(nil)
	repo.On("UpdateTotals", mock.Anything).Return(nil)

	resp, raw := collect(t, salesApp(repo), `{"payments":[{"amount":"150tk","system":"bkash"},{"amount":150,"system":"cash"}],"total_amount":1000}`)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))

	var out dto.SalesListResponse
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.True(t, out.PayTotal.Equal(decimal.NewFromInt(500)))
	assert.True(t, out.NextDue.Equal(decimal.NewFromInt(500)))
	require.Len(t, out.Pay, 2)
	assert.Equal(t, "bkash", out.Pay[0].System)
	assert.Equal(t, "cash", out.Pay[1].System)
}

func TestCollectDue_HTTP_ExcedidoEs422ConElTope(t *testing.T) {
	repo := new(salesRepo)
	repo.On("GetForUpdate", listID).Return(salesFixture(), nil)

	resp, raw := collect(t, salesApp(repo), `{"payments":[{"amount":900,"system":"cash"}],"total_amount":1000}`)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var out dto.ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, "AMOUNT_EXCEEDED", out.Code)
	assert.Equal(t, "800.00", out.Details["allowed"])
	repo.AssertNotCalled(t, "AppendPayments", mock.Anything)
}

func TestCollectDue_HTTP_MontoAusenteNombraElSistema(t *testing.T) {
	repo := new(salesRepo)
	repo.On("GetForUpdate", listID).Return(salesFixture(), nil)

	resp, raw := collect(t, salesApp(repo), `{"payments":[{"system":"nagad"}],"total_amount":1000}`)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var out dto.ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, "INVALID_REQUEST", out.Code)
	assert.Equal(t, "nagad", out.Details["system"])
}

func TestCollectDue_HTTP_ListaAjenaEs404(t *testing.T) {
	repo := new(salesRepo)
	other := salesFixture()
	other.CreatedBy = "someone-else"
	repo.On("GetForUpdate", listID).Return(other, nil)

	resp, _ := collect(t, salesApp(repo), `{"payments":[{"amount":10,"system":"cash"}],"total_amount":1000}`)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCollectDue_HTTP_FalloDePersistenciaEs500(t *testing.T) {
	repo := new(salesRepo)
	repo.On("GetForUpdate", listID).Return(salesFixture(), nil)
	repo.On("AppendPayments", mock.Anything).Return(assert.AnError)

	resp, raw := collect(t, salesApp(repo), `{"payments":[{"amount":10,"system":"cash"}],"total_amount":1000}`)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Contains(t, string(raw), "PERSISTENCE")
	assert.NotContains(t, string(raw), assert.AnError.Error())
}

func TestSalesHTTP_IDMalformadoEs404(t *testing.T) {
	for _, id := range []string{"abc", "1", "0b6a1f5e-8c2d-4e7a-9f31"} {
		repo := new(salesRepo)
		app := salesApp(repo)

		resp, raw := collectOn(t, app, id, `{"payments":[{"amount":10,"system":"cash"}],"total_amount":1000}`)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, "collect id=%q: %s", id, raw)
		assert.Contains(t, string(raw), "NOT_FOUND")

		req := httptest.NewRequest(http.MethodGet, "/api/sales-lists/"+id+"/statement", nil)
		req.Header.Set("Authorization", tokenForRole(t, "staff"))
		st, err := app.Test(req, -1)
		require.NoError(t, err)
		st.Body.Close()
		assert.Equal(t, http.StatusNotFound, st.StatusCode, "statement id=%q", id)

		repo.AssertNotCalled(t, "GetForUpdate", mock.Anything)
		repo.AssertNotCalled(t, "GetByID", mock.Anything)
	}
}

func TestCollectDue_HTTP_CuerpoInvalido(t *testing.T) {
	resp, raw := collect(t, salesApp(new(salesRepo)), `{"payments":`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(raw), "INVALID_BODY")
}

func TestStatement_HTTP_DevuelvePDF(t *testing.T) {
	repo := new(salesRepo)
	repo.On("GetByID", listID).Return(salesFixture(), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/sales-lists/"+listID+"/statement", nil)
	req.Header.Set("Authorization", tokenForRole(t, "staff"))
	resp, err := salesApp(repo).Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "estado-INV-0001.pdf")
	raw, _ := io.ReadAll(resp.Body)
	assert.True(t, strings.HasPrefix(string(raw), "%PDF"))
}
