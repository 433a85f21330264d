package sales_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/application/sales"
	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/internal/domain/pagination"
	"github.com/jhoicas/Backoffice-api/internal/domain/query"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
	"github.com/jhoicas/Backoffice-api/pkg/logger"
)

const listID = "0b6a1f5e-8c2d-4e7a-9f31-6d2c8b4a7e10"

var dhaka = time.FixedZone("BDT", 6*60*60)

// 20:30 UTC ya es el día siguiente en Dhaka.
func fixedNow() time.Time { return time.Date(2026, 3, 14, 20, 30, 0, 0, time.UTC) }

func staff() entity.Actor { return entity.Actor{ID: "u-1", Role: entity.RoleStaff} }

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func dp(v int64) *decimal.Decimal {
	x := decimal.NewFromInt(v)
	return &x
}

func stored() *entity.SalesList {
	return &entity.SalesList{
		ID:         listID,
		InvoiceNo:  "INV-0001",
		GrandTotal: d(1000),
		PayTotal:   d(200),
		NextDue:    d(800),
		CreatedBy:  "u-1",
	}
}

func newUseCase(repo *MockSalesRepo) (*sales.UseCase, *fakeTx, *fakeStatements) {
	tx := &fakeTx{repo: repo}
	st := &fakeStatements{}
	return sales.NewUseCase(repo, tx, st, logger.Nop(), dhaka, sales.WithClock(fixedNow)), tx, st
}

func line(amount, system string) dto.PaymentLine {
	return dto.PaymentLine{Amount: json.RawMessage(amount), System: system}
}

func TestCollectDue_CobroParcialSePersisteEnUnaTx(t *testing.T) {
	repo := new(MockSalesRepo)
	repo.On("GetForUpdate", listID).Return(stored(), nil)
	repo.On("AppendPayments", mock.MatchedBy(func(es []entity.LedgerEntry) bool {
		return len(es) == 1 && es[0].Amount.Equal(d(300)) && es[0].System == "cash" && es[0].Seq == 1
	})).Return(nil)
	repo.On("UpdateTotals", mock.MatchedBy(func(l *entity.SalesList) bool {
		return l.PayTotal.Equal(d(500)) && l.NextDue.Equal(d(500))
	})).Return(nil)

	uc, tx, _ := newUseCase(repo)
	out, err := uc.CollectDue(context.Background(), staff(), listID, dto.CollectDueRequest{
		Payments:    []dto.PaymentLine{line(`300`, "cash")},
		TotalAmount: dp(1000),
	})
	require.NoError(t, err)

	assert.Equal(t, 1, tx.calls)
	assert.True(t, out.PayTotal.Equal(d(500)))
	assert.True(t, out.NextDue.Equal(d(500)))
	require.Len(t, out.Pay, 1)
	assert.Equal(t, "2026-03-15", out.Pay[0].Date, "la fecha sale en la zona del libro")
	repo.AssertExpectations(t)
}

func TestCollectDue_MontoTextoSeAceptaComoPrefijo(t *testing.T) {
	repo := new(MockSalesRepo)
	repo.On("GetForUpdate", listID).Return(stored(), nil)
	repo.On("AppendPayments", mock.Anything).Return(nil)
	repo.On("UpdateTotals", mock.Anything).Return(nil)

	uc, _, _ := newUseCase(repo)
	out, err := uc.CollectDue(context.Background(), staff(), listID, dto.CollectDueRequest{
		Payments:    []dto.PaymentLine{line(`"150tk"`, "bkash")},
		TotalAmount: dp(1000),
	})
	require.NoError(t, err)
	assert.True(t, out.PayTotal.Equal(d(350)))
}

func TestCollectDue_ExcedidoNoEscribe(t *testing.T) {
	repo := new(MockSalesRepo)
	repo.On("GetForUpdate", listID).Return(stored(), nil)

	uc, _, _ := newUseCase(repo)
	_, err := uc.CollectDue(context.Background(), staff(), listID, dto.CollectDueRequest{
		Payments:    []dto.PaymentLine{line(`900`, "cash")},
		TotalAmount: dp(1000),
	})
	require.ErrorIs(t, err, domain.ErrAmountExceeded)
	assert.False(t, errors.Is(err, domain.ErrPersistence))
	repo.AssertNotCalled(t, "AppendPayments", mock.Anything)
	repo.AssertNotCalled(t, "UpdateTotals", mock.Anything)
}

func TestCollectDue_FalloAlGuardarEsErrorDePersistencia(t *testing.T) {
	repo := new(MockSalesRepo)
	repo.On("GetForUpdate", listID).Return(stored(), nil)
	repo.On("AppendPayments", mock.Anything).Return(nil)
	repo.On("UpdateTotals", mock.Anything).Return(errors.New("conn reset"))

	uc, _, _ := newUseCase(repo)
	out, err := uc.CollectDue(context.Background(), staff(), listID, dto.CollectDueRequest{
		Payments:    []dto.PaymentLine{line(`100`, "cash")},
		TotalAmount: dp(1000),
	})
	assert.Nil(t, out)
	require.ErrorIs(t, err, domain.ErrPersistence)
	assert.Contains(t, err.Error(), "conn reset")
}

func TestCollectDue_ListaDeOtroUsuarioNoExiste(t *testing.T) {
	repo := new(MockSalesRepo)
	other := stored()
	other.CreatedBy = "u-2"
	repo.On("GetForUpdate", listID).Return(other, nil)

	uc, _, _ := newUseCase(repo)
	_, err := uc.CollectDue(context.Background(), staff(), listID, dto.CollectDueRequest{
		Payments:    []dto.PaymentLine{line(`100`, "cash")},
		TotalAmount: dp(1000),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCollectDue_AdminCobraListaAjena(t *testing.T) {
	repo := new(MockSalesRepo)
	repo.On("GetForUpdate", listID).Return(stored(), nil)
	repo.On("AppendPayments", mock.Anything).Return(nil)
	repo.On("UpdateTotals", mock.Anything).Return(nil)

	uc, _, _ := newUseCase(repo)
	out, err := uc.CollectDue(context.Background(), entity.Actor{ID: "admin-1", Role: entity.RoleAdmin}, listID, dto.CollectDueRequest{
		Payments:    []dto.PaymentLine{line(`500`, "cash")},
		TotalAmount: dp(1000),
		ForceSettle: true,
	})
	require.NoError(t, err)
	assert.True(t, out.GrandTotal.Equal(d(700)))
	assert.True(t, out.NextDue.IsZero())
}

func TestCollectDue_MontoAusenteNombraElSistema(t *testing.T) {
	repo := new(MockSalesRepo)
	repo.On("GetForUpdate", listID).Return(stored(), nil)

	uc, _, _ := newUseCase(repo)
	_, err := uc.CollectDue(context.Background(), staff(), listID, dto.CollectDueRequest{
		Payments:    []dto.PaymentLine{{System: "nagad"}},
		TotalAmount: dp(1000),
	})
	require.ErrorIs(t, err, domain.ErrInvalidRequest)
	assert.Contains(t, err.Error(), "nagad")
}

func TestCreate_LibroVacio(t *testing.T) {
	repo := new(MockSalesRepo)
	repo.On("Create", mock.AnythingOfType("*entity.SalesList")).Return(nil)

	uc, _, _ := newUseCase(repo)
	out, err := uc.Create(context.Background(), staff(), dto.CreateSalesListRequest{
		InvoiceNo:  " INV-7 ",
		GrandTotal: d(450),
	})
	require.NoError(t, err)
	assert.Equal(t, "INV-7", out.InvoiceNo)
	assert.True(t, out.PayTotal.IsZero())
	assert.True(t, out.NextDue.Equal(d(450)))
	assert.Empty(t, out.Pay)
	assert.Equal(t, "u-1", out.CreatedBy)
}

func TestList_PasaFiltroYPagina(t *testing.T) {
	repo := new(MockSalesRepo)
	want := query.New("rahim", staff())
	repo.On("List", want, repository.Page{Limit: 10, Offset: 10}).
		Return([]*entity.SalesList{stored()}, 11, nil)

	uc, _, _ := newUseCase(repo)
	out, err := uc.List(context.Background(), staff(), dto.ListQuery{
		Search: "  rahim ",
		Page:   pagination.Request{Page: 2, Path: "/api/sales-lists"},
	})
	require.NoError(t, err)
	assert.Equal(t, "rahim", out.Search)
	assert.Equal(t, 2, out.Meta.CurrentPage)
	assert.Equal(t, 2, out.Meta.LastPage)
	assert.Len(t, out.Items, 1)
}

func TestStatement_UsaElGenerador(t *testing.T) {
	repo := new(MockSalesRepo)
	repo.On("GetByID", listID).Return(stored(), nil)

	uc, _, st := newUseCase(repo)
	pdf, name, err := uc.Statement(context.Background(), staff(), listID)
	require.NoError(t, err)
	assert.Equal(t, "estado-INV-0001.pdf", name)
	assert.NotEmpty(t, pdf)
	require.NotNil(t, st.got)
	assert.Equal(t, listID, st.got.ID)
}
