// Package sales casos de uso de listas de venta con cobro parcial.
package sales

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/internal/domain/ledger"
	"github.com/jhoicas/Backoffice-api/internal/domain/pagination"
	"github.com/jhoicas/Backoffice-api/internal/domain/query"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
	"github.com/jhoicas/Backoffice-api/pkg/logger"
)

// UseCase registra ventas y aplica cobros sobre su libro de pagos.
type UseCase struct {
	repo       repository.SalesListRepository
	tx         SalesTxRunner
	statements StatementGenerator
	log        *logger.Logger
	loc        *time.Location
	now        func() time.Time
}

// Option ajusta el caso de uso al construirlo.
type Option func(*UseCase)

// WithClock reemplaza el reloj (tests).
func WithClock(now func() time.Time) Option {
	return func(uc *UseCase) { uc.now = now }
}

// NewUseCase construye el caso de uso. loc es la zona horaria del libro de pagos.
func NewUseCase(repo repository.SalesListRepository, tx SalesTxRunner, statements StatementGenerator, log *logger.Logger, loc *time.Location, opts ...Option) *UseCase {
	if log == nil {
		log = logger.Nop()
	}
	if loc == nil {
		loc = time.UTC
	}
	uc := &UseCase{
		repo:       repo,
		tx:         tx,
		statements: statements,
		log:        log.Named("sales"),
		loc:        loc,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Create registra una venta con el libro vacío: paytotal 0 y nextdue = grandtotal.
func (uc *UseCase) Create(ctx context.Context, actor entity.Actor, in dto.CreateSalesListRequest) (*dto.SalesListResponse, error) {
	if in.GrandTotal.IsNegative() {
		return nil, domain.Invalid("grandtotal", "no puede ser negativo")
	}
	now := uc.now().In(uc.loc)
	list := &entity.SalesList{
		ID:            uuid.New().String(),
		InvoiceNo:     strings.TrimSpace(in.InvoiceNo),
		CustomerName:  strings.TrimSpace(in.CustomerName),
		CustomerPhone: strings.TrimSpace(in.CustomerPhone),
		GrandTotal:    in.GrandTotal,
		PayTotal:      decimal.Zero,
		NextDue:       in.GrandTotal,
		Note:          in.Note,
		CreatedBy:     actor.ID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(ctx, list); err != nil {
		return nil, err
	}
	return ToSalesListResponse(list), nil
}

// Get devuelve la venta con su libro de pagos.
func (uc *UseCase) Get(ctx context.Context, actor entity.Actor, id string) (*dto.SalesListResponse, error) {
	list, err := uc.load(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	return ToSalesListResponse(list), nil
}

// List lista ventas filtradas y paginadas.
func (uc *UseCase) List(ctx context.Context, actor entity.Actor, q dto.ListQuery) (*dto.SalesListListResponse, error) {
	criteria := query.New(q.Search, actor)
	lists, total, err := uc.repo.List(ctx, criteria, repository.PageFor(q.Page))
	if err != nil {
		return nil, err
	}
	items := make([]dto.SalesListResponse, 0, len(lists))
	for _, l := range lists {
		items = append(items, *ToSalesListResponse(l))
	}
	return &dto.SalesListListResponse{
		Items:  items,
		Meta:   pagination.NewMeta(total, q.Page),
		Search: criteria.Search,
	}, nil
}

// CollectDue aplica un cobro parcial. Lectura, validación y escritura ocurren en una sola tx
// con la fila bloqueada; cualquier fallo deja la venta como estaba.
func (uc *UseCase) CollectDue(ctx context.Context, actor entity.Actor, id string, in dto.CollectDueRequest) (*dto.SalesListResponse, error) {
	if !domain.ValidID(id) {
		return nil, domain.ErrNotFound
	}
	req := ledger.Request{
		Payments:    make([]ledger.Payment, 0, len(in.Payments)),
		TotalAmount: in.TotalAmount,
		ForceSettle: in.ForceSettle,
	}
	for _, p := range in.Payments {
		req.Payments = append(req.Payments, ledger.Payment{Amount: p.AmountText(), System: p.System})
	}

	var updated entity.SalesList
	var paid decimal.Decimal
	err := uc.tx.RunSales(ctx, func(repo repository.SalesListRepository) error {
		list, err := repo.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if list == nil || !actor.Owns(list.CreatedBy) {
			return domain.ErrNotFound
		}
		res, err := ledger.ApplyPayments(*list, req, uc.now().In(uc.loc), actor.ID)
		if err != nil {
			return err
		}
		if len(res.Added) > 0 {
			if err := repo.AppendPayments(ctx, res.Added); err != nil {
				return err
			}
		}
		if err := repo.UpdateTotals(ctx, &res.List); err != nil {
			return err
		}
		updated = res.List
		paid = res.Paid
		return nil
	})
	if err != nil {
		if domain.IsBusiness(err) {
			uc.log.Warn().Err(err).Str("sales_list_id", id).Str("actor_id", actor.ID).Msg("cobro rechazado")
			return nil, err
		}
		uc.log.Error().Err(err).Str("sales_list_id", id).Msg("no se pudo guardar el cobro")
		if errors.Is(err, domain.ErrPersistence) {
			return nil, err
		}
		return nil, domain.Persistence(err)
	}

	uc.log.Info().
		Str("sales_list_id", id).
		Str("actor_id", actor.ID).
		Int("payments", len(req.Payments)).
		Str("paid", paid.String()).
		Str("paytotal", updated.PayTotal.String()).
		Str("nextdue", updated.NextDue.String()).
		Bool("force_settle", in.ForceSettle).
		Msg("cobro aplicado")
	return ToSalesListResponse(&updated), nil
}

// Statement genera el PDF del estado de cuenta.
func (uc *UseCase) Statement(ctx context.Context, actor entity.Actor, id string) ([]byte, string, error) {
	list, err := uc.load(ctx, actor, id)
	if err != nil {
		return nil, "", err
	}
	pdf, err := uc.statements.GenerateStatement(list)
	if err != nil {
		return nil, "", err
	}
	return pdf, "estado-" + list.InvoiceNo + ".pdf", nil
}

func (uc *UseCase) load(ctx context.Context, actor entity.Actor, id string) (*entity.SalesList, error) {
	if !domain.ValidID(id) {
		return nil, domain.ErrNotFound
	}
	list, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if list == nil || !actor.Owns(list.CreatedBy) {
		return nil, domain.ErrNotFound
	}
	return list, nil
}

// ToSalesListResponse expone la venta con el libro en el formato {pay, paytotal, grandtotal, nextdue}.
func ToSalesListResponse(l *entity.SalesList) *dto.SalesListResponse {
	pay := make([]dto.LedgerEntryResponse, 0, len(l.Pay))
	for _, e := range l.Pay {
		pay = append(pay, dto.LedgerEntryResponse{
			Amount: e.Amount,
			System: e.System,
			Date:   e.Date.Format(entity.LedgerDateLayout),
		})
	}
	return &dto.SalesListResponse{
		ID:            l.ID,
		InvoiceNo:     l.InvoiceNo,
		CustomerName:  l.CustomerName,
		CustomerPhone: l.CustomerPhone,
		Note:          l.Note,
		Pay:           pay,
		PayTotal:      l.PayTotal,
		GrandTotal:    l.GrandTotal,
		NextDue:       l.NextDue,
		CreatedBy:     l.CreatedBy,
		CreatedAt:     l.CreatedAt,
		UpdatedAt:     l.UpdatedAt,
	}
}
