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

// ExtraCashUseCase movimientos de caja fuera de ventas.
type ExtraCashUseCase struct {
	repo repository.ExtraCashRepository
	loc  *time.Location
}

// NewExtraCashUseCase construye el caso de uso; loc es la zona del libro para la fecha por defecto.
func NewExtraCashUseCase(repo repository.ExtraCashRepository, loc *time.Location) *ExtraCashUseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &ExtraCashUseCase{repo: repo, loc: loc}
}

// Create registra un movimiento. Sin fecha se usa el día actual.
func (uc *ExtraCashUseCase) Create(ctx context.Context, actor entity.Actor, in dto.CreateExtraCashRequest) (*dto.ExtraCashResponse, error) {
	if !in.Amount.IsPositive() {
		return nil, domain.Invalid("amount", "debe ser mayor que cero")
	}
	date, err := uc.parseDate(in.Date)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	cash := &entity.ExtraCash{
		ID:        uuid.New().String(),
		Title:     strings.TrimSpace(in.Title),
		Amount:    in.Amount,
		Type:      in.Type,
		Note:      in.Note,
		Date:      date,
		CreatedBy: actor.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, cash); err != nil {
		return nil, err
	}
	return toExtraCashResponse(cash), nil
}

// GetByID obtiene un movimiento visible para el actor.
func (uc *ExtraCashUseCase) GetByID(ctx context.Context, actor entity.Actor, id string) (*dto.ExtraCashResponse, error) {
	cash, err := uc.load(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	return toExtraCashResponse(cash), nil
}

// Update aplica los campos presentes.
func (uc *ExtraCashUseCase) Update(ctx context.Context, actor entity.Actor, id string, in dto.UpdateExtraCashRequest) (*dto.ExtraCashResponse, error) {
	cash, err := uc.load(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if in.Title != nil {
		cash.Title = strings.TrimSpace(*in.Title)
	}
	if in.Amount != nil {
		if !in.Amount.IsPositive() {
			return nil, domain.Invalid("amount", "debe ser mayor que cero")
		}
		cash.Amount = *in.Amount
	}
	if in.Type != nil {
		cash.Type = *in.Type
	}
	if in.Note != nil {
		cash.Note = *in.Note
	}
	if in.Date != nil {
		date, err := uc.parseDate(*in.Date)
		if err != nil {
			return nil, err
		}
		cash.Date = date
	}
	cash.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, cash); err != nil {
		return nil, err
	}
	return toExtraCashResponse(cash), nil
}

// Delete elimina un movimiento.
func (uc *ExtraCashUseCase) Delete(ctx context.Context, actor entity.Actor, id string) error {
	if _, err := uc.load(ctx, actor, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

// List lista movimientos con el resumen de entradas/salidas de todas las filas que cumplen el filtro.
func (uc *ExtraCashUseCase) List(ctx context.Context, actor entity.Actor, q dto.ListQuery) (*dto.ExtraCashListResponse, error) {
	criteria := query.New(q.Search, actor)
	list, total, err := uc.repo.List(ctx, criteria, repository.PageFor(q.Page))
	if err != nil {
		return nil, err
	}
	in, out, err := uc.repo.Totals(ctx, criteria)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ExtraCashResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toExtraCashResponse(c))
	}
	return &dto.ExtraCashListResponse{
		Items:   items,
		Meta:    pagination.NewMeta(total, q.Page),
		Search:  criteria.Search,
		Summary: dto.CashSummary{In: in, Out: out, Net: in.Sub(out)},
	}, nil
}

func (uc *ExtraCashUseCase) parseDate(s string) (time.Time, error) {
	if strings.TrimSpace(s) == "" {
		now := time.Now().In(uc.loc)
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, uc.loc), nil
	}
	d, err := time.ParseInLocation(entity.LedgerDateLayout, s, uc.loc)
	if err != nil {
		return time.Time{}, domain.Invalid("date", "formato esperado YYYY-MM-DD")
	}
	return d, nil
}

func (uc *ExtraCashUseCase) load(ctx context.Context, actor entity.Actor, id string) (*entity.ExtraCash, error) {
	if !domain.ValidID(id) {
		return nil, domain.ErrNotFound
	}
	cash, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cash == nil || !actor.Owns(cash.CreatedBy) {
		return nil, domain.ErrNotFound
	}
	return cash, nil
}

func toExtraCashResponse(c *entity.ExtraCash) *dto.ExtraCashResponse {
	return &dto.ExtraCashResponse{
		ID:        c.ID,
		Title:     c.Title,
		Amount:    c.Amount,
		Type:      c.Type,
		Note:      c.Note,
		Date:      c.Date.Format(entity.LedgerDateLayout),
		CreatedBy: c.CreatedBy,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
