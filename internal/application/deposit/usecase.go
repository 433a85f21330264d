// Package deposit casos de uso de depósitos de efectivo de los usuarios.
package deposit

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/internal/domain/pagination"
	"github.com/jhoicas/Backoffice-api/internal/domain/query"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
	"github.com/jhoicas/Backoffice-api/pkg/logger"
)

// DepositTxRunner ejecuta una función en una transacción con los repositorios de depósitos y usuarios.
type DepositTxRunner interface {
	RunDeposits(ctx context.Context, fn func(deposits repository.DepositRepository, users repository.UserRepository) error) error
}

// UseCase registra depósitos y los aprueba.
type UseCase struct {
	repo repository.DepositRepository
	tx   DepositTxRunner
	log  *logger.Logger
	now  func() time.Time
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.DepositRepository, tx DepositTxRunner, log *logger.Logger) *UseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &UseCase{repo: repo, tx: tx, log: log.Named("deposit"), now: time.Now}
}

// Create registra un depósito pendiente a nombre del actor.
func (uc *UseCase) Create(ctx context.Context, actor entity.Actor, in dto.CreateDepositRequest) (*dto.DepositResponse, error) {
	if !in.Amount.IsPositive() {
		return nil, domain.Invalid("amount", "debe ser mayor que cero")
	}
	now := uc.now()
	d := &entity.UserDeposit{
		ID:        uuid.New().String(),
		UserID:    actor.ID,
		Amount:    in.Amount,
		System:    strings.TrimSpace(in.System),
		Note:      in.Note,
		Status:    entity.DepositPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, d); err != nil {
		return nil, err
	}
	return ToDepositResponse(d), nil
}

// List lista depósitos; un usuario no admin sólo ve los suyos.
func (uc *UseCase) List(ctx context.Context, actor entity.Actor, q dto.ListQuery) (*dto.DepositListResponse, error) {
	criteria := query.New(q.Search, actor)
	list, total, err := uc.repo.List(ctx, criteria, repository.PageFor(q.Page))
	if err != nil {
		return nil, err
	}
	items := make([]dto.DepositResponse, 0, len(list))
	for _, d := range list {
		items = append(items, *ToDepositResponse(d))
	}
	return &dto.DepositListResponse{
		Items:  items,
		Meta:   pagination.NewMeta(total, q.Page),
		Search: criteria.Search,
	}, nil
}

// Approve marca el depósito como aprobado y suma su monto al acumulado del usuario, todo en una tx.
// Aprobar de nuevo un depósito ya aprobado vuelve a acreditarlo; queda registrado como advertencia.
func (uc *UseCase) Approve(ctx context.Context, actor entity.Actor, id string) (*dto.DepositResponse, error) {
	if !domain.ValidID(id) {
		return nil, domain.ErrNotFound
	}
	var approved entity.UserDeposit
	err := uc.tx.RunDeposits(ctx, func(deposits repository.DepositRepository, users repository.UserRepository) error {
		d, err := deposits.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if d == nil {
			return domain.ErrNotFound
		}
		if d.Status == entity.DepositApproved {
			uc.log.Warn().
				Str("deposit_id", d.ID).
				Str("user_id", d.UserID).
				Str("amount", d.Amount.String()).
				Msg("depósito ya aprobado; se acredita otra vez")
		}
		at := uc.now()
		if err := deposits.MarkApproved(ctx, d.ID, actor.ID, at); err != nil {
			return err
		}
		if err := users.AddDeposit(ctx, d.UserID, d.Amount); err != nil {
			return err
		}
		d.Status = entity.DepositApproved
		d.ApprovedBy = actor.ID
		d.ApprovedAt = &at
		d.UpdatedAt = at
		approved = *d
		return nil
	})
	if err != nil {
		if domain.IsBusiness(err) {
			return nil, err
		}
		uc.log.Error().Err(err).Str("deposit_id", id).Msg("no se pudo aprobar el depósito")
		if errors.Is(err, domain.ErrPersistence) {
			return nil, err
		}
		return nil, domain.Persistence(err)
	}
	uc.log.Info().
		Str("deposit_id", approved.ID).
		Str("user_id", approved.UserID).
		Str("approved_by", actor.ID).
		Str("amount", approved.Amount.String()).
		Msg("depósito aprobado")
	return ToDepositResponse(&approved), nil
}

// ToDepositResponse convierte la entidad a su salida.
func ToDepositResponse(d *entity.UserDeposit) *dto.DepositResponse {
	return &dto.DepositResponse{
		ID:         d.ID,
		UserID:     d.UserID,
		Amount:     d.Amount,
		System:     d.System,
		Note:       d.Note,
		Status:     d.Status,
		ApprovedBy: d.ApprovedBy,
		ApprovedAt: d.ApprovedAt,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}
