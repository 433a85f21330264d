package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/internal/domain/query"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
)

var _ repository.DepositRepository = (*DepositRepo)(nil)

const depositColumns = `id, user_id, amount, system, note, status, approved_by, approved_at, created_at, updated_at`

// el dueño de un depósito es quien lo registró (user_id).
var depositTable = query.Table{
	SearchColumns: []string{"system", "note"},
	OwnerColumn:   "user_id",
}

// DepositRepo depósitos de usuarios sobre PostgreSQL.
type DepositRepo struct {
	q Querier
}

// NewDepositRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDepositRepository(q Querier) *DepositRepo {
	return &DepositRepo{q: q}
}

func (r *DepositRepo) Create(ctx context.Context, d *entity.UserDeposit) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO user_deposits (`+depositColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		d.ID, d.UserID, d.Amount, d.System, d.Note, d.Status, nullIfEmpty(d.ApprovedBy), d.ApprovedAt,
		d.CreatedAt, d.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert deposit: %w", err)
	}
	return nil
}

func (r *DepositRepo) GetByID(ctx context.Context, id string) (*entity.UserDeposit, error) {
	return r.get(ctx, `SELECT `+depositColumns+` FROM user_deposits WHERE id = $1`, id)
}

func (r *DepositRepo) GetForUpdate(ctx context.Context, id string) (*entity.UserDeposit, error) {
	return r.get(ctx, `SELECT `+depositColumns+` FROM user_deposits WHERE id = $1 FOR UPDATE`, id)
}

func (r *DepositRepo) get(ctx context.Context, sql, id string) (*entity.UserDeposit, error) {
	d, err := scanDeposit(r.q.QueryRow(ctx, sql, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get deposit: %w", err)
	}
	return d, nil
}

func (r *DepositRepo) List(ctx context.Context, c query.Criteria, page repository.Page) ([]*entity.UserDeposit, int, error) {
	selectSQL, countSQL, args := listSQL(depositColumns, "user_deposits", depositTable, c)

	var total int
	if err := r.q.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count deposits: %w", err)
	}
	rows, err := r.q.Query(ctx, selectSQL, pageArgs(args, page)...)
	if err != nil {
		return nil, 0, fmt.Errorf("list deposits: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.UserDeposit, 0, page.Limit)
	for rows.Next() {
		d, err := scanDeposit(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan deposit: %w", err)
		}
		list = append(list, d)
	}
	return list, total, rows.Err()
}

// MarkApproved pasa el depósito a approved. No comprueba el estado previo.
func (r *DepositRepo) MarkApproved(ctx context.Context, id, approvedBy string, at time.Time) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE user_deposits SET status = $2, approved_by = $3, approved_at = $4, updated_at = $4 WHERE id = $1`,
		id, entity.DepositApproved, approvedBy, at,
	)
	if err != nil {
		return fmt.Errorf("approve deposit: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanDeposit(row interface{ Scan(...any) error }) (*entity.UserDeposit, error) {
	var d entity.UserDeposit
	var approvedBy *string
	err := row.Scan(&d.ID, &d.UserID, &d.Amount, &d.System, &d.Note, &d.Status, &approvedBy, &d.ApprovedAt,
		&d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if approvedBy != nil {
		d.ApprovedBy = *approvedBy
	}
	return &d, nil
}
