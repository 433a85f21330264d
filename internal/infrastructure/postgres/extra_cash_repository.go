package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/internal/domain/query"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
)

var _ repository.ExtraCashRepository = (*ExtraCashRepo)(nil)

const extraCashColumns = `id, title, amount, type, note, date, created_by, created_at, updated_at`

var extraCashTable = query.Table{
	SearchColumns: []string{"title", "note"},
	OwnerColumn:   "created_by",
}

// ExtraCashRepo movimientos de caja sobre PostgreSQL.
type ExtraCashRepo struct {
	q Querier
}

// NewExtraCashRepository construye el adaptador.
func NewExtraCashRepository(q Querier) *ExtraCashRepo {
	return &ExtraCashRepo{q: q}
}

func (r *ExtraCashRepo) Create(ctx context.Context, e *entity.ExtraCash) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO extra_cash (`+extraCashColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		e.ID, e.Title, e.Amount, e.Type, e.Note, e.Date.Format(entity.LedgerDateLayout), e.CreatedBy, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert extra cash: %w", err)
	}
	return nil
}

func (r *ExtraCashRepo) GetByID(ctx context.Context, id string) (*entity.ExtraCash, error) {
	e, err := scanExtraCash(r.q.QueryRow(ctx, `SELECT `+extraCashColumns+` FROM extra_cash WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get extra cash: %w", err)
	}
	return e, nil
}

func (r *ExtraCashRepo) Update(ctx context.Context, e *entity.ExtraCash) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE extra_cash SET title = $2, amount = $3, type = $4, note = $5, date = $6, updated_at = $7 WHERE id = $1`,
		e.ID, e.Title, e.Amount, e.Type, e.Note, e.Date.Format(entity.LedgerDateLayout), e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update extra cash: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ExtraCashRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM extra_cash WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete extra cash: %w", err)
	}
	return nil
}

func (r *ExtraCashRepo) List(ctx context.Context, c query.Criteria, page repository.Page) ([]*entity.ExtraCash, int, error) {
	selectSQL, countSQL, args := listSQL(extraCashColumns, "extra_cash", extraCashTable, c)

	var total int
	if err := r.q.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count extra cash: %w", err)
	}
	rows, err := r.q.Query(ctx, selectSQL, pageArgs(args, page)...)
	if err != nil {
		return nil, 0, fmt.Errorf("list extra cash: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.ExtraCash, 0, page.Limit)
	for rows.Next() {
		e, err := scanExtraCash(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan extra cash: %w", err)
		}
		list = append(list, e)
	}
	return list, total, rows.Err()
}

// Totals suma entradas y salidas de todas las filas visibles con el filtro.
func (r *ExtraCashRepo) Totals(ctx context.Context, c query.Criteria) (in, out decimal.Decimal, err error) {
	where, args := c.Where(extraCashTable, 1)
	err = r.q.QueryRow(ctx, `
		SELECT COALESCE(SUM(amount) FILTER (WHERE type = 'in'), 0),
		       COALESCE(SUM(amount) FILTER (WHERE type = 'out'), 0)
		  FROM extra_cash WHERE `+where, args...).Scan(&in, &out)
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("extra cash totals: %w", err)
	}
	return in, out, nil
}

func scanExtraCash(row interface{ Scan(...any) error }) (*entity.ExtraCash, error) {
	var e entity.ExtraCash
	if err := row.Scan(&e.ID, &e.Title, &e.Amount, &e.Type, &e.Note, &e.Date, &e.CreatedBy, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, err
	}
	return &e, nil
}
