package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/internal/domain/query"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
)

var _ repository.SalesListRepository = (*SalesListRepo)(nil)

const salesListColumns = `id, invoice_no, customer_name, customer_phone, grandtotal, paytotal, nextdue, note, created_by, created_at, updated_at`

var salesListTable = query.Table{
	SearchColumns: []string{"invoice_no", "customer_name", "customer_phone"},
	OwnerColumn:   "created_by",
}

// SalesListRepo listas de venta y su libro de pagos (sales_list_payments) sobre PostgreSQL.
type SalesListRepo struct {
	q Querier
}

// NewSalesListRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSalesListRepository(q Querier) *SalesListRepo {
	return &SalesListRepo{q: q}
}

func (r *SalesListRepo) Create(ctx context.Context, l *entity.SalesList) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO sales_lists (`+salesListColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		l.ID, l.InvoiceNo, l.CustomerName, l.CustomerPhone, l.GrandTotal, l.PayTotal, l.NextDue,
		l.Note, l.CreatedBy, l.CreatedAt, l.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert sales list: %w", err)
	}
	return nil
}

func (r *SalesListRepo) GetByID(ctx context.Context, id string) (*entity.SalesList, error) {
	return r.get(ctx, `SELECT `+salesListColumns+` FROM sales_lists WHERE id = $1`, id)
}

// GetForUpdate bloquea la fila de la venta hasta el fin de la tx. Los pagos no se bloquean: sólo se insertan.
func (r *SalesListRepo) GetForUpdate(ctx context.Context, id string) (*entity.SalesList, error) {
	return r.get(ctx, `SELECT `+salesListColumns+` FROM sales_lists WHERE id = $1 FOR UPDATE`, id)
}

func (r *SalesListRepo) get(ctx context.Context, sql, id string) (*entity.SalesList, error) {
	l, err := scanSalesList(r.q.QueryRow(ctx, sql, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sales list: %w", err)
	}
	if err := r.attachPayments(ctx, []*entity.SalesList{l}); err != nil {
		return nil, err
	}
	return l, nil
}

func (r *SalesListRepo) List(ctx context.Context, c query.Criteria, page repository.Page) ([]*entity.SalesList, int, error) {
	selectSQL, countSQL, args := listSQL(salesListColumns, "sales_lists", salesListTable, c)

	var total int
	if err := r.q.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count sales lists: %w", err)
	}
	rows, err := r.q.Query(ctx, selectSQL, pageArgs(args, page)...)
	if err != nil {
		return nil, 0, fmt.Errorf("list sales lists: %w", err)
	}
	list := make([]*entity.SalesList, 0, page.Limit)
	for rows.Next() {
		l, err := scanSalesList(rows)
		if err != nil {
			rows.Close()
			return nil, 0, fmt.Errorf("scan sales list: %w", err)
		}
		list = append(list, l)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list sales lists: %w", err)
	}
	if err := r.attachPayments(ctx, list); err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// AppendPayments inserta las líneas nuevas del libro. La PK (sales_list_id, seq) rechaza duplicados.
func (r *SalesListRepo) AppendPayments(ctx context.Context, entries []entity.LedgerEntry) error {
	for _, e := range entries {
		_, err := r.q.Exec(ctx, `
			INSERT INTO sales_list_payments (sales_list_id, seq, amount, system, paid_on, created_by, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			e.SalesListID, e.Seq, e.Amount, e.System, e.Date.Format(entity.LedgerDateLayout), e.CreatedBy, e.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert payment %d: %w", e.Seq, err)
		}
	}
	return nil
}

// UpdateTotals guarda paytotal, grandtotal y nextdue.
func (r *SalesListRepo) UpdateTotals(ctx context.Context, l *entity.SalesList) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE sales_lists SET grandtotal = $2, paytotal = $3, nextdue = $4, updated_at = $5 WHERE id = $1`,
		l.ID, l.GrandTotal, l.PayTotal, l.NextDue, l.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update sales list totals: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *SalesListRepo) attachPayments(ctx context.Context, lists []*entity.SalesList) error {
	if len(lists) == 0 {
		return nil
	}
	byID := make(map[string]*entity.SalesList, len(lists))
	ids := make([]string, 0, len(lists))
	for _, l := range lists {
		byID[l.ID] = l
		ids = append(ids, l.ID)
	}

	rows, err := r.q.Query(ctx, `
		SELECT sales_list_id, seq, amount, system, paid_on, created_by, created_at
		  FROM sales_list_payments
		 WHERE sales_list_id = ANY($1)
		 ORDER BY sales_list_id, seq`, ids)
	if err != nil {
		return fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var e entity.LedgerEntry
		if err := rows.Scan(&e.SalesListID, &e.Seq, &e.Amount, &e.System, &e.Date, &e.CreatedBy, &e.CreatedAt); err != nil {
			return fmt.Errorf("scan payment: %w", err)
		}
		if l := byID[e.SalesListID]; l != nil {
			l.Pay = append(l.Pay, e)
		}
	}
	return rows.Err()
}

func scanSalesList(row interface{ Scan(...any) error }) (*entity.SalesList, error) {
	var l entity.SalesList
	err := row.Scan(&l.ID, &l.InvoiceNo, &l.CustomerName, &l.CustomerPhone, &l.GrandTotal, &l.PayTotal,
		&l.NextDue, &l.Note, &l.CreatedBy, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &l, nil
}
