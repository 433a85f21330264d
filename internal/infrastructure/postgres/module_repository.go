package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/internal/domain/query"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
)

var _ repository.ModuleRepository = (*ModuleRepo)(nil)

const moduleColumns = `id, name, description, status, created_by, created_at, updated_at`

var moduleTable = query.Table{
	SearchColumns: []string{"name", "description"},
	OwnerColumn:   "created_by",
}

// ModuleRepo implementación del puerto ModuleRepository sobre PostgreSQL.
type ModuleRepo struct {
	q Querier
}

// NewModuleRepository construye el adaptador.
func NewModuleRepository(q Querier) *ModuleRepo {
	return &ModuleRepo{q: q}
}

func (r *ModuleRepo) Create(ctx context.Context, m *entity.Module) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO modules (`+moduleColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		m.ID, m.Name, m.Description, m.Status, m.CreatedBy, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert module: %w", err)
	}
	return nil
}

func (r *ModuleRepo) GetByID(ctx context.Context, id string) (*entity.Module, error) {
	m, err := scanModule(r.q.QueryRow(ctx, `SELECT `+moduleColumns+` FROM modules WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get module: %w", err)
	}
	return m, nil
}

// GetByName busca por nombre sin distinguir mayúsculas; nil si no existe.
func (r *ModuleRepo) GetByName(ctx context.Context, name string) (*entity.Module, error) {
	m, err := scanModule(r.q.QueryRow(ctx,
		`SELECT `+moduleColumns+` FROM modules WHERE lower(name) = lower($1) ORDER BY created_at LIMIT 1`, name))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get module by name: %w", err)
	}
	return m, nil
}

func (r *ModuleRepo) Update(ctx context.Context, m *entity.Module) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE modules SET name = $2, description = $3, status = $4, updated_at = $5 WHERE id = $1`,
		m.ID, m.Name, m.Description, m.Status, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update module: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ModuleRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM modules WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete module: %w", err)
	}
	return nil
}

func (r *ModuleRepo) List(ctx context.Context, c query.Criteria, page repository.Page) ([]*entity.Module, int, error) {
	selectSQL, countSQL, args := listSQL(moduleColumns, "modules", moduleTable, c)

	var total int
	if err := r.q.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count modules: %w", err)
	}
	rows, err := r.q.Query(ctx, selectSQL, pageArgs(args, page)...)
	if err != nil {
		return nil, 0, fmt.Errorf("list modules: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.Module, 0, page.Limit)
	for rows.Next() {
		m, err := scanModule(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan module: %w", err)
		}
		list = append(list, m)
	}
	return list, total, rows.Err()
}

func scanModule(row interface{ Scan(...any) error }) (*entity.Module, error) {
	var m entity.Module
	if err := row.Scan(&m.ID, &m.Name, &m.Description, &m.Status, &m.CreatedBy, &m.CreatedAt, &m.UpdatedAt); err != nil {
		return nil, err
	}
	return &m, nil
}
