package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/internal/domain/query"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

const categoryColumns = `id, name, description, status, created_by, created_at, updated_at`

var categoryTable = query.Table{
	SearchColumns: []string{"name", "description"},
	OwnerColumn:   "created_by",
}

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL.
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// Create persiste una nueva categoría.
func (r *CategoryRepo) Create(ctx context.Context, c *entity.Category) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO categories (`+categoryColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		c.ID, c.Name, c.Description, c.Status, c.CreatedBy, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría sin sus productos; nil si no existe.
func (r *CategoryRepo) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	c, err := scanCategory(r.q.QueryRow(ctx, `SELECT `+categoryColumns+` FROM categories WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return c, nil
}

// Update actualiza nombre, descripción y estado.
func (r *CategoryRepo) Update(ctx context.Context, c *entity.Category) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE categories SET name = $2, description = $3, status = $4, updated_at = $5 WHERE id = $1`,
		c.ID, c.Name, c.Description, c.Status, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina la categoría; sus productos caen en cascada.
func (r *CategoryRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

// ListWithStock devuelve la página filtrada con productos, variantes y stock cargados
// en dos consultas adicionales (sin N+1).
func (r *CategoryRepo) ListWithStock(ctx context.Context, c query.Criteria, page repository.Page) ([]*entity.Category, int, error) {
	selectSQL, countSQL, args := listSQL(categoryColumns, "categories", categoryTable, c)

	var total int
	if err := r.q.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count categories: %w", err)
	}
	rows, err := r.q.Query(ctx, selectSQL, pageArgs(args, page)...)
	if err != nil {
		return nil, 0, fmt.Errorf("list categories: %w", err)
	}
	list := make([]*entity.Category, 0, page.Limit)
	byID := make(map[string]*entity.Category)
	ids := make([]string, 0, page.Limit)
	for rows.Next() {
		cat, err := scanCategory(rows)
		if err != nil {
			rows.Close()
			return nil, 0, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, cat)
		byID[cat.ID] = cat
		ids = append(ids, cat.ID)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list categories: %w", err)
	}
	if len(ids) == 0 {
		return list, total, nil
	}

	products, err := loadProducts(ctx, r.q, `category_id = ANY($1)`, ids)
	if err != nil {
		return nil, 0, err
	}
	for _, p := range products {
		if cat := byID[p.CategoryID]; cat != nil {
			cat.Products = append(cat.Products, p)
		}
	}
	return list, total, nil
}

func scanCategory(row interface{ Scan(...any) error }) (*entity.Category, error) {
	var c entity.Category
	if err := row.Scan(&c.ID, &c.Name, &c.Description, &c.Status, &c.CreatedBy, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}
