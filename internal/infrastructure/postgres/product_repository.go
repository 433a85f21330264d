package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/internal/domain/query"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, category_id, COALESCE(company_id::text, ''), sku, name, description, price, status, created_by, created_at, updated_at`

var productTable = query.Table{
	SearchColumns: []string{"name", "description", "sku"},
	OwnerColumn:   "created_by",
}

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste el producto, sus variantes y el stock inicial. Debe correr dentro de una tx.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO products (id, category_id, company_id, sku, name, description, price, status, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		p.ID, p.CategoryID, nullIfEmpty(p.CompanyID), p.SKU, p.Name, p.Description, p.Price,
		p.Status, p.CreatedBy, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.Invalid("category_id", "referencia inexistente")
		}
		return fmt.Errorf("insert product: %w", err)
	}

	for _, v := range p.Variants {
		_, err := r.q.Exec(ctx, `
			INSERT INTO product_variants (id, product_id, size, color, sku, price, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			v.ID, p.ID, v.Size, v.Color, v.SKU, v.Price, v.CreatedAt, v.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert variant: %w", err)
		}
		if v.Stock == nil {
			continue
		}
		_, err = r.q.Exec(ctx,
			`INSERT INTO stocks (variant_id, quantity, updated_at) VALUES ($1, $2, $3)`,
			v.ID, v.Stock.Quantity, v.Stock.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert stock: %w", err)
		}
	}
	return nil
}

// GetByID obtiene el producto con variantes y stock; nil si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	list, err := loadProducts(ctx, r.q, `id = $1`, id)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, nil
	}
	return list[0], nil
}

// Update actualiza los datos del producto. Variantes y stock van por SetStock.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE products SET category_id = $2, company_id = $3, name = $4, description = $5, price = $6, status = $7, updated_at = $8
		WHERE id = $1`,
		p.ID, p.CategoryID, nullIfEmpty(p.CompanyID), p.Name, p.Description, p.Price, p.Status, p.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.Invalid("category_id", "referencia inexistente")
		}
		return fmt.Errorf("update product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

// List devuelve la página de productos (con variantes y stock) y el total.
func (r *ProductRepo) List(ctx context.Context, c query.Criteria, page repository.Page) ([]*entity.Product, int, error) {
	selectSQL, countSQL, args := listSQL(productColumns, "products", productTable, c)

	var total int
	if err := r.q.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}
	list, err := queryProducts(ctx, r.q, selectSQL, pageArgs(args, page)...)
	if err != nil {
		return nil, 0, err
	}
	if err := attachVariants(ctx, r.q, list); err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// SetStock fija la cantidad de la variante; crea la fila de stock si no existía.
func (r *ProductRepo) SetStock(ctx context.Context, productID, variantID string, quantity decimal.Decimal) error {
	cmd, err := r.q.Exec(ctx, `
		INSERT INTO stocks (variant_id, quantity, updated_at)
		SELECT v.id, $3, $4 FROM product_variants v WHERE v.id = $2 AND v.product_id = $1
		ON CONFLICT (variant_id) DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = EXCLUDED.updated_at`,
		productID, variantID, quantity, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("set stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// loadProducts carga los productos que cumplen cond (con un único argumento $1) y sus variantes.
func loadProducts(ctx context.Context, q Querier, cond string, arg any) ([]*entity.Product, error) {
	list, err := queryProducts(ctx, q,
		`SELECT `+productColumns+` FROM products WHERE `+cond+` ORDER BY created_at, id`, arg)
	if err != nil {
		return nil, err
	}
	if err := attachVariants(ctx, q, list); err != nil {
		return nil, err
	}
	return list, nil
}

func queryProducts(ctx context.Context, q Querier, sql string, args ...any) ([]*entity.Product, error) {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.CategoryID, &p.CompanyID, &p.SKU, &p.Name, &p.Description, &p.Price,
			&p.Status, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// attachVariants carga en una sola consulta las variantes (con su stock, si tienen) de los productos dados.
func attachVariants(ctx context.Context, q Querier, products []*entity.Product) error {
	if len(products) == 0 {
		return nil
	}
	byID := make(map[string]*entity.Product, len(products))
	ids := make([]string, 0, len(products))
	for _, p := range products {
		byID[p.ID] = p
		ids = append(ids, p.ID)
	}

	rows, err := q.Query(ctx, `
		SELECT v.id, v.product_id, v.size, v.color, v.sku, v.price, v.created_at, v.updated_at,
		       s.quantity, s.updated_at
		  FROM product_variants v
		  LEFT JOIN stocks s ON s.variant_id = v.id
		 WHERE v.product_id = ANY($1)
		 ORDER BY v.created_at, v.id`, ids)
	if err != nil {
		return fmt.Errorf("list variants: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var v entity.Variant
		var qty decimal.NullDecimal
		var stockAt *time.Time
		if err := rows.Scan(&v.ID, &v.ProductID, &v.Size, &v.Color, &v.SKU, &v.Price, &v.CreatedAt, &v.UpdatedAt,
			&qty, &stockAt); err != nil {
			return fmt.Errorf("scan variant: %w", err)
		}
		if qty.Valid {
			v.Stock = &entity.Stock{VariantID: v.ID, Quantity: qty.Decimal}
			if stockAt != nil {
				v.Stock.UpdatedAt = *stockAt
			}
		}
		if p := byID[v.ProductID]; p != nil {
			p.Variants = append(p.Variants, &v)
		}
	}
	return rows.Err()
}
