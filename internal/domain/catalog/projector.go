// Package catalog proyecta agregados de solo lectura sobre categorías y productos.
package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
)

// JoinedAtLayout formato de la fecha de alta en las filas proyectadas.
const JoinedAtLayout = "02 Jan 2006"

// CategoryRow fila derivada de una categoría con sus productos, variantes y stock ya cargados.
type CategoryRow struct {
	ID            string
	Name          string
	ProductsCount int
	TotalStock    decimal.Decimal
	JoinedAt      string
}

// ProjectCategory calcula TotalStock = suma de stock.quantity de todas las variantes.
// Variantes sin registro de stock suman cero.
func ProjectCategory(c *entity.Category) CategoryRow {
	return CategoryRow{
		ID:            c.ID,
		Name:          c.Name,
		ProductsCount: len(c.Products),
		TotalStock:    TotalStock(c.Products),
		JoinedAt:      c.CreatedAt.Format(JoinedAtLayout),
	}
}

// ProjectCategories proyecta cada categoría conservando el orden.
func ProjectCategories(list []*entity.Category) []CategoryRow {
	rows := make([]CategoryRow, 0, len(list))
	for _, c := range list {
		rows = append(rows, ProjectCategory(c))
	}
	return rows
}

// TotalStock suma el stock de las variantes de los productos dados.
func TotalStock(products []*entity.Product) decimal.Decimal {
	total := decimal.Zero
	for _, p := range products {
		total = total.Add(ProductStock(p))
	}
	return total
}

// ProductStock suma el stock de las variantes de un producto.
func ProductStock(p *entity.Product) decimal.Decimal {
	total := decimal.Zero
	if p == nil {
		return total
	}
	for _, v := range p.Variants {
		if v != nil && v.Stock != nil {
			total = total.Add(v.Stock.Quantity)
		}
	}
	return total
}
