package entity

import "time"

// Category representa una categoría (sector) de productos.
// Products se carga sólo cuando se necesita el agregado de stock.
type Category struct {
	ID          string
	Name        string
	Description string
	Status      string // active, inactive
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Products    []*Product
}
