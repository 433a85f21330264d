package entity

import "time"

// Company representa una empresa proveedora o marca con la que trabaja la tienda.
type Company struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Address   string
	LogoPath  string // ruta relativa dentro del storage; vacío si no tiene logo
	Status    string // active, inactive
	CreatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time
}
