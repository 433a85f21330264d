package dto

import (
	"time"

	"github.com/jhoicas/Backoffice-api/internal/domain/pagination"
)

// CreateCompanyRequest entrada para crear una empresa.
type CreateCompanyRequest struct {
	Name    string `json:"name" form:"name" validate:"required,min=1,max=200"`
	Email   string `json:"email" form:"email" validate:"omitempty,email"`
	Phone   string `json:"phone" form:"phone" validate:"omitempty,max=30"`
	Address string `json:"address" form:"address" validate:"omitempty,max=500"`
}

// UpdateCompanyRequest entrada para actualizar una empresa; sólo se aplican los campos presentes.
type UpdateCompanyRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1,max=200"`
	Email   *string `json:"email" validate:"omitempty,email"`
	Phone   *string `json:"phone" validate:"omitempty,max=30"`
	Address *string `json:"address" validate:"omitempty,max=500"`
	Status  *string `json:"status" validate:"omitempty,oneof=active inactive"`
}

// CompanyResponse salida de una empresa.
type CompanyResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	LogoPath  string    `json:"logo_path,omitempty"`
	Status    string    `json:"status"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CompanyListResponse lista paginada de empresas.
type CompanyListResponse struct {
	Items  []CompanyResponse `json:"data"`
	Meta   pagination.Meta   `json:"meta"`
	Search string            `json:"search"`
}
