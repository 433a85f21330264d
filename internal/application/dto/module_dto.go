package dto

import (
	"time"

	"github.com/jhoicas/Backoffice-api/internal/domain/pagination"
)

// SaveModuleRequest campos de un módulo.
type SaveModuleRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=150"`
	Description string `json:"description" validate:"omitempty,max=1000"`
	Status      string `json:"status" validate:"omitempty,oneof=active inactive"`
}

// ModuleResponse salida de un módulo.
type ModuleResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ModuleListResponse lista paginada de módulos.
type ModuleListResponse struct {
	Items  []ModuleResponse `json:"data"`
	Meta   pagination.Meta  `json:"meta"`
	Search string           `json:"search"`
}
