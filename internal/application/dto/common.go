package dto

import "github.com/jhoicas/Backoffice-api/internal/domain/pagination"

// ListQuery parámetros comunes de los listados: búsqueda libre y página.
type ListQuery struct {
	Search string
	Page   pagination.Request
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// MessageResponse confirmación simple (equivalente al mensaje flash de éxito).
type MessageResponse struct {
	Message string `json:"message"`
}
