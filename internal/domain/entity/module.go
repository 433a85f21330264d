package entity

import "time"

// Module representa un módulo (sección) del back-office que se puede listar y describir.
type Module struct {
	ID          string
	Name        string
	Description string
	Status      string
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
