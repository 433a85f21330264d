package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Roles válidos para User.
const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// User representa un usuario del back-office.
type User struct {
	ID           string
	Name         string
	Email        string
	Phone        string
	PasswordHash string          // bcrypt hash, nunca plano en dominio después de persistir
	Role         string          // admin, staff
	Status       string          // active, inactive
	TotalDeposit decimal.Decimal // acumulado de depósitos aprobados
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
