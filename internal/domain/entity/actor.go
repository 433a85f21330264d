package entity

// Actor es el usuario autenticado que hace la petición (id + rol tomados del token).
type Actor struct {
	ID   string
	Role string
}

// IsAdmin informa si el actor ve todas las filas sin restricción de dueño.
func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// Owns informa si el actor puede operar sobre una fila creada por createdBy.
func (a Actor) Owns(createdBy string) bool {
	return a.IsAdmin() || (a.ID != "" && a.ID == createdBy)
}
