package domain

import "github.com/google/uuid"

// ValidID informa si id tiene forma de UUID, el tipo de todas las claves primarias.
// Un id que no la tiene no puede existir en la base: los casos de uso responden ErrNotFound sin consultar.
func ValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
