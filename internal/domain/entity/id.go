package entity

import "github.com/google/uuid"

// ValidID indica si s es un UUID en forma canónica, el formato de todas las claves primarias.
func ValidID(s string) bool {
	if len(s) != 36 {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}
