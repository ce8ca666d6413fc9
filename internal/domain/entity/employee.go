package entity

import "time"

// AuthorizedEmployee es un CPF pre-aprobado por el RH de la empresa.
// Mientras UserID sea nil el registro puede ser reclamado por un único usuario.
type AuthorizedEmployee struct {
	ID         string
	CompanyID  string
	Name       string
	NationalID string // CPF, solo dígitos
	Email      string
	Active     bool
	UserID     *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Claimed indica si el funcionario ya está vinculado a un usuario.
func (e *AuthorizedEmployee) Claimed() bool {
	return e.UserID != nil && *e.UserID != ""
}
