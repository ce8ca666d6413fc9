package entity

import "time"

// User es la cuenta de acceso de un funcionario autorizado. Pertenece a exactamente una Company.
type User struct {
	ID           string
	CompanyID    string
	Name         string
	NationalID   string // CPF, solo dígitos
	Email        string
	Phone        string
	PasswordHash string // bcrypt, nunca plano
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
