package entity

import "time"

// Company representa una empresa cliente (tenant). Todo lo demás cuelga de ella.
type Company struct {
	ID        string
	Name      string
	TaxID     string // CNPJ tal como lo informa el RH
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
