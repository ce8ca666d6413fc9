package entity

import (
	"strings"
	"time"
)

// Tipos de lanzamiento/categoría.
const (
	KindRevenue = "RECEITA"
	KindExpense = "DESPESA"
)

// FinanceCategory agrupa lanzamientos de un mismo tipo dentro de una empresa.
type FinanceCategory struct {
	ID        string
	CompanyID string
	Name      string
	Kind      string // RECEITA | DESPESA
	Active    bool
	CreatedAt time.Time
}

// ValidKind indica si k es RECEITA o DESPESA (sin distinguir mayúsculas).
func ValidKind(k string) bool {
	k = strings.ToUpper(strings.TrimSpace(k))
	return k == KindRevenue || k == KindExpense
}
