package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un lanzamiento.
const (
	StatusPending = "PENDENTE"
	StatusPaid    = "PAGO"
)

// FinanceEntry es un lanzamiento del libro financiero de la empresa.
// AccrualDate es la competencia; PaymentDate es la fecha de caja.
type FinanceEntry struct {
	ID            string
	CompanyID     string
	Kind          string // RECEITA | DESPESA
	CategoryID    *string
	CategoryName  string // solo lectura, viene del join
	Description   string
	Notes         string
	Amount        decimal.Decimal
	AccrualDate   time.Time
	DueDate       *time.Time
	PaymentDate   *time.Time
	Status        string
	PaymentMethod string
	CreatedAt     time.Time
}

// MarkPaid pasa el lanzamiento a PAGO. Conserva la fecha de pago si ya existía.
func (e *FinanceEntry) MarkPaid(on time.Time) {
	e.Status = StatusPaid
	if e.PaymentDate == nil {
		d := DateOnly(on)
		e.PaymentDate = &d
	}
}

// ApplyStatusRules deja el lanzamiento consistente: PAGO siempre tiene fecha de pago
// (hoy si falta) y PENDENTE nunca la guarda.
func (e *FinanceEntry) ApplyStatusRules(today time.Time) {
	switch e.Status {
	case StatusPaid:
		e.MarkPaid(today)
	default:
		e.Status = StatusPending
		e.PaymentDate = nil
	}
}

// IsRevenue indica si el lanzamiento es una receita.
func (e *FinanceEntry) IsRevenue() bool { return e.Kind == KindRevenue }

// DateOnly trunca a la fecha civil (UTC, 00:00).
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
