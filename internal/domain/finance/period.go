// Package finance contiene las reglas de calendario de los reportes financieros.
package finance

import (
	"fmt"
	"time"
)

// Period es un mes calendario (competencia).
type Period struct {
	Year  int
	Month time.Month
}

// NewPeriod devuelve el período que contiene t.
func NewPeriod(t time.Time) Period {
	return Period{Year: t.Year(), Month: t.Month()}
}

// ParsePeriod lee "YYYY-MM". Entrada vacía o inválida cae al mes de now.
func ParsePeriod(ym string, now time.Time) Period {
	t, err := time.Parse("2006-01", ym)
	if err != nil {
		return NewPeriod(now)
	}
	return NewPeriod(t)
}

// Bounds devuelve el primer y el último día del mes, ambos inclusivos.
// El día 0 del mes siguiente normaliza al último día (29/02 en bisiestos).
func (p Period) Bounds() (first, last time.Time) {
	first = time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC)
	last = time.Date(p.Year, p.Month+1, 0, 0, 0, 0, 0, time.UTC)
	return first, last
}

// Contains indica si la fecha civil de t cae dentro del mes.
func (p Period) Contains(t time.Time) bool {
	return t.Year() == p.Year && t.Month() == p.Month
}

// Prev y Next devuelven los meses vecinos (navegación del painel).
func (p Period) Prev() Period {
	first, _ := p.Bounds()
	return NewPeriod(first.AddDate(0, -1, 0))
}

func (p Period) Next() Period {
	first, _ := p.Bounds()
	return NewPeriod(first.AddDate(0, 1, 0))
}

// String formato de query string: "2024-01".
func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, int(p.Month))
}

// Label formato de pantalla: "01/2024".
func (p Period) Label() string {
	return fmt.Sprintf("%02d/%04d", int(p.Month), p.Year)
}
