// Package normalize limpia la entrada de formularios y planillas antes de persistirla o compararla.
package normalize

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

var folder = cases.Fold()

// Name compone a NFC y colapsa espacios: "  Empresa   Demo " -> "Empresa Demo".
func Name(s string) string {
	return strings.Join(strings.Fields(norm.NFC.String(s)), " ")
}

// Digits conserva solo los dígitos ASCII: "123.456.789-00" -> "12345678900".
func Digits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Email recorta y pasa a minúsculas.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Key devuelve la forma usada para comparar nombres sin distinguir mayúsculas.
func Key(s string) string {
	return folder.String(Name(s))
}

// Header normaliza un encabezado de columna: trim + minúsculas.
func Header(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
