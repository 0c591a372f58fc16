// Package normalize deriva códigos estables a partir de nombres con tildes y eñes,
// p. ej. "Incubación" -> "INCUBACION", "Engorde / Ceba" -> "ENGORDE_CEBA".
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripAccents descompone (NFD), elimina marcas diacríticas y recompone (NFC).
var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Code convierte un nombre de etapa en un código estable: mayúsculas ASCII,
// sin tildes, con los separadores colapsados a '_'.
func Code(name string) string {
	plain, _, err := transform.String(stripAccents, name)
	if err != nil {
		plain = name
	}
	var b strings.Builder
	lastSep := true // evita separador inicial
	for _, r := range strings.ToUpper(plain) {
		switch {
		case r >= 'A' && r <= 'Z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastSep = false
		default:
			if !lastSep {
				b.WriteByte('_')
				lastSep = true
			}
		}
	}
	return strings.TrimRight(b.String(), "_")
}
