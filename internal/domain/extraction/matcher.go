// Package extraction localiza campos de factura dentro de texto libre mediante listas
// ordenadas de patrones: el primer patrón que coincide gana, sin puntuación ni mezcla
// de coincidencias parciales. Es heurístico y de mejor esfuerzo.
package extraction

import (
	"regexp"
	"strings"
)

// Matcher intenta localizar un valor en el texto. El segundo valor indica si hubo coincidencia;
// una coincidencia puede devolver texto vacío.
type Matcher func(text string) (string, bool)

// Capture construye un Matcher que devuelve el primer grupo de re, recortado.
func Capture(re *regexp.Regexp) Matcher {
	return func(text string) (string, bool) {
		m := re.FindStringSubmatch(text)
		if m == nil {
			return "", false
		}
		return strings.TrimSpace(m[1]), true
	}
}

// CaptureAll adapta una lista de patrones a Matchers conservando el orden.
func CaptureAll(patterns ...*regexp.Regexp) []Matcher {
	out := make([]Matcher, 0, len(patterns))
	for _, re := range patterns {
		out = append(out, Capture(re))
	}
	return out
}

// FirstMatch recorre los matchers en orden y devuelve el primero que coincide.
func FirstMatch(text string, matchers []Matcher) (string, bool) {
	for _, m := range matchers {
		if v, ok := m(text); ok {
			return v, true
		}
	}
	return "", false
}
