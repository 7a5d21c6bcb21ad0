package extraction

import (
	"regexp"
	"strconv"
	"strings"
)

// ExtractAmount recorre los patrones en orden y, dentro de cada patrón, sus coincidencias
// en orden de aparición. Se eliminan los separadores de miles antes de convertir; una
// coincidencia que no convierte se descarta y se prueba la siguiente.
// Con patterns vacío se usan AmountPatterns.
func ExtractAmount(text string, patterns []*regexp.Regexp) (float64, bool) {
	if len(patterns) == 0 {
		patterns = AmountPatterns
	}
	for _, re := range patterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			if v, ok := parseNumber(m[1]); ok {
				return v, true
			}
		}
	}
	return 0, false
}

// ExtractNetTotal subtotal / net total.
func ExtractNetTotal(text string) (float64, bool) {
	return ExtractAmount(text, NetTotalPatterns)
}

// ExtractTaxAmount tax / vat / gst.
func ExtractTaxAmount(text string) (float64, bool) {
	return ExtractAmount(text, TaxAmountPatterns)
}

// ExtractGrossTotal total / grand total / amount due.
func ExtractGrossTotal(text string) (float64, bool) {
	return ExtractAmount(text, GrossTotalPatterns)
}

func parseNumber(s string) (float64, bool) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
