package extraction

import (
	"strings"
	"unicode/utf8"
)

// MaxLineItemRows tope de filas candidatas examinadas por fase.
const MaxLineItemRows = 10

// Longitud mínima de la descripción en cada fase. La fase sin cabecera es más estricta
// para reducir falsos positivos en prosa.
const (
	minDescriptionWithHeader    = 1
	minDescriptionWithoutHeader = 3
)

// ExtractedLineItem línea candidata encontrada en el texto (aún sin validar).
type ExtractedLineItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	LineTotal   float64 `json:"line_total"`
}

// ExtractLineItems aplica la estrategia en dos fases:
//  1. si hay una cabecera de tabla, analiza solo el texto posterior a ella;
//  2. si la fase 1 no produjo filas, analiza el texto completo con un filtro más estricto.
func ExtractLineItems(text string) []ExtractedLineItem {
	var items []ExtractedLineItem
	if loc := TableHeaderPattern.FindStringIndex(text); loc != nil {
		items = scanRows(text[loc[1]:], minDescriptionWithHeader)
	}
	if len(items) == 0 {
		items = scanRows(text, minDescriptionWithoutHeader)
	}
	return items
}

func scanRows(text string, minDescription int) []ExtractedLineItem {
	var items []ExtractedLineItem
	for _, row := range LineItemRowPattern.FindAllStringSubmatch(text, MaxLineItemRows) {
		description := strings.TrimSpace(row[1])
		quantity, ok := parseNumber(row[2])
		if !ok {
			continue
		}
		unitPrice, ok := parseNumber(row[3])
		if !ok {
			continue
		}
		lineTotal, ok := parseNumber(row[4])
		if !ok {
			continue
		}
		if utf8.RuneCountInString(description) < minDescription || quantity <= 0 {
			continue
		}
		items = append(items, ExtractedLineItem{
			Description: description,
			Quantity:    quantity,
			UnitPrice:   unitPrice,
			LineTotal:   lineTotal,
		})
	}
	return items
}
