package entity

import "github.com/shopspring/decimal"

// LineItem representa una línea de detalle de la factura.
// Inmutable una vez construida; pertenece únicamente a su Invoice.
type LineItem struct {
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	LineTotal   decimal.Decimal
}

// ExpectedTotal devuelve quantity * unit_price.
func (l LineItem) ExpectedTotal() decimal.Decimal {
	return l.Quantity.Mul(l.UnitPrice)
}
