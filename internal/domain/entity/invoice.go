package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Monedas admitidas por el control de calidad de facturas.
const (
	CurrencyEUR = "EUR"
	CurrencyINR = "INR"
	CurrencyUSD = "USD"
)

// AllowedCurrencies lista ordenada de monedas válidas (se usa en mensajes de error).
var AllowedCurrencies = []string{CurrencyEUR, CurrencyINR, CurrencyUSD}

// DateLayout formato ISO de las fechas de factura (solo día).
const DateLayout = "2006-01-02"

// IsAllowedCurrency indica si code (ya en mayúsculas) está en AllowedCurrencies.
func IsAllowedCurrency(code string) bool {
	for _, c := range AllowedCurrencies {
		if c == code {
			return true
		}
	}
	return false
}

// Invoice representa una factura con forma válida: se construye solo a través del
// validador de esquema, que garantiza moneda permitida, montos >= 0 y
// due_date >= invoice_date.
type Invoice struct {
	InvoiceNumber string
	InvoiceDate   time.Time
	DueDate       *time.Time // opcional
	SellerName    string
	SellerAddress *string
	SellerTaxID   *string
	BuyerName     string
	BuyerAddress  *string
	BuyerTaxID    *string
	Currency      string
	NetTotal      decimal.Decimal
	TaxAmount     decimal.Decimal
	GrossTotal    decimal.Decimal
	LineItems     []LineItem
}

// LineItemsTotal suma los line_total de todas las líneas.
func (i *Invoice) LineItemsTotal() decimal.Decimal {
	sum := decimal.Zero
	for _, li := range i.LineItems {
		sum = sum.Add(li.LineTotal)
	}
	return sum
}

// DuplicateKey clave que identifica "la misma factura" dentro de un lote.
func (i *Invoice) DuplicateKey() DuplicateKey {
	k := DuplicateKey{InvoiceNumber: i.InvoiceNumber, SellerName: i.SellerName}
	if !i.InvoiceDate.IsZero() {
		k.InvoiceDate = i.InvoiceDate.Format(DateLayout)
		k.HasDate = true
	}
	return k
}

// DuplicateKey (invoice_number, seller_name, invoice_date como texto o ausente).
// Es comparable y se usa directamente como clave de map.
type DuplicateKey struct {
	InvoiceNumber string
	SellerName    string
	InvoiceDate   string
	HasDate       bool
}
