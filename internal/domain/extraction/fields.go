package extraction

import "strings"

// ExtractInvoiceNumber localiza el número de factura.
func ExtractInvoiceNumber(text string) (string, bool) {
	return FirstMatch(text, invoiceNumberMatchers)
}

// ExtractDate devuelve la fecha de factura tal como aparece en el texto (sin normalizar).
func ExtractDate(text string) (string, bool) {
	return FirstMatch(text, dateMatchers)
}

// ExtractDueDate devuelve la fecha de vencimiento tal como aparece en el texto.
func ExtractDueDate(text string) (string, bool) {
	return FirstMatch(text, dueDateMatchers)
}

// ExtractSellerName captura el resto de la línea tras la etiqueta del vendedor o,
// en su defecto, una línea en mayúsculas con forma de razón social.
func ExtractSellerName(text string) (string, bool) {
	return FirstMatch(text, sellerMatchers)
}

// ExtractBuyerName captura el resto de la línea tras la etiqueta del comprador.
func ExtractBuyerName(text string) (string, bool) {
	return FirstMatch(text, buyerMatchers)
}

// ExtractAddress captura una dirección etiquetada (hasta 3 líneas de continuación)
// o una línea con forma de dirección postal.
func ExtractAddress(text string) (string, bool) {
	return FirstMatch(text, addressMatchers)
}

// ExtractTaxID captura un identificador fiscal etiquetado (Tax ID, VAT ID, GSTIN, EIN).
func ExtractTaxID(text string) (string, bool) {
	return FirstMatch(text, taxIDMatchers)
}

var currencySymbols = map[string]string{
	"€": "EUR",
	"$": "USD",
	"₹": "INR",
}

// ExtractCurrency devuelve el código de moneda. Los símbolos se traducen a su código;
// cualquier otro código se devuelve en mayúsculas sin validarlo.
func ExtractCurrency(text string) (string, bool) {
	v, ok := FirstMatch(text, currencyMatchers)
	if !ok {
		return "", false
	}
	if code, found := currencySymbols[v]; found {
		return code, true
	}
	return strings.ToUpper(v), true
}
