package entity

// Nombres de campo del registro tentativo (forma JSON intercambiada con los colaboradores externos).
const (
	FieldInvoiceID     = "invoice_id"
	FieldInvoiceNumber = "invoice_number"
	FieldInvoiceDate   = "invoice_date"
	FieldDueDate       = "due_date"
	FieldSellerName    = "seller_name"
	FieldSellerAddress = "seller_address"
	FieldSellerTaxID   = "seller_tax_id"
	FieldBuyerName     = "buyer_name"
	FieldBuyerAddress  = "buyer_address"
	FieldBuyerTaxID    = "buyer_tax_id"
	FieldCurrency      = "currency"
	FieldNetTotal      = "net_total"
	FieldTaxAmount     = "tax_amount"
	FieldGrossTotal    = "gross_total"
	FieldLineItems     = "line_items"

	FieldDescription = "description"
	FieldQuantity    = "quantity"
	FieldUnitPrice   = "unit_price"
	FieldLineTotal   = "line_total"
)

// UnknownInvoiceID identificador mostrado cuando el registro no trae invoice_id ni invoice_number.
const UnknownInvoiceID = "unknown"

// Record registro tentativo de factura: mapa nombre de campo -> valor, tal como
// lo produce el extractor o llega serializado en JSON.
type Record map[string]any

// DisplayID identificador usado en los resultados: invoice_id, si no invoice_number,
// si no "unknown".
func (r Record) DisplayID() string {
	if s, ok := r[FieldInvoiceID].(string); ok && s != "" {
		return s
	}
	if s, ok := r[FieldInvoiceNumber].(string); ok && s != "" {
		return s
	}
	return UnknownInvoiceID
}
