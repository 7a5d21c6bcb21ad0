package extraction

import "github.com/jhoicas/invoice-qc/internal/domain/entity"

// Valores por defecto aplicados cuando un campo no se encuentra en el texto.
const (
	UnknownInvoiceNumber = "UNKNOWN"
	DefaultCurrency      = entity.CurrencyUSD
)

// ExtractInvoiceFromText combina los extractores en un registro tentativo con todos los
// campos de la factura. Es el único punto donde se aplican valores por defecto.
// invoiceID vacío no se adjunta al registro.
//
// La dirección y el identificador fiscal solo se intentan para el vendedor; los del
// comprador quedan siempre ausentes.
func ExtractInvoiceFromText(text, invoiceID string) entity.Record {
	number, ok := ExtractInvoiceNumber(text)
	if !ok || number == "" {
		number = UnknownInvoiceNumber
	}
	seller, _ := ExtractSellerName(text)
	buyer, _ := ExtractBuyerName(text)
	currency, ok := ExtractCurrency(text)
	if !ok || currency == "" {
		currency = DefaultCurrency
	}
	net, _ := ExtractNetTotal(text)
	tax, _ := ExtractTaxAmount(text)
	gross, _ := ExtractGrossTotal(text)

	rec := entity.Record{
		entity.FieldInvoiceNumber: number,
		entity.FieldInvoiceDate:   normalizedOrNil(ExtractDate(text)),
		entity.FieldDueDate:       normalizedOrNil(ExtractDueDate(text)),
		entity.FieldSellerName:    seller,
		entity.FieldSellerAddress: stringOrNil(ExtractAddress(text)),
		entity.FieldSellerTaxID:   stringOrNil(ExtractTaxID(text)),
		entity.FieldBuyerName:     buyer,
		entity.FieldBuyerAddress:  nil,
		entity.FieldBuyerTaxID:    nil,
		entity.FieldCurrency:      currency,
		entity.FieldNetTotal:      net,
		entity.FieldTaxAmount:     tax,
		entity.FieldGrossTotal:    gross,
		entity.FieldLineItems:     lineItemsToRecord(ExtractLineItems(text)),
	}
	if invoiceID != "" {
		rec[entity.FieldInvoiceID] = invoiceID
	}
	return rec
}

func normalizedOrNil(raw string, found bool) any {
	if !found || raw == "" {
		return nil
	}
	if d, ok := NormalizeDate(raw); ok {
		return d
	}
	return nil
}

func stringOrNil(v string, found bool) any {
	if !found {
		return nil
	}
	return v
}

func lineItemsToRecord(items []ExtractedLineItem) []any {
	out := make([]any, 0, len(items))
	for _, it := range items {
		out = append(out, map[string]any{
			entity.FieldDescription: it.Description,
			entity.FieldQuantity:    it.Quantity,
			entity.FieldUnitPrice:   it.UnitPrice,
			entity.FieldLineTotal:   it.LineTotal,
		})
	}
	return out
}
