package extraction_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/invoice-qc/internal/domain/entity"
	"github.com/jhoicas/invoice-qc/internal/domain/extraction"
)

// ── Campos individuales ───────────────────────────────────────────────────────

func TestExtractInvoiceNumber(t *testing.T) {
	cases := []struct {
		name  string
		text  string
		want  string
		found bool
	}{
		{"etiqueta con numeral", "Invoice #: INV-2024-001", "INV-2024-001", true},
		{"numeral suelto", "Ref #AB/77", "AB/77", true},
		{"sin coincidencia", "hello world", "", false},
		// La primera coincidencia gana aunque sea la cabecera del documento.
		{"cabecera antes de la etiqueta", "INVOICE\nInvoice #: INV-1", "Invoice", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := extraction.ExtractInvoiceNumber(tc.text)
			assert.Equal(t, tc.found, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestExtractDate_PatternOrder(t *testing.T) {
	got, ok := extraction.ExtractDate("Invoice Date: 15/01/2024")
	require.True(t, ok)
	assert.Equal(t, "15/01/2024", got)

	// El patrón numérico suelto encuentra "24-01-15" dentro de una fecha ISO.
	got, ok = extraction.ExtractDate("Issued 2024-01-15")
	require.True(t, ok)
	assert.Equal(t, "24-01-15", got)

	got, ok = extraction.ExtractDate("Issued 2024/1/5")
	require.True(t, ok)
	assert.Equal(t, "2024/1/5", got)

	_, ok = extraction.ExtractDate("no dates here")
	assert.False(t, ok)
}

func TestExtractDueDate(t *testing.T) {
	got, ok := extraction.ExtractDueDate("Due Date: 15/02/2024")
	require.True(t, ok)
	assert.Equal(t, "15/02/2024", got)

	got, ok = extraction.ExtractDueDate("Payment due 01-03-2024")
	require.True(t, ok)
	assert.Equal(t, "01-03-2024", got)

	_, ok = extraction.ExtractDueDate("Date: 01-03-2024")
	assert.False(t, ok)
}

func TestExtractParties(t *testing.T) {
	text := "From: Acme Corporation\nTo: Customer Inc."

	seller, ok := extraction.ExtractSellerName(text)
	require.True(t, ok)
	assert.Equal(t, "Acme Corporation", seller)

	buyer, ok := extraction.ExtractBuyerName(text)
	require.True(t, ok)
	assert.Equal(t, "Customer Inc.", buyer)
}

func TestExtractSellerName_UppercaseLineFallback(t *testing.T) {
	seller, ok := extraction.ExtractSellerName("ACME TRADING\nwidgets and more\n")
	require.True(t, ok)
	assert.Equal(t, "ACME TRADING", seller)
}

func TestExtractAddress(t *testing.T) {
	addr, ok := extraction.ExtractAddress("Address: 12 Main Street\nSpringfield\n\nThanks")
	require.True(t, ok)
	assert.Equal(t, "12 Main Street\nSpringfield", addr)

	addr, ok = extraction.ExtractAddress("Ship: 221 Baker Street, London")
	require.True(t, ok)
	assert.Equal(t, "221 Baker Street, London", addr)
}

func TestExtractTaxID(t *testing.T) {
	id, ok := extraction.ExtractTaxID("VAT ID: DE123456789")
	require.True(t, ok)
	assert.Equal(t, "DE123456789", id)

	id, ok = extraction.ExtractTaxID("GSTIN 27AAAPL1234C1ZV")
	require.True(t, ok)
	assert.Equal(t, "27AAAPL1234C1ZV", id)
}

func TestExtractCurrency(t *testing.T) {
	cases := map[string]string{
		"Currency: eur":  "EUR",
		"Currency: GBP":  "GBP",
		"Total € 12.00":  "EUR",
		"Pay $ 5.00":     "USD",
		"Amount ₹500":    "INR",
		"prices in inr.": "INR",
	}
	for text, want := range cases {
		got, ok := extraction.ExtractCurrency(text)
		require.True(t, ok, text)
		assert.Equal(t, want, got, text)
	}

	_, ok := extraction.ExtractCurrency("nothing to see")
	assert.False(t, ok)
}

// ── Montos ────────────────────────────────────────────────────────────────────

func TestExtractAmounts(t *testing.T) {
	text := "Subtotal: 35.00\nTax: 3.50\nTotal: 38.50"

	net, ok := extraction.ExtractNetTotal(text)
	require.True(t, ok)
	assert.Equal(t, 35.0, net)

	tax, ok := extraction.ExtractTaxAmount(text)
	require.True(t, ok)
	assert.Equal(t, 3.5, tax)

	// "total" dentro de "Subtotal" aparece antes que la línea Total.
	gross, ok := extraction.ExtractGrossTotal(text)
	require.True(t, ok)
	assert.Equal(t, 35.0, gross)
}

func TestExtractAmount_ThousandsSeparator(t *testing.T) {
	net, ok := extraction.ExtractNetTotal("Subtotal: 1,234.50")
	require.True(t, ok)
	assert.Equal(t, 1234.5, net)

	v, ok := extraction.ExtractAmount("pay 1,250.75 now", nil)
	require.True(t, ok)
	assert.Equal(t, 1250.75, v)
}

func TestExtractAmount_SkipsUnparseableCandidate(t *testing.T) {
	v, ok := extraction.ExtractAmount("Total: , Total: 42.00", extraction.GrossTotalPatterns)
	require.True(t, ok)
	assert.Equal(t, 42.0, v)
}

// ── Líneas de detalle ─────────────────────────────────────────────────────────

func TestExtractLineItems_WithHeader(t *testing.T) {
	text := "Description   Qty   Price   Total\n" +
		"Widget   2   10.00   20.00\n" +
		"Gadget   1   15.00   15.00\n" +
		"\n" +
		"Subtotal: 35.00"

	items := extraction.ExtractLineItems(text)
	require.Len(t, items, 2)
	assert.Equal(t, extraction.ExtractedLineItem{Description: "Widget", Quantity: 2, UnitPrice: 10, LineTotal: 20}, items[0])
	assert.Equal(t, extraction.ExtractedLineItem{Description: "Gadget", Quantity: 1, UnitPrice: 15, LineTotal: 15}, items[1])
}

func TestExtractLineItems_ShortDescriptionOnlyAcceptedAfterHeader(t *testing.T) {
	items := extraction.ExtractLineItems("Item Qty Price Total\nab 2 10.00 20.00")
	require.Len(t, items, 1)
	assert.Equal(t, "ab", items[0].Description)

	assert.Empty(t, extraction.ExtractLineItems("ab 2 10.00 20.00"))
}

func TestExtractLineItems_FallbackWithoutRowsAfterHeader(t *testing.T) {
	items := extraction.ExtractLineItems("Sprocket 3 2.00 6.00\nDescription Qty Price Total\n")
	require.Len(t, items, 1)
	assert.Equal(t, "Sprocket", items[0].Description)
	assert.Equal(t, 3.0, items[0].Quantity)
}

func TestExtractLineItems_RejectsZeroQuantity(t *testing.T) {
	assert.Empty(t, extraction.ExtractLineItems("Widget 0 10.00 0.00"))
}

func TestExtractLineItems_CapsRows(t *testing.T) {
	text := strings.Repeat("Widget 1 1.00 1.00\n", 12)
	assert.Len(t, extraction.ExtractLineItems(text), extraction.MaxLineItemRows)
}

// ── Fechas ────────────────────────────────────────────────────────────────────

func TestNormalizeDate(t *testing.T) {
	cases := map[string]string{
		"2024-01-15":                 "2024-01-15",
		"15/01/2024":                 "2024-01-15",
		"01/15/2024":                 "2024-01-15",
		"03/04/2024":                 "2024-04-03",
		"15-01-24":                   "2024-01-15",
		"24-01-15":                   "2015-01-24",
		"Date: 15.01.2024 (net 30)":  "2024-01-15",
		"January 15, 2024":           "2024-01-15",
		"Issued on 15 January 2024":  "2024-01-15",
	}
	for raw, want := range cases {
		got, ok := extraction.NormalizeDate(raw)
		require.True(t, ok, raw)
		assert.Equal(t, want, got, raw)
	}
}

func TestNormalizeDate_Unparseable(t *testing.T) {
	for _, raw := range []string{"", "   ", "not a date", "invalid"} {
		got, ok := extraction.NormalizeDate(raw)
		assert.False(t, ok, raw)
		assert.Empty(t, got, raw)
	}
}

// ── Ensamblado ────────────────────────────────────────────────────────────────

const sampleInvoice = `Invoice #: INV-100
Invoice Date: 15/01/2024
Due Date: 14/02/2024
Seller: Test Seller
Buyer: Test Buyer
Currency: eur
VAT ID: DE999
Gross Total: 110.00
Net Total: 100.00
Tax Amount: 10.00
Description  Qty  Price  Total
Consulting  1  100.00  100.00
`

func TestExtractInvoiceFromText(t *testing.T) {
	rec := extraction.ExtractInvoiceFromText(sampleInvoice, "doc-1")

	assert.Equal(t, "doc-1", rec[entity.FieldInvoiceID])
	assert.Equal(t, "INV-100", rec[entity.FieldInvoiceNumber])
	assert.Equal(t, "2024-01-15", rec[entity.FieldInvoiceDate])
	assert.Equal(t, "2024-02-14", rec[entity.FieldDueDate])
	assert.Equal(t, "Test Seller", rec[entity.FieldSellerName])
	assert.Equal(t, "Test Buyer", rec[entity.FieldBuyerName])
	assert.Equal(t, "EUR", rec[entity.FieldCurrency])
	assert.Equal(t, "DE999", rec[entity.FieldSellerTaxID])
	assert.Nil(t, rec[entity.FieldSellerAddress])
	assert.Nil(t, rec[entity.FieldBuyerAddress])
	assert.Nil(t, rec[entity.FieldBuyerTaxID])
	assert.Equal(t, 100.0, rec[entity.FieldNetTotal])
	assert.Equal(t, 10.0, rec[entity.FieldTaxAmount])
	assert.Equal(t, 110.0, rec[entity.FieldGrossTotal])

	items, ok := rec[entity.FieldLineItems].([]any)
	require.True(t, ok)
	require.Len(t, items, 1)
	assert.Equal(t, map[string]any{
		entity.FieldDescription: "Consulting",
		entity.FieldQuantity:    1.0,
		entity.FieldUnitPrice:   100.0,
		entity.FieldLineTotal:   100.0,
	}, items[0])
}

func TestExtractInvoiceFromText_Defaults(t *testing.T) {
	for _, text := range []string{"", "lorem ipsum dolor sit amet"} {
		rec := extraction.ExtractInvoiceFromText(text, "")

		for _, field := range []string{
			entity.FieldInvoiceNumber, entity.FieldInvoiceDate, entity.FieldDueDate,
			entity.FieldSellerName, entity.FieldSellerAddress, entity.FieldSellerTaxID,
			entity.FieldBuyerName, entity.FieldBuyerAddress, entity.FieldBuyerTaxID,
			entity.FieldCurrency, entity.FieldNetTotal, entity.FieldTaxAmount,
			entity.FieldGrossTotal, entity.FieldLineItems,
		} {
			assert.Contains(t, rec, field, "campo %s ausente", field)
		}
		assert.NotContains(t, rec, entity.FieldInvoiceID)
		assert.Equal(t, extraction.UnknownInvoiceNumber, rec[entity.FieldInvoiceNumber])
		assert.Nil(t, rec[entity.FieldInvoiceDate])
		assert.Equal(t, "", rec[entity.FieldSellerName])
		assert.Equal(t, "", rec[entity.FieldBuyerName])
		assert.Equal(t, "USD", rec[entity.FieldCurrency])
		assert.Equal(t, 0.0, rec[entity.FieldNetTotal])
		assert.Equal(t, []any{}, rec[entity.FieldLineItems])
	}
}
