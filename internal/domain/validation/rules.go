package validation

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/invoice-qc/internal/domain/entity"
)

// Rule revisa una factura con forma válida y devuelve cero o más violaciones
// con formato "<categoría>: <detalle>".
type Rule func(inv *entity.Invoice) []string

// Familias de reglas, en el orden en que se evalúan. Completitud y formato repiten
// garantías del esquema; se conservan para los llamadores que usan CheckRules sin
// pasar por Build.
var (
	CompletenessRules = []Rule{
		requiredText(entity.FieldInvoiceNumber, func(i *entity.Invoice) string { return i.InvoiceNumber }),
		requiredInvoiceDate,
		requiredText(entity.FieldSellerName, func(i *entity.Invoice) string { return i.SellerName }),
		requiredText(entity.FieldBuyerName, func(i *entity.Invoice) string { return i.BuyerName }),
	}

	FormatRules = []Rule{
		nonNegative(entity.FieldNetTotal, func(i *entity.Invoice) decimal.Decimal { return i.NetTotal }),
		nonNegative(entity.FieldTaxAmount, func(i *entity.Invoice) decimal.Decimal { return i.TaxAmount }),
		nonNegative(entity.FieldGrossTotal, func(i *entity.Invoice) decimal.Decimal { return i.GrossTotal }),
	}

	BusinessRules = []Rule{
		lineItemsMatchNetTotal,
		netPlusTaxMatchesGross,
		dueDateNotBeforeInvoiceDate,
	}
)

func requiredText(field string, get func(*entity.Invoice) string) Rule {
	return func(inv *entity.Invoice) []string {
		if strings.TrimSpace(get(inv)) == "" {
			return []string{violation(CategoryMissingField, field)}
		}
		return nil
	}
}

func requiredInvoiceDate(inv *entity.Invoice) []string {
	if inv.InvoiceDate.IsZero() {
		return []string{violation(CategoryMissingField, entity.FieldInvoiceDate)}
	}
	return nil
}

func nonNegative(field string, get func(*entity.Invoice) decimal.Decimal) Rule {
	return func(inv *entity.Invoice) []string {
		if get(inv).IsNegative() {
			return []string{violation(CategoryFormatError, field+" must be >= 0")}
		}
		return nil
	}
}

func lineItemsMatchNetTotal(inv *entity.Invoice) []string {
	sum := inv.LineItemsTotal()
	if sum.Sub(inv.NetTotal).Abs().GreaterThan(Tolerance) {
		return []string{violation(CategoryBusinessRule, fmt.Sprintf(
			"totals_mismatch (line_items_sum=%s, net_total=%s)",
			sum.StringFixed(2), inv.NetTotal.StringFixed(2)))}
	}
	return nil
}

func netPlusTaxMatchesGross(inv *entity.Invoice) []string {
	expected := inv.NetTotal.Add(inv.TaxAmount)
	if expected.Sub(inv.GrossTotal).Abs().GreaterThan(Tolerance) {
		return []string{violation(CategoryBusinessRule, fmt.Sprintf(
			"gross_total_mismatch (expected=%s, actual=%s)",
			expected.StringFixed(2), inv.GrossTotal.StringFixed(2)))}
	}
	return nil
}

func dueDateNotBeforeInvoiceDate(inv *entity.Invoice) []string {
	if inv.DueDate == nil || inv.InvoiceDate.IsZero() {
		return nil
	}
	if inv.DueDate.Before(inv.InvoiceDate) {
		return []string{violation(CategoryBusinessRule, fmt.Sprintf(
			"due_date_before_invoice_date (due_date=%s, invoice_date=%s)",
			inv.DueDate.Format(entity.DateLayout), inv.InvoiceDate.Format(entity.DateLayout)))}
	}
	return nil
}

func applyRules(inv *entity.Invoice, families ...[]Rule) []string {
	var errs []string
	for _, family := range families {
		for _, rule := range family {
			errs = append(errs, rule(inv)...)
		}
	}
	return errs
}
