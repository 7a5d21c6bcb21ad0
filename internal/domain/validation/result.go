package validation

import "strings"

// Categorías de error. El texto antes de los dos puntos de cada mensaje es la categoría
// y los consumidores agrupan por ella.
const (
	CategorySchemaError  = "schema_error"
	CategoryMissingField = "missing_field"
	CategoryFormatError  = "format_error"
	CategoryBusinessRule = "business_rule_failed"
	CategoryAnomaly      = "anomaly_detected"
	CategoryUnknown      = "unknown"
)

// ValidationResult resultado de validar un registro. IsValid equivale a Errors vacío.
type ValidationResult struct {
	InvoiceID string   `json:"invoice_id"`
	IsValid   bool     `json:"is_valid"`
	Errors    []string `json:"errors"`
}

// Summary agregado de un lote.
type Summary struct {
	TotalInvoices   int            `json:"total_invoices"`
	ValidInvoices   int            `json:"valid_invoices"`
	InvalidInvoices int            `json:"invalid_invoices"`
	ErrorCounts     map[string]int `json:"error_counts"`
}

// BatchValidationReport resultados por registro (en el orden de entrada) más el resumen.
type BatchValidationReport struct {
	Results []ValidationResult `json:"results"`
	Summary Summary            `json:"summary"`
}

// ErrorCategory devuelve el texto anterior a los primeros dos puntos, o "unknown".
func ErrorCategory(msg string) string {
	category, _, found := strings.Cut(msg, ":")
	if !found {
		return CategoryUnknown
	}
	return category
}

// Summarize cuenta válidos, inválidos y errores por categoría.
func Summarize(results []ValidationResult) Summary {
	s := Summary{
		TotalInvoices: len(results),
		ErrorCounts:   make(map[string]int),
	}
	for _, r := range results {
		if r.IsValid {
			s.ValidInvoices++
		}
		for _, e := range r.Errors {
			s.ErrorCounts[ErrorCategory(e)]++
		}
	}
	s.InvalidInvoices = s.TotalInvoices - s.ValidInvoices
	return s
}

func newResult(invoiceID string, errs []string) ValidationResult {
	if errs == nil {
		errs = []string{}
	}
	return ValidationResult{InvoiceID: invoiceID, IsValid: len(errs) == 0, Errors: errs}
}

func violation(category, detail string) string {
	return category + ": " + detail
}
