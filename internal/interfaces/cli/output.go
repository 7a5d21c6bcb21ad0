package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/jhoicas/invoice-qc/internal/domain/validation"
)

const (
	maxInvalidShown = 10
	maxErrorsShown  = 3
)

func printSummary(w io.Writer, s validation.Summary) {
	fmt.Fprintln(w, "\nResumen de validación:")
	fmt.Fprintf(w, "  Total:     %d\n", s.TotalInvoices)
	fmt.Fprintf(w, "  Válidas:   %d\n", s.ValidInvoices)
	fmt.Fprintf(w, "  Inválidas: %d\n", s.InvalidInvoices)

	if len(s.ErrorCounts) == 0 {
		return
	}
	categories := make([]string, 0, len(s.ErrorCounts))
	for c := range s.ErrorCounts {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	fmt.Fprintln(w, "\nErrores por categoría:")
	for _, c := range categories {
		fmt.Fprintf(w, "  %s: %d\n", c, s.ErrorCounts[c])
	}
}

// printInvalid lista las primeras facturas inválidas con sus primeros errores.
func printInvalid(w io.Writer, results []validation.ValidationResult) {
	var invalid []validation.ValidationResult
	for _, r := range results {
		if !r.IsValid {
			invalid = append(invalid, r)
		}
	}
	if len(invalid) == 0 {
		return
	}

	fmt.Fprintln(w, "\nFacturas inválidas:")
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "  INVOICE ID\tERRORES")
	for _, r := range invalid[:min(len(invalid), maxInvalidShown)] {
		shown := r.Errors[:min(len(r.Errors), maxErrorsShown)]
		line := strings.Join(shown, "; ")
		if extra := len(r.Errors) - len(shown); extra > 0 {
			line += fmt.Sprintf(" ... (+%d más)", extra)
		}
		fmt.Fprintf(tw, "  %s\t%s\n", r.InvoiceID, line)
	}
	_ = tw.Flush()

	if rest := len(invalid) - maxInvalidShown; rest > 0 {
		fmt.Fprintf(w, "\n... y %d facturas inválidas más\n", rest)
	}
}
