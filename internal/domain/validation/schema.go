package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/invoice-qc/internal/domain/entity"
)

// Tolerance diferencia absoluta máxima entre dos montos antes de considerarlos distintos.
var Tolerance = decimal.New(1, -2)

const schemaResource = "invoice-record.json"

// ShapeError indica que el registro no tiene forma válida. Agrupa todas las
// restricciones incumplidas de la etapa en la que falló.
type ShapeError struct {
	Problems []string
}

func (e *ShapeError) Error() string {
	return strings.Join(e.Problems, "; ")
}

// Schema valida la forma de un registro y construye la Invoice correspondiente.
type Schema struct {
	compiled *jsonschema.Schema
}

// InvoiceRecordSchema JSON Schema (draft 2020-12) de un registro de factura: tipos,
// campos requeridos, textos no vacíos y montos >= 0.
func InvoiceRecordSchema() map[string]any {
	money := func() map[string]any { return map[string]any{"type": "number", "minimum": 0} }
	nonEmpty := func() map[string]any { return map[string]any{"type": "string", "minLength": 1} }
	optionalText := func() map[string]any { return map[string]any{"type": []any{"string", "null"}} }

	lineItem := map[string]any{
		"type": "object",
		"properties": map[string]any{
			entity.FieldDescription: map[string]any{"type": "string"},
			entity.FieldQuantity:    money(),
			entity.FieldUnitPrice:   money(),
			entity.FieldLineTotal:   money(),
		},
		"required": []any{entity.FieldDescription, entity.FieldQuantity, entity.FieldUnitPrice, entity.FieldLineTotal},
	}

	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			entity.FieldInvoiceNumber: nonEmpty(),
			entity.FieldInvoiceDate:   map[string]any{"type": "string"},
			entity.FieldDueDate:       optionalText(),
			entity.FieldSellerName:    nonEmpty(),
			entity.FieldSellerAddress: optionalText(),
			entity.FieldSellerTaxID:   optionalText(),
			entity.FieldBuyerName:     nonEmpty(),
			entity.FieldBuyerAddress:  optionalText(),
			entity.FieldBuyerTaxID:    optionalText(),
			entity.FieldCurrency:      map[string]any{"type": "string"},
			entity.FieldNetTotal:      money(),
			entity.FieldTaxAmount:     money(),
			entity.FieldGrossTotal:    money(),
			entity.FieldLineItems:     map[string]any{"type": "array", "items": lineItem},
		},
		"required": []any{
			entity.FieldInvoiceNumber, entity.FieldInvoiceDate, entity.FieldSellerName,
			entity.FieldBuyerName, entity.FieldCurrency, entity.FieldNetTotal,
			entity.FieldTaxAmount, entity.FieldGrossTotal,
		},
	}
}

// NewSchema compila InvoiceRecordSchema.
func NewSchema() (*Schema, error) {
	b, err := json.Marshal(InvoiceRecordSchema())
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaResource, bytes.NewReader(b)); err != nil {
		return nil, fmt.Errorf("add schema: %w", err)
	}
	compiled, err := compiler.Compile(schemaResource)
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return &Schema{compiled: compiled}, nil
}

// MustNewSchema como NewSchema pero entra en pánico si el esquema no compila.
func MustNewSchema() *Schema {
	s, err := NewSchema()
	if err != nil {
		panic(err)
	}
	return s
}

var defaultSchema = sync.OnceValue(MustNewSchema)

// DefaultSchema esquema compartido (inmutable, seguro entre goroutines).
func DefaultSchema() *Schema {
	return defaultSchema()
}

type invoiceRecord struct {
	InvoiceNumber string           `json:"invoice_number"`
	InvoiceDate   string           `json:"invoice_date"`
	DueDate       *string          `json:"due_date"`
	SellerName    string           `json:"seller_name"`
	SellerAddress *string          `json:"seller_address"`
	SellerTaxID   *string          `json:"seller_tax_id"`
	BuyerName     string           `json:"buyer_name"`
	BuyerAddress  *string          `json:"buyer_address"`
	BuyerTaxID    *string          `json:"buyer_tax_id"`
	Currency      string           `json:"currency"`
	NetTotal      decimal.Decimal  `json:"net_total"`
	TaxAmount     decimal.Decimal  `json:"tax_amount"`
	GrossTotal    decimal.Decimal  `json:"gross_total"`
	LineItems     []lineItemRecord `json:"line_items"`
}

type lineItemRecord struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	LineTotal   decimal.Decimal `json:"line_total"`
}

// Build valida la forma del registro y construye la Invoice. Si falla devuelve un
// *ShapeError y ninguna Invoice. Etapas, cada una solo si la anterior pasó:
//  1. JSON Schema (tipos, requeridos, rangos);
//  2. fechas interpretables, moneda permitida e identidad de cada línea;
//  3. due_date >= invoice_date.
func (s *Schema) Build(rec entity.Record) (*entity.Invoice, error) {
	raw, err := json.Marshal(rec)
	if err != nil {
		return nil, &ShapeError{Problems: []string{fmt.Sprintf("record is not JSON-serializable: %v", err)}}
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, &ShapeError{Problems: []string{fmt.Sprintf("record is not a JSON object: %v", err)}}
	}
	if err := s.compiled.Validate(doc); err != nil {
		return nil, &ShapeError{Problems: schemaProblems(err)}
	}

	var in invoiceRecord
	if err := json.Unmarshal(raw, &in); err != nil {
		return nil, &ShapeError{Problems: []string{fmt.Sprintf("decode record: %v", err)}}
	}

	var problems []string
	inv := &entity.Invoice{
		InvoiceNumber: in.InvoiceNumber,
		SellerName:    in.SellerName,
		SellerAddress: in.SellerAddress,
		SellerTaxID:   in.SellerTaxID,
		BuyerName:     in.BuyerName,
		BuyerAddress:  in.BuyerAddress,
		BuyerTaxID:    in.BuyerTaxID,
		NetTotal:      in.NetTotal,
		TaxAmount:     in.TaxAmount,
		GrossTotal:    in.GrossTotal,
	}

	if d, err := parseDate(in.InvoiceDate); err != nil {
		problems = append(problems, fmt.Sprintf("%s: %v", entity.FieldInvoiceDate, err))
	} else {
		inv.InvoiceDate = d
	}
	if in.DueDate != nil {
		if d, err := parseDate(*in.DueDate); err != nil {
			problems = append(problems, fmt.Sprintf("%s: %v", entity.FieldDueDate, err))
		} else {
			inv.DueDate = &d
		}
	}

	currency := strings.ToUpper(in.Currency)
	if !entity.IsAllowedCurrency(currency) {
		problems = append(problems, fmt.Sprintf("%s: must be one of %s, got %s",
			entity.FieldCurrency, strings.Join(entity.AllowedCurrencies, ", "), in.Currency))
	}
	inv.Currency = currency

	inv.LineItems = make([]entity.LineItem, 0, len(in.LineItems))
	for i, li := range in.LineItems {
		item := entity.LineItem{
			Description: li.Description,
			Quantity:    li.Quantity,
			UnitPrice:   li.UnitPrice,
			LineTotal:   li.LineTotal,
		}
		expected := item.ExpectedTotal()
		if item.LineTotal.Sub(expected).Abs().GreaterThan(Tolerance) {
			problems = append(problems, fmt.Sprintf("%s.%d: line_total %s does not match quantity * unit_price (%s)",
				entity.FieldLineItems, i, item.LineTotal.String(), expected.String()))
		}
		inv.LineItems = append(inv.LineItems, item)
	}
	if len(problems) > 0 {
		return nil, &ShapeError{Problems: problems}
	}

	if inv.DueDate != nil && inv.DueDate.Before(inv.InvoiceDate) {
		return nil, &ShapeError{Problems: []string{fmt.Sprintf("due_date %s must be >= invoice_date %s",
			inv.DueDate.Format(entity.DateLayout), inv.InvoiceDate.Format(entity.DateLayout))}}
	}
	return inv, nil
}

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(entity.DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q", s)
	}
	return t, nil
}

// schemaProblems aplana el árbol de errores del validador JSON Schema y lo ordena para
// que el mensaje sea determinista.
func schemaProblems(err error) []string {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return []string{err.Error()}
	}
	var out []string
	var walk func(e *jsonschema.ValidationError)
	walk = func(e *jsonschema.ValidationError) {
		if len(e.Causes) == 0 {
			out = append(out, fmt.Sprintf("%s: %s", instancePath(e.InstanceLocation), e.Message))
			return
		}
		for _, c := range e.Causes {
			walk(c)
		}
	}
	walk(ve)
	sort.Strings(out)
	return out
}

// instancePath convierte "/line_items/0/quantity" en "line_items.0.quantity".
func instancePath(pointer string) string {
	p := strings.Trim(pointer, "/")
	if p == "" {
		return "invoice"
	}
	return strings.ReplaceAll(p, "/", ".")
}
