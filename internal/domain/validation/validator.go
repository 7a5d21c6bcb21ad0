// Package validation decide si un registro de factura es válido: primero la forma
// (Schema.Build, falla en el primer problema del registro) y después cuatro familias de
// reglas que acumulan todas sus violaciones.
package validation

import (
	"fmt"
	"sync"

	"github.com/jhoicas/invoice-qc/internal/domain/entity"
)

// Validator valida registros y mantiene el estado de detección de duplicados del lote.
// Cada instancia es dueña de su estado; el mutex serializa a los escritores.
type Validator struct {
	schema *Schema

	mu   sync.Mutex
	seen map[entity.DuplicateKey]struct{}
}

// NewValidator crea un validador con el esquema por defecto.
func NewValidator() *Validator {
	return NewValidatorWithSchema(DefaultSchema())
}

// NewValidatorWithSchema crea un validador con un esquema concreto.
func NewValidatorWithSchema(schema *Schema) *Validator {
	return &Validator{
		schema: schema,
		seen:   make(map[entity.DuplicateKey]struct{}),
	}
}

// Validate valida un registro. El estado de duplicados persiste entre llamadas hasta
// ResetDuplicateTracking o ValidateBatch.
func (v *Validator) Validate(rec entity.Record) ValidationResult {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.validate(rec)
}

// CheckRules ejecuta solo las cuatro familias de reglas sobre una factura ya construida.
func (v *Validator) CheckRules(inv *entity.Invoice) []string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.checkRules(inv)
}

// ValidateBatch limpia el estado de duplicados y valida los registros en orden de entrada.
// El orden importa: se marcan la segunda y siguientes apariciones de una misma clave.
func (v *Validator) ValidateBatch(records []entity.Record) BatchValidationReport {
	v.mu.Lock()
	defer v.mu.Unlock()

	clear(v.seen)
	results := make([]ValidationResult, 0, len(records))
	for _, rec := range records {
		results = append(results, v.validate(rec))
	}
	return BatchValidationReport{Results: results, Summary: Summarize(results)}
}

// ResetDuplicateTracking olvida las claves vistas.
func (v *Validator) ResetDuplicateTracking() {
	v.mu.Lock()
	defer v.mu.Unlock()
	clear(v.seen)
}

func (v *Validator) validate(rec entity.Record) ValidationResult {
	id := rec.DisplayID()
	inv, err := v.schema.Build(rec)
	if err != nil {
		return newResult(id, []string{violation(CategorySchemaError, err.Error())})
	}
	return newResult(id, v.checkRules(inv))
}

func (v *Validator) checkRules(inv *entity.Invoice) []string {
	errs := applyRules(inv, CompletenessRules, FormatRules, BusinessRules)
	return append(errs, v.checkDuplicate(inv)...)
}

// checkDuplicate marca la factura si su clave ya se vio en el lote; si no, la registra.
func (v *Validator) checkDuplicate(inv *entity.Invoice) []string {
	key := inv.DuplicateKey()
	if _, dup := v.seen[key]; dup {
		date := "none"
		if key.HasDate {
			date = key.InvoiceDate
		}
		return []string{violation(CategoryAnomaly, fmt.Sprintf(
			"duplicate_invoice (invoice_number=%s, seller=%s, date=%s)",
			inv.InvoiceNumber, inv.SellerName, date))}
	}
	v.seen[key] = struct{}{}
	return nil
}
