package dto

import (
	"github.com/jhoicas/invoice-qc/internal/domain/entity"
	"github.com/jhoicas/invoice-qc/internal/domain/validation"
)

// ValidateJSONRequest cuerpo de POST /api/validate-json.
type ValidateJSONRequest struct {
	Invoices []entity.Record `json:"invoices"`
}

// ExtractRequest cuerpo de POST /api/extract-and-validate.
type ExtractRequest struct {
	Documents []entity.Document `json:"documents"`
}

// ExtractAndValidateResponse registros extraídos más el informe del lote.
type ExtractAndValidateResponse struct {
	ExtractedInvoices []entity.Record                  `json:"extracted_invoices"`
	ValidationReport  validation.BatchValidationReport `json:"validation_report"`
}

// ServiceInfo respuesta de GET /.
type ServiceInfo struct {
	Service   string            `json:"service"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

// HealthResponse respuesta de GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}
