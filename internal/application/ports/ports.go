package ports

import (
	"context"
	"time"

	"github.com/jhoicas/invoice-qc/internal/domain/entity"
	"github.com/jhoicas/invoice-qc/internal/domain/validation"
)

// DocumentReader puerto de entrada de documentos de texto. La implementación en disco
// vive en infrastructure/document; un lector de PDF u OCR implementaría este mismo contrato.
type DocumentReader interface {
	// ReadDir devuelve los documentos de dir en orden estable.
	ReadDir(ctx context.Context, dir string) ([]entity.Document, error)
}

// RecordRepository persiste lotes de registros e informes de validación.
type RecordRepository interface {
	SaveRecords(path string, records []entity.Record) error
	LoadRecords(path string) ([]entity.Record, error)
	SaveReport(path string, report validation.BatchValidationReport) error
}

// Metrics puerto de observabilidad del pipeline.
type Metrics interface {
	// ObserveStage registra la duración de una etapa ("extract", "validate").
	ObserveStage(stage string, d time.Duration)
	// ObserveReport acumula resultados y errores por categoría de un lote.
	ObserveReport(report validation.BatchValidationReport)
}
