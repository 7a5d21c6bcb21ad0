package qc

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/invoice-qc/internal/application/ports"
	"github.com/jhoicas/invoice-qc/internal/domain"
	"github.com/jhoicas/invoice-qc/internal/domain/entity"
	"github.com/jhoicas/invoice-qc/internal/domain/extraction"
	"github.com/jhoicas/invoice-qc/internal/domain/validation"
	"github.com/jhoicas/invoice-qc/pkg/logger"
)

// Result registros extraídos y el informe de validación correspondiente.
type Result struct {
	Records []entity.Record
	Report  validation.BatchValidationReport
}

// UseCase orquesta extracción y validación de lotes de documentos.
type UseCase struct {
	log     *logger.Logger
	workers int
	metrics ports.Metrics // opcional
}

// NewUseCase construye el caso de uso. workers < 1 se trata como 1.
func NewUseCase(log *logger.Logger, workers int) *UseCase {
	if workers < 1 {
		workers = 1
	}
	return &UseCase{log: log, workers: workers}
}

// WithMetrics activa la publicación de métricas del pipeline.
func (uc *UseCase) WithMetrics(m ports.Metrics) *UseCase {
	uc.metrics = m
	return uc
}

// Extract convierte cada documento en un registro tentativo, en paralelo y conservando
// el orden de entrada. Un documento cuya extracción falla se omite y queda en el log.
func (uc *UseCase) Extract(ctx context.Context, docs []entity.Document) ([]entity.Record, error) {
	log := uc.log.WithField("batch_id", uuid.NewString())
	start := time.Now()

	slots := make([]entity.Record, len(docs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.workers)
	for i, doc := range docs {
		i, doc := i, doc
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rec, err := extractOne(doc)
			if err != nil {
				log.Warn().Err(err).Str("document_id", doc.ID).Msg("documento omitido")
				return nil
			}
			slots[i] = rec
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	records := make([]entity.Record, 0, len(slots))
	for _, rec := range slots {
		if rec != nil {
			records = append(records, rec)
		}
	}
	elapsed := time.Since(start)
	if uc.metrics != nil {
		uc.metrics.ObserveStage("extract", elapsed)
	}
	log.Info().
		Int("documents", len(docs)).
		Int("extracted", len(records)).
		Dur("elapsed", elapsed).
		Msg("extracción terminada")
	return records, nil
}

// Validate valida el lote con un validador nuevo, de modo que dos lotes nunca comparten
// el estado de duplicados.
func (uc *UseCase) Validate(ctx context.Context, records []entity.Record) (validation.BatchValidationReport, error) {
	if err := ctx.Err(); err != nil {
		return validation.BatchValidationReport{}, err
	}
	start := time.Now()
	report := validation.NewValidator().ValidateBatch(records)
	if uc.metrics != nil {
		uc.metrics.ObserveStage("validate", time.Since(start))
		uc.metrics.ObserveReport(report)
	}
	uc.log.Info().
		Int("total", report.Summary.TotalInvoices).
		Int("valid", report.Summary.ValidInvoices).
		Int("invalid", report.Summary.InvalidInvoices).
		Interface("error_counts", report.Summary.ErrorCounts).
		Msg("validación terminada")
	return report, nil
}

// ExtractAndValidate encadena Extract y Validate. Sin documentos devuelve domain.ErrNoDocuments.
func (uc *UseCase) ExtractAndValidate(ctx context.Context, docs []entity.Document) (*Result, error) {
	if len(docs) == 0 {
		return nil, domain.ErrNoDocuments
	}
	records, err := uc.Extract(ctx, docs)
	if err != nil {
		return nil, err
	}
	report, err := uc.Validate(ctx, records)
	if err != nil {
		return nil, err
	}
	return &Result{Records: records, Report: report}, nil
}

// extractOne aísla un pánico del extractor para que un documento patológico no tumbe el lote.
func extractOne(doc entity.Document) (rec entity.Record, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("extracción de %s: %v", doc.ID, r)
		}
	}()
	return extraction.ExtractInvoiceFromText(doc.Text, doc.ID), nil
}
