// Package metrics expone métricas Prometheus del pipeline de facturas.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/invoice-qc/internal/application/ports"
	"github.com/jhoicas/invoice-qc/internal/domain/validation"
)

// Verificar en tiempo de compilación que Collector implementa Metrics.
var _ ports.Metrics = (*Collector)(nil)

// Namespace prefijo de todas las métricas.
const Namespace = "invoice_qc"

// Collector registro propio (no el global) con los contadores del pipeline.
type Collector struct {
	registry *prometheus.Registry
	invoices *prometheus.CounterVec
	errors   *prometheus.CounterVec
	stages   *prometheus.HistogramVec
}

// NewCollector crea el registro. withRuntime añade métricas de proceso y del runtime de Go.
func NewCollector(withRuntime bool) *Collector {
	registry := prometheus.NewRegistry()
	if withRuntime {
		registry.MustRegister(
			prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{Namespace: Namespace}),
			prometheus.NewGoCollector(),
		)
	}

	c := &Collector{
		registry: registry,
		invoices: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "invoices_validated_total",
			Help:      "Facturas validadas por resultado (valid, invalid).",
		}, []string{"result"}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "validation_errors_total",
			Help:      "Errores de validación por categoría.",
		}, []string{"category"}),
		stages: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "stage_duration_seconds",
			Help:      "Duración de cada etapa del lote.",
			Buckets:   []float64{.001, .005, .01, .05, .1, .5, 1, 5, 10},
		}, []string{"stage"}),
	}
	registry.MustRegister(c.invoices, c.errors, c.stages)
	return c
}

// ObserveStage registra la duración de una etapa.
func (c *Collector) ObserveStage(stage string, d time.Duration) {
	c.stages.WithLabelValues(stage).Observe(d.Seconds())
}

// ObserveReport acumula el resumen del lote.
func (c *Collector) ObserveReport(report validation.BatchValidationReport) {
	s := report.Summary
	c.invoices.WithLabelValues("valid").Add(float64(s.ValidInvoices))
	c.invoices.WithLabelValues("invalid").Add(float64(s.InvalidInvoices))
	for category, n := range s.ErrorCounts {
		c.errors.WithLabelValues(category).Add(float64(n))
	}
}

// Handler endpoint HTTP en formato de exposición de Prometheus.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// Registry acceso al registro (tests).
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}
