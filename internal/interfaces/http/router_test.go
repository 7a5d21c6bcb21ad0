package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/invoice-qc/internal/application/dto"
	"github.com/jhoicas/invoice-qc/internal/application/qc"
	"github.com/jhoicas/invoice-qc/internal/infrastructure/metrics"
	apphttp "github.com/jhoicas/invoice-qc/internal/interfaces/http"
	"github.com/jhoicas/invoice-qc/pkg/logger"
)

const sampleText = `Invoice #: INV-100
Invoice Date: 15/01/2024
Seller: Test Seller
Buyer: Test Buyer
Currency: EUR
Gross Total: 110.00
Net Total: 100.00
Tax Amount: 10.00
Description  Qty  Price  Total
Consulting  1  100.00  100.00
`

type reportBody struct {
	Results []struct {
		InvoiceID string   `json:"invoice_id"`
		IsValid   bool     `json:"is_valid"`
		Errors    []string `json:"errors"`
	} `json:"results"`
	Summary struct {
		TotalInvoices   int            `json:"total_invoices"`
		ValidInvoices   int            `json:"valid_invoices"`
		InvalidInvoices int            `json:"invalid_invoices"`
		ErrorCounts     map[string]int `json:"error_counts"`
	} `json:"summary"`
}

func buildApp(secret string) *fiber.App {
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		QC:        qc.NewUseCase(logger.Nop(), 2),
		JWTSecret: secret,
		AppName:   "invoice-qc",
		Version:   "test",
	})
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body, auth string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ── Rutas públicas ────────────────────────────────────────────────────────────

func TestHealth(t *testing.T) {
	resp, err := buildApp("").Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", decode[dto.HealthResponse](t, resp).Status)
}

func TestRoot(t *testing.T) {
	resp, err := buildApp("").Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, err)

	info := decode[dto.ServiceInfo](t, resp)
	assert.Equal(t, "invoice-qc", info.Service)
	assert.Contains(t, info.Endpoints, "validate_json")
}

// ── /api/validate-json ────────────────────────────────────────────────────────

func TestValidateJSON(t *testing.T) {
	body := `{"invoices":[
		{"invoice_id":"a","invoice_number":"INV-1","invoice_date":"2024-01-15","seller_name":"S","buyer_name":"B",
		 "currency":"usd","net_total":100,"tax_amount":10,"gross_total":110,
		 "line_items":[{"description":"x","quantity":1,"unit_price":100,"line_total":100}]},
		{"invoice_number":"INV-2","invoice_date":"2024-01-15","seller_name":"S","buyer_name":"B",
		 "currency":"XYZ","net_total":0,"tax_amount":0,"gross_total":0}
	]}`

	resp := postJSON(t, buildApp(""), "/api/validate-json", body, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	report := decode[reportBody](t, resp)

	require.Len(t, report.Results, 2)
	assert.Equal(t, "a", report.Results[0].InvoiceID)
	assert.True(t, report.Results[0].IsValid)
	assert.NotNil(t, report.Results[0].Errors)
	assert.Equal(t, "INV-2", report.Results[1].InvoiceID)
	assert.Equal(t, 2, report.Summary.TotalInvoices)
	assert.Equal(t, 1, report.Summary.InvalidInvoices)
	assert.Equal(t, map[string]int{"schema_error": 1}, report.Summary.ErrorCounts)
}

func TestValidateJSON_BadBody(t *testing.T) {
	app := buildApp("")

	resp := postJSON(t, app, "/api/validate-json", `{"invoices":`, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = postJSON(t, app, "/api/validate-json", `{}`, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// ── /api/extract-and-validate ─────────────────────────────────────────────────

func TestExtractAndValidate(t *testing.T) {
	payload, err := json.Marshal(dto.ExtractRequest{Documents: nil})
	require.NoError(t, err)
	body := `{"documents":[{"id":"doc-1","text":` + mustJSON(t, sampleText) + `}]}`

	resp := postJSON(t, buildApp(""), "/api/extract-and-validate", body, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	out := decode[map[string]json.RawMessage](t, resp)
	var extracted []map[string]any
	require.NoError(t, json.Unmarshal(out["extracted_invoices"], &extracted))
	require.Len(t, extracted, 1)
	assert.Equal(t, "doc-1", extracted[0]["invoice_id"])
	assert.Equal(t, "INV-100", extracted[0]["invoice_number"])

	var report reportBody
	require.NoError(t, json.Unmarshal(out["validation_report"], &report))
	assert.Equal(t, 1, report.Summary.ValidInvoices)

	// Sin documentos.
	resp = postJSON(t, buildApp(""), "/api/extract-and-validate", string(payload), "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "NO_DOCUMENTS", decode[dto.ErrorResponse](t, resp).Code)
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// ── Autenticación opcional ────────────────────────────────────────────────────

func TestAPI_RequiresTokenWhenSecretConfigured(t *testing.T) {
	app := buildApp(testJWTSecret)

	resp := postJSON(t, app, "/api/validate-json", `{"invoices":[]}`, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = postJSON(t, app, "/api/validate-json", `{"invoices":[]}`, bearer(t))
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	health, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, health.StatusCode, "/health nunca exige token")
}

// ── Métricas ──────────────────────────────────────────────────────────────────

func TestMetricsEndpoint(t *testing.T) {
	collector := metrics.NewCollector(false)
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		QC:      qc.NewUseCase(logger.Nop(), 1).WithMetrics(collector),
		AppName: "invoice-qc",
		Metrics: collector.Handler(),
	})

	resp := postJSON(t, app, "/api/validate-json", `{"invoices":[{"invoice_number":"x"}]}`, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), `invoice_qc_invoices_validated_total{result="invalid"} 1`)
	assert.Contains(t, string(body), `invoice_qc_validation_errors_total{category="schema_error"} 1`)
}
