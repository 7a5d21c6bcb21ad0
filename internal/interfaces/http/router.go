package http

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/jhoicas/invoice-qc/internal/application/dto"
	"github.com/jhoicas/invoice-qc/internal/application/qc"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	QC        *qc.UseCase
	JWTSecret string // vacío = rutas /api abiertas
	AppName   string
	Version   string
	Metrics   http.Handler // opcional: se publica en GET /metrics
}

// Router registra las rutas del servicio.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(dto.ServiceInfo{
			Service: deps.AppName,
			Version: deps.Version,
			Endpoints: map[string]string{
				"health":               "GET /health",
				"validate_json":        "POST /api/validate-json",
				"extract_and_validate": "POST /api/extract-and-validate",
				"docs":                 "GET /docs",
			},
		})
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(dto.HealthResponse{Status: "ok"})
	})

	if deps.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(deps.Metrics))
	}

	api := app.Group("/api")
	if deps.JWTSecret != "" {
		api.Use(AuthMiddleware(deps.JWTSecret))
	}

	qcHandler := NewQCHandler(deps.QC)
	api.Post("/validate-json", qcHandler.ValidateJSON)
	api.Post("/extract-and-validate", qcHandler.ExtractAndValidate)
}
