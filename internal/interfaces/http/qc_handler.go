package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/invoice-qc/internal/application/dto"
	"github.com/jhoicas/invoice-qc/internal/application/qc"
	"github.com/jhoicas/invoice-qc/internal/domain"
)

// QCHandler expone la extracción y validación de facturas.
type QCHandler struct {
	uc *qc.UseCase
}

// NewQCHandler construye el handler.
func NewQCHandler(uc *qc.UseCase) *QCHandler {
	return &QCHandler{uc: uc}
}

// ValidateJSON valida un lote de registros ya extraídos.
// POST /api/validate-json
func (h *QCHandler) ValidateJSON(c *fiber.Ctx) error {
	var in dto.ValidateJSONRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Invoices == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "invoices requerido"})
	}
	report, err := h.uc.Validate(c.UserContext(), in.Invoices)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusOK).JSON(report)
}

// ExtractAndValidate extrae un registro por documento y valida el lote.
// POST /api/extract-and-validate
func (h *QCHandler) ExtractAndValidate(c *fiber.Ctx) error {
	var in dto.ExtractRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	res, err := h.uc.ExtractAndValidate(c.UserContext(), in.Documents)
	if err != nil {
		if errors.Is(err, domain.ErrNoDocuments) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "NO_DOCUMENTS", Message: "no se enviaron documentos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusOK).JSON(dto.ExtractAndValidateResponse{
		ExtractedInvoices: res.Records,
		ValidationReport:  res.Report,
	})
}
