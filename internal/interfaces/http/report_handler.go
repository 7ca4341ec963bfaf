package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/rh-admin-api/internal/application/dto"
	"github.com/jhoicas/rh-admin-api/internal/application/usecase"
)

// ReportHandler sirve el reporte PDF de la plantilla.
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// EmployeeRoster godoc
// @Summary      Reporte PDF de la plantilla de empleados
// @Tags         employees
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/employees/report [get]
func (h *ReportHandler) EmployeeRoster(c *fiber.Ctx) error {
	pdfBytes, err := h.uc.EmployeeRoster(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="empleados.pdf"`)
	return c.Send(pdfBytes)
}
