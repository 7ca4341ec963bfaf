package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/rh-admin-api/internal/application/dto"
	"github.com/jhoicas/rh-admin-api/internal/application/usecase"
	"github.com/jhoicas/rh-admin-api/internal/domain"
)

// EmployeeHandler maneja las peticiones HTTP para Employees.
type EmployeeHandler struct {
	uc *usecase.EmployeeUseCase
}

// NewEmployeeHandler construye el handler.
func NewEmployeeHandler(uc *usecase.EmployeeUseCase) *EmployeeHandler {
	return &EmployeeHandler{uc: uc}
}

// Create godoc
// @Summary      Crear empleado
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        body  body  dto.EmployeeRequest  true  "Datos del empleado (fechas yyyy-mm-dd)"
// @Success      201   {object}  dto.CreateEmployeeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/employees [post]
func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	var in dto.EmployeeRequest
	if !bindAndValidate(c, &in) {
		return nil
	}
	id, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return writeEmployeeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreateEmployeeResponse{
		Success:    true,
		Message:    "empleado creado exitosamente",
		EmployeeID: id,
	})
}

// List godoc
// @Summary      Listar empleados (con email del usuario asociado)
// @Tags         employees
// @Produce      json
// @Success      200  {array}  dto.EmployeeResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/employees [get]
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener empleado por ID
// @Tags         employees
// @Produce      json
// @Param        id   path  int  true  "ID del empleado"
// @Success      200  {object}  dto.EmployeeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/employees/{id} [get]
func (h *EmployeeHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id debe ser numérico"})
	}
	out, err := h.uc.GetByID(c.Context(), int64(id))
	if err != nil {
		return writeEmployeeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar empleado (full replace)
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del empleado"
// @Param        body  body  dto.EmployeeRequest  true  "Datos del empleado (fechas yyyy-mm-dd)"
// @Success      200   {object}  dto.StatusResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/employees/{id} [put]
func (h *EmployeeHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id debe ser numérico"})
	}
	var in dto.EmployeeRequest
	if !bindAndValidate(c, &in) {
		return nil
	}
	if err := h.uc.Update(c.Context(), int64(id), in); err != nil {
		return writeEmployeeError(c, err)
	}
	return c.JSON(dto.StatusResponse{Success: true, Message: "empleado actualizado exitosamente"})
}

// writeEmployeeError mapea los errores de dominio de empleados a HTTP.
func writeEmployeeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrEmployeeNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "EMPLOYEE_NOT_FOUND", Message: "empleado no encontrado"})
	case errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "USER_NOT_FOUND", Message: "el usuario asociado no existe"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fechas inválidas: se espera yyyy-mm-dd"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
