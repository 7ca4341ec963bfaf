package http

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/rh-admin-api/internal/application/dto"
)

var validate = validator.New()

// bindAndValidate parsea el body JSON y ejecuta los tags de validator.
// Devuelve false y escribe la respuesta de error si falla — el caller debe
// retornar sin escribir otra respuesta. Con esto los tipos malformados se
// rechazan en el borde en vez de caer hasta un error de storage.
func bindAndValidate(c *fiber.Ctx, req interface{}) bool {
	if err := c.BodyParser(req); err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido: " + err.Error()})
		return false
	}
	if err := validate.Struct(req); err != nil {
		var fields []string
		for _, fe := range err.(validator.ValidationErrors) {
			fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
		}
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "VALIDATION",
			Message: "campos inválidos o faltantes: " + strings.Join(fields, ", "),
		})
		return false
	}
	return true
}
