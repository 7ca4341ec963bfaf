package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/rh-admin-api/internal/application/auth"
	"github.com/jhoicas/rh-admin-api/internal/application/dto"
	"github.com/jhoicas/rh-admin-api/internal/domain"
)

// AuthHandler maneja el login del panel.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if !bindAndValidate(c, &in) {
		return nil
	}
	out, err := h.uc.Login(c.Context(), in)
	if err != nil {
		// Misma respuesta para email desconocido y contraseña incorrecta.
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_CREDENTIALS", Message: "credenciales incorrectas"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
