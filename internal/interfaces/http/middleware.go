package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Local key para el id de request en Fiber.
const LocalRequestID = "request_id"

// RequestLogger etiqueta cada request con un id y registra método, ruta,
// status y duración con zerolog.
func RequestLogger(log zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqID := uuid.New().String()
		c.Locals(LocalRequestID, reqID)
		c.Set("X-Request-Id", reqID)

		start := time.Now()
		err := c.Next()

		event := log.Info()
		if err != nil || c.Response().StatusCode() >= fiber.StatusInternalServerError {
			event = log.Error().Err(err)
		}
		event.
			Str("request_id", reqID).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("duration", time.Since(start)).
			Msg("request")
		return err
	}
}

// GetRequestID devuelve el id de request del contexto.
func GetRequestID(c *fiber.Ctx) string {
	v := c.Locals(LocalRequestID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
