package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/gestor-comercial/pkg/logger"
)

// RequestLogger registra método, ruta, status y duración de cada request.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		log.Info().
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("duration", time.Since(start)).
			Msg("request")
		return err
	}
}
