package middleware

import (
	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
)

// Tracing starts a server span per request using the global tracer provider
// and propagator. Metrics scrapes are not traced.
func Tracing() fiber.Handler {
	return otelfiber.Middleware(
		otelfiber.WithNext(func(c *fiber.Ctx) bool {
			return c.Path() == MetricsPath
		}),
	)
}
