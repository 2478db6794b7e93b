package handler

import (
	"github.com/gofiber/fiber/v2"

	"greeter/internal/service"
)

// RegisterRoutes attaches the greeting and liveness routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, svc service.GreetingService) {
	app.Get("/", Homepage(svc))
	app.Get("/hello", Hello(svc))
	app.Get("/healthz", LivenessProbe())
}

// Homepage godoc
// @Summary Homepage greeting
// @Produce plain
// @Success 200 {string} string "Homepage!!"
// @Router / [get]
func Homepage(svc service.GreetingService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return sendText(c, svc.Homepage(c.UserContext()))
	}
}

// Hello godoc
// @Summary Hello greeting
// @Produce plain
// @Success 200 {string} string "Hello, World!"
// @Router /hello [get]
func Hello(svc service.GreetingService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return sendText(c, svc.Hello(c.UserContext()))
	}
}

// LivenessProbe godoc
// @Summary Liveness probe
// @Success 200
// @Router /healthz [get]
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}

func sendText(c *fiber.Ctx, body string) error {
	c.Type("txt", "utf-8")
	return c.Status(fiber.StatusOK).SendString(body)
}
