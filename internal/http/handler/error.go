package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"greeter/internal/http/middleware"
)

// errorPayload defines the standardized error response body.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeError writes a standardized JSON error response without leaking internal errors.
func writeError(c *fiber.Ctx, status int, code, message string) error {
	res := errorPayload{
		RequestID: middleware.RequestIDFromCtx(c),
		Error: errorEnvelope{
			Code:    code,
			Message: message,
		},
	}
	return c.Status(status).JSON(res)
}

// upstreamFailure turns a failed upstream call into a 502. The cause is kept
// for the log line only.
func upstreamFailure(err error) error {
	return fiber.NewError(fiber.StatusBadGateway, err.Error())
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
// Server-side failures are logged with their request id; the client only sees a generic message.
func ErrorHandler(log logrus.FieldLogger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "BAD_REQUEST", "bad request")
		case fiber.StatusNotFound:
			return writeError(c, status, "NOT_FOUND", "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "METHOD_NOT_ALLOWED", "method not allowed")
		case fiber.StatusBadGateway:
			log.WithFields(logrus.Fields{
				"request_id": middleware.RequestIDFromCtx(c),
				"path":       c.Path(),
				"error":      err.Error(),
			}).Warn("upstream_error")
			return writeError(c, status, "UPSTREAM_ERROR", "upstream service unavailable")
		default:
			log.WithFields(logrus.Fields{
				"request_id": middleware.RequestIDFromCtx(c),
				"path":       c.Path(),
				"error":      err.Error(),
			}).Error("unhandled_error")
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
	}
}

// NotFound is registered after every route. It turns any request no route
// answered, including a known path with the wrong method, into a 404.
func NotFound() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return fiber.ErrNotFound
	}
}
