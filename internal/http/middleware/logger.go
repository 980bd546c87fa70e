package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"docadmin/internal/logger"
)

// ErrorLocalKey holds an internal error that a handler has already turned
// into a sanitized response. Logger reports it.
const ErrorLocalKey = "internal_error"

// Logger logs one structured line per request with the request id, method,
// path (no query string), final status and latency in milliseconds.
// Server errors log at error level and client errors at warn.
func Logger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		status := responseStatus(c, err)
		kv := []any{
			"request_id", RequestIDFrom(c),
			"method", c.Method(),
			"path", c.Path(),
			"status", status,
			"latency", float64(time.Since(start).Microseconds()) / 1000,
		}
		if user := UserFrom(c); user != nil {
			kv = append(kv, "user_id", user.ID)
		}

		switch {
		case status >= fiber.StatusInternalServerError:
			cause := err
			if cause == nil {
				cause, _ = c.Locals(ErrorLocalKey).(error)
			}
			if cause != nil {
				kv = append(kv, "error", cause.Error())
			}
			log.Error("request", kv...)
		case status >= fiber.StatusBadRequest:
			log.Warn("request", kv...)
		default:
			log.Info("request", kv...)
		}
		return err
	}
}

// responseStatus is the status the client will see. An error returned down
// the chain has not been written yet; the app ErrorHandler maps it.
func responseStatus(c *fiber.Ctx, err error) int {
	if err == nil {
		return c.Response().StatusCode()
	}
	if fiberErr, ok := err.(*fiber.Error); ok {
		return fiberErr.Code
	}
	return fiber.StatusInternalServerError
}
