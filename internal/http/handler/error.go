package handler

import (
	"database/sql"
	"errors"

	"github.com/gofiber/fiber/v2"

	"docadmin/internal/http/middleware"
	"docadmin/internal/ingest"
	"docadmin/internal/service"
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
//
// Parameters:
// - status: HTTP status code to return
// - code: machine-readable short error code (e.g., "INVALID_ID", "NOT_FOUND", "INTERNAL_ERROR")
// - message: human-readable safe message (no internal details)
func writeError(c *fiber.Ctx, status int, code, message string) error {
	res := errorPayload{
		RequestID: middleware.RequestIDFrom(c),
		Error: errorEnvelope{
			Code:    code,
			Message: message,
		},
	}
	return c.Status(status).JSON(res)
}

// internalError answers 500 and leaves err for the request logger.
func internalError(c *fiber.Ctx, err error) error {
	c.Locals(middleware.ErrorLocalKey, err)
	return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
}

func isNotFound(err error) bool {
	return errors.Is(err, service.ErrNotFound) || errors.Is(err, sql.ErrNoRows)
}

// writeIngestError maps pipeline failures to responses. Validation messages
// are meant for end users and are passed through.
func writeIngestError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, ingest.ErrWrongType):
		return writeError(c, fiber.StatusBadRequest, "WRONG_TYPE", ingest.ErrWrongType.Error())
	case errors.Is(err, ingest.ErrTooLarge):
		return writeError(c, fiber.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", ingest.ErrTooLarge.Error())
	case errors.Is(err, ingest.ErrTooSmall):
		return writeError(c, fiber.StatusBadRequest, "FILE_TOO_SMALL", ingest.ErrTooSmall.Error())
	case errors.Is(err, ingest.ErrBadSignature):
		return writeError(c, fiber.StatusBadRequest, "BAD_SIGNATURE", ingest.ErrBadSignature.Error())
	case errors.Is(err, ingest.ErrReadFailure):
		return writeError(c, fiber.StatusBadRequest, "READ_FAILURE", ingest.ErrReadFailure.Error())
	}

	c.Locals(middleware.ErrorLocalKey, err)
	var storeErr *ingest.StoreError
	if errors.As(err, &storeErr) {
		return writeError(c, fiber.StatusInternalServerError, "STORE_FAILURE", "failed to store document")
	}
	return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "BAD_REQUEST", "bad request")
		case fiber.StatusUnauthorized:
			return writeError(c, status, "UNAUTHORIZED", "authentication required")
		case fiber.StatusNotFound:
			return writeError(c, status, "NOT_FOUND", "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "METHOD_NOT_ALLOWED", "method not allowed")
		case fiber.StatusRequestEntityTooLarge:
			// body limit hit before the pipeline saw the file
			return writeError(c, status, "FILE_TOO_LARGE", ingest.ErrTooLarge.Error())
		default:
			return writeError(c, status, "INTERNAL_ERROR", "internal server error")
		}
	}
}
