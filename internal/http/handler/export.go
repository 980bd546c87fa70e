package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"docadmin/internal/service"
)

// PublishExport writes an export bundle to object storage.
//
// @Summary Publish an export bundle
// @Tags exports
// @Security BearerAuth
// @Produce json
// @Success 201 {object} service.PublishedExport
// @Router /exports [post]
func PublishExport(svc service.ExportService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		out, err := svc.Publish(c.UserContext())
		if err != nil {
			return internalError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(out)
	}
}

// OpenExport streams a stored bundle.
//
// @Summary Download an export bundle
// @Tags exports
// @Security BearerAuth
// @Produce json
// @Param id path string true "export id"
// @Success 200 {object} service.ExportBundle
// @Router /exports/{id} [get]
func OpenExport(svc service.ExportService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		rc, info, err := svc.Open(c.UserContext(), id)
		if err != nil {
			if errors.Is(err, service.ErrExportNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "export not found")
			}
			return internalError(c, err)
		}

		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		c.Attachment(id + ".json")
		size := -1
		if info.Size > 0 {
			size = int(info.Size)
		}
		// fasthttp closes rc once the body is written
		return c.SendStream(rc, size)
	}
}

// RemoveExport deletes a stored bundle.
//
// @Summary Delete an export bundle
// @Tags exports
// @Security BearerAuth
// @Param id path string true "export id"
// @Success 204
// @Router /exports/{id} [delete]
func RemoveExport(svc service.ExportService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Remove(c.UserContext(), c.Params("id")); err != nil {
			if errors.Is(err, service.ErrExportNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "export not found")
			}
			return internalError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
