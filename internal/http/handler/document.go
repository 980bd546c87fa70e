package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"docadmin/internal/http/middleware"
	"docadmin/internal/logger"
	"docadmin/internal/model"
	"docadmin/internal/pdfinfo"
	"docadmin/internal/service"
)

func documentID(c *fiber.Ctx) (string, bool) {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return "", false
	}
	return id, true
}

// ListDocuments lists documents newest first.
//
// @Summary List documents
// @Tags documents
// @Security BearerAuth
// @Produce json
// @Param product_type query string false "exact product type filter"
// @Param limit query int false "page size, 0 lists everything"
// @Param offset query int false "rows to skip"
// @Success 200 {object} service.DocumentListResult
// @Router /documents [get]
func ListDocuments(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, err := strconv.Atoi(c.Query("limit", "0"))
		if err != nil || limit < 0 {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		}
		offset, err := strconv.Atoi(c.Query("offset", "0"))
		if err != nil || offset < 0 {
			return writeError(c, fiber.StatusBadRequest, "INVALID_OFFSET", "invalid offset")
		}

		res, err := svc.List(c.UserContext(), service.ListInput{
			ProductType: c.Query("product_type"),
			Limit:       limit,
			Offset:      offset,
		})
		if err != nil {
			return internalError(c, err)
		}
		return c.JSON(res)
	}
}

// UploadDocument ingests one PDF (multipart field "file", optional form
// value "product_type").
//
// @Summary Upload a PDF document
// @Tags documents
// @Security BearerAuth
// @Accept mpfd
// @Produce json
// @Param file formData file true "PDF file"
// @Param product_type formData string false "product type"
// @Success 201 {object} model.Document
// @Failure 400 {object} errorPayload
// @Failure 413 {object} errorPayload
// @Router /documents [post]
func UploadDocument(svc service.DocumentService, log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		rid := middleware.RequestIDFrom(c)
		progress := func(percent int) {
			log.Debug("upload progress", "request_id", rid, "filename", fh.Filename, "percent", percent)
		}

		doc, err := svc.Upload(c.UserContext(), service.UploadInput{
			Content:     f,
			Filename:    fh.Filename,
			MimeType:    fh.Header.Get(fiber.HeaderContentType),
			Size:        fh.Size,
			ProductType: c.FormValue("product_type"),
		}, progress)
		if err != nil {
			return writeIngestError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(doc)
	}
}

// GetDocument returns document metadata.
//
// @Summary Get a document
// @Tags documents
// @Security BearerAuth
// @Produce json
// @Param id path string true "document id"
// @Success 200 {object} model.Document
// @Failure 404 {object} errorPayload
// @Router /documents/{id} [get]
func GetDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := documentID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		doc, err := svc.Get(c.UserContext(), id)
		if err != nil {
			if isNotFound(err) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "document not found")
			}
			return internalError(c, err)
		}
		return c.JSON(doc)
	}
}

// UpdateDocument applies a partial metadata update.
//
// @Summary Update document metadata
// @Tags documents
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "document id"
// @Param body body model.DocumentUpdate true "fields to change"
// @Success 200 {object} model.Document
// @Router /documents/{id} [patch]
func UpdateDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := documentID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		var upd model.DocumentUpdate
		if err := c.BodyParser(&upd); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		doc, err := svc.Update(c.UserContext(), id, upd)
		switch {
		case err == nil:
			return c.JSON(doc)
		case errors.Is(err, service.ErrInvalidType):
			return writeError(c, fiber.StatusBadRequest, "INVALID_TYPE", "unknown document type")
		case errors.Is(err, service.ErrEmptyUpdate):
			return writeError(c, fiber.StatusBadRequest, "EMPTY_UPDATE", "no fields to update")
		case isNotFound(err):
			return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "document not found")
		default:
			return internalError(c, err)
		}
	}
}

// DeleteDocument removes a document.
//
// @Summary Delete a document
// @Tags documents
// @Security BearerAuth
// @Param id path string true "document id"
// @Success 204
// @Router /documents/{id} [delete]
func DeleteDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := documentID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			if isNotFound(err) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "document not found")
			}
			return internalError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// DeleteAllDocuments clears the document table.
//
// @Summary Delete every document
// @Tags documents
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]int64
// @Router /documents [delete]
func DeleteAllDocuments(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		n, err := svc.DeleteAll(c.UserContext())
		if err != nil {
			return internalError(c, err)
		}
		return c.JSON(fiber.Map{"deleted": n})
	}
}

// ExportDocumentContent returns the payload as base64 text, or 204 when the
// document has none.
//
// @Summary Export a document payload as base64
// @Tags documents
// @Security BearerAuth
// @Produce json
// @Param id path string true "document id"
// @Success 200 {object} map[string]string
// @Success 204
// @Router /documents/{id}/content [get]
func ExportDocumentContent(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := documentID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		content, found, err := svc.ExportBase64(c.UserContext(), id)
		if err != nil {
			if isNotFound(err) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "document not found")
			}
			return internalError(c, err)
		}
		if !found {
			return c.SendStatus(fiber.StatusNoContent)
		}
		return c.JSON(fiber.Map{"id": id, "content": content})
	}
}

// ExportAllDocuments returns every document that has a payload, base64 encoded.
//
// @Summary Export all payloads
// @Tags documents
// @Security BearerAuth
// @Produce json
// @Success 200 {array} service.ExportedDocument
// @Router /documents/export [get]
func ExportAllDocuments(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		docs, err := svc.ExportAll(c.UserContext())
		if err != nil {
			return internalError(c, err)
		}
		return c.JSON(fiber.Map{"data": docs, "total": len(docs)})
	}
}

// DocumentPages reports the page count of the stored PDF.
//
// @Summary Count pages
// @Tags documents
// @Security BearerAuth
// @Produce json
// @Param id path string true "document id"
// @Success 200 {object} map[string]int
// @Failure 409 {object} errorPayload
// @Failure 422 {object} errorPayload
// @Router /documents/{id}/pages [get]
func DocumentPages(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := documentID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		n, err := svc.PageCount(c.UserContext(), id)
		switch {
		case err == nil:
			return c.JSON(fiber.Map{"id": id, "pages": n})
		case isNotFound(err):
			return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "document not found")
		case errors.Is(err, service.ErrNoPayload):
			return writeError(c, fiber.StatusConflict, "NO_PAYLOAD", "document has no payload")
		case errors.Is(err, pdfinfo.ErrUnreadable):
			return writeError(c, fiber.StatusUnprocessableEntity, "UNREADABLE_PDF", "stored file could not be parsed as a PDF")
		default:
			return internalError(c, err)
		}
	}
}
