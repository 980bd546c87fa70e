package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"docadmin/internal/service"
	serviceMocks "docadmin/internal/service/mocks"
	"docadmin/internal/storage"
)

func TestPublishExport(t *testing.T) {
	mockSvc := new(serviceMocks.MockExportService)
	app := fiber.New()
	app.Post("/exports", PublishExport(mockSvc))

	t.Run("success", func(t *testing.T) {
		out := &service.PublishedExport{ID: "e1", Key: "exports/e1.json", Count: 2, URL: "https://minio/x"}
		mockSvc.On("Publish", mock.Anything).Return(out, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodPost, "/exports", nil))

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		var got service.PublishedExport
		json.NewDecoder(resp.Body).Decode(&got)
		assert.Equal(t, "exports/e1.json", got.Key)
		assert.Equal(t, 2, got.Count)
	})

	t.Run("storage failure", func(t *testing.T) {
		mockSvc.On("Publish", mock.Anything).Return(nil, errors.New("upload to storage: bucket gone")).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodPost, "/exports", nil))

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		assert.Equal(t, "internal server error", decodeError(t, resp).Error.Message)
	})
	mockSvc.AssertExpectations(t)
}

func TestOpenExport(t *testing.T) {
	mockSvc := new(serviceMocks.MockExportService)
	app := fiber.New()
	app.Get("/exports/:id", OpenExport(mockSvc))

	t.Run("streams the bundle", func(t *testing.T) {
		id := uuid.New().String()
		bundle := `{"id":"` + id + `","documents":[]}`
		mockSvc.On("Open", mock.Anything, id).
			Return(io.NopCloser(strings.NewReader(bundle)), storage.ObjectInfo{Size: int64(len(bundle))}, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/exports/"+id, nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, resp.Header.Get("Content-Disposition"), id+".json")
		body, _ := io.ReadAll(resp.Body)
		assert.JSONEq(t, bundle, string(body))
	})

	t.Run("missing bundle", func(t *testing.T) {
		mockSvc.On("Open", mock.Anything, "nope").Return(nil, storage.ObjectInfo{}, service.ErrExportNotFound).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/exports/nope", nil))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
	mockSvc.AssertExpectations(t)
}

func TestRemoveExport(t *testing.T) {
	mockSvc := new(serviceMocks.MockExportService)
	app := fiber.New()
	app.Delete("/exports/:id", RemoveExport(mockSvc))

	id := uuid.New().String()
	mockSvc.On("Remove", mock.Anything, id).Return(nil).Once()
	mockSvc.On("Remove", mock.Anything, "bad").Return(service.ErrExportNotFound).Once()

	resp, _ := app.Test(httptest.NewRequest(http.MethodDelete, "/exports/"+id, nil))
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, _ = app.Test(httptest.NewRequest(http.MethodDelete, "/exports/bad", nil))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	mockSvc.AssertExpectations(t)
}
