package handler

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	authMocks "docadmin/internal/auth/mocks"
	"docadmin/internal/ingest"
	"docadmin/internal/logger"
	"docadmin/internal/model"
	"docadmin/internal/pdfinfo"
	repoMocks "docadmin/internal/repository/mocks"
	"docadmin/internal/service"
	serviceMocks "docadmin/internal/service/mocks"
)

func decodeError(t *testing.T, resp *http.Response) errorPayload {
	t.Helper()
	var body errorPayload
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestHealthCheck(t *testing.T) {
	db, dbMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	app := fiber.New()
	app.Get("/health", HealthCheck(db))

	t.Run("healthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(nil)

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]string
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "healthy", body["status"])
	})

	t.Run("unhealthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(errors.New("db error"))

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		assert.Equal(t, "SERVICE_UNAVAILABLE", decodeError(t, resp).Error.Code)
	})
}

func TestLivenessProbe(t *testing.T) {
	app := fiber.New()
	app.Get("/healthz", LivenessProbe())

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestListDocuments(t *testing.T) {
	mockSvc := new(serviceMocks.MockDocumentService)
	app := fiber.New()
	app.Get("/documents", ListDocuments(mockSvc))

	t.Run("success", func(t *testing.T) {
		expectedRes := &service.DocumentListResult{
			Items: []model.Document{{ID: uuid.New().String(), Filename: "test.pdf"}},
			Total: 1,
		}
		mockSvc.On("List", mock.Anything, service.ListInput{ProductType: "roofing", Limit: 10}).Return(expectedRes, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/documents?product_type=roofing&limit=10&offset=0", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result service.DocumentListResult
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Len(t, result.Items, 1)
		assert.Equal(t, 1, result.Total)
		mockSvc.AssertExpectations(t)
	})

	t.Run("defaults list everything", func(t *testing.T) {
		mockSvc.On("List", mock.Anything, service.ListInput{}).
			Return(&service.DocumentListResult{Items: []model.Document{}}, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/documents", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid limit", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/documents?limit=abc", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_LIMIT", decodeError(t, resp).Error.Code)
	})

	t.Run("negative offset", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/documents?offset=-2", nil))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_OFFSET", decodeError(t, resp).Error.Code)
	})

	t.Run("service error", func(t *testing.T) {
		mockSvc.On("List", mock.Anything, service.ListInput{}).Return(nil, errors.New("service error")).Once()

		req := httptest.NewRequest(http.MethodGet, "/documents", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

// multipartUpload builds a form with a "file" part declared as mimeType.
func multipartUpload(t *testing.T, filename, mimeType string, content []byte, productType string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, filename))
	header.Set("Content-Type", mimeType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	part.Write(content)
	if productType != "" {
		require.NoError(t, writer.WriteField("product_type", productType))
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestUploadDocument(t *testing.T) {
	mockSvc := new(serviceMocks.MockDocumentService)
	app := fiber.New()
	app.Post("/documents", UploadDocument(mockSvc, logger.Nop()))

	t.Run("success", func(t *testing.T) {
		body, ct := multipartUpload(t, "ESR-1234.pdf", "application/pdf", []byte("%PDF-1.7 hello world"), "roofing")

		expectedDoc := &model.Document{ID: uuid.New().String(), Filename: "ESR-1234.pdf", Type: model.TypeESR}
		mockSvc.On("Upload", mock.Anything, mock.MatchedBy(func(in service.UploadInput) bool {
			return in.Filename == "ESR-1234.pdf" && in.MimeType == "application/pdf" &&
				in.ProductType == "roofing" && in.Size == 20 && in.Content != nil
		}), mock.Anything).Return(expectedDoc, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/documents", body)
		req.Header.Set("Content-Type", ct)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var result model.Document
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Equal(t, expectedDoc.ID, result.ID)
		assert.Equal(t, model.TypeESR, result.Type)
		mockSvc.AssertExpectations(t)
	})

	t.Run("part content type is passed through", func(t *testing.T) {
		body, ct := multipartUpload(t, "photo.pdf", "image/png", []byte("%PDF-1.7"), "")
		mockSvc.On("Upload", mock.Anything, mock.MatchedBy(func(in service.UploadInput) bool {
			return in.MimeType == "image/png"
		}), mock.Anything).Return(nil, &ingest.InvalidError{Reason: ingest.ErrWrongType}).Once()

		req := httptest.NewRequest(http.MethodPost, "/documents", body)
		req.Header.Set("Content-Type", ct)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "WRONG_TYPE", decodeError(t, resp).Error.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("no file", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/documents", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "FILE_REQUIRED", decodeError(t, resp).Error.Code)
	})

	pipelineErrors := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"wrong type", &ingest.InvalidError{Reason: ingest.ErrWrongType}, http.StatusBadRequest, "WRONG_TYPE"},
		{"too large", &ingest.InvalidError{Reason: ingest.ErrTooLarge}, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE"},
		{"too small", &ingest.InvalidError{Reason: ingest.ErrTooSmall}, http.StatusBadRequest, "FILE_TOO_SMALL"},
		{"bad signature", &ingest.InvalidError{Reason: ingest.ErrBadSignature}, http.StatusBadRequest, "BAD_SIGNATURE"},
		{"read failure", &ingest.InvalidError{Reason: ingest.ErrReadFailure}, http.StatusBadRequest, "READ_FAILURE"},
		{"store failure", &ingest.StoreError{Err: errors.New("connection reset")}, http.StatusInternalServerError, "STORE_FAILURE"},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tt := range pipelineErrors {
		t.Run(tt.name, func(t *testing.T) {
			body, ct := multipartUpload(t, "test.pdf", "application/pdf", []byte("hello"), "")
			mockSvc.On("Upload", mock.Anything, mock.Anything, mock.Anything).Return(nil, tt.err).Once()

			req := httptest.NewRequest(http.MethodPost, "/documents", body)
			req.Header.Set("Content-Type", ct)
			resp, _ := app.Test(req)

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			res := decodeError(t, resp)
			assert.Equal(t, tt.wantCode, res.Error.Code)
			assert.NotContains(t, res.Error.Message, "connection reset")
			mockSvc.AssertExpectations(t)
		})
	}
}

func TestGetDocument(t *testing.T) {
	mockSvc := new(serviceMocks.MockDocumentService)
	app := fiber.New()
	app.Get("/documents/:id", GetDocument(mockSvc))

	t.Run("success", func(t *testing.T) {
		id := uuid.New().String()
		expectedDoc := &model.Document{ID: id, Filename: "test.pdf"}
		mockSvc.On("Get", mock.Anything, id).Return(expectedDoc, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/documents/"+id, nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result model.Document
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Equal(t, id, result.ID)
		mockSvc.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("Get", mock.Anything, id).Return(nil, service.ErrNotFound).Once()

		req := httptest.NewRequest(http.MethodGet, "/documents/"+id, nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "NOT_FOUND", decodeError(t, resp).Error.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/documents/invalid-uuid", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_ID", decodeError(t, resp).Error.Code)
	})

	t.Run("service error", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("Get", mock.Anything, id).Return(nil, errors.New("db error")).Once()

		req := httptest.NewRequest(http.MethodGet, "/documents/"+id, nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

func TestUpdateDocument(t *testing.T) {
	mockSvc := new(serviceMocks.MockDocumentService)
	app := fiber.New()
	app.Patch("/documents/:id", UpdateDocument(mockSvc))

	patch := func(id, body string) *http.Response {
		req := httptest.NewRequest(http.MethodPatch, "/documents/"+id, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)
		return resp
	}

	t.Run("success", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("Update", mock.Anything, id, mock.MatchedBy(func(u model.DocumentUpdate) bool {
			return u.Name != nil && *u.Name == "Roof TDS" && u.Type != nil && *u.Type == model.TypeTDS &&
				assert.ObjectsAreEqual([]string{"p1"}, u.Products)
		})).Return(&model.Document{ID: id, Name: "Roof TDS"}, nil).Once()

		resp := patch(id, `{"name":"Roof TDS","type":"TDS","products":["p1"]}`)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	cases := []struct {
		name     string
		err      error
		wantCode string
		status   int
	}{
		{"invalid type", service.ErrInvalidType, "INVALID_TYPE", http.StatusBadRequest},
		{"empty update", service.ErrEmptyUpdate, "EMPTY_UPDATE", http.StatusBadRequest},
		{"not found", service.ErrNotFound, "NOT_FOUND", http.StatusNotFound},
		{"service error", errors.New("db fail"), "INTERNAL_ERROR", http.StatusInternalServerError},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			id := uuid.New().String()
			mockSvc.On("Update", mock.Anything, id, mock.Anything).Return(nil, tt.err).Once()

			resp := patch(id, `{"name":"x"}`)

			assert.Equal(t, tt.status, resp.StatusCode)
			assert.Equal(t, tt.wantCode, decodeError(t, resp).Error.Code)
		})
	}

	t.Run("malformed body", func(t *testing.T) {
		resp := patch(uuid.New().String(), `{"name":`)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_BODY", decodeError(t, resp).Error.Code)
	})
}

func TestDeleteDocument(t *testing.T) {
	mockSvc := new(serviceMocks.MockDocumentService)
	app := fiber.New()
	app.Delete("/documents/:id", DeleteDocument(mockSvc))

	t.Run("success", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("Delete", mock.Anything, id).Return(nil).Once()

		req := httptest.NewRequest(http.MethodDelete, "/documents/"+id, nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("Delete", mock.Anything, id).Return(sql.ErrNoRows).Once()

		req := httptest.NewRequest(http.MethodDelete, "/documents/"+id, nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "NOT_FOUND", decodeError(t, resp).Error.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("service error", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("Delete", mock.Anything, id).Return(errors.New("delete error")).Once()

		req := httptest.NewRequest(http.MethodDelete, "/documents/"+id, nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

func TestDeleteAllDocuments(t *testing.T) {
	mockSvc := new(serviceMocks.MockDocumentService)
	app := fiber.New()
	app.Delete("/documents", DeleteAllDocuments(mockSvc))

	mockSvc.On("DeleteAll", mock.Anything).Return(int64(3), nil).Once()

	resp, _ := app.Test(httptest.NewRequest(http.MethodDelete, "/documents", nil))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]int64
	json.NewDecoder(resp.Body).Decode(&body)
	assert.Equal(t, int64(3), body["deleted"])
	mockSvc.AssertExpectations(t)
}

func TestExportDocumentContent(t *testing.T) {
	mockSvc := new(serviceMocks.MockDocumentService)
	app := fiber.New()
	app.Get("/documents/:id/content", ExportDocumentContent(mockSvc))

	t.Run("payload", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("ExportBase64", mock.Anything, id).Return("JVBERg==", true, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/documents/"+id+"/content", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var body map[string]string
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "JVBERg==", body["content"])
	})

	t.Run("no payload", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("ExportBase64", mock.Anything, id).Return("", false, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/documents/"+id+"/content", nil))

		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	})

	t.Run("missing document", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("ExportBase64", mock.Anything, id).Return("", false, service.ErrNotFound).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/documents/"+id+"/content", nil))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
	mockSvc.AssertExpectations(t)
}

func TestExportAllDocuments(t *testing.T) {
	mockSvc := new(serviceMocks.MockDocumentService)
	app := fiber.New()
	app.Get("/documents/export", ExportAllDocuments(mockSvc))

	mockSvc.On("ExportAll", mock.Anything).Return([]service.ExportedDocument{{ID: "1", Content: "AA=="}}, nil).Once()

	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/documents/export", nil))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body struct {
		Data  []service.ExportedDocument `json:"data"`
		Total int                        `json:"total"`
	}
	json.NewDecoder(resp.Body).Decode(&body)
	assert.Equal(t, 1, body.Total)
	assert.Equal(t, "AA==", body.Data[0].Content)
	mockSvc.AssertExpectations(t)
}

func TestDocumentPages(t *testing.T) {
	mockSvc := new(serviceMocks.MockDocumentService)
	app := fiber.New()
	app.Get("/documents/:id/pages", DocumentPages(mockSvc))

	t.Run("success", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("PageCount", mock.Anything, id).Return(12, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/documents/"+id+"/pages", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var body map[string]any
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, float64(12), body["pages"])
	})

	t.Run("no payload", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("PageCount", mock.Anything, id).Return(0, service.ErrNoPayload).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/documents/"+id+"/pages", nil))

		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		assert.Equal(t, "NO_PAYLOAD", decodeError(t, resp).Error.Code)
	})

	t.Run("unreadable pdf", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("PageCount", mock.Anything, id).
			Return(0, fmt.Errorf("count pages: %w", pdfinfo.ErrUnreadable)).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/documents/"+id+"/pages", nil))

		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		assert.Equal(t, "UNREADABLE_PDF", decodeError(t, resp).Error.Code)
	})
	mockSvc.AssertExpectations(t)
}

func TestDocumentPages_SignedPayloadThatDoesNotParse(t *testing.T) {
	id := uuid.New().String()
	payload := []byte("%PDF-1.7\n" + strings.Repeat("x", 2000))
	require.NoError(t, ingest.Validate(bytes.NewReader(payload), "application/pdf", int64(len(payload))))

	mRepo := new(repoMocks.MockDocumentRepository)
	mRepo.On("FindFileData", mock.Anything, id).Return(payload, nil).Once()

	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	app.Get("/documents/:id/pages", DocumentPages(service.NewDocumentService(mRepo, nil, logger.Nop())))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/documents/"+id+"/pages", nil))
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "UNREADABLE_PDF", decodeError(t, resp).Error.Code)
	mRepo.AssertExpectations(t)
}

func TestRouting(t *testing.T) {
	app := fiber.New(fiber.Config{
		ErrorHandler: ErrorHandler(),
	})

	mockSvc := new(serviceMocks.MockDocumentService)
	provider := new(authMocks.MockProvider)
	provider.On("CurrentUser", mock.Anything, "good").Return(&model.User{ID: "u1"}, nil)

	RegisterRoutes(app, Dependencies{
		Documents: mockSvc,
		Auth:      provider,
		Gatherer:  prometheus.NewRegistry(),
	})

	t.Run("not found route", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/non-existent", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "NOT_FOUND", decodeError(t, resp).Error.Code)
	})

	t.Run("method not allowed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
		assert.Equal(t, "METHOD_NOT_ALLOWED", decodeError(t, resp).Error.Code)
	})

	t.Run("documents require a token", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/documents", nil))

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "UNAUTHORIZED", decodeError(t, resp).Error.Code)
	})

	t.Run("export route is not taken for an id", func(t *testing.T) {
		mockSvc.On("ExportAll", mock.Anything).Return([]service.ExportedDocument{}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/documents/export", nil)
		req.Header.Set("Authorization", "Bearer good")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("metrics endpoint", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}

func TestErrorHandler_BodyLimit(t *testing.T) {
	app := fiber.New(fiber.Config{
		ErrorHandler:          ErrorHandler(),
		BodyLimit:             16,
		DisableStartupMessage: true,
	})
	app.Post("/documents", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusCreated) })

	// app.Test surfaces the limit as a client error, so serve on a real socket.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() { _ = app.Listener(ln) }()
	t.Cleanup(func() { _ = app.Shutdown() })

	resp, err := http.Post("http://"+ln.Addr().String()+"/documents", "application/pdf", strings.NewReader(strings.Repeat("x", 64)))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)
	assert.Equal(t, "FILE_TOO_LARGE", decodeError(t, resp).Error.Code)
}
