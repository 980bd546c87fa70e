package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"docadmin/internal/ingest"
	"docadmin/internal/logger"
	"docadmin/internal/metrics"
	"docadmin/internal/model"
	"docadmin/internal/pdfinfo"
	"docadmin/internal/repository"
)

var (
	ErrIDRequired  = errors.New("id is required")
	ErrNotFound    = errors.New("document not found")
	ErrInvalidType = errors.New("invalid document type")
	ErrEmptyUpdate = errors.New("no fields to update")
	ErrNoPayload   = errors.New("document has no payload")
)

var tracer = otel.Tracer("docadmin/service")

// UploadInput carries one uploaded file into the pipeline.
type UploadInput struct {
	Content     io.ReaderAt
	Filename    string
	MimeType    string
	Size        int64
	ProductType string
}

// ListInput filters and paginates document listings. A zero Limit lists
// every matching document.
type ListInput struct {
	ProductType string
	Limit       int
	Offset      int
}

// DocumentListResult is the service-level DTO for paginated documents.
type DocumentListResult struct {
	Items []model.Document `json:"data"`
	Total int              `json:"total"`
}

// ExportedDocument is a document with its payload in text form.
type ExportedDocument struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Filename    string             `json:"filename"`
	Type        model.DocumentType `json:"type"`
	ProductType string             `json:"product_type"`
	Content     string             `json:"content"`
}

// DocumentService defines the use cases for handling documents.
type DocumentService interface {
	// Upload validates, classifies and stores a PDF. Pipeline errors
	// (*ingest.InvalidError, *ingest.StoreError) are returned unchanged.
	Upload(ctx context.Context, in UploadInput, progress ingest.ProgressSink) (*model.Document, error)

	// List returns documents newest first with a total count.
	List(ctx context.Context, in ListInput) (*DocumentListResult, error)

	// Get returns a single document by its ID.
	Get(ctx context.Context, id string) (*model.Document, error)

	// Update applies a partial metadata update.
	Update(ctx context.Context, id string, upd model.DocumentUpdate) (*model.Document, error)

	// Delete removes a document by ID.
	Delete(ctx context.Context, id string) error

	// DeleteAll removes every document and returns how many were removed.
	DeleteAll(ctx context.Context) (int64, error)

	// ExportBase64 returns the payload as base64. ok is false when the
	// document exists but has no payload.
	ExportBase64(ctx context.Context, id string) (content string, ok bool, err error)

	// ExportAll exports every document that has a payload, in listing order.
	ExportAll(ctx context.Context) ([]ExportedDocument, error)

	// PageCount returns the number of pages of the stored PDF.
	PageCount(ctx context.Context, id string) (int, error)
}

type documentService struct {
	repo    repository.DocumentRepository
	metrics *metrics.Ingest
	log     *logger.Logger
}

// NewDocumentService constructs a new DocumentService. m may be nil.
func NewDocumentService(repo repository.DocumentRepository, m *metrics.Ingest, log *logger.Logger) DocumentService {
	return &documentService{repo: repo, metrics: m, log: log.With("service", "DocumentService")}
}

func (s *documentService) Upload(ctx context.Context, in UploadInput, progress ingest.ProgressSink) (*model.Document, error) {
	ctx, span := tracer.Start(ctx, "DocumentService.Upload", trace.WithAttributes(
		attribute.String("document.filename", in.Filename),
		attribute.Int64("document.size", in.Size),
	))
	defer span.End()

	doc, err := ingest.Ingest(ctx, s.repo, ingest.Upload{
		Content:     in.Content,
		Filename:    in.Filename,
		MimeType:    in.MimeType,
		Size:        in.Size,
		ProductType: in.ProductType,
	}, progress)
	s.metrics.Observe(doc, err)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, metrics.RejectReason(err))
		s.log.Warn("upload rejected", "filename", in.Filename, "reason", metrics.RejectReason(err), "error", err)
		return nil, err
	}

	span.SetAttributes(attribute.String("document.id", doc.ID), attribute.String("document.type", string(doc.Type)))
	s.log.Info("document stored", "id", doc.ID, "type", string(doc.Type), "size", doc.Size)
	return doc, nil
}

func (s *documentService) List(ctx context.Context, in ListInput) (*DocumentListResult, error) {
	if in.Limit < 0 {
		in.Limit = 0
	}
	if in.Offset < 0 {
		in.Offset = 0
	}

	res, err := s.repo.List(ctx, repository.DocumentQuery{
		ProductType: in.ProductType,
		PageQuery:   repository.PageQuery{Limit: in.Limit, Offset: in.Offset},
	})
	if err != nil {
		return nil, err
	}
	return &DocumentListResult{Items: res.Items, Total: res.Total}, nil
}

func (s *documentService) Get(ctx context.Context, id string) (*model.Document, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	doc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return doc, nil
}

func (s *documentService) Update(ctx context.Context, id string, upd model.DocumentUpdate) (*model.Document, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	if upd.IsEmpty() {
		return nil, ErrEmptyUpdate
	}
	if upd.Type != nil {
		if _, ok := model.ParseDocumentType(string(*upd.Type)); !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidType, *upd.Type)
		}
	}

	if err := s.repo.Update(ctx, id, upd); err != nil {
		return nil, notFound(err)
	}
	s.log.Info("document updated", "id", id)
	return s.Get(ctx, id)
}

func (s *documentService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("document deleted", "id", id)
	return nil
}

func (s *documentService) DeleteAll(ctx context.Context) (int64, error) {
	n, err := s.repo.DeleteAll(ctx)
	if err != nil {
		return 0, err
	}
	s.log.Warn("all documents deleted", "count", n)
	return n, nil
}

func (s *documentService) ExportBase64(ctx context.Context, id string) (string, bool, error) {
	if id == "" {
		return "", false, ErrIDRequired
	}
	data, err := s.repo.FindFileData(ctx, id)
	if err != nil {
		return "", false, notFound(err)
	}
	if data == nil {
		return "", false, nil
	}
	return ingest.EncodeToText(data), true, nil
}

func (s *documentService) ExportAll(ctx context.Context) ([]ExportedDocument, error) {
	ctx, span := tracer.Start(ctx, "DocumentService.ExportAll")
	defer span.End()

	res, err := s.repo.List(ctx, repository.DocumentQuery{})
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	out := make([]ExportedDocument, 0, len(res.Items))
	for _, doc := range res.Items {
		content, ok, err := s.ExportBase64(ctx, doc.ID)
		if errors.Is(err, ErrNotFound) {
			// removed between listing and export
			continue
		}
		if err != nil {
			span.RecordError(err)
			return nil, fmt.Errorf("export %s: %w", doc.ID, err)
		}
		if !ok {
			continue
		}
		out = append(out, ExportedDocument{
			ID:          doc.ID,
			Name:        doc.Name,
			Filename:    doc.Filename,
			Type:        doc.Type,
			ProductType: doc.ProductType,
			Content:     content,
		})
	}
	span.SetAttributes(attribute.Int("export.count", len(out)))
	return out, nil
}

func (s *documentService) PageCount(ctx context.Context, id string) (int, error) {
	if id == "" {
		return 0, ErrIDRequired
	}
	data, err := s.repo.FindFileData(ctx, id)
	if err != nil {
		return 0, notFound(err)
	}
	if len(data) == 0 {
		return 0, ErrNoPayload
	}
	n, err := pdfinfo.PageCount(data)
	if err != nil {
		return 0, fmt.Errorf("count pages: %w", err)
	}
	return n, nil
}

func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
