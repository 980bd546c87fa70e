package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"docadmin/internal/logger"
	"docadmin/internal/storage"
)

const exportPrefix = "exports"

var ErrExportNotFound = errors.New("export not found")

// ExportBundle is the JSON document written to object storage.
type ExportBundle struct {
	ID          string             `json:"id"`
	GeneratedAt time.Time          `json:"generated_at"`
	Documents   []ExportedDocument `json:"documents"`
}

// PublishedExport tells the caller where a bundle was written.
type PublishedExport struct {
	ID        string    `json:"id"`
	Key       string    `json:"key"`
	Count     int       `json:"count"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}

// ExportService archives document exports in object storage.
type ExportService interface {
	// Publish writes every exportable document to a new bundle.
	Publish(ctx context.Context) (*PublishedExport, error)

	// Open streams a bundle back. The caller closes the reader.
	Open(ctx context.Context, id string) (io.ReadCloser, storage.ObjectInfo, error)

	// Remove deletes a bundle.
	Remove(ctx context.Context, id string) error
}

type exportService struct {
	docs       DocumentService
	store      storage.Storage
	presignTTL time.Duration
	log        *logger.Logger
	now        func() time.Time
}

// NewExportService constructs an ExportService. A non-positive presignTTL
// defaults to 15 minutes.
func NewExportService(docs DocumentService, store storage.Storage, presignTTL time.Duration, log *logger.Logger) ExportService {
	if presignTTL <= 0 {
		presignTTL = 15 * time.Minute
	}
	return &exportService{
		docs:       docs,
		store:      store,
		presignTTL: presignTTL,
		log:        log.With("service", "ExportService"),
		now:        time.Now,
	}
}

func exportKey(id string) string {
	return path.Join(exportPrefix, id+".json")
}

func (s *exportService) Publish(ctx context.Context) (*PublishedExport, error) {
	ctx, span := tracer.Start(ctx, "ExportService.Publish")
	defer span.End()

	docs, err := s.docs.ExportAll(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("collect documents: %w", err)
	}

	bundle := ExportBundle{
		ID:          uuid.New().String(),
		GeneratedAt: s.now().UTC(),
		Documents:   docs,
	}
	body, err := json.Marshal(bundle)
	if err != nil {
		return nil, fmt.Errorf("encode bundle: %w", err)
	}

	key := exportKey(bundle.ID)
	span.SetAttributes(attribute.String("export.key", key), attribute.Int("export.count", len(docs)))

	if _, err := s.store.Put(ctx, key, bytes.NewReader(body), storage.PutObjectOptions{
		Size:        int64(len(body)),
		ContentType: "application/json",
		Metadata:    map[string]string{"document-count": fmt.Sprint(len(docs))},
	}); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	url, err := s.store.PresignGet(ctx, key, s.presignTTL)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("presign export: %w", err)
	}

	s.log.Info("export published", "id", bundle.ID, "count", len(docs))
	return &PublishedExport{
		ID:        bundle.ID,
		Key:       key,
		Count:     len(docs),
		URL:       url,
		ExpiresAt: s.now().Add(s.presignTTL).UTC(),
	}, nil
}

func (s *exportService) Open(ctx context.Context, id string) (io.ReadCloser, storage.ObjectInfo, error) {
	if err := validateExportID(id); err != nil {
		return nil, storage.ObjectInfo{}, err
	}
	rc, info, err := s.store.Get(ctx, exportKey(id))
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return nil, storage.ObjectInfo{}, ErrExportNotFound
		}
		return nil, storage.ObjectInfo{}, fmt.Errorf("open export: %w", err)
	}
	return rc, info, nil
}

func (s *exportService) Remove(ctx context.Context, id string) error {
	if err := validateExportID(id); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, exportKey(id)); err != nil {
		return fmt.Errorf("delete storage: %w", err)
	}
	s.log.Info("export removed", "id", id)
	return nil
}

// Export ids are generated UUIDs; anything else could escape the prefix.
func validateExportID(id string) error {
	if id == "" {
		return ErrIDRequired
	}
	if _, err := uuid.Parse(id); err != nil {
		return ErrExportNotFound
	}
	return nil
}
