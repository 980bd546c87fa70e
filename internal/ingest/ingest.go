// Package ingest turns an uploaded PDF into a classified document record.
//
// The pipeline is a set of pure functions (Validate, Classify, ResolveName,
// EncodeToText) plus the Ingest orchestrator, which receives its Record Store
// explicitly instead of reaching for a shared client.
package ingest

import (
	"context"
	"fmt"
	"io"

	"docadmin/internal/model"
)

// Progress milestones reported by Ingest.
const (
	ProgressValidated = 25
	ProgressRead      = 50
	ProgressStored    = 100
)

// Inserter is the slice of the Record Store the pipeline needs.
type Inserter interface {
	// Insert persists doc and returns the stored record with its ID assigned.
	Insert(ctx context.Context, doc *model.Document) (*model.Document, error)
}

// ProgressSink receives percentage milestones. Calls are fire-and-forget.
type ProgressSink func(percent int)

// ChannelSink adapts ch to a ProgressSink. Sends never block; a milestone is
// dropped when nobody is reading and the buffer is full.
func ChannelSink(ch chan<- int) ProgressSink {
	return func(percent int) {
		select {
		case ch <- percent:
		default:
		}
	}
}

func (p ProgressSink) emit(percent int) {
	if p != nil {
		p(percent)
	}
}

// Upload describes a single file handed to the pipeline.
type Upload struct {
	Content     io.ReaderAt
	Filename    string
	MimeType    string
	Size        int64
	ProductType string
}

// Build validates and classifies up and assembles the record that would be
// stored, without touching any store.
func Build(up Upload, progress ProgressSink) (*model.Document, error) {
	if err := Validate(up.Content, up.MimeType, up.Size); err != nil {
		return nil, &InvalidError{Reason: err}
	}
	progress.emit(ProgressValidated)

	data, err := io.ReadAll(io.NewSectionReader(up.Content, 0, up.Size))
	if err != nil {
		return nil, &InvalidError{Reason: fmt.Errorf("%w: %v", ErrReadFailure, err)}
	}
	if int64(len(data)) != up.Size {
		return nil, &InvalidError{Reason: fmt.Errorf("%w: read %d of %d bytes", ErrReadFailure, len(data), up.Size)}
	}
	progress.emit(ProgressRead)

	docType := Classify(up.Filename)
	return &model.Document{
		Name:        ResolveName(up.Filename, docType),
		Description: string(docType) + " Document",
		Filename:    up.Filename,
		Size:        int64(len(data)),
		Type:        docType,
		Required:    false,
		Products:    []string{},
		ProductType: up.ProductType,
		FileData:    data,
	}, nil
}

// Ingest runs the full pipeline and persists the result through store.
// Validation failures return *InvalidError and never reach the store; store
// failures return *StoreError. Nothing is retried.
func Ingest(ctx context.Context, store Inserter, up Upload, progress ProgressSink) (*model.Document, error) {
	doc, err := Build(up, progress)
	if err != nil {
		return nil, err
	}

	stored, err := store.Insert(ctx, doc)
	if err != nil {
		return nil, &StoreError{Err: err}
	}
	progress.emit(ProgressStored)
	return stored, nil
}
