// Package repository contains the Record Store abstractions.
// Implementations live in subpackages (e.g., postgres) and contain no business logic.
package repository

import (
	"context"

	"docadmin/internal/model"
)

// DocumentRepository defines data access for documents using SQL queries only.
type DocumentRepository interface {
	// Insert stores a new document including its payload and returns the
	// stored metadata with the database-assigned ID. FileData is not echoed back.
	Insert(ctx context.Context, doc *model.Document) (*model.Document, error)

	// FindByID returns document metadata by ID, or sql.ErrNoRows.
	FindByID(ctx context.Context, id string) (*model.Document, error)

	// FindFileData returns the stored payload, which is nil when the row has
	// none. Returns sql.ErrNoRows when the row does not exist.
	FindFileData(ctx context.Context, id string) ([]byte, error)

	// List returns documents newest first, optionally filtered by product type.
	List(ctx context.Context, q DocumentQuery) (*PageResult[model.Document], error)

	// Update applies a partial update. Returns sql.ErrNoRows when nothing matched.
	Update(ctx context.Context, id string, upd model.DocumentUpdate) error

	// Delete removes a document by ID. It returns nil if the row was deleted or did not exist.
	Delete(ctx context.Context, id string) error

	// DeleteAll removes every document and reports how many rows were removed.
	DeleteAll(ctx context.Context) (int64, error)
}

// DocumentQuery filters and paginates List. An empty ProductType matches all
// rows; a non-positive Limit returns every matching row.
type DocumentQuery struct {
	ProductType string
	PageQuery
}

// PageQuery holds limit/offset pagination parameters.
type PageQuery struct {
	Limit  int
	Offset int
}

// PageResult is a generic pagination result wrapper.
// T is typically a model type.
type PageResult[T any] struct {
	Items []T
	Total int
}
