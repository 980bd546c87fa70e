package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"docadmin/internal/model"
	"docadmin/internal/repository"
)

// DocumentPostgres is a PostgreSQL implementation of repository.DocumentRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type DocumentPostgres struct {
	db *sql.DB
}

// NewDocumentPostgres creates a new DocumentPostgres repository.
func NewDocumentPostgres(db *sql.DB) *DocumentPostgres {
	return &DocumentPostgres{db: db}
}

var _ repository.DocumentRepository = (*DocumentPostgres)(nil)

// documentColumns excludes file_data so listings never drag payloads along.
const documentColumns = `id, name, description, filename, size, type, required, products, product_type, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDocument(row rowScanner) (*model.Document, error) {
	var (
		d        model.Document
		docType  string
		products []byte
	)
	if err := row.Scan(
		&d.ID,
		&d.Name,
		&d.Description,
		&d.Filename,
		&d.Size,
		&docType,
		&d.Required,
		&products,
		&d.ProductType,
		&d.CreatedAt,
		&d.UpdatedAt,
	); err != nil {
		return nil, err
	}
	d.Type = model.DocumentType(docType)
	d.Products = []string{}
	if len(products) > 0 {
		if err := json.Unmarshal(products, &d.Products); err != nil {
			return nil, fmt.Errorf("decode products: %w", err)
		}
	}
	return &d, nil
}

func encodeProducts(p []string) (string, error) {
	if p == nil {
		p = []string{}
	}
	b, err := json.Marshal(p)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Insert stores a new document row with its payload and returns the stored metadata.
func (r *DocumentPostgres) Insert(ctx context.Context, doc *model.Document) (*model.Document, error) {
	products, err := encodeProducts(doc.Products)
	if err != nil {
		return nil, fmt.Errorf("encode products: %w", err)
	}
	const q = `
		INSERT INTO documents (name, description, filename, size, type, required, products, product_type, file_data)
		VALUES ($1, $2, $3, $4, $5, $6, $7::jsonb, $8, $9)
		RETURNING ` + documentColumns
	row := r.db.QueryRowContext(ctx, q,
		doc.Name,
		doc.Description,
		doc.Filename,
		doc.Size,
		string(doc.Type),
		doc.Required,
		products,
		doc.ProductType,
		doc.FileData,
	)
	return scanDocument(row)
}

// FindByID fetches a single document's metadata by its ID.
func (r *DocumentPostgres) FindByID(ctx context.Context, id string) (*model.Document, error) {
	const q = `SELECT ` + documentColumns + ` FROM documents WHERE id = $1`
	return scanDocument(r.db.QueryRowContext(ctx, q, id))
}

// FindFileData returns the raw payload of a document.
func (r *DocumentPostgres) FindFileData(ctx context.Context, id string) ([]byte, error) {
	const q = `SELECT file_data FROM documents WHERE id = $1`
	var data []byte
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&data); err != nil {
		return nil, err
	}
	return data, nil
}

// List returns documents newest first with an optional product type filter.
func (r *DocumentPostgres) List(ctx context.Context, dq repository.DocumentQuery) (*repository.PageResult[model.Document], error) {
	var (
		where string
		args  []any
	)
	if dq.ProductType != "" {
		where = ` WHERE product_type = $1`
		args = append(args, dq.ProductType)
	}

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM documents`+where, args...).Scan(&total); err != nil {
		return nil, err
	}

	q := `SELECT ` + documentColumns + ` FROM documents` + where + ` ORDER BY created_at DESC, id DESC`
	if dq.Limit > 0 {
		q += fmt.Sprintf(` LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
		args = append(args, dq.Limit, dq.Offset)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Document, 0)
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.Document]{
		Items: items,
		Total: total,
	}, nil
}

// Update applies the non-nil fields of upd and bumps updated_at.
func (r *DocumentPostgres) Update(ctx context.Context, id string, upd model.DocumentUpdate) error {
	var (
		sets []string
		args []any
	)
	add := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if upd.Name != nil {
		add("name", *upd.Name)
	}
	if upd.Description != nil {
		add("description", *upd.Description)
	}
	if upd.Type != nil {
		add("type", string(*upd.Type))
	}
	if upd.Products != nil {
		products, err := encodeProducts(upd.Products)
		if err != nil {
			return fmt.Errorf("encode products: %w", err)
		}
		args = append(args, products)
		sets = append(sets, fmt.Sprintf("products = $%d::jsonb", len(args)))
	}
	if len(sets) == 0 {
		return nil
	}
	sets = append(sets, "updated_at = now()")
	args = append(args, id)

	q := fmt.Sprintf(`UPDATE documents SET %s WHERE id = $%d`, strings.Join(sets, ", "), len(args))
	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes a document by ID. It does not return an error if the row does not exist.
func (r *DocumentPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM documents WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}

// DeleteAll removes every document row.
func (r *DocumentPostgres) DeleteAll(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM documents`)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
