package ingest

import (
	"errors"
	"fmt"
)

// Validation failures. Each one rejects a single upload and is never fatal.
var (
	ErrWrongType    = errors.New("file must be a PDF document")
	ErrTooLarge     = errors.New("file size exceeds 50MB limit")
	ErrTooSmall     = errors.New("file is too small to be a valid PDF")
	ErrBadSignature = errors.New("file does not appear to be a valid PDF")
	ErrReadFailure  = errors.New("failed to read file")
)

// InvalidError is returned by Ingest when the upload fails validation.
// Reason is one of the validation sentinels, possibly wrapping an I/O cause.
type InvalidError struct {
	Reason error
}

func (e *InvalidError) Error() string {
	return fmt.Sprintf("invalid upload: %v", e.Reason)
}

func (e *InvalidError) Unwrap() error { return e.Reason }

// StoreError is returned by Ingest when the Record Store rejects the insert.
// The cause is passed through uninterpreted.
type StoreError struct {
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store document: %v", e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }
