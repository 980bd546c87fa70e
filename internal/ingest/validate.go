package ingest

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

const (
	// PDFMimeType is the only accepted declared content type.
	PDFMimeType = "application/pdf"
	// MaxSize is the largest accepted payload (50 MiB).
	MaxSize int64 = 50 * 1024 * 1024
	// MinSize is the smallest payload that can plausibly be a PDF.
	MinSize int64 = 1024

	headerLen = 5
)

var pdfSignature = []byte("%PDF")

// Validate inspects an upload without side effects. Checks run in a fixed
// order and the first failure is returned: declared type, upper bound,
// lower bound, then the leading signature bytes.
func Validate(r io.ReaderAt, mimeType string, size int64) error {
	if mimeType != PDFMimeType {
		return ErrWrongType
	}
	if size > MaxSize {
		return ErrTooLarge
	}
	if size < MinSize {
		return ErrTooSmall
	}
	if r == nil {
		return ErrReadFailure
	}

	header := make([]byte, headerLen)
	n, err := r.ReadAt(header, 0)
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %v", ErrReadFailure, err)
	}
	if !bytes.HasPrefix(header[:n], pdfSignature) {
		return ErrBadSignature
	}
	return nil
}
