// Package pdfinfo reads structural facts from stored PDF payloads.
package pdfinfo

import (
	"bytes"
	"errors"
	"fmt"
	"sync"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

var (
	// ErrEmpty is returned for a nil or empty payload.
	ErrEmpty = errors.New("empty pdf payload")
	// ErrUnreadable wraps parser failures on a non-empty payload. A file can
	// carry the %PDF signature and still not parse.
	ErrUnreadable = errors.New("unreadable pdf")
)

var configOnce sync.Once

// pdfcpu otherwise creates a config directory under the user's home.
func configuration() *model.Configuration {
	configOnce.Do(api.DisableConfigDir)
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return conf
}

// PageCount parses data and returns its number of pages.
func PageCount(data []byte) (int, error) {
	if len(data) == 0 {
		return 0, ErrEmpty
	}
	n, err := api.PageCount(bytes.NewReader(data), configuration())
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrUnreadable, err)
	}
	return n, nil
}
