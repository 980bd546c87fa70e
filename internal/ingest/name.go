package ingest

import (
	"strings"

	"docadmin/internal/model"
)

var typeLabels = map[model.DocumentType]string{
	model.TypeTDS:          "Technical Data Sheet",
	model.TypeESR:          "Evaluation Report",
	model.TypeMSDS:         "Material Safety Data Sheet",
	model.TypeLEED:         "LEED Credit Guide",
	model.TypeInstallation: "Installation Guide",
	model.TypeWarranty:     "Limited Warranty",
	model.TypeAcoustic:     "Acoustical Performance",
	model.TypePartSpec:     "3-Part Specifications",
}

// Label returns the canonical human-readable label for t.
func Label(t model.DocumentType) (string, bool) {
	l, ok := typeLabels[t]
	return l, ok
}

// ResolveName returns the canonical label for t, falling back to filename
// without its trailing ".pdf" (any case) when t has no label.
func ResolveName(filename string, t model.DocumentType) string {
	if l, ok := Label(t); ok {
		return l
	}
	return trimPDFExt(filename)
}

func trimPDFExt(filename string) string {
	const ext = ".pdf"
	if len(filename) >= len(ext) && strings.EqualFold(filename[len(filename)-len(ext):], ext) {
		return filename[:len(filename)-len(ext)]
	}
	return filename
}
