// Package metrics holds the domain metrics of the ingestion pipeline.
// HTTP request metrics live in the middleware package.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"docadmin/internal/ingest"
	"docadmin/internal/model"
)

// Ingest counts accepted and rejected uploads.
type Ingest struct {
	accepted      *prometheus.CounterVec
	rejected      *prometheus.CounterVec
	acceptedBytes prometheus.Histogram
}

// NewIngest registers the ingestion collectors on reg.
func NewIngest(reg prometheus.Registerer) (*Ingest, error) {
	m := &Ingest{
		accepted: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "documents_ingested_total",
				Help: "Documents stored by the ingestion pipeline, by document type.",
			},
			[]string{"type"},
		),
		rejected: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "documents_rejected_total",
				Help: "Uploads rejected by the ingestion pipeline, by reason.",
			},
			[]string{"reason"},
		),
		acceptedBytes: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "documents_ingested_bytes",
			Help:    "Payload size of stored documents.",
			Buckets: prometheus.ExponentialBuckets(1024, 4, 10),
		}),
	}
	for _, c := range []prometheus.Collector{m.accepted, m.rejected, m.acceptedBytes} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Observe records the outcome of one Ingest call. A nil receiver is a no-op.
func (m *Ingest) Observe(doc *model.Document, err error) {
	if m == nil {
		return
	}
	if err != nil {
		m.rejected.WithLabelValues(RejectReason(err)).Inc()
		return
	}
	m.accepted.WithLabelValues(string(doc.Type)).Inc()
	m.acceptedBytes.Observe(float64(doc.Size))
}

// RejectReason maps a pipeline error to a low-cardinality label.
func RejectReason(err error) string {
	switch {
	case errors.Is(err, ingest.ErrWrongType):
		return "wrong_type"
	case errors.Is(err, ingest.ErrTooLarge):
		return "too_large"
	case errors.Is(err, ingest.ErrTooSmall):
		return "too_small"
	case errors.Is(err, ingest.ErrBadSignature):
		return "bad_signature"
	case errors.Is(err, ingest.ErrReadFailure):
		return "read_failure"
	default:
		var storeErr *ingest.StoreError
		if errors.As(err, &storeErr) {
			return "store_failure"
		}
		return "unknown"
	}
}
