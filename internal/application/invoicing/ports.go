package invoicing

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ArtifactStore issues short-lived URLs for rendered document files.
// Rendering itself happens outside this service.
type ArtifactStore interface {
	DownloadURL(ctx context.Context, key string, expires time.Duration) (string, error)
	UploadURL(ctx context.Context, key, contentType string, expires time.Duration) (string, error)
	Exists(ctx context.Context, key string) (bool, error)
}

// MetricsRecorder receives ledger business measurements
type MetricsRecorder interface {
	RecordDocument(ctx context.Context, tenantID uuid.UUID, kind, operation string)
	RecordPayment(ctx context.Context, tenantID uuid.UUID, operation, outcome string)
}

// SummaryExporter renders an invoice summary as a spreadsheet
type SummaryExporter interface {
	InvoiceSummary(summary *InvoiceSummaryResponse) ([]byte, error)
}

type nopMetrics struct{}

func (nopMetrics) RecordDocument(context.Context, uuid.UUID, string, string) {}
func (nopMetrics) RecordPayment(context.Context, uuid.UUID, string, string)  {}
