package telemetry

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metric attribute keys
var (
	AttrTenantID   = attribute.Key("tenant_id")
	AttrKind       = attribute.Key("kind")
	AttrOperation  = attribute.Key("operation")
	AttrOutcome    = attribute.Key("outcome")
	AttrHTTPMethod = attribute.Key("http.method")
	AttrHTTPRoute  = attribute.Key("http.route")
	AttrHTTPStatus = attribute.Key("http.status_code")
	AttrDBTable    = attribute.Key("db.table")
)

// HTTPDurationBuckets are histogram boundaries for request latency in seconds
var HTTPDurationBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10}

// ErrMeterNil is returned when a metrics constructor gets no meter
var ErrMeterNil = errors.New("telemetry: meter cannot be nil")

// LedgerMetrics counts document and payment mutations and HTTP requests
type LedgerMetrics struct {
	documents    metric.Int64Counter
	payments     metric.Int64Counter
	requests     metric.Int64Counter
	requestTimes metric.Float64Histogram
}

// NewLedgerMetrics creates the ledger instruments on meter
func NewLedgerMetrics(meter metric.Meter) (*LedgerMetrics, error) {
	if meter == nil {
		return nil, ErrMeterNil
	}
	m := &LedgerMetrics{}
	var err error

	m.documents, err = meter.Int64Counter("ledger_document_operations_total",
		metric.WithDescription("Invoice and quote mutations by operation"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return nil, err
	}
	m.payments, err = meter.Int64Counter("ledger_payment_operations_total",
		metric.WithDescription("Payment mutations by operation and outcome"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return nil, err
	}
	m.requests, err = meter.Int64Counter("ledger_http_requests_total",
		metric.WithDescription("HTTP requests by route and status"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, err
	}
	m.requestTimes, err = meter.Float64Histogram("ledger_http_request_duration_seconds",
		metric.WithDescription("HTTP request latency"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(HTTPDurationBuckets...),
	)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// RecordDocument counts an invoice or quote mutation
func (m *LedgerMetrics) RecordDocument(ctx context.Context, tenantID uuid.UUID, kind, operation string) {
	m.documents.Add(ctx, 1, metric.WithAttributes(
		AttrTenantID.String(tenantID.String()),
		AttrKind.String(kind),
		AttrOperation.String(operation),
	))
}

// RecordPayment counts a payment mutation attempt by outcome
func (m *LedgerMetrics) RecordPayment(ctx context.Context, tenantID uuid.UUID, operation, outcome string) {
	m.payments.Add(ctx, 1, metric.WithAttributes(
		AttrTenantID.String(tenantID.String()),
		AttrOperation.String(operation),
		AttrOutcome.String(outcome),
	))
}

// RecordRequest counts a served HTTP request and its latency
func (m *LedgerMetrics) RecordRequest(ctx context.Context, method, route string, status int, elapsed time.Duration) {
	attrs := metric.WithAttributes(
		AttrHTTPMethod.String(method),
		AttrHTTPRoute.String(route),
		AttrHTTPStatus.Int(status),
	)
	m.requests.Add(ctx, 1, attrs)
	m.requestTimes.Record(ctx, elapsed.Seconds(), attrs)
}
