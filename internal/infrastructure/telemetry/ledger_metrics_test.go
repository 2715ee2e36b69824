package telemetry_test

import (
	"context"
	"testing"
	"time"

	"github.com/erp/ledger/internal/infrastructure/telemetry"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func newTestMeter(t *testing.T) (*telemetry.LedgerMetrics, *sdkmetric.ManualReader) {
	t.Helper()
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	m, err := telemetry.NewLedgerMetrics(mp.Meter("ledger-test"))
	require.NoError(t, err)
	return m, reader
}

func collect(t *testing.T, reader *sdkmetric.ManualReader) map[string]metricdata.Metrics {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	out := map[string]metricdata.Metrics{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			out[m.Name] = m
		}
	}
	return out
}

func TestNewLedgerMetrics_NilMeter(t *testing.T) {
	_, err := telemetry.NewLedgerMetrics(nil)
	assert.ErrorIs(t, err, telemetry.ErrMeterNil)
}

func TestLedgerMetrics_Record(t *testing.T) {
	m, reader := newTestMeter(t)
	ctx := context.Background()
	tenant := uuid.New()

	m.RecordDocument(ctx, tenant, "invoice", "create")
	m.RecordDocument(ctx, tenant, "invoice", "create")
	m.RecordPayment(ctx, tenant, "create", "exceeded")
	m.RecordRequest(ctx, "POST", "/api/v1/payments", 422, 30*time.Millisecond)

	got := collect(t, reader)

	docs, ok := got["ledger_document_operations_total"].Data.(metricdata.Sum[int64])
	require.True(t, ok)
	require.Len(t, docs.DataPoints, 1)
	assert.Equal(t, int64(2), docs.DataPoints[0].Value)
	kind, _ := docs.DataPoints[0].Attributes.Value(telemetry.AttrKind)
	assert.Equal(t, "invoice", kind.AsString())

	payments, ok := got["ledger_payment_operations_total"].Data.(metricdata.Sum[int64])
	require.True(t, ok)
	outcome, _ := payments.DataPoints[0].Attributes.Value(telemetry.AttrOutcome)
	assert.Equal(t, "exceeded", outcome.AsString())

	latency, ok := got["ledger_http_request_duration_seconds"].Data.(metricdata.Histogram[float64])
	require.True(t, ok)
	require.Len(t, latency.DataPoints, 1)
	assert.Equal(t, uint64(1), latency.DataPoints[0].Count)
	assert.Equal(t, telemetry.HTTPDurationBuckets, latency.DataPoints[0].Bounds)
	status, _ := latency.DataPoints[0].Attributes.Value(telemetry.AttrHTTPStatus)
	assert.Equal(t, int64(422), status.AsInt64())
}
