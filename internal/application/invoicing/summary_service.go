package invoicing

import (
	"context"
	"fmt"
	"time"

	"github.com/erp/ledger/internal/domain/invoicing"
	"github.com/erp/ledger/internal/domain/shared"
	"github.com/erp/ledger/internal/infrastructure/telemetry"
	"github.com/google/uuid"
)

// SummaryService reports per-period aggregates over live documents
type SummaryService struct {
	invoiceRepo invoicing.InvoiceRepository
	quoteRepo   invoicing.QuoteRepository
	paymentRepo invoicing.PaymentRepository
	exporter    SummaryExporter
	now         func() time.Time
}

// NewSummaryService creates a new SummaryService
func NewSummaryService(
	invoiceRepo invoicing.InvoiceRepository,
	quoteRepo invoicing.QuoteRepository,
	paymentRepo invoicing.PaymentRepository,
) *SummaryService {
	return &SummaryService{
		invoiceRepo: invoiceRepo,
		quoteRepo:   quoteRepo,
		paymentRepo: paymentRepo,
		now:         time.Now,
	}
}

// SetExporter sets the spreadsheet exporter
func (s *SummaryService) SetExporter(exporter SummaryExporter) {
	s.exporter = exporter
}

// InvoiceSummary counts invoices by status, by payment status and overdue,
// and sums the total and the still-unpaid amount.
func (s *SummaryService) InvoiceSummary(ctx context.Context, tenantID uuid.UUID, periodType string) (*InvoiceSummaryResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "summary", "invoice")
	defer span.End()

	period, err := invoicing.ParsePeriod(periodType)
	if err != nil {
		return nil, err
	}
	now := s.now()
	window := invoicing.WindowFor(period, now)

	stats, err := s.invoiceRepo.Stats(ctx, tenantID, window, now)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	performance := make([]StatusPerformance, 0, 10)
	performance = append(performance, fillBuckets(invoiceStatusNames(), stats.ByStatus, stats.Count, false)...)
	performance = append(performance, fillBuckets(paymentStatusNames(), stats.ByPaymentStatus, stats.Count, false)...)
	performance = append(performance, StatusPerformance{
		Status:     "overdue",
		Count:      stats.Overdue,
		Percentage: invoicing.Percentage(stats.Overdue, stats.Count),
	})

	return &InvoiceSummaryResponse{
		Period:      string(period),
		From:        window.From,
		To:          window.To,
		Count:       stats.Count,
		Total:       stats.Total,
		TotalUndue:  stats.Undue,
		Performance: performance,
	}, nil
}

// QuoteSummary counts quotes and sums their totals per status
func (s *SummaryService) QuoteSummary(ctx context.Context, tenantID uuid.UUID, periodType string) (*QuoteSummaryResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "summary", "quote")
	defer span.End()

	period, err := invoicing.ParsePeriod(periodType)
	if err != nil {
		return nil, err
	}
	window := invoicing.WindowFor(period, s.now())

	stats, err := s.quoteRepo.Stats(ctx, tenantID, window)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	return &QuoteSummaryResponse{
		Period:      string(period),
		From:        window.From,
		To:          window.To,
		Count:       stats.Count,
		Performance: fillBuckets(quoteStatusNames(), stats.ByStatus, stats.Count, true),
	}, nil
}

// PaymentSummary counts payments and sums their amounts
func (s *SummaryService) PaymentSummary(ctx context.Context, tenantID uuid.UUID, periodType string) (*PaymentSummaryResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "summary", "payment")
	defer span.End()

	period, err := invoicing.ParsePeriod(periodType)
	if err != nil {
		return nil, err
	}
	window := invoicing.WindowFor(period, s.now())

	stats, err := s.paymentRepo.Stats(ctx, tenantID, window)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	return &PaymentSummaryResponse{
		Period: string(period),
		From:   window.From,
		To:     window.To,
		Count:  stats.Count,
		Total:  stats.Total,
	}, nil
}

// ExportInvoiceSummary renders the invoice summary as a spreadsheet and
// returns the file contents with a suggested file name.
func (s *SummaryService) ExportInvoiceSummary(ctx context.Context, tenantID uuid.UUID, periodType string) ([]byte, string, error) {
	if s.exporter == nil {
		return nil, "", shared.NewDomainError(shared.CodeInvalidState, "Summary export is not configured")
	}
	summary, err := s.InvoiceSummary(ctx, tenantID, periodType)
	if err != nil {
		return nil, "", err
	}
	data, err := s.exporter.InvoiceSummary(summary)
	if err != nil {
		return nil, "", fmt.Errorf("render invoice summary: %w", err)
	}
	name := fmt.Sprintf("invoice-summary-%s-%s.xlsx", summary.Period, summary.From.Format("2006-01-02"))
	return data, name, nil
}

// fillBuckets returns one row per known status, in order, including zero rows
func fillBuckets(statuses []string, buckets []invoicing.StatusBucket, total int64, withAmount bool) []StatusPerformance {
	byStatus := make(map[string]invoicing.StatusBucket, len(buckets))
	for _, b := range buckets {
		byStatus[b.Status] = b
	}

	rows := make([]StatusPerformance, 0, len(statuses))
	for _, status := range statuses {
		b := byStatus[status]
		row := StatusPerformance{
			Status:     status,
			Count:      b.Count,
			Percentage: invoicing.Percentage(b.Count, total),
		}
		if withAmount {
			amount := b.Total
			row.TotalAmount = &amount
		}
		rows = append(rows, row)
	}
	return rows
}

func invoiceStatusNames() []string {
	all := invoicing.AllInvoiceStatuses()
	out := make([]string, len(all))
	for i, s := range all {
		out[i] = string(s)
	}
	return out
}

func paymentStatusNames() []string {
	all := invoicing.AllPaymentStatuses()
	out := make([]string, len(all))
	for i, s := range all {
		out[i] = string(s)
	}
	return out
}

func quoteStatusNames() []string {
	all := invoicing.AllQuoteStatuses()
	out := make([]string, len(all))
	for i, s := range all {
		out[i] = string(s)
	}
	return out
}
