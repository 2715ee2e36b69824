package invoicing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceRepository persists invoices. Reads never return removed rows.
type InvoiceRepository interface {
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*Invoice, error)

	// FindByIDForUpdate reads the invoice and locks its row until the
	// surrounding transaction ends.
	FindByIDForUpdate(ctx context.Context, tenantID, id uuid.UUID) (*Invoice, error)

	// Create inserts a new invoice with its pre-allocated id
	Create(ctx context.Context, inv *Invoice) error

	// Save writes all editable fields. The row must be live and still at
	// inv.Version-1; a removed or missing row yields NOT_FOUND and a stale
	// version yields CONCURRENCY_CONFLICT.
	Save(ctx context.Context, inv *Invoice) error

	// UpdateCredit writes credit and payment status only if the stored
	// credit still equals expectedCredit. Zero affected rows is a conflict.
	UpdateCredit(ctx context.Context, inv *Invoice, expectedCredit decimal.Decimal) error

	// SoftDelete flips removed=false to true; NOT_FOUND when nothing flipped
	SoftDelete(ctx context.Context, tenantID, id uuid.UUID) error

	Stats(ctx context.Context, tenantID uuid.UUID, window Window, now time.Time) (*InvoiceStats, error)
}

// QuoteRepository persists quotes
type QuoteRepository interface {
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*Quote, error)
	Create(ctx context.Context, q *Quote) error
	Save(ctx context.Context, q *Quote) error
	SoftDelete(ctx context.Context, tenantID, id uuid.UUID) error
	Stats(ctx context.Context, tenantID uuid.UUID, window Window) (*QuoteStats, error)
}

// PaymentRepository persists payments
type PaymentRepository interface {
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*Payment, error)
	Create(ctx context.Context, p *Payment) error
	Save(ctx context.Context, p *Payment) error
	SoftDelete(ctx context.Context, tenantID, id uuid.UUID) error

	// SoftDeleteByInvoice removes every live payment of an invoice and
	// returns how many were removed
	SoftDeleteByInvoice(ctx context.Context, tenantID, invoiceID uuid.UUID) (int64, error)

	// SumByInvoice totals the amounts of live payments of an invoice
	SumByInvoice(ctx context.Context, tenantID, invoiceID uuid.UUID) (decimal.Decimal, error)

	Stats(ctx context.Context, tenantID uuid.UUID, window Window) (*PaymentStats, error)
}
