package invoicing

import (
	"context"
	"sync"
	"time"

	"github.com/erp/ledger/internal/domain/invoicing"
	"github.com/erp/ledger/internal/domain/shared"
	"github.com/erp/ledger/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// memoryLedger is an in-memory record store with the same compare-and-swap
// rules as the SQL repositories. Execute serialises units of work and rolls
// every map back when fn fails.
type memoryLedger struct {
	txMu sync.Mutex
	mu   sync.Mutex

	invoices map[uuid.UUID]invoicing.Invoice
	quotes   map[uuid.UUID]invoicing.Quote
	payments map[uuid.UUID]invoicing.Payment
	counters map[string]int64
}

func newMemoryLedger() *memoryLedger {
	return &memoryLedger{
		invoices: make(map[uuid.UUID]invoicing.Invoice),
		quotes:   make(map[uuid.UUID]invoicing.Quote),
		payments: make(map[uuid.UUID]invoicing.Payment),
		counters: make(map[string]int64),
	}
}

func (l *memoryLedger) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	l.txMu.Lock()
	defer l.txMu.Unlock()

	l.mu.Lock()
	invoices := cloneMap(l.invoices)
	quotes := cloneMap(l.quotes)
	payments := cloneMap(l.payments)
	l.mu.Unlock()

	if err := fn(l); err != nil {
		l.mu.Lock()
		l.invoices, l.quotes, l.payments = invoices, quotes, payments
		l.mu.Unlock()
		return err
	}
	return nil
}

func (l *memoryLedger) Invoices() invoicing.InvoiceRepository { return memoryInvoices{l} }
func (l *memoryLedger) Quotes() invoicing.QuoteRepository     { return memoryQuotes{l} }
func (l *memoryLedger) Payments() invoicing.PaymentRepository { return memoryPayments{l} }

func (l *memoryLedger) IncrementAndGet(_ context.Context, key string) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.counters[key]++
	return l.counters[key], nil
}

// livePaymentSum is the invariant side of the credit: the sum of live payments
func (l *memoryLedger) livePaymentSum(invoiceID uuid.UUID) decimal.Decimal {
	l.mu.Lock()
	defer l.mu.Unlock()
	sum := decimal.Zero
	for _, p := range l.payments {
		if p.InvoiceID == invoiceID && !p.Removed {
			sum = valueobject.Add(sum, p.Amount)
		}
	}
	return sum
}

func (l *memoryLedger) storedInvoice(id uuid.UUID) invoicing.Invoice {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.invoices[id]
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

type memoryInvoices struct{ l *memoryLedger }

func (r memoryInvoices) FindByID(_ context.Context, tenantID, id uuid.UUID) (*invoicing.Invoice, error) {
	r.l.mu.Lock()
	defer r.l.mu.Unlock()
	inv, ok := r.l.invoices[id]
	if !ok || inv.Removed || inv.TenantID != tenantID {
		return nil, shared.ErrNotFound
	}
	inv.ClearDomainEvents()
	return &inv, nil
}

func (r memoryInvoices) FindByIDForUpdate(ctx context.Context, tenantID, id uuid.UUID) (*invoicing.Invoice, error) {
	return r.FindByID(ctx, tenantID, id)
}

func (r memoryInvoices) Create(_ context.Context, inv *invoicing.Invoice) error {
	r.l.mu.Lock()
	defer r.l.mu.Unlock()
	r.l.invoices[inv.ID] = *inv
	return nil
}

func (r memoryInvoices) Save(_ context.Context, inv *invoicing.Invoice) error {
	r.l.mu.Lock()
	defer r.l.mu.Unlock()
	stored, ok := r.l.invoices[inv.ID]
	if !ok || stored.Removed {
		return shared.ErrNotFound
	}
	if stored.Version != inv.Version-1 {
		return shared.ErrConcurrencyConflict
	}
	r.l.invoices[inv.ID] = *inv
	return nil
}

func (r memoryInvoices) UpdateCredit(_ context.Context, inv *invoicing.Invoice, expectedCredit decimal.Decimal) error {
	r.l.mu.Lock()
	defer r.l.mu.Unlock()
	stored, ok := r.l.invoices[inv.ID]
	if !ok || stored.Removed || !stored.Credit.Equal(expectedCredit) {
		return shared.ErrConcurrencyConflict
	}
	stored.Credit = inv.Credit
	stored.PaymentStatus = inv.PaymentStatus
	stored.Version = inv.Version
	r.l.invoices[inv.ID] = stored
	return nil
}

func (r memoryInvoices) SoftDelete(_ context.Context, tenantID, id uuid.UUID) error {
	r.l.mu.Lock()
	defer r.l.mu.Unlock()
	stored, ok := r.l.invoices[id]
	if !ok || stored.Removed || stored.TenantID != tenantID {
		return shared.ErrNotFound
	}
	stored.Removed = true
	r.l.invoices[id] = stored
	return nil
}

func (r memoryInvoices) Stats(_ context.Context, tenantID uuid.UUID, window invoicing.Window, _ time.Time) (*invoicing.InvoiceStats, error) {
	r.l.mu.Lock()
	defer r.l.mu.Unlock()
	stats := &invoicing.InvoiceStats{Total: decimal.Zero, Undue: decimal.Zero}
	for _, inv := range r.l.invoices {
		if inv.Removed || inv.TenantID != tenantID || !window.Contains(inv.Date) {
			continue
		}
		stats.Count++
		stats.Total = valueobject.Add(stats.Total, inv.Total)
		stats.Undue = valueobject.Add(stats.Undue, inv.MaxPayment())
	}
	return stats, nil
}

type memoryQuotes struct{ l *memoryLedger }

func (r memoryQuotes) FindByID(_ context.Context, tenantID, id uuid.UUID) (*invoicing.Quote, error) {
	r.l.mu.Lock()
	defer r.l.mu.Unlock()
	q, ok := r.l.quotes[id]
	if !ok || q.Removed || q.TenantID != tenantID {
		return nil, shared.ErrNotFound
	}
	q.ClearDomainEvents()
	return &q, nil
}

func (r memoryQuotes) Create(_ context.Context, q *invoicing.Quote) error {
	r.l.mu.Lock()
	defer r.l.mu.Unlock()
	r.l.quotes[q.ID] = *q
	return nil
}

func (r memoryQuotes) Save(_ context.Context, q *invoicing.Quote) error {
	r.l.mu.Lock()
	defer r.l.mu.Unlock()
	stored, ok := r.l.quotes[q.ID]
	if !ok || stored.Removed {
		return shared.ErrNotFound
	}
	if stored.Version != q.Version-1 {
		return shared.ErrConcurrencyConflict
	}
	r.l.quotes[q.ID] = *q
	return nil
}

func (r memoryQuotes) SoftDelete(_ context.Context, tenantID, id uuid.UUID) error {
	r.l.mu.Lock()
	defer r.l.mu.Unlock()
	stored, ok := r.l.quotes[id]
	if !ok || stored.Removed || stored.TenantID != tenantID {
		return shared.ErrNotFound
	}
	stored.Removed = true
	r.l.quotes[id] = stored
	return nil
}

func (r memoryQuotes) Stats(context.Context, uuid.UUID, invoicing.Window) (*invoicing.QuoteStats, error) {
	return &invoicing.QuoteStats{}, nil
}

type memoryPayments struct{ l *memoryLedger }

func (r memoryPayments) FindByID(_ context.Context, tenantID, id uuid.UUID) (*invoicing.Payment, error) {
	r.l.mu.Lock()
	defer r.l.mu.Unlock()
	p, ok := r.l.payments[id]
	if !ok || p.Removed || p.TenantID != tenantID {
		return nil, shared.ErrNotFound
	}
	p.ClearDomainEvents()
	return &p, nil
}

func (r memoryPayments) Create(_ context.Context, p *invoicing.Payment) error {
	r.l.mu.Lock()
	defer r.l.mu.Unlock()
	r.l.payments[p.ID] = *p
	return nil
}

func (r memoryPayments) Save(_ context.Context, p *invoicing.Payment) error {
	r.l.mu.Lock()
	defer r.l.mu.Unlock()
	stored, ok := r.l.payments[p.ID]
	if !ok || stored.Removed {
		return shared.ErrNotFound
	}
	if stored.Version != p.Version-1 {
		return shared.ErrConcurrencyConflict
	}
	r.l.payments[p.ID] = *p
	return nil
}

func (r memoryPayments) SoftDelete(_ context.Context, tenantID, id uuid.UUID) error {
	r.l.mu.Lock()
	defer r.l.mu.Unlock()
	stored, ok := r.l.payments[id]
	if !ok || stored.Removed || stored.TenantID != tenantID {
		return shared.ErrNotFound
	}
	stored.Removed = true
	r.l.payments[id] = stored
	return nil
}

func (r memoryPayments) SoftDeleteByInvoice(_ context.Context, tenantID, invoiceID uuid.UUID) (int64, error) {
	r.l.mu.Lock()
	defer r.l.mu.Unlock()
	var n int64
	for id, p := range r.l.payments {
		if p.InvoiceID == invoiceID && p.TenantID == tenantID && !p.Removed {
			p.Removed = true
			r.l.payments[id] = p
			n++
		}
	}
	return n, nil
}

func (r memoryPayments) SumByInvoice(_ context.Context, _, invoiceID uuid.UUID) (decimal.Decimal, error) {
	return r.l.livePaymentSum(invoiceID), nil
}

func (r memoryPayments) Stats(context.Context, uuid.UUID, invoicing.Window) (*invoicing.PaymentStats, error) {
	return &invoicing.PaymentStats{Total: decimal.Zero}, nil
}

var _ TransactionScope = (*memoryLedger)(nil)
var _ shared.SequenceCounter = (*memoryLedger)(nil)
