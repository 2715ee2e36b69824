package invoicing

import (
	"context"

	"github.com/erp/ledger/internal/domain/invoicing"
)

// TransactionScope runs a unit of work against the ledger tables.
// If fn returns an error every write made through repos is rolled back.
type TransactionScope interface {
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories exposes repositories bound to one transaction
type TransactionalRepositories interface {
	Invoices() invoicing.InvoiceRepository
	Quotes() invoicing.QuoteRepository
	Payments() invoicing.PaymentRepository
}

// NoOpTransactionScope runs fn directly against the given repositories.
// Writes are not atomic; it exists for tests and single-statement paths.
type NoOpTransactionScope struct {
	invoices invoicing.InvoiceRepository
	quotes   invoicing.QuoteRepository
	payments invoicing.PaymentRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope
func NewNoOpTransactionScope(
	invoices invoicing.InvoiceRepository,
	quotes invoicing.QuoteRepository,
	payments invoicing.PaymentRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{invoices: invoices, quotes: quotes, payments: payments}
}

func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

func (s *NoOpTransactionScope) Invoices() invoicing.InvoiceRepository { return s.invoices }
func (s *NoOpTransactionScope) Quotes() invoicing.QuoteRepository     { return s.quotes }
func (s *NoOpTransactionScope) Payments() invoicing.PaymentRepository { return s.payments }

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
