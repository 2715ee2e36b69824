package invoicing

import (
	"context"

	"github.com/erp/ledger/internal/domain/invoicing"
	"github.com/erp/ledger/internal/domain/shared"
	"github.com/erp/ledger/internal/infrastructure/telemetry"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DocumentService manages the lifecycle of invoices and quotes
type DocumentService struct {
	invoiceRepo    invoicing.InvoiceRepository
	quoteRepo      invoicing.QuoteRepository
	txScope        TransactionScope
	counter        shared.SequenceCounter
	eventPublisher shared.EventPublisher
	metrics        MetricsRecorder
	logger         *zap.Logger
}

// NewDocumentService creates a new DocumentService
func NewDocumentService(
	invoiceRepo invoicing.InvoiceRepository,
	quoteRepo invoicing.QuoteRepository,
	txScope TransactionScope,
	counter shared.SequenceCounter,
	logger *zap.Logger,
) *DocumentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DocumentService{
		invoiceRepo: invoiceRepo,
		quoteRepo:   quoteRepo,
		txScope:     txScope,
		counter:     counter,
		metrics:     nopMetrics{},
		logger:      logger,
	}
}

// SetEventPublisher sets the publisher that receives events after commit
func (s *DocumentService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// SetMetrics sets the business metrics recorder
func (s *DocumentService) SetMetrics(m MetricsRecorder) {
	if m != nil {
		s.metrics = m
	}
}

// CreateDocument creates an invoice or a quote. Empty items are accepted
// and yield zero totals. A document number is drawn from the counter when
// the request does not carry one.
func (s *DocumentService) CreateDocument(ctx context.Context, kind invoicing.Kind, tenantID, userID uuid.UUID, req DocumentRequest) (*DocumentResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "document", "create")
	defer span.End()
	telemetry.SetAttributes(span, "kind", kind.String(), "tenant_id", tenantID.String(), "items_count", len(req.Items))

	draft := req.ToDraft()
	if err := draft.Validate(); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	if draft.Number == 0 && kind.IsDocument() {
		n, err := s.nextNumber(ctx, kind)
		if err != nil {
			telemetry.RecordError(span, err)
			return nil, err
		}
		draft.Number = n
	}

	var (
		resp *DocumentResponse
		agg  shared.AggregateRoot
		err  error
	)
	switch kind {
	case invoicing.KindInvoice:
		var inv *invoicing.Invoice
		inv, err = invoicing.NewInvoice(tenantID, draft)
		if err == nil {
			inv.SetCreatedBy(userID)
			err = s.invoiceRepo.Create(ctx, inv)
			resp, agg = ToInvoiceResponse(inv), inv
		}
	case invoicing.KindQuote:
		var q *invoicing.Quote
		q, err = invoicing.NewQuote(tenantID, draft)
		if err == nil {
			q.SetCreatedBy(userID)
			err = s.quoteRepo.Create(ctx, q)
			resp, agg = ToQuoteResponse(q), q
		}
	default:
		err = unsupportedKind(kind)
	}
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	publishEvents(ctx, s.eventPublisher, s.logger, agg)
	s.metrics.RecordDocument(ctx, tenantID, kind.String(), "create")
	return resp, nil
}

// GetDocument returns a live invoice or quote
func (s *DocumentService) GetDocument(ctx context.Context, kind invoicing.Kind, tenantID, id uuid.UUID) (*DocumentResponse, error) {
	switch kind {
	case invoicing.KindInvoice:
		inv, err := s.invoiceRepo.FindByID(ctx, tenantID, id)
		if err != nil {
			return nil, err
		}
		return ToInvoiceResponse(inv), nil
	case invoicing.KindQuote:
		q, err := s.quoteRepo.FindByID(ctx, tenantID, id)
		if err != nil {
			return nil, err
		}
		return ToQuoteResponse(q), nil
	default:
		return nil, unsupportedKind(kind)
	}
}

// UpdateDocument replaces the items and terms of a live document. Empty
// items are rejected. For invoices the stored credit is re-read under a row
// lock and the payment status is re-resolved against the new totals.
func (s *DocumentService) UpdateDocument(ctx context.Context, kind invoicing.Kind, tenantID, id uuid.UUID, req DocumentRequest) (*DocumentResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "document", "update")
	defer span.End()
	telemetry.SetAttributes(span, "kind", kind.String(), "document_id", id.String())

	draft := req.ToDraft()
	if len(draft.Items) == 0 {
		err := shared.NewDomainError(shared.CodeInvalidInput, "Items cannot be empty")
		telemetry.RecordError(span, err)
		return nil, err
	}

	var (
		resp *DocumentResponse
		agg  shared.AggregateRoot
	)
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		switch kind {
		case invoicing.KindInvoice:
			inv, err := repos.Invoices().FindByIDForUpdate(ctx, tenantID, id)
			if err != nil {
				return err
			}
			if err := inv.Revise(draft); err != nil {
				return err
			}
			if err := repos.Invoices().Save(ctx, inv); err != nil {
				return err
			}
			resp, agg = ToInvoiceResponse(inv), inv
		case invoicing.KindQuote:
			q, err := repos.Quotes().FindByID(ctx, tenantID, id)
			if err != nil {
				return err
			}
			if err := q.Revise(draft); err != nil {
				return err
			}
			if err := repos.Quotes().Save(ctx, q); err != nil {
				return err
			}
			resp, agg = ToQuoteResponse(q), q
		default:
			return unsupportedKind(kind)
		}
		return nil
	})
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	publishEvents(ctx, s.eventPublisher, s.logger, agg)
	s.metrics.RecordDocument(ctx, tenantID, kind.String(), "update")
	return resp, nil
}

// RemoveDocument soft deletes a live document. Removing an invoice also
// removes every live payment recorded against it, in the same transaction.
func (s *DocumentService) RemoveDocument(ctx context.Context, kind invoicing.Kind, tenantID, id uuid.UUID) error {
	ctx, span := telemetry.StartServiceSpan(ctx, "document", "remove")
	defer span.End()
	telemetry.SetAttributes(span, "kind", kind.String(), "document_id", id.String())

	var agg shared.AggregateRoot
	var cascaded int64
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		switch kind {
		case invoicing.KindInvoice:
			inv, err := repos.Invoices().FindByIDForUpdate(ctx, tenantID, id)
			if err != nil {
				return err
			}
			if err := inv.Remove(); err != nil {
				return err
			}
			if err := repos.Invoices().SoftDelete(ctx, tenantID, id); err != nil {
				return err
			}
			cascaded, err = repos.Payments().SoftDeleteByInvoice(ctx, tenantID, id)
			if err != nil {
				return err
			}
			agg = inv
		case invoicing.KindQuote:
			q, err := repos.Quotes().FindByID(ctx, tenantID, id)
			if err != nil {
				return err
			}
			if err := q.Remove(); err != nil {
				return err
			}
			if err := repos.Quotes().SoftDelete(ctx, tenantID, id); err != nil {
				return err
			}
			agg = q
		default:
			return unsupportedKind(kind)
		}
		return nil
	})
	if err != nil {
		telemetry.RecordError(span, err)
		return err
	}

	if cascaded > 0 {
		s.logger.Info("removed payments of removed invoice",
			zap.String("invoice_id", id.String()),
			zap.Int64("payments", cascaded),
		)
	}
	publishEvents(ctx, s.eventPublisher, s.logger, agg)
	s.metrics.RecordDocument(ctx, tenantID, kind.String(), "remove")
	return nil
}

// ConvertQuote creates an invoice carrying the quote's items and terms and
// marks the quote converted. A quote converts at most once.
func (s *DocumentService) ConvertQuote(ctx context.Context, tenantID, userID, quoteID uuid.UUID) (*DocumentResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "document", "convert_quote")
	defer span.End()
	telemetry.SetAttributes(span, "quote_id", quoteID.String())

	q, err := s.quoteRepo.FindByID(ctx, tenantID, quoteID)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	if q.Converted {
		err := shared.NewDomainError(shared.CodeInvalidState, "Quote has already been converted")
		telemetry.RecordError(span, err)
		return nil, err
	}

	number, err := s.nextNumber(ctx, invoicing.KindInvoice)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	var inv *invoicing.Invoice
	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		quote, err := repos.Quotes().FindByID(ctx, tenantID, quoteID)
		if err != nil {
			return err
		}
		draft := quote.InvoiceDraft()
		draft.Number = number
		inv, err = invoicing.NewInvoice(tenantID, draft)
		if err != nil {
			return err
		}
		inv.SetCreatedBy(userID)
		inv.ConvertedQuoteID = &quote.ID
		if err := quote.MarkConverted(inv.ID); err != nil {
			return err
		}
		if err := repos.Invoices().Create(ctx, inv); err != nil {
			return err
		}
		if err := repos.Quotes().Save(ctx, quote); err != nil {
			return err
		}
		q = quote
		return nil
	})
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	publishEvents(ctx, s.eventPublisher, s.logger, q, inv)
	s.metrics.RecordDocument(ctx, tenantID, invoicing.KindQuote.String(), "convert")
	return ToInvoiceResponse(inv), nil
}

func (s *DocumentService) nextNumber(ctx context.Context, kind invoicing.Kind) (int64, error) {
	if s.counter == nil {
		return 0, nil
	}
	n, err := s.counter.IncrementAndGet(ctx, invoicing.CounterKey(kind))
	if err != nil {
		s.logger.Error("failed to allocate document number", zap.String("kind", kind.String()), zap.Error(err))
		return 0, err
	}
	return n, nil
}

func unsupportedKind(kind invoicing.Kind) error {
	return shared.NewDomainError(shared.CodeInvalidInput, "unsupported document kind: "+kind.String())
}
