package invoicing

import (
	"context"
	"errors"

	"github.com/erp/ledger/internal/domain/invoicing"
	"github.com/erp/ledger/internal/domain/shared"
	"github.com/erp/ledger/internal/domain/shared/valueobject"
	"github.com/erp/ledger/internal/infrastructure/telemetry"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Payment outcomes reported to metrics
const (
	outcomeOK       = "ok"
	outcomeExceeded = "amount_exceeded"
	outcomeConflict = "conflict"
	outcomeRejected = "rejected"
	outcomeFailed   = "failed"
)

// PaymentService records payments against invoices and keeps each
// invoice's credit and payment status in step with its live payments.
//
// Every mutation runs in one transaction that first locks the invoice row,
// then writes the payment, then writes the invoice credit with a
// compare-and-swap on the credit it read. A failure at any step rolls back
// the payment write.
type PaymentService struct {
	paymentRepo    invoicing.PaymentRepository
	txScope        TransactionScope
	counter        shared.SequenceCounter
	eventPublisher shared.EventPublisher
	metrics        MetricsRecorder
	logger         *zap.Logger
}

// NewPaymentService creates a new PaymentService
func NewPaymentService(
	paymentRepo invoicing.PaymentRepository,
	txScope TransactionScope,
	counter shared.SequenceCounter,
	logger *zap.Logger,
) *PaymentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PaymentService{
		paymentRepo: paymentRepo,
		txScope:     txScope,
		counter:     counter,
		metrics:     nopMetrics{},
		logger:      logger,
	}
}

// SetEventPublisher sets the publisher that receives events after commit
func (s *PaymentService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// SetMetrics sets the business metrics recorder
func (s *PaymentService) SetMetrics(m MetricsRecorder) {
	if m != nil {
		s.metrics = m
	}
}

// GetPayment returns a live payment
func (s *PaymentService) GetPayment(ctx context.Context, tenantID, id uuid.UUID) (*PaymentResponse, error) {
	p, err := s.paymentRepo.FindByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	return ToPaymentResponse(p, nil), nil
}

// CreatePayment records a payment and credits it to its invoice.
// A zero amount is invalid input; an amount above the invoice's remaining
// payable amount fails with AmountExceeded carrying that bound.
func (s *PaymentService) CreatePayment(ctx context.Context, tenantID, userID uuid.UUID, req PaymentRequest) (*PaymentResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "payment", "create")
	defer span.End()
	telemetry.SetAttributes(span,
		"tenant_id", tenantID.String(),
		"invoice_id", req.InvoiceID.String(),
		"amount", req.Amount.String(),
	)

	draft := req.ToDraft()
	if err := draft.Validate(); err != nil {
		return nil, s.fail(ctx, span, tenantID, "create", err)
	}
	if draft.Number == 0 && s.counter != nil {
		n, err := s.counter.IncrementAndGet(ctx, invoicing.CounterPaymentNumber)
		if err != nil {
			return nil, s.fail(ctx, span, tenantID, "create", err)
		}
		draft.Number = n
	}

	var (
		payment *invoicing.Payment
		invoice *invoicing.Invoice
		opErr   error
	)
	telemetry.WithProfilingLabels(ctx, telemetry.OperationLabels("create_payment", nil), func(c context.Context) {
		opErr = s.txScope.Execute(c, func(repos TransactionalRepositories) error {
			inv, err := repos.Invoices().FindByIDForUpdate(c, tenantID, draft.InvoiceID)
			if err != nil {
				return err
			}
			if err := inv.CheckHeadroom(draft.Amount); err != nil {
				return err
			}

			p, err := invoicing.NewPayment(inv, draft)
			if err != nil {
				return err
			}
			p.SetCreatedBy(userID)
			if err := repos.Payments().Create(c, p); err != nil {
				return err
			}

			previousCredit := inv.Credit
			if err := inv.ApplyCredit(p.Amount); err != nil {
				return err
			}
			if err := repos.Invoices().UpdateCredit(c, inv, previousCredit); err != nil {
				return err
			}
			payment, invoice = p, inv
			return nil
		})
	})
	if opErr != nil {
		return nil, s.fail(ctx, span, tenantID, "create", opErr)
	}

	publishEvents(ctx, s.eventPublisher, s.logger, payment, invoice)
	s.metrics.RecordPayment(ctx, tenantID, "create", outcomeOK)
	return ToPaymentResponse(payment, invoice), nil
}

// UpdatePayment edits a live payment. Only the change in amount is
// credited to the invoice; an increase above the invoice's remaining
// payable amount fails with AmountExceeded reporting that headroom.
func (s *PaymentService) UpdatePayment(ctx context.Context, tenantID, id uuid.UUID, req PaymentRequest) (*PaymentResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "payment", "update")
	defer span.End()
	telemetry.SetAttributes(span, "payment_id", id.String(), "amount", req.Amount.String())

	draft := req.ToDraft()
	if err := draft.Validate(); err != nil {
		return nil, s.fail(ctx, span, tenantID, "update", err)
	}

	var (
		payment *invoicing.Payment
		invoice *invoicing.Invoice
	)
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		p, err := repos.Payments().FindByID(ctx, tenantID, id)
		if err != nil {
			return err
		}
		inv, err := repos.Invoices().FindByIDForUpdate(ctx, tenantID, p.InvoiceID)
		if err != nil {
			return err
		}

		if err := inv.CheckHeadroom(valueobject.Sub(draft.Amount, p.Amount)); err != nil {
			return err
		}
		changed, err := p.Revise(draft)
		if err != nil {
			return err
		}
		if err := repos.Payments().Save(ctx, p); err != nil {
			return err
		}

		if !changed.IsZero() {
			previousCredit := inv.Credit
			if err := inv.ApplyCredit(changed); err != nil {
				return err
			}
			if err := repos.Invoices().UpdateCredit(ctx, inv, previousCredit); err != nil {
				return err
			}
		}
		payment, invoice = p, inv
		return nil
	})
	if err != nil {
		return nil, s.fail(ctx, span, tenantID, "update", err)
	}

	publishEvents(ctx, s.eventPublisher, s.logger, payment, invoice)
	s.metrics.RecordPayment(ctx, tenantID, "update", outcomeOK)
	return ToPaymentResponse(payment, invoice), nil
}

// RemovePayment soft deletes a live payment and takes its amount back out
// of the invoice credit. Removing twice yields NotFound.
func (s *PaymentService) RemovePayment(ctx context.Context, tenantID, id uuid.UUID) (*PaymentResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "payment", "remove")
	defer span.End()
	telemetry.SetAttributes(span, "payment_id", id.String())

	var (
		payment *invoicing.Payment
		invoice *invoicing.Invoice
	)
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		p, err := repos.Payments().FindByID(ctx, tenantID, id)
		if err != nil {
			return err
		}
		inv, err := repos.Invoices().FindByIDForUpdate(ctx, tenantID, p.InvoiceID)
		if err != nil {
			return err
		}

		if err := p.Remove(); err != nil {
			return err
		}
		if err := repos.Payments().SoftDelete(ctx, tenantID, id); err != nil {
			return err
		}

		previousCredit := inv.Credit
		if err := inv.ApplyCredit(p.Amount.Neg()); err != nil {
			return err
		}
		if err := repos.Invoices().UpdateCredit(ctx, inv, previousCredit); err != nil {
			return err
		}
		payment, invoice = p, inv
		return nil
	})
	if err != nil {
		return nil, s.fail(ctx, span, tenantID, "remove", err)
	}

	publishEvents(ctx, s.eventPublisher, s.logger, payment, invoice)
	s.metrics.RecordPayment(ctx, tenantID, "remove", outcomeOK)
	return ToPaymentResponse(payment, invoice), nil
}

// fail records err on the span and in metrics. Inconsistent results are
// logged at error level so operators can reconcile the invoice.
func (s *PaymentService) fail(ctx context.Context, span trace.Span, tenantID uuid.UUID, operation string, err error) error {
	telemetry.RecordError(span, err)

	outcome := outcomeFailed
	var exceeded *invoicing.AmountExceededError
	switch {
	case errors.As(err, &exceeded):
		outcome = outcomeExceeded
	case errors.Is(err, shared.ErrConcurrencyConflict):
		outcome = outcomeConflict
	case errors.Is(err, shared.ErrInvalidInput), errors.Is(err, shared.ErrNotFound):
		outcome = outcomeRejected
	case errors.Is(err, shared.ErrInconsistent):
		s.logger.Error("payment left ledger inconsistent",
			zap.String("tenant_id", tenantID.String()),
			zap.String("operation", operation),
			zap.Error(err),
		)
	}
	s.metrics.RecordPayment(ctx, tenantID, operation, outcome)
	return err
}
