package invoicing

import (
	"context"
	"fmt"

	"github.com/erp/ledger/internal/domain/invoicing"
	"github.com/erp/ledger/internal/domain/shared"
	"go.uber.org/zap"
)

// publishEvents hands pending aggregate events to the publisher after a
// successful commit. Failures are logged; the ledger write already happened.
func publishEvents(ctx context.Context, publisher shared.EventPublisher, logger *zap.Logger, aggregates ...shared.AggregateRoot) {
	for _, agg := range aggregates {
		if agg == nil {
			continue
		}
		events := agg.GetDomainEvents()
		agg.ClearDomainEvents()
		if publisher == nil || len(events) == 0 {
			continue
		}
		if err := publisher.Publish(ctx, events...); err != nil {
			logger.Warn("failed to publish ledger events",
				zap.String("aggregate_id", agg.GetID().String()),
				zap.Int("count", len(events)),
				zap.Error(err),
			)
		}
	}
}

// PaymentStatusAuditHandler writes an audit log line for every payment
// status transition and every payment mutation.
type PaymentStatusAuditHandler struct {
	logger *zap.Logger
}

// NewPaymentStatusAuditHandler creates the handler
func NewPaymentStatusAuditHandler(logger *zap.Logger) *PaymentStatusAuditHandler {
	return &PaymentStatusAuditHandler{logger: logger.Named("ledger.audit")}
}

// EventTypes returns the event types this handler is interested in
func (h *PaymentStatusAuditHandler) EventTypes() []string {
	return []string{
		invoicing.EventTypeInvoicePaymentStatusChanged,
		invoicing.EventTypePaymentRecorded,
		invoicing.EventTypePaymentUpdated,
		invoicing.EventTypePaymentRemoved,
	}
}

// Handle logs the event
func (h *PaymentStatusAuditHandler) Handle(_ context.Context, event shared.DomainEvent) error {
	base := []zap.Field{
		zap.String("event_id", event.EventID().String()),
		zap.String("tenant_id", event.TenantID().String()),
		zap.String("aggregate_id", event.AggregateID().String()),
	}

	switch e := event.(type) {
	case *invoicing.InvoicePaymentStatusChangedEvent:
		h.logger.Info("invoice payment status changed", append(base,
			zap.String("from", e.From.String()),
			zap.String("to", e.To.String()),
			zap.String("credit", e.Credit.String()),
		)...)
	case *invoicing.PaymentRecordedEvent:
		h.logger.Info("payment recorded", append(base,
			zap.String("invoice_id", e.InvoiceID.String()),
			zap.String("amount", e.Amount.String()),
		)...)
	case *invoicing.PaymentUpdatedEvent:
		h.logger.Info("payment updated", append(base,
			zap.String("invoice_id", e.InvoiceID.String()),
			zap.String("previous_amount", e.PreviousAmount.String()),
			zap.String("amount", e.Amount.String()),
		)...)
	case *invoicing.PaymentRemovedEvent:
		h.logger.Info("payment removed", append(base,
			zap.String("invoice_id", e.InvoiceID.String()),
			zap.String("amount", e.Amount.String()),
		)...)
	default:
		return fmt.Errorf("unexpected event type: %s", event.EventType())
	}
	return nil
}

var _ shared.EventHandler = (*PaymentStatusAuditHandler)(nil)
