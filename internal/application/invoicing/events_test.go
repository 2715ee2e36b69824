package invoicing

import (
	"context"
	"testing"

	"github.com/erp/ledger/internal/domain/invoicing"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestPaymentStatusAuditHandler(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	handler := NewPaymentStatusAuditHandler(zap.New(core))

	inv, err := invoicing.NewInvoice(uuid.New(), invoicing.DocumentDraft{
		ClientID: uuid.New(),
		Items:    invoicing.LineItems{{ItemName: "a", Quantity: dec("1"), UnitPrice: dec("50")}},
	})
	require.NoError(t, err)
	inv.ClearDomainEvents()

	p, err := invoicing.NewPayment(inv, invoicing.PaymentDraft{InvoiceID: inv.ID, Amount: dec("50")})
	require.NoError(t, err)
	require.NoError(t, inv.ApplyCredit(p.Amount))

	events := append(p.GetDomainEvents(), inv.GetDomainEvents()...)
	require.Len(t, events, 2)
	for _, e := range events {
		require.NoError(t, handler.Handle(context.Background(), e))
	}

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "payment recorded", entries[0].Message)
	assert.Equal(t, "ledger.audit", entries[0].LoggerName)
	assert.Equal(t, "invoice payment status changed", entries[1].Message)
	assert.Equal(t, "paid", entries[1].ContextMap()["to"])

	t.Run("unexpected events are refused", func(t *testing.T) {
		err := handler.Handle(context.Background(), invoicing.NewInvoiceCreatedEvent(inv))
		assert.Error(t, err)
	})

	t.Run("subscribes to payment events only", func(t *testing.T) {
		assert.ElementsMatch(t, []string{
			invoicing.EventTypeInvoicePaymentStatusChanged,
			invoicing.EventTypePaymentRecorded,
			invoicing.EventTypePaymentUpdated,
			invoicing.EventTypePaymentRemoved,
		}, handler.EventTypes())
	})
}

func TestPublishEventsClearsAggregates(t *testing.T) {
	inv, err := invoicing.NewInvoice(uuid.New(), invoicing.DocumentDraft{ClientID: uuid.New()})
	require.NoError(t, err)

	publisher := new(MockEventPublisher)
	publisher.On("Publish", context.Background(), inv.GetDomainEvents()).Return(nil)

	publishEvents(context.Background(), publisher, zap.NewNop(), inv, nil)
	assert.Empty(t, inv.GetDomainEvents())
	publisher.AssertExpectations(t)
}
