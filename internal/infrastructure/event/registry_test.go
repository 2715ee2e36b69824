package event

import (
	"testing"

	"github.com/erp/ledger/internal/domain/invoicing"
	"github.com/stretchr/testify/assert"
)

func TestHandlerRegistry_Register(t *testing.T) {
	r := NewHandlerRegistry()
	typed := newRecordingHandler()
	wildcard := newRecordingHandler()

	r.Register(typed, invoicing.EventTypeInvoiceCreated, invoicing.EventTypeInvoiceUpdated)
	r.Register(typed, invoicing.EventTypeInvoiceCreated)
	r.Register(wildcard)
	r.Register(wildcard)

	created := r.GetHandlers(invoicing.EventTypeInvoiceCreated)
	assert.Len(t, created, 2)
	assert.Same(t, typed, created[0])
	assert.Same(t, wildcard, created[1])

	assert.Len(t, r.GetHandlers(invoicing.EventTypeQuoteCreated), 1, "only the wildcard")
	assert.Len(t, r.GetAllHandlers(), 2)
}

func TestHandlerRegistry_HandlerOnBothListsIsReturnedOnce(t *testing.T) {
	r := NewHandlerRegistry()
	h := newRecordingHandler()
	r.Register(h, invoicing.EventTypePaymentRemoved)
	r.Register(h)

	assert.Len(t, r.GetHandlers(invoicing.EventTypePaymentRemoved), 1)
	assert.Len(t, r.GetHandlers(invoicing.EventTypePaymentRecorded), 1)
}

func TestHandlerRegistry_Unregister(t *testing.T) {
	r := NewHandlerRegistry()
	a := newRecordingHandler()
	b := newRecordingHandler()
	r.Register(a, invoicing.EventTypeQuoteConverted)
	r.Register(b, invoicing.EventTypeQuoteConverted)
	r.Register(a)

	r.Unregister(a)

	handlers := r.GetHandlers(invoicing.EventTypeQuoteConverted)
	assert.Len(t, handlers, 1)
	assert.Same(t, b, handlers[0])

	r.Unregister(b)
	assert.Empty(t, r.GetHandlers(invoicing.EventTypeQuoteConverted))
	assert.Empty(t, r.GetAllHandlers())
	assert.Empty(t, r.handlers)
}
