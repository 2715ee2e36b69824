package invoicing

import (
	"github.com/erp/ledger/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Event type names
const (
	EventTypeInvoiceCreated              = "InvoiceCreated"
	EventTypeInvoiceUpdated              = "InvoiceUpdated"
	EventTypeInvoicePaymentStatusChanged = "InvoicePaymentStatusChanged"
	EventTypeQuoteCreated                = "QuoteCreated"
	EventTypeQuoteUpdated                = "QuoteUpdated"
	EventTypeQuoteConverted              = "QuoteConverted"
	EventTypeDocumentRemoved             = "DocumentRemoved"
	EventTypePaymentRecorded             = "PaymentRecorded"
	EventTypePaymentUpdated              = "PaymentUpdated"
	EventTypePaymentRemoved              = "PaymentRemoved"
)

const (
	aggregateInvoice = "Invoice"
	aggregateQuote   = "Quote"
	aggregatePayment = "Payment"
)

// InvoiceCreatedEvent is raised when an invoice is created
type InvoiceCreatedEvent struct {
	shared.BaseDomainEvent
	Number        int64           `json:"number"`
	ClientID      uuid.UUID       `json:"client_id"`
	Total         decimal.Decimal `json:"total"`
	PaymentStatus PaymentStatus   `json:"payment_status"`
}

func (e *InvoiceCreatedEvent) EventType() string { return EventTypeInvoiceCreated }

func NewInvoiceCreatedEvent(inv *Invoice) *InvoiceCreatedEvent {
	return &InvoiceCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeInvoiceCreated, aggregateInvoice, inv.ID, inv.TenantID),
		Number:          inv.Number,
		ClientID:        inv.ClientID,
		Total:           inv.Total,
		PaymentStatus:   inv.PaymentStatus,
	}
}

// InvoiceUpdatedEvent is raised when an invoice's items or terms are edited
type InvoiceUpdatedEvent struct {
	shared.BaseDomainEvent
	Total    decimal.Decimal `json:"total"`
	Discount decimal.Decimal `json:"discount"`
	Credit   decimal.Decimal `json:"credit"`
}

func (e *InvoiceUpdatedEvent) EventType() string { return EventTypeInvoiceUpdated }

func NewInvoiceUpdatedEvent(inv *Invoice) *InvoiceUpdatedEvent {
	return &InvoiceUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeInvoiceUpdated, aggregateInvoice, inv.ID, inv.TenantID),
		Total:           inv.Total,
		Discount:        inv.Discount,
		Credit:          inv.Credit,
	}
}

// InvoicePaymentStatusChangedEvent is raised whenever the resolver moves an invoice to a new status
type InvoicePaymentStatusChangedEvent struct {
	shared.BaseDomainEvent
	From   PaymentStatus   `json:"from"`
	To     PaymentStatus   `json:"to"`
	Credit decimal.Decimal `json:"credit"`
}

func (e *InvoicePaymentStatusChangedEvent) EventType() string {
	return EventTypeInvoicePaymentStatusChanged
}

func NewInvoicePaymentStatusChangedEvent(inv *Invoice, from PaymentStatus) *InvoicePaymentStatusChangedEvent {
	return &InvoicePaymentStatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeInvoicePaymentStatusChanged, aggregateInvoice, inv.ID, inv.TenantID),
		From:            from,
		To:              inv.PaymentStatus,
		Credit:          inv.Credit,
	}
}

// QuoteCreatedEvent is raised when a quote is created
type QuoteCreatedEvent struct {
	shared.BaseDomainEvent
	Number int64           `json:"number"`
	Total  decimal.Decimal `json:"total"`
}

func (e *QuoteCreatedEvent) EventType() string { return EventTypeQuoteCreated }

func NewQuoteCreatedEvent(q *Quote) *QuoteCreatedEvent {
	return &QuoteCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeQuoteCreated, aggregateQuote, q.ID, q.TenantID),
		Number:          q.Number,
		Total:           q.Total,
	}
}

// QuoteUpdatedEvent is raised when a quote is edited
type QuoteUpdatedEvent struct {
	shared.BaseDomainEvent
	Total decimal.Decimal `json:"total"`
}

func (e *QuoteUpdatedEvent) EventType() string { return EventTypeQuoteUpdated }

func NewQuoteUpdatedEvent(q *Quote) *QuoteUpdatedEvent {
	return &QuoteUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeQuoteUpdated, aggregateQuote, q.ID, q.TenantID),
		Total:           q.Total,
	}
}

// QuoteConvertedEvent is raised when a quote becomes an invoice
type QuoteConvertedEvent struct {
	shared.BaseDomainEvent
	InvoiceID uuid.UUID `json:"invoice_id"`
}

func (e *QuoteConvertedEvent) EventType() string { return EventTypeQuoteConverted }

func NewQuoteConvertedEvent(q *Quote, invoiceID uuid.UUID) *QuoteConvertedEvent {
	return &QuoteConvertedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeQuoteConverted, aggregateQuote, q.ID, q.TenantID),
		InvoiceID:       invoiceID,
	}
}

// DocumentRemovedEvent is raised when an invoice or quote is soft deleted
type DocumentRemovedEvent struct {
	shared.BaseDomainEvent
	Kind   Kind  `json:"kind"`
	Number int64 `json:"number"`
}

func (e *DocumentRemovedEvent) EventType() string { return EventTypeDocumentRemoved }

func NewDocumentRemovedEvent(kind Kind, d *Document) *DocumentRemovedEvent {
	aggType := aggregateInvoice
	if kind == KindQuote {
		aggType = aggregateQuote
	}
	return &DocumentRemovedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeDocumentRemoved, aggType, d.ID, d.TenantID),
		Kind:            kind,
		Number:          d.Number,
	}
}

// PaymentRecordedEvent is raised when a payment is created
type PaymentRecordedEvent struct {
	shared.BaseDomainEvent
	InvoiceID uuid.UUID       `json:"invoice_id"`
	Amount    decimal.Decimal `json:"amount"`
}

func (e *PaymentRecordedEvent) EventType() string { return EventTypePaymentRecorded }

func NewPaymentRecordedEvent(p *Payment) *PaymentRecordedEvent {
	return &PaymentRecordedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePaymentRecorded, aggregatePayment, p.ID, p.TenantID),
		InvoiceID:       p.InvoiceID,
		Amount:          p.Amount,
	}
}

// PaymentUpdatedEvent is raised when a payment amount or reference changes
type PaymentUpdatedEvent struct {
	shared.BaseDomainEvent
	InvoiceID      uuid.UUID       `json:"invoice_id"`
	PreviousAmount decimal.Decimal `json:"previous_amount"`
	Amount         decimal.Decimal `json:"amount"`
}

func (e *PaymentUpdatedEvent) EventType() string { return EventTypePaymentUpdated }

func NewPaymentUpdatedEvent(p *Payment, previous decimal.Decimal) *PaymentUpdatedEvent {
	return &PaymentUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePaymentUpdated, aggregatePayment, p.ID, p.TenantID),
		InvoiceID:       p.InvoiceID,
		PreviousAmount:  previous,
		Amount:          p.Amount,
	}
}

// PaymentRemovedEvent is raised when a payment is soft deleted
type PaymentRemovedEvent struct {
	shared.BaseDomainEvent
	InvoiceID uuid.UUID       `json:"invoice_id"`
	Amount    decimal.Decimal `json:"amount"`
}

func (e *PaymentRemovedEvent) EventType() string { return EventTypePaymentRemoved }

func NewPaymentRemovedEvent(p *Payment) *PaymentRemovedEvent {
	return &PaymentRemovedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePaymentRemoved, aggregatePayment, p.ID, p.TenantID),
		InvoiceID:       p.InvoiceID,
		Amount:          p.Amount,
	}
}
