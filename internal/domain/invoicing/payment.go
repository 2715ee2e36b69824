package invoicing

import (
	"time"

	"github.com/erp/ledger/internal/domain/shared"
	"github.com/erp/ledger/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentDraft carries the editable fields of a payment
type PaymentDraft struct {
	InvoiceID   uuid.UUID
	Number      int64
	Date        time.Time
	Amount      decimal.Decimal
	PaymentMode string
	Ref         string
	Description string
}

// Validate rejects zero and negative amounts
func (d PaymentDraft) Validate() error {
	if d.Amount.IsZero() {
		return errZeroAmount
	}
	if d.Amount.IsNegative() {
		return errNegativeAmount
	}
	if d.Number < 0 {
		return shared.NewDomainError(shared.CodeInvalidInput, "Number cannot be negative")
	}
	return nil
}

// Payment is an amount credited against one invoice
type Payment struct {
	shared.TenantAggregateRoot
	InvoiceID    uuid.UUID
	ClientID     uuid.UUID
	Number       int64
	Date         time.Time
	Amount       decimal.Decimal
	Currency     valueobject.Currency
	PaymentMode  string
	Ref          string
	Description  string
	ArtifactName string
}

// NewPayment creates a payment against inv. The headroom check is the
// caller's job because it must happen under the invoice lock.
func NewPayment(inv *Invoice, draft PaymentDraft) (*Payment, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}
	if inv == nil || inv.Removed {
		return nil, shared.ErrNotFound
	}

	date := draft.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}

	p := &Payment{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(inv.TenantID),
		InvoiceID:           inv.ID,
		ClientID:            inv.ClientID,
		Number:              draft.Number,
		Date:                date,
		Amount:              draft.Amount,
		Currency:            inv.Currency,
		PaymentMode:         draft.PaymentMode,
		Ref:                 draft.Ref,
		Description:         draft.Description,
	}
	p.ArtifactName = ArtifactName(KindPayment, p.ID)

	p.AddDomainEvent(NewPaymentRecordedEvent(p))
	return p, nil
}

// Revise applies draft and returns the change in amount (new - previous)
func (p *Payment) Revise(draft PaymentDraft) (decimal.Decimal, error) {
	if p.Removed {
		return decimal.Zero, shared.ErrNotFound
	}
	if err := draft.Validate(); err != nil {
		return decimal.Zero, err
	}

	changed := valueobject.Sub(draft.Amount, p.Amount)
	previous := p.Amount

	if draft.Number > 0 {
		p.Number = draft.Number
	}
	if !draft.Date.IsZero() {
		p.Date = draft.Date
	}
	p.Amount = draft.Amount
	p.PaymentMode = draft.PaymentMode
	p.Ref = draft.Ref
	p.Description = draft.Description
	p.ArtifactName = ArtifactName(KindPayment, p.ID)
	p.IncrementVersion()

	p.AddDomainEvent(NewPaymentUpdatedEvent(p, previous))
	return changed, nil
}

// AssignNumber sets the allocated number if none was supplied
func (p *Payment) AssignNumber(n int64) {
	if p.Number == 0 {
		p.Number = n
	}
}

// Remove soft deletes the payment
func (p *Payment) Remove() error {
	if err := p.MarkRemoved(); err != nil {
		return err
	}
	p.AddDomainEvent(NewPaymentRemovedEvent(p))
	return nil
}
