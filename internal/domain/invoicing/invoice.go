package invoicing

import (
	"fmt"
	"strings"

	"github.com/erp/ledger/internal/domain/shared"
	"github.com/erp/ledger/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceStatus is the workflow status of an invoice, independent of payment
type InvoiceStatus string

const (
	InvoiceStatusDraft     InvoiceStatus = "draft"
	InvoiceStatusPending   InvoiceStatus = "pending"
	InvoiceStatusSent      InvoiceStatus = "sent"
	InvoiceStatusRefunded  InvoiceStatus = "refunded"
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
	InvoiceStatusOnHold    InvoiceStatus = "on hold"
)

// AllInvoiceStatuses lists statuses in reporting order
func AllInvoiceStatuses() []InvoiceStatus {
	return []InvoiceStatus{
		InvoiceStatusDraft, InvoiceStatusPending, InvoiceStatusSent,
		InvoiceStatusRefunded, InvoiceStatusCancelled, InvoiceStatusOnHold,
	}
}

// IsValid checks if the status is a known InvoiceStatus
func (s InvoiceStatus) IsValid() bool {
	for _, v := range AllInvoiceStatuses() {
		if v == s {
			return true
		}
	}
	return false
}

// ParseInvoiceStatus defaults an empty value to draft
func ParseInvoiceStatus(s string) (InvoiceStatus, error) {
	if strings.TrimSpace(s) == "" {
		return InvoiceStatusDraft, nil
	}
	status := InvoiceStatus(strings.ToLower(strings.TrimSpace(s)))
	if !status.IsValid() {
		return "", shared.NewDomainError(shared.CodeInvalidInput, fmt.Sprintf("unknown invoice status %q", s))
	}
	return status, nil
}

// Recurrence intervals accepted on invoices
var recurrences = map[string]bool{
	"":         true,
	"daily":    true,
	"weekly":   true,
	"monthly":  true,
	"quarter":  true,
	"annually": true,
}

// Invoice is a billable document whose credit is the sum of its live payments
type Invoice struct {
	Document
	Status           InvoiceStatus
	Credit           decimal.Decimal
	PaymentStatus    PaymentStatus
	Recurring        string
	Approved         bool
	ConvertedQuoteID *uuid.UUID
}

// NewInvoice creates an invoice from a draft. Empty items are accepted and
// produce zero totals. Credit starts at zero and the payment status is
// resolved from it. The artifact name is attached immediately because the
// id is allocated here rather than by the store.
func NewInvoice(tenantID uuid.UUID, draft DocumentDraft) (*Invoice, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}
	status, err := ParseInvoiceStatus(draft.Status)
	if err != nil {
		return nil, err
	}
	if !recurrences[draft.Recurring] {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, fmt.Sprintf("unknown recurrence %q", draft.Recurring))
	}

	inv := &Invoice{
		Document:  newDocument(tenantID),
		Status:    status,
		Credit:    decimal.Zero,
		Recurring: draft.Recurring,
		Approved:  draft.Approved,
	}
	inv.apply(draft)
	inv.PaymentStatus = ResolvePaymentStatus(inv.Total, inv.Discount, inv.Credit)
	inv.AttachArtifact(KindInvoice)

	inv.AddDomainEvent(NewInvoiceCreatedEvent(inv))
	return inv, nil
}

// Revise replaces the editable fields of the invoice. The current credit is
// preserved and the payment status is re-resolved against the new totals.
func (inv *Invoice) Revise(draft DocumentDraft) error {
	if inv.Removed {
		return shared.ErrNotFound
	}
	if len(draft.Items) == 0 {
		return errEmptyItems
	}
	if err := draft.Validate(); err != nil {
		return err
	}
	status, err := ParseInvoiceStatus(draft.Status)
	if err != nil {
		return err
	}
	if !recurrences[draft.Recurring] {
		return shared.NewDomainError(shared.CodeInvalidInput, fmt.Sprintf("unknown recurrence %q", draft.Recurring))
	}

	totals := CalculateTotals(draft.Items, draft.TaxRate)
	if valueobject.Sub(totals.Total, draft.Discount).LessThan(inv.Credit) {
		return errTotalBelowCredit
	}

	oldStatus := inv.PaymentStatus
	inv.apply(draft)
	inv.Status = status
	inv.Recurring = draft.Recurring
	inv.Approved = draft.Approved
	inv.PaymentStatus = ResolvePaymentStatus(inv.Total, inv.Discount, inv.Credit)
	inv.AttachArtifact(KindInvoice)
	inv.IncrementVersion()

	inv.AddDomainEvent(NewInvoiceUpdatedEvent(inv))
	if oldStatus != inv.PaymentStatus {
		inv.AddDomainEvent(NewInvoicePaymentStatusChangedEvent(inv, oldStatus))
	}
	return nil
}

// MaxPayment is the remaining payable headroom: total - discount - credit
func (inv *Invoice) MaxPayment() decimal.Decimal {
	return valueobject.Sub(inv.Payable(), inv.Credit)
}

// CheckHeadroom rejects an increase of credit larger than MaxPayment
func (inv *Invoice) CheckHeadroom(increase decimal.Decimal) error {
	maxAmount := inv.MaxPayment()
	if increase.GreaterThan(maxAmount) {
		return NewAmountExceededError(maxAmount, inv.Currency)
	}
	return nil
}

// ApplyCredit moves credit by delta and re-resolves the payment status.
// The resulting credit must stay within [0, total - discount].
func (inv *Invoice) ApplyCredit(delta decimal.Decimal) error {
	return inv.SetCredit(valueobject.Add(inv.Credit, delta))
}

// SetCredit replaces the credit outright; used when reconciling from payments
func (inv *Invoice) SetCredit(credit decimal.Decimal) error {
	if inv.Removed {
		return shared.ErrNotFound
	}
	if credit.IsNegative() || credit.GreaterThan(inv.Payable()) {
		return errCreditOutOfBounds
	}

	oldStatus := inv.PaymentStatus
	inv.Credit = credit
	inv.PaymentStatus = ResolvePaymentStatus(inv.Total, inv.Discount, inv.Credit)
	inv.IncrementVersion()

	if oldStatus != inv.PaymentStatus {
		inv.AddDomainEvent(NewInvoicePaymentStatusChangedEvent(inv, oldStatus))
	}
	return nil
}

// Remove soft deletes the invoice
func (inv *Invoice) Remove() error {
	if err := inv.MarkRemoved(); err != nil {
		return err
	}
	inv.AddDomainEvent(NewDocumentRemovedEvent(KindInvoice, &inv.Document))
	return nil
}

// IsPaid reports whether credit covers the payable amount
func (inv *Invoice) IsPaid() bool {
	return inv.PaymentStatus == PaymentStatusPaid
}
