package invoicing

import (
	"fmt"
	"strings"

	"github.com/erp/ledger/internal/domain/shared"
	"github.com/google/uuid"
)

// QuoteStatus is the workflow status of a quote
type QuoteStatus string

const (
	QuoteStatusDraft    QuoteStatus = "draft"
	QuoteStatusPending  QuoteStatus = "pending"
	QuoteStatusSent     QuoteStatus = "sent"
	QuoteStatusExpired  QuoteStatus = "expired"
	QuoteStatusDeclined QuoteStatus = "declined"
	QuoteStatusAccepted QuoteStatus = "accepted"
)

// AllQuoteStatuses lists statuses in reporting order
func AllQuoteStatuses() []QuoteStatus {
	return []QuoteStatus{
		QuoteStatusDraft, QuoteStatusPending, QuoteStatusSent,
		QuoteStatusExpired, QuoteStatusDeclined, QuoteStatusAccepted,
	}
}

// IsValid checks if the status is a known QuoteStatus
func (s QuoteStatus) IsValid() bool {
	for _, v := range AllQuoteStatuses() {
		if v == s {
			return true
		}
	}
	return false
}

// ParseQuoteStatus defaults an empty value to draft
func ParseQuoteStatus(s string) (QuoteStatus, error) {
	if strings.TrimSpace(s) == "" {
		return QuoteStatusDraft, nil
	}
	status := QuoteStatus(strings.ToLower(strings.TrimSpace(s)))
	if !status.IsValid() {
		return "", shared.NewDomainError(shared.CodeInvalidInput, fmt.Sprintf("unknown quote status %q", s))
	}
	return status, nil
}

// Quote is a priced offer. It carries no credit and can be converted into an invoice once.
type Quote struct {
	Document
	Status             QuoteStatus
	Converted          bool
	ConvertedInvoiceID *uuid.UUID
}

// NewQuote creates a quote from a draft; empty items produce zero totals
func NewQuote(tenantID uuid.UUID, draft DocumentDraft) (*Quote, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}
	status, err := ParseQuoteStatus(draft.Status)
	if err != nil {
		return nil, err
	}

	q := &Quote{
		Document: newDocument(tenantID),
		Status:   status,
	}
	q.apply(draft)
	q.AttachArtifact(KindQuote)

	q.AddDomainEvent(NewQuoteCreatedEvent(q))
	return q, nil
}

// Revise replaces the editable fields of the quote
func (q *Quote) Revise(draft DocumentDraft) error {
	if q.Removed {
		return shared.ErrNotFound
	}
	if len(draft.Items) == 0 {
		return errEmptyItems
	}
	if err := draft.Validate(); err != nil {
		return err
	}
	status, err := ParseQuoteStatus(draft.Status)
	if err != nil {
		return err
	}

	q.apply(draft)
	q.Status = status
	q.AttachArtifact(KindQuote)
	q.IncrementVersion()

	q.AddDomainEvent(NewQuoteUpdatedEvent(q))
	return nil
}

// InvoiceDraft copies the quote's commercial terms into an invoice draft
func (q *Quote) InvoiceDraft() DocumentDraft {
	items := make([]LineItem, len(q.Items))
	copy(items, q.Items)
	return DocumentDraft{
		Date:        q.Date,
		ExpiredDate: q.ExpiredDate,
		ClientID:    q.ClientID,
		Items:       items,
		TaxRate:     q.TaxRate,
		Discount:    q.Discount,
		Currency:    string(q.Currency),
		Notes:       q.Notes,
	}
}

// MarkConverted records the invoice created from this quote and accepts it
func (q *Quote) MarkConverted(invoiceID uuid.UUID) error {
	if q.Removed {
		return shared.ErrNotFound
	}
	if q.Converted {
		return shared.NewDomainError(shared.CodeInvalidState, "Quote has already been converted")
	}
	q.Converted = true
	q.ConvertedInvoiceID = &invoiceID
	q.Status = QuoteStatusAccepted
	q.IncrementVersion()

	q.AddDomainEvent(NewQuoteConvertedEvent(q, invoiceID))
	return nil
}

// Remove soft deletes the quote
func (q *Quote) Remove() error {
	if err := q.MarkRemoved(); err != nil {
		return err
	}
	q.AddDomainEvent(NewDocumentRemovedEvent(KindQuote, &q.Document))
	return nil
}
