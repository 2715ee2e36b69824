package invoicing

import (
	"fmt"
	"strings"
	"time"

	"github.com/erp/ledger/internal/domain/shared"
	"github.com/erp/ledger/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Kind names the record families of the ledger
type Kind string

const (
	KindInvoice Kind = "invoice"
	KindQuote   Kind = "quote"
	KindPayment Kind = "payment"
)

// IsDocument reports whether k is an invoice or a quote
func (k Kind) IsDocument() bool {
	return k == KindInvoice || k == KindQuote
}

func (k Kind) String() string {
	return string(k)
}

// ParseDocumentKind accepts "invoice" or "quote"
func ParseDocumentKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if !k.IsDocument() {
		return "", shared.NewDomainError(shared.CodeInvalidInput, fmt.Sprintf("unknown document kind %q", s))
	}
	return k, nil
}

// ArtifactName is the rendered-file reference derived from a record id
func ArtifactName(kind Kind, id uuid.UUID) string {
	return fmt.Sprintf("%s-%s.pdf", kind, id)
}

// Counter keys used for document numbering
const (
	CounterInvoiceNumber = "last_invoice_number"
	CounterQuoteNumber   = "last_quote_number"
	CounterPaymentNumber = "last_payment_number"
)

// CounterKey returns the numbering key of kind
func CounterKey(kind Kind) string {
	switch kind {
	case KindInvoice:
		return CounterInvoiceNumber
	case KindQuote:
		return CounterQuoteNumber
	default:
		return CounterPaymentNumber
	}
}

// DocumentDraft carries the editable fields of an invoice or quote.
// A zero Number asks the service to allocate one from the counter.
type DocumentDraft struct {
	Number      int64
	Year        int
	Date        time.Time
	ExpiredDate *time.Time
	ClientID    uuid.UUID
	Items       []LineItem
	TaxRate     decimal.Decimal
	Discount    decimal.Decimal
	Currency    string
	Notes       string
	Status      string

	// Invoice only
	Recurring string
	Approved  bool
}

// Validate checks the draft without looking at the item count; the
// empty-items rule differs between create and update.
func (d DocumentDraft) Validate() error {
	if d.ClientID == uuid.Nil {
		return shared.NewDomainError(shared.CodeInvalidInput, "Client is required")
	}
	if d.TaxRate.IsNegative() || d.TaxRate.GreaterThan(decimal.NewFromInt(100)) {
		return shared.NewDomainError(shared.CodeInvalidInput, "Tax rate must be between 0 and 100")
	}
	if d.Discount.IsNegative() {
		return shared.NewDomainError(shared.CodeInvalidInput, "Discount cannot be negative")
	}
	if d.Number < 0 {
		return shared.NewDomainError(shared.CodeInvalidInput, "Number cannot be negative")
	}
	if d.ExpiredDate != nil && !d.Date.IsZero() && d.ExpiredDate.Before(d.Date) {
		return shared.NewDomainError(shared.CodeInvalidInput, "Expiration date cannot be before the document date")
	}
	for _, item := range d.Items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	if _, err := valueobject.ParseCurrency(d.Currency); err != nil {
		return shared.NewDomainError(shared.CodeInvalidInput, err.Error())
	}
	return nil
}

// Document holds the fields invoices and quotes have in common
type Document struct {
	shared.TenantAggregateRoot
	Number       int64
	Year         int
	Date         time.Time
	ExpiredDate  *time.Time
	ClientID     uuid.UUID
	Items        LineItems
	TaxRate      decimal.Decimal
	Discount     decimal.Decimal
	SubTotal     decimal.Decimal
	TaxTotal     decimal.Decimal
	Total        decimal.Decimal
	Currency     valueobject.Currency
	Notes        string
	ArtifactName string
}

func newDocument(tenantID uuid.UUID) Document {
	return Document{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		Items:               LineItems{},
		TaxRate:             decimal.Zero,
		Discount:            decimal.Zero,
		SubTotal:            decimal.Zero,
		TaxTotal:            decimal.Zero,
		Total:               decimal.Zero,
	}
}

// apply copies draft fields and re-derives totals. The draft must be valid.
func (d *Document) apply(draft DocumentDraft) {
	currency, _ := valueobject.ParseCurrency(draft.Currency)
	date := draft.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}
	year := draft.Year
	if year == 0 {
		year = date.Year()
	}

	totals := CalculateTotals(draft.Items, draft.TaxRate)

	if draft.Number > 0 {
		d.Number = draft.Number
	}
	d.Year = year
	d.Date = date
	d.ExpiredDate = draft.ExpiredDate
	d.ClientID = draft.ClientID
	d.Items = totals.Items
	d.TaxRate = draft.TaxRate
	d.Discount = draft.Discount
	d.SubTotal = totals.SubTotal
	d.TaxTotal = totals.TaxTotal
	d.Total = totals.Total
	d.Currency = currency
	d.Notes = draft.Notes
}

// AttachArtifact sets the id-derived artifact reference. Calling it again is a no-op.
func (d *Document) AttachArtifact(kind Kind) {
	d.ArtifactName = ArtifactName(kind, d.ID)
}

// Payable is total - discount
func (d *Document) Payable() decimal.Decimal {
	return valueobject.Sub(d.Total, d.Discount)
}

// AssignNumber sets the allocated document number if none was supplied
func (d *Document) AssignNumber(n int64) {
	if d.Number == 0 {
		d.Number = n
	}
}

// IsExpired reports whether the expiration date lies before now
func (d *Document) IsExpired(now time.Time) bool {
	return d.ExpiredDate != nil && d.ExpiredDate.Before(now)
}
