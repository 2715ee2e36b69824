package invoicing

import (
	"time"

	"github.com/erp/ledger/internal/domain/invoicing"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ==================== Document DTOs ====================

// LineItemInput is one item of a document request
type LineItemInput struct {
	ItemName    string
	Description string
	Quantity    decimal.Decimal
	Price       decimal.Decimal
}

// DocumentRequest creates or replaces an invoice or quote
type DocumentRequest struct {
	Number      int64
	Year        int
	Date        time.Time
	ExpiredDate *time.Time
	ClientID    uuid.UUID
	Items       []LineItemInput
	TaxRate     decimal.Decimal
	Discount    decimal.Decimal
	Currency    string
	Notes       string
	Status      string
	Recurring   string
	Approved    bool
}

// ToDraft converts the request into a domain draft
func (r DocumentRequest) ToDraft() invoicing.DocumentDraft {
	items := make([]invoicing.LineItem, 0, len(r.Items))
	for _, in := range r.Items {
		items = append(items, invoicing.LineItem{
			ItemName:    in.ItemName,
			Description: in.Description,
			Quantity:    in.Quantity,
			UnitPrice:   in.Price,
		})
	}
	return invoicing.DocumentDraft{
		Number:      r.Number,
		Year:        r.Year,
		Date:        r.Date,
		ExpiredDate: r.ExpiredDate,
		ClientID:    r.ClientID,
		Items:       items,
		TaxRate:     r.TaxRate,
		Discount:    r.Discount,
		Currency:    r.Currency,
		Notes:       r.Notes,
		Status:      r.Status,
		Recurring:   r.Recurring,
		Approved:    r.Approved,
	}
}

// LineItemResponse is an item with its derived total
type LineItemResponse struct {
	ItemName    string          `json:"item_name"`
	Description string          `json:"description,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Total       decimal.Decimal `json:"total"`
}

// DocumentResponse represents an invoice or quote in API responses.
// Credit and payment fields are only set for invoices.
type DocumentResponse struct {
	ID                 uuid.UUID          `json:"id"`
	TenantID           uuid.UUID          `json:"tenant_id"`
	Kind               string             `json:"kind"`
	Number             int64              `json:"number"`
	Year               int                `json:"year"`
	Date               time.Time          `json:"date"`
	ExpiredDate        *time.Time         `json:"expired_date,omitempty"`
	ClientID           uuid.UUID          `json:"client_id"`
	Items              []LineItemResponse `json:"items"`
	TaxRate            decimal.Decimal    `json:"tax_rate"`
	Discount           decimal.Decimal    `json:"discount"`
	SubTotal           decimal.Decimal    `json:"sub_total"`
	TaxTotal           decimal.Decimal    `json:"tax_total"`
	Total              decimal.Decimal    `json:"total"`
	Currency           string             `json:"currency"`
	Notes              string             `json:"notes,omitempty"`
	Status             string             `json:"status"`
	ArtifactName       string             `json:"pdf"`
	Credit             *decimal.Decimal   `json:"credit,omitempty"`
	PaymentStatus      string             `json:"payment_status,omitempty"`
	Recurring          string             `json:"recurring,omitempty"`
	Approved           bool               `json:"approved"`
	IsExpired          bool               `json:"is_expired"`
	ConvertedQuoteID   *uuid.UUID         `json:"converted_quote_id,omitempty"`
	Converted          bool               `json:"converted"`
	ConvertedInvoiceID *uuid.UUID         `json:"converted_invoice_id,omitempty"`
	CreatedBy          *uuid.UUID         `json:"created_by,omitempty"`
	Version            int                `json:"version"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

func toDocumentResponse(kind invoicing.Kind, d *invoicing.Document) DocumentResponse {
	items := make([]LineItemResponse, 0, len(d.Items))
	for _, it := range d.Items {
		items = append(items, LineItemResponse{
			ItemName:    it.ItemName,
			Description: it.Description,
			Quantity:    it.Quantity,
			Price:       it.UnitPrice,
			Total:       it.LineTotal,
		})
	}
	return DocumentResponse{
		ID:           d.ID,
		TenantID:     d.TenantID,
		Kind:         kind.String(),
		Number:       d.Number,
		Year:         d.Year,
		Date:         d.Date,
		ExpiredDate:  d.ExpiredDate,
		ClientID:     d.ClientID,
		Items:        items,
		TaxRate:      d.TaxRate,
		Discount:     d.Discount,
		SubTotal:     d.SubTotal,
		TaxTotal:     d.TaxTotal,
		Total:        d.Total,
		Currency:     string(d.Currency),
		Notes:        d.Notes,
		ArtifactName: d.ArtifactName,
		IsExpired:    d.IsExpired(time.Now()),
		CreatedBy:    d.CreatedBy,
		Version:      d.Version,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

// ToInvoiceResponse converts an invoice to a DocumentResponse
func ToInvoiceResponse(inv *invoicing.Invoice) *DocumentResponse {
	resp := toDocumentResponse(invoicing.KindInvoice, &inv.Document)
	credit := inv.Credit
	resp.Status = string(inv.Status)
	resp.Credit = &credit
	resp.PaymentStatus = inv.PaymentStatus.String()
	resp.Recurring = inv.Recurring
	resp.Approved = inv.Approved
	resp.ConvertedQuoteID = inv.ConvertedQuoteID
	return &resp
}

// ToQuoteResponse converts a quote to a DocumentResponse
func ToQuoteResponse(q *invoicing.Quote) *DocumentResponse {
	resp := toDocumentResponse(invoicing.KindQuote, &q.Document)
	resp.Status = string(q.Status)
	resp.Converted = q.Converted
	resp.ConvertedInvoiceID = q.ConvertedInvoiceID
	return &resp
}

// ==================== Payment DTOs ====================

// PaymentRequest creates or edits a payment
type PaymentRequest struct {
	InvoiceID   uuid.UUID
	Number      int64
	Date        time.Time
	Amount      decimal.Decimal
	PaymentMode string
	Ref         string
	Description string
}

// ToDraft converts the request into a domain draft
func (r PaymentRequest) ToDraft() invoicing.PaymentDraft {
	return invoicing.PaymentDraft{
		InvoiceID:   r.InvoiceID,
		Number:      r.Number,
		Date:        r.Date,
		Amount:      r.Amount,
		PaymentMode: r.PaymentMode,
		Ref:         r.Ref,
		Description: r.Description,
	}
}

// PaymentResponse represents a payment together with the invoice state it produced
type PaymentResponse struct {
	ID                   uuid.UUID        `json:"id"`
	TenantID             uuid.UUID        `json:"tenant_id"`
	InvoiceID            uuid.UUID        `json:"invoice_id"`
	ClientID             uuid.UUID        `json:"client_id"`
	Number               int64            `json:"number"`
	Date                 time.Time        `json:"date"`
	Amount               decimal.Decimal  `json:"amount"`
	Currency             string           `json:"currency"`
	PaymentMode          string           `json:"payment_mode,omitempty"`
	Ref                  string           `json:"ref,omitempty"`
	Description          string           `json:"description,omitempty"`
	ArtifactName         string           `json:"pdf"`
	InvoiceCredit        *decimal.Decimal `json:"invoice_credit,omitempty"`
	InvoicePaymentStatus string           `json:"invoice_payment_status,omitempty"`
	CreatedBy            *uuid.UUID       `json:"created_by,omitempty"`
	Version              int              `json:"version"`
	CreatedAt            time.Time        `json:"created_at"`
	UpdatedAt            time.Time        `json:"updated_at"`
}

// ToPaymentResponse converts a payment; inv may be nil
func ToPaymentResponse(p *invoicing.Payment, inv *invoicing.Invoice) *PaymentResponse {
	resp := &PaymentResponse{
		ID:           p.ID,
		TenantID:     p.TenantID,
		InvoiceID:    p.InvoiceID,
		ClientID:     p.ClientID,
		Number:       p.Number,
		Date:         p.Date,
		Amount:       p.Amount,
		Currency:     string(p.Currency),
		PaymentMode:  p.PaymentMode,
		Ref:          p.Ref,
		Description:  p.Description,
		ArtifactName: p.ArtifactName,
		CreatedBy:    p.CreatedBy,
		Version:      p.Version,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
	if inv != nil {
		credit := inv.Credit
		resp.InvoiceCredit = &credit
		resp.InvoicePaymentStatus = inv.PaymentStatus.String()
	}
	return resp
}

// ==================== Reconcile / Artifact DTOs ====================

// ReconcileResponse reports the credit of an invoice before and after reconciliation
type ReconcileResponse struct {
	InvoiceID             uuid.UUID       `json:"invoice_id"`
	PreviousCredit        decimal.Decimal `json:"previous_credit"`
	Credit                decimal.Decimal `json:"credit"`
	PreviousPaymentStatus string          `json:"previous_payment_status"`
	PaymentStatus         string          `json:"payment_status"`
	Changed               bool            `json:"changed"`
}

// ArtifactResponse carries presigned URLs for a record's rendered file
type ArtifactResponse struct {
	Kind        string    `json:"kind"`
	ID          uuid.UUID `json:"id"`
	FileName    string    `json:"file_name"`
	Key         string    `json:"key"`
	Available   bool      `json:"available"`
	DownloadURL string    `json:"download_url,omitempty"`
	UploadURL   string    `json:"upload_url"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// ==================== Summary DTOs ====================

// StatusPerformance is one row of a summary breakdown
type StatusPerformance struct {
	Status      string           `json:"status"`
	Count       int64            `json:"count"`
	Percentage  int64            `json:"percentage"`
	TotalAmount *decimal.Decimal `json:"total_amount,omitempty"`
}

// InvoiceSummaryResponse summarises invoices dated inside a period
type InvoiceSummaryResponse struct {
	Period      string              `json:"type"`
	From        time.Time           `json:"from"`
	To          time.Time           `json:"to"`
	Count       int64               `json:"count"`
	Total       decimal.Decimal     `json:"total"`
	TotalUndue  decimal.Decimal     `json:"total_undue"`
	Performance []StatusPerformance `json:"performance"`
}

// QuoteSummaryResponse summarises quotes dated inside a period
type QuoteSummaryResponse struct {
	Period      string              `json:"type"`
	From        time.Time           `json:"from"`
	To          time.Time           `json:"to"`
	Count       int64               `json:"count"`
	Performance []StatusPerformance `json:"performance"`
}

// PaymentSummaryResponse summarises payments dated inside a period
type PaymentSummaryResponse struct {
	Period string          `json:"type"`
	From   time.Time       `json:"from"`
	To     time.Time       `json:"to"`
	Count  int64           `json:"count"`
	Total  decimal.Decimal `json:"total"`
}
