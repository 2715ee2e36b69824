package handler

import (
	"time"

	appinv "github.com/erp/ledger/internal/application/invoicing"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LineItemRequest is one item of an invoice or quote
// @Description Line item; total is always computed by the server
type LineItemRequest struct {
	ItemName    string          `json:"item_name" binding:"required,max=200" example:"Consulting"`
	Description string          `json:"description" binding:"max=1000" example:"March retainer"`
	Quantity    decimal.Decimal `json:"quantity" swaggertype:"string" example:"2"`
	Price       decimal.Decimal `json:"price" swaggertype:"string" example:"150.00"`
}

// DocumentRequest represents a request to create or replace an invoice or quote
// @Description Request body for invoices and quotes
type DocumentRequest struct {
	Number      int64             `json:"number" binding:"gte=0" example:"0"`
	Year        int               `json:"year" binding:"omitempty,gte=1900,lte=9999" example:"2026"`
	Date        time.Time         `json:"date" binding:"required" example:"2026-03-01T00:00:00Z"`
	ExpiredDate *time.Time        `json:"expired_date" example:"2026-03-31T00:00:00Z"`
	ClientID    string            `json:"client_id" binding:"required,uuid" example:"550e8400-e29b-41d4-a716-446655440000"`
	Items       []LineItemRequest `json:"items" binding:"dive"`
	TaxRate     decimal.Decimal   `json:"tax_rate" swaggertype:"string" example:"20"`
	Discount    decimal.Decimal   `json:"discount" swaggertype:"string" example:"0"`
	Currency    string            `json:"currency" binding:"omitempty,len=3" example:"USD"`
	Notes       string            `json:"notes" binding:"max=2000" example:"Net 30"`
	Status      string            `json:"status" binding:"max=20" example:"draft"`
	Recurring   string            `json:"recurring" binding:"max=20" example:""`
	Approved    bool              `json:"approved" example:"false"`
}

func (r DocumentRequest) toApp() appinv.DocumentRequest {
	items := make([]appinv.LineItemInput, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, appinv.LineItemInput{
			ItemName:    it.ItemName,
			Description: it.Description,
			Quantity:    it.Quantity,
			Price:       it.Price,
		})
	}
	return appinv.DocumentRequest{
		Number:      r.Number,
		Year:        r.Year,
		Date:        r.Date,
		ExpiredDate: r.ExpiredDate,
		// binding already checked the format
		ClientID:  uuid.MustParse(r.ClientID),
		Items:     items,
		TaxRate:   r.TaxRate,
		Discount:  r.Discount,
		Currency:  r.Currency,
		Notes:     r.Notes,
		Status:    r.Status,
		Recurring: r.Recurring,
		Approved:  r.Approved,
	}
}

// CreatePaymentRequest represents a payment recorded against an invoice
// @Description Request body for recording a payment
type CreatePaymentRequest struct {
	InvoiceID   string          `json:"invoice_id" binding:"required,uuid" example:"550e8400-e29b-41d4-a716-446655440000"`
	Number      int64           `json:"number" binding:"gte=0" example:"0"`
	Date        time.Time       `json:"date" example:"2026-03-15T00:00:00Z"`
	Amount      decimal.Decimal `json:"amount" swaggertype:"string" example:"120.00"`
	PaymentMode string          `json:"payment_mode" binding:"max=50" example:"bank transfer"`
	Ref         string          `json:"ref" binding:"max=100" example:"TRX-0042"`
	Description string          `json:"description" binding:"max=1000" example:"Partial payment"`
}

func (r CreatePaymentRequest) toApp() appinv.PaymentRequest {
	return appinv.PaymentRequest{
		InvoiceID:   uuid.MustParse(r.InvoiceID),
		Number:      r.Number,
		Date:        r.Date,
		Amount:      r.Amount,
		PaymentMode: r.PaymentMode,
		Ref:         r.Ref,
		Description: r.Description,
	}
}

// UpdatePaymentRequest edits a payment. The invoice it belongs to cannot change.
// @Description Request body for editing a payment
type UpdatePaymentRequest struct {
	Number      int64           `json:"number" binding:"gte=0" example:"0"`
	Date        time.Time       `json:"date" example:"2026-03-16T00:00:00Z"`
	Amount      decimal.Decimal `json:"amount" swaggertype:"string" example:"150.00"`
	PaymentMode string          `json:"payment_mode" binding:"max=50" example:"card"`
	Ref         string          `json:"ref" binding:"max=100" example:"TRX-0043"`
	Description string          `json:"description" binding:"max=1000" example:"Corrected amount"`
}

func (r UpdatePaymentRequest) toApp() appinv.PaymentRequest {
	return appinv.PaymentRequest{
		Number:      r.Number,
		Date:        r.Date,
		Amount:      r.Amount,
		PaymentMode: r.PaymentMode,
		Ref:         r.Ref,
		Description: r.Description,
	}
}
