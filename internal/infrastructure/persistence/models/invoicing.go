package models

import (
	"time"

	"github.com/erp/ledger/internal/domain/invoicing"
	"github.com/erp/ledger/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DocumentModel holds the columns invoices and quotes have in common.
// Amounts are NUMERIC without scale so stored values are never rounded.
type DocumentModel struct {
	TenantAggregateModel
	Number       int64               `gorm:"not null;index"`
	Year         int                 `gorm:"not null"`
	Date         time.Time           `gorm:"not null;index"`
	ExpiredDate  *time.Time
	ClientID     uuid.UUID           `gorm:"type:uuid;not null;index"`
	Items        invoicing.LineItems `gorm:"type:jsonb;not null"`
	TaxRate      decimal.Decimal     `gorm:"type:numeric;not null"`
	Discount     decimal.Decimal     `gorm:"type:numeric;not null"`
	SubTotal     decimal.Decimal     `gorm:"type:numeric;not null"`
	TaxTotal     decimal.Decimal     `gorm:"type:numeric;not null"`
	Total        decimal.Decimal     `gorm:"type:numeric;not null"`
	Currency     string              `gorm:"type:varchar(3);not null"`
	Notes        string              `gorm:"type:text"`
	ArtifactName string              `gorm:"column:pdf;type:varchar(255)"`
}

func (m *DocumentModel) fromDomain(d *invoicing.Document) {
	m.FromDomainTenantAggregateRoot(d.TenantAggregateRoot)
	m.Number = d.Number
	m.Year = d.Year
	m.Date = d.Date
	m.ExpiredDate = d.ExpiredDate
	m.ClientID = d.ClientID
	m.Items = d.Items
	if m.Items == nil {
		m.Items = invoicing.LineItems{}
	}
	m.TaxRate = d.TaxRate
	m.Discount = d.Discount
	m.SubTotal = d.SubTotal
	m.TaxTotal = d.TaxTotal
	m.Total = d.Total
	m.Currency = string(d.Currency)
	m.Notes = d.Notes
	m.ArtifactName = d.ArtifactName
}

func (m *DocumentModel) toDomain() invoicing.Document {
	return invoicing.Document{
		TenantAggregateRoot: m.ToDomainTenantAggregateRoot(),
		Number:              m.Number,
		Year:                m.Year,
		Date:                m.Date,
		ExpiredDate:         m.ExpiredDate,
		ClientID:            m.ClientID,
		Items:               m.Items,
		TaxRate:             m.TaxRate,
		Discount:            m.Discount,
		SubTotal:            m.SubTotal,
		TaxTotal:            m.TaxTotal,
		Total:               m.Total,
		Currency:            valueobject.Currency(m.Currency),
		Notes:               m.Notes,
		ArtifactName:        m.ArtifactName,
	}
}

// DocumentColumns returns the editable document columns for a full-row update
func (m *DocumentModel) DocumentColumns() map[string]any {
	return map[string]any{
		"number":       m.Number,
		"year":         m.Year,
		"date":         m.Date,
		"expired_date": m.ExpiredDate,
		"client_id":    m.ClientID,
		"items":        m.Items,
		"tax_rate":     m.TaxRate,
		"discount":     m.Discount,
		"sub_total":    m.SubTotal,
		"tax_total":    m.TaxTotal,
		"total":        m.Total,
		"currency":     m.Currency,
		"notes":        m.Notes,
		"pdf":          m.ArtifactName,
		"version":      m.Version,
		"updated_at":   m.UpdatedAt,
	}
}

// InvoiceModel is the invoices table
type InvoiceModel struct {
	DocumentModel
	Status           string          `gorm:"type:varchar(20);not null;default:'draft'"`
	Credit           decimal.Decimal `gorm:"type:numeric;not null;default:0"`
	PaymentStatus    string          `gorm:"type:varchar(20);not null;default:'unpaid';index"`
	Recurring        string          `gorm:"type:varchar(20)"`
	Approved         bool            `gorm:"not null;default:false"`
	ConvertedQuoteID *uuid.UUID      `gorm:"column:converted_from;type:uuid"`
}

func (InvoiceModel) TableName() string { return "invoices" }

// FromDomain populates the model from an invoice
func (m *InvoiceModel) FromDomain(inv *invoicing.Invoice) {
	m.fromDomain(&inv.Document)
	m.Status = string(inv.Status)
	m.Credit = inv.Credit
	m.PaymentStatus = string(inv.PaymentStatus)
	m.Recurring = inv.Recurring
	m.Approved = inv.Approved
	m.ConvertedQuoteID = inv.ConvertedQuoteID
}

// ToDomain rebuilds the invoice
func (m *InvoiceModel) ToDomain() *invoicing.Invoice {
	return &invoicing.Invoice{
		Document:         m.toDomain(),
		Status:           invoicing.InvoiceStatus(m.Status),
		Credit:           m.Credit,
		PaymentStatus:    invoicing.PaymentStatus(m.PaymentStatus),
		Recurring:        m.Recurring,
		Approved:         m.Approved,
		ConvertedQuoteID: m.ConvertedQuoteID,
	}
}

// InvoiceFromDomain creates an InvoiceModel
func InvoiceFromDomain(inv *invoicing.Invoice) *InvoiceModel {
	m := &InvoiceModel{}
	m.FromDomain(inv)
	return m
}

// QuoteModel is the quotes table
type QuoteModel struct {
	DocumentModel
	Status             string     `gorm:"type:varchar(20);not null;default:'draft'"`
	Converted          bool       `gorm:"not null;default:false"`
	ConvertedInvoiceID *uuid.UUID `gorm:"column:invoice_id;type:uuid"`
}

func (QuoteModel) TableName() string { return "quotes" }

// FromDomain populates the model from a quote
func (m *QuoteModel) FromDomain(q *invoicing.Quote) {
	m.fromDomain(&q.Document)
	m.Status = string(q.Status)
	m.Converted = q.Converted
	m.ConvertedInvoiceID = q.ConvertedInvoiceID
}

// ToDomain rebuilds the quote
func (m *QuoteModel) ToDomain() *invoicing.Quote {
	return &invoicing.Quote{
		Document:           m.toDomain(),
		Status:             invoicing.QuoteStatus(m.Status),
		Converted:          m.Converted,
		ConvertedInvoiceID: m.ConvertedInvoiceID,
	}
}

// QuoteFromDomain creates a QuoteModel
func QuoteFromDomain(q *invoicing.Quote) *QuoteModel {
	m := &QuoteModel{}
	m.FromDomain(q)
	return m
}

// PaymentModel is the payments table
type PaymentModel struct {
	TenantAggregateModel
	InvoiceID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	ClientID     uuid.UUID       `gorm:"type:uuid;not null"`
	Number       int64           `gorm:"not null"`
	Date         time.Time       `gorm:"not null;index"`
	Amount       decimal.Decimal `gorm:"type:numeric;not null"`
	Currency     string          `gorm:"type:varchar(3);not null"`
	PaymentMode  string          `gorm:"type:varchar(50)"`
	Ref          string          `gorm:"type:varchar(255)"`
	Description  string          `gorm:"type:text"`
	ArtifactName string          `gorm:"column:pdf;type:varchar(255)"`
}

func (PaymentModel) TableName() string { return "payments" }

// FromDomain populates the model from a payment
func (m *PaymentModel) FromDomain(p *invoicing.Payment) {
	m.FromDomainTenantAggregateRoot(p.TenantAggregateRoot)
	m.InvoiceID = p.InvoiceID
	m.ClientID = p.ClientID
	m.Number = p.Number
	m.Date = p.Date
	m.Amount = p.Amount
	m.Currency = string(p.Currency)
	m.PaymentMode = p.PaymentMode
	m.Ref = p.Ref
	m.Description = p.Description
	m.ArtifactName = p.ArtifactName
}

// ToDomain rebuilds the payment
func (m *PaymentModel) ToDomain() *invoicing.Payment {
	return &invoicing.Payment{
		TenantAggregateRoot: m.ToDomainTenantAggregateRoot(),
		InvoiceID:           m.InvoiceID,
		ClientID:            m.ClientID,
		Number:              m.Number,
		Date:                m.Date,
		Amount:              m.Amount,
		Currency:            valueobject.Currency(m.Currency),
		PaymentMode:         m.PaymentMode,
		Ref:                 m.Ref,
		Description:         m.Description,
		ArtifactName:        m.ArtifactName,
	}
}

// PaymentFromDomain creates a PaymentModel
func PaymentFromDomain(p *invoicing.Payment) *PaymentModel {
	m := &PaymentModel{}
	m.FromDomain(p)
	return m
}

// SettingModel is one named counter of the settings table
type SettingModel struct {
	Key       string    `gorm:"column:setting_key;type:varchar(100);primaryKey"`
	Value     int64     `gorm:"column:setting_value;not null;default:0"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (SettingModel) TableName() string { return "settings" }

// LedgerModels lists the models of the ledger tables, for AutoMigrate in tests
func LedgerModels() []any {
	return []any{&InvoiceModel{}, &QuoteModel{}, &PaymentModel{}, &SettingModel{}}
}
