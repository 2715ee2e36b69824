package handler

import (
	"context"

	appinv "github.com/erp/ledger/internal/application/invoicing"
	"github.com/erp/ledger/internal/domain/invoicing"
	"github.com/google/uuid"
)

// The handlers depend on these narrow views of the application services.

// DocumentService is implemented by *appinv.DocumentService
type DocumentService interface {
	CreateDocument(ctx context.Context, kind invoicing.Kind, tenantID, userID uuid.UUID, req appinv.DocumentRequest) (*appinv.DocumentResponse, error)
	GetDocument(ctx context.Context, kind invoicing.Kind, tenantID, id uuid.UUID) (*appinv.DocumentResponse, error)
	UpdateDocument(ctx context.Context, kind invoicing.Kind, tenantID, id uuid.UUID, req appinv.DocumentRequest) (*appinv.DocumentResponse, error)
	RemoveDocument(ctx context.Context, kind invoicing.Kind, tenantID, id uuid.UUID) error
	ConvertQuote(ctx context.Context, tenantID, userID, quoteID uuid.UUID) (*appinv.DocumentResponse, error)
}

// PaymentService is implemented by *appinv.PaymentService
type PaymentService interface {
	GetPayment(ctx context.Context, tenantID, id uuid.UUID) (*appinv.PaymentResponse, error)
	CreatePayment(ctx context.Context, tenantID, userID uuid.UUID, req appinv.PaymentRequest) (*appinv.PaymentResponse, error)
	UpdatePayment(ctx context.Context, tenantID, id uuid.UUID, req appinv.PaymentRequest) (*appinv.PaymentResponse, error)
	RemovePayment(ctx context.Context, tenantID, id uuid.UUID) (*appinv.PaymentResponse, error)
}

// SummaryService is implemented by *appinv.SummaryService
type SummaryService interface {
	InvoiceSummary(ctx context.Context, tenantID uuid.UUID, periodType string) (*appinv.InvoiceSummaryResponse, error)
	QuoteSummary(ctx context.Context, tenantID uuid.UUID, periodType string) (*appinv.QuoteSummaryResponse, error)
	PaymentSummary(ctx context.Context, tenantID uuid.UUID, periodType string) (*appinv.PaymentSummaryResponse, error)
	ExportInvoiceSummary(ctx context.Context, tenantID uuid.UUID, periodType string) ([]byte, string, error)
}

// ReconcileService is implemented by *appinv.ReconcileService
type ReconcileService interface {
	ReconcileInvoice(ctx context.Context, tenantID, id uuid.UUID) (*appinv.ReconcileResponse, error)
}

// ArtifactService is implemented by *appinv.ArtifactService
type ArtifactService interface {
	Artifact(ctx context.Context, kind invoicing.Kind, tenantID, id uuid.UUID) (*appinv.ArtifactResponse, error)
}

var (
	_ DocumentService  = (*appinv.DocumentService)(nil)
	_ PaymentService   = (*appinv.PaymentService)(nil)
	_ SummaryService   = (*appinv.SummaryService)(nil)
	_ ReconcileService = (*appinv.ReconcileService)(nil)
	_ ArtifactService  = (*appinv.ArtifactService)(nil)
)
