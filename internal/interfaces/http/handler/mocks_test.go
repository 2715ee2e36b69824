package handler

import (
	"context"

	appinv "github.com/erp/ledger/internal/application/invoicing"
	"github.com/erp/ledger/internal/domain/invoicing"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockDocumentService struct {
	mock.Mock
}

func (m *MockDocumentService) CreateDocument(ctx context.Context, kind invoicing.Kind, tenantID, userID uuid.UUID, req appinv.DocumentRequest) (*appinv.DocumentResponse, error) {
	args := m.Called(ctx, kind, tenantID, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*appinv.DocumentResponse), args.Error(1)
}

func (m *MockDocumentService) GetDocument(ctx context.Context, kind invoicing.Kind, tenantID, id uuid.UUID) (*appinv.DocumentResponse, error) {
	args := m.Called(ctx, kind, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*appinv.DocumentResponse), args.Error(1)
}

func (m *MockDocumentService) UpdateDocument(ctx context.Context, kind invoicing.Kind, tenantID, id uuid.UUID, req appinv.DocumentRequest) (*appinv.DocumentResponse, error) {
	args := m.Called(ctx, kind, tenantID, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*appinv.DocumentResponse), args.Error(1)
}

func (m *MockDocumentService) RemoveDocument(ctx context.Context, kind invoicing.Kind, tenantID, id uuid.UUID) error {
	args := m.Called(ctx, kind, tenantID, id)
	return args.Error(0)
}

func (m *MockDocumentService) ConvertQuote(ctx context.Context, tenantID, userID, quoteID uuid.UUID) (*appinv.DocumentResponse, error) {
	args := m.Called(ctx, tenantID, userID, quoteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*appinv.DocumentResponse), args.Error(1)
}

type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) GetPayment(ctx context.Context, tenantID, id uuid.UUID) (*appinv.PaymentResponse, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*appinv.PaymentResponse), args.Error(1)
}

func (m *MockPaymentService) CreatePayment(ctx context.Context, tenantID, userID uuid.UUID, req appinv.PaymentRequest) (*appinv.PaymentResponse, error) {
	args := m.Called(ctx, tenantID, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*appinv.PaymentResponse), args.Error(1)
}

func (m *MockPaymentService) UpdatePayment(ctx context.Context, tenantID, id uuid.UUID, req appinv.PaymentRequest) (*appinv.PaymentResponse, error) {
	args := m.Called(ctx, tenantID, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*appinv.PaymentResponse), args.Error(1)
}

func (m *MockPaymentService) RemovePayment(ctx context.Context, tenantID, id uuid.UUID) (*appinv.PaymentResponse, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*appinv.PaymentResponse), args.Error(1)
}

type MockSummaryService struct {
	mock.Mock
}

func (m *MockSummaryService) InvoiceSummary(ctx context.Context, tenantID uuid.UUID, periodType string) (*appinv.InvoiceSummaryResponse, error) {
	args := m.Called(ctx, tenantID, periodType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*appinv.InvoiceSummaryResponse), args.Error(1)
}

func (m *MockSummaryService) QuoteSummary(ctx context.Context, tenantID uuid.UUID, periodType string) (*appinv.QuoteSummaryResponse, error) {
	args := m.Called(ctx, tenantID, periodType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*appinv.QuoteSummaryResponse), args.Error(1)
}

func (m *MockSummaryService) PaymentSummary(ctx context.Context, tenantID uuid.UUID, periodType string) (*appinv.PaymentSummaryResponse, error) {
	args := m.Called(ctx, tenantID, periodType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*appinv.PaymentSummaryResponse), args.Error(1)
}

func (m *MockSummaryService) ExportInvoiceSummary(ctx context.Context, tenantID uuid.UUID, periodType string) ([]byte, string, error) {
	args := m.Called(ctx, tenantID, periodType)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]byte), args.String(1), args.Error(2)
}

type MockReconcileService struct {
	mock.Mock
}

func (m *MockReconcileService) ReconcileInvoice(ctx context.Context, tenantID, id uuid.UUID) (*appinv.ReconcileResponse, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*appinv.ReconcileResponse), args.Error(1)
}

type MockArtifactService struct {
	mock.Mock
}

func (m *MockArtifactService) Artifact(ctx context.Context, kind invoicing.Kind, tenantID, id uuid.UUID) (*appinv.ArtifactResponse, error) {
	args := m.Called(ctx, kind, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*appinv.ArtifactResponse), args.Error(1)
}
