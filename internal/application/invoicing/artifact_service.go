package invoicing

import (
	"context"
	"fmt"
	"time"

	"github.com/erp/ledger/internal/domain/invoicing"
	"github.com/erp/ledger/internal/domain/shared"
	"github.com/google/uuid"
)

const artifactContentType = "application/pdf"

// ArtifactService resolves the stored file of an invoice, quote or payment
type ArtifactService struct {
	invoiceRepo invoicing.InvoiceRepository
	quoteRepo   invoicing.QuoteRepository
	paymentRepo invoicing.PaymentRepository
	store       ArtifactStore
	expiry      time.Duration
}

// NewArtifactService creates a new ArtifactService
func NewArtifactService(
	invoiceRepo invoicing.InvoiceRepository,
	quoteRepo invoicing.QuoteRepository,
	paymentRepo invoicing.PaymentRepository,
	store ArtifactStore,
	expiry time.Duration,
) *ArtifactService {
	if expiry <= 0 {
		expiry = 15 * time.Minute
	}
	return &ArtifactService{
		invoiceRepo: invoiceRepo,
		quoteRepo:   quoteRepo,
		paymentRepo: paymentRepo,
		store:       store,
		expiry:      expiry,
	}
}

// ArtifactKey is the object key of a record's file: <tenant>/<kind>/<file>
func ArtifactKey(tenantID uuid.UUID, kind invoicing.Kind, fileName string) string {
	return fmt.Sprintf("%s/%s/%s", tenantID, kind, fileName)
}

// Artifact returns presigned URLs for the file of a live record. The
// download URL is only issued once the renderer has uploaded the file.
func (s *ArtifactService) Artifact(ctx context.Context, kind invoicing.Kind, tenantID, id uuid.UUID) (*ArtifactResponse, error) {
	fileName, err := s.fileName(ctx, kind, tenantID, id)
	if err != nil {
		return nil, err
	}

	key := ArtifactKey(tenantID, kind, fileName)
	resp := &ArtifactResponse{
		Kind:      kind.String(),
		ID:        id,
		FileName:  fileName,
		Key:       key,
		ExpiresAt: time.Now().Add(s.expiry),
	}

	resp.UploadURL, err = s.store.UploadURL(ctx, key, artifactContentType, s.expiry)
	if err != nil {
		return nil, shared.NewStorageError(err)
	}
	resp.Available, err = s.store.Exists(ctx, key)
	if err != nil {
		return nil, shared.NewStorageError(err)
	}
	if resp.Available {
		resp.DownloadURL, err = s.store.DownloadURL(ctx, key, s.expiry)
		if err != nil {
			return nil, shared.NewStorageError(err)
		}
	}
	return resp, nil
}

func (s *ArtifactService) fileName(ctx context.Context, kind invoicing.Kind, tenantID, id uuid.UUID) (string, error) {
	switch kind {
	case invoicing.KindInvoice:
		inv, err := s.invoiceRepo.FindByID(ctx, tenantID, id)
		if err != nil {
			return "", err
		}
		return inv.ArtifactName, nil
	case invoicing.KindQuote:
		q, err := s.quoteRepo.FindByID(ctx, tenantID, id)
		if err != nil {
			return "", err
		}
		return q.ArtifactName, nil
	case invoicing.KindPayment:
		p, err := s.paymentRepo.FindByID(ctx, tenantID, id)
		if err != nil {
			return "", err
		}
		return p.ArtifactName, nil
	default:
		return "", unsupportedKind(kind)
	}
}
