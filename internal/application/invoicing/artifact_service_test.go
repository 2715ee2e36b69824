package invoicing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/erp/ledger/internal/domain/invoicing"
	"github.com/erp/ledger/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestArtifactService_Artifact(t *testing.T) {
	ctx := context.Background()
	f := newLedgerFixture()
	inv := f.invoice(t, "100", "0")
	key := ArtifactKey(f.tenantID, invoicing.KindInvoice, inv.ArtifactName)

	t.Run("rendered file gets a download url", func(t *testing.T) {
		store := new(MockArtifactStore)
		svc := NewArtifactService(f.ledger.Invoices(), f.ledger.Quotes(), f.ledger.Payments(), store, time.Minute)

		store.On("UploadURL", mock.Anything, key, "application/pdf", time.Minute).Return("https://put", nil)
		store.On("Exists", mock.Anything, key).Return(true, nil)
		store.On("DownloadURL", mock.Anything, key, time.Minute).Return("https://get", nil)

		resp, err := svc.Artifact(ctx, invoicing.KindInvoice, f.tenantID, inv.ID)
		require.NoError(t, err)
		assert.Equal(t, f.tenantID.String()+"/invoice/invoice-"+inv.ID.String()+".pdf", resp.Key)
		assert.True(t, resp.Available)
		assert.Equal(t, "https://get", resp.DownloadURL)
		assert.Equal(t, "https://put", resp.UploadURL)
		store.AssertExpectations(t)
	})

	t.Run("missing file has no download url", func(t *testing.T) {
		store := new(MockArtifactStore)
		svc := NewArtifactService(f.ledger.Invoices(), f.ledger.Quotes(), f.ledger.Payments(), store, 0)

		store.On("UploadURL", mock.Anything, key, "application/pdf", 15*time.Minute).Return("https://put", nil)
		store.On("Exists", mock.Anything, key).Return(false, nil)

		resp, err := svc.Artifact(ctx, invoicing.KindInvoice, f.tenantID, inv.ID)
		require.NoError(t, err)
		assert.False(t, resp.Available)
		assert.Empty(t, resp.DownloadURL)
		store.AssertNotCalled(t, "DownloadURL", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("store failure", func(t *testing.T) {
		store := new(MockArtifactStore)
		svc := NewArtifactService(f.ledger.Invoices(), f.ledger.Quotes(), f.ledger.Payments(), store, time.Minute)
		store.On("UploadURL", mock.Anything, key, "application/pdf", time.Minute).Return("", errors.New("no credentials"))

		_, err := svc.Artifact(ctx, invoicing.KindInvoice, f.tenantID, inv.ID)
		assert.ErrorIs(t, err, shared.ErrStorageFailure)
	})

	t.Run("unknown payment", func(t *testing.T) {
		store := new(MockArtifactStore)
		svc := NewArtifactService(f.ledger.Invoices(), f.ledger.Quotes(), f.ledger.Payments(), store, time.Minute)
		_, err := svc.Artifact(ctx, invoicing.KindPayment, f.tenantID, uuid.New())
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}
