package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/erp/ledger/internal/domain/invoicing"
	"github.com/erp/ledger/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormQuoteRepository(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()

	t.Run("create, convert and read back", func(t *testing.T) {
		repo := NewGormQuoteRepository(newSQLiteLedgerDB(t))
		q := newLedgerQuote(t, tenantID, "12.5")
		require.NoError(t, repo.Create(ctx, q))

		invoiceID := uuid.New()
		require.NoError(t, q.MarkConverted(invoiceID))
		require.NoError(t, repo.Save(ctx, q))

		got, err := repo.FindByID(ctx, tenantID, q.ID)
		require.NoError(t, err)
		assert.True(t, got.Converted)
		require.NotNil(t, got.ConvertedInvoiceID)
		assert.Equal(t, invoiceID, *got.ConvertedInvoiceID)
		assert.Equal(t, invoicing.QuoteStatusAccepted, got.Status)
		assert.True(t, got.Total.Equal(amount("25")))
		assert.Equal(t, "EUR", string(got.Currency))
	})

	t.Run("save after removal is not found", func(t *testing.T) {
		repo := NewGormQuoteRepository(newSQLiteLedgerDB(t))
		q := newLedgerQuote(t, tenantID, "10")
		require.NoError(t, repo.Create(ctx, q))
		require.NoError(t, repo.SoftDelete(ctx, tenantID, q.ID))

		require.NoError(t, q.MarkConverted(uuid.New()))
		assert.ErrorIs(t, repo.Save(ctx, q), shared.ErrNotFound)
		assert.ErrorIs(t, repo.SoftDelete(ctx, tenantID, q.ID), shared.ErrNotFound)
	})

	t.Run("stats group live quotes in the window by status", func(t *testing.T) {
		repo := NewGormQuoteRepository(newSQLiteLedgerDB(t))

		require.NoError(t, repo.Create(ctx, newLedgerQuote(t, tenantID, "10")))
		require.NoError(t, repo.Create(ctx, newLedgerQuote(t, tenantID, "5")))

		accepted := newLedgerQuote(t, tenantID, "1")
		require.NoError(t, accepted.MarkConverted(uuid.New()))
		require.NoError(t, repo.Create(ctx, accepted))

		old := newLedgerQuote(t, tenantID, "100")
		old.Date = time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
		require.NoError(t, repo.Create(ctx, old))

		stats, err := repo.Stats(ctx, tenantID, invoicing.Window{
			From: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			To:   time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC),
		})
		require.NoError(t, err)
		assert.Equal(t, int64(3), stats.Count)

		byStatus := map[string]invoicing.StatusBucket{}
		for _, b := range stats.ByStatus {
			byStatus[b.Status] = b
		}
		require.Contains(t, byStatus, "draft")
		require.Contains(t, byStatus, "accepted")
		assert.Equal(t, int64(2), byStatus["draft"].Count)
		assert.True(t, byStatus["draft"].Total.Equal(amount("30")))
		assert.Equal(t, int64(1), byStatus["accepted"].Count)
	})
}
