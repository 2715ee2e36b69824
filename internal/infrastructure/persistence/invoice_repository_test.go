package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/erp/ledger/internal/domain/invoicing"
	"github.com/erp/ledger/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormInvoiceRepository_CreateAndFind(t *testing.T) {
	db := newSQLiteLedgerDB(t)
	repo := NewGormInvoiceRepository(db)
	ctx := context.Background()
	tenantID := uuid.New()

	inv := newLedgerInvoice(t, tenantID, "120.5")
	require.NoError(t, repo.Create(ctx, inv))

	t.Run("reads the stored invoice", func(t *testing.T) {
		got, err := repo.FindByID(ctx, tenantID, inv.ID)
		require.NoError(t, err)

		assert.Equal(t, inv.ID, got.ID)
		assert.True(t, got.Total.Equal(amount("120.5")))
		assert.True(t, got.Credit.IsZero())
		assert.Equal(t, invoicing.PaymentStatusUnpaid, got.PaymentStatus)
		assert.Equal(t, invoicing.InvoiceStatusDraft, got.Status)
		assert.Equal(t, "invoice-"+inv.ID.String()+".pdf", got.ArtifactName)
		require.Len(t, got.Items, 1)
		assert.Equal(t, "Consulting", got.Items[0].ItemName)
		assert.True(t, got.Items[0].LineTotal.Equal(amount("120.5")))
	})

	t.Run("locking read behaves like a plain read", func(t *testing.T) {
		got, err := repo.FindByIDForUpdate(ctx, tenantID, inv.ID)
		require.NoError(t, err)
		assert.Equal(t, inv.ID, got.ID)
	})

	t.Run("other tenant cannot see it", func(t *testing.T) {
		_, err := repo.FindByID(ctx, uuid.New(), inv.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		_, err := repo.FindByID(ctx, tenantID, uuid.New())
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormInvoiceRepository_Save(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()

	revise := func(t *testing.T, inv *invoicing.Invoice, price string) {
		t.Helper()
		require.NoError(t, inv.Revise(invoicing.DocumentDraft{
			ClientID: inv.ClientID,
			Date:     inv.Date,
			Items: []invoicing.LineItem{
				{ItemName: "Consulting", Quantity: decimal.NewFromInt(2), UnitPrice: amount(price)},
			},
			TaxRate:  decimal.NewFromInt(10),
			Currency: "USD",
			Status:   "sent",
		}))
	}

	t.Run("writes the revision", func(t *testing.T) {
		repo := NewGormInvoiceRepository(newSQLiteLedgerDB(t))
		inv := newLedgerInvoice(t, tenantID, "100")
		require.NoError(t, repo.Create(ctx, inv))

		revise(t, inv, "25")
		require.NoError(t, repo.Save(ctx, inv))

		got, err := repo.FindByID(ctx, tenantID, inv.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, got.Version)
		assert.Equal(t, invoicing.InvoiceStatusSent, got.Status)
		assert.True(t, got.SubTotal.Equal(amount("50")))
		assert.True(t, got.TaxTotal.Equal(amount("5")))
		assert.True(t, got.Total.Equal(amount("55")))
	})

	t.Run("stale version is a conflict", func(t *testing.T) {
		repo := NewGormInvoiceRepository(newSQLiteLedgerDB(t))
		inv := newLedgerInvoice(t, tenantID, "100")
		require.NoError(t, repo.Create(ctx, inv))

		first, err := repo.FindByID(ctx, tenantID, inv.ID)
		require.NoError(t, err)
		second, err := repo.FindByID(ctx, tenantID, inv.ID)
		require.NoError(t, err)

		revise(t, first, "10")
		require.NoError(t, repo.Save(ctx, first))

		revise(t, second, "20")
		err = repo.Save(ctx, second)
		assert.ErrorIs(t, err, shared.ErrConcurrencyConflict)
	})

	t.Run("removed invoice is not found", func(t *testing.T) {
		repo := NewGormInvoiceRepository(newSQLiteLedgerDB(t))
		inv := newLedgerInvoice(t, tenantID, "100")
		require.NoError(t, repo.Create(ctx, inv))
		require.NoError(t, repo.SoftDelete(ctx, tenantID, inv.ID))

		revise(t, inv, "10")
		err := repo.Save(ctx, inv)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormInvoiceRepository_UpdateCredit(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()

	t.Run("writes when credit and version match", func(t *testing.T) {
		repo := NewGormInvoiceRepository(newSQLiteLedgerDB(t))
		inv := newLedgerInvoice(t, tenantID, "100")
		require.NoError(t, repo.Create(ctx, inv))

		current, err := repo.FindByIDForUpdate(ctx, tenantID, inv.ID)
		require.NoError(t, err)
		previous := current.Credit
		require.NoError(t, current.ApplyCredit(amount("40.25")))
		require.NoError(t, repo.UpdateCredit(ctx, current, previous))

		got, err := repo.FindByID(ctx, tenantID, inv.ID)
		require.NoError(t, err)
		assert.True(t, got.Credit.Equal(amount("40.25")))
		assert.Equal(t, invoicing.PaymentStatusPartially, got.PaymentStatus)
		assert.Equal(t, 2, got.Version)
	})

	t.Run("lost update is rejected", func(t *testing.T) {
		repo := NewGormInvoiceRepository(newSQLiteLedgerDB(t))
		inv := newLedgerInvoice(t, tenantID, "100")
		require.NoError(t, repo.Create(ctx, inv))

		a, err := repo.FindByID(ctx, tenantID, inv.ID)
		require.NoError(t, err)
		b, err := repo.FindByID(ctx, tenantID, inv.ID)
		require.NoError(t, err)

		require.NoError(t, a.ApplyCredit(amount("60")))
		require.NoError(t, repo.UpdateCredit(ctx, a, decimal.Zero))

		require.NoError(t, b.ApplyCredit(amount("50")))
		err = repo.UpdateCredit(ctx, b, decimal.Zero)
		assert.ErrorIs(t, err, shared.ErrConcurrencyConflict)

		got, err := repo.FindByID(ctx, tenantID, inv.ID)
		require.NoError(t, err)
		assert.True(t, got.Credit.Equal(amount("60")))
	})

	t.Run("removed invoice is never credited", func(t *testing.T) {
		repo := NewGormInvoiceRepository(newSQLiteLedgerDB(t))
		inv := newLedgerInvoice(t, tenantID, "100")
		require.NoError(t, repo.Create(ctx, inv))
		require.NoError(t, repo.SoftDelete(ctx, tenantID, inv.ID))

		require.NoError(t, inv.ApplyCredit(amount("10")))
		err := repo.UpdateCredit(ctx, inv, decimal.Zero)
		assert.ErrorIs(t, err, shared.ErrConcurrencyConflict)
	})
}

func TestGormInvoiceRepository_SoftDelete(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()
	repo := NewGormInvoiceRepository(newSQLiteLedgerDB(t))

	inv := newLedgerInvoice(t, tenantID, "100")
	require.NoError(t, repo.Create(ctx, inv))

	require.NoError(t, repo.SoftDelete(ctx, tenantID, inv.ID))

	_, err := repo.FindByID(ctx, tenantID, inv.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)

	err = repo.SoftDelete(ctx, tenantID, inv.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound, "second removal must report NOT_FOUND")

	err = repo.SoftDelete(ctx, uuid.New(), uuid.New())
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestGormInvoiceRepository_Stats(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()
	repo := NewGormInvoiceRepository(newSQLiteLedgerDB(t))

	paid := newLedgerInvoice(t, tenantID, "100")
	require.NoError(t, paid.SetCredit(amount("100")))
	require.NoError(t, repo.Create(ctx, paid))

	partial := newLedgerInvoice(t, tenantID, "50")
	expired := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	partial.ExpiredDate = &expired
	require.NoError(t, partial.SetCredit(amount("20")))
	require.NoError(t, repo.Create(ctx, partial))

	lastMonth := newLedgerInvoice(t, tenantID, "30")
	lastMonth.Date = time.Date(2026, 2, 27, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(ctx, lastMonth))

	removed := newLedgerInvoice(t, tenantID, "999")
	require.NoError(t, repo.Create(ctx, removed))
	require.NoError(t, repo.SoftDelete(ctx, tenantID, removed.ID))

	require.NoError(t, repo.Create(ctx, newLedgerInvoice(t, uuid.New(), "77")))

	window := invoicing.Window{
		From: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
	}
	now := time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)

	stats, err := repo.Stats(ctx, tenantID, window, now)
	require.NoError(t, err)

	assert.Equal(t, int64(2), stats.Count)
	assert.True(t, stats.Total.Equal(amount("150")), "total was %s", stats.Total)
	assert.True(t, stats.Undue.Equal(amount("30")), "undue was %s", stats.Undue)
	assert.Equal(t, int64(1), stats.Overdue)

	require.Len(t, stats.ByStatus, 1)
	assert.Equal(t, string(invoicing.InvoiceStatusDraft), stats.ByStatus[0].Status)
	assert.Equal(t, int64(2), stats.ByStatus[0].Count)

	byPayment := map[string]int64{}
	for _, b := range stats.ByPaymentStatus {
		byPayment[b.Status] = b.Count
	}
	assert.Equal(t, map[string]int64{"paid": 1, "partially": 1}, byPayment)
}
