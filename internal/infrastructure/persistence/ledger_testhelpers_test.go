package persistence

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/erp/ledger/internal/domain/invoicing"
	"github.com/erp/ledger/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var ledgerTestDate = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

// newSQLiteLedgerDB opens a file backed sqlite database with the ledger tables.
// A single connection keeps transactions and plain statements serialized.
func newSQLiteLedgerDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "ledger.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Discard,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(models.LedgerModels()...))
	return db
}

// newMockLedgerDB creates a GORM connection over sqlmock with the postgres dialector
func newMockLedgerDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Discard,
	})
	require.NoError(t, err)

	return gormDB, mock, mockDB
}

func amount(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// newLedgerInvoice builds a one-line invoice whose total equals price
func newLedgerInvoice(t *testing.T, tenantID uuid.UUID, price string) *invoicing.Invoice {
	t.Helper()

	inv, err := invoicing.NewInvoice(tenantID, invoicing.DocumentDraft{
		Number:   1,
		Date:     ledgerTestDate,
		ClientID: uuid.New(),
		Items: []invoicing.LineItem{
			{ItemName: "Consulting", Quantity: decimal.NewFromInt(1), UnitPrice: amount(price)},
		},
		TaxRate:  decimal.Zero,
		Discount: decimal.Zero,
		Currency: "USD",
	})
	require.NoError(t, err)
	return inv
}

func newLedgerQuote(t *testing.T, tenantID uuid.UUID, price string) *invoicing.Quote {
	t.Helper()

	q, err := invoicing.NewQuote(tenantID, invoicing.DocumentDraft{
		Number:   1,
		Date:     ledgerTestDate,
		ClientID: uuid.New(),
		Items: []invoicing.LineItem{
			{ItemName: "Design", Quantity: decimal.NewFromInt(2), UnitPrice: amount(price)},
		},
		Currency: "EUR",
	})
	require.NoError(t, err)
	return q
}

func newLedgerPayment(t *testing.T, inv *invoicing.Invoice, amt string) *invoicing.Payment {
	t.Helper()

	p, err := invoicing.NewPayment(inv, invoicing.PaymentDraft{
		InvoiceID:   inv.ID,
		Number:      1,
		Date:        ledgerTestDate,
		Amount:      amount(amt),
		PaymentMode: "bank transfer",
	})
	require.NoError(t, err)
	return p
}
