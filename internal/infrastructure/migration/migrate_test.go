package migration

import (
	"io/fs"
	"testing"

	"github.com/erp/ledger/migrations"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrations(t *testing.T) {
	src, err := iofs.New(migrations.FS, ".")
	require.NoError(t, err)
	defer src.Close()

	first, err := src.First()
	require.NoError(t, err)
	assert.Equal(t, uint(1), first)

	up, name, err := src.ReadUp(first)
	require.NoError(t, err)
	defer up.Close()
	assert.Equal(t, "create_ledger_tables", name)

	down, _, err := src.ReadDown(first)
	require.NoError(t, err)
	down.Close()
}

func TestEmbeddedMigrationsDefineLedgerTables(t *testing.T) {
	data, err := fs.ReadFile(migrations.FS, "000001_create_ledger_tables.up.sql")
	require.NoError(t, err)

	sql := string(data)
	for _, table := range []string{"invoices", "quotes", "payments", "settings"} {
		assert.Contains(t, sql, "CREATE TABLE IF NOT EXISTS "+table+" (")
	}
	assert.Contains(t, sql, "setting_key     VARCHAR(100) PRIMARY KEY")
	// payments only ever add credit; reversals are removals
	assert.Contains(t, sql, "CONSTRAINT chk_payments_amount CHECK (amount > 0)")
	assert.Contains(t, sql, "CONSTRAINT chk_invoices_credit CHECK (credit >= 0)")
}

func TestNewFromURL_RejectsUnknownScheme(t *testing.T) {
	_, err := NewFromURL("nosuchdb://localhost/ledger", nil, nil)
	assert.Error(t, err)
}
