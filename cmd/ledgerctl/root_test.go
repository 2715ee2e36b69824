package main

import (
	"bytes"
	"testing"

	"github.com/erp/ledger/internal/domain/invoicing"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_Subcommands(t *testing.T) {
	root := newRootCmd()

	for _, path := range [][]string{
		{"reconcile"},
		{"counter", "current"},
		{"counter", "next"},
		{"export", "summary"},
	} {
		cmd, _, err := root.Find(path)
		require.NoError(t, err, path)
		assert.Equal(t, path[len(path)-1], cmd.Name())
	}
}

func TestRootOptions_TenantID(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name    string
		tenant  string
		want    uuid.UUID
		wantErr string
	}{
		{"valid", id.String(), id, ""},
		{"missing", "", uuid.Nil, "--tenant is required"},
		{"malformed", "acme", uuid.Nil, "invalid --tenant"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := (&rootOptions{tenant: tt.tenant}).tenantID()
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseKind(t *testing.T) {
	for _, name := range kindNames() {
		k, err := parseKind(name)
		require.NoError(t, err)
		assert.Equal(t, invoicing.Kind(name), k)
	}
	_, err := parseKind("receipt")
	assert.ErrorContains(t, err, "unknown kind")
}

func TestParseIDs(t *testing.T) {
	a, b := uuid.New(), uuid.New()

	ids, err := parseIDs([]string{a.String(), b.String()})
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{a, b}, ids)

	_, err = parseIDs([]string{a.String(), "nope"})
	assert.ErrorContains(t, err, `invalid id "nope"`)
}

func TestReconcile_RequiresTenantBeforeConnecting(t *testing.T) {
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"reconcile", uuid.NewString()})

	err := root.Execute()

	assert.ErrorContains(t, err, "--tenant is required")
}

func TestExportSummary_Flags(t *testing.T) {
	cmd := newExportSummaryCmd(&rootOptions{})

	period, err := cmd.Flags().GetString("type")
	require.NoError(t, err)
	assert.Equal(t, "month", period)

	out := cmd.Flags().ShorthandLookup("o")
	require.NotNil(t, out)
	assert.Equal(t, ".", out.DefValue)
}
