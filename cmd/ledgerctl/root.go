package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/erp/ledger/internal/domain/invoicing"
	"github.com/erp/ledger/internal/infrastructure/cache"
	"github.com/erp/ledger/internal/infrastructure/config"
	"github.com/erp/ledger/internal/infrastructure/logger"
	"github.com/erp/ledger/internal/infrastructure/persistence"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var version = "dev"

// env holds the connections shared by every subcommand
type env struct {
	cfg    *config.Config
	log    *zap.Logger
	db     *persistence.Database
	stores *cache.Stores
}

func (e *env) close() {
	if e.stores != nil {
		if err := e.stores.Close(); err != nil {
			e.log.Warn("Error closing counter store", zap.Error(err))
		}
	}
	if e.db != nil {
		if err := e.db.Close(); err != nil {
			e.log.Warn("Error closing database", zap.Error(err))
		}
	}
	_ = logger.Sync(e.log)
}

// connect loads configuration and opens the database and counter backends
func connect(ctx context.Context, logLevel string) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	if logLevel == "" {
		logLevel = cfg.Log.Level
	}
	log, err := logger.New(&logger.Config{
		Level:      logLevel,
		Format:     "console",
		Output:     "stderr",
		TimeFormat: "2006-01-02 15:04:05",
	})
	if err != nil {
		return nil, fmt.Errorf("initialize logger: %w", err)
	}

	e := &env{cfg: cfg, log: log}
	e.db, err = persistence.NewDatabase(ctx, &cfg.Database, log)
	if err != nil {
		e.close()
		return nil, err
	}
	e.stores, err = cache.NewStores(ctx, cfg.Redis, persistence.NewSettingsCounter(e.db.DB),
		cache.WithLogger(log),
		cache.WithSeedKeys(
			invoicing.CounterKey(invoicing.KindInvoice),
			invoicing.CounterKey(invoicing.KindQuote),
			invoicing.CounterKey(invoicing.KindPayment),
		),
	)
	if err != nil {
		e.close()
		return nil, err
	}
	return e, nil
}

type rootOptions struct {
	logLevel string
	tenant   string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:   "ledgerctl",
		Short: "Operate the invoice, quote and payment ledger",
		Long: `ledgerctl talks to the ledger database directly. It reads the same
config.toml, .env and LEDGER_* environment variables as the API server.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level (default: log.level from config)")
	root.PersistentFlags().StringVar(&opts.tenant, "tenant", "", "Tenant ID")

	root.AddCommand(
		newReconcileCmd(opts),
		newCounterCmd(opts),
		newExportCmd(opts),
	)
	return root
}

func (o *rootOptions) tenantID() (uuid.UUID, error) {
	if o.tenant == "" {
		return uuid.Nil, fmt.Errorf("--tenant is required")
	}
	id, err := uuid.Parse(o.tenant)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid --tenant %q: %w", o.tenant, err)
	}
	return id, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
