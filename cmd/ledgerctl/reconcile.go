package main

import (
	"fmt"

	appinv "github.com/erp/ledger/internal/application/invoicing"
	"github.com/erp/ledger/internal/infrastructure/persistence"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newReconcileCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "reconcile <invoice-id>...",
		Short: "Recompute invoice credit from its payments",
		Long: `Recomputes each invoice's credit as the sum of its live payments and
re-derives the payment status. Use it after an API call reported
ERR_INCONSISTENT.`,
		Example: `  ledgerctl reconcile --tenant 6f1c... 0b7e... 91a2...`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tenantID, err := opts.tenantID()
			if err != nil {
				return err
			}
			ids, err := parseIDs(args)
			if err != nil {
				return err
			}

			e, err := connect(cmd.Context(), opts.logLevel)
			if err != nil {
				return err
			}
			defer e.close()

			svc := appinv.NewReconcileService(persistence.NewGormTransactionScope(e.db.DB), e.log)
			var failed int
			for _, id := range ids {
				res, err := svc.ReconcileInvoice(cmd.Context(), tenantID, id)
				if err != nil {
					failed++
					e.log.Error("Reconcile failed", zap.String("invoice_id", id.String()), zap.Error(err))
					continue
				}
				if err := printJSON(cmd.OutOrStdout(), res); err != nil {
					return err
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d invoices failed to reconcile", failed, len(ids))
			}
			return nil
		},
	}
}

func parseIDs(args []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(args))
	for _, a := range args {
		id, err := uuid.Parse(a)
		if err != nil {
			return nil, fmt.Errorf("invalid id %q: %w", a, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
