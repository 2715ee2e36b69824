package main

import (
	"fmt"
	"os"
	"path/filepath"

	appinv "github.com/erp/ledger/internal/application/invoicing"
	"github.com/erp/ledger/internal/infrastructure/export"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newExportCmd(opts *rootOptions) *cobra.Command {
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export ledger reports",
	}
	exportCmd.AddCommand(newExportSummaryCmd(opts))
	return exportCmd
}

func newExportSummaryCmd(opts *rootOptions) *cobra.Command {
	var (
		period string
		outDir string
	)
	cmd := &cobra.Command{
		Use:     "summary",
		Short:   "Write the invoice summary of the current period as XLSX",
		Example: `  ledgerctl export summary --tenant 6f1c... --type year --out ./reports`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tenantID, err := opts.tenantID()
			if err != nil {
				return err
			}
			e, err := connect(cmd.Context(), opts.logLevel)
			if err != nil {
				return err
			}
			defer e.close()

			invoices, quotes, payments := e.db.Repositories()
			svc := appinv.NewSummaryService(invoices, quotes, payments)
			svc.SetExporter(export.NewXLSXExporter(e.log))

			data, name, err := svc.ExportInvoiceSummary(cmd.Context(), tenantID, period)
			if err != nil {
				return err
			}
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return fmt.Errorf("create output directory: %w", err)
			}
			path := filepath.Join(outDir, name)
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}
			e.log.Info("Summary exported", zap.String("file", path), zap.Int("bytes", len(data)))
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
	cmd.Flags().StringVar(&period, "type", "month", "Period: week, month or year")
	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "Output directory")
	return cmd
}
