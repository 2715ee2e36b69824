package main

import (
	"context"
	"fmt"

	"github.com/erp/ledger/internal/domain/invoicing"
	"github.com/spf13/cobra"
)

type currentReader interface {
	Current(ctx context.Context, key string) (int64, error)
}

func newCounterCmd(opts *rootOptions) *cobra.Command {
	counter := &cobra.Command{
		Use:   "counter",
		Short: "Inspect and advance document number counters",
	}

	counter.AddCommand(&cobra.Command{
		Use:       "current <invoice|quote|payment>",
		Short:     "Print the last number handed out",
		Args:      cobra.ExactArgs(1),
		ValidArgs: kindNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := parseKind(args[0])
			if err != nil {
				return err
			}
			e, err := connect(cmd.Context(), opts.logLevel)
			if err != nil {
				return err
			}
			defer e.close()

			reader, ok := e.stores.Counter.(currentReader)
			if !ok {
				return fmt.Errorf("counter backend %s cannot report its value", e.stores.Backend)
			}
			n, err := reader.Current(cmd.Context(), invoicing.CounterKey(kind))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %d (%s)\n", kind, n, e.stores.Backend)
			return nil
		},
	})

	counter.AddCommand(&cobra.Command{
		Use:       "next <invoice|quote|payment>",
		Short:     "Allocate and print the next number",
		Long:      "Allocates a number the same way document creation does. The number is consumed.",
		Args:      cobra.ExactArgs(1),
		ValidArgs: kindNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := parseKind(args[0])
			if err != nil {
				return err
			}
			e, err := connect(cmd.Context(), opts.logLevel)
			if err != nil {
				return err
			}
			defer e.close()

			n, err := e.stores.Counter.IncrementAndGet(cmd.Context(), invoicing.CounterKey(kind))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %d (%s)\n", kind, n, e.stores.Backend)
			return nil
		},
	})
	return counter
}

func kindNames() []string {
	return []string{string(invoicing.KindInvoice), string(invoicing.KindQuote), string(invoicing.KindPayment)}
}

func parseKind(s string) (invoicing.Kind, error) {
	switch k := invoicing.Kind(s); k {
	case invoicing.KindInvoice, invoicing.KindQuote, invoicing.KindPayment:
		return k, nil
	}
	return "", fmt.Errorf("unknown kind %q, want invoice, quote or payment", s)
}
