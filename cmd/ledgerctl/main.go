// Command ledgerctl is the operator CLI for the ledger: it reconciles invoice
// credit, inspects document counters and exports summaries.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
