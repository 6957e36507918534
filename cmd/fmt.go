package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/hmlb/btctrack"
)

// fmtCmd holds the flags for the 'fmt' subcommand.
type fmtCmd struct {
	outputFile string
}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats the ledger file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `btk fmt [-o <file>]

  Reads the ledger file, validates it, and rewrites it sorted and
  deduplicated. With -o the result goes to another file instead.
`
}

func (c *fmtCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.outputFile, "o", "", "Output file (defaults to rewriting the ledger file in place)")
}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := decodeLedgerFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}

	out := c.outputFile
	if out == "" {
		out = *ledgerFile
	}
	file, err := os.Create(out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening %q: %v\n", out, err)
		return subcommands.ExitFailure
	}
	defer file.Close()

	if err := btctrack.EncodeLedger(file, ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", out, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Formatted %d transactions into %s\n", ledger.Len(), out)
	return subcommands.ExitSuccess
}
