package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/hmlb/btctrack"
	"github.com/hmlb/btctrack/renderer"
)

// txCmd holds the flags for the 'tx' subcommand.
type txCmd struct {
	category string
	source   string
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list the canonical transactions" }
func (*txCmd) Usage() string {
	return `btk tx [-category <category>] [-source <source>]

  Lists the imported transactions in chronological order.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.category, "category", "", "Only show transactions in this category")
	f.StringVar(&c.source, "source", "", "Only show transactions from this source type")
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := decodeLedgerFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}

	var txs []btctrack.Transaction
	for tx := range ledger.Transactions() {
		if c.category != "" && tx.Category != btctrack.Category(c.category) {
			continue
		}
		if c.source != "" && tx.SourceType != c.source {
			continue
		}
		txs = append(txs, tx)
	}

	printMarkdown(renderer.Transactions(txs))
	return subcommands.ExitSuccess
}
