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

type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "activity, fee and holdings overview" }
func (*summaryCmd) Usage() string {
	return `btk summary

  Shows the aggregated views over the ledger: sats flowed in and out per
  category family, total fees paid, fiat balances and the cumulative
  balance history.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := decodeLedgerFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}

	txs := ledger.All()
	md := renderer.Summary(
		btctrack.NewActivitySummary(txs),
		btctrack.NewFeeTotals(txs),
		btctrack.FiatHoldings(txs),
		btctrack.BalanceHistory(txs),
	)
	printMarkdown(md)
	return subcommands.ExitSuccess
}
