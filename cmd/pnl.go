package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/hmlb/btctrack"
	"github.com/hmlb/btctrack/renderer"
	"github.com/shopspring/decimal"
)

// pnlCmd holds the flags for the 'pnl' subcommand.
type pnlCmd struct {
	method   string
	price    float64
	currency string
}

func (*pnlCmd) Name() string     { return "pnl" }
func (*pnlCmd) Synopsis() string { return "realized and unrealized profit-and-loss analysis" }
func (*pnlCmd) Usage() string {
	return `btk pnl [-method <method>] [-price <fiat>] [-c <currency>]

  Computes realized and unrealized P&L over the bitcoin history under the
  selected cost-basis method. The current price is never fetched: pass it
  with -price, or omit it to get a zero-valued report.
`
}

func (c *pnlCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.method, "method", cfg.Method, "Cost basis method (average, fifo)")
	f.Float64Var(&c.price, "price", 0, "Current fiat price of one BTC")
	f.StringVar(&c.currency, "c", cfg.Currency, "Reporting currency code")
}

func (c *pnlCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	method, err := btctrack.ParseCostBasisMethod(c.method)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing cost basis method: %v\n", err)
		return subcommands.ExitUsageError
	}

	ledger, err := decodeLedgerFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}

	report := ledger.NewPnLReport(method, decimal.NewFromFloat(c.price))
	printMarkdown(renderer.PnLMarkdown(report, c.currency))
	return subcommands.ExitSuccess
}
