package renderer

import (
	"fmt"
	"strings"

	"github.com/hmlb/btctrack"
	"github.com/hmlb/btctrack/formats"
)

// Transactions renders the canonical transaction list as a markdown table.
func Transactions(txs []btctrack.Transaction) string {
	var b strings.Builder

	fmt.Fprint(&b, "# Transactions\n\n")
	fmt.Fprintln(&b, "| Date | Category | Amount | Fiat Value | Source |")
	fmt.Fprintln(&b, "|:---|:---|---:|---:|:---|")
	for _, tx := range txs {
		amount := SignedSats(tx.AmountSats)
		if !tx.IsBTC() {
			// fiat legs are stored in minor units, display as money
			amount = tx.Currency + " balance change"
			if tx.FiatValue.Valid {
				amount = SignedMoney(tx.FiatValue.Decimal, tx.Currency)
			}
		}
		fiat := "-"
		if tx.IsBTC() && tx.FiatValue.Valid {
			fiat = SignedMoney(tx.FiatValue.Decimal, tx.FiatCurrency)
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			Date(tx.Timestamp), tx.Category, amount, fiat, tx.SourceType)
	}
	return b.String()
}

// ImportReport renders the outcome of one file import.
func ImportReport(file, format string, res formats.Result, added, duplicates int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Import %s\n\n", file)
	fmt.Fprintf(&b, "Format: %s\n\n", format)
	fmt.Fprintf(&b, "- parsed: %d transactions\n", len(res.Transactions))
	fmt.Fprintf(&b, "- added: %d\n", added)
	fmt.Fprintf(&b, "- duplicates skipped: %d\n", duplicates)

	if len(res.Errors) > 0 {
		fmt.Fprint(&b, "\n## Errors\n\n")
		for _, e := range res.Errors {
			fmt.Fprintf(&b, "- %s\n", e)
		}
	}
	if len(res.Warnings) > 0 {
		fmt.Fprint(&b, "\n## Warnings\n\n")
		for _, w := range res.Warnings {
			fmt.Fprintf(&b, "- %s\n", w)
		}
	}
	return b.String()
}
