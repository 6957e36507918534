package renderer

import (
	"fmt"
	"strings"

	"github.com/hmlb/btctrack"
)

// PnLMarkdown renders a profit-and-loss report to a markdown string.
func PnLMarkdown(report *btctrack.PnLReport, currency string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Profit & Loss Report\n\n")
	fmt.Fprintf(&b, "Method: %s\n\n", report.Method)

	fmt.Fprintln(&b, "|  | Fiat | Percent |")
	fmt.Fprintln(&b, "|:---|---:|---:|")
	fmt.Fprintf(&b, "| Realized | %s | %s |\n",
		SignedMoney(report.Realized.Fiat, currency), report.Realized.Percent.SignedString())
	fmt.Fprintf(&b, "| Unrealized | %s | %s |\n",
		SignedMoney(report.Unrealized.Fiat, currency), report.Unrealized.Percent.SignedString())
	fmt.Fprintf(&b, "| **Total** | **%s** | **%s** |\n",
		SignedMoney(report.Total.Fiat, currency), report.Total.Percent.SignedString())

	fmt.Fprint(&b, "\n## Position\n\n")
	fmt.Fprintln(&b, "| Holding | Cost Basis | Current Value |")
	fmt.Fprintln(&b, "|---:|---:|---:|")
	fmt.Fprintf(&b, "| %s | %s | %s |\n",
		Sats(report.RemainingSats),
		Money(report.RemainingCostBasis, currency),
		Money(report.CurrentValue, currency))

	fmt.Fprintf(&b, "\nTotal cost basis: %s. Total proceeds: %s.\n",
		Money(report.TotalCostBasis, currency),
		Money(report.TotalProceeds, currency))

	if report.Method == btctrack.FIFO && len(report.OpenLots) > 0 {
		fmt.Fprint(&b, "\n## Open Lots\n\n")
		fmt.Fprintln(&b, "| Acquired | Sats | Cost Basis |")
		fmt.Fprintln(&b, "|:---|---:|---:|")
		for _, lot := range report.OpenLots {
			fmt.Fprintf(&b, "| %s | %s | %s |\n",
				Date(lot.AcquiredAt), Sats(lot.Sats), Money(lot.CostBasis, currency))
		}
	}

	return b.String()
}
