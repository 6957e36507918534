package renderer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hmlb/btctrack"
	"github.com/shopspring/decimal"
)

// Summary renders the aggregation rollups: activity, fees, fiat holdings
// and the cumulative balance history.
func Summary(activity btctrack.ActivitySummary, fees btctrack.FeeTotals, holdings map[string]decimal.Decimal, history []btctrack.MonthlyBalance) string {
	var b strings.Builder

	fmt.Fprint(&b, "# Summary\n\n")

	fmt.Fprint(&b, "## Activity\n\n")
	fmt.Fprintln(&b, "| Income | Spent | Net Flow |")
	fmt.Fprintln(&b, "|---:|---:|---:|")
	fmt.Fprintf(&b, "| %s | %s | %s |\n",
		Sats(activity.IncomeSats), Sats(activity.SpentSats), SignedSats(activity.NetFlowSats))

	fmt.Fprint(&b, "\n## Fees\n\n")
	fmt.Fprintf(&b, "- BTC: %s\n", Sats(fees.Sats))
	for _, code := range sortedKeys(fees.Fiat) {
		fmt.Fprintf(&b, "- %s: %s\n", code, Money(fees.Fiat[code], code))
	}

	if len(holdings) > 0 {
		fmt.Fprint(&b, "\n## Fiat Holdings\n\n")
		for _, code := range sortedKeys(holdings) {
			fmt.Fprintf(&b, "- %s: %s\n", code, Money(holdings[code], code))
		}
	}

	if len(history) > 0 {
		fmt.Fprint(&b, "\n## Balance History\n\n")
		fmt.Fprintln(&b, "| Month | Balance |")
		fmt.Fprintln(&b, "|:---|---:|")
		for _, point := range history {
			fmt.Fprintf(&b, "| %s | %s |\n", point.Month, Sats(point.Sats))
		}
	}

	return b.String()
}

func sortedKeys(m map[string]decimal.Decimal) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
