// Package renderer turns engine results into markdown reports for the
// terminal. Rendering is the presentation boundary: this is the only place
// where fiat decimals get rounded.
package renderer

import (
	"time"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var grouping = message.NewPrinter(language.English)

// Sats renders a sats amount with thousands separators.
func Sats(v int64) string {
	return grouping.Sprintf("%d sats", v)
}

// SignedSats renders a sats amount with an explicit sign, and "-" for zero.
func SignedSats(v int64) string {
	if v == 0 {
		return "-"
	}
	return grouping.Sprintf("%+d sats", v)
}

// Money renders a fiat decimal in its currency's display format.
func Money(v decimal.Decimal, code string) string {
	cur := money.GetCurrency(code)
	if cur == nil {
		return v.StringFixed(2) + " " + code
	}
	return money.New(v.Shift(int32(cur.Fraction)).Round(0).IntPart(), code).Display()
}

// SignedMoney renders a fiat decimal with an explicit sign, and "-" for
// zero.
func SignedMoney(v decimal.Decimal, code string) string {
	if v.IsZero() {
		return "-"
	}
	if v.IsPositive() {
		return "+" + Money(v, code)
	}
	return Money(v, code)
}

// Date renders an epoch-seconds timestamp, and "pending" when it is unset.
func Date(ts int64) string {
	if ts == 0 {
		return "pending"
	}
	return time.Unix(ts, 0).UTC().Format("2006-01-02")
}
