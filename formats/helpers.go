package formats

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// normalizeHeader lower-cases and trims a header name for comparison.
func normalizeHeader(h string) string {
	return strings.ToLower(strings.TrimSpace(h))
}

// hasHeaders reports whether every required header is present,
// case-insensitively.
func hasHeaders(headers []string, required ...string) bool {
	norm := make(map[string]bool, len(headers))
	for _, h := range headers {
		norm[normalizeHeader(h)] = true
	}
	for _, r := range required {
		if !norm[normalizeHeader(r)] {
			return false
		}
	}
	return true
}

// headerIndex returns the position of a header, case-insensitively, or -1.
func headerIndex(headers []string, name string) int {
	for i, h := range headers {
		if strings.EqualFold(strings.TrimSpace(h), name) {
			return i
		}
	}
	return -1
}

// cell returns the trimmed cell at index i, or "" when the row is short or
// the index unknown.
func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// emptyRow reports whether every cell of the row is blank.
func emptyRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// capture runs one row's parsing and converts a panic into a single error
// entry for that row, so a failure never aborts the batch.
func capture(rowNum int, res *Result, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			res.Errors = append(res.Errors, fmt.Sprintf("Row %d: %v", rowNum, r))
		}
	}()
	fn()
}

// timeLayouts are the formats observed across the supported exports.
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// parseTimestamp parses a source date string into epoch seconds.
func parseTimestamp(s string) (int64, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Unix(), nil
		}
	}
	return 0, fmt.Errorf("unsupported date %q", s)
}

// parseInt64 parses an integer cell; a blank or malformed cell counts as 0,
// matching the lenient semantics of the original exports.
func parseInt64(s string) int64 {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0
	}
	return v
}

// parseDecimal parses a decimal cell; ok is false on blank or malformed
// input.
func parseDecimal(s string) (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// msatToSat converts milli-sats to sats with round-half-up semantics, the
// rounding the source wallet itself applies: ±1500 msat become 2 and -1
// sats respectively.
func msatToSat(msat int64) int64 {
	return floorDiv(msat+500, 1000)
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// btcToSats converts a BTC quantity to sats, rounding to the nearest sat.
func btcToSats(amount decimal.Decimal) int64 {
	return amount.Shift(8).Round(0).IntPart()
}

// minorUnits converts a fiat amount in major units to the ledger minor unit
// of its currency (cents for EUR), using the currency's registered
// fraction.
func minorUnits(amount decimal.Decimal, code string) int64 {
	fraction := 2
	if cur := money.GetCurrency(code); cur != nil {
		fraction = cur.Fraction
	}
	return amount.Shift(int32(fraction)).Round(0).IntPart()
}

var grouping = message.NewPrinter(language.English)

// groupInt renders an integer with thousands separators for note text.
func groupInt(v int64) string {
	return grouping.Sprintf("%d", v)
}

// groupNumber renders a numeric string with thousands separators, keeping
// any fractional digits. Unparseable input is returned as is.
func groupNumber(s string) string {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return s
	}
	return grouping.Sprint(number.Decimal(f))
}
