// Package formats normalizes heterogeneous third-party transaction exports
// (lightning wallets, custodial exchanges, brokerages, derivatives
// platforms) into the canonical btctrack transaction record.
//
// Each supported source is a Parser; the package keeps them in a fixed
// priority order and picks the first one whose required header set matches
// the file. Parsing is defensive: one bad row yields one error or warning
// entry referencing its 1-based row number, and never aborts the batch.
package formats

import (
	"errors"

	"github.com/hmlb/btctrack"
)

// Result is what crosses the import boundary: the normalized transactions
// plus every per-row failure, represented as messages rather than errors so
// a partially damaged file still imports.
type Result struct {
	Transactions []btctrack.Transaction
	Errors       []string // malformed rows, skipped
	Warnings     []string // semantically questionable rows, skipped
}

// Parser normalizes one source's export format.
type Parser interface {
	// Name is the human-readable source name.
	Name() string
	// Detect reports whether the header set belongs to this format.
	// Detection is by required-header membership, never by row content.
	Detect(headers []string) bool
	// Parse maps data rows to canonical transactions, one row at a time.
	Parse(headers []string, rows [][]string) Result
}

// registry holds the parsers in detection priority order. Two formats could
// in principle both satisfy Detect on the same header set; the order below
// is the tiebreak, so it is part of the contract and must stay stable.
var registry = []Parser{
	phoenix{},
	bitstack{},
	bullBitcoin{},
	lnFutures{},
	lnOptions{},
}

// ErrUnrecognizedFormat is returned when no registered parser claims the
// file. It is decided on the header line alone, before any row is parsed.
var ErrUnrecognizedFormat = errors.New("unrecognized export format")

// Detect returns the first registered parser matching the headers.
func Detect(headers []string) (Parser, bool) {
	for _, p := range registry {
		if p.Detect(headers) {
			return p, true
		}
	}
	return nil, false
}

// Get returns the registered parser with this name.
func Get(name string) (Parser, bool) {
	for _, p := range registry {
		if p.Name() == name {
			return p, true
		}
	}
	return nil, false
}

// Names lists the registered format names in detection priority order.
func Names() []string {
	names := make([]string, len(registry))
	for i, p := range registry {
		names[i] = p.Name()
	}
	return names
}

// Import tokenizes raw export text, detects its format and parses it.
func Import(text string) (Result, error) {
	doc := Tokenize(text)
	p, ok := Detect(doc.Headers)
	if !ok {
		return Result{}, ErrUnrecognizedFormat
	}
	return p.Parse(doc.Headers, doc.Rows), nil
}

// ImportWith parses raw export text with an explicitly chosen parser,
// bypassing detection.
func ImportWith(p Parser, text string) Result {
	doc := Tokenize(text)
	return p.Parse(doc.Headers, doc.Rows)
}
