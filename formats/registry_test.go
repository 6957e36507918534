package formats

import (
	"errors"
	"testing"
)

func TestNamesOrder(t *testing.T) {
	// The detection priority order is part of the contract.
	want := []string{
		"Phoenix Wallet",
		"Bitstack",
		"Bull Bitcoin",
		"LN Markets Futures",
		"LN Markets Options",
	}
	got := Names()
	if len(got) != len(want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestGet(t *testing.T) {
	p, ok := Get("Bitstack")
	if !ok || p.Name() != "Bitstack" {
		t.Errorf("Get(Bitstack) = %v, %v", p, ok)
	}
	if _, ok := Get("Kraken"); ok {
		t.Error("Get(Kraken) found a parser")
	}
}

func TestImportUnrecognized(t *testing.T) {
	// The format decision is made on the header line alone: rows that
	// would individually fail never get a chance to.
	_, err := Import("some,random,columns\n1,2,3\n")
	if !errors.Is(err, ErrUnrecognizedFormat) {
		t.Fatalf("Import() error = %v, want ErrUnrecognizedFormat", err)
	}

	if _, err := Import(""); !errors.Is(err, ErrUnrecognizedFormat) {
		t.Errorf("Import(empty) error = %v, want ErrUnrecognizedFormat", err)
	}
}

func TestImportWithBypassesDetection(t *testing.T) {
	p, _ := Get("Phoenix Wallet")
	// A file whose headers would not detect as Phoenix still parses with
	// the forced parser; the rows simply fail with row errors.
	res := ImportWith(p, "a,b\n1,2\n")
	if len(res.Transactions) != 0 {
		t.Errorf("Transactions = %v, want none", res.Transactions)
	}
	if len(res.Errors) != 1 {
		t.Errorf("Errors = %v, want one per bad row", res.Errors)
	}
}
