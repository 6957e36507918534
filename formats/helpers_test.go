package formats

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestMsatToSat(t *testing.T) {
	tests := []struct {
		msat int64
		want int64
	}{
		{0, 0},
		{1000, 1},
		{1499, 1},
		{1500, 2}, // half rounds up
		{2501, 3},
		{-1000, -1},
		{-1499, -1},
		{-1500, -1}, // half rounds toward positive, even when negative
		{-1501, -2},
		{100_000_000, 100_000},
	}
	for _, tt := range tests {
		if got := msatToSat(tt.msat); got != tt.want {
			t.Errorf("msatToSat(%d) = %d, want %d", tt.msat, got, tt.want)
		}
	}
}

func TestBtcToSats(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"1", 100_000_000},
		{"0.00050000", 50_000},
		{"0.000000015", 2}, // rounds to the nearest sat
		{"-0.001", -100_000},
	}
	for _, tt := range tests {
		d, err := decimal.NewFromString(tt.in)
		if err != nil {
			t.Fatal(err)
		}
		if got := btcToSats(d); got != tt.want {
			t.Errorf("btcToSats(%s) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestMinorUnits(t *testing.T) {
	tests := []struct {
		amount string
		code   string
		want   int64
	}{
		{"100", "EUR", 10_000},
		{"74.50", "EUR", 7_450},
		{"10", "JPY", 10}, // zero-fraction currency
		{"5", "XYZ", 500}, // unknown code defaults to 2 decimals
	}
	for _, tt := range tests {
		d, err := decimal.NewFromString(tt.amount)
		if err != nil {
			t.Fatal(err)
		}
		if got := minorUnits(d, tt.code); got != tt.want {
			t.Errorf("minorUnits(%s, %s) = %d, want %d", tt.amount, tt.code, got, tt.want)
		}
	}
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{"2024-01-01T00:00:00Z", 1704067200, false},
		{"2024-01-01 00:00:00", 1704067200, false},
		{"2024-01-01", 1704067200, false},
		{"2024-01-01T01:00:00+01:00", 1704067200, false},
		{"01/01/2024", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := parseTimestamp(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseTimestamp(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("parseTimestamp(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestGroupNumber(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1000", "1,000"},
		{"58000.5", "58,000.5"},
		{"42", "42"},
		{"not a number", "not a number"},
	}
	for _, tt := range tests {
		if got := groupNumber(tt.in); got != tt.want {
			t.Errorf("groupNumber(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestHasHeaders(t *testing.T) {
	headers := []string{"date", "id", "type", "amount_msat", "payment_hash"}
	if !hasHeaders(headers, "date", "ID", "Payment_Hash") {
		t.Error("hasHeaders() is not case-insensitive")
	}
	if hasHeaders(headers, "date", "leverage") {
		t.Error("hasHeaders() matched a missing header")
	}
}

func TestCell(t *testing.T) {
	row := []string{" a ", "b"}
	if got := cell(row, 0); got != "a" {
		t.Errorf("cell(0) = %q, want %q", got, "a")
	}
	if got := cell(row, 5); got != "" {
		t.Errorf("cell(5) = %q, want empty", got)
	}
	if got := cell(row, -1); got != "" {
		t.Errorf("cell(-1) = %q, want empty", got)
	}
}
