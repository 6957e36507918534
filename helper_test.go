package btctrack

import (
	"testing"

	"github.com/shopspring/decimal"
)

// fiat wraps a float into a valid NullDecimal for fixtures.
func fiat(v float64) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.NewFromFloat(v))
}

// btcTx builds a settled BTC transaction fixture.
func btcTx(id string, ts int64, sats int64, cat Category, fiatValue float64) Transaction {
	return Transaction{
		ID:           id,
		Timestamp:    ts,
		AmountSats:   sats,
		Category:     cat,
		FiatValue:    fiat(fiatValue),
		FiatCurrency: "USD",
		Currency:     CurrencyBTC,
		SourceType:   "test",
		SourceID:     id,
	}
}

// assertDecimal fails the test when got differs from want.
func assertDecimal(t *testing.T, name string, got decimal.Decimal, want float64) {
	t.Helper()
	if !got.Equal(decimal.NewFromFloat(want)) {
		t.Errorf("%s = %s, want %v", name, got, want)
	}
}
