package formats

import (
	"strings"
	"testing"

	"github.com/hmlb/btctrack"
	"github.com/shopspring/decimal"
)

const bitstackHeader = "Type,Date,Received Amount,Sent Amount,Fee,Currency or Token Fee,Description,Token Price of the Amount Received,Token Price of the Amount Sent,Transaction Hash,External ID"

func bitstackParse(t *testing.T, rows ...string) Result {
	t.Helper()
	text := bitstackHeader + "\n" + strings.Join(rows, "\n") + "\n"
	res, err := Import(text)
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}
	return res
}

func TestBitstackDetect(t *testing.T) {
	doc := Tokenize(bitstackHeader + "\n")
	p, ok := Detect(doc.Headers)
	if !ok || p.Name() != "Bitstack" {
		t.Fatalf("Detect() = %v, want Bitstack", p)
	}
}

func TestBitstackTrade(t *testing.T) {
	// A recurring buy: 0.0005 BTC received for 25 EUR sent plus a 0.50
	// EUR fee. The fiat cost of the buy includes the fee.
	res := bitstackParse(t,
		"Trade,2024-03-01T10:00:00Z,0.0005,25,0.50,EUR,DCA,50000,,hash1,ext1")

	if len(res.Errors) != 0 {
		t.Fatalf("Errors = %v", res.Errors)
	}
	tx := res.Transactions[0]
	if tx.ID != "bitstack-ext1" || tx.SourceID != "hash1" {
		t.Errorf("identity = %q/%q", tx.ID, tx.SourceID)
	}
	if tx.AmountSats != 50_000 {
		t.Errorf("AmountSats = %d, want 50000", tx.AmountSats)
	}
	if tx.Category != btctrack.CatBuy {
		t.Errorf("Category = %q, want Buy", tx.Category)
	}
	if !tx.FiatValue.Decimal.Equal(decimal.NewFromFloat(25.50)) {
		t.Errorf("FiatValue = %s, want 25.50 (cost includes the fiat fee)", tx.FiatValue.Decimal)
	}
	if !tx.FeeFiat.Valid || !tx.FeeFiat.Decimal.Equal(decimal.NewFromFloat(0.50)) || tx.FeeFiatCurrency != "EUR" {
		t.Errorf("fee = %+v %q, want 0.50 EUR", tx.FeeFiat, tx.FeeFiatCurrency)
	}
	if tx.FeeSats != 0 {
		t.Errorf("FeeSats = %d, want 0 for a fiat fee", tx.FeeSats)
	}
}

func TestBitstackDepositCategories(t *testing.T) {
	res := bitstackParse(t,
		"Deposit,2024-03-01T10:00:00Z,0.0001,,,,Referral bonus,50000,,h1,e1",
		"Deposit,2024-03-02T10:00:00Z,0.0001,,,,Gift from a friend,50000,,h2,e2",
		"Deposit,2024-03-03T10:00:00Z,0.0001,,,,,,,h3,e3")

	want := []btctrack.Category{btctrack.CatIncome, btctrack.CatGift, btctrack.CatIncome}
	for i, tx := range res.Transactions {
		if tx.Category != want[i] {
			t.Errorf("deposit %d category = %q, want %q", i, tx.Category, want[i])
		}
	}

	// With a unit price the deposit gets a fiat valuation, without one it
	// stays unvalued.
	if v := res.Transactions[0].FiatValue; !v.Valid || !v.Decimal.Equal(decimal.NewFromFloat(5)) {
		t.Errorf("valued deposit = %+v, want 5 EUR", v)
	}
	if res.Transactions[2].FiatValue.Valid {
		t.Errorf("unpriced deposit has a fiat value: %+v", res.Transactions[2].FiatValue)
	}
}

func TestBitstackWithdrawal(t *testing.T) {
	res := bitstackParse(t,
		"Withdrawal,2024-03-01T10:00:00Z,,0.0002,0.00000150,BTC,to cold storage,,55000,h1,e1")

	tx := res.Transactions[0]
	if tx.AmountSats != -20_000 {
		t.Errorf("AmountSats = %d, want -20000", tx.AmountSats)
	}
	if tx.Category != btctrack.CatTransferOut {
		t.Errorf("Category = %q, want Transfer Out", tx.Category)
	}
	if !tx.FiatValue.Decimal.Equal(decimal.NewFromFloat(-11)) {
		t.Errorf("FiatValue = %s, want -11", tx.FiatValue.Decimal)
	}
	// A BTC-denominated fee lands in sats, not in the fiat fee field.
	if tx.FeeSats != 150 || tx.FeeFiat.Valid {
		t.Errorf("fee = %d sats / %+v, want 150 sats", tx.FeeSats, tx.FeeFiat)
	}
}

func TestBitstackBadRows(t *testing.T) {
	res := bitstackParse(t,
		"Trade,2024-03-01T10:00:00Z,,25,,,,,,h1,e1",       // no received amount
		"Trade,2024-03-01T10:00:00Z,0.0005,25,,,,,,h2,",   // no external id
		"Staking,2024-03-01T10:00:00Z,0.0005,,,,,,,h3,e3") // unknown type

	if len(res.Transactions) != 0 {
		t.Errorf("Transactions = %v, want none", res.Transactions)
	}
	if len(res.Errors) != 2 {
		t.Fatalf("Errors = %v, want 2", res.Errors)
	}
	if !strings.Contains(res.Errors[0], "Invalid received amount") {
		t.Errorf("Errors[0] = %q", res.Errors[0])
	}
	if !strings.Contains(res.Errors[1], "Missing External ID") {
		t.Errorf("Errors[1] = %q", res.Errors[1])
	}
	if len(res.Warnings) != 1 || !strings.Contains(res.Warnings[0], "Staking") {
		t.Errorf("Warnings = %v, want one for the unknown type", res.Warnings)
	}
}
