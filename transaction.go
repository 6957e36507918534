package btctrack

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category is a typed string identifying how a transaction is accounted for.
type Category string

// The closed set of categories. Parsers only ever emit categories from this
// set; anything they cannot map becomes CatUncategorized.
const (
	CatBuy           Category = "Buy"
	CatSell          Category = "Sell"
	CatIncome        Category = "Income"
	CatMining        Category = "Mining"
	CatGift          Category = "Gift"
	CatPayment       Category = "Payment"
	CatFood          Category = "Food"
	CatShopping      Category = "Shopping"
	CatUtilities     Category = "Utilities"
	CatTradingGain   Category = "Trading Gain"
	CatTradingLoss   Category = "Trading Loss"
	CatLendingIncome Category = "Lending Interest (Income)"
	CatLendingCost   Category = "Lending Interest (Cost)"
	CatLiquidation   Category = "Liquidation"
	CatTransferIn    Category = "Transfer In"
	CatTransferOut   Category = "Transfer Out"
	CatReceiveLoan   Category = "Receive Loan"
	CatRepayLoan     Category = "Repay Loan"
	CatUncategorized Category = "Uncategorized"
)

// CurrencyBTC is the asset code for bitcoin amounts, expressed in sats.
const CurrencyBTC = "BTC"

// SatsPerBTC is the number of base units in one bitcoin.
const SatsPerBTC = 100_000_000

// Transaction is the canonical record every export format is normalized to.
//
// Once created by an import, a Transaction is never mutated by the engines;
// editing or deleting records is a collaborator's responsibility.
//
// AmountSats is signed: positive means inbound, negative outbound. Its unit
// is sats when Currency is "BTC", and the ledger minor unit of the fiat code
// otherwise (e.g. cents for EUR).
type Transaction struct {
	// ID is globally unique across all imports, derived from the source tag
	// and the external record id. It is the deduplication key.
	ID string `json:"id"`

	// Timestamp is epoch seconds; 0 means the transaction is still pending.
	Timestamp int64 `json:"timestamp,omitempty"`

	AmountSats int64 `json:"amount_sats"`

	// FeeSats is the BTC network or service fee, in sats, never negative.
	FeeSats int64 `json:"fee_sats,omitempty"`

	// FeeFiat carries a fee paid in a non-BTC unit; it is meaningful only
	// together with FeeFiatCurrency.
	FeeFiat         decimal.NullDecimal `json:"fee_fiat"`
	FeeFiatCurrency string              `json:"fee_fiat_currency,omitempty"`

	Category Category `json:"category"`
	Note     string   `json:"note,omitempty"`

	// FiatValue is the historical fiat value at transaction time. Its sign
	// mirrors AmountSats when present; it is null when unknown.
	FiatValue    decimal.NullDecimal `json:"fiat_value"`
	FiatCurrency string              `json:"fiat_currency,omitempty"`

	// Currency is the asset code of AmountSats (BTC, EUR, USD, ...).
	Currency string `json:"currency"`

	// SourceType and SourceID record provenance for audit and re-import
	// idempotence.
	SourceType string `json:"source_type"`
	SourceID   string `json:"source_id"`
}

// IsBTC reports whether the transaction amount is denominated in sats.
func (t Transaction) IsBTC() bool { return t.Currency == CurrencyBTC }

// IsPending reports whether the transaction has no settlement time yet.
func (t Transaction) IsPending() bool { return t.Timestamp == 0 }

// Time returns the transaction time in UTC, or the zero time when pending.
func (t Transaction) Time() time.Time {
	if t.IsPending() {
		return time.Time{}
	}
	return time.Unix(t.Timestamp, 0).UTC()
}
