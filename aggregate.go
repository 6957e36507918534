package btctrack

import (
	"sort"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// This file is the thin aggregation layer: per-category and per-period
// rollups of the canonical transaction set for display. None of it feeds
// back into the cost-basis computation.

// incomeCategories and expenseCategories drive the activity rollup. They
// deliberately differ from the P&L classification sets: activity counts
// lending costs as spending, while P&L excludes what it cannot price.
var incomeCategories = map[Category]bool{
	CatTradingGain:   true,
	CatBuy:           true,
	CatIncome:        true,
	CatMining:        true,
	CatLendingIncome: true,
}

var expenseCategories = map[Category]bool{
	CatTradingLoss: true,
	CatSell:        true,
	CatLendingCost: true,
	CatLiquidation: true,
	CatFood:        true,
	CatShopping:    true,
	CatUtilities:   true,
}

// ActivitySummary totals the sats that flowed in and out of the stack.
type ActivitySummary struct {
	IncomeSats  int64 // inbound sats across income categories
	SpentSats   int64 // outbound sats across expense categories, absolute
	NetFlowSats int64 // IncomeSats - SpentSats
}

// NewActivitySummary rolls up inbound and outbound sats over the BTC
// transactions. Gift follows its sign: received gifts count as income,
// given ones as spending.
func NewActivitySummary(txs []Transaction) ActivitySummary {
	var s ActivitySummary
	for _, tx := range txs {
		if !tx.IsBTC() {
			continue
		}
		cat := tx.Category
		if cat == "" {
			cat = CatUncategorized
		}
		switch {
		case tx.AmountSats > 0 && (incomeCategories[cat] || cat == CatGift):
			s.IncomeSats += tx.AmountSats
		case tx.AmountSats < 0 && (expenseCategories[cat] || cat == CatGift):
			s.SpentSats += -tx.AmountSats
		}
	}
	s.NetFlowSats = s.IncomeSats - s.SpentSats
	return s
}

// FeeTotals accumulates fees paid, sats and fiat separately.
type FeeTotals struct {
	Sats int64
	Fiat map[string]decimal.Decimal // by fiat currency code
}

// NewFeeTotals sums the BTC fees and the per-currency fiat fees.
func NewFeeTotals(txs []Transaction) FeeTotals {
	t := FeeTotals{Fiat: make(map[string]decimal.Decimal)}
	for _, tx := range txs {
		if tx.FeeSats > 0 {
			t.Sats += tx.FeeSats
		}
		if tx.FeeFiat.Valid && tx.FeeFiat.Decimal.IsPositive() && tx.FeeFiatCurrency != "" {
			t.Fiat[tx.FeeFiatCurrency] = t.Fiat[tx.FeeFiatCurrency].Add(tx.FeeFiat.Decimal)
		}
	}
	return t
}

// FiatHoldings sums the non-BTC balances per currency, converted from the
// ledger minor unit to major units using the currency's fraction (cents for
// EUR or USD).
func FiatHoldings(txs []Transaction) map[string]decimal.Decimal {
	minor := make(map[string]int64)
	for _, tx := range txs {
		if tx.Currency == "" || tx.IsBTC() {
			continue
		}
		minor[tx.Currency] += tx.AmountSats
	}

	holdings := make(map[string]decimal.Decimal, len(minor))
	for code, units := range minor {
		fraction := 2
		if cur := money.GetCurrency(code); cur != nil {
			fraction = cur.Fraction
		}
		holdings[code] = decimal.New(units, -int32(fraction))
	}
	return holdings
}

// MonthlyBalance is one point of the cumulative balance history.
type MonthlyBalance struct {
	Month string // "2006-01"
	Sats  int64  // cumulative balance at month end
}

// BalanceHistory returns the cumulative month-end sats balance over the BTC
// history, oldest month first. Pending transactions are skipped.
func BalanceHistory(txs []Transaction) []MonthlyBalance {
	sorted := make([]Transaction, 0, len(txs))
	for _, tx := range txs {
		if tx.IsBTC() && !tx.IsPending() {
			sorted = append(sorted, tx)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp < sorted[j].Timestamp
	})

	byMonth := make(map[string]int64)
	var months []string
	var cumulative int64
	for _, tx := range sorted {
		cumulative += tx.AmountSats
		key := tx.Time().Format("2006-01")
		if _, seen := byMonth[key]; !seen {
			months = append(months, key)
		}
		byMonth[key] = cumulative
	}

	history := make([]MonthlyBalance, 0, len(months))
	for _, m := range months {
		history = append(history, MonthlyBalance{Month: m, Sats: byMonth[m]})
	}
	return history
}
