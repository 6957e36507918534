package btctrack

import (
	"sort"

	"github.com/shopspring/decimal"
)

// PnLFigure is one profit-and-loss number with its percentage over the cost
// basis that produced it.
type PnLFigure struct {
	Fiat    decimal.Decimal
	Percent Percent
}

// PnLReport is the result of a cost-basis computation over the full history.
//
// All fiat values are exact decimals in the fiat unit of the underlying
// transactions; rounding is left to presentation.
type PnLReport struct {
	Method CostBasisMethod

	Realized   PnLFigure // crystallized by completed disposals
	Unrealized PnLFigure // open position at the current price
	Total      PnLFigure // realized + unrealized

	TotalCostBasis decimal.Decimal // cost basis consumed plus still held
	TotalProceeds  decimal.Decimal // fiat received across disposals

	RemainingSats      int64
	RemainingCostBasis decimal.Decimal
	CurrentValue       decimal.Decimal

	// OpenLots is the undisposed position. Under FIFO these are the
	// unconsumed acquisition lots; under average cost a single synthetic
	// lot dated at epoch zero.
	OpenLots []Lot
}

// flow is an acquisition or disposal entering the cost-basis computation.
// Both sats and fiatValue are absolute values; direction is carried by
// which list the flow belongs to.
type flow struct {
	sats      int64
	fiatValue decimal.Decimal
	timestamp int64
}

// NewPnLReport computes realized and unrealized P&L over the ledger's
// bitcoin history using the given cost-basis method.
//
// Only BTC transactions with a settlement time and a known fiat value take
// part; records lacking a fiat value are excluded entirely, not treated as
// zero cost. price is the current fiat price of one BTC; when it is zero or
// negative the price is considered unknown and the report is all zeros.
// The computation never fails: an empty history also yields a zero report.
func (l *Ledger) NewPnLReport(method CostBasisMethod, price decimal.Decimal) *PnLReport {
	return CalculatePnL(l.All(), method, price)
}

// CalculatePnL is the transaction-slice form of Ledger.NewPnLReport.
func CalculatePnL(txs []Transaction, method CostBasisMethod, price decimal.Decimal) *PnLReport {
	report := &PnLReport{Method: method}
	if !price.IsPositive() {
		return report
	}

	acquisitions, disposals := buildFlows(txs)

	var (
		realized decimal.Decimal
		used     decimal.Decimal // cost basis consumed by disposals
		proceeds decimal.Decimal
		open     []Lot
	)

	switch method {
	case FIFO:
		realized, used, proceeds, open = fifoPnL(acquisitions, disposals)
	default:
		realized, used, proceeds, open = averagePnL(acquisitions, disposals)
	}

	var remainingSats int64
	remainingCost := decimal.Zero
	for _, lot := range open {
		remainingSats += lot.Sats
		remainingCost = remainingCost.Add(lot.CostBasis)
	}

	currentValue := decimal.New(remainingSats, -8).Mul(price)
	unrealized := currentValue.Sub(remainingCost)
	total := unrealized.Add(realized)
	totalCostBasis := remainingCost.Add(used)

	report.Realized = PnLFigure{Fiat: realized, Percent: percentOf(realized, used)}
	report.Unrealized = PnLFigure{Fiat: unrealized, Percent: percentOf(unrealized, remainingCost)}
	report.Total = PnLFigure{Fiat: total, Percent: percentOf(total, totalCostBasis)}
	report.TotalCostBasis = totalCostBasis
	report.TotalProceeds = proceeds
	report.RemainingSats = remainingSats
	report.RemainingCostBasis = remainingCost
	report.CurrentValue = currentValue
	report.OpenLots = open
	return report
}

// buildFlows splits the classified BTC history into ordered acquisition and
// disposal flows, absolute values, oldest first.
func buildFlows(txs []Transaction) (acquisitions, disposals []flow) {
	sorted := make([]Transaction, 0, len(txs))
	for _, tx := range txs {
		if tx.IsBTC() && !tx.IsPending() && tx.FiatValue.Valid {
			sorted = append(sorted, tx)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp < sorted[j].Timestamp
	})

	for _, tx := range sorted {
		f := flow{
			sats:      tx.AmountSats,
			fiatValue: tx.FiatValue.Decimal.Abs(),
			timestamp: tx.Timestamp,
		}
		switch Classify(tx.Category, tx.AmountSats) {
		case RoleAcquisition:
			acquisitions = append(acquisitions, f)
		case RoleDisposal:
			f.sats = -f.sats
			disposals = append(disposals, f)
		}
	}
	return acquisitions, disposals
}

// averagePnL prices every disposed sat at the average acquisition cost over
// the whole history. The average is computed once, not per disposal.
func averagePnL(acquisitions, disposals []flow) (realized, used, proceeds decimal.Decimal, open []Lot) {
	realized, used, proceeds = decimal.Zero, decimal.Zero, decimal.Zero

	var acquiredSats, disposedSats int64
	acquiredCost := decimal.Zero
	for _, a := range acquisitions {
		acquiredSats += a.sats
		acquiredCost = acquiredCost.Add(a.fiatValue)
	}

	avgCostPerSat := decimal.Zero
	if acquiredSats > 0 {
		avgCostPerSat = acquiredCost.Div(decimal.NewFromInt(acquiredSats))
	}

	for _, d := range disposals {
		costBasis := decimal.NewFromInt(d.sats).Mul(avgCostPerSat)
		realized = realized.Add(d.fiatValue.Sub(costBasis))
		used = used.Add(costBasis)
		proceeds = proceeds.Add(d.fiatValue)
		disposedSats += d.sats
	}

	// The open position collapses into one synthetic lot at the average
	// cost. Its acquisition time is epoch zero: nothing in this engine keys
	// off lot times, the date is cosmetic.
	if remaining := acquiredSats - disposedSats; remaining > 0 {
		open = []Lot{{
			Sats:      remaining,
			CostBasis: decimal.NewFromInt(remaining).Mul(avgCostPerSat),
		}}
	}
	return realized, used, proceeds, open
}

// fifoPnL consumes acquisition lots oldest first. A disposal larger than
// the front lot consumes it fully and moves on; a smaller one carves its
// share out of the lot and leaves the rest in place.
func fifoPnL(acquisitions, disposals []flow) (realized, used, proceeds decimal.Decimal, open []Lot) {
	realized, used, proceeds = decimal.Zero, decimal.Zero, decimal.Zero

	arena := &lotArena{}
	for _, a := range acquisitions {
		arena.push(Lot{Sats: a.sats, CostBasis: a.fiatValue, AcquiredAt: a.timestamp})
	}

	for _, d := range disposals {
		satsToDispose := d.sats
		disposalSats := decimal.NewFromInt(d.sats)
		proceeds = proceeds.Add(d.fiatValue)

		for satsToDispose > 0 && !arena.empty() {
			lot := arena.head()
			if lot.Sats <= satsToDispose {
				// Consume the lot entirely: its full cost against the
				// disposal proceeds scaled by the lot's share of it.
				costBasis := lot.CostBasis
				share := decimal.NewFromInt(lot.Sats).Div(disposalSats)
				gain := d.fiatValue.Mul(share).Sub(costBasis)
				realized = realized.Add(gain)
				used = used.Add(costBasis)
				satsToDispose -= lot.Sats
				arena.pop()
			} else {
				// Partial consumption: scale cost by the disposed share of
				// the lot and proceeds by the disposed share of the
				// disposal, then shrink the lot in place.
				lotShare := decimal.NewFromInt(satsToDispose).Div(decimal.NewFromInt(lot.Sats))
				costBasis := lot.CostBasis.Mul(lotShare)
				proceedsShare := decimal.NewFromInt(satsToDispose).Div(disposalSats)
				gain := d.fiatValue.Mul(proceedsShare).Sub(costBasis)
				realized = realized.Add(gain)
				used = used.Add(costBasis)
				lot.Sats -= satsToDispose
				lot.CostBasis = lot.CostBasis.Sub(costBasis)
				satsToDispose = 0
			}
		}
	}
	return realized, used, proceeds, arena.remaining()
}

// percentOf returns pnl relative to its basis in percent, and 0 whenever
// the basis is not strictly positive (never NaN or infinity).
func percentOf(pnl, basis decimal.Decimal) Percent {
	if !basis.IsPositive() {
		return 0
	}
	return Percent(pnl.Div(basis).InexactFloat64() * 100)
}
