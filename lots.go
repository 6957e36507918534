package btctrack

import "github.com/shopspring/decimal"

// Lot is a discrete acquisition tracked until fully consumed by disposals.
type Lot struct {
	Sats       int64           // sats still held from this acquisition
	CostBasis  decimal.Decimal // fiat cost attributed to the remaining sats
	AcquiredAt int64           // acquisition time, epoch seconds
}

// lotArena holds FIFO lots as an index-addressed slice with a front cursor.
// Consumption never splices the slice: a partial consumption mutates the
// front lot in place, a full one advances the cursor. This avoids aliasing
// between the consumed and remaining portions of a lot.
type lotArena struct {
	lots  []Lot
	front int
}

func (a *lotArena) push(l Lot) { a.lots = append(a.lots, l) }

func (a *lotArena) empty() bool { return a.front >= len(a.lots) }

// head returns the oldest not-yet-consumed lot.
func (a *lotArena) head() *Lot { return &a.lots[a.front] }

// pop discards the fully consumed front lot.
func (a *lotArena) pop() { a.front++ }

// remaining returns the open lots, oldest first.
func (a *lotArena) remaining() []Lot {
	out := make([]Lot, len(a.lots)-a.front)
	copy(out, a.lots[a.front:])
	return out
}

// remainingSats sums the sats held across open lots.
func (a *lotArena) remainingSats() (sats int64) {
	for _, l := range a.lots[a.front:] {
		sats += l.Sats
	}
	return sats
}

// remainingCostBasis sums the fiat cost attributed to open lots.
func (a *lotArena) remainingCostBasis() decimal.Decimal {
	sum := decimal.Zero
	for _, l := range a.lots[a.front:] {
		sum = sum.Add(l.CostBasis)
	}
	return sum
}
