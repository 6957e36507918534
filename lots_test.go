package btctrack

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestLotArena(t *testing.T) {
	a := &lotArena{}
	if !a.empty() {
		t.Fatal("new arena is not empty")
	}

	a.push(Lot{Sats: 100, CostBasis: decimal.NewFromInt(10), AcquiredAt: 1})
	a.push(Lot{Sats: 200, CostBasis: decimal.NewFromInt(30), AcquiredAt: 2})

	if a.remainingSats() != 300 {
		t.Errorf("remainingSats() = %d, want 300", a.remainingSats())
	}
	assertDecimal(t, "remainingCostBasis", a.remainingCostBasis(), 40)

	// Mutating the head is visible in the arena and keeps the other lots
	// untouched.
	head := a.head()
	if head.AcquiredAt != 1 {
		t.Fatalf("head() = %+v, want the oldest lot", head)
	}
	head.Sats = 50
	head.CostBasis = decimal.NewFromInt(5)
	if a.remainingSats() != 250 {
		t.Errorf("remainingSats() after shrink = %d, want 250", a.remainingSats())
	}

	a.pop()
	if a.empty() {
		t.Fatal("arena empty after one pop of two lots")
	}
	if a.head().AcquiredAt != 2 {
		t.Errorf("head() after pop = %+v, want the second lot", a.head())
	}

	open := a.remaining()
	if len(open) != 1 || open[0].Sats != 200 {
		t.Errorf("remaining() = %v, want the second lot only", open)
	}

	// remaining() is a copy, not a view.
	open[0].Sats = 0
	if a.head().Sats != 200 {
		t.Error("remaining() aliases the arena")
	}

	a.pop()
	if !a.empty() {
		t.Error("arena not empty after consuming both lots")
	}
	if got := a.remaining(); len(got) != 0 {
		t.Errorf("remaining() on empty arena = %v, want none", got)
	}
}
