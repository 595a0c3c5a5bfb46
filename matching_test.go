package bookengine

import "testing"

func TestCanMatch(t *testing.T) {
	b := newTestBook(t)
	b.Add(1, Sell, GoodTillCancel, 100, 5)

	if !b.canMatch(Buy, 100) {
		t.Error("Buy at 100 should cross Sell resting at 100")
	}
	if b.canMatch(Buy, 99) {
		t.Error("Buy at 99 should not cross Sell resting at 100")
	}
}

func TestCanFullyFillAccumulatesAcrossLevels(t *testing.T) {
	b := newTestBook(t)
	b.Add(1, Sell, GoodTillCancel, 100, 3)
	b.Add(2, Sell, GoodTillCancel, 101, 3)

	if !b.canFullyFill(Buy, 101, 6) {
		t.Error("6 units should be fully fillable across the 100 and 101 levels")
	}
	if b.canFullyFill(Buy, 101, 7) {
		t.Error("7 units should exceed what both levels can supply")
	}
	if b.canFullyFill(Buy, 100, 6) {
		t.Error("a buy capped at 100 cannot reach the level resting at 101")
	}
}

func TestFillOrKillLeavesNoResidual(t *testing.T) {
	b := newTestBook(t)
	b.Add(1, Sell, GoodTillCancel, 100, 10)
	trades := b.Add(2, Buy, FillOrKill, 100, 10)

	if len(trades) != 1 {
		t.Fatalf("len(trades) = %d, want 1", len(trades))
	}
	requireCounts(t, b, 0, 0, 0)
}

// Regression for the open question in spec.md §9: a FillAndKill order
// that crosses on arrival becomes top-of-book immediately (the
// pre-insertion gate guarantees this), so the match loop's "check only
// the new top-of-book" cancellation rule never needs to reach below the
// top to find a resting FAK.
func TestFillAndKillAlwaysBecomesTopOfBookOnArrival(t *testing.T) {
	b := newTestBook(t)
	b.Add(1, Sell, GoodTillCancel, 100, 1)
	trades := b.Add(2, Buy, FillAndKill, 100, 5)

	if len(trades) != 1 {
		t.Fatalf("len(trades) = %d, want 1", len(trades))
	}
	// The FAK buy (id 2) crossed for 1, leaving 4 residual; since it
	// immediately became top-of-book on the buy side, the post-match
	// cancellation step must have removed it.
	requireCounts(t, b, 0, 0, 0)
}

func TestFillAndKillRejectedWithoutCross(t *testing.T) {
	b := newTestBook(t)
	trades := b.Add(1, Buy, FillAndKill, 100, 5)
	if len(trades) != 0 {
		t.Fatalf("len(trades) = %d, want 0", len(trades))
	}
	requireCounts(t, b, 0, 0, 0)
}
