package bookengine

import "testing"

func TestPriceLevelFIFOOrder(t *testing.T) {
	lvl := &PriceLevel{Price: 100}
	a := NewOrder(1, Buy, GoodTillCancel, 100, 5)
	b := NewOrder(2, Buy, GoodTillCancel, 100, 5)
	c := NewOrder(3, Buy, GoodTillCancel, 100, 5)
	lvl.Enqueue(a)
	lvl.Enqueue(b)
	lvl.Enqueue(c)

	if got := lvl.PopFront().ID; got != 1 {
		t.Errorf("PopFront() = %d, want 1", got)
	}
	if got := lvl.PopFront().ID; got != 2 {
		t.Errorf("PopFront() = %d, want 2", got)
	}
	if got := lvl.PopFront().ID; got != 3 {
		t.Errorf("PopFront() = %d, want 3", got)
	}
	if !lvl.Empty() {
		t.Error("level should be empty after popping every order")
	}
}

// Removing or appending any other element must not invalidate a live
// order's locator (spec.md §3's level-queue requirement).
func TestPriceLevelRemoveMiddlePreservesNeighborLocators(t *testing.T) {
	lvl := &PriceLevel{Price: 100}
	a := NewOrder(1, Buy, GoodTillCancel, 100, 5)
	mid := NewOrder(2, Buy, GoodTillCancel, 100, 5)
	c := NewOrder(3, Buy, GoodTillCancel, 100, 5)
	lvl.Enqueue(a)
	lvl.Enqueue(mid)
	lvl.Enqueue(c)

	lvl.Remove(mid)

	if lvl.OrderCount != 2 {
		t.Fatalf("OrderCount = %d, want 2", lvl.OrderCount)
	}
	if got := lvl.PopFront().ID; got != 1 {
		t.Errorf("PopFront() after removing middle = %d, want 1", got)
	}
	if got := lvl.PopFront().ID; got != 3 {
		t.Errorf("PopFront() after removing middle = %d, want 3", got)
	}
}

func TestPriceLevelTotalQtyTracksResidentOrders(t *testing.T) {
	lvl := &PriceLevel{Price: 100}
	a := NewOrder(1, Buy, GoodTillCancel, 100, 7)
	b := NewOrder(2, Buy, GoodTillCancel, 100, 3)
	lvl.Enqueue(a)
	lvl.Enqueue(b)

	if lvl.TotalQty != 10 {
		t.Fatalf("TotalQty = %d, want 10", lvl.TotalQty)
	}

	lvl.Remove(a)
	if lvl.TotalQty != 3 {
		t.Errorf("TotalQty after removing a = %d, want 3", lvl.TotalQty)
	}
}
