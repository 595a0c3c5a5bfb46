package bookengine

import "testing"

func TestOrderIndexInsertGetRemove(t *testing.T) {
	idx := newOrderIndex()
	o := NewOrder(1, Buy, GoodTillCancel, 100, 5)
	lvl := &PriceLevel{Price: 100}
	lvl.Enqueue(o)

	idx.Insert(o, lvl)
	if !idx.Has(1) {
		t.Fatal("Has(1) = false after Insert")
	}
	if idx.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", idx.Len())
	}

	loc, ok := idx.Get(1)
	if !ok {
		t.Fatal("Get(1) ok = false")
	}
	if loc.order != o || loc.level != lvl {
		t.Error("Get(1) returned a locator not matching what was inserted")
	}

	idx.Remove(1)
	if idx.Has(1) {
		t.Error("Has(1) = true after Remove")
	}
	if idx.Len() != 0 {
		t.Errorf("Len() = %d after Remove, want 0", idx.Len())
	}
}

func TestOrderIndexGetUnknownID(t *testing.T) {
	idx := newOrderIndex()
	if _, ok := idx.Get(42); ok {
		t.Error("Get on an empty index should report ok = false")
	}
}

func TestOrderIndexEachVisitsAllLiveOrders(t *testing.T) {
	idx := newOrderIndex()
	lvl := &PriceLevel{Price: 100}
	ids := []OrderID{1, 2, 3}
	for _, id := range ids {
		o := NewOrder(id, Buy, GoodTillCancel, 100, 1)
		lvl.Enqueue(o)
		idx.Insert(o, lvl)
	}

	seen := make(map[OrderID]bool)
	idx.Each(func(o *Order) { seen[o.ID] = true })

	for _, id := range ids {
		if !seen[id] {
			t.Errorf("Each did not visit order %d", id)
		}
	}
	if len(seen) != len(ids) {
		t.Errorf("Each visited %d orders, want %d", len(seen), len(ids))
	}
}
