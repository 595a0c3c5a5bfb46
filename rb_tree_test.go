package bookengine

import "testing"

func TestRBTreeMinMaxOrdering(t *testing.T) {
	tree := NewRBTree()
	for _, p := range []Price{50, 10, 90, 30, 70} {
		tree.GetOrCreateLevel(p)
	}

	if got := tree.MinLevel().Price; got != 10 {
		t.Errorf("MinLevel().Price = %d, want 10", got)
	}
	if got := tree.MaxLevel().Price; got != 90 {
		t.Errorf("MaxLevel().Price = %d, want 90", got)
	}
	if tree.Size() != 5 {
		t.Errorf("Size() = %d, want 5", tree.Size())
	}
}

func TestRBTreeGetOrCreateIsIdempotent(t *testing.T) {
	tree := NewRBTree()
	a := tree.GetOrCreateLevel(100)
	b := tree.GetOrCreateLevel(100)
	if a != b {
		t.Error("GetOrCreateLevel should return the same level for the same price")
	}
	if tree.Size() != 1 {
		t.Errorf("Size() = %d, want 1", tree.Size())
	}
}

func TestRBTreeDeleteLevel(t *testing.T) {
	tree := NewRBTree()
	tree.GetOrCreateLevel(100)
	if !tree.DeleteLevel(100) {
		t.Fatal("DeleteLevel(100) = false, want true")
	}
	if tree.DeleteLevel(100) {
		t.Error("DeleteLevel on an already-deleted price should return false")
	}
	if tree.FindLevel(100) != nil {
		t.Error("FindLevel after DeleteLevel should return nil")
	}
}

func TestRBTreeForEachOrdering(t *testing.T) {
	tree := NewRBTree()
	prices := []Price{40, 10, 60, 20, 50, 30}
	for _, p := range prices {
		tree.GetOrCreateLevel(p)
	}

	var ascending []Price
	tree.ForEachAscending(func(lvl *PriceLevel) bool {
		ascending = append(ascending, lvl.Price)
		return true
	})
	for i := 1; i < len(ascending); i++ {
		if ascending[i-1] >= ascending[i] {
			t.Fatalf("ForEachAscending not sorted: %v", ascending)
		}
	}

	var descending []Price
	tree.ForEachDescending(func(lvl *PriceLevel) bool {
		descending = append(descending, lvl.Price)
		return true
	})
	for i := 1; i < len(descending); i++ {
		if descending[i-1] <= descending[i] {
			t.Fatalf("ForEachDescending not sorted: %v", descending)
		}
	}
}

func TestRBTreeDeleteMaintainsOrderingAcrossManyLevels(t *testing.T) {
	tree := NewRBTree()
	for p := Price(0); p < 200; p += 7 {
		tree.GetOrCreateLevel(p)
	}
	for p := Price(0); p < 200; p += 21 {
		tree.DeleteLevel(p)
	}

	var prev Price
	first := true
	tree.ForEachAscending(func(lvl *PriceLevel) bool {
		if !first && lvl.Price <= prev {
			t.Fatalf("ordering broken after deletes at price %d (prev %d)", lvl.Price, prev)
		}
		prev = lvl.Price
		first = false
		return true
	})
}
