package bookengine

// orderLocator is the order index's value: the live order plus the level
// queue that currently holds it. The order itself is the splice handle
// (see PriceLevel.Remove); the level is kept alongside so Cancel/Modify
// don't need to re-walk a ladder to find it.
type orderLocator struct {
	order *Order
	level *PriceLevel
}

// orderIndex maps OrderID -> (order, locator into its level queue) (C4).
// One entry per live order; removed at Cancel or when an order fills to
// zero during matching. It never owns the ladder's other half of the
// shared Order — both the index and the level queue point at the same
// value, and the order is only eligible for GC once both forget it.
type orderIndex struct {
	byID map[OrderID]orderLocator
}

func newOrderIndex() *orderIndex {
	return &orderIndex{byID: make(map[OrderID]orderLocator)}
}

func (idx *orderIndex) Len() int { return len(idx.byID) }

func (idx *orderIndex) Has(id OrderID) bool {
	_, ok := idx.byID[id]
	return ok
}

func (idx *orderIndex) Get(id OrderID) (orderLocator, bool) {
	loc, ok := idx.byID[id]
	return loc, ok
}

func (idx *orderIndex) Insert(o *Order, level *PriceLevel) {
	idx.byID[o.ID] = orderLocator{order: o, level: level}
}

func (idx *orderIndex) Remove(id OrderID) {
	delete(idx.byID, id)
}

// Each visits every live order; iteration order is unspecified. Used by
// the day-expiry task's linear scan for GoodForDay orders (spec.md §4.7)
// — a dedicated index isn't worth maintaining for a scan that runs once
// a day.
func (idx *orderIndex) Each(fn func(*Order)) {
	for _, loc := range idx.byID {
		fn(loc.order)
	}
}
