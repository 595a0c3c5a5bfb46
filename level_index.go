package bookengine

// levelAction selects which of the three update rules levelIndex.Update
// applies (C5, spec.md §4.3). These three call sites, plus the partial-fill
// Match call site, are the complete set of places the aggregate index is
// touched — centralised here to keep that auditable, the way the original
// OrderBook::UpdateLevelData is the sole mutator of its LevelData map.
type levelAction uint8

const (
	levelAdd levelAction = iota
	levelRemove
	levelMatch
)

// levelStats is the per-price aggregate: how many live orders (either
// side) sit at this price, and the summed remaining quantity of buys and
// of sells resident here. count is shared across both sides; bidQty and
// askQty are per-side — the asymmetry spec.md §3 calls out explicitly.
type levelStats struct {
	count  int
	bidQty Quantity
	askQty Quantity
}

// levelIndex is the aggregate per-price index (C5), independent of the
// ladders: it exists purely to answer canFullyFill's liquidity question
// without walking order-level data. The teacher has no equivalent of
// this structure — its order books answer liquidity questions by
// walking the ladder directly — so this is grounded instead on
// original_source/OrderBook.h's `data_` map and UpdateLevelData.
type levelIndex struct {
	byPrice map[Price]*levelStats
}

func newLevelIndex() *levelIndex {
	return &levelIndex{byPrice: make(map[Price]*levelStats)}
}

// Update applies action at price for qty units on side, creating the
// entry if needed and erasing it once count returns to zero.
func (li *levelIndex) Update(side Side, price Price, qty Quantity, action levelAction) {
	st, ok := li.byPrice[price]
	if !ok {
		st = &levelStats{}
		li.byPrice[price] = st
	}

	switch action {
	case levelAdd:
		st.count++
		if side == Buy {
			st.bidQty += qty
		} else {
			st.askQty += qty
		}
	case levelRemove:
		st.count--
		if side == Buy {
			st.bidQty -= qty
		} else {
			st.askQty -= qty
		}
	case levelMatch:
		if side == Buy {
			st.bidQty -= qty
		} else {
			st.askQty -= qty
		}
	}

	if st.count == 0 {
		delete(li.byPrice, price)
	}
}

// OppositeQuantity returns the resident quantity on the opposite side of
// the incoming order at price (bidQty for an incoming Sell, askQty for
// an incoming Buy), and whether any entry exists at all at that price.
func (li *levelIndex) OppositeQuantity(incoming Side, price Price) (Quantity, bool) {
	st, ok := li.byPrice[price]
	if !ok {
		return 0, false
	}
	if incoming == Buy {
		return st.askQty, true
	}
	return st.bidQty, true
}

// Each visits every populated price with its stats; iteration order is
// unspecified. Used by canFullyFill, whose threshold/acceptability
// filters make the result independent of visitation order (see
// matching.go).
func (li *levelIndex) Each(fn func(price Price, st levelStats)) {
	for p, st := range li.byPrice {
		fn(p, *st)
	}
}
