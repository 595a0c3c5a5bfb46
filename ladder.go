package bookengine

// ladder pairs an RBTree with the side it belongs to, so "best" and
// "worst" resolve to the right end of the tree: Buy's best is the
// highest price, Sell's best is the lowest. The tree itself stays
// side-agnostic (see rb_tree.go) the way the teacher's RBTree serves
// both a bids and an asks tree undecorated; the side label is added
// here, the way domain/orderbook.OrderBook wraps one tree per side with
// BidsWalk/AsksWalk helpers.
type ladder struct {
	side Side
	tree *RBTree
}

func newLadder(side Side) *ladder {
	return &ladder{side: side, tree: NewRBTree()}
}

func (l *ladder) Size() int { return l.tree.Size() }

func (l *ladder) Find(price Price) *PriceLevel {
	return l.tree.FindLevel(price)
}

func (l *ladder) GetOrCreate(price Price) *PriceLevel {
	return l.tree.GetOrCreateLevel(price)
}

func (l *ladder) Delete(price Price) {
	l.tree.DeleteLevel(price)
}

// Best returns the top-of-book level: highest price for Buy, lowest for
// Sell.
func (l *ladder) Best() *PriceLevel {
	if l.side == Buy {
		return l.tree.MaxLevel()
	}
	return l.tree.MinLevel()
}

// Worst returns the far end of the ladder: lowest price for Buy, highest
// for Sell. Used to price a promoted Market order against the worst
// opposite-side quote currently in the book.
func (l *ladder) Worst() *PriceLevel {
	if l.side == Buy {
		return l.tree.MinLevel()
	}
	return l.tree.MaxLevel()
}

// Walk visits every resident level best-to-worst.
func (l *ladder) Walk(fn func(*PriceLevel) bool) {
	if l.side == Buy {
		l.tree.ForEachDescending(fn)
	} else {
		l.tree.ForEachAscending(fn)
	}
}
