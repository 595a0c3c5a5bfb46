package bookengine

import "sync"

// LevelInfo is one populated price level's aggregated view, returned by
// LevelInfos (C8).
type LevelInfo struct {
	Price    Price
	Quantity Quantity
}

// Book is the whole engine: two ladders, the order index, the aggregate
// level index, and a pool recycling filled/cancelled orders, all behind
// one mutex (C7+C8, spec.md §5). Every public method takes that mutex
// for its full duration, including the query methods — the matching loop
// touches both ladders, the order index, and the level index as one
// logical transaction, and splitting that into finer-grained locks would
// buy nothing at this scale (spec.md §9).
type Book struct {
	mu   sync.Mutex
	cond *sync.Cond

	bids   *ladder
	asks   *ladder
	orders *orderIndex
	levels *levelIndex
	pool   *orderPool

	cfg Config

	shuttingDown bool
	expiryDone   chan struct{}
}

// NewBook constructs an empty book and starts its day-expiry task (C9).
// Call Close to stop that task before discarding the book.
func NewBook(opts ...Option) *Book {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	b := &Book{
		bids:       newLadder(Buy),
		asks:       newLadder(Sell),
		orders:     newOrderIndex(),
		levels:     newLevelIndex(),
		pool:       newOrderPool(),
		cfg:        cfg,
		expiryDone: make(chan struct{}),
	}
	b.cond = sync.NewCond(&b.mu)
	go b.runExpiry()
	return b
}

// Close signals the day-expiry task to stop and waits for it to exit.
func (b *Book) Close() {
	b.mu.Lock()
	b.shuttingDown = true
	b.cond.Broadcast()
	b.mu.Unlock()
	<-b.expiryDone
}

func (b *Book) ladderFor(side Side) *ladder {
	if side == Buy {
		return b.bids
	}
	return b.asks
}

func (b *Book) oppositeLadder(side Side) *ladder {
	if side == Buy {
		return b.asks
	}
	return b.bids
}

// Add submits a new order to the book and drives matching to completion,
// returning every trade produced (C7, spec.md §4.4–§4.5).
//
// Duplicate ids are a silent no-op. A Market order is promoted to
// GoodTillCancel at the worst quote on the opposite ladder, or rejected
// if that ladder is empty. A FillAndKill order is rejected unless it
// crosses on arrival. A FillOrKill order is rejected unless the book can
// fill it in full. GoodTillCancel and GoodForDay are always accepted.
// None of these rejections are errors — they return an empty trade
// slice, per spec.md §7.
func (b *Book) Add(id OrderID, side Side, otype OrderType, price Price, qty Quantity) []Trade {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.addLocked(id, side, otype, price, qty)
}

func (b *Book) addLocked(id OrderID, side Side, otype OrderType, price Price, qty Quantity) []Trade {
	if b.orders.Has(id) {
		return nil
	}

	var promoteTo *Price
	switch otype {
	case Market:
		worst := b.oppositeLadder(side).Worst()
		if worst == nil {
			return nil
		}
		p := worst.Price
		promoteTo = &p
		price = InvalidPrice
	case FillAndKill:
		if !b.canMatch(side, price) {
			return nil
		}
	case FillOrKill:
		if !b.canFullyFill(side, price, qty) {
			return nil
		}
	}

	order := b.pool.get(id, side, otype, price, qty)
	if promoteTo != nil {
		order.PromoteToGoodTillCancel(*promoteTo)
	}

	level := b.ladderFor(side).GetOrCreate(order.Price)
	level.Enqueue(order)
	b.orders.Insert(order, level)
	b.levels.Update(side, order.Price, qty, levelAdd)

	return b.match()
}

// Cancel removes a live order from the book. Unknown ids are a silent
// no-op (C7, spec.md §4.5).
func (b *Book) Cancel(id OrderID) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cancelLocked(id)
}

func (b *Book) cancelLocked(id OrderID) {
	loc, ok := b.orders.Get(id)
	if !ok {
		return
	}

	loc.level.Remove(loc.order)
	if loc.level.Empty() {
		b.ladderFor(loc.order.Side).Delete(loc.level.Price)
	}
	b.orders.Remove(id)
	b.levels.Update(loc.order.Side, loc.order.Price, loc.order.RemainingQuantity, levelRemove)
	b.pool.put(loc.order)
}

// cancelBatchLocked cancels every id in ids, assuming the caller already
// holds b.mu. Used by the day-expiry task, which collects GoodForDay ids
// and cancels them under one held lock rather than one Cancel call per
// id (spec.md §4.7).
func (b *Book) cancelBatchLocked(ids []OrderID) {
	for _, id := range ids {
		b.cancelLocked(id)
	}
}

// Modify replaces a live order's side/price/quantity, preserving its
// type and id but losing its arrival priority — the new order is
// appended to the back of its (possibly new) level, exactly as if it
// were cancelled and freshly added (C7, spec.md §4.5). Unknown ids are a
// silent no-op.
func (b *Book) Modify(id OrderID, side Side, price Price, qty Quantity) []Trade {
	b.mu.Lock()
	defer b.mu.Unlock()

	loc, ok := b.orders.Get(id)
	if !ok {
		return nil
	}
	otype := loc.order.Type

	b.cancelLocked(id)
	return b.addLocked(id, side, otype, price, qty)
}

// Size returns the number of live orders resident in the book (C8).
func (b *Book) Size() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.orders.Len()
}

// LevelInfos returns every populated level on each side, in that side's
// best-to-worst iteration order: bids descending by price, asks
// ascending (C8, spec.md §4.6).
func (b *Book) LevelInfos() (bids, asks []LevelInfo) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.bids.Walk(func(lvl *PriceLevel) bool {
		bids = append(bids, LevelInfo{Price: lvl.Price, Quantity: lvl.TotalQty})
		return true
	})
	b.asks.Walk(func(lvl *PriceLevel) bool {
		asks = append(asks, LevelInfo{Price: lvl.Price, Quantity: lvl.TotalQty})
		return true
	})
	return bids, asks
}
