package bookengine

// TradeLeg is one side of a Trade: the resting order's id, the price it
// was resting at, and the quantity that leg of the trade carries.
type TradeLeg struct {
	OrderID  OrderID
	Price    Price
	Quantity Quantity
}

// Trade is the pair of legs produced by matching a buy against a sell.
// Both legs always carry equal quantity.
type Trade struct {
	Buy  TradeLeg
	Sell TradeLeg
}

// canMatch reports whether an order on side, quoting price, crosses the
// opposite ladder's best quote (C6, spec.md §4.4).
func (b *Book) canMatch(side Side, price Price) bool {
	if side == Buy {
		best := b.asks.Best()
		if best == nil {
			return false
		}
		return price >= best.Price
	}
	best := b.bids.Best()
	if best == nil {
		return false
	}
	return price <= best.Price
}

// canFullyFill reports whether there is enough crossing liquidity resting
// on the opposite side to fill quantity in full, without actually
// matching anything. It walks the aggregate level index rather than the
// ladder: the original implementation walks its (unordered) price->stats
// map applying the same two filters below, and since the arithmetic is a
// running subtraction that only needs to reach zero, the result does not
// depend on visitation order — only on which levels are accepted by the
// threshold and price filters (original_source/OrderBook.cpp:
// CanFullyFill).
func (b *Book) canFullyFill(side Side, price Price, quantity Quantity) bool {
	if !b.canMatch(side, price) {
		return false
	}

	// Anti-stale threshold: the best quote currently on the opposite
	// ladder. A Buy may only count ask levels at or above the best ask;
	// a Sell may only count bid levels at or below the best bid.
	var threshold Price
	if side == Buy {
		threshold = b.asks.Best().Price
	} else {
		threshold = b.bids.Best().Price
	}

	remaining := quantity
	sufficient := false
	b.levels.Each(func(levelPrice Price, st levelStats) {
		if sufficient {
			return
		}
		if side == Buy && levelPrice < threshold {
			return
		}
		if side == Sell && levelPrice > threshold {
			return
		}
		if side == Buy && levelPrice > price {
			return
		}
		if side == Sell && levelPrice < price {
			return
		}

		oppositeQty := st.askQty
		if side == Sell {
			oppositeQty = st.bidQty
		}
		if oppositeQty == 0 {
			return
		}

		if Quantity(oppositeQty) >= remaining {
			sufficient = true
			return
		}
		remaining -= Quantity(oppositeQty)
	})
	return sufficient
}

// match runs the cross-loop to exhaustion and returns every trade it
// produced (C6, spec.md §4.4 step-by-step):
//
//  1. stop once either ladder is empty
//  2. stop once the best bid no longer reaches the best ask
//  3. drain both top-of-book queues against each other, order by order,
//     emitting one trade per pair and reporting Match/Remove to the
//     aggregate index for each leg independently
//  4. drop any level emptied by the inner loop
//  5. cancel a FillAndKill order that is now top-of-book on either side
//     (it may no longer cross and must not rest)
//  6. repeat
func (b *Book) match() []Trade {
	var trades []Trade

	for {
		if b.bids.Size() == 0 || b.asks.Size() == 0 {
			return trades
		}

		bidLevel := b.bids.Best()
		askLevel := b.asks.Best()
		if bidLevel.Price < askLevel.Price {
			return trades
		}

		for !bidLevel.Empty() && !askLevel.Empty() {
			buyOrder := bidLevel.Front()
			sellOrder := askLevel.Front()

			qty := minQuantity(buyOrder.RemainingQuantity, sellOrder.RemainingQuantity)

			buyOrder.Fill(qty)
			sellOrder.Fill(qty)
			bidLevel.ReduceBy(qty)
			askLevel.ReduceBy(qty)

			trades = append(trades, Trade{
				Buy:  TradeLeg{OrderID: buyOrder.ID, Price: buyOrder.Price, Quantity: qty},
				Sell: TradeLeg{OrderID: sellOrder.ID, Price: sellOrder.Price, Quantity: qty},
			})

			if buyOrder.IsFilled() {
				bidLevel.PopFront()
				b.orders.Remove(buyOrder.ID)
				b.levels.Update(Buy, buyOrder.Price, qty, levelRemove)
				b.pool.put(buyOrder)
			} else {
				b.levels.Update(Buy, buyOrder.Price, qty, levelMatch)
			}

			if sellOrder.IsFilled() {
				askLevel.PopFront()
				b.orders.Remove(sellOrder.ID)
				b.levels.Update(Sell, sellOrder.Price, qty, levelRemove)
				b.pool.put(sellOrder)
			} else {
				b.levels.Update(Sell, sellOrder.Price, qty, levelMatch)
			}
		}

		if bidLevel.Empty() {
			b.bids.Delete(bidLevel.Price)
		}
		if askLevel.Empty() {
			b.asks.Delete(askLevel.Price)
		}

		if top := b.bids.Best(); top != nil && !top.Empty() && top.Front().Type == FillAndKill {
			b.cancelLocked(top.Front().ID)
		}
		if top := b.asks.Best(); top != nil && !top.Empty() && top.Front().Type == FillAndKill {
			b.cancelLocked(top.Front().ID)
		}
	}
}

func minQuantity(a, b Quantity) Quantity {
	if a < b {
		return a
	}
	return b
}
