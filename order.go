package bookengine

import "math"

// OrderID identifies an order for its entire life. Zero is never assigned
// by this package and is rejected by the mutating API as invalid.
type OrderID uint64

// Price is a limit price. InvalidPrice is the sentinel carried by a
// freshly arrived Market order before it is promoted to GoodTillCancel.
type Price uint32

// InvalidPrice marks an order whose price has not yet been assigned — only
// ever seen on a Market order between construction and promotion.
const InvalidPrice Price = math.MaxUint32

// Quantity is an order size or a level's aggregated resident size.
type Quantity uint32

// Side is which book a resting order lives in.
type Side uint8

const (
	Buy Side = iota
	Sell
)

func (s Side) String() string {
	if s == Sell {
		return "Sell"
	}
	return "Buy"
}

// OrderType is the lifetime/fill policy assigned at Add and preserved
// across Modify.
type OrderType uint8

const (
	Market OrderType = iota
	GoodTillCancel
	GoodForDay
	FillAndKill
	FillOrKill
)

func (t OrderType) String() string {
	switch t {
	case Market:
		return "Market"
	case GoodTillCancel:
		return "GoodTillCancel"
	case GoodForDay:
		return "GoodForDay"
	case FillAndKill:
		return "FillAndKill"
	case FillOrKill:
		return "FillOrKill"
	default:
		return "Unknown"
	}
}

// Order is the book's core value. Identity (ID, Side) is immutable for
// life; Price and Type are immutable except for the one-time Market ->
// GoodTillCancel promotion. Quantity is mutable only through Fill.
//
// next/prev back the intrusive level-queue locator (see price_level.go):
// an *Order is itself the stable handle the order index stores, and
// splicing it out of its level is O(1) and never invalidates another
// order's handle.
type Order struct {
	ID                OrderID
	Side              Side
	Type              OrderType
	Price             Price
	InitialQuantity   Quantity
	RemainingQuantity Quantity

	next *Order
	prev *Order
}

// NewOrder constructs a live order with remaining == initial.
func NewOrder(id OrderID, side Side, otype OrderType, price Price, qty Quantity) *Order {
	return &Order{
		ID:                id,
		Side:              side,
		Type:              otype,
		Price:             price,
		InitialQuantity:   qty,
		RemainingQuantity: qty,
	}
}

// NewMarketOrder constructs a Market order with the internal sentinel
// price; it must be promoted via PromoteToGoodTillCancel before it can
// rest in the book.
func NewMarketOrder(id OrderID, side Side, qty Quantity) *Order {
	return NewOrder(id, side, Market, InvalidPrice, qty)
}

// Filled reports how much of the order has been matched away.
func (o *Order) Filled() Quantity {
	return o.InitialQuantity - o.RemainingQuantity
}

// IsFilled reports whether the order has no quantity left to match.
func (o *Order) IsFilled() bool {
	return o.RemainingQuantity == 0
}

// Fill matches off qty of the order's remaining quantity. Filling for more
// than remains is an engine-internal contract violation: the matching
// loop never computes a fill larger than min(a.Remaining, b.Remaining),
// so this can only fire on a programming error, and is therefore a panic
// rather than a returned error (spec.md §7).
func (o *Order) Fill(qty Quantity) {
	if qty > o.RemainingQuantity {
		panic("bookengine: order cannot be filled for more than its remaining quantity")
	}
	o.RemainingQuantity -= qty
}

// PromoteToGoodTillCancel converts a Market order into a GoodTillCancel
// order resting at price. Only legal while Type is still Market; calling
// it on any other order type is a contract violation, not a domain
// rejection, and panics.
func (o *Order) PromoteToGoodTillCancel(price Price) {
	if o.Type != Market {
		panic("bookengine: only a Market order can be promoted to GoodTillCancel")
	}
	o.Price = price
	o.Type = GoodTillCancel
}
