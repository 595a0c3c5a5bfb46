package bookengine

import "fmt"

// PriceLevel is the FIFO of live orders resident at one price on one side
// (C2). Front is oldest. An *Order is its own stable locator: appending at
// the tail or removing any other order never moves this one, so the order
// index can hold a bare *Order and splice it out in O(1) — the same
// intrusive doubly linked list the teacher uses for its price levels.
type PriceLevel struct {
	Price Price

	head *Order
	tail *Order

	TotalQty   Quantity
	OrderCount int
}

// Enqueue appends o to the back of the level.
func (lvl *PriceLevel) Enqueue(o *Order) {
	if lvl.tail != nil {
		lvl.tail.next = o
		o.prev = lvl.tail
	} else {
		lvl.head = o
	}
	lvl.tail = o
	o.next = nil
	lvl.TotalQty += o.RemainingQuantity
	lvl.OrderCount++
}

// Front returns the oldest order, or nil if the level is empty.
func (lvl *PriceLevel) Front() *Order {
	return lvl.head
}

// Empty reports whether the level has no resident orders.
func (lvl *PriceLevel) Empty() bool {
	return lvl.head == nil
}

// PopFront removes and returns the oldest order in the level.
func (lvl *PriceLevel) PopFront() *Order {
	o := lvl.head
	if o == nil {
		return nil
	}
	lvl.remove(o)
	return o
}

// Remove splices o out of the level given its locator (o itself). O(1),
// and leaves every other order's locator valid.
func (lvl *PriceLevel) Remove(o *Order) {
	lvl.remove(o)
}

func (lvl *PriceLevel) remove(o *Order) {
	if o.prev != nil {
		o.prev.next = o.next
	} else {
		lvl.head = o.next
	}
	if o.next != nil {
		o.next.prev = o.prev
	} else {
		lvl.tail = o.prev
	}
	lvl.TotalQty -= o.RemainingQuantity
	lvl.OrderCount--
	o.next, o.prev = nil, nil
}

// ReduceBy accounts a fill against the level's running total without
// touching the linked list; callers fill the order itself separately.
func (lvl *PriceLevel) ReduceBy(qty Quantity) {
	lvl.TotalQty -= qty
}

func (lvl *PriceLevel) String() string {
	return fmt.Sprintf("PriceLevel{Price=%d, Orders=%d, TotalQty=%d}", lvl.Price, lvl.OrderCount, lvl.TotalQty)
}
