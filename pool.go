package bookengine

import "sync"

// orderPool recycles *Order values through a sync.Pool. It is adapted
// from the teacher's memory.GenericPool[T] (memory/order_pool.go) — same
// Get/Put shape over the same underlying sync.Pool — but used under the
// book's single mutex rather than the teacher's lock-free epoch-reclaim
// path: Get happens inside Add, Put happens inside Cancel and inside the
// matching loop once an order fills to zero, all while b.mu is already
// held, so the pool itself needs no extra synchronization.
type orderPool struct {
	pool *sync.Pool
}

func newOrderPool() *orderPool {
	return &orderPool{
		pool: &sync.Pool{
			New: func() any { return new(Order) },
		},
	}
}

func (p *orderPool) get(id OrderID, side Side, otype OrderType, price Price, qty Quantity) *Order {
	o := p.pool.Get().(*Order)
	*o = Order{
		ID:                id,
		Side:              side,
		Type:              otype,
		Price:             price,
		InitialQuantity:   qty,
		RemainingQuantity: qty,
	}
	return o
}

func (p *orderPool) put(o *Order) {
	o.next, o.prev = nil, nil
	p.pool.Put(o)
}
