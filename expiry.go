package bookengine

import "time"

// runExpiry is the day-expiry task (C9, spec.md §4.7). It runs on its own
// goroutine from NewBook until Close signals shutdown. At each iteration
// it computes the next occurrence of the daily cutoff, sleeps on the
// book's condition variable until that instant or until shutdown is
// signalled, and — unless it woke for shutdown — cancels every live
// GoodForDay order under the same lock the mutating API uses.
//
// A condition variable, not a channel-based timer, is used here to match
// original_source/OrderBook.cpp's PruneGoodForDayOrders, which sleeps on
// a std::condition_variable bound to the same mutex the rest of the book
// holds: spec.md §5 calls this out as the one place a thread may block
// besides waiting for the book lock itself. Go's sync.Cond has no
// built-in timed wait, so the wait is bounded the standard way: a
// time.AfterFunc broadcasts the same Cond when the deadline arrives, and
// the wait loop re-checks both the deadline and the shutdown flag on
// every wakeup to tolerate spurious wakeups, per spec.md §5.
func (b *Book) runExpiry() {
	defer close(b.expiryDone)

	for {
		b.mu.Lock()
		if b.shuttingDown {
			b.mu.Unlock()
			return
		}

		next := nextCutoff(time.Now(), b.cfg.DayCutoff, b.cfg.CutoffSlack)
		timer := time.AfterFunc(time.Until(next), func() {
			b.mu.Lock()
			b.cond.Broadcast()
			b.mu.Unlock()
		})

		for !b.shuttingDown && time.Now().Before(next) {
			b.cond.Wait()
		}
		timer.Stop()

		shuttingDown := b.shuttingDown
		b.mu.Unlock()

		if shuttingDown {
			return
		}

		b.expireGoodForDay()
	}
}

// expireGoodForDay collects the ids of every live GoodForDay order under
// the lock, then cancels them all under that same held lock — no order
// can be concurrently modified by a driver thread between the scan and
// the cancel because both happen inside one critical section.
func (b *Book) expireGoodForDay() {
	b.mu.Lock()
	defer b.mu.Unlock()

	var ids []OrderID
	b.orders.Each(func(o *Order) {
		if o.Type == GoodForDay {
			ids = append(ids, o.ID)
		}
	})
	b.cancelBatchLocked(ids)
}

// nextCutoff returns the next instant strictly after now that is the
// configured time-of-day, plus slack. If now is already at or past
// today's cutoff, the cutoff rolls to tomorrow — the same rule
// PruneGoodForDayOrders applies via tm_mday += 1 when tm_hour >= 16,
// expressed with time.Time arithmetic instead of broken-down tm fields.
func nextCutoff(now time.Time, dayCutoff, slack time.Duration) time.Time {
	loc := now.Location()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	cutoffToday := midnight.Add(dayCutoff)
	if !now.Before(cutoffToday) {
		cutoffToday = cutoffToday.Add(24 * time.Hour)
	}
	return cutoffToday.Add(slack)
}
