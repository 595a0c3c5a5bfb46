// Package bookengine implements an in-memory limit order book: a
// double-sided priority structure with strict price-then-arrival
// ordering, a cross-matching loop whose termination depends on
// per-order fill semantics, an aggregate price-level index kept
// consistent with the book through every mutation, and a background
// task that expires day-scoped orders at a fixed daily cutoff.
//
// The book holds a single mutex across its entire mutable state —
// both ladders, the order index, and the aggregate level index are
// one logical transaction. Every public entry point, including the
// query methods, acquires that lock for its full duration.
//
// Persistence, networking, and market data are not this package's
// concern; it is a library meant to be driven by an external
// instruction source (see internal/instrfile and cmd/bookctl for one
// such driver).
package bookengine
