// Package intern provides hash-consed tables for HIR-shaped data: names,
// types, expressions, values, patterns, statements, top-levels, and
// attributes. Every table guarantees intern(x) == intern(y) whenever x == y,
// and lookup(intern(x)) == x — generalizing the string interning idiom in
// internal/source.Interner to arbitrary comparable structural values via
// Go generics, so later passes compare HIR subtrees by a cheap ID instead of
// deep structural equality.
package intern

import "sync"

// ID is a 1-based handle into a Table. The zero value means "absent".
type ID uint32

// NoID is the sentinel for "no value interned".
const NoID ID = 0

// Table hash-conses values of type T. T must be comparable so it can serve
// directly as a Go map key — this is what makes the generalization from
// string-only interning to structural interning free: no custom hashing or
// equality method is required of callers.
type Table[T comparable] struct {
	mu    sync.RWMutex
	byID  []T
	index map[T]ID
}

// NewTable creates an empty hash-consing table.
func NewTable[T comparable]() *Table[T] {
	var zero T
	return &Table[T]{
		byID:  []T{zero},
		index: map[T]ID{zero: NoID},
	}
}

// Intern returns the canonical ID for v, assigning a fresh one on first
// sight. Concurrent callers observing the same v always receive the same ID.
func (t *Table[T]) Intern(v T) ID {
	t.mu.RLock()
	if id, ok := t.index[v]; ok {
		t.mu.RUnlock()
		return id
	}
	t.mu.RUnlock()

	t.mu.Lock()
	defer t.mu.Unlock()
	if id, ok := t.index[v]; ok {
		return id
	}
	id := ID(len(t.byID))
	t.byID = append(t.byID, v)
	t.index[v] = id
	return id
}

// Lookup returns the value interned under id.
func (t *Table[T]) Lookup(id ID) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	var zero T
	if int(id) < 0 || int(id) >= len(t.byID) {
		return zero, false
	}
	return t.byID[id], true
}

// MustLookup returns the value interned under id, panicking if absent.
func (t *Table[T]) MustLookup(id ID) T {
	v, ok := t.Lookup(id)
	if !ok {
		panic("intern: invalid id")
	}
	return v
}

// Len reports how many distinct values (including the zero-value sentinel)
// the table holds.
func (t *Table[T]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.byID)
}
