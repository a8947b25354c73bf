// Package query implements the incremental, memoized query engine every
// later compiler stage runs through: source -> cst -> ast -> infix_commands
// -> ordered_prec -> ast_resolved_file -> items/constructors/function_data/
// constructor_data -> hir_file. Each query result is cached and tagged with
// the set of other queries it read. Invalidating a key recomputes it right
// away and compares the fresh value against the old one: only a genuine
// change evicts the queries that (directly or transitively) depended on it,
// so a single-file edit recomputes exactly what that edit could have
// changed, and an edit whose output happens to be identical (a reformat
// that leaves the AST shape alone, say) never forces anything downstream to
// re-run.
package query

import (
	"reflect"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Key identifies one memoized computation: a query name plus an argument
// string (usually a file path or module ref's string form). Keys are plain
// values so they work as map keys and singleflight call keys without any
// custom hashing.
type Key struct {
	Query string
	Arg   string
}

type entry struct {
	value   any
	deps    []Key
	epoch   uint64
	isError bool
	err     error
}

// Engine is the shared incremental cache. The zero value is not usable; use
// New. An Engine is safe for concurrent read/derive calls from multiple
// goroutines.
type Engine struct {
	mu       sync.RWMutex
	cache    map[Key]entry
	epoch    uint64
	inflight singleflight.Group
}

// New creates an empty query engine.
func New() *Engine {
	return &Engine{cache: make(map[Key]entry)}
}

// Invalidate recomputes key via recompute and compares the fresh value
// against whatever was cached for it before. If the two are equal, no
// dependent query is evicted — the early-cutoff §4.6 requires ("if its
// recomputed output equals the previous output, downstream consumers are
// not re-run"). If they differ (or nothing was cached yet), every cached
// entry that (directly or transitively) depended on key is evicted too, so
// the next demand for those recomputes against the new value.
//
// Invalidate is a free function rather than a method because Go methods
// cannot carry their own type parameters independent of the receiver's.
func Invalidate[T any](e *Engine, key Key, recompute func(t *Tracker) T) T {
	e.mu.Lock()
	old, hadOld := e.cache[key]
	e.mu.Unlock()

	tracker := newTracker()
	fresh := recompute(tracker)

	e.mu.Lock()
	changed := !hadOld || !reflect.DeepEqual(old.value, fresh)
	e.cache[key] = entry{value: fresh, deps: tracker.depsSlice(), epoch: e.epoch}
	if changed {
		e.epoch++
	}
	e.mu.Unlock()

	if changed {
		e.mu.Lock()
		e.invalidateDependents(key)
		e.mu.Unlock()
	}
	return fresh
}

func (e *Engine) invalidateDependents(key Key) {
	var toDelete []Key
	for k, v := range e.cache {
		for _, d := range v.deps {
			if d == key {
				toDelete = append(toDelete, k)
				break
			}
		}
	}
	for _, k := range toDelete {
		delete(e.cache, k)
		e.invalidateDependents(k)
	}
}

// Stats reports the current cache size and epoch.
func (e *Engine) Stats() (entries int, epoch uint64) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.cache), e.epoch
}
