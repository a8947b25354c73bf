package query

import "fmt"

// Tracker records which keys a derived query reads while it computes its
// own value, so Query can store the resulting dependency edges. The engine
// passes a fresh Tracker into every top-level compute call; that tracker is
// threaded into every nested Query call made while producing the value.
type Tracker struct {
	deps map[Key]struct{}
}

func newTracker() *Tracker {
	return &Tracker{deps: make(map[Key]struct{})}
}

func (t *Tracker) touch(key Key) {
	if t != nil {
		t.deps[key] = struct{}{}
	}
}

func (t *Tracker) depsSlice() []Key {
	out := make([]Key, 0, len(t.deps))
	for k := range t.deps {
		out = append(out, k)
	}
	return out
}

// Query computes (or returns the cached result of) the query named by key,
// recording it as a dependency of the caller's own in-progress query via
// parent (pass nil at the top level, e.g. from the CLI driver). compute
// receives a fresh Tracker for its own nested Query calls. Concurrent Query
// calls for the same key collapse into a single compute via singleflight.
func Query[T any](e *Engine, parent *Tracker, key Key, compute func(t *Tracker) T) T {
	parent.touch(key)

	e.mu.RLock()
	if ent, ok := e.cache[key]; ok {
		e.mu.RUnlock()
		return ent.value.(T)
	}
	e.mu.RUnlock()

	v, err, _ := e.inflight.Do(fmt.Sprintf("%s\x00%s", key.Query, key.Arg), func() (any, error) {
		e.mu.RLock()
		if ent, ok := e.cache[key]; ok {
			e.mu.RUnlock()
			return ent.value, nil
		}
		e.mu.RUnlock()

		tracker := newTracker()
		result := compute(tracker)

		e.mu.Lock()
		e.cache[key] = entry{value: result, deps: tracker.depsSlice(), epoch: e.epoch}
		e.mu.Unlock()
		return result, nil
	})
	if err != nil {
		panic(err) // compute never returns an error in this signature; defensive only
	}
	return v.(T)
}
