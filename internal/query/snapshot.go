package query

import "github.com/vmihailenco/msgpack/v5"

// SnapshotEntry is one cache row in a debug dump: the key, its dependency
// keys, and the epoch it was last computed at. Values themselves are not
// serialized — most query results hold live tree handles that don't round
// trip meaningfully — only the dependency graph shape does, which is what
// `eval --dump-queries` is for.
type SnapshotEntry struct {
	Query string `msgpack:"query"`
	Arg   string `msgpack:"arg"`
	Deps  []Key  `msgpack:"deps"`
	Epoch uint64 `msgpack:"epoch"`
}

// Snapshot captures the current dependency graph shape for debugging.
func (e *Engine) Snapshot() []SnapshotEntry {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]SnapshotEntry, 0, len(e.cache))
	for k, v := range e.cache {
		out = append(out, SnapshotEntry{Query: k.Query, Arg: k.Arg, Deps: v.deps, Epoch: v.epoch})
	}
	return out
}

// DumpMsgpack serializes the current query graph snapshot to msgpack, for
// `eval --dump-queries`.
func (e *Engine) DumpMsgpack() ([]byte, error) {
	return msgpack.Marshal(e.Snapshot())
}
