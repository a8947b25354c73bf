package cst

import (
	"fortio.org/safecast"

	"ase/internal/token"
)

// eventKind tags one entry in the linear event log the parser driver emits
// and this package folds into a Tree.
type eventKind uint8

const (
	evTombstone eventKind = iota // placeholder for an Open whose Close never landed (abandoned node)
	evStart
	evFinish
	evToken
	evFieldLabel
)

type event struct {
	kind          eventKind
	nodeKind      Kind
	forwardParent int32 // relative offset to a later Start this one nests under (open_before)
	tok           token.Token
	field         string
}

// Marker identifies a not-yet-closed Open event by its index in the log.
type Marker struct{ idx int }

// CloseMark identifies a previously Closed node's Open event, returned by
// Close so a later OpenBefore can retroactively wrap it.
type CloseMark struct{ idx int }

// Sink accumulates the Open/Close/Advance/Field event log that the parser
// driver emits. Build folds the accumulated log into an immutable Tree. The
// zero value is ready to use.
type Sink struct {
	events []event
}

// NewSink creates an empty event sink.
func NewSink() *Sink { return &Sink{} }

// Open pushes a tombstoned Start marker at the current position.
func (s *Sink) Open() Marker {
	s.events = append(s.events, event{kind: evStart, nodeKind: KindInvalid, forwardParent: -1})
	return Marker{idx: len(s.events) - 1}
}

// Close finalizes the node opened at mark with the given kind and pushes a
// matching Finish event.
func (s *Sink) Close(mark Marker, kind Kind) CloseMark {
	s.events[mark.idx].nodeKind = kind
	s.events = append(s.events, event{kind: evFinish})
	return CloseMark{idx: mark.idx}
}

// OpenBefore retroactively inserts a new Open marker that will end up as the
// parent of the node previously closed at closed, without moving or copying
// any events already recorded — it builds left-associative trees from a
// stream that can only look forward.
func (s *Sink) OpenBefore(closed CloseMark) Marker {
	newMark := s.Open()
	rel := newMark.idx - closed.idx
	s.events[closed.idx].forwardParent = int32(rel)
	return newMark
}

// Advance consumes one token into the event stream as a leaf child of the
// currently open node.
func (s *Sink) Advance(tok token.Token) {
	s.events = append(s.events, event{kind: evToken, tok: tok})
}

// Field labels the most recently emitted child (a node close or a token
// advance) with a static field name for O(1) green-tree access.
func (s *Sink) Field(name string) {
	s.events = append(s.events, event{kind: evFieldLabel, field: name})
}

// Abandon drops the node opened at mark: its Start event is left tombstoned
// and its children are reparented to the enclosing node. Used when a
// speculative rule backs out via a savepoint.
func (s *Sink) Abandon(mark Marker) {
	if mark.idx == len(s.events)-1 {
		s.events = s.events[:mark.idx]
		return
	}
	s.events[mark.idx].kind = evTombstone
}

// Len reports the current event count, used by the parser as a savepoint
// cursor into the log.
func (s *Sink) Len() int { return len(s.events) }

// Truncate rolls the log back to a previously observed length, discarding
// every event recorded after it. Used by speculative parsing rollback.
func (s *Sink) Truncate(n int) { s.events = s.events[:n] }

// Build folds the accumulated event log into an immutable Tree. forward_parent
// chains (created by OpenBefore) are resolved so a node started "late" in the
// log ends up enclosing a node started earlier.
func (s *Sink) Build() *Tree {
	b := &builder{}
	events := s.events
	for i := 0; i < len(events); i++ {
		ev := events[i]
		switch ev.kind {
		case evTombstone:
			// abandoned, or already folded into an earlier forward chain
		case evStart:
			if ev.nodeKind == KindInvalid && ev.forwardParent < 0 {
				// opened but never closed and never retroactively wrapped —
				// a dangling Open left by an aborted speculative rule.
				continue
			}
			// Walk the OpenBefore chain outward, tombstoning each Start event
			// as it's consumed so the outer loop doesn't start it again when
			// it later reaches that index.
			outer := make([]Kind, 0, 2)
			idx := i
			fwd := events[idx].forwardParent
			for fwd > 0 {
				idx += int(fwd)
				outer = append(outer, events[idx].nodeKind)
				fwd = events[idx].forwardParent
				events[idx].kind = evTombstone
			}
			for k := len(outer) - 1; k >= 0; k-- {
				b.startNode(outer[k])
			}
			b.startNode(ev.nodeKind)
		case evFinish:
			b.finishNode()
		case evToken:
			b.token(ev.tok)
		case evFieldLabel:
			b.field(ev.field)
		}
	}
	return b.build()
}

// builder is the mutable stack machine that folds a resolved event sequence
// into a Tree arena.
type builder struct {
	nodes []Node
	stack []NodeID // indices of currently-open nodes, as placeholders in nodes
}

func (b *builder) startNode(kind Kind) {
	b.nodes = append(b.nodes, Node{Kind: kind})
	id, err := nodeIDFromLen(len(b.nodes))
	if err != nil {
		panic(err)
	}
	b.stack = append(b.stack, id)
}

func (b *builder) finishNode() {
	if len(b.stack) == 0 {
		return
	}
	closed := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
	b.attachToParent(Child{Kind: ChildNode, Node: closed})
}

func (b *builder) token(tok token.Token) {
	b.attachToParent(Child{Kind: ChildToken, Token: tok})
}

func (b *builder) field(name string) {
	if len(b.stack) == 0 {
		return
	}
	top := &b.nodes[b.stack[len(b.stack)-1]-1]
	if len(top.Children) == 0 {
		return
	}
	top.Children[len(top.Children)-1].Field = name
}

func (b *builder) attachToParent(c Child) {
	if len(b.stack) == 0 {
		// no enclosing node (shouldn't happen for a well-formed grammar) —
		// synthesize a root to avoid losing the child.
		b.startNode(KindFile)
	}
	top := &b.nodes[b.stack[len(b.stack)-1]-1]
	top.Children = append(top.Children, c)
}

func (b *builder) build() *Tree {
	if len(b.nodes) == 0 {
		return NewTree(nil, NoNodeID)
	}
	root, err := nodeIDFromLen(1)
	if err != nil {
		panic(err)
	}
	return NewTree(b.nodes, root)
}

func nodeIDFromLen(n int) (NodeID, error) {
	id, err := safecast.Conv[uint32](n)
	if err != nil {
		return 0, err
	}
	return NodeID(id), nil
}
