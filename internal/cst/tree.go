package cst

import (
	"fmt"

	"fortio.org/safecast"

	"ase/internal/source"
	"ase/internal/token"
)

// NodeID is a 1-based, stable-within-a-parse index into a Tree's arena.
type NodeID uint32

// NoNodeID is the zero value, meaning "no node".
const NoNodeID NodeID = 0

// ChildKind distinguishes the two shapes a CST child may take.
type ChildKind uint8

const (
	ChildNode ChildKind = iota
	ChildToken
)

// Child is one element of a node's ordered children: either a nested node or
// a leaf token, optionally tagged with the parser-assigned field label used
// by the green/red layer for O(1) named access.
type Child struct {
	Kind  ChildKind
	Node  NodeID
	Token token.Token
	Field string
}

// Node is one CST tree node: a kind plus an ordered list of children.
type Node struct {
	Kind     Kind
	Children []Child
}

// Span returns the covering span of a node by combining the spans of its
// first and last descendant tokens. Returns the zero Span if the node has no
// token descendants (should not happen for a well-formed tree).
func (t *Tree) Span(id NodeID) source.Span {
	first, ok := t.firstToken(id)
	if !ok {
		return source.Span{}
	}
	last, ok := t.lastToken(id)
	if !ok {
		return first.Span
	}
	return first.Span.Cover(last.Span)
}

func (t *Tree) firstToken(id NodeID) (token.Token, bool) {
	n := t.Get(id)
	if n == nil {
		return token.Token{}, false
	}
	for _, c := range n.Children {
		switch c.Kind {
		case ChildToken:
			return c.Token, true
		case ChildNode:
			if tok, ok := t.firstToken(c.Node); ok {
				return tok, true
			}
		}
	}
	return token.Token{}, false
}

func (t *Tree) lastToken(id NodeID) (token.Token, bool) {
	n := t.Get(id)
	if n == nil {
		return token.Token{}, false
	}
	for i := len(n.Children) - 1; i >= 0; i-- {
		c := n.Children[i]
		switch c.Kind {
		case ChildToken:
			return c.Token, true
		case ChildNode:
			if tok, ok := t.lastToken(c.Node); ok {
				return tok, true
			}
		}
	}
	return token.Token{}, false
}

// Tokens returns the flat, source-ordered sequence of every token beneath a
// node — used by the diagnostic renderer and the syntax highlighter.
func (t *Tree) Tokens(id NodeID) []token.Token {
	var out []token.Token
	t.collectTokens(id, &out)
	return out
}

func (t *Tree) collectTokens(id NodeID, out *[]token.Token) {
	n := t.Get(id)
	if n == nil {
		return
	}
	for _, c := range n.Children {
		switch c.Kind {
		case ChildToken:
			*out = append(*out, c.Token)
		case ChildNode:
			t.collectTokens(c.Node, out)
		}
	}
}

// Named returns the child tagged with the given field label, if any.
func (n *Node) Named(field string) (Child, bool) {
	for _, c := range n.Children {
		if c.Field == field {
			return c, true
		}
	}
	return Child{}, false
}

// NodesOfKind returns every child of n that is a node of the given kind, in
// source order. Takes the owning Tree since a Child only stores a NodeID;
// used by the green/red layer's filter<T>() idiom.
func (t *Tree) NodesOfKind(n *Node, k Kind) []NodeID {
	var out []NodeID
	for _, c := range n.Children {
		if c.Kind != ChildNode {
			continue
		}
		if child := t.Get(c.Node); child != nil && child.Kind == k {
			out = append(out, c.Node)
		}
	}
	return out
}

// Tree is an arena of Nodes plus a designated root. The parser driver builds
// it once from an event log; the only later pass that mutates it is the
// precedence rotation, which rewrites child links of binary-shaped nodes in
// place (see internal/ast's Expr.setChild). The green tree layer's
// per-field memoization lives outside the Tree itself (see internal/ast).
type Tree struct {
	nodes []Node // 1-based: nodes[0] backs NodeID 1
	root  NodeID
}

// NewTree wraps a node list and a root into a Tree.
func NewTree(nodes []Node, root NodeID) *Tree {
	return &Tree{nodes: nodes, root: root}
}

// Root returns the tree's root node ID, normally KindFile.
func (t *Tree) Root() NodeID { return t.root }

// Get returns the node for id, or nil if id is NoNodeID or out of range.
func (t *Tree) Get(id NodeID) *Node {
	if id == NoNodeID || int(id) > len(t.nodes) {
		return nil
	}
	return &t.nodes[id-1]
}

// Len reports how many nodes the tree's arena holds.
func (t *Tree) Len() uint32 {
	n, err := safecast.Conv[uint32](len(t.nodes))
	if err != nil {
		panic(fmt.Errorf("cst: node count overflow: %w", err))
	}
	return n
}
