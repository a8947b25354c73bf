// Package ast is the typed, lazy green/red projection over internal/cst:
// every AST type is a cheap-to-clone handle over a shared Tree plus a node
// index, with named accessors that memoize their first resolution.
package ast

import (
	"sync"

	"ase/internal/cst"
	"ase/internal/source"
	"ase/internal/token"
)

// GreenTree is a shared handle to one CST node plus a memoization slot keyed
// by field name, caching the result of deriving an AST sub-view. Multiple
// AST views may wrap the same GreenTree; the memo slot uses a mutex because
// the query engine may serve concurrent read-only consumers over a snapshot
// (see internal/query).
type GreenTree struct {
	Tree *cst.Tree
	ID   cst.NodeID

	mu   sync.Mutex
	memo map[string]any
}

// NewGreenTree wraps a CST node. Returns nil if id is cst.NoNodeID.
func NewGreenTree(tree *cst.Tree, id cst.NodeID) *GreenTree {
	if id == cst.NoNodeID {
		return nil
	}
	return &GreenTree{Tree: tree, ID: id}
}

// Kind returns the wrapped CST node's kind, or cst.KindInvalid if nil.
func (g *GreenTree) Kind() cst.Kind {
	if g == nil {
		return cst.KindInvalid
	}
	n := g.Tree.Get(g.ID)
	if n == nil {
		return cst.KindInvalid
	}
	return n.Kind
}

// Location returns the covering span of the underlying subtree.
func (g *GreenTree) Location() source.Span {
	if g == nil {
		return source.Span{}
	}
	return g.Tree.Span(g.ID)
}

// Tokens yields the flat, source-order token sequence beneath this node.
func (g *GreenTree) Tokens() []token.Token {
	if g == nil {
		return nil
	}
	return g.Tree.Tokens(g.ID)
}

// node returns the backing cst.Node, or nil.
func (g *GreenTree) node() *cst.Node {
	if g == nil {
		return nil
	}
	return g.Tree.Get(g.ID)
}

// memoize returns a cached value for key if present; otherwise it computes,
// caches, and returns compute()'s result. Safe for concurrent callers.
func (g *GreenTree) memoize(key string, compute func() any) any {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.memo == nil {
		g.memo = make(map[string]any)
	}
	if v, ok := g.memo[key]; ok {
		return v
	}
	v := compute()
	g.memo[key] = v
	return v
}

// namedChild resolves the child node tagged with field, memoized.
func (g *GreenTree) namedChild(field string) *GreenTree {
	if g == nil {
		return nil
	}
	v := g.memoize("node:"+field, func() any {
		n := g.node()
		if n == nil {
			return (*GreenTree)(nil)
		}
		c, ok := n.Named(field)
		if !ok || c.Kind != cst.ChildNode {
			return (*GreenTree)(nil)
		}
		return NewGreenTree(g.Tree, c.Node)
	})
	gt, _ := v.(*GreenTree)
	return gt
}

// namedToken resolves the token tagged with field, memoized.
func (g *GreenTree) namedToken(field string) (token.Token, bool) {
	if g == nil {
		return token.Token{}, false
	}
	type cached struct {
		tok token.Token
		ok  bool
	}
	v := g.memoize("tok:"+field, func() any {
		n := g.node()
		if n == nil {
			return cached{}
		}
		c, ok := n.Named(field)
		if !ok || c.Kind != cst.ChildToken {
			return cached{}
		}
		return cached{tok: c.Token, ok: true}
	})
	c := v.(cached)
	return c.tok, c.ok
}

// childrenOfKind returns every direct child node of the given CST kind, in
// source order — the filter<T>() accessor idiom.
func (g *GreenTree) childrenOfKind(k cst.Kind) []*GreenTree {
	if g == nil {
		return nil
	}
	v := g.memoize("filter:"+k.String(), func() any {
		n := g.node()
		if n == nil {
			return []*GreenTree(nil)
		}
		ids := g.Tree.NodesOfKind(n, k)
		out := make([]*GreenTree, len(ids))
		for i, id := range ids {
			out[i] = NewGreenTree(g.Tree, id)
		}
		return out
	})
	return v.([]*GreenTree)
}

// childAt returns the nth direct child node of the given CST kind, or nil.
func (g *GreenTree) childAt(k cst.Kind, nth int) *GreenTree {
	kids := g.childrenOfKind(k)
	if nth < 0 || nth >= len(kids) {
		return nil
	}
	return kids[nth]
}

// IsError reports whether the wrapped node is one of the algebra's Error
// sentinels (ExprError, PatError). Downstream passes check this to avoid
// cascading diagnostics over already-broken input.
func (g *GreenTree) IsError() bool {
	switch g.Kind() {
	case cst.KindExprError, cst.KindPatError:
		return true
	default:
		return g == nil
	}
}
