package ast

import (
	"ase/internal/cst"
	"ase/internal/token"
)

// PatKind is the algebraic tag for the Pat variant a Green tree node
// projects to.
type PatKind uint8

const (
	PatError PatKind = iota
	PatWild
	PatLocal
	PatGlobal
	PatLiteral
	PatCtor
	PatAnn
)

var patKindByCST = map[cst.Kind]PatKind{
	cst.KindPatWild:    PatWild,
	cst.KindPatLocal:   PatLocal,
	cst.KindPatGlobal:  PatGlobal,
	cst.KindPatLiteral: PatLiteral,
	cst.KindPatCtor:    PatCtor,
	cst.KindPatAnn:     PatAnn,
}

// Pat is a typed view over a GreenTree in pattern position.
type Pat struct {
	Green *GreenTree
}

// NewPat wraps a GreenTree as a Pat. A nil or non-pattern green tree
// projects to the Error variant.
func NewPat(g *GreenTree) Pat { return Pat{Green: g} }

// Kind classifies which Pat variant this view projects to.
func (p Pat) Kind() PatKind {
	if p.Green == nil {
		return PatError
	}
	if k, ok := patKindByCST[p.Green.Kind()]; ok {
		return k
	}
	return PatError
}

// IsError reports whether this view is the Error sentinel.
func (p Pat) IsError() bool { return p.Kind() == PatError }

// Name returns the binder token for Local/Global, or the leading path
// segment for Ctor.
func (p Pat) Name() (token.Token, bool) { return p.Green.namedToken(cst.FieldName) }

// Literal returns the literal token for a PatLiteral.
func (p Pat) Literal() (token.Token, bool) { return p.Green.namedToken(cst.FieldValue) }

// Args returns the sub-patterns applied to a constructor pattern, in
// source order.
func (p Pat) Args() []Pat {
	n := p.Green.node()
	if n == nil {
		return nil
	}
	var out []Pat
	for _, c := range n.Children {
		if c.Kind == cst.ChildNode && c.Field == cst.FieldArg {
			out = append(out, NewPat(NewGreenTree(p.Green.Tree, c.Node)))
		}
	}
	return out
}

// Type returns the type annotation of a PatAnn node.
func (p Pat) Type() Cursor[Expr] {
	return NewCursor(func() Expr { return NewExpr(p.Green.namedChild(cst.FieldType)) })
}

// Inner returns the annotated sub-pattern of a PatAnn node.
func (p Pat) Inner() Cursor[Pat] {
	return NewCursor(func() Pat { return NewPat(p.Green.namedChild(cst.FieldPattern)) })
}
