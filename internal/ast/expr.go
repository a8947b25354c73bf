package ast

import (
	"ase/internal/cst"
	"ase/internal/source"
	"ase/internal/token"
)

// ExprKind is the algebraic tag for the Expr variant a Green tree node
// projects to. Every variant corresponds to exactly one cst.Kind; Error is
// reserved for recovery and for projections that fell off the tree.
type ExprKind uint8

const (
	ExprError ExprKind = iota
	ExprGroup
	ExprInfix
	ExprApp
	ExprLam
	ExprLet
	ExprIf
	ExprMatch
	ExprAnn
	ExprQual
	ExprAccessor
	ExprPi
	ExprSigma
	ExprArray
	ExprHelp
	ExprLocal
	ExprLiteral
	ExprQualifiedPath
	ExprBlock
	ExprTypeUnit
	ExprTypeThis
)

var exprKindByCST = map[cst.Kind]ExprKind{
	cst.KindExprGroup:         ExprGroup,
	cst.KindExprInfix:         ExprInfix,
	cst.KindExprApp:           ExprApp,
	cst.KindExprLam:           ExprLam,
	cst.KindExprLet:           ExprLet,
	cst.KindExprIf:            ExprIf,
	cst.KindExprMatch:         ExprMatch,
	cst.KindExprAnn:           ExprAnn,
	cst.KindExprQual:          ExprQual,
	cst.KindExprAccessor:      ExprAccessor,
	cst.KindExprPi:            ExprPi,
	cst.KindExprSigma:         ExprSigma,
	cst.KindExprArray:         ExprArray,
	cst.KindExprHelp:          ExprHelp,
	cst.KindExprLocal:         ExprLocal,
	cst.KindExprLiteral:       ExprLiteral,
	cst.KindExprQualifiedPath: ExprQualifiedPath,
	cst.KindExprBlock:         ExprBlock,
	cst.KindTypeUnit:          ExprTypeUnit,
	cst.KindTypeThis:          ExprTypeThis,
}

// Expr is a typed view over a GreenTree in expression position. Expr values
// are cheap to clone: they share the underlying tree.
type Expr struct {
	Green *GreenTree
}

// NewExpr wraps a GreenTree as an Expr. A nil or non-expression green tree
// projects to the Error variant.
func NewExpr(g *GreenTree) Expr { return Expr{Green: g} }

// Kind classifies which Expr variant this view projects to.
func (e Expr) Kind() ExprKind {
	if e.Green == nil {
		return ExprError
	}
	if k, ok := exprKindByCST[e.Green.Kind()]; ok {
		return k
	}
	return ExprError
}

// IsError reports whether this view is the Error sentinel.
func (e Expr) IsError() bool { return e.Kind() == ExprError }

// Location returns the span of the underlying subtree.
func (e Expr) Location() source.Span { return e.Green.Location() }

// Tokens yields the flat token sequence beneath this expression.
func (e Expr) Tokens() []token.Token { return e.Green.Tokens() }

// --- Infix / Accessor / Ann / Qual: the four binary-shaped nodes the
// precedence engine rotates. Each exposes LHS/Op/RHS or LHS/RHS pairs over a
// common shape so internal/prec can operate generically.

// LHS returns the left operand of a binary-shaped expression.
func (e Expr) LHS() Cursor[Expr] {
	return NewCursor(func() Expr { return NewExpr(e.Green.namedChild(cst.FieldLHS)) })
}

// RHS returns the right operand of a binary-shaped expression.
func (e Expr) RHS() Cursor[Expr] {
	return NewCursor(func() Expr { return NewExpr(e.Green.namedChild(cst.FieldRHS)) })
}

// Op returns the operator token text of an Infix node (empty for non-Infix).
func (e Expr) Op() (token.Token, bool) { return e.Green.namedToken(cst.FieldOp) }

// --- App: callee applied to one argument (curried application)

func (e Expr) Callee() Cursor[Expr] {
	return NewCursor(func() Expr { return NewExpr(e.Green.namedChild(cst.FieldCallee)) })
}

func (e Expr) Arg() Cursor[Expr] {
	return NewCursor(func() Expr { return NewExpr(e.Green.namedChild(cst.FieldArg)) })
}

// --- Lam: λ params . body

func (e Expr) Params() []Param {
	kids := e.Green.childrenOfKind(cst.KindParamExplicit)
	kids = append(kids, e.Green.childrenOfKind(cst.KindParamImplicit)...)
	kids = append(kids, e.Green.childrenOfKind(cst.KindParamSelf)...)
	out := make([]Param, len(kids))
	for i, k := range kids {
		out[i] = NewParam(k)
	}
	return out
}

func (e Expr) Body() Cursor[Expr] {
	return NewCursor(func() Expr { return NewExpr(e.Green.namedChild(cst.FieldBody)) })
}

// --- Let: let pattern = value in body

func (e Expr) Pattern() Cursor[Pat] {
	return NewCursor(func() Pat { return NewPat(e.Green.namedChild(cst.FieldPattern)) })
}

func (e Expr) Value() Cursor[Expr] {
	return NewCursor(func() Expr { return NewExpr(e.Green.namedChild(cst.FieldValue)) })
}

// --- If: cond then else

func (e Expr) Cond() Cursor[Expr] {
	return NewCursor(func() Expr { return NewExpr(e.Green.namedChild(cst.FieldCond)) })
}

func (e Expr) Then() Cursor[Expr] {
	return NewCursor(func() Expr { return NewExpr(e.Green.namedChild(cst.FieldThen)) })
}

func (e Expr) Else() Cursor[Expr] {
	return NewCursor(func() Expr { return NewExpr(e.Green.namedChild(cst.FieldElse)) })
}

// --- Match: scrutinee + arms

func (e Expr) Scrutinee() Cursor[Expr] {
	return NewCursor(func() Expr { return NewExpr(e.Green.namedChild(cst.FieldScrut)) })
}

func (e Expr) Arms() []MatchArm {
	kids := e.Green.childrenOfKind(cst.KindExprMatchArm)
	out := make([]MatchArm, len(kids))
	for i, k := range kids {
		out[i] = MatchArm{Green: k}
	}
	return out
}

// --- Array

// Stmts returns the statement sequence of an ExprBlock, in source order;
// the block's value is the last statement's Expr.
func (e Expr) Stmts() []Stmt {
	n := e.Green.node()
	if n == nil {
		return nil
	}
	var out []Stmt
	for _, c := range n.Children {
		if c.Kind == cst.ChildNode && c.Field == cst.FieldStmt {
			out = append(out, NewStmt(NewGreenTree(e.Green.Tree, c.Node)))
		}
	}
	return out
}

func (e Expr) Elems() []Expr {
	kids := e.Green.node()
	if kids == nil {
		return nil
	}
	var out []Expr
	for _, c := range kids.Children {
		if c.Kind == cst.ChildNode && c.Field == cst.FieldElem {
			out = append(out, NewExpr(NewGreenTree(e.Green.Tree, c.Node)))
		}
	}
	return out
}

// --- Local / QualifiedPath / Literal: terminal-bearing variants

// Name returns the identifying token for Local, QualifiedPath (last
// segment), and Literal variants.
func (e Expr) Name() (token.Token, bool) { return e.Green.namedToken(cst.FieldName) }

// Segments returns every path segment token for a QualifiedPath.
func (e Expr) Segments() []token.Token {
	n := e.Green.node()
	if n == nil {
		return nil
	}
	var out []token.Token
	for _, c := range n.Children {
		if c.Kind == cst.ChildToken && c.Field == cst.FieldPath {
			out = append(out, c.Token)
		}
	}
	return out
}

// MatchArm pairs a pattern with its body expression.
type MatchArm struct{ Green *GreenTree }

func (m MatchArm) Pattern() Cursor[Pat] {
	return NewCursor(func() Pat { return NewPat(m.Green.namedChild(cst.FieldPattern)) })
}

func (m MatchArm) Body() Cursor[Expr] {
	return NewCursor(func() Expr { return NewExpr(m.Green.namedChild(cst.FieldBody)) })
}

// SetBody replaces a match arm's body expression in place.
func (m MatchArm) SetBody(v Expr) { Expr{Green: m.Green}.setChild(cst.FieldBody, v.Green) }

// setChild and the Set* wrappers below support the precedence engine's
// in-place rotation of binary-shaped nodes (Infix, Accessor, Ann, Qual).
// Rotation mutates the GreenTree's underlying node children directly — the
// one place the otherwise-immutable CST is intentionally mutated, confined
// to that pass (see internal/prec). The driver runs it inside the
// ordered_prec query, on the same tree its cst/ast query results share.
func (e Expr) setChild(field string, g *GreenTree) {
	n := e.Green.Tree.Get(e.Green.ID)
	if n == nil {
		return
	}
	for i := range n.Children {
		if n.Children[i].Field == field && n.Children[i].Kind == cst.ChildNode {
			if g == nil {
				n.Children[i].Node = cst.NoNodeID
			} else {
				n.Children[i].Node = g.ID
			}
			return
		}
	}
}

// SetLHS replaces the left operand of a binary-shaped node.
func (e Expr) SetLHS(v Expr) { e.setChild(cst.FieldLHS, v.Green) }

// SetRHS replaces the right operand of a binary-shaped node.
func (e Expr) SetRHS(v Expr) { e.setChild(cst.FieldRHS, v.Green) }

// SetBody replaces a Lam/Let's body expression in place.
func (e Expr) SetBody(v Expr) { e.setChild(cst.FieldBody, v.Green) }

// SetValue replaces a Let's bound value expression in place.
func (e Expr) SetValue(v Expr) { e.setChild(cst.FieldValue, v.Green) }

// SetCond replaces an If's condition expression in place.
func (e Expr) SetCond(v Expr) { e.setChild(cst.FieldCond, v.Green) }

// SetThen replaces an If's then-branch expression in place.
func (e Expr) SetThen(v Expr) { e.setChild(cst.FieldThen, v.Green) }

// SetElse replaces an If's else-branch expression in place.
func (e Expr) SetElse(v Expr) { e.setChild(cst.FieldElse, v.Green) }

// SetCallee replaces an App's callee expression in place.
func (e Expr) SetCallee(v Expr) { e.setChild(cst.FieldCallee, v.Green) }

// SetArg replaces an App's argument expression in place.
func (e Expr) SetArg(v Expr) { e.setChild(cst.FieldArg, v.Green) }

// SetScrutinee replaces a Match's scrutinee expression in place.
func (e Expr) SetScrutinee(v Expr) { e.setChild(cst.FieldScrut, v.Green) }
