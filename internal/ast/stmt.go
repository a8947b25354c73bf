package ast

import "ase/internal/cst"

// StmtKind is the algebraic tag for the Stmt variant a Green tree node
// projects to.
type StmtKind uint8

const (
	StmtError StmtKind = iota
	StmtExprKind
	StmtAsk
	StmtLet
)

var stmtKindByCST = map[cst.Kind]StmtKind{
	cst.KindStmtExpr: StmtExprKind,
	cst.KindStmtAsk:  StmtAsk,
	cst.KindStmtLet:  StmtLet,
}

// Stmt is a typed view over one statement inside a block (Lam/Let body,
// match arm body, or do-style sequence).
type Stmt struct {
	Green *GreenTree
}

// NewStmt wraps a GreenTree as a Stmt.
func NewStmt(g *GreenTree) Stmt { return Stmt{Green: g} }

// Kind classifies which Stmt variant this view projects to.
func (s Stmt) Kind() StmtKind {
	if s.Green == nil {
		return StmtError
	}
	if k, ok := stmtKindByCST[s.Green.Kind()]; ok {
		return k
	}
	return StmtError
}

// Expr returns the bare expression of a StmtExprKind, or the right-hand
// side expression bound by a StmtAsk (`pattern <- expr`).
func (s Stmt) Expr() Cursor[Expr] {
	return NewCursor(func() Expr { return NewExpr(s.Green.namedChild(cst.FieldValue)) })
}

// Pattern returns the bound pattern of a StmtAsk or StmtLet.
func (s Stmt) Pattern() Cursor[Pat] {
	return NewCursor(func() Pat { return NewPat(s.Green.namedChild(cst.FieldPattern)) })
}

// File projects the root of a compilation unit: a flat sequence of
// top-level declarations in source order.
type File struct {
	Green *GreenTree
}

// NewFile wraps the root GreenTree of a parsed unit.
func NewFile(g *GreenTree) File { return File{Green: g} }

// Decls returns every top-level declaration, in source order.
func (f File) Decls() []Decl {
	n := f.Green.node()
	if n == nil {
		return nil
	}
	var out []Decl
	for _, c := range n.Children {
		if c.Kind == cst.ChildNode {
			out = append(out, NewDecl(NewGreenTree(f.Green.Tree, c.Node)))
		}
	}
	return out
}
