package ast

import (
	"ase/internal/cst"
	"ase/internal/token"
)

// ParamKind classifies how a parameter binds: explicitly (ordinary
// argument), implicitly (resolved by unification, written in braces in the
// surface grammar), or as the receiver of a class/instance method.
type ParamKind uint8

const (
	ParamExplicit ParamKind = iota
	ParamImplicit
	ParamSelf
)

// Param is a typed view over one parameter of a Lam, Pi, Sigma, function
// signature, or constructor declaration.
type Param struct {
	Green *GreenTree
}

// NewParam wraps a GreenTree as a Param.
func NewParam(g *GreenTree) Param { return Param{Green: g} }

// Kind reports which binding form this parameter uses.
func (p Param) Kind() ParamKind {
	switch p.Green.Kind() {
	case cst.KindParamImplicit:
		return ParamImplicit
	case cst.KindParamSelf:
		return ParamSelf
	default:
		return ParamExplicit
	}
}

// Name returns the parameter's binder token, absent for Self.
func (p Param) Name() (token.Token, bool) { return p.Green.namedToken(cst.FieldName) }

// Type returns the parameter's declared type annotation, if present. The
// annotation is optional for every parameter kind: internal/hir lowers a
// present one and reports nothing when it is absent. Self and most Implicit
// parameters carry none.
func (p Param) Type() Cursor[Expr] {
	return NewCursor(func() Expr { return NewExpr(p.Green.namedChild(cst.FieldType)) })
}
