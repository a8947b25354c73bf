package hir

import (
	"unicode"

	"ase/internal/ast"
	"ase/internal/diag"
	"ase/internal/intern"
)

// lowerType lowers a type-position expression per the "Types" rule: Unit,
// This, Pi (possibly named), App, and identifiers classified constructor-vs-
// variable by leading uppercase. Every other expression shape used in a
// type position is diagnosed as unsupported.
func (l *Lowerer) lowerType(c ast.Cursor[ast.Expr]) intern.TypeID {
	e := c.Get()
	if e.IsError() {
		return l.typeError()
	}
	switch e.Kind() {
	case ast.ExprGroup, ast.ExprHelp:
		return l.lowerType(e.Body())
	case ast.ExprTypeUnit:
		return l.emitType(e, key(TagTypeUnit, 0, 0, 0, 0))
	case ast.ExprTypeThis:
		return l.emitType(e, key(TagTypeThis, 0, 0, 0, 0))
	case ast.ExprPi, ast.ExprSigma:
		return l.lowerPiLike(e)
	case ast.ExprApp:
		callee := l.lowerType(e.Callee())
		arg := l.lowerType(e.Arg())
		return l.emitType(e, key(TagTypeApp, intern.ID(callee), intern.ID(arg), 0, 0))
	case ast.ExprLocal, ast.ExprQualifiedPath:
		return l.lowerTypeIdent(e)
	default:
		l.reportAt(e.Green, diag.LowerUnsupportedExpr, "this expression cannot be used in a type position")
		return l.typeError()
	}
}

func (l *Lowerer) emitType(e ast.Expr, k intern.Key) intern.TypeID {
	id := intern.TypeID(l.in.Types.Intern(k))
	l.module.TypeSpans[id] = e.Location()
	return id
}

func (l *Lowerer) typeError() intern.TypeID {
	return intern.TypeID(l.in.Types.Intern(key(TagTypeError, 0, 0, 0, 0)))
}

// lowerTypeIdent classifies a bare identifier used in type position by the
// capitalization convention the surface grammar uses throughout: an
// upper-cased leading rune names a type constructor, a lower-cased one a
// type variable.
func (l *Lowerer) lowerTypeIdent(e ast.Expr) intern.TypeID {
	var text string
	if e.Kind() == ast.ExprQualifiedPath {
		segs := e.Segments()
		texts := make([]string, len(segs))
		for i, s := range segs {
			texts[i] = s.Text
		}
		text = joinPath(texts)
	} else if nm, ok := e.Name(); ok {
		text = nm.Text
	}
	if text == "" {
		return l.typeError()
	}
	nameID := intern.ID(l.in.InternName(text))
	if isUpperLead(text) {
		return l.emitType(e, key(TagTypeCtorRef, nameID, 0, 0, 0))
	}
	return l.emitType(e, key(TagTypeVarRef, nameID, 0, 0, 0))
}

func isUpperLead(s string) bool {
	if s == "" {
		return false
	}
	return unicode.IsUpper([]rune(s)[0])
}

// lowerPiLike lowers both Pi and Sigma surface shapes to TagTypePi: the
// surface grammar already distinguishes them structurally at the CST level,
// and nothing downstream in this repository needs the distinction preserved
// through HIR (documented as an Open Question decision in DESIGN.md).
func (l *Lowerer) lowerPiLike(e ast.Expr) intern.TypeID {
	params := l.lowerParamsAsPatterns(e.Params())
	body := l.lowerType(e.Body())
	return l.emitType(e, key(TagTypePi, l.internPatArgs(params), intern.ID(body), 0, 0))
}
