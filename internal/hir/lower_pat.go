package hir

import (
	"ase/internal/ast"
	"ase/internal/diag"
	"ase/internal/intern"
	"ase/internal/token"
)

// lowerPat lowers one surface pattern to its one-to-one HIR counterpart.
func (l *Lowerer) lowerPat(c ast.Cursor[ast.Pat]) intern.PatternID {
	p := c.Get()
	if p.IsError() {
		return l.patError()
	}
	switch p.Kind() {
	case ast.PatWild:
		return l.emitPat(p, key(TagPatWild, 0, 0, 0, 0))
	case ast.PatLocal, ast.PatGlobal:
		nm, ok := p.Name()
		if !ok {
			return l.patError()
		}
		return l.emitPat(p, key(TagPatBind, intern.ID(l.in.InternName(nm.Text)), 0, 0, 0))
	case ast.PatLiteral:
		return l.lowerPatLiteral(p)
	case ast.PatCtor:
		return l.lowerPatCtor(p)
	case ast.PatAnn:
		// The annotation's type belongs wherever the surrounding construct
		// records a type (a parameter's Type field, a let's declared type);
		// the pattern itself lowers to its unwrapped inner shape.
		return l.lowerPat(p.Inner())
	default:
		l.reportAt(p.Green, diag.LowerUnsupportedPat, "this pattern has no HIR lowering")
		return l.patError()
	}
}

func (l *Lowerer) emitPat(p ast.Pat, k intern.Key) intern.PatternID {
	id := intern.PatternID(l.in.Patterns.Intern(k))
	l.module.PatternSpans[id] = p.Green.Location()
	return id
}

func (l *Lowerer) patError() intern.PatternID {
	return intern.PatternID(l.in.Patterns.Intern(key(TagPatError, 0, 0, 0, 0)))
}

func (l *Lowerer) lowerPatLiteral(p ast.Pat) intern.PatternID {
	tok, ok := p.Literal()
	if !ok {
		l.reportAt(p.Green, diag.LowerMalformedLiteral, "literal pattern has no token")
		return l.patError()
	}
	switch tok.Kind {
	case token.IntLit:
		return l.emitPat(p, key(TagPatLitInt, intern.ID(l.in.InternName(tok.Text)), 0, 0, 0))
	case token.UintLit:
		return l.emitPat(p, key(TagPatLitUint, intern.ID(l.in.InternName(tok.Text)), 0, 0, 0))
	case token.FloatLit:
		return l.emitPat(p, key(TagPatLitFloat, intern.ID(l.in.InternName(tok.Text)), 0, 0, 0))
	case token.StringLit, token.FStringLit:
		return l.emitPat(p, key(TagPatLitStr, intern.ID(l.in.InternName(tok.Text)), 0, 0, 0))
	case token.KwTrue:
		return l.emitPat(p, key(TagPatLitBool, 1, 0, 0, 0))
	case token.KwFalse:
		return l.emitPat(p, key(TagPatLitBool, 0, 0, 0, 0))
	default:
		l.reportAt(p.Green, diag.LowerMalformedLiteral, "unrecognized literal pattern token kind")
		return l.patError()
	}
}

func (l *Lowerer) lowerPatCtor(p ast.Pat) intern.PatternID {
	nm, ok := p.Name()
	if !ok {
		return l.patError()
	}
	args := p.Args()
	ids := make([]intern.PatternID, len(args))
	for i, a := range args {
		ids[i] = l.lowerPat(ast.NewCursor(func() ast.Pat { return a }))
	}
	return l.emitPat(p, key(TagPatCtor, intern.ID(l.in.InternName(nm.Text)), l.internPatArgs(ids), 0, 0))
}

// lowerParamsAsPatterns builds the parameter-pattern list the lowering rule
// describes: This for an explicit `self`, an error (reported, represented
// as an Error pattern) for self in an implicit position, otherwise a bind
// pattern tagged Explicit or Implicit by bracket shape.
func (l *Lowerer) lowerParamsAsPatterns(params []ast.Param) []intern.PatternID {
	out := make([]intern.PatternID, 0, len(params))
	for _, p := range params {
		out = append(out, l.lowerParam(p))
	}
	return out
}

func (l *Lowerer) lowerParam(p ast.Param) intern.PatternID {
	switch p.Kind() {
	case ast.ParamSelf:
		id := intern.PatternID(l.in.Patterns.Intern(key(TagPatThis, 0, 0, 0, 0)))
		l.module.PatternSpans[id] = p.Green.Location()
		return id
	case ast.ParamImplicit:
		nm, ok := p.Name()
		if !ok {
			return l.patError()
		}
		if nm.Kind != token.Ident {
			// `{self}` leaves a non-identifier token in the name slot.
			l.reportAt(p.Green, diag.LowerUnsupportedPat, "an implicit parameter must be a plain name, not 'self'")
			return l.patError()
		}
		id := intern.PatternID(l.in.Patterns.Intern(key(TagPatBindImplicit, intern.ID(l.in.InternName(nm.Text)), 0, 0, 0)))
		l.module.PatternSpans[id] = p.Green.Location()
		if tc := p.Type(); !tc.Get().IsError() {
			// An implicit parameter's optional type is lowered for its side
			// effects (diagnostics on unsupported shapes) but is not
			// threaded into the pattern itself; callers needing it recover
			// it from the original AST alongside the pattern.
			_ = l.lowerType(tc)
		}
		return id
	default:
		nm, ok := p.Name()
		if !ok {
			return l.patError()
		}
		// An explicit parameter's type annotation is optional here: a
		// binder in a value-clause parameter list (or a bare type
		// parameter of a record/enum/trait/alias) carries no type of its
		// own — it is either untyped or recovers its type from a fused
		// signature. Only record fields and GADT/ctor parameter types are
		// required explicit, and those are lowered directly by their own
		// declaration rules, not through this path.
		if tc := p.Type(); !tc.Get().IsError() {
			_ = l.lowerType(tc)
		}
		id := intern.PatternID(l.in.Patterns.Intern(key(TagPatBindExplicit, intern.ID(l.in.InternName(nm.Text)), 0, 0, 0)))
		l.module.PatternSpans[id] = p.Green.Location()
		return id
	}
}
