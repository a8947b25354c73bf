package resolve

import (
	"ase/internal/ast"
	"ase/internal/diag"
)

// resolvePattern resolves one pattern, binding fresh locals into the scope
// at level and classifying capitalized identifiers against the constructor
// table built during the declare pass.
func (r *Resolver) resolvePattern(c ast.Cursor[ast.Pat], level Level) {
	p := c.Get()
	if p.IsError() {
		return
	}
	switch p.Kind() {
	case ast.PatWild, ast.PatLiteral:
		// No names introduced.
	case ast.PatLocal:
		r.bindPatternName(p, level)
	case ast.PatGlobal:
		r.resolveGlobalPattern(p, level)
	case ast.PatCtor:
		r.resolveCtorPattern(p, level)
	case ast.PatAnn:
		r.resolveExprAt(p.Type(), Type)
		r.resolvePattern(p.Inner(), level)
	}
}

func (r *Resolver) bindPatternName(p ast.Pat, level Level) {
	nm, ok := p.Name()
	if !ok {
		return
	}
	r.scopeAt(level).Bind(r.name(nm.Text), Symbol{Kind: SymBinding, Decl: p.Green.ID})
}

// resolveGlobalPattern implements the `GlobalPat` branch of the pattern
// disambiguation protocol: a bare capitalized identifier with no argument
// list is a zero-arity constructor use if the table knows it, a fresh
// binding if it doesn't (the parser's capitalization guess was wrong), and
// an arity-mismatch error if the table knows it but expects arguments.
func (r *Resolver) resolveGlobalPattern(p ast.Pat, level Level) {
	nm, ok := p.Name()
	if !ok {
		return
	}
	id := r.name(nm.Text)
	info, known := r.ctors.Lookup(id)
	switch {
	case !known:
		// The heuristic guessed constructor but none is declared with this
		// name: reclassify as a fresh local binding.
		r.scopeAt(level).Bind(id, Symbol{Kind: SymBinding, Decl: p.Green.ID})
	case info.Arity == 0:
		r.annotate(p.Green, Resolution{Kind: ResConstructorUse, Symbol: info.Decl})
	default:
		r.reportAt(p.Green, diag.ResAmbiguousCtorOrBinding,
			"'"+nm.Text+"' names a constructor that takes arguments; write them explicitly")
	}
}

func (r *Resolver) resolveCtorPattern(p ast.Pat, level Level) {
	nm, ok := p.Name()
	if !ok {
		return
	}
	args := p.Args()
	id := r.name(nm.Text)
	info, known := r.ctors.Lookup(id)
	switch {
	case !known:
		r.reportAt(p.Green, diag.ResUnresolvedSymbol, "unresolved constructor '"+nm.Text+"'")
	case info.Arity != len(args):
		r.reportAt(p.Green, diag.ResAmbiguousCtorOrBinding,
			"'"+nm.Text+"' expects different number of arguments")
	default:
		r.annotate(p.Green, Resolution{Kind: ResConstructorUse, Symbol: info.Decl})
	}
	for _, arg := range args {
		r.resolvePattern(ast.NewCursor(func() ast.Pat { return arg }), level)
	}
}
