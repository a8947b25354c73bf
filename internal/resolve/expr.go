package resolve

import (
	"ase/internal/ast"
	"ase/internal/diag"
)

// resolveExprAt resolves the expression behind a lazy Cursor, if any, at the
// given scope level.
func (r *Resolver) resolveExprAt(c ast.Cursor[ast.Expr], level Level) {
	e := c.Get()
	if e.IsError() {
		return
	}
	r.resolveExpr(e, level)
}

// resolveExpr dispatches on the expression's shape, resolving every
// LocalExpr and QualifiedPath use site it contains and entering a fresh
// scope for every binder-introducing form (Lam, Pi, Sigma, Let, Match arm,
// Block).
func (r *Resolver) resolveExpr(e ast.Expr, level Level) {
	switch e.Kind() {
	case ast.ExprLocal:
		r.resolveLocal(e, level)
	case ast.ExprQualifiedPath:
		r.resolveQualifiedPath(e)
	case ast.ExprInfix, ast.ExprAccessor, ast.ExprAnn, ast.ExprQual:
		r.resolveExprAt(e.LHS(), level)
		r.resolveExprAt(e.RHS(), level)
	case ast.ExprApp:
		r.resolveExprAt(e.Callee(), level)
		r.resolveExprAt(e.Arg(), level)
	case ast.ExprLam:
		r.enterBinderScope(Value, e.Params(), func() { r.resolveExprAt(e.Body(), Value) })
	case ast.ExprPi, ast.ExprSigma:
		r.enterBinderScope(Type, e.Params(), func() { r.resolveExprAt(e.Body(), Type) })
	case ast.ExprIf:
		r.resolveExprAt(e.Cond(), level)
		r.resolveExprAt(e.Then(), level)
		r.resolveExprAt(e.Else(), level)
	case ast.ExprLet:
		r.resolveExprAt(e.Value(), level)
		outer := r.scopeAt(level)
		r.setScope(level, outer.Fork())
		r.resolvePattern(e.Pattern(), level)
		r.resolveExprAt(e.Body(), level)
		r.setScope(level, outer)
	case ast.ExprMatch:
		r.resolveExprAt(e.Scrutinee(), level)
		for _, arm := range e.Arms() {
			outer := r.scopeAt(level)
			r.setScope(level, outer.Fork())
			r.resolvePattern(arm.Pattern(), level)
			r.resolveExprAt(arm.Body(), level)
			r.setScope(level, outer)
		}
	case ast.ExprBlock:
		r.resolveBlock(e, level)
	case ast.ExprGroup, ast.ExprHelp:
		r.resolveExprAt(e.Body(), level)
	case ast.ExprArray:
		for _, el := range e.Elems() {
			r.resolveExpr(el, level)
		}
	case ast.ExprTypeThis:
		// 'self' used as a type is only valid inside a trait, class, or
		// instance member; the parser accepts it anywhere.
		if !r.inMethod {
			r.reportAt(e.Green, diag.ResSelfOutsideMethod, "'self' used outside a method")
		}
	case ast.ExprLiteral, ast.ExprTypeUnit, ast.ExprError:
		// Terminal shapes carry no further names to resolve.
	}
}

// resolveBlock threads one scope fork through the statement sequence so a
// `let`/bind earlier in the block is visible to every later statement.
func (r *Resolver) resolveBlock(e ast.Expr, level Level) {
	outer := r.scopeAt(level)
	r.setScope(level, outer.Fork())
	for _, stmt := range e.Stmts() {
		switch stmt.Kind() {
		case ast.StmtLet:
			r.resolveExprAt(stmt.Expr(), level)
			r.resolvePattern(stmt.Pattern(), level)
		case ast.StmtAsk:
			r.resolveExprAt(stmt.Expr(), level)
			r.resolvePattern(stmt.Pattern(), level)
		case ast.StmtExprKind:
			r.resolveExprAt(stmt.Expr(), level)
		}
	}
	r.setScope(level, outer)
}

func (r *Resolver) setScope(level Level, s *Scope) {
	if level == Type {
		r.typeScope = s
	} else {
		r.valueScope = s
	}
}

// enterBinderScope forks the scope at level, binds params into the fork,
// runs body under it, then restores the outer scope.
func (r *Resolver) enterBinderScope(level Level, params []ast.Param, body func()) {
	outer := r.scopeAt(level)
	r.setScope(level, outer.Fork())
	r.bindParams(params, level)
	body()
	r.setScope(level, outer)
}

func (r *Resolver) resolveLocal(e ast.Expr, level Level) {
	nm, ok := e.Name()
	if !ok {
		return
	}
	id := r.name(nm.Text)
	scope := r.scopeAt(level)
	sym, found := scope.Lookup(id)
	if !found && level == Type {
		// A type-position identifier may still legally be a value-level
		// constructor used as a type constructor reference (the surface
		// grammar doesn't distinguish kinds); fall back once before giving up.
		sym, found = r.valueScope.Lookup(id)
	}
	if !found {
		r.annotate(e.Green, Resolution{Kind: ResUnresolved})
		r.reportAt(e.Green, diag.ResUnresolvedSymbol, "unresolved name '"+nm.Text+"'")
		return
	}
	r.annotate(e.Green, Resolution{Kind: ResBindingUse, Symbol: sym})
}

func (r *Resolver) resolveQualifiedPath(e ast.Expr) {
	segs := e.Segments()
	if len(segs) == 0 {
		return
	}
	// The leading segments name a module; the resolver only validates that
	// the module itself is known (member-level checking requires the
	// exports table entry keyed by the imported module, already loaded by
	// visitUse into scope under the module's own leaf name).
	head := r.name(segs[0].Text)
	sym, ok := r.valueScope.Lookup(head)
	if !ok {
		sym, ok = r.typeScope.Lookup(head)
	}
	if !ok {
		r.annotate(e.Green, Resolution{Kind: ResUnresolved})
		r.reportAt(e.Green, diag.ResModuleMemberNotFound,
			"no module or name '"+segs[0].Text+"' in scope")
		return
	}
	r.annotate(e.Green, Resolution{Kind: ResModuleUse, Symbol: sym})
}
