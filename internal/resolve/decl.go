package resolve

import (
	"strings"

	"ase/internal/ast"
	"ase/internal/diag"
	"ase/internal/project"
)

func (r *Resolver) resolveDecl(d ast.Decl) {
	switch d.Kind() {
	case ast.DeclUse:
		r.visitUse(d)
	case ast.DeclType:
		r.resolveTypeAlias(d)
	case ast.DeclRecord:
		r.resolveRecord(d)
	case ast.DeclEnum:
		r.resolveEnum(d)
	case ast.DeclTrait, ast.DeclClass:
		r.resolveTraitOrClass(d)
	case ast.DeclInstance:
		r.resolveInstance(d)
	case ast.DeclSignature:
		r.resolveSignature(d)
	case ast.DeclAssign:
		r.resolveAssign(d)
	case ast.DeclCommand, ast.DeclError:
		// Commands are handled entirely by internal/prec; error nodes carry
		// no further resolvable structure.
	}
}

// visitUse resolves a `use` path to a module via the project VFS, records
// the import edge, binds the module under its last path segment, and imports
// the target's public names into the value scope — tracking any name that
// shadows an existing local binding as a warning.
func (r *Resolver) visitUse(d ast.Decl) {
	segs := d.Path()
	if len(segs) == 0 || r.opts.VFS == nil {
		return
	}
	names := make([]string, len(segs))
	for i, s := range segs {
		names[i] = s.Text
	}
	ref := project.ModuleRef{Package: r.opts.Package, Path: strings.Join(names, "::")}
	to, ok := project.ResolveImport(r.opts.VFS, r.opts.Module, ref, d.Green.Location(), r.opts.Reporter)
	if !ok {
		return
	}
	r.valueScope.Bind(r.name(names[len(names)-1]), Symbol{Kind: SymModule, Module: to})
	for _, exp := range r.opts.Exports[to] {
		id := r.name(exp.Name)
		scope := r.valueScope
		if exp.Symbol.Kind == SymConstructor {
			r.ctors.Declare(id, CtorInfo{Decl: exp.Symbol, Arity: exp.Symbol.Arity})
		}
		if _, had := scope.LocalLookup(id); had {
			r.reportWarningAt(d.Green, diag.ResShadowedImport,
				"import of '"+exp.Name+"' shadows an existing name in this file")
		}
		scope.Bind(id, exp.Symbol)
	}
}

func (r *Resolver) reportWarningAt(g *ast.GreenTree, code diag.Code, msg string) {
	if g == nil {
		return
	}
	diag.ReportWarning(r.opts.Reporter, code, g.Location(), msg).Emit()
}

func (r *Resolver) resolveTypeAlias(d ast.Decl) {
	outer := r.typeScope
	r.typeScope = r.typeScope.Fork()
	r.bindParams(d.Params(), Type)
	r.resolveExprAt(d.Type(), Type)
	r.typeScope = outer
}

func (r *Resolver) resolveRecord(d ast.Decl) {
	outer := r.typeScope
	r.typeScope = r.typeScope.Fork()
	r.bindParams(d.Params(), Type)
	for _, f := range d.Fields() {
		r.resolveExprAt(f.Type(), Type)
	}
	r.typeScope = outer
}

func (r *Resolver) resolveEnum(d ast.Decl) {
	outer := r.typeScope
	r.typeScope = r.typeScope.Fork()
	r.bindParams(d.Params(), Type)
	for _, v := range d.Variants() {
		for _, p := range v.Params() {
			r.resolveExprAt(p.Type(), Type)
		}
	}
	r.typeScope = outer
}

func (r *Resolver) resolveTraitOrClass(d ast.Decl) {
	outerType, outerValue := r.typeScope, r.valueScope
	r.typeScope = r.typeScope.Fork()
	r.bindParams(d.Params(), Type)
	r.inMethod = true
	for _, m := range d.Members() {
		r.valueScope = outerValue.Fork()
		r.resolveDecl(m)
	}
	r.inMethod = false
	r.typeScope, r.valueScope = outerType, outerValue
}

func (r *Resolver) resolveInstance(d ast.Decl) {
	outerType, outerValue := r.typeScope, r.valueScope
	r.resolveExprAt(d.Target(), Type)
	r.inMethod = true
	for _, m := range d.Members() {
		r.valueScope = outerValue.Fork()
		r.resolveDecl(m)
	}
	r.inMethod = false
	r.typeScope, r.valueScope = outerType, outerValue
}

func (r *Resolver) resolveSignature(d ast.Decl) {
	outer := r.typeScope
	r.typeScope = r.typeScope.Fork()
	r.resolveExprAt(d.Type(), Type)
	r.typeScope = outer
}

func (r *Resolver) resolveAssign(d ast.Decl) {
	outerValue := r.valueScope
	r.valueScope = r.valueScope.Fork()
	r.bindParams(d.Params(), Value)
	r.resolveExprAt(d.Value(), Value)
	r.valueScope = outerValue
}

// bindParams introduces every parameter's name into the scope at level,
// reporting ResSelfOutsideMethod for a `self` parameter outside a trait,
// class, or instance member.
func (r *Resolver) bindParams(params []ast.Param, level Level) {
	scope := r.scopeAt(level)
	for _, p := range params {
		if p.Kind() == ast.ParamSelf {
			if !r.inMethod {
				r.reportAt(p.Green, diag.ResSelfOutsideMethod, "'self' used outside a method")
			}
			continue
		}
		r.resolveExprAt(p.Type(), Type)
		if nm, ok := p.Name(); ok {
			scope.Bind(r.name(nm.Text), Symbol{Kind: SymBinding, Decl: p.Green.ID})
		}
	}
}

func (r *Resolver) scopeAt(level Level) *Scope {
	if level == Type {
		return r.typeScope
	}
	return r.valueScope
}
