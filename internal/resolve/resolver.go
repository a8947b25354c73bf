package resolve

import (
	"ase/internal/ast"
	"ase/internal/cst"
	"ase/internal/diag"
	"ase/internal/intern"
	"ase/internal/project"
)

// Export is one public name a module offers to its importers, built by
// whatever owns cross-file compilation (the query engine's module_exports
// query, once wired) and handed to a Resolver for the files that import it.
type Export struct {
	Name   string
	Symbol Symbol
}

// Options configures one file's resolve pass.
type Options struct {
	Reporter diag.Reporter
	Interner *intern.Interner
	VFS      *project.VFS
	// Module is this file's owning module, used to record import edges and
	// to reject a self-import.
	Module project.ModuleID
	// Package scopes the bare module paths a `use` directive names.
	Package project.PackageID
	// Exports supplies the public names of modules already resolved
	// elsewhere in the project, keyed by ModuleID.
	Exports map[project.ModuleID][]Export
}

// Resolver walks one file's AST, binding every name use and annotating the
// underlying CST node with the Resolution it found. It keeps two scope
// chains — Value and Type; a pi/lam/case/block construct forks and restores
// the chain of the level it is resolved at, and trait/class/instance
// declarations fork both.
type Resolver struct {
	opts  Options
	ctors *ConstructorTable

	valueScope *Scope
	typeScope  *Scope

	annotations map[cst.NodeID]Resolution
	// inMethod tracks whether `self` is currently in scope (inside a
	// trait/class/instance member's parameter list), for ResSelfOutsideMethod.
	inMethod bool
}

// New creates a Resolver with fresh root scopes for the given options.
func New(opts Options) *Resolver {
	res := &Resolver{
		opts:        opts,
		ctors:       NewConstructorTable(),
		valueScope:  NewRootScope(Value),
		typeScope:   NewRootScope(Type),
		annotations: make(map[cst.NodeID]Resolution),
	}
	res.bindPrelude()
	return res
}

// builtinPreludeNames lists the primitive type names every file sees without
// a `use`, mirroring the teacher's internal/symbols/prelude.go builtin set.
var builtinPreludeNames = []string{"Int", "UInt", "Bool", "Float", "String", "Nothing"}

func (r *Resolver) bindPrelude() {
	for _, nm := range builtinPreludeNames {
		r.typeScope.Bind(r.name(nm), Symbol{Kind: SymBinding})
	}
}

// Resolution looks up the annotation attached to a resolved node, if any.
func (r *Resolver) Resolution(id cst.NodeID) (Resolution, bool) {
	res, ok := r.annotations[id]
	return res, ok
}

func (r *Resolver) annotate(g *ast.GreenTree, res Resolution) {
	if g == nil {
		return
	}
	r.annotations[g.ID] = res
}

func (r *Resolver) name(s string) intern.NameID {
	if r.opts.Interner == nil {
		r.opts.Interner = intern.New()
	}
	return r.opts.Interner.InternName(s)
}

// Resolve runs the full two-pass protocol over file: first declaring every
// top-level binding and enum constructor, then walking every body.
func (r *Resolver) Resolve(file ast.File) {
	decls := file.Decls()
	r.declareTopLevel(decls)
	for _, d := range decls {
		r.resolveDecl(d)
	}
}

// declareTopLevel registers every top-level name before any body is walked,
// so mutually-recursive definitions and forward references resolve. A
// signature and its matching assign share a name by design (the HIR lowering
// pass fuses them into one binding group) so only a second signature or a
// second assign for the same name counts as a duplicate.
func (r *Resolver) declareTopLevel(decls []ast.Decl) {
	seenSignature := make(map[intern.NameID]bool)
	seenAssign := make(map[intern.NameID]bool)
	for _, d := range decls {
		switch d.Kind() {
		case ast.DeclSignature, ast.DeclAssign:
			nm, ok := d.Name()
			if !ok {
				continue
			}
			id := r.name(nm.Text)
			seen := seenSignature
			if d.Kind() == ast.DeclAssign {
				seen = seenAssign
			}
			if seen[id] {
				r.reportAt(d.Green, diag.ResDuplicateSymbol, "'"+nm.Text+"' is already declared in this file")
			}
			seen[id] = true
			if _, had := r.valueScope.LocalLookup(id); !had {
				r.valueScope.Bind(id, Symbol{Kind: SymBinding, Decl: d.Green.ID})
			}
		case ast.DeclType, ast.DeclRecord, ast.DeclEnum, ast.DeclTrait, ast.DeclClass:
			if nm, ok := d.Name(); ok {
				r.typeScope.Bind(r.name(nm.Text), Symbol{Kind: SymBinding, Decl: d.Green.ID})
			}
			if d.Kind() == ast.DeclEnum {
				r.declareVariants(d)
			}
		}
	}
}

// declareVariants populates the constructor table from one enum's variants.
func (r *Resolver) declareVariants(enumDecl ast.Decl) {
	for _, v := range enumDecl.Variants() {
		nm, ok := v.Name()
		if !ok {
			continue
		}
		arity := 0
		if v.Kind() == ast.VariantCtorStyle {
			arity = len(v.Params())
		}
		r.ctors.Declare(r.name(nm.Text), CtorInfo{
			Decl:  Symbol{Kind: SymConstructor, Decl: enumDecl.Green.ID, Arity: arity},
			Arity: arity,
		})
	}
}

func (r *Resolver) reportAt(g *ast.GreenTree, code diag.Code, msg string) {
	if g == nil {
		return
	}
	diag.ReportError(r.opts.Reporter, code, g.Location(), msg).Emit()
}
