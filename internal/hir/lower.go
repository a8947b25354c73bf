package hir

import (
	"strings"

	"ase/internal/ast"
	"ase/internal/diag"
	"ase/internal/intern"
)

// Lowerer holds the state shared across one file's lowering pass: the
// interner whose tables back every hash-consed ID, the module accumulating
// top-levels and span provenance, and the diagnostic reporter every
// unsupported-shape rule reports through before emitting an Error node.
type Lowerer struct {
	in       *intern.Interner
	reporter diag.Reporter
	module   *Module
}

// NewLowerer creates a Lowerer over a shared interner.
func NewLowerer(in *intern.Interner, reporter diag.Reporter) *Lowerer {
	return &Lowerer{in: in, reporter: reporter, module: newModule()}
}

// LowerFile lowers every top-level declaration of file. Non-binding
// declarations are emitted first, in source order; then every
// signature/assign sharing a name, adjacent or not, is fused into one
// TagTopBindingGroup, emitted in order of the name's first appearance.
func (l *Lowerer) LowerFile(file ast.File) *Module {
	decls := file.Decls()
	groups := l.fuseBindingGroups(decls)
	for _, d := range decls {
		switch d.Kind() {
		case ast.DeclSignature, ast.DeclAssign:
			// Handled by fuseBindingGroups below; emitted once per name.
		default:
			l.lowerTopLevel(d)
		}
	}
	for _, g := range groups {
		l.emitBindingGroup(g)
	}
	return l.module
}

// bindingGroup accumulates one name's fused signature (if any) and its
// equations (each assign contributes one declaration/clause).
type bindingGroup struct {
	name      string
	first     ast.Decl // the declaring decl, for span/diagnostics
	signature ast.Decl
	hasSig    bool
	assigns   []ast.Decl
}

// fuseBindingGroups walks decls in source order and groups every
// DeclSignature/DeclAssign by name. A second signature for an
// already-signed name is diagnosed as LowerDuplicateSignature rather than
// silently overwriting the first.
func (l *Lowerer) fuseBindingGroups(decls []ast.Decl) []*bindingGroup {
	order := make([]*bindingGroup, 0, len(decls))
	byName := make(map[string]*bindingGroup)
	for _, d := range decls {
		var name string
		switch d.Kind() {
		case ast.DeclSignature, ast.DeclAssign:
			nm, ok := d.Name()
			if !ok {
				continue
			}
			name = nm.Text
		default:
			continue
		}
		g, ok := byName[name]
		if !ok {
			g = &bindingGroup{name: name, first: d}
			byName[name] = g
			order = append(order, g)
		}
		switch d.Kind() {
		case ast.DeclSignature:
			if g.hasSig {
				l.reportAt(d.Green, diag.LowerDuplicateSignature,
					"'"+name+"' already has a signature in this file")
				continue
			}
			g.signature = d
			g.hasSig = true
		case ast.DeclAssign:
			g.assigns = append(g.assigns, d)
		}
	}
	return order
}

func (l *Lowerer) emitBindingGroup(g *bindingGroup) {
	nameID := l.in.InternName(g.name)

	var paramsID intern.ID
	var retTypeID intern.ID
	if g.hasSig {
		paramsID = l.internPatArgs(l.lowerParamsAsPatterns(g.signature.Params()))
		retTypeID = intern.ID(l.lowerType(g.signature.Type()))
	}

	declIDs := make([]intern.ID, 0, len(g.assigns))
	for _, a := range g.assigns {
		ps := l.internPatArgs(l.lowerParamsAsPatterns(a.Params()))
		body := l.lowerExpr(a.Value())
		declID := l.in.TopLevels.Intern(key(TagTopDeclaration, ps, intern.ID(body), 0, 0))
		l.module.TopLevelSpans[intern.TopLevelID(declID)] = a.Green.Location()
		declIDs = append(declIDs, declID)
	}
	declsArgs := intern.ID(l.in.InternArgs(declIDs))

	id := l.in.TopLevels.Intern(key(TagTopBindingGroup, nameID, paramsID, retTypeID, declsArgs))
	l.module.TopLevelSpans[intern.TopLevelID(id)] = g.first.Green.Location()
	l.module.TopLevels = append(l.module.TopLevels, intern.TopLevelID(id))
}

// lowerTopLevel dispatches the non-binding top-level declaration shapes.
func (l *Lowerer) lowerTopLevel(d ast.Decl) {
	var id intern.TopLevelID
	switch d.Kind() {
	case ast.DeclUse:
		// Import resolution belongs to internal/resolve and internal/project;
		// nothing here needs a HIR representation of a `use` directive.
		return
	case ast.DeclType:
		id = l.lowerTypeAlias(d)
	case ast.DeclRecord:
		id = l.lowerRecord(d)
	case ast.DeclEnum:
		id = l.lowerEnum(d)
	case ast.DeclTrait:
		id = l.lowerTraitOrClass(d, TagTopTrait)
	case ast.DeclClass:
		id = l.lowerTraitOrClass(d, TagTopClass)
	case ast.DeclInstance:
		id = l.lowerInstance(d)
	case ast.DeclCommand:
		id = l.lowerCommand(d)
	default:
		l.reportAt(d.Green, diag.LowerUnsupportedDecl, "this declaration has no HIR lowering")
		return
	}
	if id != 0 {
		l.module.TopLevels = append(l.module.TopLevels, id)
	}
}

func (l *Lowerer) reportAt(g *ast.GreenTree, code diag.Code, msg string) {
	if g == nil {
		return
	}
	diag.ReportError(l.reporter, code, g.Location(), msg).Emit()
}

// internPatArgs hash-conses a parameter-pattern list through the shared
// ArgsID side table, returning it as a plain intern.ID so it composes into
// a Key's fixed operand slots.
func (l *Lowerer) internPatArgs(ids []intern.PatternID) intern.ID {
	raw := make([]intern.ID, len(ids))
	for i, p := range ids {
		raw[i] = intern.ID(p)
	}
	return intern.ID(l.in.InternArgs(raw))
}

func (l *Lowerer) internExprArgs(ids []intern.ExprID) intern.ID {
	raw := make([]intern.ID, len(ids))
	for i, e := range ids {
		raw[i] = intern.ID(e)
	}
	return intern.ID(l.in.InternArgs(raw))
}

func (l *Lowerer) internTopLevelArgs(ids []intern.TopLevelID) intern.ID {
	raw := make([]intern.ID, len(ids))
	for i, t := range ids {
		raw[i] = intern.ID(t)
	}
	return intern.ID(l.in.InternArgs(raw))
}

// joinPath joins dotted/colon path segments the way QualifiedPath and use
// declarations spell a module path, for interning as one NameID.
func joinPath(segs []string) string { return strings.Join(segs, "::") }
