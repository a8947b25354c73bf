package hir

import (
	"ase/internal/ast"
	"ase/internal/diag"
	"ase/internal/intern"
)

// lowerTypeAlias lowers `type Name params = expr;` to a binding group that
// carries the alias parameters and holds the aliased type in its return-type
// slot (C), plus a single declaration with the same parameter patterns and
// no body (B = 0) — there is no dedicated HIR top-level shape for an alias,
// since at this stage it is just a name for a type expression.
func (l *Lowerer) lowerTypeAlias(d ast.Decl) intern.TopLevelID {
	nm, ok := d.Name()
	if !ok {
		return 0
	}
	nameID := intern.ID(l.in.InternName(nm.Text))
	params := l.lowerParamsAsPatterns(d.Params())
	bodyType := l.lowerType(d.Type())
	declID := l.in.TopLevels.Intern(key(TagTopDeclaration, l.internPatArgs(params), 0, 0, 0))
	l.module.TopLevelSpans[intern.TopLevelID(declID)] = d.Green.Location()
	id := l.in.TopLevels.Intern(key(TagTopBindingGroup, nameID, l.internPatArgs(params), intern.ID(bodyType),
		l.internTopLevelArgs([]intern.TopLevelID{intern.TopLevelID(declID)})))
	l.module.TopLevelSpans[intern.TopLevelID(id)] = d.Green.Location()
	return intern.TopLevelID(id)
}

func (l *Lowerer) lowerRecord(d ast.Decl) intern.TopLevelID {
	nm, ok := d.Name()
	if !ok {
		return 0
	}
	nameID := intern.ID(l.in.InternName(nm.Text))
	params := l.lowerParamsAsPatterns(d.Params())

	fields := d.Fields()
	raw := make([]intern.ID, 0, len(fields)*2)
	for _, f := range fields {
		fnm, ok := f.Name()
		if !ok {
			continue
		}
		ft := f.Type()
		if ft.Get().IsError() {
			l.reportAt(f.Green, diag.LowerInferredTypeRequired, "field '"+fnm.Text+"' requires an explicit type")
		}
		raw = append(raw, intern.ID(l.in.InternName(fnm.Text)), intern.ID(l.lowerType(ft)))
	}

	id := l.in.TopLevels.Intern(key(TagTopStruct, nameID, l.internPatArgs(params), intern.ID(l.in.InternArgs(raw)), 0))
	l.module.TopLevelSpans[intern.TopLevelID(id)] = d.Green.Location()
	return intern.TopLevelID(id)
}

// lowerEnum lowers each variant per the rule: a type-style variant (no
// parameter list) becomes a nullary constructor of the enum; a ctor-style
// variant of parameters p₁…pₙ lowers to the right-associated pi type
// p₁ → … → pₙ → EnumName.
func (l *Lowerer) lowerEnum(d ast.Decl) intern.TopLevelID {
	nm, ok := d.Name()
	if !ok {
		return 0
	}
	nameID := l.in.InternName(nm.Text)
	params := l.lowerParamsAsPatterns(d.Params())
	enumRef := intern.TypeID(l.in.Types.Intern(key(TagTypeCtorRef, intern.ID(nameID), 0, 0, 0)))

	variantIDs := make([]intern.TopLevelID, 0, len(d.Variants()))
	for _, v := range d.Variants() {
		variantIDs = append(variantIDs, l.lowerVariant(v, enumRef))
	}

	id := l.in.TopLevels.Intern(key(TagTopEnum, intern.ID(nameID), l.internPatArgs(params),
		l.internTopLevelArgs(variantIDs), 0))
	l.module.TopLevelSpans[intern.TopLevelID(id)] = d.Green.Location()
	return intern.TopLevelID(id)
}

func (l *Lowerer) lowerVariant(v ast.Variant, enumRef intern.TypeID) intern.TopLevelID {
	vnm, ok := v.Name()
	if !ok {
		return 0
	}
	ctorType := enumRef
	if v.Kind() == ast.VariantCtorStyle {
		params := v.Params()
		for i := len(params) - 1; i >= 0; i-- {
			p := params[i]
			pt := p.Type()
			if pt.Get().IsError() {
				l.reportAt(p.Green, diag.LowerInferredTypeRequired,
					"constructor parameter of '"+vnm.Text+"' requires an explicit type")
			}
			argType := l.lowerType(pt)
			ctorType = intern.TypeID(l.in.Types.Intern(key(TagTypeArrow, intern.ID(argType), intern.ID(ctorType), 0, 0)))
		}
	}
	id := l.in.TopLevels.Intern(key(TagTopVariant, intern.ID(l.in.InternName(vnm.Text)), intern.ID(ctorType), 0, 0))
	l.module.TopLevelSpans[intern.TopLevelID(id)] = v.Green.Location()
	return intern.TopLevelID(id)
}

func (l *Lowerer) lowerTraitOrClass(d ast.Decl, tag Tag) intern.TopLevelID {
	nm, ok := d.Name()
	if !ok {
		return 0
	}
	nameID := l.in.InternName(nm.Text)
	params := l.lowerParamsAsPatterns(d.Params())
	members := l.lowerMembers(d.Members())
	id := l.in.TopLevels.Intern(key(tag, intern.ID(nameID), l.internPatArgs(params), l.internTopLevelArgs(members), 0))
	l.module.TopLevelSpans[intern.TopLevelID(id)] = d.Green.Location()
	return intern.TopLevelID(id)
}

func (l *Lowerer) lowerInstance(d ast.Decl) intern.TopLevelID {
	target := l.lowerType(d.Target())
	members := l.lowerMembers(d.Members())
	id := l.in.TopLevels.Intern(key(TagTopInstance, intern.ID(target), l.internTopLevelArgs(members), 0, 0))
	l.module.TopLevelSpans[intern.TopLevelID(id)] = d.Green.Location()
	return intern.TopLevelID(id)
}

// lowerMembers fuses a trait/class/instance body's signature/assign members
// into binding groups the same way the top-level pass does, so a method
// with a signature and several pattern-matched equations lowers uniformly.
func (l *Lowerer) lowerMembers(members []ast.Decl) []intern.TopLevelID {
	groups := l.fuseBindingGroups(members)
	out := make([]intern.TopLevelID, 0, len(groups)+len(members))
	for _, m := range members {
		switch m.Kind() {
		case ast.DeclSignature, ast.DeclAssign:
			continue
		default:
			before := len(l.module.TopLevels)
			l.lowerTopLevel(m)
			if len(l.module.TopLevels) > before {
				out = append(out, l.module.TopLevels[len(l.module.TopLevels)-1])
				l.module.TopLevels = l.module.TopLevels[:before]
			}
		}
	}
	for _, g := range groups {
		out = append(out, l.emitBindingGroupID(g))
	}
	return out
}

// emitBindingGroupID is emitBindingGroup's non-top-level-appending twin, for
// binding groups that belong inside a trait/class/instance member list
// rather than directly in the file's top-level sequence.
func (l *Lowerer) emitBindingGroupID(g *bindingGroup) intern.TopLevelID {
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
	return intern.TopLevelID(id)
}

// lowerCommand records a `#infixl`/`#infixr` pragma as an attribute-carrying
// top-level, so HIR has some representation of it even though the
// precedence table itself is already applied upstream by internal/prec.
func (l *Lowerer) lowerCommand(d ast.Decl) intern.TopLevelID {
	cmd, ok := d.Command()
	if !ok {
		l.reportAt(d.Green, diag.LowerUnsupportedDecl, "malformed command")
		return 0
	}
	args := d.Args()
	var opText string
	var order int64
	if len(args) > 0 {
		toks := args[0].Tokens()
		if len(toks) > 0 {
			opText = toks[0].Text
		}
	}
	if len(args) > 1 {
		toks := args[1].Tokens()
		if len(toks) > 0 {
			order = parseSmallNat(toks[0].Text)
		}
	}
	tag := TagAttrInfixL
	if cmd.Text == "infixr" {
		tag = TagAttrInfixR
	}
	attrID := l.in.Attributes.Intern(key(tag, intern.ID(l.in.InternName(opText)), intern.ID(order), 0, 0))
	id := l.in.TopLevels.Intern(key(TagTopCommand, intern.ID(attrID), 0, 0, 0))
	l.module.TopLevelSpans[intern.TopLevelID(id)] = d.Green.Location()
	return intern.TopLevelID(id)
}

func parseSmallNat(s string) int64 {
	var n int64
	for _, r := range s {
		if r < '0' || r > '9' {
			break
		}
		n = n*10 + int64(r-'0')
	}
	return n
}
