package hir

import (
	"fmt"
	"io"

	"ase/internal/intern"
)

// Printer renders interned HIR back to a parenthesized textual form, used by
// the CLI's query-inspection surface and by tests asserting lowering shape.
// Unlike the teacher's field-heavy dump, every node here is resolved purely
// from its Key through the shared Interner — there is no separate tree to
// walk, since the HIR itself is nothing but interned Keys.
type Printer struct {
	w  io.Writer
	in *intern.Interner
}

// NewPrinter creates a Printer over a shared interner.
func NewPrinter(w io.Writer, in *intern.Interner) *Printer {
	return &Printer{w: w, in: in}
}

// Dump writes every top-level of m to w as one s-expression per line.
func Dump(w io.Writer, m *Module, in *intern.Interner) {
	p := NewPrinter(w, in)
	for _, id := range m.TopLevels {
		p.PrintTopLevel(id)
		fmt.Fprintln(p.w)
	}
}

func (p *Printer) name(id intern.ID) string {
	s, ok := p.in.LookupName(intern.NameID(id))
	if !ok {
		return "?"
	}
	return s
}

func (p *Printer) args(id intern.ID) []intern.ID {
	ids, ok := p.in.LookupArgs(intern.ArgsID(id))
	if !ok {
		return nil
	}
	return ids
}

// PrintTopLevel renders one top-level shape and every top-level it owns.
func (p *Printer) PrintTopLevel(id intern.TopLevelID) {
	k, ok := p.in.TopLevels.Lookup(intern.ID(id))
	if !ok {
		fmt.Fprint(p.w, "<missing-top>")
		return
	}
	switch k.Tag {
	case TagTopError:
		fmt.Fprint(p.w, "(error)")
	case TagTopBindingGroup:
		fmt.Fprintf(p.w, "(binding-group %s", p.name(k.A))
		if k.C != 0 {
			fmt.Fprint(p.w, " : ")
			p.PrintType(intern.TypeID(k.C))
		}
		for _, declID := range p.args(k.D) {
			fmt.Fprint(p.w, " ")
			p.PrintTopLevel(intern.TopLevelID(declID))
		}
		fmt.Fprint(p.w, ")")
	case TagTopDeclaration:
		fmt.Fprint(p.w, "(clause (")
		for i, pid := range p.args(k.A) {
			if i > 0 {
				fmt.Fprint(p.w, " ")
			}
			p.PrintPattern(intern.PatternID(pid))
		}
		fmt.Fprint(p.w, ") ")
		p.PrintExpr(intern.ExprID(k.B))
		fmt.Fprint(p.w, ")")
	case TagTopStruct:
		fmt.Fprintf(p.w, "(struct %s", p.name(k.A))
		fields := p.args(k.C)
		for i := 0; i+1 < len(fields); i += 2 {
			fmt.Fprintf(p.w, " (%s ", p.name(fields[i]))
			p.PrintType(intern.TypeID(fields[i+1]))
			fmt.Fprint(p.w, ")")
		}
		fmt.Fprint(p.w, ")")
	case TagTopEnum:
		fmt.Fprintf(p.w, "(enum %s", p.name(k.A))
		for _, vid := range p.args(k.C) {
			fmt.Fprint(p.w, " ")
			p.PrintTopLevel(intern.TopLevelID(vid))
		}
		fmt.Fprint(p.w, ")")
	case TagTopVariant:
		fmt.Fprintf(p.w, "(variant %s ", p.name(k.A))
		p.PrintType(intern.TypeID(k.B))
		fmt.Fprint(p.w, ")")
	case TagTopTrait, TagTopClass:
		kw := "trait"
		if k.Tag == TagTopClass {
			kw = "class"
		}
		fmt.Fprintf(p.w, "(%s %s", kw, p.name(k.A))
		for _, mid := range p.args(k.C) {
			fmt.Fprint(p.w, " ")
			p.PrintTopLevel(intern.TopLevelID(mid))
		}
		fmt.Fprint(p.w, ")")
	case TagTopInstance:
		fmt.Fprint(p.w, "(instance ")
		p.PrintType(intern.TypeID(k.A))
		for _, mid := range p.args(k.B) {
			fmt.Fprint(p.w, " ")
			p.PrintTopLevel(intern.TopLevelID(mid))
		}
		fmt.Fprint(p.w, ")")
	case TagTopCommand:
		fmt.Fprint(p.w, "(command ")
		p.printAttribute(intern.AttributeID(k.A))
		fmt.Fprint(p.w, ")")
	default:
		fmt.Fprint(p.w, "(unknown-top)")
	}
}

func (p *Printer) printAttribute(id intern.AttributeID) {
	k, ok := p.in.Attributes.Lookup(intern.ID(id))
	if !ok {
		fmt.Fprint(p.w, "<missing-attr>")
		return
	}
	switch k.Tag {
	case TagAttrInfixL:
		fmt.Fprintf(p.w, "(infixl %s %d)", p.name(k.A), k.B)
	case TagAttrInfixR:
		fmt.Fprintf(p.w, "(infixr %s %d)", p.name(k.A), k.B)
	default:
		fmt.Fprint(p.w, "(error)")
	}
}

// PrintType renders a type-position node.
func (p *Printer) PrintType(id intern.TypeID) {
	k, ok := p.in.Types.Lookup(intern.ID(id))
	if !ok {
		fmt.Fprint(p.w, "<missing-type>")
		return
	}
	switch k.Tag {
	case TagTypeError:
		fmt.Fprint(p.w, "(error)")
	case TagTypeUnit:
		fmt.Fprint(p.w, "Unit")
	case TagTypeThis:
		fmt.Fprint(p.w, "This")
	case TagTypePi:
		fmt.Fprint(p.w, "(pi (")
		for i, pid := range p.args(k.A) {
			if i > 0 {
				fmt.Fprint(p.w, " ")
			}
			p.PrintPattern(intern.PatternID(pid))
		}
		fmt.Fprint(p.w, ") ")
		p.PrintType(intern.TypeID(k.B))
		fmt.Fprint(p.w, ")")
	case TagTypeApp:
		fmt.Fprint(p.w, "(app ")
		p.PrintType(intern.TypeID(k.A))
		fmt.Fprint(p.w, " ")
		p.PrintType(intern.TypeID(k.B))
		fmt.Fprint(p.w, ")")
	case TagTypeArrow:
		fmt.Fprint(p.w, "(-> ")
		p.PrintType(intern.TypeID(k.A))
		fmt.Fprint(p.w, " ")
		p.PrintType(intern.TypeID(k.B))
		fmt.Fprint(p.w, ")")
	case TagTypeCtorRef:
		fmt.Fprint(p.w, p.name(k.A))
	case TagTypeVarRef:
		fmt.Fprint(p.w, p.name(k.A))
	default:
		fmt.Fprint(p.w, "(unknown-type)")
	}
}

// PrintExpr renders a value-position node.
func (p *Printer) PrintExpr(id intern.ExprID) {
	k, ok := p.in.Exprs.Lookup(intern.ID(id))
	if !ok {
		fmt.Fprint(p.w, "<missing-expr>")
		return
	}
	switch k.Tag {
	case TagExprError:
		fmt.Fprint(p.w, "(error)")
	case TagExprVar:
		fmt.Fprint(p.w, p.name(k.A))
	case TagExprQualifiedPath:
		fmt.Fprint(p.w, p.name(k.A))
	case TagExprCall:
		fmt.Fprint(p.w, "(call ")
		p.PrintExpr(intern.ExprID(k.A))
		fmt.Fprint(p.w, " ")
		p.PrintExpr(intern.ExprID(k.B))
		fmt.Fprint(p.w, ")")
	case TagExprAdd, TagExprSub, TagExprMul, TagExprDiv:
		sym := map[uint16]string{TagExprAdd: "+", TagExprSub: "-", TagExprMul: "*", TagExprDiv: "/"}[k.Tag]
		fmt.Fprintf(p.w, "(%s ", sym)
		p.PrintExpr(intern.ExprID(k.A))
		fmt.Fprint(p.w, " ")
		p.PrintExpr(intern.ExprID(k.B))
		fmt.Fprint(p.w, ")")
	case TagExprLitInt:
		fmt.Fprintf(p.w, "%si", p.name(k.A))
	case TagExprLitUint:
		fmt.Fprintf(p.w, "%su", p.name(k.A))
	case TagExprLitFloat:
		fmt.Fprintf(p.w, "%sf", p.name(k.A))
	case TagExprLitBool:
		if k.A == 1 {
			fmt.Fprint(p.w, "true")
		} else {
			fmt.Fprint(p.w, "false")
		}
	case TagExprLitString:
		fmt.Fprintf(p.w, "%q", p.name(k.A))
	case TagExprLitNothing:
		fmt.Fprint(p.w, "nothing")
	case TagExprSeq:
		fmt.Fprint(p.w, "(seq")
		for _, eid := range p.args(k.A) {
			fmt.Fprint(p.w, " ")
			p.PrintExpr(intern.ExprID(eid))
		}
		fmt.Fprint(p.w, ")")
	case TagExprLam:
		fmt.Fprint(p.w, "(lam (")
		for i, pid := range p.args(k.A) {
			if i > 0 {
				fmt.Fprint(p.w, " ")
			}
			p.PrintPattern(intern.PatternID(pid))
		}
		fmt.Fprint(p.w, ") ")
		p.PrintExpr(intern.ExprID(k.B))
		fmt.Fprint(p.w, ")")
	case TagExprLet:
		fmt.Fprint(p.w, "(let ")
		p.PrintPattern(intern.PatternID(k.A))
		fmt.Fprint(p.w, " ")
		p.PrintExpr(intern.ExprID(k.B))
		fmt.Fprint(p.w, " ")
		p.PrintExpr(intern.ExprID(k.C))
		fmt.Fprint(p.w, ")")
	case TagExprMatch:
		fmt.Fprint(p.w, "(match ")
		p.PrintExpr(intern.ExprID(k.A))
		arms := p.args(k.B)
		for i := 0; i+1 < len(arms); i += 2 {
			fmt.Fprint(p.w, " (")
			p.PrintPattern(intern.PatternID(arms[i]))
			fmt.Fprint(p.w, " ")
			p.PrintExpr(intern.ExprID(arms[i+1]))
			fmt.Fprint(p.w, ")")
		}
		fmt.Fprint(p.w, ")")
	case TagExprBlock:
		fmt.Fprint(p.w, "(block")
		for _, sid := range p.args(k.A) {
			fmt.Fprint(p.w, " ")
			p.printStmt(intern.StmtID(sid))
		}
		fmt.Fprint(p.w, " ")
		p.PrintExpr(intern.ExprID(k.B))
		fmt.Fprint(p.w, ")")
	default:
		fmt.Fprint(p.w, "(unknown-expr)")
	}
}

func (p *Printer) printStmt(id intern.StmtID) {
	k, ok := p.in.Stmts.Lookup(intern.ID(id))
	if !ok {
		fmt.Fprint(p.w, "<missing-stmt>")
		return
	}
	switch k.Tag {
	case TagStmtExpr:
		p.PrintExpr(intern.ExprID(k.A))
	case TagStmtLet:
		fmt.Fprint(p.w, "(let! ")
		p.PrintPattern(intern.PatternID(k.A))
		fmt.Fprint(p.w, " ")
		p.PrintExpr(intern.ExprID(k.B))
		fmt.Fprint(p.w, ")")
	case TagStmtAsk:
		fmt.Fprint(p.w, "(ask! ")
		p.PrintPattern(intern.PatternID(k.A))
		fmt.Fprint(p.w, " ")
		p.PrintExpr(intern.ExprID(k.B))
		fmt.Fprint(p.w, ")")
	default:
		fmt.Fprint(p.w, "(error)")
	}
}

// PrintPattern renders a pattern-position node.
func (p *Printer) PrintPattern(id intern.PatternID) {
	k, ok := p.in.Patterns.Lookup(intern.ID(id))
	if !ok {
		fmt.Fprint(p.w, "<missing-pat>")
		return
	}
	switch k.Tag {
	case TagPatError:
		fmt.Fprint(p.w, "(error)")
	case TagPatWild:
		fmt.Fprint(p.w, "_")
	case TagPatBind, TagPatBindExplicit, TagPatBindImplicit:
		fmt.Fprint(p.w, p.name(k.A))
	case TagPatThis:
		fmt.Fprint(p.w, "self")
	case TagPatLitInt:
		fmt.Fprintf(p.w, "%si", p.name(k.A))
	case TagPatLitUint:
		fmt.Fprintf(p.w, "%su", p.name(k.A))
	case TagPatLitFloat:
		fmt.Fprintf(p.w, "%sf", p.name(k.A))
	case TagPatLitBool:
		if k.A == 1 {
			fmt.Fprint(p.w, "true")
		} else {
			fmt.Fprint(p.w, "false")
		}
	case TagPatLitStr:
		fmt.Fprintf(p.w, "%q", p.name(k.A))
	case TagPatCtor:
		fmt.Fprintf(p.w, "(%s", p.name(k.A))
		for _, sid := range p.args(k.B) {
			fmt.Fprint(p.w, " ")
			p.PrintPattern(intern.PatternID(sid))
		}
		fmt.Fprint(p.w, ")")
	default:
		fmt.Fprint(p.w, "(unknown-pat)")
	}
}
