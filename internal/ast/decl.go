package ast

import (
	"ase/internal/cst"
	"ase/internal/token"
)

// DeclKind is the algebraic tag for the Decl variant a Green tree node
// projects to.
type DeclKind uint8

const (
	DeclError DeclKind = iota
	DeclUse
	DeclType
	DeclRecord
	DeclEnum
	DeclTrait
	DeclClass
	DeclInstance
	DeclSignature
	DeclAssign
	DeclCommand
)

var declKindByCST = map[cst.Kind]DeclKind{
	cst.KindDeclError:     DeclError,
	cst.KindDeclUse:       DeclUse,
	cst.KindDeclType:      DeclType,
	cst.KindDeclRecord:    DeclRecord,
	cst.KindDeclEnum:      DeclEnum,
	cst.KindDeclTrait:     DeclTrait,
	cst.KindDeclClass:     DeclClass,
	cst.KindDeclInstance:  DeclInstance,
	cst.KindDeclSignature: DeclSignature,
	cst.KindDeclAssign:    DeclAssign,
	cst.KindDeclCommand:   DeclCommand,
}

// Decl is a typed view over one top-level (or class/instance-nested)
// declaration.
type Decl struct {
	Green *GreenTree
}

// NewDecl wraps a GreenTree as a Decl.
func NewDecl(g *GreenTree) Decl { return Decl{Green: g} }

// Kind classifies which Decl variant this view projects to.
func (d Decl) Kind() DeclKind {
	if d.Green == nil {
		return DeclError
	}
	if k, ok := declKindByCST[d.Green.Kind()]; ok {
		return k
	}
	return DeclError
}

// Name returns the declared identifier: the binding name of a signature,
// assign, type, record, enum, trait, class binder, or the first segment of
// a use path.
func (d Decl) Name() (token.Token, bool) { return d.Green.namedToken(cst.FieldName) }

// Path returns the full dotted module path of a DeclUse.
func (d Decl) Path() []token.Token {
	n := d.Green.node()
	if n == nil {
		return nil
	}
	var out []token.Token
	for _, c := range n.Children {
		if c.Kind == cst.ChildToken && c.Field == cst.FieldPath {
			out = append(out, c.Token)
		}
	}
	return out
}

// Params returns the declared parameters of a type/record/enum/trait/class
// binder, a function signature, or a constructor-style variant.
func (d Decl) Params() []Param {
	kids := d.Green.childrenOfKind(cst.KindParamExplicit)
	kids = append(kids, d.Green.childrenOfKind(cst.KindParamImplicit)...)
	kids = append(kids, d.Green.childrenOfKind(cst.KindParamSelf)...)
	out := make([]Param, len(kids))
	for i, k := range kids {
		out[i] = NewParam(k)
	}
	return out
}

// Type returns the declared type of a DeclSignature, or the aliased type
// expression of a DeclType.
func (d Decl) Type() Cursor[Expr] {
	return NewCursor(func() Expr { return NewExpr(d.Green.namedChild(cst.FieldType)) })
}

// Value returns the right-hand side of a DeclAssign.
func (d Decl) Value() Cursor[Expr] {
	return NewCursor(func() Expr { return NewExpr(d.Green.namedChild(cst.FieldValue)) })
}

// Fields returns the declared fields of a DeclRecord, in source order.
func (d Decl) Fields() []Field {
	kids := d.Green.childrenOfKind(cst.KindField)
	out := make([]Field, len(kids))
	for i, k := range kids {
		out[i] = Field{Green: k}
	}
	return out
}

// Variants returns the declared variants of a DeclEnum, in source order.
func (d Decl) Variants() []Variant {
	kids := d.Green.childrenOfKind(cst.KindVariantType)
	kids = append(kids, d.Green.childrenOfKind(cst.KindVariantCtor)...)
	out := make([]Variant, len(kids))
	for i, k := range kids {
		out[i] = Variant{Green: k}
	}
	return out
}

// Members returns the nested signature/assign declarations of a DeclTrait,
// DeclClass, or DeclInstance body.
func (d Decl) Members() []Decl {
	n := d.Green.node()
	if n == nil {
		return nil
	}
	var out []Decl
	for _, c := range n.Children {
		if c.Kind != cst.ChildNode || c.Field != cst.FieldBody {
			continue
		}
		out = append(out, NewDecl(NewGreenTree(d.Green.Tree, c.Node)))
	}
	return out
}

// Target returns the trait or type a DeclInstance implements.
func (d Decl) Target() Cursor[Expr] {
	return NewCursor(func() Expr { return NewExpr(d.Green.namedChild(cst.FieldTarget)) })
}

// Command returns the `#`-prefixed directive name of a DeclCommand (e.g.
// "infixl", "infixr") and whether this node actually is one.
func (d Decl) Command() (token.Token, bool) { return d.Green.namedToken(cst.FieldCommand) }

// Args returns a DeclCommand's argument list tokens/nodes in source order.
func (d Decl) Args() []*GreenTree {
	return d.Green.childrenOfKind(cst.KindCommandArg)
}

// Field is one member of a record declaration: a name with an explicit type.
type Field struct {
	Green *GreenTree
}

// Name returns the field's binder token.
func (f Field) Name() (token.Token, bool) { return f.Green.namedToken(cst.FieldName) }

// Type returns the field's declared type. Record fields require an
// explicit annotation; absence is a lowering-time error.
func (f Field) Type() Cursor[Expr] {
	return NewCursor(func() Expr { return NewExpr(f.Green.namedChild(cst.FieldType)) })
}

// VariantKind distinguishes an enum variant written as a bare type-style
// alternative (no parameters, e.g. `None`) from one written constructor
// style (`Some(a)`), which lowers to a right-associated pi type.
type VariantKind uint8

const (
	VariantTypeStyle VariantKind = iota
	VariantCtorStyle
)

// Variant is one alternative of an enum declaration.
type Variant struct {
	Green *GreenTree
}

// Kind reports whether this variant was written type-style or ctor-style.
func (v Variant) Kind() VariantKind {
	if v.Green.Kind() == cst.KindVariantCtor {
		return VariantCtorStyle
	}
	return VariantTypeStyle
}

// Name returns the variant's constructor identifier.
func (v Variant) Name() (token.Token, bool) { return v.Green.namedToken(cst.FieldName) }

// Params returns the ctor-style variant's positional parameter types.
func (v Variant) Params() []Param {
	kids := v.Green.childrenOfKind(cst.KindParamExplicit)
	out := make([]Param, len(kids))
	for i, k := range kids {
		out[i] = NewParam(k)
	}
	return out
}
