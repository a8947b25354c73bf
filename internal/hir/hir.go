// Package hir lowers a precedence-ordered AST into the interned high-level
// intermediate representation: a small set of algebraic node shapes
// (expressions, values, patterns, statements, top-levels, types, attributes)
// hash-consed through internal/intern so structurally equal subtrees collapse
// to the same ID. Lowering runs directly on the AST — it does not consult
// name resolution — and is total: every shape that cannot be lowered
// produces an Error node plus a diagnostic rather than aborting the pass.
package hir

import "ase/internal/intern"

// Tag discriminates the algebraic variant behind an interned Key, scoped to
// the domain (Expr, Type, Pattern, Stmt, TopLevel, Attribute) that owns it —
// the same numeric Tag means different things in different domains, exactly
// like intern.Key's Tag field is domain-relative by construction.
type Tag = uint16

// Expression tags.
const (
	TagExprError Tag = iota
	TagExprVar            // A: NameID of the referenced binding
	TagExprQualifiedPath  // A: NameID of the joined "::"-path text
	TagExprCall           // A: callee ExprID, B: argument ExprID (one curried application)
	TagExprAdd            // A, B: operand ExprIDs — built-in '+'
	TagExprSub            // A, B: operand ExprIDs — built-in '-'
	TagExprMul            // A, B: operand ExprIDs — built-in '*'
	TagExprDiv            // A, B: operand ExprIDs — built-in '/'
	TagExprLitInt         // A: NameID of raw digit text (sign/width left to a later pass)
	TagExprLitUint        // A: NameID of raw digit text
	TagExprLitFloat       // A: NameID of raw digit text
	TagExprLitBool        // A: 1 for true, 0 for false
	TagExprLitString      // A: NameID of the string's raw content
	TagExprLitNothing     // no operands
	TagExprSeq            // A: ArgsID of element ExprIDs
	TagExprLam            // A: ArgsID of parameter PatternIDs, B: body ExprID
	TagExprLet            // A: pattern PatternID, B: value ExprID, C: body ExprID
	TagExprMatch          // A: scrutinee ExprID, B: ArgsID of interleaved (PatternID, ExprID) arm pairs
	TagExprBlock          // A: ArgsID of statement StmtIDs, B: tail ExprID (TagExprLitNothing's ID when absent)
)

// Type-position tags (the algebra described in 4.9's "Types" rule).
const (
	TagTypeError Tag = iota
	TagTypeUnit
	TagTypeThis
	TagTypePi    // A: ArgsID of parameter PatternIDs, B: body TypeID
	TagTypeApp   // A: callee TypeID, B: argument TypeID
	TagTypeArrow // A: argument TypeID, B: result TypeID — the non-dependent right-associated arrow a constructor signature builds
	TagTypeCtorRef
	TagTypeVarRef
)

// Pattern tags.
const (
	TagPatError Tag = iota
	TagPatWild
	TagPatBind          // A: NameID of the bound local
	TagPatBindExplicit  // A: NameID — an explicit parameter's name pattern
	TagPatBindImplicit  // A: NameID — an implicit parameter's name pattern
	TagPatThis          // a `self` parameter pattern
	TagPatLitInt        // A: NameID
	TagPatLitUint       // A: NameID
	TagPatLitFloat      // A: NameID
	TagPatLitBool       // A: 1/0
	TagPatLitStr        // A: NameID
	TagPatCtor          // A: NameID of the constructor, B: ArgsID of sub-pattern PatternIDs
)

// Statement tags, scoped within TagExprBlock.
const (
	TagStmtError Tag = iota
	TagStmtExpr // A: ExprID
	TagStmtLet  // A: pattern PatternID, B: value ExprID
	TagStmtAsk  // A: pattern PatternID, B: value ExprID
)

// Top-level tags.
const (
	TagTopError Tag = iota
	TagTopBindingGroup  // A: NameID, B: ArgsID of parameter PatternIDs from the fused signature (0 if none), C: return TypeID (0 if none), D: ArgsID of TagTopDeclaration IDs
	TagTopDeclaration   // A: ArgsID of parameter PatternIDs, B: body ExprID
	TagTopStruct        // A: NameID, B: ArgsID of type-parameter PatternIDs, C: ArgsID of interleaved (NameID, TypeID) field pairs
	TagTopEnum          // A: NameID, B: ArgsID of type-parameter PatternIDs, C: ArgsID of TagTopVariant IDs
	TagTopVariant       // A: NameID of the constructor, B: TypeID of its (possibly nullary) constructor type
	TagTopTrait         // A: NameID, B: ArgsID of type-parameter PatternIDs, C: ArgsID of member TopLevelIDs
	TagTopClass         // A: NameID, B: ArgsID of type-parameter PatternIDs, C: ArgsID of member TopLevelIDs
	TagTopInstance      // A: target TypeID, B: ArgsID of member TopLevelIDs
	TagTopCommand       // A: AttributeID of the precedence command this top-level records
)

// Attribute tags.
const (
	TagAttrError Tag = iota
	TagAttrInfixL // A: operator NameID, B: precedence order
	TagAttrInfixR // A: operator NameID, B: precedence order
)

// key builds an intern.Key, the common shape every domain table hash-conses.
func key(tag Tag, a, b, c, d intern.ID) intern.Key {
	return intern.Key{Tag: tag, A: a, B: b, C: c, D: d}
}
