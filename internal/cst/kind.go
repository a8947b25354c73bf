// Package cst implements the lossless concrete syntax tree: the single
// source of truth every later compiler stage (C5-C11) projects from. A Tree
// node's children are an ordered sequence of either child nodes or leaf
// tokens; concatenating every descendant token's text reproduces a prefix of
// the source.
package cst

// Kind is the closed set of CST node shapes produced by the parser driver.
type Kind uint16

const (
	KindInvalid Kind = iota

	// File
	KindFile

	// Top-level declarations
	KindDeclUse
	KindDeclType
	KindDeclRecord
	KindDeclEnum
	KindDeclTrait
	KindDeclClass
	KindDeclInstance
	KindDeclSignature
	KindDeclAssign
	KindDeclCommand
	KindDeclError

	// Enum variant shapes
	KindVariantType
	KindVariantCtor

	// Record/class fields
	KindField

	// Parameters
	KindParamExplicit
	KindParamImplicit
	KindParamSelf

	// Patterns
	KindPatWild
	KindPatLocal
	KindPatGlobal
	KindPatLiteral
	KindPatCtor
	KindPatAnn
	KindPatError

	// Statements
	KindStmtExpr
	KindStmtAsk
	KindStmtLet

	// Expressions
	KindExprGroup
	KindExprInfix
	KindExprApp
	KindExprLam
	KindExprLet
	KindExprIf
	KindExprMatch
	KindExprMatchArm
	KindExprAnn
	KindExprQual
	KindExprAccessor
	KindExprPi
	KindExprSigma
	KindExprArray
	KindExprHelp
	KindExprLocal
	KindExprLiteral
	KindExprQualifiedPath
	KindExprBlock
	KindExprError

	// Types (reuse Expr-shaped nodes in type position; tagged distinctly so
	// the green/red layer can classify variable-vs-constructor on lowering)
	KindTypeUnit
	KindTypeThis

	// Misc
	KindCommandArg
)

var kindNames = map[Kind]string{
	KindInvalid:           "Invalid",
	KindFile:              "File",
	KindDeclUse:           "DeclUse",
	KindDeclType:          "DeclType",
	KindDeclRecord:        "DeclRecord",
	KindDeclEnum:          "DeclEnum",
	KindDeclTrait:         "DeclTrait",
	KindDeclClass:         "DeclClass",
	KindDeclInstance:      "DeclInstance",
	KindDeclSignature:     "DeclSignature",
	KindDeclAssign:        "DeclAssign",
	KindDeclCommand:       "DeclCommand",
	KindDeclError:         "DeclError",
	KindVariantType:       "VariantType",
	KindVariantCtor:       "VariantCtor",
	KindField:             "Field",
	KindParamExplicit:     "ParamExplicit",
	KindParamImplicit:     "ParamImplicit",
	KindParamSelf:         "ParamSelf",
	KindPatWild:           "PatWild",
	KindPatLocal:          "PatLocal",
	KindPatGlobal:         "PatGlobal",
	KindPatLiteral:        "PatLiteral",
	KindPatCtor:           "PatCtor",
	KindPatAnn:            "PatAnn",
	KindPatError:          "PatError",
	KindStmtExpr:          "StmtExpr",
	KindStmtAsk:           "StmtAsk",
	KindStmtLet:           "StmtLet",
	KindExprGroup:         "ExprGroup",
	KindExprInfix:         "ExprInfix",
	KindExprApp:           "ExprApp",
	KindExprLam:           "ExprLam",
	KindExprLet:           "ExprLet",
	KindExprIf:            "ExprIf",
	KindExprMatch:         "ExprMatch",
	KindExprMatchArm:      "ExprMatchArm",
	KindExprAnn:           "ExprAnn",
	KindExprQual:          "ExprQual",
	KindExprAccessor:      "ExprAccessor",
	KindExprPi:            "ExprPi",
	KindExprSigma:         "ExprSigma",
	KindExprArray:         "ExprArray",
	KindExprHelp:          "ExprHelp",
	KindExprLocal:         "ExprLocal",
	KindExprLiteral:       "ExprLiteral",
	KindExprQualifiedPath: "ExprQualifiedPath",
	KindExprBlock:         "ExprBlock",
	KindExprError:         "ExprError",
	KindTypeUnit:          "TypeUnit",
	KindTypeThis:          "TypeThis",
	KindCommandArg:        "CommandArg",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "UnknownKind"
}

// IsExpr reports whether a kind belongs to the Expr algebra (used by the
// precedence engine to recognize rotation-eligible binary shapes).
func (k Kind) IsExpr() bool {
	switch k {
	case KindExprGroup, KindExprInfix, KindExprApp, KindExprLam, KindExprLet,
		KindExprIf, KindExprMatch, KindExprAnn, KindExprQual, KindExprAccessor,
		KindExprPi, KindExprSigma, KindExprArray, KindExprHelp, KindExprLocal,
		KindExprLiteral, KindExprQualifiedPath, KindExprBlock, KindExprError,
		KindTypeUnit, KindTypeThis:
		return true
	default:
		return false
	}
}

// IsBinaryShaped reports whether a kind is one of the four node shapes the
// precedence rotation rewrites (lhs / fn_id / rhs slots).
func (k Kind) IsBinaryShaped() bool {
	switch k {
	case KindExprInfix, KindExprQual, KindExprAnn, KindExprAccessor:
		return true
	default:
		return false
	}
}
