package cst

// Field label constants assigned by the parser driver via Sink.Field and
// consumed by the green/red projection layer for O(1) named access. Keeping
// them here (rather than duplicated in internal/parser and internal/ast)
// means both sides of the event log agree on spelling.
const (
	FieldName     = "name"
	FieldLHS      = "lhs"
	FieldOp       = "op"
	FieldRHS      = "rhs"
	FieldCallee   = "callee"
	FieldArg      = "arg"
	FieldCond     = "cond"
	FieldThen     = "then"
	FieldElse     = "else"
	FieldScrut    = "scrutinee"
	FieldArm      = "arm"
	FieldPattern  = "pattern"
	FieldBody     = "body"
	FieldParam    = "param"
	FieldValue    = "value"
	FieldType     = "type"
	FieldTarget   = "target"
	FieldBinder   = "binder"
	FieldElem     = "elem"
	FieldPath     = "path"
	FieldVariant  = "variant"
	FieldCtor     = "ctor"
	FieldField    = "field"
	FieldCommand  = "command"
	FieldArgList  = "arglist"
	FieldBindSite = "bindsite"
	FieldAnnArg   = "annarg"
	FieldStmt     = "stmt"
)
