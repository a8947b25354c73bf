package token

var keywords = map[string]Kind{
	"let":      KwLet,
	"if":       KwIf,
	"then":     KwThen,
	"else":     KwElse,
	"type":     KwType,
	"record":   KwRecord,
	"enum":     KwEnum,
	"trait":    KwTrait,
	"class":    KwClass,
	"instance": KwInstance,
	"case":     KwCase,
	"where":    KwWhere,
	"match":    KwMatch,
	"use":      KwUse,
	"in":       KwIn,
	"fun":      KwFun,
	"self":     KwSelf,
	"return":   KwReturn,
	"true":     KwTrue,
	"false":    KwFalse,
	"default":  KwDefault,
	"nothing":  NothingLit,
}

// LookupKeyword returns the Kind for a keyword spelling, if ident names one.
// Keywords are case-sensitive; only exact lowercase spellings are recognized.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
