package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token produced by lexer recovery.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token. Module-qualified names are
	// assembled by the parser from Ident tokens joined by ColonColon.
	Ident

	// KwLet represents the 'let' keyword.
	KwLet // let
	// KwIf represents the 'if' keyword.
	KwIf // if
	// KwThen represents the 'then' keyword.
	KwThen // then
	// KwElse represents the 'else' keyword.
	KwElse // else
	// KwType represents the 'type' keyword.
	KwType // type
	// KwRecord represents the 'record' keyword.
	KwRecord // record
	// KwEnum represents the 'enum' keyword.
	KwEnum // enum
	// KwTrait represents the 'trait' keyword.
	KwTrait // trait
	// KwClass represents the 'class' keyword.
	KwClass // class
	// KwInstance represents the 'instance' keyword.
	KwInstance // instance
	// KwCase represents the 'case' keyword.
	KwCase // case
	// KwWhere represents the 'where' keyword.
	KwWhere // where
	// KwMatch represents the 'match' keyword.
	KwMatch // match
	// KwUse represents the 'use' keyword.
	KwUse // use
	// KwIn represents the 'in' keyword.
	KwIn // in
	// KwFun represents the 'fun' keyword.
	KwFun // fun
	// KwSelf represents the 'self' keyword.
	KwSelf // self
	// KwReturn represents the 'return' keyword.
	KwReturn // return
	// KwTrue represents the 'true' keyword.
	KwTrue // true
	// KwFalse represents the 'false' keyword.
	KwFalse // false
	// KwDefault represents the 'default' keyword.
	KwDefault // default

	// NothingLit represents the unit/nothing literal token.
	NothingLit
	// IntLit represents a signed integer literal, optionally suffixed iN.
	IntLit
	// UintLit represents an unsigned integer literal, suffixed uN.
	UintLit
	// FloatLit represents a floating point literal, optionally suffixed f32/f64.
	FloatLit
	// BoolLit is reserved; booleans lex as KwTrue/KwFalse.
	BoolLit
	// StringLit represents a double-quoted string literal.
	StringLit
	// FStringLit represents an interpolated string literal: f"...".
	FStringLit

	// Op is a generic symbolic-operator token. Operator *text*, not Kind,
	// carries meaning: the default precedence table and any #infixl/#infixr
	// command key off Token.Text, so new infix operators need no lexer change.
	Op

	// Assign represents '='.
	Assign // =
	// Colon represents ':'.
	Colon // :
	// ColonColon represents '::' (module path separator).
	ColonColon // ::
	// Semicolon represents ';'.
	Semicolon // ;
	// Comma represents ','.
	Comma // ,
	// Dot represents '.'.
	Dot // .
	// Question represents '?'.
	Question // ?
	// Hash represents '#' (command/pragma introducer).
	Hash // #
	// Arrow represents '->'.
	Arrow // ->
	// FatArrow represents '=>'.
	FatArrow // =>
	// LArrow represents '<-' (do-notation bind).
	LArrow // <-
	// LParen represents '('.
	LParen // (
	// RParen represents ')'.
	RParen // )
	// LBrace represents '{'.
	LBrace // {
	// RBrace represents '}'.
	RBrace // }
	// LBracket represents '['.
	LBracket // [
	// RBracket represents ']'.
	RBracket // ]
	// Underscore represents a standalone '_' wildcard.
	Underscore // _

	// Lambda represents the Unicode 'λ' lambda-introducer.
	Lambda // λ
	// Forall represents the Unicode '∀' universal quantifier.
	Forall // ∀
	// PiSym represents the Unicode 'Π' dependent-function-type introducer.
	PiSym // Π
	// SigmaSym represents the Unicode 'Σ' dependent-pair-type introducer.
	SigmaSym // Σ
)

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "UNKNOWN"
}

var kindNames = map[Kind]string{
	Invalid:    "INVALID",
	EOF:        "EOF",
	Ident:      "IDENT",
	KwLet:      "let",
	KwIf:       "if",
	KwThen:     "then",
	KwElse:     "else",
	KwType:     "type",
	KwRecord:   "record",
	KwEnum:     "enum",
	KwTrait:    "trait",
	KwClass:    "class",
	KwInstance: "instance",
	KwCase:     "case",
	KwWhere:    "where",
	KwMatch:    "match",
	KwUse:      "use",
	KwIn:       "in",
	KwFun:      "fun",
	KwSelf:     "self",
	KwReturn:   "return",
	KwTrue:     "true",
	KwFalse:    "false",
	KwDefault:  "default",
	NothingLit: "NOTHING",
	IntLit:     "INT",
	UintLit:    "UINT",
	FloatLit:   "FLOAT",
	BoolLit:    "BOOL",
	StringLit:  "STRING",
	FStringLit: "FSTRING",
	Op:         "OP",
	Assign:     "=",
	Colon:      ":",
	ColonColon: "::",
	Semicolon:  ";",
	Comma:      ",",
	Dot:        ".",
	Question:   "?",
	Hash:       "#",
	Arrow:      "->",
	FatArrow:   "=>",
	LArrow:     "<-",
	LParen:     "(",
	RParen:     ")",
	LBrace:     "{",
	RBrace:     "}",
	LBracket:   "[",
	RBracket:   "]",
	Underscore: "_",
	Lambda:     "λ",
	Forall:     "∀",
	PiSym:      "Π",
	SigmaSym:   "Σ",
}
