package lexer

import (
	"ase/internal/diag"
	"ase/internal/token"
)

// operatorChars is the set of bytes that may appear in a symbolic operator.
// Maximal munch: scanOperatorOrPunct eats the longest run of these bytes and
// only then decides whether the spelling names a fixed-meaning structural
// token (=, ->, =>, <-) or a generic Op whose precedence comes from the
// default table or a #infixl/#infixr command.
const operatorChars = "+-*/%=<>&|^!~"

func isOperatorByte(b byte) bool {
	for i := 0; i < len(operatorChars); i++ {
		if operatorChars[i] == b {
			return true
		}
	}
	return false
}

// scanOperatorOrPunct scans symbolic operators and fixed punctuation. Unicode
// quantifier introducers (λ ∀ Π Σ) are handled here too since they can reach
// this scanner via scanIdentOrKeyword's fallback path.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()

	if r, sz := lx.peekRune(); sz > 1 {
		if k, ok := quantifierKind(r); ok {
			lx.bumpRune()
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: k, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
		}
		lx.bumpRune()
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexUnknownChar, sp, "unknown character")
		return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
	}

	emit := func(k token.Kind) token.Token {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: k, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
	}

	// '::' namespace separator takes priority over a lone ':'.
	if lx.try2(':', ':') {
		return emit(token.ColonColon)
	}

	if isOperatorByte(lx.cursor.Peek()) {
		for isOperatorByte(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		sp := lx.cursor.SpanFrom(start)
		text := string(lx.file.Content[sp.Start:sp.End])
		switch text {
		case "=":
			return token.Token{Kind: token.Assign, Span: sp, Text: text}
		case "->":
			return token.Token{Kind: token.Arrow, Span: sp, Text: text}
		case "=>":
			return token.Token{Kind: token.FatArrow, Span: sp, Text: text}
		case "<-":
			return token.Token{Kind: token.LArrow, Span: sp, Text: text}
		default:
			return token.Token{Kind: token.Op, Span: sp, Text: text}
		}
	}

	ch := lx.cursor.Bump()
	switch ch {
	case ':':
		return emit(token.Colon)
	case ';':
		return emit(token.Semicolon)
	case ',':
		return emit(token.Comma)
	case '.':
		return emit(token.Dot)
	case '?':
		return emit(token.Question)
	case '#':
		return emit(token.Hash)
	case '(':
		return emit(token.LParen)
	case ')':
		return emit(token.RParen)
	case '{':
		return emit(token.LBrace)
	case '}':
		return emit(token.RBrace)
	case '[':
		return emit(token.LBracket)
	case ']':
		return emit(token.RBracket)
	case '_':
		return emit(token.Underscore)
	default:
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexUnknownChar, sp, "unknown character")
		return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
	}
}
