package lexer

import (
	"bytes"
	"ase/internal/token"
)

// scanIdentOrKeyword сканирует [Ident] и мапит через LookupKeyword.
// Важно: Token.Text — ровно исходный срез; ключевые слова сравниваются с учётом регистра.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()

	// Первый символ: ASCII fast-path или Unicode
	r, sz := lx.peekRune()
	if sz == 0 {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: token.Invalid, Span: sp, Text: ""}
	}
	if r < utf8RuneSelf {
		// ASCII
		if !isIdentStartByte(byte(r)) {
			// fallback на оператор
			return lx.scanOperatorOrPunct()
		}
		lx.cursor.Bump()
		for {
			b := lx.cursor.Peek()
			if !(isIdentContinueByte(b)) {
				break
			}
			lx.cursor.Bump()
		}
	} else {
		// Unicode quantifier introducers are reserved single-rune tokens even
		// though λ/Π/Σ are letters and would otherwise start an identifier.
		if k, ok := quantifierKind(r); ok {
			lx.bumpRune()
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: k, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
		}
		if !isIdentStartRune(r) {
			return lx.scanOperatorOrPunct()
		}
		lx.bumpRune()
		for {
			r2, sz2 := lx.peekRune()
			if sz2 == 0 || !isIdentContinueRune(r2) {
				break
			}
			lx.bumpRune()
		}
	}

	sp := lx.cursor.SpanFrom(start)
	lex := lx.file.Content[sp.Start:sp.End]

	// a bare '_' is the wildcard token, not an identifier named "_"
	if len(lex) == 1 && lex[0] == '_' {
		return token.Token{Kind: token.Underscore, Span: sp, Text: string(lex)}
	}

	// Вызов LookupKeyword с исходным срезом: ключевые слова регистрозависимые
	if k, ok := token.LookupKeyword(string(lex)); ok {
		return token.Token{Kind: k, Span: sp, Text: string(lex)}
	}
	return token.Token{Kind: token.Ident, Span: sp, Text: string(lex)}
}

const utf8RuneSelf = 0x80

// quantifierKind maps a reserved Unicode dependent-type quantifier rune to
// its token kind. These never merge into surrounding identifier text.
func quantifierKind(r rune) (token.Kind, bool) {
	switch r {
	case 'λ':
		return token.Lambda, true
	case '∀':
		return token.Forall, true
	case 'Π':
		return token.PiSym, true
	case 'Σ':
		return token.SigmaSym, true
	default:
		return token.Invalid, false
	}
}

func toLowerASCIIBytes(b []byte) []byte {
	// Если нет верхних ASCII, вернём исходный срез (без копий).
	if bytes.IndexFunc(b, func(r rune) bool {
		return r >= 'A' && r <= 'Z'
	}) == -1 {
		return b
	}
	out := make([]byte, len(b))
	for i := range b {
		c := b[i]
		if c >= 'A' && c <= 'Z' {
			c = c + ('a' - 'A')
		}
		out[i] = c
	}
	return out
}
