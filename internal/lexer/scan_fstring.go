package lexer

import (
	"ase/internal/diag"
	"ase/internal/token"
)

// scanFString scans an interpolated string literal: f"...". Braces inside
// are tracked only to find the closing quote reliably — splitting the
// literal text from `{expr}` holes is the parser's job, not the lexer's.
func (lx *Lexer) scanFString() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // 'f'
	lx.cursor.Bump() // opening '"'

	depth := 0
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		switch {
		case b == '"' && depth == 0:
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.FStringLit, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
		case b == '\\':
			lx.cursor.Bump()
			if lx.cursor.EOF() {
				break
			}
			lx.cursor.Bump()
			continue
		case b == '{':
			if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '{' && b1 == '{' {
				// literal '{{' escape, not a hole
				lx.cursor.Bump()
				lx.cursor.Bump()
				continue
			}
			depth++
		case b == '}':
			if depth > 0 {
				depth--
			}
		case b == '\n':
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexUnterminatedString, sp, "newline in f-string literal")
			return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
		}
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedString, sp, "unterminated f-string literal")
	return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}
