package parser

import (
	"ase/internal/cst"
	"ase/internal/diag"
	"ase/internal/token"
	"unicode"
)

// parsePattern parses one pattern, then optionally wraps it in a type
// annotation (`pat : type`).
func (p *Parser) parsePattern() cst.CloseMark {
	lhs := p.parsePatternPrimary()
	if p.At(token.Colon) {
		m := p.openBefore(lhs)
		p.field(cst.FieldPattern)
		p.Bump()
		p.parseExpr()
		p.field(cst.FieldType)
		lhs = p.close(m, cst.KindPatAnn)
	}
	return lhs
}

func (p *Parser) parsePatternPrimary() cst.CloseMark {
	switch p.Peek().Kind {
	case token.Underscore:
		m := p.open()
		p.Bump()
		return p.close(m, cst.KindPatWild)
	case token.IntLit, token.UintLit, token.FloatLit, token.StringLit,
		token.FStringLit, token.NothingLit, token.KwTrue, token.KwFalse:
		m := p.open()
		p.Bump()
		p.field(cst.FieldValue)
		return p.close(m, cst.KindPatLiteral)
	case token.Ident:
		return p.parseIdentPattern()
	case token.LParen:
		// Parens here are pure grouping, not a distinct pattern shape: the
		// inner pattern (possibly already a PatAnn from its own ':') is
		// returned unwrapped so `(x)` and `x` produce identical trees.
		p.Bump()
		inner := p.parsePattern()
		p.Expect(token.RParen, diag.SynUnclosedParen, "expected ')'")
		return inner
	default:
		p.report(diag.SynExpectExpression, "expected a pattern")
		return p.errorNode(cst.KindPatError)
	}
}

// parseIdentPattern disambiguates a bare binder from a (possibly applied)
// constructor pattern using the conventional ML capitalization rule:
// an identifier starting with an uppercase letter names a constructor.
// internal/resolve re-validates this against the real constructor table
// and reclassifies if the heuristic guessed wrong.
func (p *Parser) parseIdentPattern() cst.CloseMark {
	m := p.open()
	name := p.Bump()
	p.field(cst.FieldName)
	isCtorName := len(name.Text) > 0 && unicode.IsUpper([]rune(name.Text)[0])

	if p.At(token.LParen) {
		p.Bump()
		for !p.At(token.RParen) && !p.AtEOF() {
			p.parsePattern()
			p.field(cst.FieldArg)
			if !p.Eat(token.Comma) {
				break
			}
		}
		p.Expect(token.RParen, diag.SynUnclosedParen, "expected ')'")
		return p.close(m, cst.KindPatCtor)
	}
	if isCtorName {
		return p.close(m, cst.KindPatGlobal)
	}
	return p.close(m, cst.KindPatLocal)
}
