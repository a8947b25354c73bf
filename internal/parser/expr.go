package parser

import (
	"ase/internal/cst"
	"ase/internal/diag"
	"ase/internal/token"
)

// parseExpr parses a full expression, including the binary-shaped Ann/Qual
// wrappers. It builds every binary chain (Infix, Accessor, Ann, Qual)
// strictly left-associatively regardless of the actual operator's
// declared precedence — internal/prec.Rotate runs afterward to fix the
// shape up once #infixl/#infixr commands and the default table are known.
func (p *Parser) parseExpr() cst.CloseMark {
	return p.parseQual()
}

func (p *Parser) parseQual() cst.CloseMark {
	lhs := p.parseAnn()
	for p.At(token.FatArrow) {
		m := p.openBefore(lhs)
		p.field(cst.FieldLHS)
		p.Bump()
		p.parseAnn()
		p.field(cst.FieldRHS)
		lhs = p.close(m, cst.KindExprQual)
	}
	return lhs
}

func (p *Parser) parseAnn() cst.CloseMark {
	lhs := p.parseInfix()
	for p.At(token.Colon) {
		m := p.openBefore(lhs)
		p.field(cst.FieldLHS)
		p.Bump()
		p.parseInfix()
		p.field(cst.FieldRHS)
		lhs = p.close(m, cst.KindExprAnn)
	}
	return lhs
}

func (p *Parser) parseInfix() cst.CloseMark {
	lhs := p.parseAccessor()
	for p.At(token.Op) {
		m := p.openBefore(lhs)
		p.field(cst.FieldLHS)
		p.Bump()
		p.field(cst.FieldOp)
		p.parseAccessor()
		p.field(cst.FieldRHS)
		lhs = p.close(m, cst.KindExprInfix)
	}
	return lhs
}

func (p *Parser) parseAccessor() cst.CloseMark {
	lhs := p.parseApp()
	for p.At(token.Dot) {
		m := p.openBefore(lhs)
		p.field(cst.FieldLHS)
		p.Bump()
		p.parseApp()
		p.field(cst.FieldRHS)
		lhs = p.close(m, cst.KindExprAccessor)
	}
	return lhs
}

func (p *Parser) parseApp() cst.CloseMark {
	lhs := p.parsePrimary()
	for p.atPrimaryStart() {
		m := p.openBefore(lhs)
		p.field(cst.FieldCallee)
		p.parsePrimary()
		p.field(cst.FieldArg)
		lhs = p.close(m, cst.KindExprApp)
	}
	return lhs
}

// atPrimaryStart reports whether the current lookahead can begin a
// juxtaposed application argument, without consuming it.
func (p *Parser) atPrimaryStart() bool {
	switch p.Peek().Kind {
	case token.Ident, token.IntLit, token.UintLit, token.FloatLit, token.StringLit,
		token.FStringLit, token.NothingLit, token.KwTrue, token.KwFalse, token.KwSelf,
		token.LParen, token.LBracket, token.Lambda, token.Forall, token.PiSym,
		token.SigmaSym, token.KwIf, token.KwLet, token.KwMatch, token.Question:
		return true
	default:
		return false
	}
}

func (p *Parser) parsePrimary() cst.CloseMark {
	switch p.Peek().Kind {
	case token.Ident:
		return p.parsePathOrLocal()
	case token.IntLit, token.UintLit, token.FloatLit, token.StringLit,
		token.FStringLit, token.NothingLit, token.KwTrue, token.KwFalse:
		return p.parseLiteral()
	case token.KwSelf:
		m := p.open()
		p.Bump()
		return p.close(m, cst.KindTypeThis)
	case token.LParen:
		return p.parseParenOrUnit()
	case token.LBrace:
		return p.parseBlock()
	case token.LBracket:
		return p.parseArray()
	case token.Lambda:
		return p.parseLambda()
	case token.Forall, token.PiSym:
		return p.parseQuantified(cst.KindExprPi)
	case token.SigmaSym:
		return p.parseQuantified(cst.KindExprSigma)
	case token.KwIf:
		return p.parseIf()
	case token.KwLet:
		return p.parseLet()
	case token.KwMatch:
		return p.parseMatch()
	case token.Question:
		return p.parseHelp()
	default:
		p.report(diag.SynExpectExpression, "expected an expression")
		return p.errorNode(cst.KindExprError)
	}
}

func (p *Parser) parsePathOrLocal() cst.CloseMark {
	m := p.open()
	p.Bump()
	if !p.At(token.ColonColon) {
		p.field(cst.FieldName)
		return p.close(m, cst.KindExprLocal)
	}
	p.field(cst.FieldPath)
	for p.Eat(token.ColonColon) {
		p.Expect(token.Ident, diag.SynExpectIdentifier, "expected identifier after '::'")
		p.field(cst.FieldPath)
	}
	return p.close(m, cst.KindExprQualifiedPath)
}

func (p *Parser) parseLiteral() cst.CloseMark {
	m := p.open()
	p.Bump()
	p.field(cst.FieldName)
	return p.close(m, cst.KindExprLiteral)
}

// parseParenOrUnit distinguishes `()` (the unit type literal), a
// parenthesized group, and (eventually, via parseAnn) a type annotation
// written in parens.
func (p *Parser) parseParenOrUnit() cst.CloseMark {
	if p.Peek2().Kind == token.RParen {
		m := p.open()
		p.Bump()
		p.Bump()
		return p.close(m, cst.KindTypeUnit)
	}
	m := p.open()
	p.Bump()
	p.parseExpr()
	p.field(cst.FieldBody)
	p.Expect(token.RParen, diag.SynUnclosedParen, "expected ')'")
	return p.close(m, cst.KindExprGroup)
}

func (p *Parser) parseArray() cst.CloseMark {
	m := p.open()
	p.Bump()
	for !p.At(token.RBracket) && !p.AtEOF() {
		p.parseExpr()
		p.field(cst.FieldElem)
		if !p.Eat(token.Comma) {
			break
		}
	}
	p.Expect(token.RBracket, diag.SynExpectRightBracket, "expected ']'")
	return p.close(m, cst.KindExprArray)
}

func (p *Parser) parseLambda() cst.CloseMark {
	m := p.open()
	p.Bump()
	for !p.At(token.Arrow) && !p.AtEOF() {
		p.parseParam()
	}
	p.Expect(token.Arrow, diag.SynExpectExpression, "expected '->' after lambda parameters")
	p.parseExpr()
	p.field(cst.FieldBody)
	return p.close(m, cst.KindExprLam)
}

// parseParam parses one lambda/pi/sigma parameter: a bare name (explicit),
// `{name}` (implicit), or `self`.
func (p *Parser) parseParam() {
	m := p.open()
	switch p.Peek().Kind {
	case token.KwSelf:
		p.Bump()
		p.close(m, cst.KindParamSelf)
	case token.LBrace:
		p.Bump()
		p.Expect(token.Ident, diag.SynExpectIdentifier, "expected parameter name")
		p.field(cst.FieldName)
		if p.Eat(token.Colon) {
			p.parseExpr()
			p.field(cst.FieldType)
		}
		p.Expect(token.RBrace, diag.SynUnclosedBrace, "expected '}'")
		p.close(m, cst.KindParamImplicit)
	case token.LParen:
		p.Bump()
		p.Expect(token.Ident, diag.SynExpectIdentifier, "expected parameter name")
		p.field(cst.FieldName)
		if p.Eat(token.Colon) {
			p.parseExpr()
			p.field(cst.FieldType)
		}
		p.Expect(token.RParen, diag.SynUnclosedParen, "expected ')'")
		p.close(m, cst.KindParamExplicit)
	default:
		p.Expect(token.Ident, diag.SynExpectIdentifier, "expected parameter name")
		p.field(cst.FieldName)
		p.close(m, cst.KindParamExplicit)
	}
}

// parseQuantified parses `Π (x : A) (y : B) -> body`, `∀ (x : A) -> body`,
// or `Σ (x : A) -> body` — a dependent-type binder list followed by a body.
func (p *Parser) parseQuantified(kind cst.Kind) cst.CloseMark {
	m := p.open()
	p.Bump()
	for !p.At(token.Arrow) && !p.AtEOF() {
		p.parseParam()
	}
	p.Expect(token.Arrow, diag.SynExpectExpression, "expected '->' after binder list")
	p.parseExpr()
	p.field(cst.FieldBody)
	return p.close(m, kind)
}

func (p *Parser) parseIf() cst.CloseMark {
	m := p.open()
	p.Bump()
	p.parseExpr()
	p.field(cst.FieldCond)
	p.Expect(token.KwThen, diag.SynExpectExpression, "expected 'then'")
	p.parseExpr()
	p.field(cst.FieldThen)
	p.Expect(token.KwElse, diag.SynExpectExpression, "expected 'else'")
	p.parseExpr()
	p.field(cst.FieldElse)
	return p.close(m, cst.KindExprIf)
}

func (p *Parser) parseLet() cst.CloseMark {
	m := p.open()
	p.Bump()
	p.parsePattern()
	p.field(cst.FieldPattern)
	p.Expect(token.Assign, diag.SynExpectExpression, "expected '=' in let binding")
	p.parseExpr()
	p.field(cst.FieldValue)
	p.Expect(token.KwIn, diag.SynExpectExpression, "expected 'in'")
	p.parseExpr()
	p.field(cst.FieldBody)
	return p.close(m, cst.KindExprLet)
}

func (p *Parser) parseMatch() cst.CloseMark {
	m := p.open()
	p.Bump()
	p.parseExpr()
	p.field(cst.FieldScrut)
	p.Expect(token.LBrace, diag.SynExpectExpression, "expected '{' to start match arms")
	for !p.At(token.RBrace) && !p.AtEOF() {
		p.parseMatchArm()
		if !p.Eat(token.Semicolon) {
			break
		}
	}
	p.Expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close match")
	return p.close(m, cst.KindExprMatch)
}

func (p *Parser) parseMatchArm() {
	m := p.open()
	p.Expect(token.KwCase, diag.SynExpectExpression, "expected 'case'")
	p.parsePattern()
	p.field(cst.FieldPattern)
	p.Expect(token.Arrow, diag.SynExpectExpression, "expected '->' in match arm")
	p.parseExpr()
	p.field(cst.FieldBody)
	p.close(m, cst.KindExprMatchArm)
}

// parseBlock parses `{ stmt; stmt; ...; expr }`, a sequence of statements
// whose final member supplies the block's value.
func (p *Parser) parseBlock() cst.CloseMark {
	m := p.open()
	p.Bump()
	for !p.At(token.RBrace) && !p.AtEOF() {
		p.parseStmt()
		p.field(cst.FieldStmt)
		if !p.Eat(token.Semicolon) {
			break
		}
	}
	p.Expect(token.RBrace, diag.SynUnclosedBrace, "expected '}'")
	return p.close(m, cst.KindExprBlock)
}

// parseStmt parses one block statement: a local `let` binding, a monadic
// bind (`pattern <- expr`), or a bare expression. Bind is disambiguated
// from a bare expression via a savepoint, since both can start with what
// looks like a simple pattern.
func (p *Parser) parseStmt() {
	if p.At(token.KwLet) {
		m := p.open()
		p.Bump()
		p.parsePattern()
		p.field(cst.FieldPattern)
		p.Expect(token.Assign, diag.SynExpectExpression, "expected '=' in let binding")
		p.parseExpr()
		p.field(cst.FieldValue)
		p.close(m, cst.KindStmtLet)
		return
	}

	sp := p.savepoint()
	m := p.open()
	p.parsePattern()
	if p.At(token.LArrow) {
		p.field(cst.FieldPattern)
		p.Bump()
		p.parseExpr()
		p.field(cst.FieldValue)
		p.close(m, cst.KindStmtAsk)
		return
	}
	p.returnAt(sp)

	m2 := p.open()
	p.parseExpr()
	p.field(cst.FieldValue)
	p.close(m2, cst.KindStmtExpr)
}

func (p *Parser) parseHelp() cst.CloseMark {
	m := p.open()
	p.Bump()
	if p.atPrimaryStart() {
		p.parsePrimary()
		p.field(cst.FieldBody)
	}
	return p.close(m, cst.KindExprHelp)
}

