package parser

import (
	"ase/internal/cst"
	"ase/internal/diag"
	"ase/internal/token"
)

// parseFile parses every top-level declaration until EOF.
func (p *Parser) parseFile() cst.CloseMark {
	m := p.open()
	for !p.AtEOF() {
		p.parseTopDecl()
	}
	return p.close(m, cst.KindFile)
}

func (p *Parser) atParamStart() bool {
	switch p.Peek().Kind {
	case token.Ident, token.LParen, token.LBrace, token.KwSelf:
		return true
	default:
		return false
	}
}

// atTypeParamStart is the param-list stop condition used by declaration
// headers (record/enum/trait/class) whose body is immediately introduced by
// a bare '{' with no separator token — it deliberately excludes LBrace so
// the header's generic-parameter list never swallows the body opener as a
// (syntactically identical) implicit-parameter group.
func (p *Parser) atTypeParamStart() bool {
	switch p.Peek().Kind {
	case token.Ident, token.LParen:
		return true
	default:
		return false
	}
}

func (p *Parser) parseTopDecl() {
	switch p.Peek().Kind {
	case token.KwUse:
		p.parseUse()
	case token.KwType:
		p.parseTypeAlias()
	case token.KwRecord:
		p.parseRecord()
	case token.KwEnum:
		p.parseEnum()
	case token.KwTrait:
		p.parseTraitOrClass(cst.KindDeclTrait)
	case token.KwClass:
		p.parseTraitOrClass(cst.KindDeclClass)
	case token.KwInstance:
		p.parseInstance()
	case token.Hash:
		p.parseCommand()
	case token.Ident:
		p.parseSignatureOrAssign()
	default:
		p.report(diag.SynExpectExpression, "expected a declaration")
		p.errorNode(cst.KindDeclError)
	}
}

func (p *Parser) parseUse() {
	m := p.open()
	p.Bump()
	p.Expect(token.Ident, diag.SynExpectIdentifier, "expected module name")
	p.field(cst.FieldPath)
	for p.Eat(token.ColonColon) {
		p.Expect(token.Ident, diag.SynExpectItemAfterDbl, "expected identifier after '::'")
		p.field(cst.FieldPath)
	}
	p.Expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';'")
	p.close(m, cst.KindDeclUse)
}

func (p *Parser) parseTypeAlias() {
	m := p.open()
	p.Bump()
	p.Expect(token.Ident, diag.SynExpectIdentifier, "expected type name")
	p.field(cst.FieldName)
	for p.atParamStart() {
		p.parseParam()
	}
	p.Expect(token.Assign, diag.SynExpectExpression, "expected '=' in type declaration")
	p.parseExpr()
	p.field(cst.FieldType)
	p.Expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';'")
	p.close(m, cst.KindDeclType)
}

func (p *Parser) parseRecord() {
	m := p.open()
	p.Bump()
	p.Expect(token.Ident, diag.SynExpectIdentifier, "expected record name")
	p.field(cst.FieldName)
	for p.atTypeParamStart() {
		p.parseParam()
	}
	p.Expect(token.LBrace, diag.SynExpectExpression, "expected '{'")
	for !p.At(token.RBrace) && !p.AtEOF() {
		p.parseField()
		if !p.Eat(token.Comma) && !p.Eat(token.Semicolon) {
			break
		}
	}
	p.Expect(token.RBrace, diag.SynUnclosedBrace, "expected '}'")
	p.close(m, cst.KindDeclRecord)
}

func (p *Parser) parseField() {
	m := p.open()
	p.Expect(token.Ident, diag.SynExpectIdentifier, "expected field name")
	p.field(cst.FieldName)
	p.Expect(token.Colon, diag.SynExpectColon, "expected ':'")
	p.parseExpr()
	p.field(cst.FieldType)
	p.close(m, cst.KindField)
}

func (p *Parser) parseEnum() {
	m := p.open()
	p.Bump()
	p.Expect(token.Ident, diag.SynExpectIdentifier, "expected enum name")
	p.field(cst.FieldName)
	for p.atTypeParamStart() {
		p.parseParam()
	}
	p.Expect(token.LBrace, diag.SynExpectExpression, "expected '{'")
	for !p.At(token.RBrace) && !p.AtEOF() {
		p.parseVariant()
		if !p.Eat(token.Comma) && !p.Eat(token.Semicolon) {
			break
		}
	}
	p.Expect(token.RBrace, diag.SynUnclosedBrace, "expected '}'")
	p.close(m, cst.KindDeclEnum)
}

func (p *Parser) parseVariant() {
	m := p.open()
	p.Expect(token.Ident, diag.SynExpectIdentifier, "expected variant name")
	p.field(cst.FieldName)
	if !p.Eat(token.LParen) {
		p.close(m, cst.KindVariantType)
		return
	}
	for !p.At(token.RParen) && !p.AtEOF() {
		pm := p.open()
		p.parseExpr()
		p.field(cst.FieldType)
		p.close(pm, cst.KindParamExplicit)
		if !p.Eat(token.Comma) {
			break
		}
	}
	p.Expect(token.RParen, diag.SynUnclosedParen, "expected ')'")
	p.close(m, cst.KindVariantCtor)
}

// parseTraitOrClass parses a trait or class declaration — identical shape,
// distinguished only by the leading keyword and the resulting node kind.
func (p *Parser) parseTraitOrClass(kind cst.Kind) {
	m := p.open()
	p.Bump()
	p.Expect(token.Ident, diag.SynExpectIdentifier, "expected name")
	p.field(cst.FieldName)
	for p.atTypeParamStart() {
		p.parseParam()
	}
	p.Expect(token.LBrace, diag.SynExpectExpression, "expected '{'")
	for !p.At(token.RBrace) && !p.AtEOF() {
		p.parseSignatureOrAssign()
		p.field(cst.FieldBody)
	}
	p.Expect(token.RBrace, diag.SynUnclosedBrace, "expected '}'")
	p.close(m, kind)
}

func (p *Parser) parseInstance() {
	m := p.open()
	p.Bump()
	p.parseExpr()
	p.field(cst.FieldTarget)
	p.Expect(token.LBrace, diag.SynExpectExpression, "expected '{'")
	for !p.At(token.RBrace) && !p.AtEOF() {
		p.parseSignatureOrAssign()
		p.field(cst.FieldBody)
	}
	p.Expect(token.RBrace, diag.SynUnclosedBrace, "expected '}'")
	p.close(m, cst.KindDeclInstance)
}

// parseSignatureOrAssign parses `name : type;` or `name params... = value;`,
// disambiguated by the single token following the name.
func (p *Parser) parseSignatureOrAssign() {
	m := p.open()
	p.Expect(token.Ident, diag.SynExpectIdentifier, "expected a name")
	p.field(cst.FieldName)

	if p.Eat(token.Colon) {
		p.parseExpr()
		p.field(cst.FieldType)
		p.Expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';'")
		p.close(m, cst.KindDeclSignature)
		return
	}

	for p.atParamStart() {
		p.parseParam()
	}
	p.Expect(token.Assign, diag.SynExpectExpression, "expected '='")
	p.parseExpr()
	p.field(cst.FieldValue)
	p.Expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';'")
	p.close(m, cst.KindDeclAssign)
}

func (p *Parser) parseCommand() {
	m := p.open()
	p.Bump()
	p.Expect(token.Ident, diag.SynExpectIdentifier, "expected command name")
	p.field(cst.FieldCommand)
	for !p.At(token.Semicolon) && !p.AtEOF() {
		am := p.open()
		p.Bump()
		p.close(am, cst.KindCommandArg)
		if !p.Eat(token.Comma) {
			break
		}
	}
	p.Expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';'")
	p.close(m, cst.KindDeclCommand)
}
