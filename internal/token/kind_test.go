package token_test

import (
	"testing"

	"ase/internal/source"
	"ase/internal/token"
)

func tok(k token.Kind) token.Token {
	return token.Token{Kind: k, Span: source.Span{Start: 0, End: 0}}
}

func TestIsLiteral(t *testing.T) {
	lits := []token.Kind{
		token.NothingLit, token.IntLit, token.UintLit,
		token.FloatLit, token.BoolLit, token.StringLit, token.FStringLit,
	}
	for _, k := range lits {
		if !tok(k).IsLiteral() {
			t.Fatalf("%v should be literal", k)
		}
	}
	non := []token.Kind{token.Ident, token.KwLet, token.Op, token.LParen}
	for _, k := range non {
		if tok(k).IsLiteral() {
			t.Fatalf("%v must NOT be literal", k)
		}
	}
}

func TestIsPunctOrOp(t *testing.T) {
	ops := []token.Kind{
		token.Op, token.Assign, token.Colon, token.ColonColon,
		token.Semicolon, token.Comma, token.Dot, token.Question, token.Hash,
		token.Arrow, token.FatArrow, token.LArrow,
		token.LParen, token.RParen, token.LBrace, token.RBrace,
		token.LBracket, token.RBracket, token.Underscore,
	}
	for _, k := range ops {
		if !tok(k).IsPunctOrOp() {
			t.Fatalf("%v should be punct/op", k)
		}
	}
	non := []token.Kind{token.Ident, token.KwIf, token.IntLit}
	for _, k := range non {
		if tok(k).IsPunctOrOp() {
			t.Fatalf("%v must NOT be punct/op", k)
		}
	}
}

func TestIsIdent(t *testing.T) {
	if !tok(token.Ident).IsIdent() {
		t.Fatalf("Ident should be ident")
	}
	if tok(token.KwLet).IsIdent() {
		t.Fatalf("KwLet must not be ident")
	}
}

func TestIsKeyword(t *testing.T) {
	keywords := []token.Kind{
		token.KwLet, token.KwIf, token.KwThen, token.KwElse, token.KwType,
		token.KwRecord, token.KwEnum, token.KwTrait, token.KwClass, token.KwInstance,
		token.KwCase, token.KwWhere, token.KwMatch, token.KwUse, token.KwIn,
		token.KwFun, token.KwSelf, token.KwReturn, token.KwTrue, token.KwFalse,
		token.KwDefault,
	}
	for _, k := range keywords {
		if !tok(k).IsKeyword() {
			t.Fatalf("%v should be keyword", k)
		}
	}
	if tok(token.Ident).IsKeyword() {
		t.Fatalf("Ident must not be keyword")
	}
}

func TestKindString(t *testing.T) {
	if token.KwMatch.String() != "match" {
		t.Fatalf("unexpected String(): %s", token.KwMatch.String())
	}
	if token.Lambda.String() != "λ" {
		t.Fatalf("unexpected String(): %s", token.Lambda.String())
	}
}
