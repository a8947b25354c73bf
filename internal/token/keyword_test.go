package token

import (
	"testing"
)

func TestLookupKeyword_Positive(t *testing.T) {
	cases := map[string]Kind{
		"let":      KwLet,
		"if":       KwIf,
		"then":     KwThen,
		"match":    KwMatch,
		"use":      KwUse,
		"fun":      KwFun,
		"self":     KwSelf,
		"return":   KwReturn,
		"true":     KwTrue,
		"false":    KwFalse,
		"default":  KwDefault,
		"instance": KwInstance,
	}

	for lexeme, want := range cases {
		got, ok := LookupKeyword(lexeme)
		if !ok {
			t.Fatalf("LookupKeyword(%q) = !ok, want %v", lexeme, want)
		}
		if got != want {
			t.Fatalf("LookupKeyword(%q) = %v, want %v", lexeme, got, want)
		}
	}
}

func TestLookupKeyword_Negative(t *testing.T) {
	notKw := []string{
		"Let", "MATCH", "Self", // case matters — lowering is the lexer's job
		"int", "identifier", "toString",
	}
	for _, s := range notKw {
		if _, ok := LookupKeyword(s); ok {
			t.Fatalf("LookupKeyword(%q) returned ok=true, want false", s)
		}
	}
}
