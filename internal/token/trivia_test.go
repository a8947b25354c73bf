package token_test

import (
	"testing"

	"ase/internal/source"
	"ase/internal/token"
)

func TestTriviaAttachesToFollowingToken(t *testing.T) {
	tv := token.Trivia{
		Kind: token.TriviaDocLine,
		Span: source.Span{Start: 0, End: 10},
		Text: "/// doc comment\n",
	}
	tok := token.Token{
		Kind:    token.KwLet,
		Span:    source.Span{Start: 42, End: 45},
		Text:    "let",
		Leading: []token.Trivia{tv},
	}
	if len(tok.Leading) != 1 || tok.Leading[0].Kind != token.TriviaDocLine {
		t.Fatalf("doc trivia must be present and structured")
	}
}

func TestTriviaKindString(t *testing.T) {
	if token.TriviaBlockComment.String() != "block-comment" {
		t.Fatalf("unexpected String(): %s", token.TriviaBlockComment.String())
	}
}
