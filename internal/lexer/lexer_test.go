package lexer

import (
	"testing"

	"github.com/miDeb/malgo/internal/token"
)

func TestNext(t *testing.T) {
	input := `(+ 1 2) [:a "b\n"] {~ ~@ ` + "`" + ` ' ^} ; a comment
,,, -5`

	tests := []struct {
		kind    token.Kind
		literal string
	}{
		{token.LParen, ""},
		{token.Ident, "+"},
		{token.Number, "1"},
		{token.Number, "2"},
		{token.RParen, ""},
		{token.LBracket, ""},
		{token.Keyword, string(KeywordSentinel) + "a"},
		{token.String, "b\n"},
		{token.RBracket, ""},
		{token.LBrace, ""},
		{token.Tilde, ""},
		{token.SpliceUnquote, ""},
		{token.Backtick, ""},
		{token.Quote, ""},
		{token.Caret, ""},
		{token.RBrace, ""},
		{token.Ident, "-5"},
	}

	l := New(input)
	for i, tt := range tests {
		tok, err := l.Next()
		if err != nil {
			t.Fatalf("tests[%d]: unexpected error: %v", i, err)
		}
		if tok.Kind != tt.kind {
			t.Fatalf("tests[%d]: kind = %v, want %v", i, tok.Kind, tt.kind)
		}
		if tok.Literal != tt.literal {
			t.Fatalf("tests[%d]: literal = %q, want %q", i, tok.Literal, tt.literal)
		}
	}

	if _, err := l.Next(); err != ErrEOF {
		t.Fatalf("expected ErrEOF at end of input, got %v", err)
	}
}

func TestUnterminatedString(t *testing.T) {
	l := New(`"abc`)
	if _, err := l.Next(); err == nil {
		t.Fatal("expected an error for an unterminated string")
	}
}

func TestEmptyKeyword(t *testing.T) {
	l := New(`:`)
	if _, err := l.Next(); err == nil {
		t.Fatal("expected an error for an empty keyword")
	}
}

func TestInvalidNumber(t *testing.T) {
	l := New(`1a`)
	if _, err := l.Next(); err == nil {
		t.Fatal("expected an error for a malformed number run")
	}
}
