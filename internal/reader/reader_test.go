package reader

import (
	"testing"

	"github.com/miDeb/malgo/internal/value"
)

func mustRead(t *testing.T, src string) value.Value {
	t.Helper()
	v, err := ReadStr(src)
	if err != nil {
		t.Fatalf("ReadStr(%q): unexpected error: %v", src, err)
	}
	return v
}

func TestReadAtoms(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"42", "42"},
		{"-42", "-42"},
		{"nil", "nil"},
		{"true", "true"},
		{"false", "false"},
		{"abc", "abc"},
		{`"hi"`, `"hi"`},
		{":kw", ":kw"},
	}
	for _, tt := range tests {
		if got := value.PrStr(mustRead(t, tt.src), true); got != tt.want {
			t.Errorf("ReadStr(%q) printed %q, want %q", tt.src, got, tt.want)
		}
	}
}

func TestReadCollections(t *testing.T) {
	if got, want := value.PrStr(mustRead(t, "(1 2 3)"), true), "(1 2 3)"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if got, want := value.PrStr(mustRead(t, "[1 2 3]"), true), "[1 2 3]"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if got, want := value.PrStr(mustRead(t, `{:a 1}`), true), "{:a 1}"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestReaderMacros(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"'a", "(quote a)"},
		{"`a", "(quasiquote a)"},
		{"~a", "(unquote a)"},
		{"~@a", "(splice-unquote a)"},
		{"@a", "(deref a)"},
		{"^{:a 1} [1]", "(with-meta [1] {:a 1})"},
	}
	for _, tt := range tests {
		if got := value.PrStr(mustRead(t, tt.src), true); got != tt.want {
			t.Errorf("ReadStr(%q) = %q, want %q", tt.src, got, tt.want)
		}
	}
}

func TestReadEmptyInput(t *testing.T) {
	if _, err := ReadStr("   ; just a comment"); err != ErrEmptyInput {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
}

func TestReadUnbalanced(t *testing.T) {
	if _, err := ReadStr("(1 2"); err == nil {
		t.Fatal("expected an error for an unterminated list")
	}
}

func TestReadBadMapKey(t *testing.T) {
	if _, err := ReadStr("{1 2}"); err == nil {
		t.Fatal("expected an error for a non-string/keyword map key")
	}
}

func TestReadOddMap(t *testing.T) {
	if _, err := ReadStr("{:a}"); err == nil {
		t.Fatal("expected an error for an odd-length map")
	}
}
