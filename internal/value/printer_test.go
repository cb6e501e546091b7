package value

import (
	"testing"
	"time"
)

func TestPrStr(t *testing.T) {
	tests := []struct {
		v        Value
		readable bool
		want     string
	}{
		{Nil, true, "nil"},
		{Boolean(true), true, "true"},
		{Number(-5), true, "-5"},
		{Symbol("foo"), true, "foo"},
		{Keyword("foo"), true, ":foo"},
		{String("a\nb"), true, `"a\nb"`},
		{String("a\nb"), false, "a\nb"},
		{List([]Value{Number(1), Number(2)}), true, "(1 2)"},
		{Vec([]Value{Number(1), Number(2)}), true, "[1 2]"},
	}
	for _, tt := range tests {
		if got := PrStr(tt.v, tt.readable); got != tt.want {
			t.Errorf("PrStr(%v, %v) = %q, want %q", tt.v, tt.readable, got, tt.want)
		}
	}
}

func TestPrStrMapKeysAreSorted(t *testing.T) {
	m := Map(map[string]Value{"b": Number(2), "a": Number(1)})
	if got, want := PrStr(m, true), `{"a" 1 "b" 2}`; got != want {
		t.Errorf("PrStr(map) = %q, want %q", got, want)
	}
}

func TestPrStrEscaping(t *testing.T) {
	s := String(`a"b\c`)
	if got, want := PrStr(s, true), `"a\"b\\c"`; got != want {
		t.Errorf("PrStr(%q) = %q, want %q", s.Str, got, want)
	}
}

func TestPrStrSelfReferentialAtomDoesNotLoop(t *testing.T) {
	a := NewAtom(Nil)
	a.AtomV.V = a

	done := make(chan string, 1)
	go func() { done <- PrStr(a, true) }()

	select {
	case got := <-done:
		if got == "" {
			t.Fatal("PrStr of a self-referential atom returned an empty string")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("PrStr did not terminate on a self-referential atom")
	}
}
