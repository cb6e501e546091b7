package builtins

import (
	"testing"

	"github.com/chzyer/readline"

	"github.com/miDeb/malgo/internal/env"
	"github.com/miDeb/malgo/internal/eval"
	"github.com/miDeb/malgo/internal/reader"
	"github.com/miDeb/malgo/internal/value"
)

func newTestEnv(t *testing.T) *env.Environment {
	t.Helper()
	e := env.New()
	Register(e, (*readline.Instance)(nil))
	return e
}

func evalStr(t *testing.T, e *env.Environment, src string) value.Value {
	t.Helper()
	form, err := reader.ReadStr(src)
	if err != nil {
		t.Fatalf("ReadStr(%q): %v", src, err)
	}
	v, err := eval.Eval(form, e)
	if err != nil {
		t.Fatalf("Eval(%q): unexpected error: %v", src, err)
	}
	return v
}

func TestSequenceBuiltins(t *testing.T) {
	e := newTestEnv(t)
	tests := []struct {
		src  string
		want string
	}{
		{`(list 1 2 3)`, "(1 2 3)"},
		{`(list? (list 1))`, "true"},
		{`(vector? [1])`, "true"},
		{`(empty? (list))`, "true"},
		{`(count [1 2 3])`, "3"},
		{`(count nil)`, "0"},
		{`(cons 0 (list 1 2))`, "(0 1 2)"},
		{`(concat (list 1) (list 2 3))`, "(1 2 3)"},
		{`(vec (list 1 2))`, "[1 2]"},
		{`(nth [1 2 3] 1)`, "2"},
		{`(first (list 1 2))`, "1"},
		{`(first nil)`, "nil"},
		{`(rest (list 1 2 3))`, "(2 3)"},
		{`(rest nil)`, "()"},
		{`(seq "ab")`, `("a" "b")`},
		{`(conj (list 1 2) 3 4)`, "(4 3 1 2)"},
		{`(conj [1 2] 3 4)`, "[1 2 3 4]"},
		{`(map (fn* (x) (* x 2)) (list 1 2 3))`, "(2 4 6)"},
		{`(apply - 10 (list 3))`, "7"},
	}
	for _, tt := range tests {
		if got := value.PrStr(evalStr(t, e, tt.src), true); got != tt.want {
			t.Errorf("eval(%q) = %q, want %q", tt.src, got, tt.want)
		}
	}
}

func TestAtomBuiltins(t *testing.T) {
	e := newTestEnv(t)
	evalStr(t, e, `(def! a (atom 5))`)
	if got := value.PrStr(evalStr(t, e, "(deref a)"), true); got != "5" {
		t.Fatalf("deref = %q, want %q", got, "5")
	}
	evalStr(t, e, `(reset! a 10)`)
	if got := value.PrStr(evalStr(t, e, "(deref a)"), true); got != "10" {
		t.Fatalf("deref after reset! = %q, want %q", got, "10")
	}
	evalStr(t, e, `(swap! a + 5)`)
	if got := value.PrStr(evalStr(t, e, "@a"), true); got != "15" {
		t.Fatalf("@a after swap! = %q, want %q", got, "15")
	}
}

func TestMapBuiltins(t *testing.T) {
	e := newTestEnv(t)
	tests := []struct {
		src  string
		want string
	}{
		{`(hash-map "a" 1 "b" 2)`, `{"a" 1 "b" 2}`},
		{`(map? (hash-map))`, "true"},
		{`(get (hash-map "a" 1) "a")`, "1"},
		{`(get (hash-map "a" 1) "z")`, "nil"},
		{`(get nil "a")`, "nil"},
		{`(contains? (hash-map "a" 1) "a")`, "true"},
		{`(contains? (hash-map "a" 1) "z")`, "false"},
		{`(dissoc (hash-map "a" 1 "b" 2) "a")`, `{"b" 2}`},
		{`(assoc (hash-map "a" 1) "b" 2)`, `{"a" 1 "b" 2}`},
	}
	for _, tt := range tests {
		if got := value.PrStr(evalStr(t, e, tt.src), true); got != tt.want {
			t.Errorf("eval(%q) = %q, want %q", tt.src, got, tt.want)
		}
	}
}

func TestTypePredicates(t *testing.T) {
	e := newTestEnv(t)
	tests := []struct {
		src  string
		want string
	}{
		{`(nil? nil)`, "true"},
		{`(true? true)`, "true"},
		{`(false? false)`, "true"},
		{`(symbol? 'a)`, "true"},
		{`(symbol "a")`, "a"},
		{`(keyword? :a)`, "true"},
		{`(keyword "a")`, ":a"},
		{`(string? "a")`, "true"},
		{`(number? 1)`, "true"},
		{`(fn? (fn* (x) x))`, "true"},
	}
	for _, tt := range tests {
		if got := value.PrStr(evalStr(t, e, tt.src), true); got != tt.want {
			t.Errorf("eval(%q) = %q, want %q", tt.src, got, tt.want)
		}
	}
}

func TestMetaBuiltins(t *testing.T) {
	e := newTestEnv(t)
	evalStr(t, e, `(def! f (with-meta (fn* (x) x) {"a" 1}))`)
	if got := value.PrStr(evalStr(t, e, "(meta f)"), true); got != `{"a" 1}` {
		t.Fatalf("meta = %q, want %q", got, `{"a" 1}`)
	}
}
