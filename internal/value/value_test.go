package value

import "testing"

func TestEnvLookup(t *testing.T) {
	root := NewEnv(nil)
	root.Set("x", Number(1))
	child := NewEnv(root)
	child.Set("y", Number(2))

	if v, err := child.Get("x"); err != nil || v.Num != 1 {
		t.Fatalf("child.Get(x) = %v, %v", v, err)
	}
	if v, err := child.Get("y"); err != nil || v.Num != 2 {
		t.Fatalf("child.Get(y) = %v, %v", v, err)
	}
	if _, err := child.Get("z"); err == nil {
		t.Fatal("expected an error looking up an unbound name")
	}
	if child.Find("x") != root {
		t.Fatal("Find(x) should resolve to the root frame")
	}
}

func TestTruthy(t *testing.T) {
	cases := []struct {
		v    Value
		want bool
	}{
		{Nil, false},
		{Boolean(false), false},
		{Boolean(true), true},
		{Number(0), true},
		{String(""), true},
		{List(nil), true},
	}
	for _, c := range cases {
		if got := Truthy(c.v); got != c.want {
			t.Errorf("Truthy(%s) = %v, want %v", PrStr(c.v, true), got, c.want)
		}
	}
}

func TestKeywordRoundTrip(t *testing.T) {
	kw := Keyword("foo")
	if !IsKeywordKey(kw.Str) {
		t.Fatalf("keyword string %q should carry the sentinel prefix", kw.Str)
	}
	if got := PrStr(kw, true); got != ":foo" {
		t.Fatalf("PrStr(keyword) = %q, want %q", got, ":foo")
	}
}
