package value

import "testing"

func TestArithmetic(t *testing.T) {
	add, err := Add(Number(2), Number(3))
	if err != nil || add.Num != 5 {
		t.Fatalf("Add(2, 3) = %v, %v", add, err)
	}
	sub, err := Sub(Number(5), Number(3))
	if err != nil || sub.Num != 2 {
		t.Fatalf("Sub(5, 3) = %v, %v", sub, err)
	}
	mul, err := Mul(Number(4), Number(3))
	if err != nil || mul.Num != 12 {
		t.Fatalf("Mul(4, 3) = %v, %v", mul, err)
	}
	div, err := Div(Number(12), Number(4))
	if err != nil || div.Num != 3 {
		t.Fatalf("Div(12, 4) = %v, %v", div, err)
	}
	if _, err := Div(Number(1), Number(0)); err == nil {
		t.Fatal("expected a division-by-zero error")
	}
	if _, err := Add(Number(1), String("x")); err == nil {
		t.Fatal("expected a type error for non-number operands")
	}
}

func TestArithmeticDereferencesAtoms(t *testing.T) {
	a := NewAtom(Number(10))
	sum, err := Add(a, Number(5))
	if err != nil || sum.Num != 15 {
		t.Fatalf("Add(atom(10), 5) = %v, %v", sum, err)
	}
}

func TestCompare(t *testing.T) {
	c, err := Compare(Number(1), Number(2))
	if err != nil || c != -1 {
		t.Fatalf("Compare(1, 2) = %d, %v", c, err)
	}
	if _, err := Compare(NewAtom(Number(1)), Number(2)); err == nil {
		t.Fatal("Compare should not dereference atoms, only arithmetic does")
	}
}
