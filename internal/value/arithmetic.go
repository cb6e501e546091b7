package value

import "fmt"

// numberPair dereferences atoms on both sides and requires both operands
// to be Number, as §4.4 specifies for arithmetic.
func numberPair(a, b Value) (int32, int32, error) {
	a, b = derefAtom(a), derefAtom(b)
	if a.Kind != KindNumber || b.Kind != KindNumber {
		return 0, 0, fmt.Errorf("arithmetic requires numbers, got %s and %s", a.Kind, b.Kind)
	}
	return a.Num, b.Num, nil
}

// Add implements `+`.
func Add(a, b Value) (Value, error) {
	x, y, err := numberPair(a, b)
	if err != nil {
		return Nil, err
	}
	return Number(x + y), nil
}

// Sub implements `-`.
func Sub(a, b Value) (Value, error) {
	x, y, err := numberPair(a, b)
	if err != nil {
		return Nil, err
	}
	return Number(x - y), nil
}

// Mul implements `*`.
func Mul(a, b Value) (Value, error) {
	x, y, err := numberPair(a, b)
	if err != nil {
		return Nil, err
	}
	return Number(x * y), nil
}

// Div implements `/`; division by zero is an error.
func Div(a, b Value) (Value, error) {
	x, y, err := numberPair(a, b)
	if err != nil {
		return Nil, err
	}
	if y == 0 {
		return Nil, fmt.Errorf("division by zero")
	}
	return Number(x / y), nil
}

// Compare orders two Values; only defined on Number pairs per §4.4.
func Compare(a, b Value) (int, error) {
	if a.Kind != KindNumber || b.Kind != KindNumber {
		return 0, fmt.Errorf("comparison requires numbers, got %s and %s", a.Kind, b.Kind)
	}
	switch {
	case a.Num < b.Num:
		return -1, nil
	case a.Num > b.Num:
		return 1, nil
	default:
		return 0, nil
	}
}
