package builtins

import (
	"github.com/miDeb/malgo/internal/env"
	"github.com/miDeb/malgo/internal/errs"
	"github.com/miDeb/malgo/internal/value"
)

func registerArithmetic(e *env.Environment) {
	e.Set("+", prim("+", binOp(value.Add)))
	e.Set("-", prim("-", binOp(value.Sub)))
	e.Set("*", prim("*", binOp(value.Mul)))
	e.Set("/", prim("/", binOp(value.Div)))

	e.Set("<", prim("<", cmpOp(func(c int) bool { return c < 0 })))
	e.Set("<=", prim("<=", cmpOp(func(c int) bool { return c <= 0 })))
	e.Set(">", prim(">", cmpOp(func(c int) bool { return c > 0 })))
	e.Set(">=", prim(">=", cmpOp(func(c int) bool { return c >= 0 })))

	e.Set("=", prim("=", func(args []value.Value, _ *env.Environment) (value.Value, error) {
		if len(args) != 2 {
			return value.Nil, errs.Newf("= requires exactly 2 arguments")
		}
		return value.Boolean(value.Eq(args[0], args[1])), nil
	}))
}

func binOp(op func(a, b value.Value) (value.Value, error)) value.PrimitiveFn {
	return func(args []value.Value, _ *env.Environment) (value.Value, error) {
		if len(args) != 2 {
			return value.Nil, errs.Newf("expected 2 arguments, got %d", len(args))
		}
		v, err := op(args[0], args[1])
		if err != nil {
			return value.Nil, errs.FromError(err)
		}
		return v, nil
	}
}

func cmpOp(accept func(cmp int) bool) value.PrimitiveFn {
	return func(args []value.Value, _ *env.Environment) (value.Value, error) {
		if len(args) != 2 {
			return value.Nil, errs.Newf("expected 2 arguments, got %d", len(args))
		}
		c, err := value.Compare(args[0], args[1])
		if err != nil {
			return value.Nil, errs.FromError(err)
		}
		return value.Boolean(accept(c)), nil
	}
}
