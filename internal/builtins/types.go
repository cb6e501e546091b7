package builtins

import (
	"github.com/miDeb/malgo/internal/env"
	"github.com/miDeb/malgo/internal/errs"
	"github.com/miDeb/malgo/internal/value"
)

func registerTypes(e *env.Environment) {
	e.Set("nil?", prim("nil?", pred1(func(v value.Value) bool { return v.Kind == value.KindNil })))
	e.Set("true?", prim("true?", pred1(func(v value.Value) bool { return v.Kind == value.KindBool && v.Bool })))
	e.Set("false?", prim("false?", pred1(func(v value.Value) bool { return v.Kind == value.KindBool && !v.Bool })))
	e.Set("symbol", prim("symbol", func(args []value.Value, _ *env.Environment) (value.Value, error) {
		if len(args) != 1 || args[0].Kind != value.KindString {
			return value.Nil, errs.Newf("symbol requires a string argument")
		}
		return value.Symbol(args[0].Str), nil
	}))
	e.Set("symbol?", prim("symbol?", pred1(func(v value.Value) bool { return v.Kind == value.KindSymbol })))
	e.Set("keyword", prim("keyword", func(args []value.Value, _ *env.Environment) (value.Value, error) {
		if len(args) != 1 {
			return value.Nil, errs.Newf("keyword requires exactly 1 argument")
		}
		if args[0].Kind == value.KindKeyword {
			return args[0], nil
		}
		if args[0].Kind != value.KindString {
			return value.Nil, errs.Newf("keyword requires a string argument")
		}
		return value.Keyword(args[0].Str), nil
	}))
	e.Set("keyword?", prim("keyword?", pred1(func(v value.Value) bool { return v.Kind == value.KindKeyword })))
	e.Set("string?", prim("string?", pred1(func(v value.Value) bool { return v.Kind == value.KindString })))
	e.Set("number?", prim("number?", pred1(func(v value.Value) bool { return v.Kind == value.KindNumber })))
	e.Set("fn?", prim("fn?", pred1(value.IsCallable)))
	e.Set("macro?", prim("macro?", pred1(func(v value.Value) bool {
		return v.Kind == value.KindClosure && v.Closure.IsMacro
	})))
}
