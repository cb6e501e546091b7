package builtins

import (
	"github.com/miDeb/malgo/internal/env"
	"github.com/miDeb/malgo/internal/errs"
	"github.com/miDeb/malgo/internal/eval"
	"github.com/miDeb/malgo/internal/value"
)

func registerSeq(e *env.Environment) {
	e.Set("list", prim("list", func(args []value.Value, _ *env.Environment) (value.Value, error) {
		return value.List(append([]value.Value(nil), args...)), nil
	}))
	e.Set("list?", prim("list?", pred1(func(v value.Value) bool { return v.Kind == value.KindList })))
	e.Set("vector", prim("vector", func(args []value.Value, _ *env.Environment) (value.Value, error) {
		return value.Vec(append([]value.Value(nil), args...)), nil
	}))
	e.Set("vector?", prim("vector?", pred1(func(v value.Value) bool { return v.Kind == value.KindVec })))
	e.Set("sequential?", prim("sequential?", pred1(value.IsSeq)))
	e.Set("empty?", prim("empty?", func(args []value.Value, _ *env.Environment) (value.Value, error) {
		if len(args) != 1 {
			return value.Nil, errs.Newf("empty? requires exactly 1 argument")
		}
		if !value.IsSeq(args[0]) {
			return value.Nil, errs.Newf("empty? requires a sequence, got %s", value.PrStr(args[0], true))
		}
		return value.Boolean(len(args[0].Seq.Items) == 0), nil
	}))
	e.Set("count", prim("count", func(args []value.Value, _ *env.Environment) (value.Value, error) {
		if len(args) != 1 {
			return value.Nil, errs.Newf("count requires exactly 1 argument")
		}
		if args[0].Kind == value.KindNil {
			return value.Number(0), nil
		}
		if !value.IsSeq(args[0]) {
			return value.Nil, errs.Newf("count requires a sequence, got %s", value.PrStr(args[0], true))
		}
		return value.Number(int32(len(args[0].Seq.Items))), nil
	}))
	e.Set("cons", prim("cons", func(args []value.Value, _ *env.Environment) (value.Value, error) {
		if len(args) != 2 || !value.IsSeq(args[1]) {
			return value.Nil, errs.Newf("cons requires a value and a sequence")
		}
		items := make([]value.Value, 0, len(args[1].Seq.Items)+1)
		items = append(items, args[0])
		items = append(items, args[1].Seq.Items...)
		return value.List(items), nil
	}))
	e.Set("concat", prim("concat", func(args []value.Value, _ *env.Environment) (value.Value, error) {
		var items []value.Value
		for _, a := range args {
			if !value.IsSeq(a) {
				return value.Nil, errs.Newf("concat requires sequences, got %s", value.PrStr(a, true))
			}
			items = append(items, a.Seq.Items...)
		}
		return value.List(items), nil
	}))
	e.Set("vec", prim("vec", func(args []value.Value, _ *env.Environment) (value.Value, error) {
		if len(args) != 1 || !value.IsSeq(args[0]) {
			return value.Nil, errs.Newf("vec requires a sequence")
		}
		return value.Vec(append([]value.Value(nil), args[0].Seq.Items...)), nil
	}))
	e.Set("nth", prim("nth", func(args []value.Value, _ *env.Environment) (value.Value, error) {
		if len(args) != 2 || !value.IsSeq(args[0]) || args[1].Kind != value.KindNumber {
			return value.Nil, errs.Newf("nth requires a sequence and an index")
		}
		items := args[0].Seq.Items
		idx := int(args[1].Num)
		if idx < 0 || idx >= len(items) {
			return value.Nil, errs.Newf("index out of bounds: length is %d, got %d", len(items), idx)
		}
		return items[idx], nil
	}))
	e.Set("first", prim("first", func(args []value.Value, _ *env.Environment) (value.Value, error) {
		if len(args) != 1 {
			return value.Nil, errs.Newf("first requires exactly 1 argument")
		}
		if args[0].Kind == value.KindNil {
			return value.Nil, nil
		}
		if !value.IsSeq(args[0]) {
			return value.Nil, errs.Newf("first requires a sequence, got %s", value.PrStr(args[0], true))
		}
		if len(args[0].Seq.Items) == 0 {
			return value.Nil, nil
		}
		return args[0].Seq.Items[0], nil
	}))
	e.Set("rest", prim("rest", func(args []value.Value, _ *env.Environment) (value.Value, error) {
		if len(args) != 1 {
			return value.Nil, errs.Newf("rest requires exactly 1 argument")
		}
		if args[0].Kind == value.KindNil {
			return value.List(nil), nil
		}
		if !value.IsSeq(args[0]) {
			return value.Nil, errs.Newf("rest requires a sequence, got %s", value.PrStr(args[0], true))
		}
		items := args[0].Seq.Items
		if len(items) == 0 {
			return value.List(nil), nil
		}
		return value.List(append([]value.Value(nil), items[1:]...)), nil
	}))
	e.Set("seq", prim("seq", builtinSeq))
	e.Set("conj", prim("conj", builtinConj))
	e.Set("map", prim("map", func(args []value.Value, env_ *env.Environment) (value.Value, error) {
		if len(args) != 2 || !value.IsSeq(args[1]) {
			return value.Nil, errs.Newf("map requires a function and a sequence")
		}
		src := args[1].Seq.Items
		out := make([]value.Value, len(src))
		for i, item := range src {
			v, err := eval.ApplyValue(args[0], []value.Value{item}, env_)
			if err != nil {
				return value.Nil, err
			}
			out[i] = v
		}
		return value.List(out), nil
	}))
}

func pred1(f func(value.Value) bool) value.PrimitiveFn {
	return func(args []value.Value, _ *env.Environment) (value.Value, error) {
		if len(args) != 1 {
			return value.Nil, errs.Newf("requires exactly 1 argument")
		}
		return value.Boolean(f(args[0])), nil
	}
}

func builtinSeq(args []value.Value, _ *env.Environment) (value.Value, error) {
	if len(args) != 1 {
		return value.Nil, errs.Newf("seq requires exactly 1 argument")
	}
	v := args[0]
	switch {
	case v.Kind == value.KindNil:
		return value.Nil, nil
	case v.Kind == value.KindList:
		if len(v.Seq.Items) == 0 {
			return value.Nil, nil
		}
		return v, nil
	case v.Kind == value.KindVec:
		if len(v.Seq.Items) == 0 {
			return value.Nil, nil
		}
		return value.List(append([]value.Value(nil), v.Seq.Items...)), nil
	case v.Kind == value.KindString:
		if v.Str == "" {
			return value.Nil, nil
		}
		items := make([]value.Value, 0, len(v.Str))
		for _, r := range v.Str {
			items = append(items, value.String(string(r)))
		}
		return value.List(items), nil
	default:
		return value.Nil, errs.Newf("seq requires a sequence, string or nil, got %s", value.PrStr(v, true))
	}
}

func builtinConj(args []value.Value, _ *env.Environment) (value.Value, error) {
	if len(args) < 1 || !value.IsSeq(args[0]) {
		return value.Nil, errs.Newf("conj requires a sequence")
	}
	base := args[0]
	extra := args[1:]
	switch base.Kind {
	case value.KindList:
		items := make([]value.Value, 0, len(extra)+len(base.Seq.Items))
		for i := len(extra) - 1; i >= 0; i-- {
			items = append(items, extra[i])
		}
		items = append(items, base.Seq.Items...)
		return value.List(items), nil
	default: // Vec
		items := make([]value.Value, 0, len(base.Seq.Items)+len(extra))
		items = append(items, base.Seq.Items...)
		items = append(items, extra...)
		return value.Vec(items), nil
	}
}
