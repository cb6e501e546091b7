package builtins

import (
	"github.com/miDeb/malgo/internal/env"
	"github.com/miDeb/malgo/internal/errs"
	"github.com/miDeb/malgo/internal/value"
)

func registerMeta(e *env.Environment) {
	e.Set("meta", prim("meta", func(args []value.Value, _ *env.Environment) (value.Value, error) {
		if len(args) != 1 {
			return value.Nil, errs.Newf("meta requires exactly 1 argument")
		}
		m, err := getMeta(args[0])
		if err != nil {
			return value.Nil, err
		}
		return m, nil
	}))
	e.Set("with-meta", prim("with-meta", func(args []value.Value, _ *env.Environment) (value.Value, error) {
		if len(args) != 2 {
			return value.Nil, errs.Newf("with-meta requires exactly 2 arguments")
		}
		return withMeta(args[0], args[1])
	}))
}

func getMeta(v value.Value) (value.Value, error) {
	switch v.Kind {
	case value.KindList, value.KindVec:
		return v.Seq.Meta, nil
	case value.KindMap:
		return v.MapV.Meta, nil
	case value.KindHostFn:
		return v.Fn.Meta, nil
	case value.KindClosure:
		return v.Closure.Meta, nil
	default:
		return value.Nil, errs.Newf("meta is not defined on %s", value.PrStr(v, true))
	}
}

// withMeta returns a copy of v carrying meta, sharing the original's
// underlying storage — the copy is shallow, matching `assoc`
// and friends, which likewise never mutate their receiver in place.
func withMeta(v, meta value.Value) (value.Value, error) {
	switch v.Kind {
	case value.KindList, value.KindVec:
		seq := *v.Seq
		seq.Meta = meta
		v.Seq = &seq
		return v, nil
	case value.KindMap:
		m := *v.MapV
		m.Meta = meta
		v.MapV = &m
		return v, nil
	case value.KindHostFn:
		fn := *v.Fn
		fn.Meta = meta
		v.Fn = &fn
		return v, nil
	case value.KindClosure:
		c := *v.Closure
		c.Meta = meta
		v.Closure = &c
		return v, nil
	default:
		return value.Nil, errs.Newf("with-meta is not defined on %s", value.PrStr(v, true))
	}
}
