package builtins

import (
	"github.com/miDeb/malgo/internal/env"
	"github.com/miDeb/malgo/internal/errs"
	"github.com/miDeb/malgo/internal/value"
)

// mapKey reconstructs the Value a map key string denotes: a Keyword if it
// carries the sentinel prefix, a String otherwise.
func mapKey(k string) value.Value {
	if value.IsKeywordKey(k) {
		return value.KeywordRaw(k)
	}
	return value.String(k)
}

func registerMaps(e *env.Environment) {
	e.Set("hash-map", prim("hash-map", func(args []value.Value, _ *env.Environment) (value.Value, error) {
		items, err := pairsToMap(args)
		if err != nil {
			return value.Nil, err
		}
		return value.Map(items), nil
	}))
	e.Set("map?", prim("map?", pred1(func(v value.Value) bool { return v.Kind == value.KindMap })))
	e.Set("assoc", prim("assoc", func(args []value.Value, _ *env.Environment) (value.Value, error) {
		if len(args) < 1 || args[0].Kind != value.KindMap {
			return value.Nil, errs.Newf("assoc requires a map")
		}
		out := make(map[string]value.Value, len(args[0].MapV.Items)+len(args)-1)
		for k, v := range args[0].MapV.Items {
			out[k] = v
		}
		extra, err := pairsToMap(args[1:])
		if err != nil {
			return value.Nil, err
		}
		for k, v := range extra {
			out[k] = v
		}
		return value.Map(out), nil
	}))
	e.Set("dissoc", prim("dissoc", func(args []value.Value, _ *env.Environment) (value.Value, error) {
		if len(args) < 1 || args[0].Kind != value.KindMap {
			return value.Nil, errs.Newf("dissoc requires a map")
		}
		out := make(map[string]value.Value, len(args[0].MapV.Items))
		for k, v := range args[0].MapV.Items {
			out[k] = v
		}
		for _, k := range args[1:] {
			if k.Kind != value.KindString && k.Kind != value.KindKeyword {
				return value.Nil, errs.Newf("dissoc keys must be strings or keywords")
			}
			delete(out, k.Str)
		}
		return value.Map(out), nil
	}))
	e.Set("get", prim("get", func(args []value.Value, _ *env.Environment) (value.Value, error) {
		if len(args) != 2 {
			return value.Nil, errs.Newf("get requires exactly 2 arguments")
		}
		if args[0].Kind == value.KindNil {
			return value.Nil, nil
		}
		if args[0].Kind != value.KindMap {
			return value.Nil, errs.Newf("get requires a map or nil, got %s", value.PrStr(args[0], true))
		}
		if args[1].Kind != value.KindString && args[1].Kind != value.KindKeyword {
			return value.Nil, errs.Newf("get key must be a string or keyword")
		}
		v, ok := args[0].MapV.Items[args[1].Str]
		if !ok {
			return value.Nil, nil
		}
		return v, nil
	}))
	e.Set("contains?", prim("contains?", func(args []value.Value, _ *env.Environment) (value.Value, error) {
		if len(args) != 2 || args[0].Kind != value.KindMap {
			return value.Nil, errs.Newf("contains? requires a map and a key")
		}
		_, ok := args[0].MapV.Items[args[1].Str]
		return value.Boolean(ok), nil
	}))
	e.Set("keys", prim("keys", func(args []value.Value, _ *env.Environment) (value.Value, error) {
		if len(args) != 1 || args[0].Kind != value.KindMap {
			return value.Nil, errs.Newf("keys requires a map")
		}
		items := make([]value.Value, 0, len(args[0].MapV.Items))
		for k := range args[0].MapV.Items {
			items = append(items, mapKey(k))
		}
		return value.List(items), nil
	}))
	e.Set("vals", prim("vals", func(args []value.Value, _ *env.Environment) (value.Value, error) {
		if len(args) != 1 || args[0].Kind != value.KindMap {
			return value.Nil, errs.Newf("vals requires a map")
		}
		items := make([]value.Value, 0, len(args[0].MapV.Items))
		for _, v := range args[0].MapV.Items {
			items = append(items, v)
		}
		return value.List(items), nil
	}))
}

func pairsToMap(args []value.Value) (map[string]value.Value, error) {
	if len(args)%2 != 0 {
		return nil, errs.Newf("hash-map requires an even number of arguments")
	}
	items := make(map[string]value.Value, len(args)/2)
	for i := 0; i < len(args); i += 2 {
		k := args[i]
		if k.Kind != value.KindString && k.Kind != value.KindKeyword {
			return nil, errs.Newf("map keys must be strings or keywords, got %s", value.PrStr(k, true))
		}
		items[k.Str] = args[i+1]
	}
	return items, nil
}
