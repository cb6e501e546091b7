package eval

import (
	"github.com/miDeb/malgo/internal/errs"
	"github.com/miDeb/malgo/internal/value"
)

// quasiquote implements the syntactic rewrite driving `quasiquote` and
// `quasiquoteexpand`; it produces a form that, when evaluated, yields
// form with unquote/splice-unquote escapes resolved.
func quasiquote(form value.Value) (value.Value, error) {
	if isTagged(form, "unquote") {
		if len(form.Seq.Items) < 2 {
			return value.Nil, errs.Newf("unquote requires an argument")
		}
		return form.Seq.Items[1], nil
	}
	switch form.Kind {
	case value.KindList:
		return quasiquoteFold(form.Seq.Items)
	case value.KindVec:
		folded, err := quasiquoteFold(form.Seq.Items)
		if err != nil {
			return value.Nil, err
		}
		return value.List([]value.Value{
			value.Symbol("vec"),
			folded,
		}), nil
	case value.KindMap, value.KindSymbol:
		return value.List([]value.Value{value.Symbol("quote"), form}), nil
	default:
		return form, nil
	}
}

func isTagged(v value.Value, sym string) bool {
	return v.Kind == value.KindList && len(v.Seq.Items) > 0 &&
		v.Seq.Items[0].Kind == value.KindSymbol && v.Seq.Items[0].Str == sym
}

// quasiquoteFold builds the rewrite right-to-left: each splice-unquote
// element concats its argument onto the accumulated tail, everything
// else conses its own quasiquoted rewrite onto it.
func quasiquoteFold(items []value.Value) (value.Value, error) {
	result := value.List(nil)
	for i := len(items) - 1; i >= 0; i-- {
		e := items[i]
		if isTagged(e, "splice-unquote") {
			if len(e.Seq.Items) < 2 {
				return value.Nil, errs.Newf("splice-unquote requires an argument")
			}
			result = value.List([]value.Value{value.Symbol("concat"), e.Seq.Items[1], result})
		} else {
			rewritten, err := quasiquote(e)
			if err != nil {
				return value.Nil, err
			}
			result = value.List([]value.Value{value.Symbol("cons"), rewritten, result})
		}
	}
	return result, nil
}
