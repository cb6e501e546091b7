package eval

import (
	"github.com/miDeb/malgo/internal/env"
	"github.com/miDeb/malgo/internal/errs"
	"github.com/miDeb/malgo/internal/value"
)

func evalDef(items []value.Value, e *env.Environment) (value.Value, error) {
	if len(items) != 3 {
		return value.Nil, errs.Newf("def! requires exactly 2 arguments")
	}
	name := items[1]
	if name.Kind != value.KindSymbol {
		return value.Nil, errs.Newf("def! requires a symbol, got %s", value.PrStr(name, true))
	}
	v, err := Eval(items[2], e)
	if err != nil {
		return value.Nil, err
	}
	e.Set(name.Str, v)
	return v, nil
}

func evalLet(items []value.Value, e *env.Environment) (value.Value, *env.Environment, error) {
	if len(items) != 3 {
		return value.Nil, nil, errs.Newf("let* requires exactly 2 arguments")
	}
	bindings := value.Items(items[1])
	if !value.IsSeq(items[1]) || len(bindings)%2 != 0 {
		return value.Nil, nil, errs.Newf("let* bindings must be a sequence of name/value pairs")
	}
	child := env.NewEnclosed(e)
	for i := 0; i < len(bindings); i += 2 {
		name := bindings[i]
		if name.Kind != value.KindSymbol {
			return value.Nil, nil, errs.Newf("let* binding name must be a symbol, got %s", value.PrStr(name, true))
		}
		v, err := Eval(bindings[i+1], child)
		if err != nil {
			return value.Nil, nil, err
		}
		child.Set(name.Str, v)
	}
	return items[2], child, nil
}

func evalDo(items []value.Value, e *env.Environment) (value.Value, error) {
	if len(items) == 1 {
		return value.Nil, nil
	}
	for _, item := range items[1 : len(items)-1] {
		if _, err := Eval(item, e); err != nil {
			return value.Nil, err
		}
	}
	return items[len(items)-1], nil
}

// evalIf returns the branch to tail-loop into, and whether any branch was
// taken (false means the caller should return Nil directly).
func evalIf(items []value.Value, e *env.Environment) (value.Value, bool, error) {
	if len(items) != 3 && len(items) != 4 {
		return value.Nil, false, errs.Newf("if requires 2 or 3 arguments")
	}
	cond, err := Eval(items[1], e)
	if err != nil {
		return value.Nil, false, err
	}
	if value.Truthy(cond) {
		return items[2], true, nil
	}
	if len(items) == 4 {
		return items[3], true, nil
	}
	return value.Nil, false, nil
}

func evalFnStar(items []value.Value, e *env.Environment) (value.Value, error) {
	if len(items) != 3 {
		return value.Nil, errs.Newf("fn* requires exactly 2 arguments")
	}
	params := value.Items(items[1])
	if !value.IsSeq(items[1]) {
		return value.Nil, errs.Newf("fn* parameter list must be a sequence")
	}
	return value.Value{
		Kind: value.KindClosure,
		Closure: &value.Closure{
			Params: append([]value.Value(nil), params...),
			Body:   items[2],
			Env:    e,
		},
	}, nil
}

func evalDefMacro(items []value.Value, e *env.Environment) (value.Value, error) {
	if len(items) != 3 {
		return value.Nil, errs.Newf("defmacro! requires exactly 2 arguments")
	}
	name := items[1]
	if name.Kind != value.KindSymbol {
		return value.Nil, errs.Newf("defmacro! requires a symbol, got %s", value.PrStr(name, true))
	}
	v, err := Eval(items[2], e)
	if err != nil {
		return value.Nil, err
	}
	if v.Kind != value.KindClosure {
		return value.Nil, errs.Newf("defmacro! requires a function, got %s", value.PrStr(v, true))
	}
	macro := *v.Closure
	macro.IsMacro = true
	result := value.Value{Kind: value.KindClosure, Closure: &macro}
	e.Set(name.Str, result)
	return result, nil
}

func evalQuote(items []value.Value) (value.Value, error) {
	if len(items) != 2 {
		return value.Nil, errs.Newf("quote requires exactly 1 argument")
	}
	return items[1], nil
}

func evalQuasiquoteForm(items []value.Value) (value.Value, error) {
	if len(items) != 2 {
		return value.Nil, errs.Newf("quasiquote requires exactly 1 argument")
	}
	return quasiquote(items[1])
}

// isMacroCall reports whether ast is a non-empty List whose head symbol
// is bound in e to a macro Closure, returning that closure.
func isMacroCall(ast value.Value, e *env.Environment) (*value.Closure, bool) {
	if ast.Kind != value.KindList || len(ast.Seq.Items) == 0 {
		return nil, false
	}
	head := ast.Seq.Items[0]
	if head.Kind != value.KindSymbol {
		return nil, false
	}
	found := e.Find(head.Str)
	if found == nil {
		return nil, false
	}
	v, _ := found.Get(head.Str)
	if v.Kind != value.KindClosure || !v.Closure.IsMacro {
		return nil, false
	}
	return v.Closure, true
}

// macroExpand repeatedly expands ast while it is a macro call, evaluating
// the macro body against its params bound (unevaluated) to the call's
// remaining arguments. An error raised while binding params or evaluating
// the macro body is propagated rather than swallowed, so a failure inside
// a macro surfaces as that failure and not as a confusing downstream error
// from treating the unexpanded call as a normal invocation.
func macroExpand(ast value.Value, e *env.Environment) (value.Value, error) {
	for {
		macro, ok := isMacroCall(ast, e)
		if !ok {
			return ast, nil
		}
		childEnv, err := env.Bind(macro.Env, macro.Params, ast.Seq.Items[1:])
		if err != nil {
			return value.Nil, err
		}
		expanded, err := Eval(macro.Body, childEnv)
		if err != nil {
			return value.Nil, err
		}
		ast = expanded
	}
}

// evalTry evaluates items[1] (the body); on a thrown error with a
// catch* clause present, it returns the bound ast/env to tail-loop the
// handler into (done=false); otherwise it returns the result directly
// (done=true).
func evalTry(items []value.Value, e *env.Environment) (value.Value, *env.Environment, value.Value, bool, error) {
	if len(items) != 2 && len(items) != 3 {
		return value.Nil, nil, value.Nil, false, errs.Newf("try* requires 1 or 2 arguments")
	}
	result, err := Eval(items[1], e)
	if err == nil {
		return value.Nil, nil, result, true, nil
	}
	if len(items) != 3 {
		return value.Nil, nil, value.Nil, false, err
	}
	catch := value.Items(items[2])
	if !value.IsSeq(items[2]) || len(catch) != 3 || catch[0].Kind != value.KindSymbol || catch[0].Str != "catch*" {
		return value.Nil, nil, value.Nil, false, errs.Newf("try* catch clause must be (catch* name handler)")
	}
	name := catch[1]
	if name.Kind != value.KindSymbol {
		return value.Nil, nil, value.Nil, false, errs.Newf("catch* requires a symbol, got %s", value.PrStr(name, true))
	}
	thrown, ok := errs.AsValue(err)
	if !ok {
		thrown = value.String(err.Error())
	}
	child := env.NewEnclosed(e)
	child.Set(name.Str, thrown)
	return catch[2], child, value.Nil, false, nil
}
