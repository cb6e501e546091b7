// Package eval implements MAL's evaluator: a tail-call-optimized
// trampoline over value.Value forms. It never recurses on a tail call —
// `let*`, `do`, `if` and Closure application all rewrite the ast/env pair
// in place and loop, the way a bytecode VM rewrites its program counter
// instead of growing the host call stack.
package eval

import (
	"github.com/miDeb/malgo/internal/env"
	"github.com/miDeb/malgo/internal/errs"
	"github.com/miDeb/malgo/internal/value"
)

// Eval evaluates ast in env, looping in place on every tail call instead
// of recursing.
func Eval(ast value.Value, e *env.Environment) (value.Value, error) {
	for {
		expanded, err := macroExpand(ast, e)
		if err != nil {
			return value.Nil, err
		}
		ast = expanded

		if ast.Kind != value.KindList {
			return evalNonList(ast, e)
		}
		items := ast.Seq.Items
		if len(items) == 0 {
			return ast, nil
		}

		head := items[0]
		if head.Kind == value.KindSymbol {
			switch head.Str {
			case "def!":
				return evalDef(items, e)
			case "let*":
				newAst, newEnv, err := evalLet(items, e)
				if err != nil {
					return value.Nil, err
				}
				ast, e = newAst, newEnv
				continue
			case "do":
				newAst, err := evalDo(items, e)
				if err != nil {
					return value.Nil, err
				}
				ast = newAst
				continue
			case "if":
				newAst, ok, err := evalIf(items, e)
				if err != nil {
					return value.Nil, err
				}
				if !ok {
					return value.Nil, nil
				}
				ast = newAst
				continue
			case "fn*":
				return evalFnStar(items, e)
			case "defmacro!":
				return evalDefMacro(items, e)
			case "quote":
				return evalQuote(items)
			case "quasiquote":
				newAst, err := evalQuasiquoteForm(items)
				if err != nil {
					return value.Nil, err
				}
				ast = newAst
				continue
			case "quasiquoteexpand":
				return evalQuasiquoteForm(items)
			case "macroexpand":
				if len(items) != 2 {
					return value.Nil, errs.Newf("macroexpand requires 1 argument")
				}
				return macroExpand(items[1], e)
			case "try*":
				newAst, newEnv, result, done, err := evalTry(items, e)
				if err != nil {
					return value.Nil, err
				}
				if done {
					return result, nil
				}
				ast, e = newAst, newEnv
				continue
			}
		}

		// Normal invocation: evaluate every element.
		fn, err := Eval(head, e)
		if err != nil {
			return value.Nil, err
		}
		args := make([]value.Value, 0, len(items)-1)
		for _, item := range items[1:] {
			v, err := Eval(item, e)
			if err != nil {
				return value.Nil, err
			}
			args = append(args, v)
		}

		fn, args = resolveApply(fn, args)

		switch fn.Kind {
		case value.KindHostFn:
			switch fn.Fn.Kind {
			case value.HostEval:
				if len(args) != 1 {
					return value.Nil, errs.Newf("eval requires 1 argument")
				}
				ast, e = args[0], fn.Fn.Env
				continue
			case value.HostReadLine:
				return callReadLine(fn.Fn, args)
			default:
				return fn.Fn.Prim(args, e)
			}
		case value.KindClosure:
			if fn.Closure.IsMacro {
				return value.Nil, errs.Newf("cannot call macro as a function")
			}
			childEnv, err := env.Bind(fn.Closure.Env, fn.Closure.Params, args)
			if err != nil {
				return value.Nil, err
			}
			ast, e = fn.Closure.Body, childEnv
			continue
		default:
			return value.Nil, errs.Newf("not a function: %s", value.PrStr(fn, true))
		}
	}
}

// ApplyValue calls fn with args without re-entering the trampoline in
// tail position: used by builtins (`map`, `swap!`) that need to
// call a Value as a function from inside a primitive rather than from
// the evaluator loop itself.
func ApplyValue(fn value.Value, args []value.Value, e *env.Environment) (value.Value, error) {
	fn, args = resolveApply(fn, args)
	switch fn.Kind {
	case value.KindHostFn:
		switch fn.Fn.Kind {
		case value.HostEval:
			if len(args) != 1 {
				return value.Nil, errs.Newf("eval requires 1 argument")
			}
			return Eval(args[0], fn.Fn.Env)
		case value.HostReadLine:
			return callReadLine(fn.Fn, args)
		default:
			return fn.Fn.Prim(args, e)
		}
	case value.KindClosure:
		if fn.Closure.IsMacro {
			return value.Nil, errs.Newf("cannot call macro as a function")
		}
		childEnv, err := env.Bind(fn.Closure.Env, fn.Closure.Params, args)
		if err != nil {
			return value.Nil, err
		}
		return Eval(fn.Closure.Body, childEnv)
	default:
		return value.Nil, errs.Newf("not a function: %s", value.PrStr(fn, true))
	}
}

// resolveApply implements the `apply` marker's argument splicing: while
// fn is the apply marker, drop it and, if more than one argument remains
// and the last is a List or Vec, splice its elements into the tail.
func resolveApply(fn value.Value, args []value.Value) (value.Value, []value.Value) {
	for fn.Kind == value.KindHostFn && fn.Fn.Kind == value.HostApply {
		if len(args) == 0 {
			return value.Nil, nil
		}
		next := args[0]
		rest := args[1:]
		if len(rest) > 0 && value.IsSeq(rest[len(rest)-1]) {
			spliced := make([]value.Value, 0, len(rest)-1+len(value.Items(rest[len(rest)-1])))
			spliced = append(spliced, rest[:len(rest)-1]...)
			spliced = append(spliced, value.Items(rest[len(rest)-1])...)
			rest = spliced
		}
		fn, args = next, rest
	}
	return fn, args
}

func callReadLine(fn *value.HostFn, args []value.Value) (value.Value, error) {
	if fn.RL == nil {
		return value.Nil, errs.Newf("readline is not available in this context")
	}
	prompt := ""
	if len(args) > 0 {
		prompt = value.PrStr(args[0], false)
	}
	if prompt != "" {
		fn.RL.SetPrompt(prompt)
	}
	line, err := fn.RL.Readline()
	if err != nil {
		return value.Nil, nil
	}
	fn.RL.SaveHistory(line)
	return value.String(line), nil
}

func evalNonList(ast value.Value, e *env.Environment) (value.Value, error) {
	switch ast.Kind {
	case value.KindSymbol:
		return e.Get(ast.Str)
	case value.KindVec:
		items := make([]value.Value, len(ast.Seq.Items))
		for i, item := range ast.Seq.Items {
			v, err := Eval(item, e)
			if err != nil {
				return value.Nil, err
			}
			items[i] = v
		}
		return value.Vec(items), nil
	case value.KindMap:
		items := make(map[string]value.Value, len(ast.MapV.Items))
		for k, item := range ast.MapV.Items {
			v, err := Eval(item, e)
			if err != nil {
				return value.Nil, err
			}
			items[k] = v
		}
		return value.Map(items), nil
	default:
		return ast, nil
	}
}
