package builtins

import (
	"github.com/miDeb/malgo/internal/env"
	"github.com/miDeb/malgo/internal/errs"
	"github.com/miDeb/malgo/internal/eval"
	"github.com/miDeb/malgo/internal/value"
)

func registerAtoms(e *env.Environment) {
	e.Set("atom", prim("atom", func(args []value.Value, _ *env.Environment) (value.Value, error) {
		if len(args) != 1 {
			return value.Nil, errs.Newf("atom requires exactly 1 argument")
		}
		return value.NewAtom(args[0]), nil
	}))
	e.Set("atom?", prim("atom?", pred1(func(v value.Value) bool { return v.Kind == value.KindAtom })))
	e.Set("deref", prim("deref", func(args []value.Value, _ *env.Environment) (value.Value, error) {
		if len(args) != 1 || args[0].Kind != value.KindAtom {
			return value.Nil, errs.Newf("deref requires an atom")
		}
		return args[0].AtomV.V, nil
	}))
	e.Set("reset!", prim("reset!", func(args []value.Value, _ *env.Environment) (value.Value, error) {
		if len(args) != 2 || args[0].Kind != value.KindAtom {
			return value.Nil, errs.Newf("reset! requires an atom and a value")
		}
		args[0].AtomV.V = args[1]
		return args[1], nil
	}))
	e.Set("swap!", prim("swap!", func(args []value.Value, env_ *env.Environment) (value.Value, error) {
		if len(args) < 2 || args[0].Kind != value.KindAtom {
			return value.Nil, errs.Newf("swap! requires an atom and a function")
		}
		callArgs := make([]value.Value, 0, len(args)-1)
		callArgs = append(callArgs, args[0].AtomV.V)
		callArgs = append(callArgs, args[2:]...)
		v, err := eval.ApplyValue(args[1], callArgs, env_)
		if err != nil {
			return value.Nil, err
		}
		args[0].AtomV.V = v
		return v, nil
	}))
}
