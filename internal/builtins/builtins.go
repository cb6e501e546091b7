// Package builtins registers the core library §4.6 describes into a
// fresh top-level environment: the primitives evaluated MAL programs
// call directly, plus the `apply`, `eval` and `readline` marker
// callables the evaluator gives privileged treatment.
package builtins

import (
	"github.com/chzyer/readline"

	"github.com/miDeb/malgo/internal/env"
	"github.com/miDeb/malgo/internal/value"
)

func prim(name string, fn value.PrimitiveFn) value.Value {
	return value.Value{Kind: value.KindHostFn, Fn: &value.HostFn{Kind: value.HostPrimitive, Name: name, Prim: fn}}
}

// Register binds every core function into e, plus the `apply`, `eval`
// and `readline` marker callables. rl is the host line reader shared
// with the REPL driver (may be nil in non-interactive script mode,
// in which case calling `readline` reports an error).
func Register(e *env.Environment, rl *readline.Instance) {
	registerArithmetic(e)
	registerIO(e)
	registerSeq(e)
	registerAtoms(e)
	registerTypes(e)
	registerMaps(e)
	registerMeta(e)
	registerMisc(e)

	e.Set("apply", value.Value{Kind: value.KindHostFn, Fn: &value.HostFn{Kind: value.HostApply, Name: "apply"}})
	e.Set("eval", value.Value{Kind: value.KindHostFn, Fn: &value.HostFn{Kind: value.HostEval, Name: "eval", Env: e}})
	e.Set("readline", value.Value{Kind: value.KindHostFn, Fn: &value.HostFn{Kind: value.HostReadLine, Name: "readline", RL: rl}})
}
