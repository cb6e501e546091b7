// Package env provides the constructors MAL's evaluator and core library
// use to create lexical scopes. The Environment type itself lives in
// package value (value.Env) so that Value and Env can refer to each other
// without an import cycle; this package is a thin, readable alias over it,
// the same way an interpreter package re-exporting its runtime's
// Environment type keeps callers from importing the runtime package
// directly.
package env

import (
	"fmt"

	"github.com/miDeb/malgo/internal/value"
)

// Environment is an alias for value.Env.
type Environment = value.Env

// New creates a root-level environment with no outer scope.
func New() *Environment {
	return value.NewEnv(nil)
}

// NewEnclosed creates an environment nested inside outer.
func NewEnclosed(outer *Environment) *Environment {
	return value.NewEnv(outer)
}

// Bind creates a new environment enclosed by outer, positionally binding
// params to args. A Symbol `&` in params binds the remaining args (as a
// fresh List) to the single parameter that follows it. Any non-Symbol
// parameter is an error.
func Bind(outer *Environment, params []value.Value, args []value.Value) (*Environment, error) {
	e := NewEnclosed(outer)
	i := 0
	for ; i < len(params); i++ {
		p := params[i]
		if p.Kind != value.KindSymbol {
			return nil, errNotASymbol(p)
		}
		if p.Str == "&" {
			i++
			if i >= len(params) {
				return nil, errNotASymbol(value.Nil)
			}
			rest := params[i]
			if rest.Kind != value.KindSymbol {
				return nil, errNotASymbol(rest)
			}
			var tail []value.Value
			if i-1 < len(args) {
				tail = append(tail, args[i-1:]...)
			}
			e.Set(rest.Str, value.List(tail))
			return e, nil
		}
		if i >= len(args) {
			return nil, errArity(len(params), len(args))
		}
		e.Set(p.Str, args[i])
	}
	if len(args) > len(params) {
		return nil, errArity(len(params), len(args))
	}
	return e, nil
}

func errNotASymbol(v value.Value) error {
	return fmt.Errorf("parameter must be a symbol, got %s", value.PrStr(v, true))
}

func errArity(want, got int) error {
	return fmt.Errorf("wrong number of arguments: expected %d, got %d", want, got)
}
