package builtins

import (
	"time"

	"github.com/miDeb/malgo/internal/env"
	"github.com/miDeb/malgo/internal/errs"
	"github.com/miDeb/malgo/internal/value"
)

func registerMisc(e *env.Environment) {
	e.Set("throw", prim("throw", func(args []value.Value, _ *env.Environment) (value.Value, error) {
		if len(args) != 1 {
			return value.Nil, errs.Newf("throw requires exactly 1 argument")
		}
		return value.Nil, errs.New(args[0])
	}))
	e.Set("time-ms", prim("time-ms", func(args []value.Value, _ *env.Environment) (value.Value, error) {
		if len(args) != 0 {
			return value.Nil, errs.Newf("time-ms takes no arguments")
		}
		return value.Number(int32(time.Now().UnixMilli())), nil
	}))
}
