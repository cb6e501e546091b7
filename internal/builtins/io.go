package builtins

import (
	"fmt"
	"os"
	"strings"

	"github.com/miDeb/malgo/internal/env"
	"github.com/miDeb/malgo/internal/errs"
	"github.com/miDeb/malgo/internal/reader"
	"github.com/miDeb/malgo/internal/value"
)

func registerIO(e *env.Environment) {
	e.Set("pr-str", prim("pr-str", func(args []value.Value, _ *env.Environment) (value.Value, error) {
		return value.String(joinPrStr(args, true, " ")), nil
	}))
	e.Set("str", prim("str", func(args []value.Value, _ *env.Environment) (value.Value, error) {
		return value.String(joinPrStr(args, false, "")), nil
	}))
	e.Set("prn", prim("prn", func(args []value.Value, _ *env.Environment) (value.Value, error) {
		fmt.Println(joinPrStr(args, true, " "))
		return value.Nil, nil
	}))
	e.Set("println", prim("println", func(args []value.Value, _ *env.Environment) (value.Value, error) {
		fmt.Println(joinPrStr(args, false, " "))
		return value.Nil, nil
	}))
	e.Set("read-string", prim("read-string", func(args []value.Value, _ *env.Environment) (value.Value, error) {
		if len(args) != 1 || args[0].Kind != value.KindString {
			return value.Nil, errs.Newf("read-string requires 1 string argument")
		}
		v, err := reader.ReadStr(args[0].Str)
		if err == reader.ErrEmptyInput {
			return value.Nil, nil
		}
		if err != nil {
			return value.Nil, errs.Newf("%s", err.Error())
		}
		return v, nil
	}))
	e.Set("slurp", prim("slurp", func(args []value.Value, _ *env.Environment) (value.Value, error) {
		if len(args) != 1 || args[0].Kind != value.KindString {
			return value.Nil, errs.Newf("slurp requires 1 string argument")
		}
		data, err := os.ReadFile(args[0].Str)
		if err != nil {
			return value.Nil, errs.FromError(errs.WrapIO(err, "slurp"))
		}
		return value.String(string(data)), nil
	}))
}

func joinPrStr(args []value.Value, readable bool, sep string) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = value.PrStr(a, readable)
	}
	return strings.Join(parts, sep)
}
