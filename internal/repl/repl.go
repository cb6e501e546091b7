// Package repl wires the reader, evaluator, printer and core library
// into both the interactive read-eval-print loop and the non-interactive
// script runner described by the CLI surface.
package repl

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/chzyer/readline"

	"github.com/miDeb/malgo/internal/builtins"
	"github.com/miDeb/malgo/internal/env"
	"github.com/miDeb/malgo/internal/errs"
	"github.com/miDeb/malgo/internal/eval"
	"github.com/miDeb/malgo/internal/lexer"
	"github.com/miDeb/malgo/internal/reader"
	"github.com/miDeb/malgo/internal/value"
)

const hostLanguage = "go"

// prelude is bootstrapped into the top-level environment before any user
// input is read. It is written in MAL itself, the way the original
// bootstraps `not`, `load-file` and `cond` from Lisp rather than as
// native builtins. None of the three forms refers to another, so the
// order only follows the original's.
const prelude = `
(def! not (fn* (a) (if a false true)))
(def! load-file (fn* (f) (eval (read-string (str "(do " (slurp f) "\nnil)")))))
(defmacro! cond (fn* (& xs) (if (> (count xs) 0) (list 'if (first xs) (if (> (count xs) 1) (nth xs 1) (throw "odd number of forms to cond")) (cons 'cond (rest (rest xs)))) nil)))
`

// New creates a top-level environment with the core library, the
// prelude, and the global bindings `*ARGV*` and `*host-language*`
// installed. rl is the host line reader bound to the `readline` builtin;
// it may be nil when running non-interactively.
func New(rl *readline.Instance, argv []string) (*env.Environment, error) {
	e := env.New()
	builtins.Register(e, rl)

	argvItems := make([]value.Value, len(argv))
	for i, a := range argv {
		argvItems[i] = value.String(a)
	}
	e.Set("*ARGV*", value.List(argvItems))
	e.Set("*host-language*", value.String(hostLanguage))

	if _, err := evalChunk(prelude, e); err != nil {
		return nil, fmt.Errorf("bootstrapping prelude: %w", err)
	}
	return e, nil
}

// evalChunk reads and evaluates every top-level form in src in sequence,
// returning the last result.
func evalChunk(src string, e *env.Environment) (value.Value, error) {
	r := reader.New(src)
	result := value.Nil
	read := 0
	for {
		form, err := r.ReadForm()
		if err == reader.ErrEmptyInput || err == lexer.ErrEOF {
			break
		}
		if err != nil {
			return value.Nil, errs.Newf("%s", err.Error())
		}
		read++
		result, err = eval.Eval(form, e)
		if err != nil {
			return value.Nil, err
		}
	}
	if read == 0 {
		return value.Nil, reader.ErrEmptyInput
	}
	return result, nil
}

// RunScript loads and executes path, with *ARGV* bound to args, printing
// nothing but an uncaught error. It returns a non-zero-worthy error on
// an uncaught throw.
func RunScript(path string, args []string) error {
	e, err := New(nil, args)
	if err != nil {
		return err
	}
	form := fmt.Sprintf("(load-file %s)", value.PrStr(value.String(path), true))
	_, err = evalChunk(form, e)
	if err != nil {
		return errs.FromError(err)
	}
	return nil
}

// RunSource evaluates src directly (the `--eval`/`-e` CLI flag), with
// *ARGV* bound to args. Unlike RunScript it does not go through
// load-file, so a single expression's result is available to evalChunk's
// caller but, matching RunScript, is not printed.
func RunSource(src string, args []string) error {
	e, err := New(nil, args)
	if err != nil {
		return err
	}
	if _, err := evalChunk(src, e); err != nil {
		return errs.FromError(err)
	}
	return nil
}

const historyFileName = "history.txt"

// Run starts the interactive REPL: prompt `user> `, best-effort history
// persistence, uncaught throws printed as `ERROR: <value>` with the loop
// resuming at the prompt.
func Run() error {
	historyPath := historyFilePath()

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "user> ",
		HistoryFile:     historyPath,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("initializing line editor: %w", err)
	}
	defer rl.Close()

	e, err := New(rl, nil)
	if err != nil {
		return err
	}

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if line == "" {
			continue
		}

		result, err := evalChunk(line, e)
		if err != nil {
			if errors.Is(err, reader.ErrEmptyInput) {
				continue
			}
			thrown, ok := errs.AsValue(err)
			if !ok {
				thrown = value.String(err.Error())
			}
			fmt.Printf("ERROR: %s\n", value.PrStr(thrown, true))
			continue
		}
		fmt.Println(value.PrStr(result, true))
	}
}

func historyFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return historyFileName
	}
	return filepath.Join(home, historyFileName)
}
