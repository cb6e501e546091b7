// Package cmd implements the malgo command-line surface: no arguments
// starts the interactive REPL, one or more arguments run a script file
// with *ARGV* bound to the rest.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/miDeb/malgo/internal/repl"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	evalExpr   string
	dumpTokens bool
	dumpAST    bool
)

var rootCmd = &cobra.Command{
	Use:   "malgo [script] [arg ...]",
	Short: "A Lisp interpreter",
	Long: `malgo is a Go implementation of the Make-A-Lisp (MAL) interpreter.

With no arguments, it starts an interactive REPL. With a script path, it
loads and runs that file, binding *ARGV* to the remaining arguments.`,
	Version:       Version,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runMain,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline code instead of reading a script file")
	rootCmd.Flags().BoolVar(&dumpTokens, "dump-tokens", false, "print the tokenizer's output instead of evaluating")
	rootCmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "print the reader's parsed form instead of evaluating")
}

func runMain(_ *cobra.Command, args []string) error {
	if dumpTokens || dumpAST {
		return runDump(evalExpr, args)
	}

	if evalExpr != "" {
		return runSource(evalExpr, args)
	}

	if len(args) == 0 {
		return repl.Run()
	}
	return runSource("", args)
}

func runSource(inline string, args []string) error {
	var err error
	if inline != "" {
		err = repl.RunSource(inline, args)
	} else {
		err = repl.RunScript(args[0], args[1:])
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		os.Exit(1)
	}
	return nil
}
