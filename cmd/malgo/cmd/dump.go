package cmd

import (
	"fmt"
	"os"

	"github.com/miDeb/malgo/internal/lexer"
	"github.com/miDeb/malgo/internal/reader"
	"github.com/miDeb/malgo/internal/value"
)

// runDump implements --dump-tokens/--dump-ast: print the tokenizer's or
// reader's output for the given source instead of evaluating it.
func runDump(evalExpr string, args []string) error {
	input, err := dumpInput(evalExpr, args)
	if err != nil {
		return err
	}

	if dumpTokens {
		if err := dumpTokensOf(input); err != nil {
			return err
		}
	}
	if dumpAST {
		if err := dumpASTOf(input); err != nil {
			return err
		}
	}
	return nil
}

func dumpInput(evalExpr string, args []string) (string, error) {
	if evalExpr != "" {
		return evalExpr, nil
	}
	if len(args) == 1 {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		return string(content), nil
	}
	return "", fmt.Errorf("either provide a file path or use -e for inline code")
}

func dumpTokensOf(input string) error {
	l := lexer.New(input)
	for {
		tok, err := l.Next()
		if err == lexer.ErrEOF {
			return nil
		}
		if err != nil {
			return err
		}
		if tok.Literal == "" {
			fmt.Printf("%s\n", tok.Kind)
		} else {
			fmt.Printf("%s %q\n", tok.Kind, tok.Literal)
		}
	}
}

func dumpASTOf(input string) error {
	r := reader.New(input)
	for {
		form, err := r.ReadForm()
		if err == lexer.ErrEOF {
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Println(value.PrStr(form, true))
	}
}
