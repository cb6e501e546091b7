// Package reader implements MAL's reader: a recursive-descent parser that
// turns a lexer.Lexer's token stream into a value.Value tree, the
// "read" half of read-eval-print.
package reader

import (
	"fmt"
	"strconv"

	"github.com/miDeb/malgo/internal/lexer"
	"github.com/miDeb/malgo/internal/token"
	"github.com/miDeb/malgo/internal/value"
)

// ErrEmptyInput is returned when the source holds nothing but whitespace
// and comments. The REPL driver treats this distinctly from a real parse
// error: it reprompts silently instead of printing anything.
var ErrEmptyInput = fmt.Errorf("empty input")

// Reader parses one or more forms out of a single chunk of source text.
type Reader struct {
	lex   *lexer.Lexer
	tok   token.Token
	err   error
	atEOF bool
}

// New creates a Reader over src and primes the first token.
func New(src string) *Reader {
	r := &Reader{lex: lexer.New(src)}
	r.advance()
	return r
}

func (r *Reader) advance() {
	tok, err := r.lex.Next()
	if err == lexer.ErrEOF {
		r.atEOF = true
		return
	}
	if err != nil {
		r.err = err
		return
	}
	r.tok = tok
}

// ReadStr parses exactly one top-level form from src.
func ReadStr(src string) (value.Value, error) {
	r := New(src)
	if r.atEOF {
		return value.Nil, ErrEmptyInput
	}
	return r.ReadForm()
}

// ReadForm parses a single form: an atom, a reader-macro shorthand, or a
// parenthesized/bracketed/braced collection.
func (r *Reader) ReadForm() (value.Value, error) {
	if r.err != nil {
		return value.Nil, r.err
	}
	if r.atEOF {
		return value.Nil, lexer.ErrEOF
	}

	switch r.tok.Kind {
	case token.LParen:
		return r.readSeq(token.RParen, value.List)
	case token.LBracket:
		return r.readSeq(token.RBracket, value.Vec)
	case token.LBrace:
		return r.readMap()
	case token.RParen, token.RBracket, token.RBrace:
		return value.Nil, fmt.Errorf("unexpected %q", r.tok.Kind)
	case token.Quote:
		return r.readWrapped("quote")
	case token.Backtick:
		return r.readWrapped("quasiquote")
	case token.Tilde:
		return r.readWrapped("unquote")
	case token.SpliceUnquote:
		return r.readWrapped("splice-unquote")
	case token.At:
		return r.readWrapped("deref")
	case token.Caret:
		return r.readMetaForm()
	default:
		return r.readAtom()
	}
}

func (r *Reader) readWrapped(sym string) (value.Value, error) {
	r.advance()
	v, err := r.ReadForm()
	if err != nil {
		return value.Nil, err
	}
	return value.List([]value.Value{value.Symbol(sym), v}), nil
}

// readMetaForm handles `^meta value`, which reads as (with-meta value meta)
// — the two forms are swapped from their source order.
func (r *Reader) readMetaForm() (value.Value, error) {
	r.advance()
	meta, err := r.ReadForm()
	if err != nil {
		return value.Nil, err
	}
	v, err := r.ReadForm()
	if err != nil {
		return value.Nil, err
	}
	return value.List([]value.Value{value.Symbol("with-meta"), v, meta}), nil
}

func (r *Reader) readSeq(closer token.Kind, wrap func([]value.Value) value.Value) (value.Value, error) {
	open := r.tok.Kind
	r.advance()
	var items []value.Value
	for {
		if r.err != nil {
			return value.Nil, r.err
		}
		if r.atEOF {
			return value.Nil, fmt.Errorf("expected %q, got EOF", closer)
		}
		if r.tok.Kind == closer {
			r.advance()
			return wrap(items), nil
		}
		if isCloser(r.tok.Kind) {
			return value.Nil, fmt.Errorf("unexpected %q while reading %q", r.tok.Kind, open)
		}
		v, err := r.ReadForm()
		if err != nil {
			return value.Nil, err
		}
		items = append(items, v)
	}
}

func (r *Reader) readMap() (value.Value, error) {
	r.advance()
	items := make(map[string]value.Value)
	for {
		if r.err != nil {
			return value.Nil, r.err
		}
		if r.atEOF {
			return value.Nil, fmt.Errorf("expected %q, got EOF", token.RBrace)
		}
		if r.tok.Kind == token.RBrace {
			r.advance()
			return value.Map(items), nil
		}
		key, err := r.ReadForm()
		if err != nil {
			return value.Nil, err
		}
		if key.Kind != value.KindString && key.Kind != value.KindKeyword {
			return value.Nil, fmt.Errorf("map keys must be strings or keywords, got %s", value.PrStr(key, true))
		}
		if r.atEOF {
			return value.Nil, fmt.Errorf("map is missing a value for key %s", value.PrStr(key, true))
		}
		val, err := r.ReadForm()
		if err != nil {
			return value.Nil, err
		}
		items[key.Str] = val
	}
}

func isCloser(k token.Kind) bool {
	return k == token.RParen || k == token.RBracket || k == token.RBrace
}

func (r *Reader) readAtom() (value.Value, error) {
	tok := r.tok
	r.advance()

	switch tok.Kind {
	case token.Number:
		n, err := strconv.ParseInt(tok.Literal, 10, 32)
		if err != nil {
			return value.Nil, fmt.Errorf("invalid number: %s", tok.Literal)
		}
		return value.Number(int32(n)), nil
	case token.String:
		return value.String(tok.Literal), nil
	case token.Keyword:
		return value.KeywordRaw(tok.Literal), nil
	case token.Ident:
		if n, ok := parseSignedInt(tok.Literal); ok {
			return value.Number(n), nil
		}
		switch tok.Literal {
		case "nil":
			return value.Nil, nil
		case "true":
			return value.Boolean(true), nil
		case "false":
			return value.Boolean(false), nil
		}
		return value.Symbol(tok.Literal), nil
	default:
		return value.Nil, fmt.Errorf("unexpected token %q", tok.Kind)
	}
}

// parseSignedInt recognizes the negative-number idents the lexer can't
// distinguish from symbols at scan time (a leading `-` or `+` isn't itself
// a digit, so `-5` comes through as an Ident, not a Number token).
func parseSignedInt(s string) (int32, bool) {
	if s == "" || s == "-" || s == "+" {
		return 0, false
	}
	if s[0] != '-' && s[0] != '+' {
		return 0, false
	}
	for _, c := range s[1:] {
		if c < '0' || c > '9' {
			return 0, false
		}
	}
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, false
	}
	return int32(n), true
}
