// Package value defines Value, the tagged sum type every MAL runtime value
// belongs to, the lexical Env it is stored in, and the primitive operations
// (equality, ordering, arithmetic) the evaluator and core library build on.
//
// Value is modeled as a single struct carrying a Kind discriminator rather
// than as an interface with one implementation per variant: dispatch is by
// switching on Kind, not by subtype polymorphism. All Value instances are
// cheap to copy — sequences, maps, atoms, closures and host functions are
// held behind pointers/slices/maps, so copying a Value only copies a small
// header and shares the underlying storage.
package value

import (
	"fmt"

	"github.com/chzyer/readline"
)

// Kind discriminates the variant a Value holds.
type Kind uint8

const (
	KindNil Kind = iota
	KindBool
	KindNumber
	KindString
	KindSymbol
	KindKeyword
	KindList
	KindVec
	KindMap
	KindAtom
	KindHostFn
	KindClosure
)

func (k Kind) String() string {
	switch k {
	case KindNil:
		return "nil"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindSymbol:
		return "symbol"
	case KindKeyword:
		return "keyword"
	case KindList:
		return "list"
	case KindVec:
		return "vector"
	case KindMap:
		return "map"
	case KindAtom:
		return "atom"
	case KindHostFn:
		return "function"
	case KindClosure:
		return "function"
	default:
		return "unknown"
	}
}

// KeywordSentinel is the code point (U+029E, two bytes in UTF-8) prefixed
// to keyword literals so they can share the string-keyed Map namespace
// while staying distinguishable from plain strings on output. The lexer's
// readKeyword is where it is introduced.
const KeywordSentinel = 'ʞ'

// Value is a single MAL runtime value. Only the field(s) matching Kind are
// meaningful; the rest are zero.
type Value struct {
	Kind    Kind
	Bool    bool
	Num     int32
	Str     string // String, Symbol, Keyword (keyword text includes the sentinel prefix)
	Seq     *Seq   // List, Vec
	MapV    *MapVal
	AtomV   *Atom
	Fn      *HostFn
	Closure *Closure
}

// Seq backs List and Vec values. Both variants share this representation
// and compare equal element-wise; only the print brackets differ.
type Seq struct {
	Items []Value
	Meta  Value
}

// MapVal backs Map values.
type MapVal struct {
	Items map[string]Value
	Meta  Value
}

// Atom is a mutable, shared reference cell: the sole user-visible mutation
// primitive in the language.
type Atom struct {
	V Value
}

// HostFnKind distinguishes the privileged marker host functions from
// ordinary by-pointer primitives.
type HostFnKind uint8

const (
	// HostPrimitive is an ordinary native callable.
	HostPrimitive HostFnKind = iota
	// HostApply is the `apply` marker: the evaluator splices its last
	// argument (if a sequence) into the argument list before dispatching
	// on the new head.
	HostApply
	// HostEval is the `eval` marker: carries the environment eval was
	// bound against, and the evaluator re-enters the trampoline against
	// it instead of the caller's environment.
	HostEval
	// HostReadLine is the `readline` marker: borrows the host line
	// reader for the duration of one call.
	HostReadLine
)

// PrimitiveFn is the signature of a by-pointer native callable.
type PrimitiveFn func(args []Value, env *Env) (Value, error)

// HostFn is a native callable. Apply, Eval and ReadLine are tagged marker
// variants because the evaluator needs privileged behavior for them
// (argument splicing, environment swap, borrowing the host reader) that an
// ordinary primitive cannot express.
type HostFn struct {
	Kind HostFnKind
	Name string // display name; for Primitive, also its identity for equality
	Prim PrimitiveFn
	Env  *Env              // HostEval: the captured environment
	RL   *readline.Instance // HostReadLine: the borrowed host reader
	Meta Value
}

// Closure is a user-defined function: its parameter list (Symbols, with an
// optional `&rest` marker), its body AST, the environment it closed over,
// and whether it is only callable via macro expansion.
type Closure struct {
	Params  []Value
	Body    Value
	Env     *Env
	IsMacro bool
	Meta    Value
}

// Nil is the canonical absent value.
var Nil = Value{Kind: KindNil}

// Boolean returns a boolean Value.
func Boolean(b bool) Value { return Value{Kind: KindBool, Bool: b} }

// Number returns an integer Value.
func Number(n int32) Value { return Value{Kind: KindNumber, Num: n} }

// String returns a string Value.
func String(s string) Value { return Value{Kind: KindString, Str: s} }

// Symbol returns a symbol Value.
func Symbol(name string) Value { return Value{Kind: KindSymbol, Str: name} }

// Keyword returns a keyword Value given its name without the leading `:`.
func Keyword(name string) Value {
	return Value{Kind: KindKeyword, Str: string(KeywordSentinel) + name}
}

// KeywordRaw wraps an already-sentinel-prefixed keyword string (as produced
// by the lexer or found as a Map key) into a Value.
func KeywordRaw(raw string) Value { return Value{Kind: KindKeyword, Str: raw} }

// IsKeywordKey reports whether a map-key string denotes a keyword.
func IsKeywordKey(s string) bool {
	prefix := string(KeywordSentinel)
	return len(s) >= len(prefix) && s[:len(prefix)] == prefix
}

// List returns a List Value over items (items is taken by reference).
func List(items []Value) Value { return Value{Kind: KindList, Seq: &Seq{Items: items, Meta: Nil}} }

// Vec returns a Vec Value over items (items is taken by reference).
func Vec(items []Value) Value { return Value{Kind: KindVec, Seq: &Seq{Items: items, Meta: Nil}} }

// Map returns a Map Value over items (items is taken by reference).
func Map(items map[string]Value) Value {
	return Value{Kind: KindMap, MapV: &MapVal{Items: items, Meta: Nil}}
}

// NewAtom returns an Atom Value holding v.
func NewAtom(v Value) Value { return Value{Kind: KindAtom, AtomV: &Atom{V: v}} }

// IsSeq reports whether v is a List or Vec.
func IsSeq(v Value) bool { return v.Kind == KindList || v.Kind == KindVec }

// Items returns the backing slice of a List or Vec; nil for anything else.
func Items(v Value) []Value {
	if !IsSeq(v) {
		return nil
	}
	return v.Seq.Items
}

// Truthy reports whether v is considered true in an `if` condition:
// everything except Bool(false) and Nil.
func Truthy(v Value) bool {
	return !(v.Kind == KindNil || (v.Kind == KindBool && !v.Bool))
}

// IsCallable reports whether v can appear as the head of a normal
// invocation: a HostFn, or a non-macro Closure.
func IsCallable(v Value) bool {
	if v.Kind == KindHostFn {
		return true
	}
	return v.Kind == KindClosure && !v.Closure.IsMacro
}

// Env is a single frame of name -> Value bindings, optionally chained to
// an outer frame, implementing MAL's nested lexical scoping.
type Env struct {
	data  map[string]Value
	outer *Env
}

// NewEnv creates a new environment frame with the given outer frame (nil
// for the root environment).
func NewEnv(outer *Env) *Env {
	return &Env{data: make(map[string]Value), outer: outer}
}

// Set binds name to value in this frame, overwriting any existing binding.
func (e *Env) Set(name string, v Value) {
	e.data[name] = v
}

// Find returns the nearest frame (this one or an outer one) in which name
// is bound, or nil if it is unbound anywhere in the chain.
func (e *Env) Find(name string) *Env {
	for env := e; env != nil; env = env.outer {
		if _, ok := env.data[name]; ok {
			return env
		}
	}
	return nil
}

// Get returns the value bound to name in the nearest frame, or an error if
// it is unbound.
func (e *Env) Get(name string) (Value, error) {
	if env := e.Find(name); env != nil {
		return env.data[name], nil
	}
	return Nil, fmt.Errorf("'%s' not found", name)
}

// Outer returns the enclosing frame, or nil at the root.
func (e *Env) Outer() *Env { return e.outer }
