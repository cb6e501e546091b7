package value

import (
	"sort"
	"strconv"
	"strings"
)

// PrStr renders a Value back to text. In readable mode strings are
// re-escaped and quoted (the mode used by pr-str, prn and the top-level
// REPL echo); in display mode strings are emitted raw (str, println).
func PrStr(v Value, readable bool) string {
	var b strings.Builder
	writeValue(&b, v, readable)
	return b.String()
}

// maxPrintDepth bounds recursion into nested structures so a
// self-referential atom (`(def! a (atom nil)) (reset! a a)`) prints a
// placeholder instead of recursing without end, mirroring derefAtom's
// bounded loop rather than tracking a visited set.
const maxPrintDepth = 1 << 10

func writeValue(b *strings.Builder, v Value, readable bool) {
	writeValueDepth(b, v, readable, 0)
}

func writeValueDepth(b *strings.Builder, v Value, readable bool, depth int) {
	if depth >= maxPrintDepth {
		b.WriteString("...")
		return
	}
	switch v.Kind {
	case KindNil:
		b.WriteString("nil")
	case KindBool:
		if v.Bool {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case KindNumber:
		b.WriteString(strconv.FormatInt(int64(v.Num), 10))
	case KindSymbol:
		b.WriteString(v.Str)
	case KindKeyword:
		b.WriteByte(':')
		b.WriteString(strings.TrimPrefix(v.Str, string(KeywordSentinel)))
	case KindString:
		if readable {
			writeEscapedString(b, v.Str)
		} else {
			b.WriteString(v.Str)
		}
	case KindList:
		b.WriteByte('(')
		writeItems(b, v.Seq.Items, readable, depth+1)
		b.WriteByte(')')
	case KindVec:
		b.WriteByte('[')
		writeItems(b, v.Seq.Items, readable, depth+1)
		b.WriteByte(']')
	case KindMap:
		writeMap(b, v.MapV.Items, readable, depth+1)
	case KindAtom:
		b.WriteString("(atom ")
		writeValueDepth(b, v.AtomV.V, readable, depth+1)
		b.WriteByte(')')
	case KindHostFn, KindClosure:
		b.WriteString("#<function>")
	}
}

func writeItems(b *strings.Builder, items []Value, readable bool, depth int) {
	for i, item := range items {
		if i != 0 {
			b.WriteByte(' ')
		}
		writeValueDepth(b, item, readable, depth)
	}
}

func writeMap(b *strings.Builder, items map[string]Value, readable bool, depth int) {
	keys := make([]string, 0, len(items))
	for k := range items {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	b.WriteByte('{')
	for i, k := range keys {
		if i != 0 {
			b.WriteByte(' ')
		}
		if IsKeywordKey(k) {
			b.WriteByte(':')
			b.WriteString(strings.TrimPrefix(k, string(KeywordSentinel)))
		} else if readable {
			writeEscapedString(b, k)
		} else {
			b.WriteString(k)
		}
		b.WriteByte(' ')
		writeValueDepth(b, items[k], readable, depth)
	}
	b.WriteByte('}')
}

func writeEscapedString(b *strings.Builder, s string) {
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
}
