package repl

import (
	"fmt"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/miDeb/malgo/internal/errs"
	"github.com/miDeb/malgo/internal/value"
)

// session evaluates each form in order against a fresh environment and
// renders "<form> => <printed result or ERROR: ...>" lines, the shape of
// a REPL transcript.
func session(t *testing.T, forms []string) string {
	t.Helper()
	e, err := New(nil, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	var b strings.Builder
	for _, f := range forms {
		result, err := evalChunk(f, e)
		var rendered string
		if err != nil {
			thrown, ok := errs.AsValue(err)
			if !ok {
				thrown = value.String(err.Error())
			}
			rendered = "ERROR: " + value.PrStr(thrown, true)
		} else {
			rendered = value.PrStr(result, true)
		}
		fmt.Fprintf(&b, "%s => %s\n", f, rendered)
	}
	return b.String()
}

func TestEndToEndSessions(t *testing.T) {
	t.Run("arithmetic_and_let", func(t *testing.T) {
		out := session(t, []string{
			"(+ 1 2)",
			"(let* (a 5 b (+ a 1)) (* a b))",
		})
		snaps.MatchSnapshot(t, out)
	})

	t.Run("tco_loop", func(t *testing.T) {
		out := session(t, []string{
			`(def! sum-to (fn* (n acc) (if (= n 0) acc (sum-to (- n 1) (+ acc n)))))`,
			"(sum-to 1000 0)",
		})
		snaps.MatchSnapshot(t, out)
	})

	t.Run("macro_and_quasiquote", func(t *testing.T) {
		out := session(t, []string{
			`(defmacro! my-if (fn* (c t e) ` + "`" + `(cond ~c ~t true ~e)))`,
			"(my-if true 1 2)",
			"(my-if false 1 2)",
		})
		snaps.MatchSnapshot(t, out)
	})

	t.Run("atoms_and_closures", func(t *testing.T) {
		out := session(t, []string{
			"(def! counter (atom 0))",
			`(def! inc-counter! (fn* () (swap! counter + 1)))`,
			"(inc-counter!)",
			"(inc-counter!)",
			"@counter",
		})
		snaps.MatchSnapshot(t, out)
	})

	t.Run("try_catch_uncaught", func(t *testing.T) {
		out := session(t, []string{
			`(try* (throw {:msg "boom"}) (catch* e (get e "msg")))`,
			`(throw "uncaught")`,
		})
		snaps.MatchSnapshot(t, out)
	})
}
