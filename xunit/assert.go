package xunit

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
)

// AssertEqual fails the test method when want and got differ. Multi-line
// string mismatches are reported as a unified diff.
func (t *T) AssertEqual(want, got interface{}, msgAndArgs ...interface{}) {
	if reflect.DeepEqual(want, got) {
		return
	}
	t.Fatalf("%snot equal:\n%s", assertPrefix(msgAndArgs...), diffValues(want, got))
}

// AssertTrue fails the test method when cond is false.
func (t *T) AssertTrue(cond bool, msgAndArgs ...interface{}) {
	if cond {
		return
	}
	t.Fatalf("%sexpected condition to be true", assertPrefix(msgAndArgs...))
}

// AssertNoError fails the test method when err is non-nil.
func (t *T) AssertNoError(err error, msgAndArgs ...interface{}) {
	if err == nil {
		return
	}
	t.Fatalf("%sunexpected error: %v", assertPrefix(msgAndArgs...), err)
}

func assertPrefix(msgAndArgs ...interface{}) string {
	if len(msgAndArgs) == 0 {
		return ""
	}
	if format, ok := msgAndArgs[0].(string); ok && len(msgAndArgs) > 1 {
		return fmt.Sprintf(format, msgAndArgs[1:]...) + ": "
	}
	return fmt.Sprint(msgAndArgs...) + ": "
}

// diffValues renders a mismatch; multi-line strings get a unified diff,
// everything else a want/got pair.
func diffValues(want, got interface{}) string {
	ws, wok := want.(string)
	gs, gok := got.(string)
	if wok && gok && (strings.Contains(ws, "\n") || strings.Contains(gs, "\n")) {
		if !strings.HasSuffix(ws, "\n") {
			ws += "\n"
		}
		if !strings.HasSuffix(gs, "\n") {
			gs += "\n"
		}
		edits := myers.ComputeEdits("", ws, gs)
		return fmt.Sprint(gotextdiff.ToUnified("want", "got", ws, edits))
	}
	return fmt.Sprintf("want: %#v\ngot:  %#v", want, got)
}
