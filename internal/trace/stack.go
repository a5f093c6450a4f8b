package trace

import (
	"fmt"
	"runtime"
	"strings"

	pkgerrors "github.com/pkg/errors"
)

// Frame is one resolved stack frame of a captured traceback.
type Frame struct {
	Function string
	File     string
	Line     int
}

// String formats the frame the way go test prints stack entries.
func (f Frame) String() string {
	return fmt.Sprintf("%s\n\t%s:%d", f.Function, f.File, f.Line)
}

// stackTracer is the interface pkg/errors attaches to stack-carrying errors.
type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

// WithStack attaches a captured stack to err unless it already carries one.
func WithStack(err error) error {
	if err == nil {
		return nil
	}
	var st stackTracer
	if pkgerrors.As(err, &st) {
		return err
	}
	return pkgerrors.WithStack(err)
}

// StackOf resolves the frames attached to err. Returns nil when err
// carries no stack.
func StackOf(err error) []Frame {
	var st stackTracer
	if !pkgerrors.As(err, &st) {
		return nil
	}
	var frames []Frame
	for _, pc := range st.StackTrace() {
		frames = append(frames, resolve(uintptr(pc)))
	}
	return frames
}

func resolve(pc uintptr) Frame {
	fn := runtime.FuncForPC(pc - 1)
	if fn == nil {
		return Frame{Function: "unknown"}
	}
	file, line := fn.FileLine(pc - 1)
	return Frame{Function: fn.Name(), File: file, Line: line}
}

// FormatFrames renders frames as an indented multi-line traceback.
func FormatFrames(frames []Frame) string {
	var b strings.Builder
	for _, f := range frames {
		fmt.Fprintf(&b, "  %s\n", f.String())
	}
	return b.String()
}
