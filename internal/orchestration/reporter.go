package orchestration

import (
	"fmt"
	"io"
)

// Reporter receives the user-visible progress lines ("Starting: ...",
// "Already running: ...") as the engine decides actions.
type Reporter interface {
	Printf(format string, args ...interface{})
}

// NewConsoleReporter returns a Reporter writing one line per call.
func NewConsoleReporter(w io.Writer) Reporter {
	return &consoleReporter{w: w}
}

type consoleReporter struct {
	w io.Writer
}

func (r *consoleReporter) Printf(format string, args ...interface{}) {
	fmt.Fprintf(r.w, format+"\n", args...)
}
