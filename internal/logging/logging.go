// Package logging provides the small leveled logger the metadata loader
// uses for non-fatal warnings (an opcode line's unrecognized trailing
// token, for example). Debug output is discarded by default; callers
// that want to see it pass a Logger built with New(w, true).
package logging

import (
	"io"
	"log"
)

// Logger wraps a standard library logger and gates Debugf behind an
// enabled flag, so embedding applications keep quiet unless asked.
type Logger struct {
	*log.Logger
	debug bool
}

// Discard is the package default: a Logger whose Debugf calls are no-ops.
var Discard = New(io.Discard, false)

// New constructs a Logger writing to w, with debug-level output enabled
// only when debug is true.
func New(w io.Writer, debug bool) *Logger {
	return &Logger{Logger: log.New(w, "", 0), debug: debug}
}

// Debugf logs a debug-level message if the logger was constructed with
// debug logging enabled; otherwise the message is discarded.
func (l *Logger) Debugf(format string, args ...interface{}) {
	if l == nil || !l.debug {
		return
	}
	l.Printf(format, args...)
}
