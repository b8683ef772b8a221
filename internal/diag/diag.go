// Package diag holds the small debug-logging helper Parse uses when a
// caller opts into Config.Debug. It never affects parsing results.
package diag

import (
	"fmt"
	"io"
	"log"

	"github.com/google/uuid"
)

// Logger wraps a stdlib *log.Logger, tagging every line with a run id so a
// caller running several parses concurrently can tell their traces apart in
// a shared log stream. A nil *Logger is safe to use and logs nothing --
// callers construct one only when Config.Debug is set.
type Logger struct {
	l     *log.Logger
	runID string
}

// New returns a Logger writing to w, tagged with a freshly generated run id.
func New(w io.Writer) *Logger {
	return &Logger{
		l:     log.New(w, "", log.LstdFlags),
		runID: uuid.NewString(),
	}
}

// Start logs the beginning of a parse run.
func (lg *Logger) Start(inputLen int) {
	if lg == nil {
		return
	}
	lg.l.Printf("[%s] parse start: %d bytes", lg.runID, inputLen)
}

// Warn logs a non-fatal condition encountered during parsing (for example, a
// frame that failed to decode before the hard parse error is raised).
func (lg *Logger) Warn(msg string) {
	if lg == nil {
		return
	}
	lg.l.Printf("[%s] warn: %s", lg.runID, msg)
}

// Warnf is Warn with fmt.Sprintf-style formatting.
func (lg *Logger) Warnf(format string, args ...any) {
	if lg == nil {
		return
	}
	lg.Warn(fmt.Sprintf(format, args...))
}
