package ui

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// ANSI color codes
const (
	Reset  = "\033[0m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Cyan   = "\033[36m"
	Bold   = "\033[1m"
)

// isTTY checks if w is a terminal
func isTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Colorize applies color only if w is a TTY
func Colorize(w io.Writer, color, msg string) string {
	if !isTTY(w) {
		return msg
	}
	return color + msg + Reset
}

// Match formats a positive sample result in green
func Match(w io.Writer, msg string) string {
	return fmt.Sprintf("%s %s", Colorize(w, Green, "match   "), msg)
}

// NoMatch formats a negative sample result in red
func NoMatch(w io.Writer, msg string) string {
	return fmt.Sprintf("%s %s", Colorize(w, Red, "no match"), msg)
}

// Title formats a bold cyan heading
func Title(w io.Writer, msg string) string {
	return Colorize(w, Bold+Cyan, msg)
}

// PrintError writes msg with the ERROR: prefix.
// The prefix is never colored so callers can match on it.
func PrintError(w io.Writer, msg string) {
	fmt.Fprintf(w, "ERROR: %s\n", msg)
}

// PrintWarn writes a warning line with a yellow [WARN] prefix
func PrintWarn(w io.Writer, msg string) {
	fmt.Fprintf(w, "%s %s\n", Colorize(w, Yellow, "[WARN]"), msg)
}

// Logger writes [DEBUG] diagnostics when verbose output is enabled.
type Logger struct {
	w       io.Writer
	verbose bool
}

// NewLogger creates a logger writing to w.
func NewLogger(w io.Writer, verbose bool) *Logger {
	return &Logger{w: w, verbose: verbose}
}

// Debugf writes a formatted diagnostic line if verbose output is on.
func (l *Logger) Debugf(format string, args ...any) {
	if l == nil || !l.verbose {
		return
	}
	prefix := Colorize(l.w, Cyan, "[DEBUG]")
	fmt.Fprintf(l.w, "%s %s\n", prefix, fmt.Sprintf(format, args...))
}
