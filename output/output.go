package output

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("green")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("red")).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan"))
	stepStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	tagStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan"))

	verboseMode bool
	quietMode   bool

	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// SetVerbose enables or disables verbose output for debugging.
// This should be called by the CLI when the --verbose flag is set.
func SetVerbose(v bool) {
	verboseMode = v
}

// SetQuiet suppresses Success, Info and Step output. Errors are always shown.
func SetQuiet(q bool) {
	quietMode = q
}

// Success prints a success message with 🔥 emoji and green color.
//
// Example:
//
//	output.Success("Wrote 3 files")
func Success(msg string) {
	if quietMode {
		return
	}
	fmt.Fprintln(stdout, successStyle.Render("🔥 "+msg))
}

// Error prints an error message with ❌ emoji and red color to stderr.
func Error(msg string) {
	fmt.Fprintln(stderr, errorStyle.Render("❌ "+msg))
}

// Info prints an informational message with ℹ️ emoji and cyan color.
func Info(msg string) {
	if quietMode {
		return
	}
	fmt.Fprintln(stdout, infoStyle.Render("ℹ️  "+msg))
}

// Step prints an indented step message in gray.
func Step(msg string) {
	if quietMode {
		return
	}
	fmt.Fprintln(stdout, stepStyle.Render("   "+msg))
}

// Verbose prints a debug message with 🔍 emoji only if verbose mode is enabled.
//
// Example:
//
//	output.Verbose("Loading config from: .conflict.yml")
func Verbose(msg string) {
	if verboseMode {
		fmt.Fprintln(stdout, stepStyle.Render("🔍 "+msg))
	}
}

// Logger writes resolver decisions as "[15:04:05] [conflict] message" lines.
// It is safe for concurrent use.
type Logger struct {
	mu    sync.Mutex
	out   io.Writer
	tag   string
	now   func() time.Time
	quiet bool
}

// NewLogger creates a decision logger writing to w (default os.Stdout).
func NewLogger(w io.Writer) *Logger {
	if w == nil {
		w = os.Stdout
	}
	return &Logger{out: w, tag: "conflict", now: time.Now}
}

// WithTag returns a copy of the logger using a different tag.
func (l *Logger) WithTag(tag string) *Logger {
	return &Logger{out: l.out, tag: tag, now: l.now, quiet: l.quiet}
}

// SetQuiet drops Log messages when q is true. LogDiff is not affected.
func (l *Logger) SetQuiet(q bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.quiet = q
}

// Log writes msg on one entry. Multi-line messages are written as-is after
// the prefix.
func (l *Logger) Log(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.quiet {
		return
	}
	l.write(msg)
}

// LogDiff writes a rendered diff the operator asked for. Quiet mode does
// not suppress it.
func (l *Logger) LogDiff(body string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.write(body)
}

func (l *Logger) write(msg string) {
	stamp := stepStyle.Render(l.now().Format("15:04:05"))
	fmt.Fprintf(l.out, "[%s] [%s] %s\n", stamp, tagStyle.Render(l.tag), msg)
}
