// Package format renders Records as either strace-style text or
// JSON-Lines (spec section 4.9, section 6).
package format

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"macstrace/event"
)

// ColorPolicy selects when the text Formatter emits ANSI color.
type ColorPolicy int

const (
	ColorAuto ColorPolicy = iota
	ColorAlways
	ColorNever
)

// ParseColorPolicy parses a --color flag value.
func ParseColorPolicy(s string) (ColorPolicy, error) {
	switch s {
	case "", "auto":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	default:
		return ColorNever, fmt.Errorf("format: unrecognized color policy %q", s)
	}
}

const (
	ansiReset  = "\x1b[0m"
	ansiCyan   = "\x1b[36m"  // syscall name
	ansiGreen  = "\x1b[32m"  // string literal
	ansiYellow = "\x1b[33m"  // number
	ansiBlue   = "\x1b[34m"  // flag set
	ansiRed    = "\x1b[31m"  // error
)

// TextFormatter renders events in GNU strace's
// "name(arg1, arg2, …) = retval" convention, optionally colorized and
// optionally prefixed with elapsed call duration (spec section 6, and
// the -T extension in SPEC_FULL.md).
type TextFormatter struct {
	w             io.Writer
	color         bool
	printDuration bool
}

// NewTextFormatter resolves policy against w (checking NO_COLOR and, for
// ColorAuto, whether w is a terminal) and returns a ready Formatter.
func NewTextFormatter(w io.Writer, policy ColorPolicy, printDuration bool) *TextFormatter {
	return &TextFormatter{w: w, color: resolveColor(w, policy), printDuration: printDuration}
}

func resolveColor(w io.Writer, policy ColorPolicy) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	switch policy {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		f, ok := w.(*os.File)
		return ok && term.IsTerminal(int(f.Fd()))
	}
}

// Handle implements event.Sink.
func (f *TextFormatter) Handle(r event.Record) error {
	switch r.Kind {
	case event.KindSyscall:
		return f.handleSyscall(r.Syscall)
	case event.KindSignal:
		return f.handleSignal(r.Signal)
	default:
		return nil
	}
}

func (f *TextFormatter) handleSyscall(e *event.SyscallEvent) error {
	var b strings.Builder

	if f.printDuration {
		fmt.Fprintf(&b, "[%10d us] ", e.Duration.Microseconds())
	}

	if e.Unfinished {
		f.writeColored(&b, ansiCyan, e.Syscall)
		b.WriteString("(")
		f.writeArgs(&b, e.Args)
		b.WriteString(") <unfinished ...>")
		_, err := fmt.Fprintln(f.w, b.String())
		return err
	}

	f.writeColored(&b, ansiCyan, e.Syscall)
	b.WriteString("(")
	f.writeArgs(&b, e.Args)
	b.WriteString(") = ")

	if e.Error {
		f.writeColored(&b, ansiRed, fmt.Sprintf("%d %s", e.Retval, e.RetvalDecoded))
	} else if e.RetvalDecoded != "" {
		f.writeColored(&b, ansiYellow, fmt.Sprintf("%d %s", e.Retval, e.RetvalDecoded))
	} else {
		f.writeColored(&b, ansiYellow, fmt.Sprintf("%d", e.Retval))
	}

	_, err := fmt.Fprintln(f.w, b.String())
	return err
}

func (f *TextFormatter) handleSignal(s *event.SignalRecord) error {
	_, err := fmt.Fprintf(f.w, "--- %s {si_signo=%s} ---\n", s.Name, s.Name)
	return err
}

func (f *TextFormatter) writeArgs(b *strings.Builder, args []event.Arg) {
	for i, a := range args {
		if i > 0 {
			b.WriteString(", ")
		}
		f.writeColored(b, ansiGreen, a.Value)
	}
}

func (f *TextFormatter) writeColored(b *strings.Builder, color, text string) {
	if !f.color {
		b.WriteString(text)
		return
	}
	b.WriteString(color)
	b.WriteString(text)
	b.WriteString(ansiReset)
}
