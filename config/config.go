// Package config aggregates the CLI-derived settings shared by every
// component the command layer wires together: the Filter Engine, the
// Formatters, the Summary Aggregator, and the Debugger session itself
// (spec section 6).
package config

import (
	"macstrace/decode"
	"macstrace/format"

	tracererrors "macstrace/errors"
)

// ParseBufferStyle parses the count of -x occurrences (the -x/-xx
// extension noted in SPEC_FULL.md; the base spec only requires the
// quoted-string rendering decode.Buffer already produces by default)
// into a decode.BufferRenderStyle.
func ParseBufferStyle(xCount int) decode.BufferRenderStyle {
	switch {
	case xCount >= 2:
		return decode.BufferStyleHexDump
	case xCount == 1:
		return decode.BufferStyleHex
	default:
		return decode.BufferStyleQuoted
	}
}

// Config holds every setting the CLI layer resolves from flags and
// arguments before constructing a Debugger session (spec section 6).
type Config struct {
	// Command is the target program and its arguments, for the launch
	// form. Mutually exclusive with PID.
	Command []string
	// PID attaches to an already-running process instead of launching
	// one. Zero means "not given".
	PID int

	// Output is the --output path; empty means stderr.
	Output string
	// JSON selects the JSON-Lines formatter over the text formatter.
	JSON bool
	// Color selects the text formatter's ANSI color policy; ignored
	// when JSON is true.
	Color format.ColorPolicy
	// PrintDuration enables the -T elapsed-time-per-call prefix.
	PrintDuration bool
	// NoAbbrev renders flag integers as raw hex and enum values as
	// decimal instead of symbols.
	NoAbbrev bool
	// StringLimit caps decoded string/buffer length; zero means "use the
	// decoder's own default".
	StringLimit int
	// BufferStyle selects quoted, hex, or hex-dump buffer rendering.
	BufferStyle decode.BufferRenderStyle

	// Summary enables the Summary Aggregator's table at shutdown,
	// replacing per-event output (spec section 4.9).
	Summary bool
	// TraceSpec is the raw -e trace= expression, compiled by the
	// Filter Engine; empty means "trace everything".
	TraceSpec string
	// CountRejected is set by no flag and read by no component: calls
	// the Filter Engine rejects never reach the Summary Aggregator
	// (spec Open Question decision, DESIGN.md).
	CountRejected bool

	// FollowFork is always rejected: multi-process tracing is a
	// documented Non-goal (spec section 1). The field exists so the
	// CLI layer can detect the flag and produce a precise error rather
	// than silently ignoring it.
	FollowFork bool
}

// DecodeOptions projects the CLI rendering flags onto the decode
// package's own Options, the shape event.Assemble expects.
func (c *Config) DecodeOptions() decode.Options {
	return decode.Options{
		NoAbbrev:    c.NoAbbrev,
		StringLimit: c.StringLimit,
		BufferStyle: c.BufferStyle,
	}
}

// Validate checks the cross-field invariants spec section 6 places on
// the CLI surface: exactly one of Command/PID, and no unsupported
// flag combinations.
func (c *Config) Validate() error {
	hasCommand := len(c.Command) > 0
	hasPID := c.PID != 0

	if !hasCommand && !hasPID {
		return tracererrors.ErrNoTarget
	}
	if hasCommand && hasPID {
		return tracererrors.ErrBothTargets
	}
	if c.FollowFork {
		return tracererrors.ErrFollowForkUnsupported
	}
	return nil
}
