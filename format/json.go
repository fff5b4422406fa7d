package format

import (
	"encoding/json"
	"io"
	"time"

	"macstrace/event"
)

// jsonArg mirrors the {name, value} pair required by the Lines schema.
type jsonArg struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// jsonSyscallLine is one line of the --json output, field order and
// names fixed by spec section 6's JSON-Lines schema.
type jsonSyscallLine struct {
	Timestamp     string    `json:"ts"`
	DurationUs    int64     `json:"dur_us"`
	ThreadID      uint64    `json:"tid"`
	Syscall       string    `json:"syscall"`
	Category      string    `json:"category"`
	Args          []jsonArg `json:"args"`
	Retval        int64     `json:"retval"`
	RetvalDecoded string    `json:"retval_decoded"`
	Error         bool      `json:"error"`
	Unfinished    bool      `json:"unfinished,omitempty"`
}

// jsonSignalLine is the --json rendering of a signal delivery event, a
// supplement to the core syscall schema (SPEC_FULL.md's signal tracing
// feature, not present in the distilled spec).
type jsonSignalLine struct {
	Timestamp string `json:"ts"`
	ThreadID  uint64 `json:"tid"`
	Signal    int    `json:"signal"`
	Name      string `json:"name"`
}

// jsonTimeLayout matches spec section 6's "ISO 8601 with microsecond
// precision" requirement; time.RFC3339Nano trims trailing zeros, so the
// layout is spelled out explicitly instead.
const jsonTimeLayout = "2006-01-02T15:04:05.000000Z07:00"

// JSONFormatter renders each Record as a single line of JSON (spec
// section 6: "--json emits newline-delimited JSON, one object per
// event").
type JSONFormatter struct {
	enc *json.Encoder
}

// NewJSONFormatter returns a Formatter writing to w.
func NewJSONFormatter(w io.Writer) *JSONFormatter {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return &JSONFormatter{enc: enc}
}

// Handle implements event.Sink.
func (f *JSONFormatter) Handle(r event.Record) error {
	switch r.Kind {
	case event.KindSyscall:
		return f.handleSyscall(r.Syscall)
	case event.KindSignal:
		return f.handleSignal(r.Signal)
	default:
		return nil
	}
}

func (f *JSONFormatter) handleSyscall(e *event.SyscallEvent) error {
	args := make([]jsonArg, 0, len(e.Args))
	for _, a := range e.Args {
		args = append(args, jsonArg{Name: a.Name, Value: a.Value})
	}
	line := jsonSyscallLine{
		Timestamp:     formatTimestamp(e.Timestamp),
		DurationUs:    e.Duration.Microseconds(),
		ThreadID:      e.ThreadID,
		Syscall:       e.Syscall,
		Category:      e.Category.String(),
		Args:          args,
		Retval:        e.Retval,
		RetvalDecoded: e.RetvalDecoded,
		Error:         e.Error,
		Unfinished:    e.Unfinished,
	}
	return f.enc.Encode(line)
}

func (f *JSONFormatter) handleSignal(s *event.SignalRecord) error {
	line := jsonSignalLine{
		Timestamp: formatTimestamp(s.Timestamp),
		ThreadID:  s.ThreadID,
		Signal:    s.Signal,
		Name:      s.Name,
	}
	return f.enc.Encode(line)
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(jsonTimeLayout)
}
