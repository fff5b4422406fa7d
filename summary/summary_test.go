package summary

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"macstrace/event"
)

func syscallRecord(name string, dur time.Duration, isErr bool) event.Record {
	return event.SyscallRecord(event.SyscallEvent{
		Timestamp: time.Now(),
		Duration:  dur,
		Syscall:   name,
		Error:     isErr,
	})
}

func TestAggregatorTallyAndErrorCount(t *testing.T) {
	a := NewAggregator()

	if err := a.Handle(syscallRecord("open", 10*time.Microsecond, false)); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if err := a.Handle(syscallRecord("open", 20*time.Microsecond, true)); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if err := a.Handle(syscallRecord("mmap", 5*time.Microsecond, true)); err != nil {
		t.Fatalf("Handle: %v", err)
	}

	if got := a.TotalCalls(); got != 3 {
		t.Fatalf("TotalCalls = %d, want 3", got)
	}

	var buf bytes.Buffer
	if err := a.Render(&buf); err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "open") || !strings.Contains(out, "mmap") {
		t.Fatalf("expected both syscall names in table, got:\n%s", out)
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 { // header + open + mmap + total
		t.Fatalf("expected 4 lines (header, 2 rows, total), got %d:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[len(lines)-1], "total") {
		t.Fatalf("expected a trailing total row, got:\n%s", out)
	}
}

func TestAggregatorIgnoresSignalsAndUnfinished(t *testing.T) {
	a := NewAggregator()

	if err := a.Handle(event.SignalRecordOf(event.SignalRecord{Signal: 2, Name: "SIGINT"})); err != nil {
		t.Fatalf("Handle signal: %v", err)
	}
	if err := a.Handle(event.SyscallRecord(event.SyscallEvent{Syscall: "read", Unfinished: true})); err != nil {
		t.Fatalf("Handle unfinished: %v", err)
	}

	if got := a.TotalCalls(); got != 0 {
		t.Fatalf("TotalCalls = %d, want 0 (signals and unfinished events don't count)", got)
	}
}

func TestAggregatorPercentile(t *testing.T) {
	a := NewAggregator()
	for i := 0; i < 10; i++ {
		if err := a.Handle(syscallRecord("read", time.Duration(i+1)*time.Microsecond, false)); err != nil {
			t.Fatalf("Handle: %v", err)
		}
	}

	if got := a.Percentile("read", 0.5); got <= 0 {
		t.Fatalf("Percentile(read, 0.5) = %v, want > 0 after 10 observations", got)
	}
	if got := a.Percentile("nonexistent", 0.5); got != 0 {
		t.Fatalf("Percentile for an unobserved syscall = %v, want 0", got)
	}
}
