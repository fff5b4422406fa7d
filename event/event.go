// Package event defines the records the tracer core emits — one per
// completed syscall and one per delivered signal — and the pipeline that
// delivers them synchronously to the configured sinks inside the
// debugger's single-threaded event loop (spec section 4.9).
package event

import (
	"time"

	"macstrace/registry"
)

// Arg is one rendered syscall argument, in declared order.
type Arg struct {
	Name  string
	Value string
}

// EntrySnapshot is what the Pairing State Machine stores for a thread
// between entry-hit and exit-hit: the syscall schema, the raw argument
// registers captured at entry, and the time the call started. Pre-call
// materializations (path strings, buffers about to be written) happen
// while this snapshot is still live, before the exit-hit arrives (spec
// section 4.7).
type EntrySnapshot struct {
	ThreadID uint64
	PID      int
	Schema   registry.Schema
	Args     [6]uint64
	Entered  time.Time
	// PreCaptured holds IN/INOUT string and buffer arguments already
	// rendered at entry-hit, while the memory they point to is still the
	// caller's own (a successful execve replaces the address space
	// entirely before the exit-hit fires, and nothing later can recover
	// the original argument). PreCapturedValid marks which indices were
	// captured this way; everything else is decoded in Assemble, from
	// these entry-hit argument registers and the post-call memory.
	PreCaptured      [6]string
	PreCapturedValid [6]bool
}

// SyscallEvent is one completed (or unfinished) syscall, ready for a
// Formatter or the Summary Aggregator.
type SyscallEvent struct {
	Timestamp     time.Time
	Duration      time.Duration
	ThreadID      uint64
	PID           int
	Syscall       string
	Category      registry.Category
	Args          []Arg
	Retval        int64
	RetvalDecoded string
	Error         bool
	// Unfinished marks a synthetic event emitted because the owning
	// thread died (or a later entry-hit preempted it) before an exit-hit
	// arrived (spec section 4.7).
	Unfinished bool
	// SyntheticID tags an Unfinished event for log correlation when more
	// than one might be emitted in close succession; empty otherwise.
	SyntheticID string
}

// SignalRecord is a delivered, non-synthetic signal routed through the
// same pipeline as a strace "--- SIGCHLD {...} ---" line (spec
// SUPPLEMENTED FEATURES, signal delivery events).
type SignalRecord struct {
	Timestamp time.Time
	ThreadID  uint64
	PID       int
	Signal    int
	Name      string
}

// RecordKind distinguishes which field of Record is populated.
type RecordKind int

const (
	KindSyscall RecordKind = iota
	KindSignal
)

// Record is the single type that flows through the Pipeline; sinks
// switch on Kind rather than accepting two separate interfaces, keeping
// Sink's dispatch exhaustive and ordering (spec section 5: "events are
// emitted in the order they complete") a property of one channel.
type Record struct {
	Kind    RecordKind
	Syscall *SyscallEvent
	Signal  *SignalRecord
}

// SyscallRecord wraps a completed SyscallEvent as a Record.
func SyscallRecord(e SyscallEvent) Record {
	return Record{Kind: KindSyscall, Syscall: &e}
}

// SignalRecordOf wraps a SignalRecord as a Record.
func SignalRecordOf(s SignalRecord) Record {
	return Record{Kind: KindSignal, Signal: &s}
}
