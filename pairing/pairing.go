// Package pairing implements the per-thread entry/exit state machine
// that matches one syscall's exit-hit back to the entry-hit that
// started it (spec section 4.7). The Table is owned exclusively by the
// debugger event loop and needs no synchronization: spec section 5
// guarantees single-threaded, one-event-at-a-time access.
package pairing

import (
	"github.com/google/uuid"

	"macstrace/event"
)

// State is a thread's position in the Idle ⇄ Awaiting-Exit cycle.
type State int

const (
	StateIdle State = iota
	StateAwaitingExit
)

// Table tracks the live EntrySnapshot for every thread currently between
// an entry-hit and its exit-hit.
type Table struct {
	sessionID uuid.UUID
	entries   map[uint64]event.EntrySnapshot
}

// NewTable returns an empty pairing table stamped with a fresh session
// identifier, used to tag synthetic unfinished events so repeated runs
// never collide in a shared log sink.
func NewTable() *Table {
	return &Table{
		sessionID: uuid.New(),
		entries:   make(map[uint64]event.EntrySnapshot),
	}
}

// SessionID returns the table's session identifier.
func (t *Table) SessionID() uuid.UUID { return t.sessionID }

// State reports a thread's current pairing state.
func (t *Table) State(tid uint64) State {
	if _, ok := t.entries[tid]; ok {
		return StateAwaitingExit
	}
	return StateIdle
}

// OnEntryHit transitions a thread Idle → Awaiting-Exit, storing snap.
// If the thread was already Awaiting-Exit (spec section 4.7's tie-break:
// two entry-hits without an intervening exit-hit — "this never happens
// in correct kernels but must be handled"), the earlier snapshot is
// returned so the caller can emit it as unfinished; the later entry
// always wins the thread's slot.
func (t *Table) OnEntryHit(snap event.EntrySnapshot) (preempted *event.EntrySnapshot) {
	if prior, ok := t.entries[snap.ThreadID]; ok {
		preempted = &prior
	}
	t.entries[snap.ThreadID] = snap
	return preempted
}

// OnExitHit transitions a thread Awaiting-Exit → Idle, returning the
// snapshot that was stored at entry so the caller can assemble the
// completed event. ok is false if the thread was not Awaiting-Exit
// (an orphan exit-hit, which should not happen under a correct kernel).
func (t *Table) OnExitHit(tid uint64) (snap event.EntrySnapshot, ok bool) {
	snap, ok = t.entries[tid]
	if ok {
		delete(t.entries, tid)
	}
	return snap, ok
}

// OnThreadDeath discards tid's in-flight snapshot, if any, so the
// Breakpoint Controller's orphan sweep never finds a stale entry for a
// dead thread. The caller is expected to emit the returned snapshot as
// an unfinished event.
func (t *Table) OnThreadDeath(tid uint64) (snap event.EntrySnapshot, ok bool) {
	snap, ok = t.entries[tid]
	if ok {
		delete(t.entries, tid)
	}
	return snap, ok
}

// AwaitingExitThreads returns the set of thread ids currently
// Awaiting-Exit — exactly the threads that should still have an armed
// exit breakpoint — in the liveThreads shape that the Breakpoint
// Controller's SweepOrphans takes. The engine uses it at target exit to
// flush unfinished events (spec section 4.6).
func (t *Table) AwaitingExitThreads() map[uint64]bool {
	live := make(map[uint64]bool, len(t.entries))
	for tid := range t.entries {
		live[tid] = true
	}
	return live
}
