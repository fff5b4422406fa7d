package debugger

import (
	"sync"

	"macstrace/arch"
)

// exitBreakpoint is a one-shot breakpoint armed at a specific thread's
// return address right after an entry-hit, removed the moment it fires
// or its thread dies (spec section 4.6).
type exitBreakpoint struct {
	addr uint64
}

// BreakpointController owns breakpoint placement: the single entry
// breakpoint at the resolved syscall trampoline, and the set of live
// one-shot exit breakpoints keyed by thread id. It classifies each stop
// as an entry-hit, exit-hit, or an ordinary signal by comparing the
// stopped thread's PC against these tracked addresses, so the session's
// event loop never has to know a breakpoint's origin itself.
type BreakpointController struct {
	mu sync.Mutex

	session *Session
	adapter arch.Adapter

	entryAddr  uint64
	entryArmed bool

	exitByThread map[uint64]exitBreakpoint
}

// NewBreakpointController constructs a controller bound to session,
// which it uses to place and remove breakpoints over the wire.
func NewBreakpointController(session *Session, adapter arch.Adapter) *BreakpointController {
	return &BreakpointController{
		session:      session,
		adapter:      adapter,
		exitByThread: make(map[uint64]exitBreakpoint),
	}
}

// InstallEntryBreakpoint sets the session's single, permanent breakpoint
// at the resolved syscall trampoline address.
func (b *BreakpointController) InstallEntryBreakpoint(addr uint64) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.session.setBreakpoint(addr); err != nil {
		return err
	}
	b.entryAddr = addr
	b.entryArmed = true
	return nil
}

// ArmExitBreakpoint installs a one-shot breakpoint for tid at returnAddr.
// A breakpoint already armed for this thread is replaced; the newer entry
// always wins the thread's slot (spec section 4.7's tie-break rule
// applies to pairing, not placement, but the slot itself follows the
// same "latest entry owns it" principle).
func (b *BreakpointController) ArmExitBreakpoint(tid, returnAddr uint64) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if existing, ok := b.exitByThread[tid]; ok {
		delete(b.exitByThread, tid)
		b.removeIfUnshared(existing.addr, tid)
	}
	if !b.addrInUseLocked(returnAddr, tid) {
		if err := b.session.setBreakpoint(returnAddr); err != nil {
			return err
		}
	}
	b.exitByThread[tid] = exitBreakpoint{addr: returnAddr}
	return nil
}

// DisarmExitBreakpoint removes tid's one-shot breakpoint, called once it
// fires.
func (b *BreakpointController) DisarmExitBreakpoint(tid uint64) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	bp, ok := b.exitByThread[tid]
	if !ok {
		return nil
	}
	delete(b.exitByThread, tid)
	return b.removeIfUnshared(bp.addr, tid)
}

// SweepOrphans removes exit breakpoints for any tracked thread absent
// from liveThreads, so a dead thread's breakpoint address does not
// linger (spec section 4.6). The engine's run loop does not call it.
func (b *BreakpointController) SweepOrphans(liveThreads map[uint64]bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for tid, bp := range b.exitByThread {
		if liveThreads[tid] {
			continue
		}
		delete(b.exitByThread, tid)
		b.removeIfUnshared(bp.addr, tid)
	}
}

// removeIfUnshared clears the wire-level breakpoint at addr unless the
// entry breakpoint or another thread's exit breakpoint still needs it.
func (b *BreakpointController) removeIfUnshared(addr, excludeTid uint64) error {
	if addr == b.entryAddr {
		return nil
	}
	for tid, bp := range b.exitByThread {
		if tid == excludeTid {
			continue
		}
		if bp.addr == addr {
			return nil
		}
	}
	return b.session.removeBreakpoint(addr)
}

func (b *BreakpointController) addrInUseLocked(addr, excludeTid uint64) bool {
	if addr == b.entryAddr {
		return true
	}
	for tid, bp := range b.exitByThread {
		if tid == excludeTid {
			continue
		}
		if bp.addr == addr {
			return true
		}
	}
	return false
}

// Classify compares a stopped thread's program counter against the
// tracked breakpoint addresses and reports which kind of stop this is.
// A PC matching neither means an ordinary signal the caller should
// forward as-is.
func (b *BreakpointController) Classify(tid, pc uint64) StopKind {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.entryArmed && pc == b.entryAddr {
		return StopEntryHit
	}
	if bp, ok := b.exitByThread[tid]; ok && pc == bp.addr {
		return StopExitHit
	}
	return StopSignal
}
