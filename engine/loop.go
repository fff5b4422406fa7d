package engine

import (
	"log/slog"
	"time"

	"macstrace/arch"
	"macstrace/debugger"
	"macstrace/decode"
	"macstrace/event"
	"macstrace/filter"
	"macstrace/logging"
	"macstrace/memory"
	"macstrace/pairing"
	"macstrace/registry"
)

// runLoop drives one Debugger Session to completion, translating every
// stop into zero or one emitted Record per spec section 4.5/4.7/4.9,
// except the target-exit stop, which emits one unfinished Record for
// every thread still awaiting its exit-hit.
type runLoop struct {
	session   *debugger.Session
	adapter   arch.Adapter
	mem       *memory.Reader
	registry  *registry.Registry
	pairing   *pairing.Table
	predicate *filter.Predicate
	pipeline  *event.Pipeline
	opts      decode.Options
	logger    *slog.Logger
}

// run repeats Continue/translate/emit until the target exits, returning
// its exit status (negative if terminated by a signal) or the first
// fatal error encountered.
func (l *runLoop) run() (int, error) {
	for {
		ev, err := l.session.Continue()
		if err != nil {
			return 0, err
		}

		switch ev.Kind {
		case debugger.StopEntryHit:
			l.handleEntry(ev)
		case debugger.StopExitHit:
			if err := l.handleExit(ev); err != nil {
				return 0, err
			}
		case debugger.StopSignal:
			if err := l.handleSignal(ev); err != nil {
				return 0, err
			}
		case debugger.StopExited:
			l.flushUnfinished()
			return ev.ExitStatus, nil
		}
	}
}

func (l *runLoop) handleEntry(ev debugger.StopEvent) {
	regs, err := l.session.ReadRegisters(ev.ThreadID)
	if err != nil {
		if l.logger != nil {
			logging.WithThread(l.logger, ev.ThreadID).Warn("failed to read registers at entry-hit", "error", err)
		}
		return
	}

	number := l.adapter.SyscallNumber(regs)
	schema, ok := l.registry.Lookup(number)
	if !ok {
		schema = registry.Unknown(number)
	}
	if !l.predicate.Allows(schema) {
		return
	}

	var args [arch.MaxSyscallArgs]uint64
	for i := range args {
		args[i] = l.adapter.Arg(regs, i)
	}

	snap := event.EntrySnapshot{
		ThreadID: ev.ThreadID,
		PID:      l.session.PID(),
		Schema:   schema,
		Args:     args,
		Entered:  time.Now(),
	}
	event.CaptureEntryArgs(&snap, l.mem, l.opts)

	if preempted := l.pairing.OnEntryHit(snap); preempted != nil {
		l.emitUnfinished(*preempted)
	}
}

func (l *runLoop) handleExit(ev debugger.StopEvent) error {
	snap, ok := l.pairing.OnExitHit(ev.ThreadID)
	if !ok {
		// Either an orphan exit-hit with no matching entry, or the
		// entry was rejected by the filter and never stored.
		return nil
	}

	regs, err := l.session.ReadRegisters(ev.ThreadID)
	if err != nil {
		if l.logger != nil {
			threadLogger := logging.WithThread(l.logger, ev.ThreadID)
			logging.WithSyscall(threadLogger, snap.Schema.Name).Warn("failed to read registers at exit-hit", "error", err)
		}
		return nil
	}

	se := event.Assemble(snap, regs, l.adapter, l.mem, l.opts)
	return l.emit(event.SyscallRecord(se))
}

func (l *runLoop) handleSignal(ev debugger.StopEvent) error {
	if ev.IsAttachSignal() {
		return nil
	}
	rec := event.SignalRecord{
		Timestamp: time.Now(),
		ThreadID:  ev.ThreadID,
		PID:       l.session.PID(),
		Signal:    ev.Signal,
		Name:      decode.SignalName(ev.Signal),
	}
	return l.emit(event.SignalRecordOf(rec))
}

// flushUnfinished synthesizes an Unfinished event for every thread still
// awaiting its exit-hit when the target exits (spec section 4.7).
func (l *runLoop) flushUnfinished() {
	for tid := range l.pairing.AwaitingExitThreads() {
		snap, ok := l.pairing.OnThreadDeath(tid)
		if !ok {
			continue
		}
		l.emitUnfinished(snap)
	}
}

func (l *runLoop) emitUnfinished(snap event.EntrySnapshot) {
	ue := event.Unfinished(snap, l.pairing.SessionID().String())
	_ = l.emit(event.SyscallRecord(ue))
}

func (l *runLoop) emit(r event.Record) error {
	return l.pipeline.Emit(r)
}
