// Package summary implements the Summary Aggregator: per-syscall
// call/error/elapsed-time counters rendered as a table at shutdown,
// replacing or supplementing per-event output (spec section 4.9).
package summary

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/VividCortex/gohistogram"

	"macstrace/event"
)

// histogramBins bounds the streaming histogram's resolution; 20 bins is
// the shape gohistogram's own examples use for a few thousand samples,
// well beyond what a single syscall's per-process call volume needs.
const histogramBins = 20

// row accumulates one syscall name's statistics.
type row struct {
	calls    int
	errors   int
	elapsed  time.Duration
	duration *gohistogram.NumericHistogram
}

// Aggregator implements event.Sink, tallying every completed
// SyscallEvent it sees. It ignores SignalRecords and unfinished events,
// neither of which spec section 4.9's table has a column for.
type Aggregator struct {
	rows map[string]*row
	// countRejected mirrors the Open Question decision in DESIGN.md:
	// by default, calls rejected by the Filter Engine never reach the
	// aggregator at all, so there is nothing to opt into here yet — this
	// field exists for a future --count-rejected flag.
	countRejected bool
}

// NewAggregator returns an empty Aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{rows: make(map[string]*row)}
}

// Handle implements event.Sink.
func (a *Aggregator) Handle(r event.Record) error {
	if r.Kind != event.KindSyscall || r.Syscall == nil || r.Syscall.Unfinished {
		return nil
	}
	e := r.Syscall
	rw := a.rows[e.Syscall]
	if rw == nil {
		rw = &row{duration: gohistogram.NewHistogram(histogramBins)}
		a.rows[e.Syscall] = rw
	}
	rw.calls++
	if e.Error {
		rw.errors++
	}
	rw.elapsed += e.Duration
	rw.duration.Add(float64(e.Duration.Microseconds()))
	return nil
}

// TotalCalls returns the number of calls tallied across every syscall,
// the left-hand side of the invariant in spec section 8: "the sum over
// the summary table of calls equals the number of emitted events".
func (a *Aggregator) TotalCalls() int {
	total := 0
	for _, row := range a.rows {
		total += row.calls
	}
	return total
}

// Render writes the summary table to w, sorted by cumulative elapsed
// time descending, with columns %time, seconds, usecs/call, calls,
// errors, syscall (spec section 4.9).
func (a *Aggregator) Render(w io.Writer) error {
	names := make([]string, 0, len(a.rows))
	var totalElapsed time.Duration
	for name, row := range a.rows {
		names = append(names, name)
		totalElapsed += row.elapsed
	}
	sort.Slice(names, func(i, j int) bool {
		return a.rows[names[i]].elapsed > a.rows[names[j]].elapsed
	})

	if _, err := fmt.Fprintf(w, "%6s %11s %11s %8s %8s %s\n", "% time", "seconds", "usecs/call", "calls", "errors", "syscall"); err != nil {
		return err
	}

	for _, name := range names {
		row := a.rows[name]
		pct := 0.0
		if totalElapsed > 0 {
			pct = 100 * float64(row.elapsed) / float64(totalElapsed)
		}
		usecsPerCall := int64(0)
		if row.calls > 0 {
			usecsPerCall = row.elapsed.Microseconds() / int64(row.calls)
		}
		errCol := ""
		if row.errors > 0 {
			errCol = fmt.Sprintf("%d", row.errors)
		}
		if _, err := fmt.Fprintf(w, "%6.2f %11.6f %11d %8d %8s %s\n",
			pct, row.elapsed.Seconds(), usecsPerCall, row.calls, errCol, name); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "%6s %11.6f %11s %8d %8s %s\n", "100.00", totalElapsed.Seconds(), "", a.TotalCalls(), "", "total")
	return err
}

// Percentile returns the p-th percentile (0 ≤ p ≤ 1) of a syscall's
// observed duration distribution in microseconds, backing a future
// percentile column (spec DOMAIN STACK note on gohistogram). Returns 0
// if the syscall was never observed.
func (a *Aggregator) Percentile(name string, p float64) float64 {
	row, ok := a.rows[name]
	if !ok {
		return 0
	}
	return row.duration.Quantile(p)
}
