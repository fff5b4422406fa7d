package event

import tracererrors "macstrace/errors"

// Sink receives Records in completion order. Handle must not block on
// the traced process; blocking on sink I/O (a file write, a summary
// render) is permitted (spec section 5).
type Sink interface {
	Handle(Record) error
}

// Pipeline delivers one Record to every configured sink, in order,
// synchronously within the debugger event loop's calling goroutine
// (spec section 4.9). It has no internal buffering or goroutines: the
// event loop is the only scheduler in the tracer core.
type Pipeline struct {
	sinks []Sink
}

// NewPipeline returns a Pipeline fanning out to sinks in the given order.
func NewPipeline(sinks ...Sink) *Pipeline {
	return &Pipeline{sinks: sinks}
}

// Emit delivers r to every sink. A sink returning an error stops
// delivery to the remaining sinks and the error is returned wrapped as
// an ErrSinkIO, since the spec treats any sink failure as fatal (spec
// section 7: "a SinkIOError is fatal because the trace stream has lost
// integrity").
func (p *Pipeline) Emit(r Record) error {
	for _, s := range p.sinks {
		if err := s.Handle(r); err != nil {
			return tracererrors.Wrap(err, tracererrors.ErrSinkIO, "emit")
		}
	}
	return nil
}
