// Package filter compiles a "-e trace=" expression into a predicate over
// Syscall Registry schemas, applied at entry-hit so a rejected syscall
// never enters the Pairing State Machine and therefore never reaches the
// Event Pipeline (spec section 4.8). The exit breakpoint itself still
// arms regardless of the filter result, since it shares one per-thread
// slot with every syscall the Breakpoint Controller cannot yet
// distinguish by name.
package filter

import (
	"strings"

	"macstrace/registry"

	tracererrors "macstrace/errors"
)

// Predicate reports whether a schema should be traced. A nil *Predicate
// (the zero value returned by Parse("")) accepts everything.
type Predicate struct {
	names      map[string]bool
	categories map[registry.Category]bool
}

// Parse compiles a comma-separated list of syscall names and/or category
// tags (spec section 6: "one or more syscall names, one or more category
// tags ..., or a mixture"). An empty spec returns a nil Predicate that
// Allows everything.
func Parse(spec string) (*Predicate, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return nil, nil
	}

	p := &Predicate{
		names:      make(map[string]bool),
		categories: make(map[registry.Category]bool),
	}
	for _, tok := range strings.Split(spec, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			return nil, tracererrors.ErrInvalidTraceSpec
		}
		lower := strings.ToLower(tok)
		if cat, ok := registry.ParseCategory(lower); ok {
			p.categories[cat] = true
			continue
		}
		p.names[lower] = true
	}
	return p, nil
}

// Allows reports whether schema passes the filter. A nil Predicate (no
// --trace given) allows everything.
func (p *Predicate) Allows(schema registry.Schema) bool {
	if p == nil {
		return true
	}
	if p.names[strings.ToLower(schema.Name)] {
		return true
	}
	return p.categories[schema.Category]
}
