// Package registry maps BSD syscall numbers to their Schema: name,
// ordered parameter descriptors, return descriptor, and category tag
// (spec section 4.3). It is built once per session and never mutated
// afterward; lookups never fail — an unrecognized number degrades to raw
// rendering instead of dropping the event.
package registry

import (
	"strconv"
	"strings"
)

// ParamKind distinguishes how a parameter's raw register value should be
// materialized before decoding: plain scalars need no memory read, the
// others need the Memory Reader to follow a pointer.
type ParamKind int

const (
	// KindScalar is a plain integer argument (fd, length, flags, mode).
	KindScalar ParamKind = iota
	// KindString is a pointer to a NUL-terminated string.
	KindString
	// KindBuffer is a pointer to a raw byte buffer of a separately-known length.
	KindBuffer
	// KindStruct is a pointer to a fixed-layout struct (stat, sockaddr, ...).
	KindStruct
)

// ParamDirection says whether an argument carries data into the call, out
// of it, or both. It decides whether a string/buffer argument must be
// materialized at entry-hit, while memory it points to is still the
// caller's, or whether it is only meaningful after the call completes.
type ParamDirection int

const (
	// DirIn is a value the caller supplies; read it at entry-hit.
	DirIn ParamDirection = iota
	// DirOut is a value the kernel fills in; read it at exit-hit.
	DirOut
	// DirInOut string/buffer arguments are rendered once, at entry-hit,
	// like DirIn; what the kernel leaves there is not read again at exit.
	// A DirInOut struct is read at exit-hit only.
	DirInOut
)

// ParameterDescriptor describes one syscall argument in declared order.
type ParameterDescriptor struct {
	// Name is the argument's conventional C name, used in text output
	// unless the formatter is configured to omit argument names.
	Name string
	// Kind says how the raw register value should be materialized.
	Kind ParamKind
	// Direction says when the pointed-to value is valid to read. Only
	// meaningful for KindString/KindBuffer/KindStruct; scalars carry
	// their value in the register itself.
	Direction ParamDirection
	// StructName identifies which struct renderer in package decode to
	// use when Kind is KindStruct (e.g. "stat", "sockaddr", "msghdr").
	StructName string
}

// Schema is the immutable description of one syscall: its number, name,
// ordered parameters, return descriptor, and category (spec section
// 4.3's "Syscall Schema").
type Schema struct {
	Number     uint64
	Name       string
	Category   Category
	Parameters []ParameterDescriptor
	// ReturnIsErrno is true when the return value is conventionally
	// decoded via the errno decoder (the overwhelming majority of BSD
	// syscalls); false for syscalls whose return is itself a flag set
	// or an opaque handle value.
	ReturnIsErrno bool
}

// Registry is an immutable, built-once mapping from syscall number and
// name to Schema.
type Registry struct {
	byNumber map[uint64]Schema
	byName   map[string]Schema
}

// Build constructs a Registry from an explicit schema list. Callers
// normally pass DarwinSyscalls(); a custom list is accepted so tests can
// build small registries without the full table.
func Build(schemas []Schema) *Registry {
	r := &Registry{
		byNumber: make(map[uint64]Schema, len(schemas)),
		byName:   make(map[string]Schema, len(schemas)),
	}
	for _, s := range schemas {
		r.byNumber[s.Number] = s
		r.byName[strings.ToLower(s.Name)] = s
	}
	return r
}

// Lookup returns the Schema for a syscall number, and whether it was
// found. A miss is not an error: callers fall back to raw rendering
// (spec section 4.3).
func (r *Registry) Lookup(number uint64) (Schema, bool) {
	s, ok := r.byNumber[number]
	return s, ok
}

// LookupByName returns the Schema for a (case-insensitive) syscall name.
func (r *Registry) LookupByName(name string) (Schema, bool) {
	s, ok := r.byName[strings.ToLower(name)]
	return s, ok
}

// Unknown builds a degraded Schema for a syscall number the registry has
// no entry for: name is "syscall_NNN", category is misc, and it carries
// no parameter descriptors, so event.Assemble renders all six argument
// registers as raw hex instead (spec section 4.3's "never drop events"
// requirement). An unfinished event for such a call carries no arguments.
func Unknown(number uint64) Schema {
	return Schema{
		Number:        number,
		Name:          UnknownName(number),
		Category:      CategoryMisc,
		ReturnIsErrno: true,
	}
}

// UnknownName formats the synthetic name used for an unrecognized
// syscall number.
func UnknownName(number uint64) string {
	return "syscall_" + strconv.FormatUint(number, 10)
}
