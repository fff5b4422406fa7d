// Package arch provides abstractions around architecture-dependent details:
// syscall calling conventions, register layout, and the symbol names that
// mark the BSD syscall trampoline on each supported macOS architecture.
//
// All architecture-specific knowledge is confined to this package. The rest
// of the tracer talks to a Registers value and an Adapter, never to a raw
// register struct or a GOARCH build tag.
package arch

import "fmt"

// Arch identifies a supported target architecture.
type Arch int

const (
	// ARM64 is the aarch64 architecture, the primary target (spec section 1).
	ARM64 Arch = iota
	// AMD64 is the x86-64 architecture, the secondary target.
	AMD64
)

// String implements fmt.Stringer.
func (a Arch) String() string {
	switch a {
	case ARM64:
		return "arm64"
	case AMD64:
		return "amd64"
	default:
		return fmt.Sprintf("Arch(%d)", int(a))
	}
}

// MaxSyscallArgs is the number of general-purpose argument registers the
// calling convention guarantees on both supported architectures.
const MaxSyscallArgs = 6

// Registers is an opaque snapshot of one thread's general-purpose register
// set, as returned by a platform debugger 'g' packet. Adapter methods
// interpret it; nothing outside this package inspects its layout.
type Registers interface {
	// Arch reports which architecture this snapshot was captured on.
	Arch() Arch
}

// Adapter maps the abstract notion of "syscall number" and "argN" onto the
// concrete registers of one architecture. There is one Adapter per Arch;
// callers select the Adapter once, at session setup, from the target's
// reported architecture and use it for every stop thereafter.
type Adapter interface {
	// Arch returns the architecture this adapter targets.
	Arch() Arch

	// SyscallNumber reads the BSD syscall number from the entry-stop
	// registers. ARM64 reads the dedicated syscall register (x16);
	// x86-64 reads the corresponding general-purpose register (rax).
	SyscallNumber(regs Registers) uint64

	// Arg reads argument i (0-based, i < MaxSyscallArgs) from the
	// entry-stop registers, ordered by the platform calling convention.
	Arg(regs Registers, i int) uint64

	// ReturnValue reads the raw return value from the exit-stop
	// registers.
	ReturnValue(regs Registers) int64

	// ErrorIndicator reports whether the kernel signaled an error on
	// this syscall return. Both supported ABIs use a carry-style status
	// flag; the adapter normalizes it to a bool.
	ErrorIndicator(regs Registers) bool

	// SyscallEntrySymbols returns the ordered list of libsystem symbol
	// names that implement the BSD syscall trampoline on this
	// architecture. Multiple names are returned because the symbol has
	// been renamed across macOS releases; the Breakpoint Controller
	// tries each in turn and fails only if none resolve.
	SyscallEntrySymbols() []string

	// ReturnAddress computes the address at which to arm the one-shot
	// exit breakpoint for the syscall that just entered. On ARM64 this
	// is the link register; on x86-64 it is the word at the top of the
	// stack at trampoline entry, which the adapter reads via readWord.
	ReturnAddress(regs Registers, readWord func(addr uint64) (uint64, error)) (uint64, error)

	// InstructionPointer reads the current program counter.
	InstructionPointer(regs Registers) uint64
}

// New returns the Adapter for a, or an error if a is not a recognized
// architecture.
func New(a Arch) (Adapter, error) {
	switch a {
	case ARM64:
		return arm64Adapter{}, nil
	case AMD64:
		return amd64Adapter{}, nil
	default:
		return nil, fmt.Errorf("arch: unsupported architecture %v", a)
	}
}
