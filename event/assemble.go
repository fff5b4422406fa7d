package event

import (
	"fmt"
	"time"

	"macstrace/arch"
	"macstrace/decode"
	"macstrace/memory"
	"macstrace/registry"
)

// mfsTypeNameLen and maxPathLen mirror the trailing fixed-size C string
// fields of Darwin's struct statfs (sys/mount.h): f_fstypename and
// f_mntonname/f_mntfromname.
const (
	mfsTypeNameLen = 16
	maxPathLen     = 1024
)

// Assemble decodes a completed syscall's arguments and return value into
// a SyscallEvent. snap was captured at entry-hit; exitRegs is the
// register snapshot at exit-hit. A memory fault on any single argument
// degrades that argument to "<unreadable>" rather than failing the
// whole event (spec section 4.10).
func Assemble(snap EntrySnapshot, exitRegs arch.Registers, adapter arch.Adapter, mem *memory.Reader, opts decode.Options) SyscallEvent {
	retval := adapter.ReturnValue(exitRegs)
	isErr := adapter.ErrorIndicator(exitRegs)

	// The carry-bit/errno convention is universal across BSD syscalls on
	// failure; ReturnIsErrno only describes how a *successful* return is
	// rendered (e.g. mmap returns a pointer, not 0), so it must not gate
	// this decode.
	var decoded string
	if isErr {
		decoded = decode.Errno(retval)
	}

	args := make([]Arg, 0, len(snap.Schema.Parameters))
	for i, p := range snap.Schema.Parameters {
		if i >= len(snap.Args) {
			break
		}
		args = append(args, Arg{Name: p.Name, Value: decodeArg(mem, p, snap, i, retval, opts)})
	}
	// An unrecognized number has no parameter descriptors; render every
	// argument register as raw hex instead.
	if len(snap.Schema.Parameters) == 0 && snap.Schema.Name == registry.UnknownName(snap.Schema.Number) {
		for i, v := range snap.Args {
			args = append(args, Arg{Name: fmt.Sprintf("arg%d", i), Value: fmt.Sprintf("%#x", v)})
		}
	}

	ts := time.Now()
	return SyscallEvent{
		Timestamp:     ts,
		Duration:      ts.Sub(snap.Entered),
		ThreadID:      snap.ThreadID,
		PID:           snap.PID,
		Syscall:       snap.Schema.Name,
		Category:      snap.Schema.Category,
		Args:          args,
		Retval:        retval,
		RetvalDecoded: decoded,
		Error:         isErr,
	}
}

// CaptureEntryArgs renders every IN/INOUT string and buffer argument while
// the entry-hit register snapshot is still fresh, before the syscall runs.
// Call it before handing snap to the Pairing State Machine. OUT-only
// string/buffer arguments and all KindStruct arguments are left for
// Assemble, which reads them from the post-call address space instead.
func CaptureEntryArgs(snap *EntrySnapshot, mem *memory.Reader, opts decode.Options) {
	for i, p := range snap.Schema.Parameters {
		if i >= len(snap.Args) {
			break
		}
		if p.Direction == registry.DirOut {
			continue
		}
		if p.Kind != registry.KindString && p.Kind != registry.KindBuffer {
			continue
		}
		snap.PreCaptured[i] = decodeArg(mem, p, *snap, i, 0, opts)
		snap.PreCapturedValid[i] = true
	}
}

// Unfinished synthesizes an event for a snapshot whose exit never
// arrived: the thread died, or a later entry-hit preempted it (spec
// section 4.7). syntheticID tags it for log correlation.
func Unfinished(snap EntrySnapshot, syntheticID string) SyscallEvent {
	args := make([]Arg, 0, len(snap.Schema.Parameters))
	for i, p := range snap.Schema.Parameters {
		if i >= len(snap.Args) {
			break
		}
		value := fmt.Sprintf("%#x", snap.Args[i])
		if snap.PreCapturedValid[i] {
			value = snap.PreCaptured[i]
		}
		args = append(args, Arg{Name: p.Name, Value: value})
	}
	return SyscallEvent{
		Timestamp:   time.Now(),
		ThreadID:    snap.ThreadID,
		PID:         snap.PID,
		Syscall:     snap.Schema.Name,
		Category:    snap.Schema.Category,
		Args:        args,
		Unfinished:  true,
		SyntheticID: syntheticID,
	}
}

// decodeArg materializes one argument's raw register value per its
// ParameterDescriptor.Kind, falling back to "<unreadable>" on a memory
// fault for that one argument only.
func decodeArg(mem *memory.Reader, p registry.ParameterDescriptor, snap EntrySnapshot, index int, retval int64, opts decode.Options) string {
	if snap.PreCapturedValid[index] {
		return snap.PreCaptured[index]
	}

	raw := snap.Args[index]

	switch p.Kind {
	case registry.KindScalar:
		return fmt.Sprintf("%#x", raw)

	case registry.KindString:
		if raw == 0 {
			return "NULL"
		}
		cstr, err := mem.ReadCString(raw, stringLimit(opts))
		if err != nil {
			return "<unreadable>"
		}
		return decode.QuoteString(cstr.Text, cstr.Truncated)

	case registry.KindBuffer:
		if raw == 0 {
			return "NULL"
		}
		actualLen := bufferLengthHint(snap, index, retval, opts)
		readLen := actualLen
		if limit := stringLimit(opts); readLen > limit {
			readLen = limit
		}
		b, err := mem.ReadBytes(raw, readLen)
		if err != nil {
			return "<unreadable>"
		}
		return decode.Buffer(b.Data, actualLen, opts)

	case registry.KindStruct:
		if raw == 0 {
			return "NULL"
		}
		s, err := decodeStruct(mem, p.StructName, raw, snap, index, opts)
		if err != nil {
			return "<unreadable>"
		}
		return s

	default:
		return fmt.Sprintf("%#x", raw)
	}
}

// bufferLengthHint finds how many bytes to read for a KindBuffer
// argument: a sibling scalar parameter conventionally named for a
// byte count, or — for an OUT buffer whose call returns a byte count
// no larger than that (read) — the return value. Without such a
// sibling, a positive return value, else the string limit.
func bufferLengthHint(snap EntrySnapshot, index int, retval int64, opts decode.Options) int {
	names := []string{"nbyte", "count", "len", "length", "nbytes"}
	for i, p := range snap.Schema.Parameters {
		if i >= len(snap.Args) {
			break
		}
		for _, n := range names {
			if p.Name == n {
				count := int64(snap.Args[i])
				if snap.Schema.Parameters[index].Direction == registry.DirOut && retval >= 0 && retval <= count {
					return int(retval)
				}
				return int(count)
			}
		}
	}
	if retval > 0 {
		return int(retval)
	}
	return stringLimit(opts)
}

// stringLimit mirrors package decode's default-32 rule for Options
// without reaching into its unexported helper.
func stringLimit(opts decode.Options) int {
	if opts.StringLimit > 0 {
		return opts.StringLimit
	}
	return 32
}

// decodeStruct dispatches a KindStruct argument to the matching struct
// renderer in package decode, reading the bytes it needs through mem.
func decodeStruct(mem *memory.Reader, structName string, addr uint64, snap EntrySnapshot, index int, opts decode.Options) (string, error) {
	switch structName {
	case "stat":
		raw, err := readFixed(mem, addr, decode.StatSize)
		if err != nil {
			return "", err
		}
		return decode.Stat(raw)

	case "sockaddr":
		raw, err := mem.ReadBytes(addr, 128)
		if err != nil {
			return "", err
		}
		return decode.SockAddr(raw.Data), nil

	case "kevent":
		raw, err := readFixed(mem, addr, decode.KeventSize)
		if err != nil {
			return "", err
		}
		return decode.Kevent(raw, opts)

	case "sigaction":
		raw, err := readFixed(mem, addr, decode.SigactionSize)
		if err != nil {
			return "", err
		}
		return decode.Sigaction(raw, opts)

	case "rusage":
		raw, err := readFixed(mem, addr, decode.RusageSize)
		if err != nil {
			return "", err
		}
		return decode.Rusage(raw)

	case "statfs":
		return decodeStatfs(mem, addr)

	case "msghdr":
		return decode.MsgHdr(mem, addr, opts)

	case "iovec":
		count := iovecCountHint(snap, index)
		return decode.IOVecArray(mem, addr, count, opts)

	default:
		return fmt.Sprintf("%#x", addr), nil
	}
}

func readFixed(mem *memory.Reader, addr uint64, size int) ([]byte, error) {
	b, err := mem.ReadBytes(addr, size)
	if err != nil {
		return nil, err
	}
	return b.Data, nil
}

func decodeStatfs(mem *memory.Reader, addr uint64) (string, error) {
	fixed, err := mem.ReadBytes(addr, decode.StatfsFixedSize)
	if err != nil {
		return "", err
	}
	fsType, _ := mem.ReadCString(addr+uint64(decode.StatfsFixedSize), mfsTypeNameLen)
	mountedOn, _ := mem.ReadCString(addr+uint64(decode.StatfsFixedSize+mfsTypeNameLen), maxPathLen)
	return decode.Statfs(fixed.Data, fsType.Text, mountedOn.Text)
}

// iovecCountHint finds the sibling "iovcnt" scalar that tells the
// renderer how many iovec elements follow the pointer.
func iovecCountHint(snap EntrySnapshot, index int) int {
	for i, p := range snap.Schema.Parameters {
		if i >= len(snap.Args) {
			break
		}
		if p.Name == "iovcnt" {
			return int(snap.Args[i])
		}
	}
	return 1
}
