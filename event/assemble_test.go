package event

import (
	"testing"
	"time"

	"macstrace/arch"
	"macstrace/decode"
	"macstrace/memory"
	"macstrace/registry"
)

// fakeTarget answers every memory read as a fault; none of the scalar-only
// fixtures below should ever touch it.
type fakeTarget struct{}

func (fakeTarget) ReadMemory(addr uint64, buf []byte) (int, error) {
	return 0, errFakeFault
}

var errFakeFault = errFake("no memory backing in this test")

type errFake string

func (e errFake) Error() string { return string(e) }

func TestAssembleDecodesErrnoRegardlessOfReturnIsErrno(t *testing.T) {
	schema, ok := registry.Build(registry.DarwinSyscalls()).LookupByName("mmap")
	if !ok {
		t.Fatal("mmap not in registry")
	}
	if schema.ReturnIsErrno {
		t.Fatal("test assumes mmap.ReturnIsErrno is false")
	}

	snap := EntrySnapshot{
		ThreadID: 1,
		PID:      100,
		Schema:   schema,
		Entered:  time.Now(),
	}

	// x86-64 Darwin: carry flag set on error, RAX holds -errno. -12 is
	// ENOMEM on Darwin, same numeric value as Linux.
	exitRegs := arch.AMD64Registers{RAX: uint64(int64(-12)), RFLAGS: 1}

	mem := memory.NewReader(fakeTarget{})
	ev := Assemble(snap, exitRegs, amd64Adapter(t), mem, decode.Options{})

	if !ev.Error {
		t.Fatal("expected Error=true for a carry-bit-set return")
	}
	if ev.Retval >= 0 {
		t.Fatalf("Retval = %d, want negative", ev.Retval)
	}
	if ev.RetvalDecoded != "ENOMEM" {
		t.Fatalf("RetvalDecoded = %q, want ENOMEM — a failing mmap must still decode an "+
			"errno symbol even though ReturnIsErrno is false for its success path", ev.RetvalDecoded)
	}
}

func TestAssembleSuccessHasNoErrnoDecoded(t *testing.T) {
	schema, ok := registry.Build(registry.DarwinSyscalls()).LookupByName("close")
	if !ok {
		t.Fatal("close not in registry")
	}
	snap := EntrySnapshot{Schema: schema, Entered: time.Now()}
	exitRegs := arch.AMD64Registers{RAX: 0, RFLAGS: 0}

	mem := memory.NewReader(fakeTarget{})
	ev := Assemble(snap, exitRegs, amd64Adapter(t), mem, decode.Options{})

	if ev.Error {
		t.Fatal("expected Error=false for a clear carry bit")
	}
	if ev.RetvalDecoded != "" {
		t.Fatalf("RetvalDecoded = %q, want empty on success", ev.RetvalDecoded)
	}
}

func TestCaptureEntryArgsPreservesExecvePathAcrossAddressSpaceReplacement(t *testing.T) {
	schema, ok := registry.Build(registry.DarwinSyscalls()).LookupByName("execve")
	if !ok {
		t.Fatal("execve not in registry")
	}

	const pathAddr = 0x1000
	pathBytes := append([]byte("/bin/ls"), 0)
	mem := memory.NewReader(recordingTarget{addr: pathAddr, data: pathBytes})

	snap := EntrySnapshot{
		ThreadID: 1,
		PID:      100,
		Schema:   schema,
		Args:     [6]uint64{pathAddr, 0, 0},
		Entered:  time.Now(),
	}
	CaptureEntryArgs(&snap, mem, decode.Options{})

	if !snap.PreCapturedValid[0] {
		t.Fatal("expected path (DirIn) to be captured at entry-hit")
	}

	// Simulate the exit-hit register read happening after the address
	// space has been replaced: the old path address now faults.
	deadMem := memory.NewReader(fakeTarget{})
	exitRegs := arch.AMD64Registers{RAX: 0, RFLAGS: 0}
	ev := Assemble(snap, exitRegs, amd64Adapter(t), deadMem, decode.Options{})

	var got string
	for _, a := range ev.Args {
		if a.Name == "path" {
			got = a.Value
		}
	}
	if got != `"/bin/ls"` {
		t.Fatalf("path arg = %q, want the entry-captured string despite the dead post-call address space", got)
	}
}

// recordingTarget answers ReadMemory for one known address/content pair
// and faults on everything else.
type recordingTarget struct {
	addr uint64
	data []byte
}

func (r recordingTarget) ReadMemory(addr uint64, buf []byte) (int, error) {
	if addr != r.addr {
		return 0, errFakeFault
	}
	n := copy(buf, r.data)
	return n, nil
}

// amd64Adapter returns a real Architecture Adapter for x86-64 so these
// tests exercise the same Adapter implementation the engine selects at
// runtime, rather than a hand-rolled stand-in.
func amd64Adapter(t *testing.T) arch.Adapter {
	t.Helper()
	a, err := arch.New(arch.AMD64)
	if err != nil {
		t.Fatalf("arch.New(AMD64): %v", err)
	}
	return a
}
