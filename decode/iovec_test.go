package decode

import (
	"encoding/binary"
	"errors"
	"testing"

	"macstrace/memory"
)

type fakeTarget struct {
	data map[uint64]byte
}

func (f *fakeTarget) ReadMemory(addr uint64, buf []byte) (int, error) {
	n := 0
	for i := range buf {
		b, ok := f.data[addr+uint64(i)]
		if !ok {
			if n == 0 {
				return 0, errors.New("EFAULT")
			}
			return n, errors.New("EFAULT")
		}
		buf[i] = b
		n++
	}
	return n, nil
}

func newFakeTarget(s string, base uint64) *fakeTarget {
	ft := &fakeTarget{data: make(map[uint64]byte)}
	for i := 0; i < len(s); i++ {
		ft.data[base+uint64(i)] = s[i]
	}
	return ft
}

func TestIOVec(t *testing.T) {
	target := newFakeTarget("hello", 0x1000)
	reader := memory.NewReader(target)

	got, err := IOVec(reader, 0x1000, 5, Options{})
	if err != nil {
		t.Fatalf("IOVec() error: %v", err)
	}
	if got != `"hello"` {
		t.Errorf("IOVec() = %q, want %q", got, `"hello"`)
	}
}

func TestIOVecArray(t *testing.T) {
	target := newFakeTarget("AB", 0x2010)
	// Build one iovec entry at 0x2000: base=0x2010, len=2.
	entry := make([]byte, 16)
	binary.LittleEndian.PutUint64(entry[0:8], 0x2010)
	binary.LittleEndian.PutUint64(entry[8:16], 2)
	for i, b := range entry {
		target.data[0x2000+uint64(i)] = b
	}

	reader := memory.NewReader(target)
	got, err := IOVecArray(reader, 0x2000, 1, Options{})
	if err != nil {
		t.Fatalf("IOVecArray() error: %v", err)
	}
	if got == "" {
		t.Error("IOVecArray() rendered empty")
	}
}
