package memory

import (
	"errors"
	"testing"

	tracererrors "macstrace/errors"
)

type fakeTarget struct {
	data     map[uint64]byte
	maxAddr  uint64
	faultAt  uint64
	hasFault bool
}

func (f *fakeTarget) ReadMemory(addr uint64, buf []byte) (int, error) {
	n := 0
	for i := range buf {
		a := addr + uint64(i)
		if f.hasFault && a >= f.faultAt {
			if n == 0 {
				return 0, errors.New("EFAULT")
			}
			return n, errors.New("EFAULT")
		}
		b, ok := f.data[a]
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

func TestReadCStringFull(t *testing.T) {
	target := newFakeTarget("hello\x00world", 0x1000)
	r := NewReader(target)

	got, err := r.ReadCString(0x1000, 64)
	if err != nil {
		t.Fatalf("ReadCString() error: %v", err)
	}
	if got.Text != "hello" {
		t.Errorf("Text = %q, want %q", got.Text, "hello")
	}
	if got.Truncated {
		t.Error("Truncated should be false when NUL found")
	}
}

func TestReadCStringNoTerminator(t *testing.T) {
	target := newFakeTarget("nonullhere", 0x2000)
	r := NewReader(target)

	got, err := r.ReadCString(0x2000, 5)
	if err != nil {
		t.Fatalf("ReadCString() error: %v", err)
	}
	if got.Text != "nonul" {
		t.Errorf("Text = %q, want %q", got.Text, "nonul")
	}
	if !got.Truncated {
		t.Error("Truncated should be true when maxLen reached without NUL")
	}
}

func TestReadCStringFault(t *testing.T) {
	target := &fakeTarget{data: map[uint64]byte{}}
	r := NewReader(target)

	_, err := r.ReadCString(0x3000, 16)
	if err == nil {
		t.Fatal("expected error on totally unreadable target")
	}
	if kind, ok := tracererrors.GetKind(err); !ok || kind != tracererrors.ErrMemoryRead {
		t.Errorf("error kind = %v, ok=%v, want ErrMemoryRead", kind, ok)
	}
}

func TestReadBytesShortRead(t *testing.T) {
	target := &fakeTarget{data: map[uint64]byte{0x4000: 'a', 0x4001: 'b'}}
	r := NewReader(target)

	got, err := r.ReadBytes(0x4000, 4)
	if err != nil {
		t.Fatalf("ReadBytes() error: %v", err)
	}
	if string(got.Data) != "ab" {
		t.Errorf("Data = %q, want %q", got.Data, "ab")
	}
	if !got.Truncated {
		t.Error("Truncated should be true on short read")
	}
}

func TestReadBytesZeroLength(t *testing.T) {
	r := NewReader(&fakeTarget{data: map[uint64]byte{}})
	got, err := r.ReadBytes(0x5000, 0)
	if err != nil {
		t.Fatalf("ReadBytes(0) error: %v", err)
	}
	if got.Data != nil || got.Truncated {
		t.Errorf("ReadBytes(0) = %+v, want zero value", got)
	}
}

func TestReadArray(t *testing.T) {
	target := newFakeTarget("AAAABBBBCCCC", 0x6000)
	r := NewReader(target)

	got, err := r.ReadArray(0x6000, 4, 3)
	if err != nil {
		t.Fatalf("ReadArray() error: %v", err)
	}
	if len(got.Data) != 12 {
		t.Errorf("len(Data) = %d, want 12", len(got.Data))
	}
	if got.Truncated {
		t.Error("Truncated should be false for a full read")
	}
}
