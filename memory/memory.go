// Package memory provides bounded, truncating reads of a traced process's
// address space (spec section 4.2).
//
// macOS has no process_vm_readv equivalent; every read is issued through the
// platform debugger's own memory-read capability (an 'm' packet over the GDB
// Remote Serial Protocol, see the debugger package), exposed here behind the
// narrow TargetReader interface so this package stays ignorant of the wire
// protocol.
package memory

import (
	"fmt"

	tracererrors "macstrace/errors"
)

// defaultChunkSize bounds a single underlying read request, mirroring the
// page-at-a-time scan DataDog's ptracer uses for PeekString-style reads.
const defaultChunkSize = 256

// TargetReader is the narrow capability this package needs from the
// platform debugger: read up to len(buf) bytes starting at addr, returning
// however many bytes were actually read before a fault.
type TargetReader interface {
	ReadMemory(addr uint64, buf []byte) (n int, err error)
}

// Reader performs bounded, softly-failing reads of target memory.
type Reader struct {
	target TargetReader
}

// NewReader returns a Reader backed by target.
func NewReader(target TargetReader) *Reader {
	return &Reader{target: target}
}

// Bytes is the result of a memory read: the data obtained (possibly
// shorter than requested) and whether it was truncated by a fault, an
// unmapped page, or a missing NUL terminator.
type Bytes struct {
	Data      []byte
	Truncated bool
}

// ReadBytes reads exactly length bytes at addr, best-effort. A short read
// (fault partway through) returns the bytes obtained so far with
// Truncated set; it is not itself an error, per spec section 4.2 — only a
// totally unreadable target returns an error.
func (r *Reader) ReadBytes(addr uint64, length int) (Bytes, error) {
	if length <= 0 {
		return Bytes{}, nil
	}
	buf := make([]byte, length)
	n, err := r.target.ReadMemory(addr, buf)
	if n == 0 && err != nil {
		return Bytes{Truncated: true}, tracererrors.WrapWithDetail(err, tracererrors.ErrMemoryRead, "read_bytes",
			fmt.Sprintf("fault reading %d bytes at %#x", length, addr))
	}
	return Bytes{Data: buf[:n], Truncated: n < length}, nil
}

// ReadArray reads count consecutive elements of elementSize bytes starting
// at addr, returning the raw concatenated bytes. Truncated is set if fewer
// than count full elements were obtained.
func (r *Reader) ReadArray(addr uint64, elementSize, count int) (Bytes, error) {
	return r.ReadBytes(addr, elementSize*count)
}

// CString is the result of reading a NUL-terminated string: the decoded
// text (NUL excluded) and whether a terminator was found within maxLen.
type CString struct {
	Text      string
	Truncated bool
}

// ReadCString reads a NUL-terminated string at addr, scanning at most
// maxLen bytes in bounded chunks. If no NUL is found within maxLen, the
// text collected so far is returned flagged as truncated; callers render
// a truncated string with a trailing ellipsis (spec section 4.4's buffer
// renderer convention).
func (r *Reader) ReadCString(addr uint64, maxLen int) (CString, error) {
	if maxLen <= 0 {
		return CString{}, nil
	}

	var collected []byte
	remaining := maxLen
	offset := uint64(0)
	sawFault := false

	for remaining > 0 {
		chunkLen := defaultChunkSize
		if chunkLen > remaining {
			chunkLen = remaining
		}
		chunk := make([]byte, chunkLen)
		n, err := r.target.ReadMemory(addr+offset, chunk)
		if n == 0 && err != nil {
			sawFault = true
			break
		}
		if idx := indexNUL(chunk[:n]); idx >= 0 {
			collected = append(collected, chunk[:idx]...)
			return CString{Text: string(collected)}, nil
		}
		collected = append(collected, chunk[:n]...)
		offset += uint64(n)
		remaining -= n
		if n < chunkLen {
			// Short read with no NUL: the page ended mid-read.
			sawFault = true
			break
		}
	}

	if len(collected) == 0 && sawFault {
		return CString{Truncated: true}, tracererrors.WrapWithDetail(
			fmt.Errorf("no readable bytes"), tracererrors.ErrMemoryRead, "read_cstring",
			fmt.Sprintf("fault reading string at %#x", addr))
	}

	return CString{Text: string(collected), Truncated: true}, nil
}

func indexNUL(b []byte) int {
	for i, c := range b {
		if c == 0 {
			return i
		}
	}
	return -1
}
