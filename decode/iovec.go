package decode

import (
	"encoding/binary"
	"fmt"
	"strings"

	"macstrace/memory"
)

// iovecSize is the byte size of a 64-bit struct iovec: base pointer then
// length, both 8 bytes, little-endian on both supported architectures.
const iovecSize = 16

// IOVec renders one iovec's contents: the data at iov_base, up to iov_len
// bytes, quoted per the buffer renderer convention.
func IOVec(mem *memory.Reader, base uint64, length uint64, opts Options) (string, error) {
	if length == 0 {
		return `""`, nil
	}
	want := int(length)
	if want > opts.limit() {
		want = opts.limit()
	}
	data, err := mem.ReadBytes(base, want)
	if err != nil {
		return "", err
	}
	return Buffer(data.Data, int(length), opts), nil
}

// IOVecArray reads count struct iovec entries at addr and renders each as
// "[{iov_base=0x.., iov_len=N, data="..."} ...]", the shape msghdr's
// recursive iovec rendering uses (spec section 4.4).
func IOVecArray(mem *memory.Reader, addr uint64, count int, opts Options) (string, error) {
	if count <= 0 {
		return "[]", nil
	}
	raw, err := mem.ReadArray(addr, iovecSize, count)
	if err != nil {
		return "", err
	}

	var entries []string
	for i := 0; i*iovecSize+iovecSize <= len(raw.Data); i++ {
		chunk := raw.Data[i*iovecSize : i*iovecSize+iovecSize]
		base := binary.LittleEndian.Uint64(chunk[0:8])
		length := binary.LittleEndian.Uint64(chunk[8:16])
		rendered, err := IOVec(mem, base, length, opts)
		if err != nil {
			rendered = fmt.Sprintf("<unreadable iov_base=0x%x>", base)
		}
		entries = append(entries, fmt.Sprintf("{iov_base=0x%x, iov_len=%d, data=%s}", base, length, rendered))
	}
	return "[" + strings.Join(entries, ", ") + "]", nil
}
