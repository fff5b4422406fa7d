//go:build darwin

package decode

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// rawKevent64 mirrors Darwin's struct kevent64_s.
type rawKevent64 struct {
	Ident  uint64
	Filter int16
	Flags  uint16
	Fflags uint32
	Data   int64
	Udata  uint64
	Ext0   uint64
	Ext1   uint64
}

// KeventSize is the byte length of the struct renderer's bounded read for
// "kevent".
const KeventSize = 8 + 2 + 2 + 4 + 8 + 8 + 8 + 8

// filterName renders the (signed, usually negative) EVFILT_* constant.
func filterName(filter int16) string {
	switch filter {
	case -1:
		return "EVFILT_READ"
	case -2:
		return "EVFILT_WRITE"
	case -3:
		return "EVFILT_AIO"
	case -4:
		return "EVFILT_VNODE"
	case -5:
		return "EVFILT_PROC"
	case -6:
		return "EVFILT_SIGNAL"
	case -7:
		return "EVFILT_TIMER"
	case -16:
		return "EVFILT_USER"
	default:
		return fmt.Sprintf("EVFILT_%d", filter)
	}
}

var keventFlagTable = []FlagBit{
	{0x0001, "EV_ADD"},
	{0x0002, "EV_DELETE"},
	{0x0004, "EV_ENABLE"},
	{0x0008, "EV_DISABLE"},
	{0x0010, "EV_ONESHOT"},
	{0x0020, "EV_CLEAR"},
	{0x0040, "EV_RECEIPT"},
	{0x0200, "EV_EOF"},
	{0x8000, "EV_ERROR"},
}

// Kevent renders a struct kevent64_s field-by-field, filter as a symbolic
// EVFILT_* name and flags as an EV_* bitset.
func Kevent(raw []byte, opts Options) (string, error) {
	if len(raw) < KeventSize {
		return "", fmt.Errorf("decode: kevent buffer too short: got %d want %d", len(raw), KeventSize)
	}
	var k rawKevent64
	if err := binary.Read(bytes.NewReader(raw), binary.LittleEndian, &k); err != nil {
		return "", fmt.Errorf("decode: kevent: %w", err)
	}

	return fmt.Sprintf(
		"{ident=%d, filter=%s, flags=%s, fflags=0x%x, data=%d}",
		k.Ident, filterName(k.Filter), FlagSet(uint64(k.Flags), keventFlagTable, opts), k.Fflags, k.Data,
	), nil
}
