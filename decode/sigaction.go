//go:build darwin

package decode

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// rawSigaction mirrors Darwin's struct __sigaction (handler/mask/flags;
// the tracer never needs sa_tramp, so it is skipped).
type rawSigaction struct {
	Handler uint64
	Mask    uint32
	Flags   int32
}

// SigactionSize is the byte length of the struct renderer's bounded read
// for "sigaction".
const SigactionSize = 8 + 4 + 4

var sigactionFlagTable = []FlagBit{
	{0x0001, "SA_ONSTACK"},
	{0x0002, "SA_RESTART"},
	{0x0004, "SA_RESETHAND"},
	{0x0008, "SA_NOCLDSTOP"},
	{0x0010, "SA_NODEFER"},
	{0x0020, "SA_NOCLDWAIT"},
	{0x0040, "SA_SIGINFO"},
}

// Sigaction renders a struct sigaction: handler as a bare pointer (SIG_DFL
// and SIG_IGN are rendered symbolically), mask as raw hex, flags as an
// SA_* bitset.
func Sigaction(raw []byte, opts Options) (string, error) {
	if len(raw) < SigactionSize {
		return "", fmt.Errorf("decode: sigaction buffer too short: got %d want %d", len(raw), SigactionSize)
	}
	var s rawSigaction
	if err := binary.Read(bytes.NewReader(raw), binary.LittleEndian, &s); err != nil {
		return "", fmt.Errorf("decode: sigaction: %w", err)
	}

	handler := handlerSymbol(s.Handler)
	return fmt.Sprintf(
		"{sa_handler=%s, sa_mask=0x%x, sa_flags=%s}",
		handler, s.Mask, FlagSet(uint64(uint32(s.Flags)), sigactionFlagTable, opts),
	), nil
}

func handlerSymbol(addr uint64) string {
	switch addr {
	case 0:
		return "SIG_DFL"
	case ^uint64(0):
		return "SIG_IGN"
	default:
		return fmt.Sprintf("0x%x", addr)
	}
}
