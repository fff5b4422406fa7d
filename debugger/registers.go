package debugger

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"macstrace/arch"
)

// ReadRegisters fetches the general-purpose register set for the
// specified thread via a 'g' packet (implicitly the stub's "current
// thread" is selected first with Hg) and decodes it according to the
// session's architecture.
func (s *Session) ReadRegisters(tid uint64) (arch.Registers, error) {
	if _, err := s.conn.request(fmt.Sprintf("Hg%x", tid)); err != nil {
		return nil, fmt.Errorf("debugger: select thread %d: %w", tid, err)
	}
	reply, err := s.conn.request("g")
	if err != nil {
		return nil, fmt.Errorf("debugger: read registers: %w", err)
	}
	raw, err := hex.DecodeString(reply)
	if err != nil {
		return nil, fmt.Errorf("debugger: decode register reply: %w", err)
	}

	switch s.adapter.Arch() {
	case arch.ARM64:
		return decodeARM64Registers(raw)
	case arch.AMD64:
		return decodeAMD64Registers(raw)
	default:
		return nil, fmt.Errorf("debugger: unsupported architecture %v", s.adapter.Arch())
	}
}

// decodeARM64Registers unpacks a 'g' packet payload in debugserver's
// arm64 GPR order: x0-x28, fp, lr, sp, pc (8 bytes each), cpsr (4 bytes).
func decodeARM64Registers(raw []byte) (arch.ARM64Registers, error) {
	const want = 29*8 + 8 + 8 + 8 + 8 + 4
	if len(raw) < want {
		return arch.ARM64Registers{}, fmt.Errorf("debugger: short arm64 register blob: got %d want %d", len(raw), want)
	}
	var regs arch.ARM64Registers
	off := 0
	for i := range regs.X {
		regs.X[i] = binary.LittleEndian.Uint64(raw[off : off+8])
		off += 8
	}
	regs.FP = binary.LittleEndian.Uint64(raw[off : off+8])
	off += 8
	regs.LR = binary.LittleEndian.Uint64(raw[off : off+8])
	off += 8
	regs.SP = binary.LittleEndian.Uint64(raw[off : off+8])
	off += 8
	regs.PC = binary.LittleEndian.Uint64(raw[off : off+8])
	off += 8
	regs.CPSR = binary.LittleEndian.Uint32(raw[off : off+4])
	return regs, nil
}

// decodeAMD64Registers unpacks a 'g' packet payload in debugserver's
// x86-64 GPR order matching the AMD64Registers field order, 8 bytes each.
func decodeAMD64Registers(raw []byte) (arch.AMD64Registers, error) {
	const fields = 21
	const want = fields * 8
	if len(raw) < want {
		return arch.AMD64Registers{}, fmt.Errorf("debugger: short amd64 register blob: got %d want %d", len(raw), want)
	}
	vals := make([]uint64, fields)
	for i := range vals {
		vals[i] = binary.LittleEndian.Uint64(raw[i*8 : i*8+8])
	}
	return arch.AMD64Registers{
		RAX: vals[0], RBX: vals[1], RCX: vals[2], RDX: vals[3],
		RDI: vals[4], RSI: vals[5], RBP: vals[6], RSP: vals[7],
		R8: vals[8], R9: vals[9], R10: vals[10], R11: vals[11],
		R12: vals[12], R13: vals[13], R14: vals[14], R15: vals[15],
		RIP: vals[16], RFLAGS: vals[17],
		CS: vals[18], FS: vals[19], GS: vals[20],
	}, nil
}
