package decode

import (
	"encoding/binary"
	"fmt"

	"macstrace/memory"
)

// msghdrSize is the 64-bit struct msghdr layout: name ptr, namelen
// (padded to 4 bytes + 4 pad), iov ptr, iovlen, control ptr, controllen
// (padded), flags (padded).
const msghdrSize = 56

// MsgHdr reads and recursively renders a struct msghdr: its sockaddr
// (msg_name), its iovec array, and — when non-zero — its control buffer,
// per spec section 4.4.
func MsgHdr(mem *memory.Reader, addr uint64, opts Options) (string, error) {
	raw, err := mem.ReadBytes(addr, msghdrSize)
	if err != nil {
		return "", err
	}
	data := raw.Data
	if len(data) < msghdrSize {
		return "<short msghdr>", nil
	}

	nameAddr := binary.LittleEndian.Uint64(data[0:8])
	nameLen := binary.LittleEndian.Uint32(data[8:12])
	iovAddr := binary.LittleEndian.Uint64(data[16:24])
	iovLen := binary.LittleEndian.Uint32(data[24:32])
	controlAddr := binary.LittleEndian.Uint64(data[32:40])
	controlLen := binary.LittleEndian.Uint32(data[40:48])
	flags := int32(binary.LittleEndian.Uint32(data[48:52]))

	name := "NULL"
	if nameAddr != 0 && nameLen > 0 {
		nameBuf, err := mem.ReadBytes(nameAddr, int(nameLen))
		if err == nil {
			name = SockAddr(nameBuf.Data)
		} else {
			name = "<unreadable>"
		}
	}

	iovRendered := "[]"
	if iovAddr != 0 && iovLen > 0 {
		iovRendered, err = IOVecArray(mem, iovAddr, int(iovLen), opts)
		if err != nil {
			iovRendered = "<unreadable>"
		}
	}

	control := "NULL"
	if controlAddr != 0 && controlLen > 0 {
		controlBuf, err := mem.ReadBytes(controlAddr, int(controlLen))
		if err == nil {
			control = Buffer(controlBuf.Data, int(controlLen), opts)
		} else {
			control = "<unreadable>"
		}
	}

	return fmt.Sprintf(
		"{msg_name=%s, msg_iov=%s, msg_control=%s, msg_flags=%s}",
		name, iovRendered, control, FlagSet(uint64(uint32(flags)), msgFlagTable, opts),
	), nil
}

// msgFlagTable decodes the MSG_* flags reported in msghdr.msg_flags.
var msgFlagTable = []FlagBit{
	{0x1, "MSG_OOB"},
	{0x2, "MSG_PEEK"},
	{0x4, "MSG_DONTROUTE"},
	{0x8, "MSG_EOR"},
	{0x10, "MSG_TRUNC"},
	{0x20, "MSG_CTRUNC"},
	{0x40, "MSG_WAITALL"},
	{0x80, "MSG_DONTWAIT"},
	{0x100, "MSG_EOF"},
}
