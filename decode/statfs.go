//go:build darwin

package decode

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// rawStatfs mirrors the fixed-size prefix of Darwin's struct statfs
// (sys/mount.h): block size, iosize, block counts, free/avail blocks,
// file counts, free files, filesystem id, owner, type, flags. The
// variable-length fstypename/mntonname/mntfromname C strings that follow
// are rendered separately by the caller, which already has them as
// NUL-terminated byte slices from the bounded struct read.
type rawStatfs struct {
	Bsize       uint32
	IOSize      int32
	Blocks      uint64
	Bfree       uint64
	Bavail      uint64
	Files       uint64
	Ffree       uint64
	FsidVal     [2]int32
	Owner       uint32
	Type        uint32
	Flags       uint32
	Fssubtype   uint32
}

// StatfsFixedSize is the byte length of the struct renderer's bounded read
// for the fixed-size prefix of "statfs".
const StatfsFixedSize = 4 + 4 + 8*5 + 4*2 + 4 + 4 + 4 + 4

// Statfs renders the fixed-size prefix of a Darwin struct statfs. fsType
// and mountedOn are the NUL-terminated fstypename/mntonname strings, read
// and decoded separately by the caller since their offsets sit past the
// fixed prefix this function consumes.
func Statfs(raw []byte, fsType, mountedOn string) (string, error) {
	if len(raw) < StatfsFixedSize {
		return "", fmt.Errorf("decode: statfs buffer too short: got %d want %d", len(raw), StatfsFixedSize)
	}
	var s rawStatfs
	if err := binary.Read(bytes.NewReader(raw), binary.LittleEndian, &s); err != nil {
		return "", fmt.Errorf("decode: statfs: %w", err)
	}

	return fmt.Sprintf(
		"{f_bsize=%d, f_blocks=%d, f_bfree=%d, f_bavail=%d, f_files=%d, f_ffree=%d, f_fstypename=%s, f_mntonname=%s}",
		s.Bsize, s.Blocks, s.Bfree, s.Bavail, s.Files, s.Ffree,
		QuoteString(fsType, false), QuoteString(mountedOn, false),
	), nil
}
