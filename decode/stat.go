//go:build darwin

package decode

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// rawStat64 mirrors the field order of Darwin's 64-bit struct stat
// (sys/stat.h, __DARWIN_STRUCT_STAT64), read in one bounded memory
// fetch and then rendered field-by-field per spec section 4.4.
type rawStat64 struct {
	Dev           int32
	Mode          uint16
	Nlink         uint16
	Ino           uint64
	UID           uint32
	GID           uint32
	Rdev          int32
	AtimeSec      int64
	AtimeNsec     int64
	MtimeSec      int64
	MtimeNsec     int64
	CtimeSec      int64
	CtimeNsec     int64
	BirthtimeSec  int64
	BirthtimeNsec int64
	Size          int64
	Blocks        int64
	Blksize       int32
	Flags         uint32
	Gen           uint32
}

// StatSize is the byte length of the struct renderer's single bounded
// read for "stat".
const StatSize = 4 + 2 + 2 + 8 + 4 + 4 + 4 + 8*8 + 8 + 8 + 4 + 4 + 4

// Stat renders a Darwin struct stat from its raw bytes: mode as octal plus
// file-type symbol, timestamps as seconds.nanoseconds, size/blocks
// fields as plain integers, st_dev through Device (spec section 4.4).
func Stat(raw []byte) (string, error) {
	if len(raw) < StatSize {
		return "", fmt.Errorf("decode: stat buffer too short: got %d want %d", len(raw), StatSize)
	}
	var s rawStat64
	if err := binary.Read(bytes.NewReader(raw), binary.LittleEndian, &s); err != nil {
		return "", fmt.Errorf("decode: stat: %w", err)
	}

	return fmt.Sprintf(
		"{st_dev=%s, st_mode=%s%s, st_nlink=%d, st_ino=%d, st_uid=%d, st_gid=%d, st_size=%d, st_blocks=%d, st_blksize=%d, st_atime=%s, st_mtime=%s, st_ctime=%s}",
		Device(uint64(s.Dev)),
		FileTypeSymbol(uint64(s.Mode)),
		Mode(uint64(s.Mode)),
		s.Nlink,
		s.Ino,
		s.UID,
		s.GID,
		s.Size,
		s.Blocks,
		s.Blksize,
		Timespec(s.AtimeSec, s.AtimeNsec),
		Timespec(s.MtimeSec, s.MtimeNsec),
		Timespec(s.CtimeSec, s.CtimeNsec),
	), nil
}
