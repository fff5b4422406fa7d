//go:build darwin

package decode

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// rawRusage mirrors the leading fields of Darwin's struct rusage: the two
// timeval fields plus the long-valued counters that follow them.
type rawRusage struct {
	UtimeSec  int64
	UtimeUsec int32
	_         int32 // struct padding after the 32-bit timeval microseconds field
	StimeSec  int64
	StimeUsec int32
	_         int32
	Maxrss    int64
	Ixrss     int64
	Idrss     int64
	Isrss     int64
	Minflt    int64
	Majflt    int64
	Nswap     int64
	Inblock   int64
	Oublock   int64
	Msgsnd    int64
	Msgrcv    int64
	Nsignals  int64
	Nvcsw     int64
	Nivcsw    int64
}

// RusageSize is the byte length of the struct renderer's bounded read for
// "rusage".
const RusageSize = (8+4+4)*2 + 8*14

// Rusage renders a struct rusage: the two timeval fields as
// seconds.microseconds, maxrss/minflt/majflt as plain integers.
func Rusage(raw []byte) (string, error) {
	if len(raw) < RusageSize {
		return "", fmt.Errorf("decode: rusage buffer too short: got %d want %d", len(raw), RusageSize)
	}
	var r rawRusage
	if err := binary.Read(bytes.NewReader(raw), binary.LittleEndian, &r); err != nil {
		return "", fmt.Errorf("decode: rusage: %w", err)
	}

	return fmt.Sprintf(
		"{ru_utime=%d.%06d, ru_stime=%d.%06d, ru_maxrss=%d, ru_minflt=%d, ru_majflt=%d, ru_nvcsw=%d, ru_nivcsw=%d}",
		r.UtimeSec, r.UtimeUsec, r.StimeSec, r.StimeUsec, r.Maxrss, r.Minflt, r.Majflt, r.Nvcsw, r.Nivcsw,
	), nil
}
