package decode

import "fmt"

// File type bits from the Darwin <sys/stat.h> st_mode word (S_IFMT mask).
const (
	modeTypeMask = 0o170000
	modeFIFO     = 0o010000
	modeChar     = 0o020000
	modeDir      = 0o040000
	modeBlock    = 0o060000
	modeRegular  = 0o100000
	modeSymlink  = 0o120000
	modeSocket   = 0o140000
)

// Mode renders a permission/mode word as octal, matching strace's
// rendering of the mode_t argument to open/chmod/etc (spec section 4.4).
func Mode(mode uint64) string {
	return fmt.Sprintf("0%o", mode&0o7777)
}

// FileTypeSymbol returns the one-letter ls(1)-style file type symbol for
// the S_IFMT bits of a stat mode word, used by the stat struct renderer.
func FileTypeSymbol(mode uint64) string {
	switch mode & modeTypeMask {
	case modeFIFO:
		return "p"
	case modeChar:
		return "c"
	case modeDir:
		return "d"
	case modeBlock:
		return "b"
	case modeRegular:
		return "-"
	case modeSymlink:
		return "l"
	case modeSocket:
		return "s"
	default:
		return "?"
	}
}
