package decode

import (
	"fmt"
	"strings"
)

// QuoteString renders text as a double-quoted, C-escaped literal, matching
// the text formatter's string convention (spec section 6). If truncated is
// true (the reader hit --string-limit or a missing NUL) a trailing
// ellipsis is appended outside the closing quote.
func QuoteString(text string, truncated bool) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range text {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(&b, `\x%02x`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
	if truncated {
		b.WriteString("...")
	}
	return b.String()
}

// Buffer renders a raw byte slice per opts.BufferStyle: a quoted string
// with standard C escapes (the default), a contiguous hex run (-x), or an
// offset/hex/ASCII dump (-xx). actualLen is the length the syscall
// reported (e.g. the read(2) return value); if it exceeds len(data) the
// rendering is capped and the untruncated length is appended after the
// ellipsis, per spec section 4.4's buffer renderer.
func Buffer(data []byte, actualLen int, opts Options) string {
	switch opts.BufferStyle {
	case BufferStyleHex:
		return bufferHex(data, actualLen, opts)
	case BufferStyleHexDump:
		return bufferHexDump(data, actualLen, opts)
	default:
		return bufferQuoted(data, actualLen, opts)
	}
}

func bufferQuoted(data []byte, actualLen int, opts Options) string {
	cap := opts.limit()
	display := data
	capped := false
	if len(display) > cap {
		display = display[:cap]
		capped = true
	}

	var b strings.Builder
	b.WriteByte('"')
	for _, c := range display {
		switch c {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		default:
			if c < 0x20 || c >= 0x7f {
				fmt.Fprintf(&b, `\x%02x`, c)
			} else {
				b.WriteByte(c)
			}
		}
	}
	b.WriteByte('"')

	if capped || actualLen > len(data) {
		b.WriteString(fmt.Sprintf("... (%d bytes)", actualLen))
	}
	return b.String()
}

func bufferHex(data []byte, actualLen int, opts Options) string {
	cap := opts.limit()
	display := data
	capped := false
	if len(display) > cap {
		display = display[:cap]
		capped = true
	}

	var b strings.Builder
	for _, c := range display {
		fmt.Fprintf(&b, "%02x", c)
	}
	if capped || actualLen > len(data) {
		b.WriteString(fmt.Sprintf("... (%d bytes)", actualLen))
	}
	return b.String()
}

// bufferHexDump renders data sixteen bytes per line as
// "offset  hex...  |ascii|", strace -xx's convention.
func bufferHexDump(data []byte, actualLen int, opts Options) string {
	cap := opts.limit()
	display := data
	capped := false
	if len(display) > cap {
		display = display[:cap]
		capped = true
	}

	const width = 16
	var b strings.Builder
	for off := 0; off < len(display); off += width {
		end := off + width
		if end > len(display) {
			end = len(display)
		}
		line := display[off:end]

		if off > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%04x  ", off)
		for i := 0; i < width; i++ {
			if i < len(line) {
				fmt.Fprintf(&b, "%02x ", line[i])
			} else {
				b.WriteString("   ")
			}
		}
		b.WriteString(" |")
		for _, c := range line {
			if c >= 0x20 && c < 0x7f {
				b.WriteByte(c)
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteString("|")
	}
	if capped || actualLen > len(data) {
		b.WriteString(fmt.Sprintf("\n... (%d bytes)", actualLen))
	}
	return b.String()
}
