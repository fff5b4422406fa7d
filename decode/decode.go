// Package decode turns raw register values and raw memory regions into the
// human-readable strings a strace-style trace is made of (spec section
// 4.4). Every exported decoder is a pure function of its inputs: a scalar
// value, a referenced memory region, or a register view. None of them touch
// the network, the filesystem, or process state.
package decode

import "fmt"

// Options carries the rendering knobs a decoder needs that come from the
// command line rather than from the syscall being decoded: --no-abbrev and
// --string-limit (spec section 6).
type Options struct {
	// NoAbbrev renders flag integers as raw hex and enum values as
	// decimal instead of symbols.
	NoAbbrev bool
	// StringLimit caps buffer/string rendering length; 0 means the
	// package default of 32.
	StringLimit int
	// BufferStyle selects how Buffer renders its bytes: quoted string
	// (the default), a single hex run (-x), or an offset/hex/ASCII dump
	// (-xx). It has no effect on QuoteString.
	BufferStyle BufferRenderStyle
}

// BufferRenderStyle selects Buffer's rendering convention.
type BufferRenderStyle int

const (
	// BufferStyleQuoted renders a buffer the way a C string literal is
	// rendered, the package default.
	BufferStyleQuoted BufferRenderStyle = iota
	// BufferStyleHex renders a buffer as one contiguous lowercase hex run.
	BufferStyleHex
	// BufferStyleHexDump renders a buffer as a multi-line
	// offset/hex/ASCII dump, strace -xx's convention.
	BufferStyleHexDump
)

func (o Options) limit() int {
	if o.StringLimit > 0 {
		return o.StringLimit
	}
	return 32
}

// FlagBit is one (mask, symbol) pair in a flag decoder's symbol table.
type FlagBit struct {
	Mask  uint64
	Name  string
}

// FlagSet decodes a bitmask value against an ordered table of (mask,
// symbol) pairs, producing "SYM1|SYM2|0x<hex residual>". Bits not claimed
// by any table entry are reported once, combined, as a trailing hex
// literal. A zero value with no zero-symbol entry in the table renders as
// "0". When opts.NoAbbrev is set, the raw hex value is returned unchanged
// regardless of the table.
func FlagSet(value uint64, table []FlagBit, opts Options) string {
	if opts.NoAbbrev {
		return fmt.Sprintf("0x%x", value)
	}
	if value == 0 {
		for _, b := range table {
			if b.Mask == 0 {
				return b.Name
			}
		}
		return "0"
	}

	var parts []string
	remaining := value
	for _, b := range table {
		if b.Mask == 0 {
			continue
		}
		if remaining&b.Mask == b.Mask {
			parts = append(parts, b.Name)
			remaining &^= b.Mask
		}
	}
	if remaining != 0 {
		parts = append(parts, fmt.Sprintf("0x%x", remaining))
	}
	if len(parts) == 0 {
		return "0"
	}
	out := parts[0]
	for _, p := range parts[1:] {
		out += "|" + p
	}
	return out
}

// EnumEntry is one value->symbol mapping in an enum decoder's table.
type EnumEntry struct {
	Value uint64
	Name  string
}

// Enum maps a value to its symbol, or on miss to "<prefix>_<decimal>" —
// never to raw hex, so an unrecognized enum value stays legible (spec
// section 4.4). When opts.NoAbbrev is set, the raw value is returned as
// decimal.
func Enum(value uint64, table []EnumEntry, prefix string, opts Options) string {
	if opts.NoAbbrev {
		return fmt.Sprintf("%d", value)
	}
	for _, e := range table {
		if e.Value == value {
			return e.Name
		}
	}
	return fmt.Sprintf("%s_%d", prefix, value)
}
