//go:build darwin

package decode

import (
	"fmt"
	"net"

	"golang.org/x/sys/unix"
)

// SockAddr renders a raw sockaddr buffer, dispatching on the family byte
// per spec section 4.4: AF_UNIX renders the path, AF_INET/AF_INET6 render
// address literal plus port (and scope for v6), anything else renders as
// hex.
func SockAddr(raw []byte) string {
	if len(raw) < 2 {
		return "<short sockaddr>"
	}
	// Darwin sockaddr layout: sa_len (1 byte), sa_family (1 byte),
	// family-specific payload.
	family := raw[1]

	switch int(family) {
	case unix.AF_UNIX:
		return sockAddrUnix(raw)
	case unix.AF_INET:
		return sockAddrInet(raw)
	case unix.AF_INET6:
		return sockAddrInet6(raw)
	default:
		return fmt.Sprintf("{sa_family=%d, data=0x%x}", family, raw[2:])
	}
}

func sockAddrUnix(raw []byte) string {
	if len(raw) <= 2 {
		return "{sun_family=AF_UNIX, sun_path=\"\"}"
	}
	path := raw[2:]
	if idx := indexNULByte(path); idx >= 0 {
		path = path[:idx]
	}
	return fmt.Sprintf("{sun_family=AF_UNIX, sun_path=%s}", QuoteString(string(path), false))
}

func sockAddrInet(raw []byte) string {
	if len(raw) < 8 {
		return "<short sockaddr_in>"
	}
	port := uint16(raw[2])<<8 | uint16(raw[3])
	ip := net.IPv4(raw[4], raw[5], raw[6], raw[7])
	return fmt.Sprintf("{sin_family=AF_INET, sin_port=%d, sin_addr=%s}", port, ip.String())
}

func sockAddrInet6(raw []byte) string {
	if len(raw) < 28 {
		return "<short sockaddr_in6>"
	}
	port := uint16(raw[2])<<8 | uint16(raw[3])
	flowinfo := uint32(raw[4])<<24 | uint32(raw[5])<<16 | uint32(raw[6])<<8 | uint32(raw[7])
	ip := net.IP(raw[8:24])
	scope := uint32(raw[24])<<24 | uint32(raw[25])<<16 | uint32(raw[26])<<8 | uint32(raw[27])
	_ = flowinfo
	return fmt.Sprintf("{sin6_family=AF_INET6, sin6_port=%d, sin6_addr=%s, sin6_scope_id=%d}", port, ip.String(), scope)
}

func indexNULByte(b []byte) int {
	for i, c := range b {
		if c == 0 {
			return i
		}
	}
	return -1
}
