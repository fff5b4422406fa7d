package debugger

import "fmt"

// softwareBreakpointKind is the GDB Remote Serial Protocol breakpoint
// type byte for a software breakpoint (Z0/z0), the only kind debugserver
// needs here since every install targets a known code address rather
// than a hardware watchpoint.
const softwareBreakpointKind = 0

// setBreakpoint installs a software breakpoint at addr via a Z0 packet.
func (s *Session) setBreakpoint(addr uint64) error {
	_, err := s.conn.request(fmt.Sprintf("Z%d,%x,1", softwareBreakpointKind, addr))
	if err != nil {
		return fmt.Errorf("debugger: set breakpoint at %#x: %w", addr, err)
	}
	return nil
}

// removeBreakpoint clears a previously-installed software breakpoint via
// a z0 packet.
func (s *Session) removeBreakpoint(addr uint64) error {
	_, err := s.conn.request(fmt.Sprintf("z%d,%x,1", softwareBreakpointKind, addr))
	if err != nil {
		return fmt.Errorf("debugger: remove breakpoint at %#x: %w", addr, err)
	}
	return nil
}
