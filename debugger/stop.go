package debugger

import (
	"encoding/hex"
	"strconv"
	"strings"
)

// stoppedForAttachSignal is the synthetic signal debugserver reports
// immediately after a successful attach; the session resumes silently on
// it rather than forwarding it as a real signal-hit (spec section 4.5).
const stoppedForAttachSignal = 17 // SIGSTOP

// parseStopReply interprets a GDB Remote Serial Protocol stop-reply
// packet ('T', 'S', 'W', or 'X') into a StopEvent.
func parseStopReply(reply string) StopEvent {
	if reply == "" {
		return StopEvent{Kind: StopExited}
	}

	switch reply[0] {
	case 'W':
		status, _ := strconv.ParseInt(reply[1:], 16, 32)
		return StopEvent{Kind: StopExited, ExitStatus: int(status)}
	case 'X':
		return StopEvent{Kind: StopExited, ExitStatus: -1}
	case 'T', 'S':
		sigHex := reply[1:]
		if len(sigHex) > 2 {
			sigHex = sigHex[:2]
		}
		sig, _ := strconv.ParseInt(sigHex, 16, 32)
		tid := parseThreadID(reply)
		if int(sig) == stoppedForAttachSignal {
			return StopEvent{Kind: StopSignal, Signal: int(sig), ThreadID: tid}
		}
		return classifyTrap(reply, tid, int(sig))
	default:
		return StopEvent{Kind: StopSignal}
	}
}

// classifyTrap packages a 'T'/'S' stop-reply as a StopSignal event
// carrying the signal and thread id. It does not tell an entry-hit from
// an exit-hit; that reclassification happens later, against the
// BreakpointController's installed breakpoints.
func classifyTrap(reply string, tid uint64, sig int) StopEvent {
	return StopEvent{Kind: StopSignal, Signal: sig, ThreadID: tid}
}

// parseThreadID extracts the "thread:<hex>;" key from a stop-reply
// packet's key-value tail.
func parseThreadID(reply string) uint64 {
	if len(reply) >= 3 && (reply[0] == 'T' || reply[0] == 'S') {
		reply = reply[3:]
	}
	for _, kv := range strings.Split(reply, ";") {
		if strings.HasPrefix(kv, "thread:") {
			n, _ := strconv.ParseUint(strings.TrimPrefix(kv, "thread:"), 16, 64)
			return n
		}
	}
	return 0
}

// decodeHexInto decodes a hex-encoded 'm' packet reply into buf, returning
// the number of bytes actually decoded. debugserver returns "E<nn>" on a
// memory fault, which decodes to zero bytes.
func decodeHexInto(reply string, buf []byte) (int, error) {
	if len(reply) >= 1 && reply[0] == 'E' {
		return 0, nil
	}
	decoded, err := hex.DecodeString(reply)
	if err != nil {
		return 0, err
	}
	n := copy(buf, decoded)
	return n, nil
}
