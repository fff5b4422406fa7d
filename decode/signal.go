//go:build darwin

package decode

import (
	"strconv"

	"golang.org/x/sys/unix"
)

// signalTable maps a Darwin signal number to its symbolic name, following
// the same "wire the real golang.org/x/sys/unix constants" convention as
// errnoTable and flags.go.
var signalTable = map[int]string{
	int(unix.SIGHUP):   "SIGHUP",
	int(unix.SIGINT):   "SIGINT",
	int(unix.SIGQUIT):  "SIGQUIT",
	int(unix.SIGILL):   "SIGILL",
	int(unix.SIGTRAP):  "SIGTRAP",
	int(unix.SIGABRT):  "SIGABRT",
	int(unix.SIGFPE):   "SIGFPE",
	int(unix.SIGKILL):  "SIGKILL",
	int(unix.SIGBUS):   "SIGBUS",
	int(unix.SIGSEGV):  "SIGSEGV",
	int(unix.SIGSYS):   "SIGSYS",
	int(unix.SIGPIPE):  "SIGPIPE",
	int(unix.SIGALRM):  "SIGALRM",
	int(unix.SIGTERM):  "SIGTERM",
	int(unix.SIGURG):   "SIGURG",
	int(unix.SIGSTOP):  "SIGSTOP",
	int(unix.SIGTSTP):  "SIGTSTP",
	int(unix.SIGCONT):  "SIGCONT",
	int(unix.SIGCHLD):  "SIGCHLD",
	int(unix.SIGTTIN):  "SIGTTIN",
	int(unix.SIGTTOU):  "SIGTTOU",
	int(unix.SIGIO):    "SIGIO",
	int(unix.SIGXCPU):  "SIGXCPU",
	int(unix.SIGXFSZ):  "SIGXFSZ",
	int(unix.SIGVTALRM): "SIGVTALRM",
	int(unix.SIGPROF):  "SIGPROF",
	int(unix.SIGWINCH): "SIGWINCH",
	int(unix.SIGUSR1):  "SIGUSR1",
	int(unix.SIGUSR2):  "SIGUSR2",
}

// SignalName returns a signal's symbolic name, or "SIG<n>" if unrecognized.
func SignalName(sig int) string {
	if name, ok := signalTable[sig]; ok {
		return name
	}
	return "SIG" + strconv.Itoa(sig)
}
