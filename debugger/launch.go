package debugger

import (
	"fmt"
	"os"
	"syscall"
)

// launchSync is a pipe used to rendezvous with the optional interposition
// helper library when follow-spawn is requested (spec section 4.5/9): the
// helper SIGSTOPs newly-spawned children and the tracer must not race
// ahead of that stop. Adapted from the parent/child OCI create-start
// rendezvous pipe this teacher's runtime uses for its own launch
// synchronization, repurposed here for the narrower "child is stopped"
// signal instead of a full create/start protocol.
type launchSync struct {
	parent *os.File
	child  *os.File
}

func newLaunchSync() (*launchSync, error) {
	fds := make([]int, 2)
	if err := syscall.Pipe(fds); err != nil {
		return nil, fmt.Errorf("launchSync: pipe: %w", err)
	}
	return &launchSync{
		parent: os.NewFile(uintptr(fds[0]), "launchsync-parent"),
		child:  os.NewFile(uintptr(fds[1]), "launchsync-child"),
	}, nil
}

// ParentFile returns the reading end, inherited by the tracer.
func (l *launchSync) ParentFile() *os.File { return l.parent }

// ChildFile returns the writing end. Launch does not pass it to the
// spawned process.
func (l *launchSync) ChildFile() *os.File { return l.child }

// WaitForChildStop blocks until one byte can be read from the pipe and
// reports ok=true when it arrives; a failed read yields ok=false and a
// nil error. While this process holds the writing end open, a read with
// nothing written does not return.
func (l *launchSync) WaitForChildStop() (ok bool, err error) {
	buf := make([]byte, 1)
	n, err := l.parent.Read(buf)
	if err != nil {
		return false, nil
	}
	return n > 0, nil
}

// Close releases both ends of the pipe.
func (l *launchSync) Close() {
	if l.parent != nil {
		l.parent.Close()
	}
	if l.child != nil {
		l.child.Close()
	}
}
