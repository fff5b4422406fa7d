// Command macstrace traces the BSD syscalls a macOS process makes,
// without disabling System Integrity Protection.
package main

import (
	"fmt"
	"os"

	"macstrace/cmd"
	tracererrors "macstrace/errors"
)

func main() {
	err := cmd.Execute()
	if err != nil {
		printError(err)
	}
	os.Exit(cmd.ExitCode)
}

func printError(err error) {
	if kind, ok := tracererrors.GetKind(err); ok {
		fmt.Fprintf(os.Stderr, "macstrace: %s: %v\n", kind, err)
		return
	}
	fmt.Fprintf(os.Stderr, "macstrace: %v\n", err)
}
