// Package errors provides predefined sentinel errors for common failure cases.
package errors

// Usage/configuration errors.
var (
	// ErrNoTarget indicates neither a command nor --pid was given.
	ErrNoTarget = &TracerError{
		Kind:   ErrUsage,
		Detail: "no command or --pid given",
	}

	// ErrBothTargets indicates a command and --pid were both given.
	ErrBothTargets = &TracerError{
		Kind:   ErrUsage,
		Detail: "command and --pid are mutually exclusive",
	}

	// ErrInvalidTraceSpec indicates a malformed --trace expression.
	ErrInvalidTraceSpec = &TracerError{
		Kind:   ErrUsage,
		Detail: "invalid --trace expression",
	}

	// ErrInvalidColorPolicy indicates an unrecognized --color value.
	ErrInvalidColorPolicy = &TracerError{
		Kind:   ErrUsage,
		Detail: "--color must be one of auto, always, never",
	}

	// ErrFollowForkUnsupported indicates --follow-forks was requested; it
	// is a documented Non-goal (spec section 1).
	ErrFollowForkUnsupported = &TracerError{
		Kind:   ErrUsage,
		Detail: "follow-fork is not implemented",
	}
)

// Session lifecycle errors.
var (
	// ErrAlreadyLaunched indicates Launch/Attach was called twice.
	ErrAlreadyLaunched = &TracerError{
		Kind:   ErrLaunch,
		Detail: "session already launched or attached",
	}

	// ErrAttachFailed indicates the attach to a target PID failed.
	ErrAttachFailed = &TracerError{
		Kind:   ErrAttach,
		Detail: "attach failed",
	}

	// ErrProcessGone indicates the target process could not be found.
	ErrProcessGone = &TracerError{
		Kind:   ErrAttach,
		Detail: "target process not found",
	}

	// ErrSpawnFailed indicates the target process failed to spawn.
	ErrSpawnFailed = &TracerError{
		Kind:   ErrLaunch,
		Detail: "failed to spawn target process",
	}
)

// Symbol and breakpoint errors.
var (
	// ErrTrampolineNotFound indicates none of the syscall trampoline
	// symbols resolved in the target; this is always fatal (spec section
	// 4.6: "If none of the symbol names resolves, the session fails").
	ErrTrampolineNotFound = &TracerError{
		Kind:   ErrSymbolResolution,
		Detail: "no syscall trampoline symbol resolved",
	}

	// ErrEntryBreakpointFailed indicates the entry breakpoint could not
	// be installed.
	ErrEntryBreakpointFailed = &TracerError{
		Kind:   ErrBreakpointInstall,
		Detail: "failed to install entry breakpoint",
	}

	// ErrExitBreakpointFailed indicates a one-shot exit breakpoint could
	// not be armed for a live syscall; non-fatal (spec section 4.10).
	ErrExitBreakpointFailed = &TracerError{
		Kind:   ErrBreakpointInstall,
		Detail: "failed to arm exit breakpoint",
	}
)

// Memory and decoding errors.
var (
	// ErrTargetUnreadable indicates the target cannot be inspected at
	// all (e.g. process gone); distinct from a single short/faulted read
	// on one argument, which degrades to "<unreadable>" instead.
	ErrTargetUnreadable = &TracerError{
		Kind:   ErrMemoryRead,
		Detail: "target memory is not inspectable",
	}
)

// Output sink errors.
var (
	// ErrSinkWrite indicates a write to the configured output sink
	// failed; always fatal (spec section 7).
	ErrSinkWrite = &TracerError{
		Kind:   ErrSinkIO,
		Detail: "failed to write to output sink",
	}

	// ErrSinkOpen indicates the --output path could not be opened.
	ErrSinkOpen = &TracerError{
		Kind:   ErrSinkIO,
		Detail: "failed to open output sink",
	}
)
