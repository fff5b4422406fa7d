// Package engine wires the Architecture Adapter, Debugger Session,
// Syscall Registry, Memory Reader, Pairing State Machine, Filter Engine,
// and Event Pipeline together and drives the run loop described in spec
// section 5. The cmd package constructs a config.Config from flags and
// hands it to Run; everything downstream of that call is this package's
// responsibility.
package engine

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"macstrace/arch"
	"macstrace/config"
	"macstrace/debugger"
	"macstrace/event"
	"macstrace/filter"
	"macstrace/format"
	"macstrace/logging"
	"macstrace/memory"
	"macstrace/pairing"
	"macstrace/registry"
	"macstrace/summary"

	tracererrors "macstrace/errors"
)

// Result carries the process exit behavior back to the CLI layer (spec
// section 6's exit-code rule).
type Result struct {
	// ExitCode is what main should pass to os.Exit.
	ExitCode int
}

// Run launches or attaches to the configured target, traces it to
// completion or cancellation, and renders output to cfg.Output. ctx
// cancels on SIGINT/SIGTERM (cmd.GetContext's contract); cancellation
// detaches or kills the target depending on whether it was launched or
// attached, then Run returns with exit code 130.
func Run(ctx context.Context, cfg *config.Config, logger *slog.Logger) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{ExitCode: exitCodeFor(err)}, err
	}

	adapter, err := selectAdapter()
	if err != nil {
		return Result{ExitCode: exitCodeFor(err)}, err
	}

	predicate, err := filter.Parse(cfg.TraceSpec)
	if err != nil {
		return Result{ExitCode: exitCodeFor(err)}, err
	}

	out, closeOut, err := openOutput(cfg.Output)
	if err != nil {
		return Result{ExitCode: exitCodeFor(err)}, err
	}
	defer closeOut()

	launched := len(cfg.Command) > 0
	session := debugger.NewSession(adapter, logger)
	if launched {
		if err := session.Launch(cfg.Command, cfg.FollowFork); err != nil {
			return Result{ExitCode: exitCodeFor(err)}, err
		}
	} else {
		if err := session.Attach(cfg.PID); err != nil {
			return Result{ExitCode: exitCodeFor(err)}, err
		}
	}

	table := pairing.NewTable()
	logger = logging.WithSession(logger, table.SessionID().String())

	aggregator := summary.NewAggregator()
	var sinks []event.Sink
	if cfg.Summary {
		sinks = []event.Sink{aggregator}
	} else {
		sinks = []event.Sink{newFormatter(cfg, out)}
	}
	pipeline := event.NewPipeline(sinks...)

	done := make(chan struct{})
	group, _ := errgroup.WithContext(ctx)
	group.Go(func() error {
		select {
		case <-ctx.Done():
			if launched {
				return session.Kill()
			}
			return session.Detach()
		case <-done:
			return nil
		}
	})

	loop := &runLoop{
		session:   session,
		adapter:   adapter,
		mem:       memory.NewReader(session),
		registry:  registry.Build(registry.DarwinSyscalls()),
		pairing:   table,
		predicate: predicate,
		pipeline:  pipeline,
		opts:      cfg.DecodeOptions(),
		logger:    logger,
	}
	exitStatus, loopErr := loop.run()
	close(done)
	_ = group.Wait()

	if cfg.Summary {
		if err := aggregator.Render(out); err != nil {
			return Result{ExitCode: exitCodeFor(err)}, err
		}
	}

	if ctx.Err() != nil {
		return Result{ExitCode: tracererrors.ErrInterrupted.ExitCode()}, nil
	}
	if loopErr != nil {
		return Result{ExitCode: exitCodeFor(loopErr)}, loopErr
	}
	return Result{ExitCode: exitStatusToCode(exitStatus)}, nil
}

func newFormatter(cfg *config.Config, out io.Writer) event.Sink {
	if cfg.JSON {
		return format.NewJSONFormatter(out)
	}
	return format.NewTextFormatter(out, cfg.Color, cfg.PrintDuration)
}

// selectAdapter picks the Architecture Adapter for the host's own
// architecture; macstrace traces a target of the same architecture it
// runs on (spec section 1's scope: no cross-architecture emulation).
func selectAdapter() (arch.Adapter, error) {
	var a arch.Arch
	switch runtime.GOARCH {
	case "arm64":
		a = arch.ARM64
	case "amd64":
		a = arch.AMD64
	default:
		return nil, tracererrors.New(tracererrors.ErrUsage, "select architecture adapter",
			fmt.Sprintf("unsupported host architecture %q", runtime.GOARCH))
	}
	return arch.New(a)
}

// openOutput resolves --output to a writer and a closer. An empty path
// defaults to stderr, matching spec section 6's "default is stderr".
func openOutput(path string) (io.Writer, func() error, error) {
	if path == "" {
		return os.Stderr, func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return nil, nil, tracererrors.WrapWithTarget(err, tracererrors.ErrSinkIO, "open output", path)
	}
	return f, f.Close, nil
}

// exitCodeFor maps an error to the process exit code per spec section 6,
// defaulting to 1 for errors that never carry an ErrorKind.
func exitCodeFor(err error) int {
	if kind, ok := tracererrors.GetKind(err); ok {
		return kind.ExitCode()
	}
	return 1
}

// exitStatusToCode implements spec section 6's "0 on successful trace
// completion (target exited 0); the target's exit code if nonzero and
// the target exited normally" rule. A negative status means the target
// was terminated by a signal rather than exiting normally; the tracer
// reports a generic failure in that case since the signal number isn't
// preserved by the stop-reply decoder.
func exitStatusToCode(status int) int {
	if status < 0 {
		return 1
	}
	return status
}
