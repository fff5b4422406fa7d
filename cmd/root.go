// Package cmd implements the macstrace command-line interface: flag
// parsing and the top-level Execute entry point. Everything downstream
// of flag resolution — launching or attaching, running the debugger
// event loop, rendering output — lives in package engine.
package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"macstrace/config"
	"macstrace/engine"
	"macstrace/format"
	"macstrace/logging"

	tracererrors "macstrace/errors"
)

// Version information set at build time.
var (
	Version   = "0.1.0"
	BuildTime = "unknown"
)

// ExitCode holds the process exit code Execute determined, per spec
// section 6's exit-code rule; main reads it after Execute returns.
var ExitCode int

// Global/trace flags, resolved into a config.Config in runTrace.
var (
	flagPID           int
	flagOutput        string
	flagJSON          bool
	flagColor         string
	flagSummary       bool
	flagTraceSpec     string
	flagNoAbbrev      bool
	flagStringLimit   int
	flagPrintDuration bool
	flagHexCount      int
	flagFollowForks   bool

	flagLog       string
	flagLogFormat string
	flagDebug     bool
)

// rootCmd is macstrace itself: "macstrace [flags] command [args...]" or
// "macstrace [flags] --pid N" (spec section 6).
var rootCmd = &cobra.Command{
	Use:   "macstrace [flags] command [args...]",
	Short: "User-space, SIP-safe syscall tracer for macOS",
	Long: `macstrace traces the BSD syscalls a macOS process makes, without
disabling System Integrity Protection, by installing breakpoints on the
libsystem syscall trampoline through Apple's debugserver.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.ArbitraryArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogging()
		return nil
	},
	RunE: runTrace,
}

func init() {
	rootCmd.Flags().SetInterspersed(false)

	rootCmd.Flags().IntVar(&flagPID, "pid", 0, "attach to an already-running process instead of launching one")
	rootCmd.Flags().StringVar(&flagOutput, "output", "", "redirect the event stream to a file (default: stderr)")
	rootCmd.Flags().BoolVar(&flagJSON, "json", false, "emit newline-delimited JSON instead of strace-style text")
	rootCmd.Flags().StringVar(&flagColor, "color", "auto", "coloring policy for text output: auto, always, never")
	rootCmd.Flags().BoolVarP(&flagSummary, "summary", "c", false, "replace per-event output with a summary table at shutdown")
	rootCmd.Flags().StringVarP(&flagTraceSpec, "trace", "e", "", "comma-separated syscall names and/or category tags to trace")
	rootCmd.Flags().BoolVar(&flagNoAbbrev, "no-abbrev", false, "render flag integers as raw hex instead of symbols")
	rootCmd.Flags().IntVar(&flagStringLimit, "string-limit", 0, "cap for buffer/string rendering (default 32)")
	rootCmd.Flags().BoolVarP(&flagPrintDuration, "print-duration", "T", false, "prefix each line with the call's elapsed time")
	rootCmd.Flags().CountVarP(&flagHexCount, "x", "x", "render buffers as hex (-x) or an offset/hex/ASCII dump (-xx)")
	rootCmd.Flags().BoolVar(&flagFollowForks, "follow-forks", false, "trace child processes too (not implemented)")

	rootCmd.PersistentFlags().StringVar(&flagLog, "log", "", "set the log file path")
	rootCmd.PersistentFlags().StringVar(&flagLogFormat, "log-format", "text", "set the format for log output (text or json)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "enable debug logging")
}

// Execute runs the root command and returns its error, if any; ExitCode
// is populated either way.
func Execute() error {
	return rootCmd.Execute()
}

// GetContext returns a context that cancels on SIGINT/SIGTERM.
func GetContext() context.Context {
	ctx, _ := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	return ctx
}

func runTrace(cmd *cobra.Command, args []string) error {
	colorPolicy, err := format.ParseColorPolicy(flagColor)
	if err != nil {
		ExitCode = tracererrors.ErrUsage.ExitCode()
		return tracererrors.Wrap(err, tracererrors.ErrUsage, "parse --color")
	}

	cfg := &config.Config{
		Command:       args,
		PID:           flagPID,
		Output:        flagOutput,
		JSON:          flagJSON,
		Color:         colorPolicy,
		PrintDuration: flagPrintDuration,
		NoAbbrev:      flagNoAbbrev,
		StringLimit:   flagStringLimit,
		BufferStyle:   config.ParseBufferStyle(flagHexCount),
		Summary:       flagSummary,
		TraceSpec:     flagTraceSpec,
		FollowFork:    flagFollowForks,
	}
	result, err := engine.Run(GetContext(), cfg, logging.Default())
	ExitCode = result.ExitCode
	return err
}

func setupLogging() {
	logOutput := os.Stderr
	if flagLog != "" {
		f, err := os.OpenFile(flagLog, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err == nil {
			logOutput = f
		}
	}

	logLevel := slog.LevelInfo
	if flagDebug {
		logLevel = slog.LevelDebug
	}

	if flagLogFormat == "json" || flagLog != "" || flagDebug {
		logger := logging.NewLogger(logging.Config{
			Level:  logLevel,
			Format: flagLogFormat,
			Output: logOutput,
		})
		logging.SetDefault(logger)
	}
}
