// Package cli implements the bundlecheck command-line interface.
//
// The CLI reads a webpack stats document (from a file, stdin, or a build
// command), runs the bundle check against package.json, and prints the
// report. It is built using cobra and logs via charmbracelet/log.
//
// # Commands
//
// The main commands are:
//   - check: Run the check and print the report
//   - stats-options: Print the webpack stats options the check needs
//   - config: Write or show the project configuration
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which also
// logs each module the filter keeps and each package it cannot resolve.
// Loggers are passed through context.Context.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/bundlecheck/pkg/observability"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
// It is safe for sequential use by a single goroutine; concurrent calls to done will race.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress creates a progress tracker that captures the current time as start.
// The returned progress should call done when the operation completes.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// The duration is rounded to the nearest millisecond.
// Example output: "Checked 1204 modules (84ms)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// ctxKey is the type for context keys used in this package.
// Using a distinct type prevents collisions with other packages.
type ctxKey int

// loggerKey is the context key for storing a logger.
const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
// The logger can be retrieved later with loggerFromContext.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx.
// If no logger is attached, it returns log.Default().
// This ensures commands always have a valid logger even if context setup fails.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// logHooks reports check and build events through the logger.
type logHooks struct {
	logger *log.Logger
}

func (h *logHooks) OnCheckStart(_ context.Context, moduleCount int) {
	h.logger.Debug("Checking modules", "count", moduleCount)
}

func (h *logHooks) OnModuleMatched(_ context.Context, module, pkg, reason string, first bool) {
	if first {
		h.logger.Debug("Bundled", "package", pkg, "reason", reason, "module", module)
		return
	}
	h.logger.Debug("Module of known package", "package", pkg, "module", module)
}

func (h *logHooks) OnPackageUnresolved(_ context.Context, module string) {
	h.logger.Debug("No package.json claims module", "module", module)
}

func (h *logHooks) OnCheckComplete(_ context.Context, s observability.CheckSummary, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("Check aborted", "err", err, "elapsed", d.Round(time.Millisecond))
		return
	}
	h.logger.Debug("Check complete",
		"modules", s.Modules, "bundled", s.Bundled, "missing", s.Missing, "unused", s.Unused,
		"elapsed", d.Round(time.Millisecond))
}

func (h *logHooks) OnBuildStart(_ context.Context, command string) {
	h.logger.Info("Running build", "cmd", command)
}

func (h *logHooks) OnBuildComplete(_ context.Context, command string, outputBytes int, d time.Duration, err error) {
	if err != nil {
		h.logger.Error("Build failed", "cmd", command, "err", err)
		return
	}
	h.logger.Debug("Build finished", "stats_bytes", outputBytes, "elapsed", d.Round(time.Millisecond))
}
