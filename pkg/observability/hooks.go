// Package observability provides hooks for logging and metrics around a
// bundle check.
//
// The check packages never import a logging or metrics backend. Instead
// they emit events through hooks registered at startup; the defaults do
// nothing.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetCheckHooks(&myCheckHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Check().OnCheckStart(ctx, len(modules))
//	// ... filter, resolve, reconcile ...
//	observability.Check().OnCheckComplete(ctx, summary, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Check Hooks
// =============================================================================

// CheckSummary carries the set sizes of a finished check.
type CheckSummary struct {
	Modules int // Modules in the build
	Bundled int // Distinct bundled packages
	Missing int // Bundled but not declared
	Unused  int // Declared but not bundled
}

// CheckHooks receives events from the bundle check.
type CheckHooks interface {
	// OnCheckStart records the start of a check over moduleCount modules.
	OnCheckStart(ctx context.Context, moduleCount int)

	// OnModuleMatched records a module kept by the filter and the package
	// it was attributed to. first is false when the package was already seen.
	OnModuleMatched(ctx context.Context, module, pkg, reason string, first bool)

	// OnPackageUnresolved records a kept module no package manifest claims.
	OnPackageUnresolved(ctx context.Context, module string)

	// OnCheckComplete records the end of a check.
	OnCheckComplete(ctx context.Context, summary CheckSummary, duration time.Duration, err error)
}

// =============================================================================
// Build Hooks
// =============================================================================

// BuildHooks receives events from the build command that produces stats.
type BuildHooks interface {
	// OnBuildStart records the command about to run.
	OnBuildStart(ctx context.Context, command string)

	// OnBuildComplete records the command result and size of its output.
	OnBuildComplete(ctx context.Context, command string, outputBytes int, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopCheckHooks is a no-op implementation of CheckHooks.
type NoopCheckHooks struct{}

func (NoopCheckHooks) OnCheckStart(context.Context, int)                                   {}
func (NoopCheckHooks) OnModuleMatched(context.Context, string, string, string, bool)       {}
func (NoopCheckHooks) OnPackageUnresolved(context.Context, string)                         {}
func (NoopCheckHooks) OnCheckComplete(context.Context, CheckSummary, time.Duration, error) {}

// NoopBuildHooks is a no-op implementation of BuildHooks.
type NoopBuildHooks struct{}

func (NoopBuildHooks) OnBuildStart(context.Context, string)                               {}
func (NoopBuildHooks) OnBuildComplete(context.Context, string, int, time.Duration, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	checkHooks CheckHooks = NoopCheckHooks{}
	buildHooks BuildHooks = NoopBuildHooks{}
	hooksMu    sync.RWMutex
)

// SetCheckHooks registers custom check hooks.
// This should be called once at application startup before any check runs.
func SetCheckHooks(h CheckHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		checkHooks = h
	}
}

// SetBuildHooks registers custom build hooks.
func SetBuildHooks(h BuildHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		buildHooks = h
	}
}

// Check returns the registered check hooks.
func Check() CheckHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return checkHooks
}

// Build returns the registered build hooks.
func Build() BuildHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return buildHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	checkHooks = NoopCheckHooks{}
	buildHooks = NoopBuildHooks{}
}
