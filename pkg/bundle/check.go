package bundle

import (
	"context"
	"time"

	"github.com/matzehuels/bundlecheck/pkg/observability"
	"github.com/matzehuels/bundlecheck/pkg/stats"
)

// Entry is one bundled package and the reference that pulled it in.
type Entry struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// Result is the outcome of a check.
type Result struct {
	Bundled  []Entry  // Bundled packages, first-seen order
	Declared []string // Declared dependencies the check ran against
	Missing  []string // Bundled but not declared
	Unused   []string // Declared but not bundled
}

// Names returns the bundled package names in order.
func (r *Result) Names() []string {
	names := make([]string, len(r.Bundled))
	for i, e := range r.Bundled {
		names[i] = e.Name
	}
	return names
}

// Options customizes a [Checker].
type Options struct {
	// Filter selects bundled modules. Defaults to [RootLibraryFilter].
	Filter ModuleFilter

	// Resolver attributes modules to packages. Defaults to [Resolver]
	// rooted at the project directory.
	Resolver PackageResolver

	// OnDone, if set, is called with the result sets after each run.
	OnDone func(missing, unused []string, bundled []Entry)
}

// Checker runs the bundle check. A Checker holds no per-run state and can
// be reused; each run works on the module list it is given.
type Checker struct {
	classifier *Classifier
	filter     ModuleFilter
	resolver   PackageResolver
	onDone     func(missing, unused []string, bundled []Entry)
}

// NewChecker creates a checker for the project at root.
func NewChecker(cfg Config, root string, opts Options) *Checker {
	c := NewClassifier(cfg)
	ch := &Checker{
		classifier: c,
		filter:     opts.Filter,
		resolver:   opts.Resolver,
		onDone:     opts.OnDone,
	}
	if ch.filter == nil {
		ch.filter = NewRootLibraryFilter(c)
	}
	if ch.resolver == nil {
		ch.resolver = NewResolver(root, c.Config())
	}
	return ch
}

// Bundled returns the distinct packages selected by the filter, in module
// order. A package keeps the reason of the first module that selected it.
// Modules whose package cannot be resolved are dropped.
func (ch *Checker) Bundled(ctx context.Context, modules []stats.Module) ([]Entry, error) {
	hooks := observability.Check()
	entries := []Entry{}
	seen := make(map[string]bool)

	for _, m := range modules {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		reason, ok := ch.filter.Match(m)
		if !ok {
			continue
		}
		path := ch.classifier.First(m.Name)
		name, ok := ch.resolver.Resolve(path)
		if !ok {
			hooks.OnPackageUnresolved(ctx, path)
			continue
		}
		first := !seen[name]
		hooks.OnModuleMatched(ctx, m.Name.String(), name, reason, first)
		if first {
			seen[name] = true
			entries = append(entries, Entry{Name: name, Reason: reason})
		}
	}
	return entries, nil
}

// Run checks modules against the declared dependency names.
// It fails only when ctx is cancelled.
func (ch *Checker) Run(ctx context.Context, modules []stats.Module, declared []string) (*Result, error) {
	hooks := observability.Check()
	start := time.Now()
	hooks.OnCheckStart(ctx, len(modules))

	bundled, err := ch.Bundled(ctx, modules)
	if err != nil {
		hooks.OnCheckComplete(ctx, observability.CheckSummary{Modules: len(modules)}, time.Since(start), err)
		return nil, err
	}

	res := &Result{Bundled: bundled, Declared: declared}
	res.Missing, res.Unused = Reconcile(res.Names(), declared)

	hooks.OnCheckComplete(ctx, observability.CheckSummary{
		Modules: len(modules),
		Bundled: len(res.Bundled),
		Missing: len(res.Missing),
		Unused:  len(res.Unused),
	}, time.Since(start), nil)

	if ch.onDone != nil {
		ch.onDone(res.Missing, res.Unused, res.Bundled)
	}
	return res, nil
}
