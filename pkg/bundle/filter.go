package bundle

import (
	"slices"

	"github.com/matzehuels/bundlecheck/pkg/stats"
)

// ModuleFilter decides whether a module counts as a bundled package.
type ModuleFilter interface {
	// Match returns the reason text and true when m qualifies.
	Match(m stats.Module) (reason string, ok bool)
}

// FilterFunc adapts a function to [ModuleFilter].
type FilterFunc func(m stats.Module) (string, bool)

// Match calls f(m).
func (f FilterFunc) Match(m stats.Module) (string, bool) { return f(m) }

// RootLibraryFilter keeps library modules imported directly by application
// code. A module qualifies when:
//
//  1. its name classifies as [Library];
//  2. some entry of its issuer path classifies as [Host];
//  3. some reason classifies as [Host] under the reason check;
//  4. the reason text of the first such reason is non-empty.
//
// Missing or malformed fields fail the check.
type RootLibraryFilter struct {
	c *Classifier
}

// NewRootLibraryFilter creates the default filter.
func NewRootLibraryFilter(c *Classifier) *RootLibraryFilter {
	return &RootLibraryFilter{c: c}
}

// Match implements [ModuleFilter].
func (f *RootLibraryFilter) Match(m stats.Module) (string, bool) {
	if f.c.ClassifyModule(m.Name) != Library {
		return "", false
	}
	if !m.IssuerPath.Valid() || !slices.ContainsFunc(m.IssuerPath.Items, func(i stats.Issuer) bool {
		return f.c.ClassifyModule(i.Name) == Host
	}) {
		return "", false
	}
	reason, ok := f.firstHostReason(m)
	if !ok || reason == "" {
		return "", false
	}
	return reason, true
}

// firstHostReason scans reasons in order and stops at the first one whose
// module name is application code.
func (f *RootLibraryFilter) firstHostReason(m stats.Module) (string, bool) {
	if !m.Reasons.Valid() {
		return "", false
	}
	for _, r := range m.Reasons.Items {
		if f.c.ClassifyReason(r.ModuleName) == Host {
			return f.c.ReasonText(r.ModuleName), true
		}
	}
	return "", false
}

// AnyLibraryFilter keeps every library module, transitive ones included.
// The reason is the first application-code reason when there is one,
// otherwise the first named reason, otherwise the module path itself.
type AnyLibraryFilter struct {
	c *Classifier
}

// NewAnyLibraryFilter creates a filter that ignores issuer provenance.
func NewAnyLibraryFilter(c *Classifier) *AnyLibraryFilter {
	return &AnyLibraryFilter{c: c}
}

// Match implements [ModuleFilter].
func (f *AnyLibraryFilter) Match(m stats.Module) (string, bool) {
	if f.c.ClassifyModule(m.Name) != Library {
		return "", false
	}
	if m.Reasons.Valid() {
		var fallback string
		for _, r := range m.Reasons.Items {
			if !r.ModuleName.Valid() {
				continue
			}
			text := f.c.ReasonText(r.ModuleName)
			if f.c.ClassifyReason(r.ModuleName) == Host && text != "" {
				return text, true
			}
			if fallback == "" {
				fallback = text
			}
		}
		if fallback != "" {
			return fallback, true
		}
	}
	return f.c.First(m.Name), true
}

// Filter names accepted by [NewFilter].
const (
	FilterRoot = "root"
	FilterAny  = "any"
)

// FilterNames lists the built-in filters.
var FilterNames = []string{FilterRoot, FilterAny}

// NewFilter returns the built-in filter called name, or false.
func NewFilter(name string, c *Classifier) (ModuleFilter, bool) {
	switch name {
	case FilterRoot, "":
		return NewRootLibraryFilter(c), true
	case FilterAny:
		return NewAnyLibraryFilter(c), true
	default:
		return nil, false
	}
}
