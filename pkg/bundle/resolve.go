package bundle

import (
	"iter"
	"path/filepath"

	"github.com/matzehuels/bundlecheck/pkg/manifest"
)

// PackageResolver maps a bundled file to the package that owns it.
type PackageResolver interface {
	// Resolve returns the owning package name, or false when the file
	// cannot be attributed.
	Resolve(path string) (string, bool)
}

// Resolver attributes files to packages by reading the nearest ancestor
// manifest that declares a name. Relative paths are taken relative to the
// project root.
//
// Every call walks the filesystem afresh; nothing is cached.
type Resolver struct {
	root     string
	manifest string
}

// NewResolver creates a resolver rooted at root, looking for manifests
// named cfg.ManifestFile.
func NewResolver(root string, cfg Config) *Resolver {
	return &Resolver{root: root, manifest: cfg.WithDefaults().ManifestFile}
}

// Resolve walks upward from the directory containing path and returns the
// first non-empty manifest name. Manifests without a name, unreadable files
// and malformed documents are skipped.
func (r *Resolver) Resolve(path string) (string, bool) {
	if path == "" {
		return "", false
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(r.root, path)
	}
	// Relative roots would stop the walk at ".".
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	for dir := range Ancestors(filepath.Dir(path)) {
		m, err := manifest.Load(filepath.Join(dir, r.manifest))
		if err != nil {
			continue
		}
		if m.Name != "" {
			return m.Name, true
		}
	}
	return "", false
}

// Ancestors yields dir and each of its parents up to the filesystem root.
func Ancestors(dir string) iter.Seq[string] {
	return func(yield func(string) bool) {
		dir = filepath.Clean(dir)
		for {
			if !yield(dir) {
				return
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				return
			}
			dir = parent
		}
	}
}
