// Package pkg provides the libraries behind bundlecheck.
//
// # Overview
//
// bundlecheck reads the module graph webpack writes with --json, finds the
// third-party packages that application code imports directly, and
// compares them with the dependencies declared in package.json. The pkg
// directory is organized as:
//
//  1. [stats] - The webpack stats document (parse, dump, options)
//  2. [manifest] - package.json sections in document order
//  3. [bundle] - Classification, package resolution, filtering, reconciliation
//  4. [report] - Text, JSON and graph output
//  5. [errors] and [observability] - Error codes and event hooks
//
// # Architecture
//
// The data flow of a check:
//
//	webpack stats.json
//	         ↓
//	    [stats] package (lenient decode of the module list)
//	         ↓
//	    [bundle] package (filter modules, resolve packages, deduplicate)
//	         ↓
//	    [bundle.Reconcile] against [manifest] sections
//	         ↓
//	    [report] package (text, JSON, DOT/SVG)
//
// # Quick Start
//
//	st, _ := stats.Import("dist/stats.json")
//	m, _ := manifest.Load("package.json")
//	declared, _ := m.Declared("dependencies")
//
//	res, _ := bundle.NewChecker(bundle.DefaultConfig(), ".", bundle.Options{}).
//	    Run(ctx, st.Modules, declared)
//	report.WriteText(os.Stdout, res, report.TextOptions{})
package pkg
