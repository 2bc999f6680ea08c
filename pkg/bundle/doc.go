// Package bundle finds the third-party packages a build embeds and checks
// them against the declared dependencies.
//
// # Overview
//
// The check runs in four steps over the module list of one build
// ([stats.Module]):
//
//  1. [Classifier] labels module and reason identifiers as library code
//     (under ./node_modules/), host code (the application) or unknown.
//  2. A [ModuleFilter] keeps the modules that count as bundled packages.
//     The default, [RootLibraryFilter], keeps only root libraries: library
//     modules imported by application code, not ones pulled in transitively
//     by other libraries. It also yields the importing file as the reason.
//  3. [Resolver] maps each kept module to the name declared in the nearest
//     ancestor package.json.
//  4. [Reconcile] diffs the ordered package list against the declared
//     dependencies: missing = bundled - declared, unused = declared - bundled.
//
// [Checker] wires the steps together:
//
//	c := bundle.NewChecker(bundle.DefaultConfig(), projectDir, bundle.Options{})
//	res, err := c.Run(ctx, st.Modules, declared)
//	for _, e := range res.Bundled {
//	    fmt.Println(e.Name, e.Reason)
//	}
//
// # Loader Chains
//
// Bundler identifiers may wrap a resource in transform steps separated by
// "!" ("./node_modules/css-loader!./src/app.css"). Checks on the module
// itself and its issuers look at the first segment; checks on reasons look
// at the last. Middle segments are never inspected.
//
// # Determinism
//
// Output order follows the module order of the stats document. A package
// reached through several root modules keeps the reason of the first one,
// and within a module the first qualifying reason wins.
package bundle
