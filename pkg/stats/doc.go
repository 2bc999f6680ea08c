// Package stats models the module graph a bundler reports after a build.
//
// # Overview
//
// The input is the JSON document webpack writes with `webpack --json` (or
// `stats.toJson(options)` from a plugin). Only three fields of each module
// are read:
//
//	{
//	  "modules": [
//	    {
//	      "name": "./node_modules/lodash/lodash.js",
//	      "issuerPath": [{"name": "./src/main.js"}],
//	      "reasons": [{"moduleName": "./src/main.js"}]
//	    }
//	  ]
//	}
//
// Names may carry a loader chain ("./node_modules/babel-loader/lib!./src/a.js")
// and reason names may carry a query ("./src/App.vue?vue&type=script").
//
// # Lenient Decoding
//
// Bundlers emit synthetic modules without a path, null issuer paths for entry
// points, and other irregular shapes. Decoding never fails on a single odd
// record: a non-string name decodes as an invalid [Identifier], a non-array
// issuerPath or reasons field decodes as an invalid list. Consumers check
// validity and treat invalid fields as "does not qualify".
//
// Only a document that is not a JSON object, or that has no "modules" array,
// is rejected.
//
// # Round Trip
//
// [Stats] keeps the raw document it was parsed from. [Write] and [Export]
// pretty-print that document unchanged, so re-reading a dump yields the same
// module list.
package stats
