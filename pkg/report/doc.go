// Package report renders the result of a bundle check.
//
// # Formats
//
// Three renderings are provided:
//
//   - [WriteText]: the human-readable report, three labeled sections with
//     reasons aligned in a column
//   - [WriteJSON]: a machine-readable document tagged with a run ID
//   - [ToDOT] and [RenderSVG]: a graph linking the application files that
//     import packages to those packages
//
// [Write] dispatches on a format name from [Formats].
//
// # Text Layout
//
// The text report starts and ends with a blank line. Bundled packages are
// listed as "* name" padded to four columns past the longest name, followed
// by the reason text. The missing and unused sections only appear when
// non-empty:
//
//	Bundled dependencies:
//	* vue     ./src/main.js
//	* lodash  ./src/util.js
//	Missing dependencies:
//	* lodash
//
// With [TextOptions.Color] set, section headers are styled with lipgloss.
package report
