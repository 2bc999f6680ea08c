package report

import (
	"io"

	"github.com/matzehuels/bundlecheck/pkg/bundle"
	"github.com/matzehuels/bundlecheck/pkg/errors"
)

// Output formats accepted by [Write].
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Formats lists the supported output formats.
var Formats = []string{FormatText, FormatJSON}

// Options configures [Write].
type Options struct {
	// Color styles text headers. Ignored by JSON.
	Color bool

	// RunID tags the JSON document. A new one is generated when empty.
	RunID string
}

// Write renders res to w in the named format.
func Write(w io.Writer, format string, res *bundle.Result, opts Options) error {
	switch format {
	case FormatText, "":
		return WriteText(w, res, TextOptions{Color: opts.Color})
	case FormatJSON:
		return WriteJSON(w, NewDocument(res, opts.RunID))
	default:
		return errors.ValidateChoice("format", format, Formats...)
	}
}
