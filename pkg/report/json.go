package report

import (
	"encoding/json"
	"io"

	"github.com/google/uuid"

	"github.com/matzehuels/bundlecheck/pkg/bundle"
)

// Document is the JSON form of a check result.
type Document struct {
	RunID    string         `json:"run_id"`
	Bundled  []bundle.Entry `json:"bundled"`
	Declared []string       `json:"declared"`
	Missing  []string       `json:"missing"`
	Unused   []string       `json:"unused"`
}

// NewDocument builds a document for res. Empty sets encode as [] rather
// than null. A random run ID is assigned when runID is empty.
func NewDocument(res *bundle.Result, runID string) Document {
	if runID == "" {
		runID = uuid.NewString()
	}
	return Document{
		RunID:    runID,
		Bundled:  orEmpty(res.Bundled),
		Declared: orEmpty(res.Declared),
		Missing:  orEmpty(res.Missing),
		Unused:   orEmpty(res.Unused),
	}
}

// WriteJSON writes doc as indented JSON.
func WriteJSON(w io.Writer, doc Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
