package stats

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	bcerrors "github.com/matzehuels/bundlecheck/pkg/errors"
)

type document struct {
	Modules json.RawMessage `json:"modules"`
}

// Parse decodes a stats document.
//
// Parse returns an INVALID_STATS error if data is not a JSON object or has
// no "modules" array. Individual module records are decoded leniently; see
// the package documentation.
func Parse(data []byte) (*Stats, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, bcerrors.New(bcerrors.ErrCodeInvalidStats, "stats must be a JSON object")
	}

	var doc document
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return nil, bcerrors.Wrap(bcerrors.ErrCodeInvalidStats, err, "decode stats")
	}

	raw, ok := decodeArray(doc.Modules)
	if !ok {
		return nil, bcerrors.New(bcerrors.ErrCodeInvalidStats, "stats has no modules array (enable the \"modules\" stats option)")
	}

	s := &Stats{
		Modules: make([]Module, len(raw)),
		raw:     append(json.RawMessage(nil), trimmed...),
	}
	for i, r := range raw {
		_ = json.Unmarshal(r, &s.Modules[i])
	}
	return s, nil
}

// Read decodes a stats document from r.
// Read does not close r.
func Read(r io.Reader) (*Stats, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read stats: %w", err)
	}
	return Parse(data)
}

// Import reads the stats file at path.
// A missing file yields a FILE_NOT_FOUND error.
func Import(path string) (*Stats, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, bcerrors.Wrap(bcerrors.ErrCodeFileNotFound, err, "open stats %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}
