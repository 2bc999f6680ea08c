// Package manifest reads package.json files.
//
// Two callers use it: the project manifest, whose dependency sections
// declare what the bundle may contain, and the per-package manifests found
// while attributing a bundled file to its package.
//
// Section keys are returned in document order, so reports list declared
// dependencies the way the project file lists them.
package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	bcerrors "github.com/matzehuels/bundlecheck/pkg/errors"
)

// FileName is the conventional manifest file name.
const FileName = "package.json"

// DefaultSection is the section checked when none is configured.
const DefaultSection = "dependencies"

// Manifest is a parsed package.json.
type Manifest struct {
	Name    string // Declared package name ("" if absent or not a string)
	Version string // Declared version ("" if absent or not a string)

	fields map[string]json.RawMessage
}

// Load reads and parses the manifest at path.
//
// A missing file yields FILE_NOT_FOUND; unreadable or malformed content
// yields INVALID_MANIFEST.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, bcerrors.Wrap(bcerrors.ErrCodeFileNotFound, err, "read %s", path)
	}
	if err != nil {
		return nil, bcerrors.Wrap(bcerrors.ErrCodeInvalidManifest, err, "read %s", path)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Parse decodes manifest content. The document must be a JSON object.
func Parse(data []byte) (*Manifest, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, bcerrors.Wrap(bcerrors.ErrCodeInvalidManifest, err, "decode manifest")
	}
	if fields == nil {
		return nil, bcerrors.New(bcerrors.ErrCodeInvalidManifest, "manifest must be a JSON object")
	}

	m := &Manifest{fields: fields}
	_ = json.Unmarshal(fields["name"], &m.Name)
	_ = json.Unmarshal(fields["version"], &m.Version)
	return m, nil
}

// Keys returns the keys of a top-level object section in document order.
// A missing or null section has no keys; any other non-object value is an
// INVALID_MANIFEST error.
func (m *Manifest) Keys(section string) ([]string, error) {
	raw, ok := m.fields[section]
	if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil, nil
	}
	keys, err := objectKeys(raw)
	if err != nil {
		return nil, bcerrors.Wrap(bcerrors.ErrCodeInvalidManifest, err, "section %q", section)
	}
	return keys, nil
}

// Declared merges the keys of the given sections, in section order then
// document order, keeping the first occurrence of each name. With no
// sections, [DefaultSection] is used.
func (m *Manifest) Declared(sections ...string) ([]string, error) {
	if len(sections) == 0 {
		sections = []string{DefaultSection}
	}

	var out []string
	seen := make(map[string]bool)
	for _, s := range sections {
		keys, err := m.Keys(s)
		if err != nil {
			return nil, err
		}
		for _, k := range keys {
			if !seen[k] {
				seen[k] = true
				out = append(out, k)
			}
		}
	}
	return out, nil
}

// objectKeys streams a JSON object and collects its keys in order.
func objectKeys(raw json.RawMessage) ([]string, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("not an object")
	}

	var keys []string
	seen := make(map[string]bool)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v", tok)
		}
		var skip json.RawMessage
		if err := dec.Decode(&skip); err != nil {
			return nil, err
		}
		if !seen[key] {
			seen[key] = true
			keys = append(keys, key)
		}
	}
	return keys, nil
}
