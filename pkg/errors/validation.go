package errors

import (
	"path/filepath"
	"slices"
	"strings"
	"unicode"
)

// ValidateSectionName validates a manifest section name such as
// "dependencies" or "devDependencies".
//
// Section names are top-level JSON keys, so the rules are loose:
//   - No empty names
//   - No control characters
//   - No dots (nested lookups are not supported)
func ValidateSectionName(name string) error {
	if strings.TrimSpace(name) == "" {
		return New(ErrCodeInvalidConfig, "manifest section name cannot be empty")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidConfig, "manifest section %q contains control characters", name)
		}
	}

	if strings.Contains(name, ".") {
		return New(ErrCodeInvalidConfig, "manifest section %q cannot be a nested path", name)
	}

	return nil
}

// ValidateOutputPath validates a path the tool is about to write to.
//
// Validation rules:
//   - Path cannot be empty
//   - No null bytes or control characters
//   - Must not name a directory (trailing separator)
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output path contains invalid control characters")
		}
	}

	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, string(filepath.Separator)) {
		return New(ErrCodeInvalidPath, "output path %q names a directory", path)
	}

	return nil
}

// ValidateChoice checks that value is one of allowed.
// what names the setting in the error message (e.g. "format").
func ValidateChoice(what, value string, allowed ...string) error {
	if slices.Contains(allowed, value) {
		return nil
	}
	return New(ErrCodeInvalidFormat, "unsupported %s %q (available: %s)", what, value, strings.Join(allowed, ", "))
}
