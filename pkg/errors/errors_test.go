package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidManifest, "section %q is not an object", "dependencies")

	if err.Code != ErrCodeInvalidManifest {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidManifest)
	}

	if err.Message != `section "dependencies" is not an object` {
		t.Errorf("Message = %v", err.Message)
	}

	expected := `INVALID_MANIFEST: section "dependencies" is not an object`
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("no such file or directory")
	err := Wrap(ErrCodeFileNotFound, cause, "read package.json")

	if err.Code != ErrCodeFileNotFound {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeFileNotFound)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	if unwrapped := errors.Unwrap(err); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}

	expected := "FILE_NOT_FOUND: read package.json: no such file or directory"
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      New(ErrCodeInvalidStats, "test"),
			code:     ErrCodeInvalidStats,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeInvalidStats, "test"),
			code:     ErrCodeInvalidManifest,
			expected: false,
		},
		{
			name:     "outer code wins",
			err:      Wrap(ErrCodeBuildFailed, New(ErrCodeInvalidStats, "inner"), "outer"),
			code:     ErrCodeBuildFailed,
			expected: true,
		},
		{
			name:     "wrapped by fmt.Errorf",
			err:      fmt.Errorf("check: %w", New(ErrCodeCheckFailed, "2 missing")),
			code:     ErrCodeCheckFailed,
			expected: true,
		},
		{
			name:     "non-Error type",
			err:      errors.New("plain error"),
			code:     ErrCodeInvalidInput,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     ErrCodeInvalidInput,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeInvalidConfig, "x")); got != ErrCodeInvalidConfig {
		t.Errorf("GetCode() = %q, want %q", got, ErrCodeInvalidConfig)
	}
	if got := GetCode(errors.New("plain")); got != "" {
		t.Errorf("GetCode(plain) = %q, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"structured", New(ErrCodeInvalidStats, "stats has no modules"), "stats has no modules"},
		{"with cause", Wrap(ErrCodeFileNotFound, errors.New("missing"), "read stats.json"), "read stats.json: missing"},
		{"plain", errors.New("boom"), "boom"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.want {
				t.Errorf("UserMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}
