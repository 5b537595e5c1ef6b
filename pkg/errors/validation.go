package errors

import (
	"path/filepath"
	"slices"
	"strings"
	"unicode"
)

// maxIDLength bounds node and edge IDs read from graph files.
const maxIDLength = 256

// ValidateID validates a node or edge ID read from a graph file.
// IDs end up in DOT output and terminal rendering, so control characters
// and quotes are rejected.
//
// The validation rules are intentionally conservative:
//   - No empty IDs
//   - No control characters
//   - No double quotes
//   - Maximum length of 256 characters
func ValidateID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidGraph, "id cannot be empty")
	}

	if len(id) > maxIDLength {
		return New(ErrCodeInvalidGraph, "id too long (max %d characters)", maxIDLength)
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidGraph, "id %q contains invalid control characters", id)
		}
	}

	if strings.Contains(id, `"`) {
		return New(ErrCodeInvalidGraph, "id %q cannot contain double quotes", id)
	}

	return nil
}

// ValidatePath validates a file path given on the command line.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	// Check for null bytes and control characters
	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}

// ValidateExtension validates path and checks that its extension is one of
// allowed (compared case-insensitively, without the dot).
// It returns the normalized extension.
func ValidateExtension(path string, allowed ...string) (string, error) {
	if err := ValidatePath(path); err != nil {
		return "", err
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if !slices.Contains(allowed, ext) {
		return "", New(ErrCodeInvalidFormat, "unsupported file extension %q (want one of %s)", filepath.Ext(path), strings.Join(allowed, ", "))
	}
	return ext, nil
}

// ValidateDimensions checks that a layout dimensionality is 2 or 3.
func ValidateDimensions(dims int) error {
	if dims != 2 && dims != 3 {
		return New(ErrCodeInvalidInput, "dimensions must be 2 or 3, got %d", dims)
	}
	return nil
}
