package errors

import (
	"path/filepath"
	"strings"
	"unicode"
)

// ValidateCourseID validates a course storage key before it enters a graph.
//
// The validation rules are intentionally conservative:
//   - No empty identifiers
//   - No control characters or null bytes
//   - No whitespace (keys are PREFIX+NUMBER with an optional _SUFFIX)
//   - Maximum length of 64 characters
func ValidateCourseID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "course id cannot be empty")
	}

	if len(id) > 64 {
		return New(ErrCodeInvalidInput, "course id too long (max 64 characters): %q", id)
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "course id contains invalid control characters")
		}
		if unicode.IsSpace(r) {
			return New(ErrCodeInvalidInput, "course id cannot contain whitespace: %q", id)
		}
	}

	return nil
}

// catalogExtensions lists the file extensions a catalog can be loaded from.
var catalogExtensions = map[string]bool{
	".csv":  true,
	".json": true,
}

// ValidateCatalogFilename validates a catalog filename for safety.
// It ensures the filename is a simple basename with a supported extension.
func ValidateCatalogFilename(filename string) error {
	if filename == "" {
		return New(ErrCodeInvalidCatalog, "catalog filename cannot be empty")
	}

	// Must be a simple filename, not a path
	if strings.ContainsAny(filename, "/\\") {
		return New(ErrCodeInvalidCatalog, "catalog filename cannot contain path separators")
	}

	if strings.HasPrefix(filename, ".") {
		return New(ErrCodeInvalidCatalog, "catalog filename cannot be a hidden file")
	}

	if !catalogExtensions[strings.ToLower(filepath.Ext(filename))] {
		return New(ErrCodeInvalidCatalog, "unsupported catalog extension: %q (must be .csv or .json)", filepath.Ext(filename))
	}

	return nil
}

// ValidatePath validates an output path for safety.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No path traversal sequences (..)
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		if part == ".." {
			return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
		}
	}

	return nil
}
