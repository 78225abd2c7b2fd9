package errors

import (
	"math"
	"strings"
	"unicode"
)

// ValidateFinite rejects NaN and infinite values for the named parameter.
func ValidateFinite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidDesign, "%s=%g is not a finite number", name, v)
	}
	return nil
}

// ValidateOpenRange checks that lo < v < hi for the named parameter.
// Non-finite values are rejected first.
func ValidateOpenRange(name string, v, lo, hi float64) error {
	if err := ValidateFinite(name, v); err != nil {
		return err
	}
	if v <= lo || v >= hi {
		return New(ErrCodeInvalidDesign, "%s=%g must lie in (%g, %g)", name, v, lo, hi)
	}
	return nil
}

// ValidatePositive checks that v is finite and strictly greater than zero.
func ValidatePositive(name string, v float64) error {
	if err := ValidateFinite(name, v); err != nil {
		return err
	}
	if v <= 0 {
		return New(ErrCodeInvalidDesign, "%s=%g must be positive", name, v)
	}
	return nil
}

// ValidateOutputPath validates a destination path for the wire file.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
//   - Must name a file, not a directory (no trailing separator)
//
// The special path "-" (standard output) is accepted.
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	}
	if path == "-" {
		return nil
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "output path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output path contains invalid characters")
		}
	}

	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, "\\") {
		return New(ErrCodeInvalidPath, "output path %q names a directory", path)
	}

	return nil
}
