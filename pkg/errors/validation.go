package errors

import (
	"slices"
	"strings"
	"unicode"
)

// MaxSiteNameLength bounds site names so they fit graph labels and tables.
const MaxSiteNameLength = 128

// ValidateSiteName validates a terminal, warehouse or store name.
//
// The rules are:
//   - No empty or all-whitespace names
//   - No control characters (they break DOT labels and table output)
//   - Maximum length of [MaxSiteNameLength] bytes
func ValidateSiteName(name string) error {
	if strings.TrimSpace(name) == "" {
		return New(ErrCodeInvalidInput, "site name cannot be empty")
	}

	if len(name) > MaxSiteNameLength {
		return New(ErrCodeInvalidInput, "site name too long (max %d characters)", MaxSiteNameLength)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "site name %q contains control characters", name)
		}
	}

	return nil
}

// ValidatePath validates a user-supplied input or output file path.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}

// ValidateFormat checks that format is one of allowed (case-insensitive).
func ValidateFormat(format string, allowed ...string) error {
	if slices.Contains(allowed, strings.ToLower(format)) {
		return nil
	}
	return New(ErrCodeInvalidFormat, "unsupported format %q (want one of %s)", format, strings.Join(allowed, ", "))
}

// ValidateThreshold checks a bottleneck highlight threshold.
func ValidateThreshold(threshold int64) error {
	if threshold < 0 {
		return New(ErrCodeInvalidThreshold, "threshold must not be negative, got %d", threshold)
	}
	return nil
}
