package errors

import (
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ValidateRequired rejects a blank value for the named field.
// Whitespace-only values count as blank.
func ValidateRequired(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return New(ErrCodeInvalidInput, "%s is required", field)
	}
	return nil
}

// ValidateMaxLength rejects values longer than max bytes.
//
// Lengths are measured in UTF-8 code units, which is how manifest consumers
// budget launcher labels; a 12-unit limit therefore admits fewer than 12
// characters of non-ASCII text.
func ValidateMaxLength(field, value string, max int) error {
	if len(value) > max {
		return New(ErrCodeInvalidInput, "%s %q is too long (%d bytes, max %d)", field, value, len(value), max)
	}
	return nil
}

// ValidateText rejects values that are not valid UTF-8 or that contain
// control characters. Manifest members are displayed to users, so a stray
// newline or NUL in a definition file is almost always a mistake.
func ValidateText(field, value string) error {
	if !utf8.ValidString(value) {
		return New(ErrCodeInvalidInput, "%s is not valid UTF-8", field)
	}
	for _, r := range value {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "%s contains invalid control characters", field)
		}
	}
	return nil
}

// definitionExtensions lists the file extensions accepted for manifest
// definition files.
var definitionExtensions = map[string]bool{
	".toml": true,
	".yaml": true,
	".yml":  true,
}

// ValidateDefinitionFilename validates a manifest definition path.
// It ensures the path is non-empty and carries a supported extension.
func ValidateDefinitionFilename(path string) error {
	if path == "" {
		return New(ErrCodeInvalidInput, "definition path cannot be empty")
	}
	if strings.ContainsRune(path, '\x00') {
		return New(ErrCodeInvalidInput, "definition path contains invalid characters")
	}

	ext := strings.ToLower(filepath.Ext(path))
	if !definitionExtensions[ext] {
		return New(ErrCodeInvalidFormat, "unsupported definition file %q (want .toml, .yaml or .yml)", filepath.Base(path))
	}

	return nil
}
