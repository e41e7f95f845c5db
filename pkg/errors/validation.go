package errors

import (
	"strings"
	"unicode"
)

const maxQueryLength = 256

// ValidateID rejects non-positive resource, author, category and version IDs.
// Spiget IDs start at 1; a zero ID is almost always an unset variable.
func ValidateID(kind string, id int) error {
	if id <= 0 {
		return New(ErrCodeInvalidInput, "%s id must be positive, got %d", kind, id)
	}
	return nil
}

// ValidateSearchQuery validates a free-text search term before it becomes a
// path segment of search/{kind}/{query}.
//
// The rules are conservative:
//   - No empty or whitespace-only queries
//   - No control characters or null bytes
//   - Maximum length of 256 characters
func ValidateSearchQuery(query string) error {
	if strings.TrimSpace(query) == "" {
		return New(ErrCodeInvalidQuery, "search query cannot be empty")
	}

	if len(query) > maxQueryLength {
		return New(ErrCodeInvalidQuery, "search query too long (max %d characters)", maxQueryLength)
	}

	for _, r := range query {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidQuery, "search query contains invalid control characters")
		}
	}

	return nil
}

// ValidateVersionName validates a version identifier used as a path segment
// (a numeric version id, "latest", or a game version such as "1.20.4").
func ValidateVersionName(version string) error {
	if version == "" {
		return New(ErrCodeInvalidInput, "version cannot be empty")
	}

	for _, r := range version {
		if unicode.IsControl(r) || r == '/' || r == '\\' {
			return New(ErrCodeInvalidInput, "version contains invalid characters: %q", version)
		}
	}

	if strings.Contains(version, "..") {
		return New(ErrCodeInvalidInput, "version cannot contain path traversal sequences (..)")
	}

	return nil
}

// ValidateURL validates a URL string for safety.
// It ensures the URL has a safe scheme (http or https).
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}

	// Simple scheme validation without full URL parsing
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidInput, "URL must use http or https scheme")
	}

	return nil
}
