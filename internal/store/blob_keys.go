package store

import (
	"strings"
	"unicode/utf8"
)

// isValidKey reports whether key is a relative, slash-separated object key
// without empty, "." or ".." segments.
func isValidKey(key string) bool {
	if key == "" || key == "." || strings.HasPrefix(key, "/") || strings.HasSuffix(key, "/") {
		return false
	}
	if strings.ContainsAny(key, `\?#~`) || !utf8.ValidString(key) {
		return false
	}

	for _, segment := range strings.Split(key, "/") {
		if segment == "" || segment == "." || segment == ".." {
			return false
		}
	}

	return true
}

// isValidPrefix accepts a valid key optionally followed by a single "/".
// The empty prefix matches everything.
func isValidPrefix(prefix string) bool {
	if prefix == "" {
		return true
	}

	return isValidKey(strings.TrimSuffix(prefix, "/"))
}
