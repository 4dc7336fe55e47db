package service

import (
	"path"
	"strings"
)

// allowedImageExtensions lists the accepted upload extensions, lower case.
var allowedImageExtensions = map[string]struct{}{
	"png":  {},
	"jpg":  {},
	"jpeg": {},
	"gif":  {},
}

// SanitizeFileName strips any directory part of name and replaces every
// character outside [A-Za-z0-9._-] with "_". Leading and trailing dots and
// underscores are removed. The result may be empty.
func SanitizeFileName(name string) string {
	name = strings.ReplaceAll(name, `\`, "/")
	name = path.Base(name)
	if name == "." || name == "/" {
		return ""
	}

	name = strings.Join(strings.Fields(name), "_")
	name = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '_', r == '-':
			return r
		default:
			return '_'
		}
	}, name)

	return strings.Trim(name, "._")
}

// IsAllowedImage reports whether name carries a supported image extension.
func IsAllowedImage(name string) bool {
	ext := strings.TrimPrefix(path.Ext(name), ".")
	_, ok := allowedImageExtensions[strings.ToLower(ext)]
	return ok
}
