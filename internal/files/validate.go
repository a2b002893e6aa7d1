package files

import (
	"path/filepath"
	"strings"
)

// FileType returns the lowercase extension of name without the leading dot,
// or "" when name has no extension.
func FileType(name string) string {
	ext := filepath.Ext(name)
	if ext == "" {
		return ""
	}
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// Allowed reports whether fileType is in the allow-list.
func Allowed(fileType string, allowed []string) bool {
	for _, a := range allowed {
		if strings.EqualFold(fileType, a) {
			return true
		}
	}
	return false
}
