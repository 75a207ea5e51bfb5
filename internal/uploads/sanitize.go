package uploads

import (
	"path/filepath"
	"regexp"
	"strings"
)

const fallbackFileName = "recitation"

var (
	disallowedNameRunes = regexp.MustCompile(`[^A-Za-z0-9.-]`)
	repeatedUnderscores = regexp.MustCompile(`_{2,}`)
	edgeDotsUnderscores = regexp.MustCompile(`^[._]+|[._]+$`)
)

// SanitizeFilename reduces a client-supplied name to a single safe path element.
func SanitizeFilename(name string) string {
	sanitized := disallowedNameRunes.ReplaceAllString(name, "_")
	sanitized = repeatedUnderscores.ReplaceAllString(sanitized, "_")
	sanitized = edgeDotsUnderscores.ReplaceAllString(sanitized, "")
	sanitized = filepath.Base(sanitized)
	if sanitized == "." || sanitized == string(filepath.Separator) || strings.TrimSpace(sanitized) == "" {
		return fallbackFileName
	}
	return sanitized
}
