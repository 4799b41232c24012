package core

import (
	"regexp"
	"strings"
)

// unsafeChars matches runs of characters that are invalid in filenames on at
// least one supported platform.
var unsafeChars = regexp.MustCompile(`[\\/:*?"<>|]+`)

// SafeName converts free-form text (a title, an image alt, a URL segment)
// into a filename-safe fragment. Runs of unsafe characters collapse into a
// single underscore; if nothing survives, fallback is returned instead.
func SafeName(name, fallback string) string {
	cleaned := strings.TrimSpace(unsafeChars.ReplaceAllString(name, "_"))
	if cleaned == "" {
		return fallback
	}
	return cleaned
}
