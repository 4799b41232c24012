// Package markdown holds the targeted text passes applied to extracted
// Markdown. The image rewrite is isolated here so the matching pattern can
// be swapped for a real parser if the image syntax ever changes.
package markdown

import (
	"fmt"
	"regexp"
)

// imagePattern matches Markdown image references: ![alt](url).
var imagePattern = regexp.MustCompile(`!\[([^\]]*)\]\(([^)]+)\)`)

// RewriteImages substitutes every image URL present in replacements with
// its mapped local path. URLs not in the map are left untouched, so failed
// downloads keep pointing at the original remote URL. Identity on no-match.
//
// Local paths are forward-slash relative paths regardless of host platform,
// to keep the output portable.
func RewriteImages(text string, replacements map[string]string) string {
	if len(replacements) == 0 {
		return text
	}
	return imagePattern.ReplaceAllStringFunc(text, func(match string) string {
		groups := imagePattern.FindStringSubmatch(match)
		local, ok := replacements[groups[2]]
		if !ok {
			return match
		}
		return fmt.Sprintf("![%s](%s)", groups[1], local)
	})
}
