// Package render provides output renderers for finished story documents.
// This file implements the Markdown renderer, the canonical output: a
// fixed-schema front-matter header, an attribution notice, then the body.
package render

import (
	"fmt"
	"strings"

	"github.com/gaurav-prasanna/storyfetch/core"
)

// attributionNotice precedes every story body. Kept verbatim so downstream
// consumers can strip it reliably.
const attributionNotice = "_Unofficial fan archive of the official Magic story, for personal study only._"

// MarkdownRenderer writes the story document with its front matter.
type MarkdownRenderer struct{}

// NewMarkdownRenderer creates a MarkdownRenderer.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

// Render emits the document. The header field order is fixed; downstream
// consumers parse it positionally, so do not reorder.
func (r *MarkdownRenderer) Render(doc core.StoryDocument) ([]byte, error) {
	var b strings.Builder
	fmt.Fprintln(&b, "---")
	fmt.Fprintf(&b, "title: %q\n", doc.Meta.Title)
	fmt.Fprintf(&b, "author: %s\n", doc.Meta.Author)
	fmt.Fprintf(&b, "published: %s\n", doc.Meta.Published)
	fmt.Fprintf(&b, "source: %s\n", doc.Meta.SourceURL)
	fmt.Fprintf(&b, "language: %s\n", doc.Meta.Language)
	fmt.Fprintln(&b, "tags: [Strixhaven, Magic Story]")
	fmt.Fprintln(&b, "---")
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, attributionNotice)
	fmt.Fprintln(&b)
	b.WriteString(doc.Body)
	return []byte(b.String()), nil
}

// Extension returns the file extension for Markdown output.
func (r *MarkdownRenderer) Extension() string {
	return ".md"
}
