// Package meta extracts article metadata (title, author, publish date) from
// a story page. The primary source is the JSON-LD blocks the site embeds;
// when those are missing or incomplete it falls back to DOM lookups.
package meta

import (
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/gaurav-prasanna/storyfetch/core"
)

const (
	placeholderTitle  = "Untitled story"
	placeholderAuthor = "Unknown author"
)

// Extract builds an ArticleMeta from the page HTML. It never fails: missing
// fields fall back to the DOM, then to fixed placeholders (published stays
// empty when unknown).
//
// Several JSON-LD blocks can describe the same article; the last non-empty
// value per field wins, so later blocks overwrite earlier ones.
func Extract(html, lang, sourceURL string) core.ArticleMeta {
	var title, author, published string

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err == nil {
		doc.Find(`script[type="application/ld+json"]`).Each(func(_ int, s *goquery.Selection) {
			var data any
			if err := json.Unmarshal([]byte(s.Text()), &data); err != nil {
				return // malformed block, skip
			}
			for _, item := range articleBlocks(data) {
				if v, ok := item["headline"].(string); ok && v != "" {
					title = v
				}
				if v, ok := item["datePublished"].(string); ok && v != "" {
					published = v
				}
				if v := authorNames(item["author"]); v != "" {
					author = v
				}
			}
		})

		if title == "" {
			title = strings.TrimSpace(doc.Find("h1").First().Text())
		}
		if author == "" {
			author = strings.TrimSpace(doc.Find(`[data-testid="byline-name"]`).First().Text())
		}
		if published == "" {
			published = strings.TrimSpace(doc.Find(`[data-testid="publish-date"]`).First().Text())
		}
	}

	if title == "" {
		title = placeholderTitle
	}
	if author == "" {
		author = placeholderAuthor
	}
	return core.ArticleMeta{
		Title:     title,
		Author:    author,
		Published: published,
		SourceURL: sourceURL,
		Language:  lang,
	}
}

// articleBlocks filters a decoded JSON-LD payload (object or array of
// objects) down to the blocks whose @type is an article type.
func articleBlocks(data any) []map[string]any {
	var candidates []map[string]any
	switch v := data.(type) {
	case []any:
		for _, item := range v {
			if m, ok := item.(map[string]any); ok {
				candidates = append(candidates, m)
			}
		}
	case map[string]any:
		candidates = append(candidates, v)
	}

	var blocks []map[string]any
	for _, m := range candidates {
		typ, _ := m["@type"].(string)
		if typ == "Article" || typ == "NewsArticle" {
			blocks = append(blocks, m)
		}
	}
	return blocks
}

// authorNames flattens the JSON-LD author field, which is either a single
// object or a list of objects. List entries are joined with ", " in
// encounter order; entries without a name are skipped.
func authorNames(v any) string {
	switch a := v.(type) {
	case map[string]any:
		name, _ := a["name"].(string)
		return name
	case []any:
		var names []string
		for _, item := range a {
			m, ok := item.(map[string]any)
			if !ok {
				continue
			}
			if name, ok := m["name"].(string); ok && name != "" {
				names = append(names, name)
			}
		}
		return strings.Join(names, ", ")
	}
	return ""
}
