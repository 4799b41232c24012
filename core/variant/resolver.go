// Package variant discovers alternate-language URLs for a story page by
// reading its hreflang alternate links. Purely a parse of already-fetched
// HTML; no network calls.
package variant

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// chineseCodes are the hreflang spellings the site has used for its
// Simplified-Chinese pages, in probe order.
var chineseCodes = []string{"zh", "zh-cn", "zh-hans"}

// Resolve maps lower-cased language tags to absolute URLs, resolving each
// href against baseURL. Links without a tag or target are skipped.
func Resolve(html, baseURL string) map[string]string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil
	}

	variants := make(map[string]string)
	doc.Find(`link[rel="alternate"][hreflang]`).Each(func(_ int, s *goquery.Selection) {
		lang := strings.TrimSpace(s.AttrOr("hreflang", ""))
		href := strings.TrimSpace(s.AttrOr("href", ""))
		if lang == "" || href == "" {
			return
		}
		ref, err := url.Parse(href)
		if err != nil {
			return
		}
		variants[strings.ToLower(lang)] = base.ResolveReference(ref).String()
	})
	return variants
}

// Chinese returns the Simplified-Chinese URL from a variant map, trying the
// equivalent language codes in priority order. ok is false when the page
// has no Chinese edition.
func Chinese(variants map[string]string) (href string, ok bool) {
	for _, code := range chineseCodes {
		if u, present := variants[code]; present {
			return u, true
		}
	}
	return "", false
}
