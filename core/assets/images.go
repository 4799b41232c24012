package assets

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Image is one image reference found in a story body: its absolute URL and
// trimmed alt text, in document order.
type Image struct {
	URL string
	Alt string
}

// Collect finds the images inside the main content containers of a page.
// src wins over data-src (the site lazy-loads some figures); every URL is
// resolved against baseURL.
func Collect(htmlText, baseURL string) []Image {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlText))
	if err != nil {
		return nil
	}
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil
	}

	var images []Image
	doc.Find("article img, main img").Each(func(_ int, s *goquery.Selection) {
		src := s.AttrOr("src", "")
		if src == "" {
			src = s.AttrOr("data-src", "")
		}
		if src == "" {
			return
		}
		ref, err := url.Parse(src)
		if err != nil {
			return
		}
		images = append(images, Image{
			URL: base.ResolveReference(ref).String(),
			Alt: strings.TrimSpace(s.AttrOr("alt", "")),
		})
	})
	return images
}
