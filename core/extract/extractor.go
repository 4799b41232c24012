// Package extract implements the content-extraction strategies.
//
// The primary strategy runs a readability pass to locate the main content
// region. The fallback picks the first matching main-content container by
// selector and converts it wholesale; its output is lower fidelity, which
// is an accepted trade-off for pages the readability pass cannot handle.
// Both strategies emit Markdown, the canonical format of the pipeline.
package extract

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"

	"github.com/gaurav-prasanna/storyfetch/core"
)

// Readability is the primary strategy: a general-purpose readability
// algorithm finds the article region, which is then converted to Markdown.
type Readability struct{}

// NewReadability creates the primary extraction strategy.
func NewReadability() *Readability {
	return &Readability{}
}

// Markdown extracts the main content of htmlText and converts it.
// Degenerate input (no recognizable content region) is an error so the
// chain can fall through to the next strategy.
func (e *Readability) Markdown(htmlText, sourceURL string) (string, error) {
	pageURL, err := url.Parse(sourceURL)
	if err != nil {
		return "", fmt.Errorf("parsing source URL: %w", err)
	}

	article, err := readability.FromReader(strings.NewReader(htmlText), pageURL)
	if err != nil {
		return "", fmt.Errorf("readability pass: %w", err)
	}
	if strings.TrimSpace(article.Content) == "" {
		return "", errors.New("readability pass found no content")
	}

	return convert(article.Content)
}

// containerSelectors are the candidate main-content containers for the
// fallback strategy, in priority order.
var containerSelectors = []string{"article", "main", `[data-component="Article"]`}

// Selector is the fallback strategy: no content heuristics, just the first
// selector with matches, all matched elements concatenated and converted.
// When nothing matches, the whole document is converted.
type Selector struct{}

// NewSelector creates the fallback extraction strategy.
func NewSelector() *Selector {
	return &Selector{}
}

// Markdown converts the first matching content container of htmlText.
func (e *Selector) Markdown(htmlText, sourceURL string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlText))
	if err != nil {
		return "", fmt.Errorf("parsing HTML: %w", err)
	}

	for _, sel := range containerSelectors {
		nodes := doc.Find(sel)
		if nodes.Length() == 0 {
			continue
		}
		var fragment strings.Builder
		nodes.Each(func(_ int, s *goquery.Selection) {
			if h, err := goquery.OuterHtml(s); err == nil {
				fragment.WriteString(h)
			}
		})
		return convert(fragment.String())
	}

	// No container at all: convert the full document rather than give up.
	return convert(htmlText)
}

// convert turns an HTML fragment into Markdown, treating empty output as
// failure so callers can fall through.
func convert(html string) (string, error) {
	markdown, err := htmltomarkdown.ConvertString(html)
	if err != nil {
		return "", fmt.Errorf("converting HTML to markdown: %w", err)
	}
	if strings.TrimSpace(markdown) == "" {
		return "", errors.New("conversion produced no text")
	}
	return markdown, nil
}

// Chain tries strategies in order and returns the first Markdown produced.
type Chain struct {
	strategies []core.Extractor
}

// NewChain builds a Chain over the given strategies.
func NewChain(strategies ...core.Extractor) *Chain {
	return &Chain{strategies: strategies}
}

// Default returns the standard chain: readability first, selector fallback.
func Default() *Chain {
	return NewChain(NewReadability(), NewSelector())
}

// Markdown runs the chain. The error joins every strategy failure, so a
// caller's warning names what each strategy reported.
func (c *Chain) Markdown(htmlText, sourceURL string) (string, error) {
	var errs []error
	for _, s := range c.strategies {
		markdown, err := s.Markdown(htmlText, sourceURL)
		if err == nil {
			return markdown, nil
		}
		errs = append(errs, err)
	}
	return "", errors.Join(errs...)
}
