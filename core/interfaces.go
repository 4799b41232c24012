// Package core defines the pipeline interfaces and shared data types for
// storyfetch. Each stage of the pipeline is a clean, testable interface.
package core

import (
	"context"
	"io"
)

// ArticleMeta holds the metadata of one story page in one language.
// It is constructed once per (article, language) pair and never mutated.
type ArticleMeta struct {
	Title     string `json:"title"`
	Author    string `json:"author"`
	Published string `json:"published"` // raw date text, not normalized
	SourceURL string `json:"source_url"`
	Language  string `json:"language"` // IETF-style code, e.g. "en", "zh-Hans"
}

// StoryDocument is the renderer input: extracted metadata plus the
// rewritten Markdown body.
type StoryDocument struct {
	Meta ArticleMeta
	Body string
}

// StoryResult records the outcome of processing one language variant of one
// story. Failed variants are reported too, with placeholder metadata, an
// empty asset list and OK=false. Warnings accumulate non-fatal issues.
type StoryResult struct {
	Meta        ArticleMeta `json:"meta"`
	ContentPath string      `json:"content_path,omitempty"`
	Assets      []string    `json:"assets,omitempty"`
	Warnings    []string    `json:"warnings,omitempty"`
	OK          bool        `json:"ok"`
}

// Fetcher retrieves an HTML page with language-targeted headers, retrying
// on transient failure. An empty string means the page stayed unavailable
// after all attempts; every failed attempt is reported as a warning.
// Fetchers never return errors: transport failures become warnings.
type Fetcher interface {
	FetchPage(ctx context.Context, url, lang string) (html string, warnings []string)
}

// Downloader streams a binary resource (image assets). Single attempt,
// no retries: a failed asset degrades gracefully downstream.
type Downloader interface {
	Download(ctx context.Context, url string) (io.ReadCloser, error)
}

// Extractor converts a fetched HTML page into Markdown. Implementations
// are pure: no I/O, no mutation of input.
type Extractor interface {
	Markdown(html, sourceURL string) (string, error)
}

// Renderer converts a finished story document into a final output format.
type Renderer interface {
	Render(doc StoryDocument) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".md").
	Extension() string
}
