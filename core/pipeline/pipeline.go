// Package pipeline composes fetching, variant discovery, extraction, asset
// handling and rendering into the per-story processing loop.
//
// Execution is strictly sequential: one story at a time, one language at a
// time within a story, one image at a time within a language. Anyone adding
// concurrency here must guard the asset cache and keep its
// at-most-one-download-per-URL guarantee.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/gaurav-prasanna/storyfetch/core"
	"github.com/gaurav-prasanna/storyfetch/core/assets"
	"github.com/gaurav-prasanna/storyfetch/core/markdown"
	"github.com/gaurav-prasanna/storyfetch/core/meta"
	"github.com/gaurav-prasanna/storyfetch/core/output"
	"github.com/gaurav-prasanna/storyfetch/core/variant"
)

const (
	languageEnglish = "en"
	languageChinese = "zh-Hans"

	// failedTitle is the placeholder metadata title for a language variant
	// whose page could not be fetched.
	failedTitle = "Fetch failed"
)

// Pipeline processes a fixed, ordered list of story URLs.
type Pipeline struct {
	fetcher   core.Fetcher
	extractor core.Extractor
	assets    *assets.Manager
	writer    *output.Writer
	renderer  core.Renderer   // canonical Markdown document
	extras    []core.Renderer // optional companion formats (PDF)
	delay     time.Duration   // pause between stories
	progress  io.Writer
}

// New wires a Pipeline. renderer produces the canonical document; extras
// are best-effort companion formats whose failures only warn.
func New(fetcher core.Fetcher, extractor core.Extractor, mgr *assets.Manager, writer *output.Writer, renderer core.Renderer, extras []core.Renderer, delay time.Duration, progress io.Writer) *Pipeline {
	if progress == nil {
		progress = io.Discard
	}
	return &Pipeline{
		fetcher:   fetcher,
		extractor: extractor,
		assets:    mgr,
		writer:    writer,
		renderer:  renderer,
		extras:    extras,
		delay:     delay,
		progress:  progress,
	}
}

// Run processes the stories in declared order, returning one result per
// attempted language variant. limit > 0 truncates the story list before
// the loop starts; it never interrupts a story mid-flight.
func (p *Pipeline) Run(ctx context.Context, urls []string, limit int) []core.StoryResult {
	if limit > 0 && limit < len(urls) {
		urls = urls[:limit]
	}

	var all []core.StoryResult
	for i, u := range urls {
		fmt.Fprintf(p.progress, "[%d/%d] Processing %s\n", i+1, len(urls), u)
		all = append(all, p.ProcessStory(ctx, u)...)
		time.Sleep(p.delay)
	}
	return all
}

// plannedVariant is one entry of a story's language plan. The English base
// page arrives pre-fetched; other variants fetch lazily.
type plannedVariant struct {
	lang     string
	url      string
	html     string
	warnings []string
}

// ProcessStory handles one story across all its language variants. The
// English base page is mandatory: if it stays unavailable after retries the
// whole story is skipped and no results are produced, since variant
// discovery depends on it. Variant failures never abort sibling variants.
func (p *Pipeline) ProcessStory(ctx context.Context, storyURL string) []core.StoryResult {
	slug := output.Slug(storyURL)

	baseHTML, baseWarnings := p.fetcher.FetchPage(ctx, storyURL, languageEnglish)
	if baseHTML == "" {
		fmt.Fprintf(p.progress, "  ✗ English base page unavailable: %s\n", storyURL)
		return nil
	}

	plan := []plannedVariant{{lang: languageEnglish, url: storyURL, html: baseHTML, warnings: baseWarnings}}
	if zhURL, ok := variant.Chinese(variant.Resolve(baseHTML, storyURL)); ok {
		plan = append(plan, plannedVariant{lang: languageChinese, url: zhURL})
	}

	results := make([]core.StoryResult, 0, len(plan))
	for _, v := range plan {
		results = append(results, p.processVariant(ctx, slug, v))
	}
	return results
}

// processVariant runs one language through extract → assets → rewrite →
// render → write. Every expected failure mode lands in the result's
// warnings rather than aborting.
func (p *Pipeline) processVariant(ctx context.Context, slug string, v plannedVariant) core.StoryResult {
	warnings := v.warnings
	htmlText := v.html
	if htmlText == "" {
		fetched, fetchWarnings := p.fetcher.FetchPage(ctx, v.url, v.lang)
		warnings = append(warnings, fetchWarnings...)
		if fetched == "" {
			warnings = append(warnings, fmt.Sprintf("language variant unavailable: %s -> %s", v.lang, v.url))
			return core.StoryResult{
				Meta:     core.ArticleMeta{Title: failedTitle, SourceURL: v.url, Language: v.lang},
				Warnings: warnings,
			}
		}
		htmlText = fetched
	}

	m := meta.Extract(htmlText, v.lang, v.url)

	body, err := p.extractor.Markdown(htmlText, v.url)
	if err != nil {
		// Metadata is still worth keeping: write the document with an
		// empty body instead of dropping the variant.
		warnings = append(warnings, fmt.Sprintf("content extraction yielded nothing: %s: %v", v.url, err))
		body = ""
	}

	body, assetPaths, assetWarnings := p.localizeImages(ctx, slug, htmlText, v.url, body)
	warnings = append(warnings, assetWarnings...)

	result := core.StoryResult{Meta: m, Assets: assetPaths}
	doc := core.StoryDocument{Meta: m, Body: body}

	if data, err := p.renderer.Render(doc); err != nil {
		warnings = append(warnings, fmt.Sprintf("rendering %s: %v", v.lang, err))
	} else if path, err := p.writer.WriteStory(slug, v.lang, data, p.renderer.Extension()); err != nil {
		warnings = append(warnings, fmt.Sprintf("writing %s: %v", v.lang, err))
	} else {
		result.ContentPath = path
		result.OK = true
	}

	for _, r := range p.extras {
		data, err := r.Render(doc)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("rendering %s%s: %v", v.lang, r.Extension(), err))
			continue
		}
		if _, err := p.writer.WriteStory(slug, v.lang, data, r.Extension()); err != nil {
			warnings = append(warnings, fmt.Sprintf("writing %s%s: %v", v.lang, r.Extension(), err))
		}
	}

	result.Warnings = warnings
	return result
}

// localizeImages downloads the story's images in document order and
// rewrites their references to forward-slash paths relative to the story
// directory. Failed downloads warn and keep the remote reference.
func (p *Pipeline) localizeImages(ctx context.Context, slug, htmlText, pageURL, body string) (string, []string, []string) {
	storyDir := p.writer.StoryDir(slug)
	replacements := make(map[string]string)

	var assetPaths []string
	var warnings []string
	for i, img := range assets.Collect(htmlText, pageURL) {
		localPath, warn := p.assets.EnsureDownloaded(ctx, slug, img.URL, img.Alt, i+1)
		if warn != "" {
			warnings = append(warnings, warn)
			continue
		}
		if localPath == "" {
			continue
		}
		assetPaths = append(assetPaths, localPath)

		rel, err := filepath.Rel(storyDir, localPath)
		if err != nil {
			rel = localPath
		}
		replacements[img.URL] = filepath.ToSlash(rel)
	}

	return markdown.RewriteImages(body, replacements), assetPaths, warnings
}
