// Package output handles directory layout and file writing for storyfetch.
// Stories land at <output>/<slug>/<language><ext>; the slug is the
// sanitized final path segment of the story's canonical URL.
package output

import (
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"

	"github.com/gaurav-prasanna/storyfetch/core"
)

// reportName is the run summary written at the output root.
const reportName = "summary.json"

// Writer writes rendered story documents to disk.
type Writer struct {
	OutputDir string
}

// New creates a Writer targeting the given output directory, creating it
// if needed. An empty outputDir defaults to the working directory.
func New(outputDir string) (*Writer, error) {
	if outputDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		outputDir = wd
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	return &Writer{OutputDir: outputDir}, nil
}

// StoryDir returns the directory a story's documents are written into.
func (w *Writer) StoryDir(slug string) string {
	return filepath.Join(w.OutputDir, slug)
}

// WriteStory writes one rendered language variant of a story.
func (w *Writer) WriteStory(slug, lang string, data []byte, ext string) (string, error) {
	dir := w.StoryDir(slug)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating directory %s: %w", dir, err)
	}
	p := filepath.Join(dir, lang+ext)
	if err := os.WriteFile(p, data, 0644); err != nil {
		return "", fmt.Errorf("writing file %s: %w", p, err)
	}
	return p, nil
}

// WriteReport writes the run summary at the output root.
func (w *Writer) WriteReport(data []byte) (string, error) {
	p := filepath.Join(w.OutputDir, reportName)
	if err := os.WriteFile(p, data, 0644); err != nil {
		return "", fmt.Errorf("writing report %s: %w", p, err)
	}
	return p, nil
}

// Slug derives the directory name for a story from its canonical URL: the
// last path segment, made filename-safe.
func Slug(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return core.SafeName(rawURL, "untitled")
	}
	base := path.Base(parsed.Path)
	if base == "/" || base == "." {
		base = ""
	}
	return core.SafeName(base, "untitled")
}
