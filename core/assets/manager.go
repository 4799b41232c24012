// Package assets downloads and deduplicates the images a story references,
// producing stable local paths. Within one run a given (story, URL) pair is
// downloaded at most once; repeated references reuse the cached path.
package assets

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path"
	"path/filepath"

	"github.com/gaurav-prasanna/storyfetch/core"
)

// Manager owns the per-story download cache and the asset directory layout.
// Single-owner semantics: one Manager per run, used sequentially.
type Manager struct {
	baseDir string
	client  core.Downloader
	cache   map[string]map[string]string // slug -> remote URL -> local path
}

// NewManager creates a Manager writing under baseDir.
func NewManager(baseDir string, client core.Downloader) *Manager {
	return &Manager{
		baseDir: baseDir,
		client:  client,
		cache:   make(map[string]map[string]string),
	}
}

// EnsureDownloaded returns the local path for a remote image, downloading
// it on first sight. index is the 1-based position of the image in the
// story, encoded into the filename so asset order matches content order.
//
// A non-empty warning (and empty path) means the download failed; there is
// no retry for assets. Cache hits cost nothing and produce no warning.
func (m *Manager) EnsureDownloaded(ctx context.Context, slug, remoteURL, altText string, index int) (localPath, warning string) {
	slugCache := m.cache[slug]
	if slugCache == nil {
		slugCache = make(map[string]string)
		m.cache[slug] = slugCache
	}
	if p, ok := slugCache[remoteURL]; ok {
		return p, ""
	}

	dir := filepath.Join(m.baseDir, slug)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Sprintf("creating asset directory %s: %v", dir, err)
	}

	target := freeName(dir, filename(remoteURL, altText, index))
	if err := m.download(ctx, remoteURL, target); err != nil {
		return "", fmt.Sprintf("image download failed: %s: %v", remoteURL, err)
	}

	slugCache[remoteURL] = target
	return target, ""
}

// filename derives "<NN>_<safe-alt><ext>" from the remote URL and alt text.
// The extension comes from the URL path, defaulting to ".jpg".
func filename(remoteURL, altText string, index int) string {
	ext := ".jpg"
	if parsed, err := url.Parse(remoteURL); err == nil {
		if e := path.Ext(parsed.Path); e != "" {
			ext = e
		}
	}
	safeAlt := core.SafeName(altText, fmt.Sprintf("image-%02d", index))
	return fmt.Sprintf("%02d_%s%s", index, safeAlt, ext)
}

// freeName appends a numeric suffix while the name is taken on disk, e.g.
// from a prior run. Existing files are never overwritten.
func freeName(dir, name string) string {
	ext := filepath.Ext(name)
	stem := name[:len(name)-len(ext)]
	candidate := filepath.Join(dir, name)
	for n := 1; fileExists(candidate); n++ {
		candidate = filepath.Join(dir, fmt.Sprintf("%s_%d%s", stem, n, ext))
	}
	return candidate
}

// download streams the resource to target in one attempt.
func (m *Manager) download(ctx context.Context, remoteURL, target string) error {
	body, err := m.client.Download(ctx, remoteURL)
	if err != nil {
		return err
	}
	defer body.Close()

	f, err := os.Create(target)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, body); err != nil {
		f.Close()
		os.Remove(target)
		return err
	}
	return f.Close()
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
