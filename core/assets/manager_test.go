package assets

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// fakeDownloader counts calls and serves canned bytes, standing in for the
// HTTP client.
type fakeDownloader struct {
	calls int
	data  string
	err   error
}

func (d *fakeDownloader) Download(ctx context.Context, url string) (io.ReadCloser, error) {
	d.calls++
	if d.err != nil {
		return nil, d.err
	}
	return io.NopCloser(strings.NewReader(d.data)), nil
}

func TestEnsureDownloadedCachesPerURL(t *testing.T) {
	dl := &fakeDownloader{data: "imagebytes"}
	m := NewManager(t.TempDir(), dl)

	first, warn := m.EnsureDownloaded(context.Background(), "story-1", "https://cdn.example.com/art.jpg", "Campus", 1)
	if warn != "" {
		t.Fatalf("unexpected warning: %s", warn)
	}
	second, warn := m.EnsureDownloaded(context.Background(), "story-1", "https://cdn.example.com/art.jpg", "Campus", 2)
	if warn != "" {
		t.Fatalf("unexpected warning on cache hit: %s", warn)
	}

	if dl.calls != 1 {
		t.Errorf("downloader called %d times, want exactly 1 for a repeated URL", dl.calls)
	}
	if first != second {
		t.Errorf("cache hit returned %q, want the original path %q", second, first)
	}
}

func TestEnsureDownloadedSeparateStories(t *testing.T) {
	dl := &fakeDownloader{data: "x"}
	m := NewManager(t.TempDir(), dl)

	m.EnsureDownloaded(context.Background(), "story-1", "https://cdn.example.com/art.jpg", "", 1)
	m.EnsureDownloaded(context.Background(), "story-2", "https://cdn.example.com/art.jpg", "", 1)

	if dl.calls != 2 {
		t.Errorf("downloader called %d times, want 2: the cache is per story", dl.calls)
	}
}

func TestEnsureDownloadedFilename(t *testing.T) {
	dl := &fakeDownloader{data: "x"}
	dir := t.TempDir()
	m := NewManager(dir, dl)

	path, warn := m.EnsureDownloaded(context.Background(), "slug", "https://cdn.example.com/pics/art.png?w=1200", "A Hero: Rise/Fall", 3)
	if warn != "" {
		t.Fatalf("unexpected warning: %s", warn)
	}
	want := filepath.Join(dir, "slug", "03_A Hero_ Rise_Fall.png")
	if path != want {
		t.Errorf("path = %q, want %q", path, want)
	}
}

func TestEnsureDownloadedDefaultExtensionAndAlt(t *testing.T) {
	dl := &fakeDownloader{data: "x"}
	dir := t.TempDir()
	m := NewManager(dir, dl)

	path, _ := m.EnsureDownloaded(context.Background(), "slug", "https://cdn.example.com/noext", "  ", 7)
	want := filepath.Join(dir, "slug", "07_image-07.jpg")
	if path != want {
		t.Errorf("path = %q, want sanitized-empty alt fallback and .jpg default, %q", path, want)
	}
}

func TestEnsureDownloadedCollisionSuffix(t *testing.T) {
	dl := &fakeDownloader{data: "new"}
	dir := t.TempDir()
	m := NewManager(dir, dl)

	existing := filepath.Join(dir, "slug", "01_cover.jpg")
	if err := os.MkdirAll(filepath.Dir(existing), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(existing, []byte("old"), 0644); err != nil {
		t.Fatal(err)
	}

	path, warn := m.EnsureDownloaded(context.Background(), "slug", "https://cdn.example.com/cover.jpg", "cover", 1)
	if warn != "" {
		t.Fatalf("unexpected warning: %s", warn)
	}
	if want := filepath.Join(dir, "slug", "01_cover_1.jpg"); path != want {
		t.Errorf("path = %q, want suffixed %q", path, want)
	}

	old, err := os.ReadFile(existing)
	if err != nil || string(old) != "old" {
		t.Errorf("pre-existing file was touched: %q, %v", old, err)
	}
}

func TestEnsureDownloadedFailure(t *testing.T) {
	dl := &fakeDownloader{err: errors.New("connection reset")}
	m := NewManager(t.TempDir(), dl)

	path, warn := m.EnsureDownloaded(context.Background(), "slug", "https://cdn.example.com/gone.jpg", "", 1)
	if path != "" {
		t.Errorf("path = %q, want empty on failure", path)
	}
	if !strings.Contains(warn, "https://cdn.example.com/gone.jpg") || !strings.Contains(warn, "connection reset") {
		t.Errorf("warning = %q, should mention URL and cause", warn)
	}
	if dl.calls != 1 {
		t.Errorf("downloader called %d times, want single attempt for assets", dl.calls)
	}
}
