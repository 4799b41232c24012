package output

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSlug(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://magic.wizards.com/en/news/magic-story/episode-1-class-session-2021-03-25", "episode-1-class-session-2021-03-25"},
		{"https://example.com/a/b/story-slug/", "story-slug"},
		{"https://example.com/", "untitled"},
		{"https://example.com/weird:segment", "weird_segment"},
	}
	for _, tt := range tests {
		if got := Slug(tt.url); got != tt.want {
			t.Errorf("Slug(%q) = %q, want %q", tt.url, got, tt.want)
		}
	}
}

func TestWriteStory(t *testing.T) {
	dir := t.TempDir()
	w, err := New(dir)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	path, err := w.WriteStory("my-story", "zh-Hans", []byte("content"), ".md")
	if err != nil {
		t.Fatalf("WriteStory() error = %v", err)
	}
	if want := filepath.Join(dir, "my-story", "zh-Hans.md"); path != want {
		t.Errorf("path = %q, want %q", path, want)
	}
	data, err := os.ReadFile(path)
	if err != nil || string(data) != "content" {
		t.Errorf("file content = %q, %v", data, err)
	}
}

func TestWriteReport(t *testing.T) {
	dir := t.TempDir()
	w, err := New(dir)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	path, err := w.WriteReport([]byte("{}"))
	if err != nil {
		t.Fatalf("WriteReport() error = %v", err)
	}
	if want := filepath.Join(dir, "summary.json"); path != want {
		t.Errorf("path = %q, want %q", path, want)
	}
}

func TestNewCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	if _, err := New(dir); err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("output directory was not created: %v", err)
	}
}
