package markdown

import "testing"

func TestRewriteImages(t *testing.T) {
	text := "Intro\n\n![Cover art](https://cdn.example.com/cover.jpg)\n\n![Detail](https://cdn.example.com/detail.png)\n"
	replacements := map[string]string{
		"https://cdn.example.com/cover.jpg": "../../assets/slug/01_Cover art.jpg",
	}

	got := RewriteImages(text, replacements)

	want := "Intro\n\n![Cover art](../../assets/slug/01_Cover art.jpg)\n\n![Detail](https://cdn.example.com/detail.png)\n"
	if got != want {
		t.Errorf("RewriteImages() =\n%s\nwant\n%s", got, want)
	}
}

func TestRewriteImagesIdentityOnNoMatch(t *testing.T) {
	text := "![a](https://one.example/x.jpg) and ![b](https://two.example/y.jpg)"

	if got := RewriteImages(text, map[string]string{"https://other.example/z.jpg": "local.jpg"}); got != text {
		t.Errorf("RewriteImages() = %q, want input unchanged", got)
	}
	if got := RewriteImages(text, nil); got != text {
		t.Errorf("RewriteImages() with empty map = %q, want input unchanged", got)
	}
}

func TestRewriteImagesRepeatedReference(t *testing.T) {
	text := "![x](https://cdn.example.com/a.jpg)\n![x](https://cdn.example.com/a.jpg)"
	got := RewriteImages(text, map[string]string{"https://cdn.example.com/a.jpg": "01_x.jpg"})
	want := "![x](01_x.jpg)\n![x](01_x.jpg)"
	if got != want {
		t.Errorf("RewriteImages() = %q, want every occurrence rewritten", got)
	}
}

func TestRewriteImagesLeavesLinksAlone(t *testing.T) {
	text := "[not an image](https://cdn.example.com/a.jpg)"
	got := RewriteImages(text, map[string]string{"https://cdn.example.com/a.jpg": "01_x.jpg"})
	if got != text {
		t.Errorf("RewriteImages() = %q, plain links must not be rewritten", got)
	}
}
