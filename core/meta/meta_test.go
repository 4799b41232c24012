package meta

import "testing"

const sourceURL = "https://magic.wizards.com/en/news/magic-story/episode-1-class-session-2021-03-25"

func TestExtractFromJSONLD(t *testing.T) {
	html := `<html><head>
	<script type="application/ld+json">
	{"@type":"NewsArticle","headline":"Class Session","datePublished":"2021-03-25","author":{"name":"Adana Washington"}}
	</script>
	</head><body><h1>Ignored heading</h1></body></html>`

	m := Extract(html, "en", sourceURL)

	if m.Title != "Class Session" {
		t.Errorf("Title = %q, want %q", m.Title, "Class Session")
	}
	if m.Author != "Adana Washington" {
		t.Errorf("Author = %q, want %q", m.Author, "Adana Washington")
	}
	if m.Published != "2021-03-25" {
		t.Errorf("Published = %q, want %q", m.Published, "2021-03-25")
	}
	if m.SourceURL != sourceURL || m.Language != "en" {
		t.Errorf("SourceURL/Language = %q/%q, want fixture values", m.SourceURL, m.Language)
	}
}

func TestExtractLastBlockWins(t *testing.T) {
	html := `<html><head>
	<script type="application/ld+json">{"@type":"Article","headline":"First Title"}</script>
	<script type="application/ld+json">{"@type":"Article","headline":"Second Title"}</script>
	</head><body></body></html>`

	m := Extract(html, "en", sourceURL)
	if m.Title != "Second Title" {
		t.Errorf("Title = %q, want the later block to win", m.Title)
	}
}

func TestExtractAuthorList(t *testing.T) {
	html := `<html><head>
	<script type="application/ld+json">
	{"@type":"Article","headline":"T","author":[{"name":"A. One"},{"role":"editor"},{"name":"B. Two"}]}
	</script>
	</head><body></body></html>`

	m := Extract(html, "en", sourceURL)
	if m.Author != "A. One, B. Two" {
		t.Errorf("Author = %q, want names joined in order, nameless skipped", m.Author)
	}
}

func TestExtractArrayPayload(t *testing.T) {
	html := `<html><head>
	<script type="application/ld+json">
	[{"@type":"BreadcrumbList"},{"@type":"NewsArticle","headline":"From Array"}]
	</script>
	</head><body></body></html>`

	m := Extract(html, "en", sourceURL)
	if m.Title != "From Array" {
		t.Errorf("Title = %q, want the article entry of the array", m.Title)
	}
}

func TestExtractIgnoresNonArticleAndMalformed(t *testing.T) {
	html := `<html><head>
	<script type="application/ld+json">{"@type":"WebSite","headline":"Site Name"}</script>
	<script type="application/ld+json">{not json</script>
	</head><body><h1> Fallback Heading </h1></body></html>`

	m := Extract(html, "en", sourceURL)
	if m.Title != "Fallback Heading" {
		t.Errorf("Title = %q, want trimmed h1 fallback", m.Title)
	}
}

func TestExtractDOMFallbacks(t *testing.T) {
	html := `<html><body>
	<h1>Heading Title</h1>
	<span data-testid="byline-name">  Jane Writer </span>
	<span data-testid="publish-date"> March 25, 2021 </span>
	</body></html>`

	m := Extract(html, "en", sourceURL)
	if m.Title != "Heading Title" {
		t.Errorf("Title = %q", m.Title)
	}
	if m.Author != "Jane Writer" {
		t.Errorf("Author = %q, want trimmed byline", m.Author)
	}
	if m.Published != "March 25, 2021" {
		t.Errorf("Published = %q, want trimmed publish date", m.Published)
	}
}

func TestExtractPlaceholders(t *testing.T) {
	m := Extract("<html><body></body></html>", "zh-Hans", sourceURL)
	if m.Title != "Untitled story" {
		t.Errorf("Title = %q, want placeholder", m.Title)
	}
	if m.Author != "Unknown author" {
		t.Errorf("Author = %q, want placeholder", m.Author)
	}
	if m.Published != "" {
		t.Errorf("Published = %q, want empty", m.Published)
	}
}
