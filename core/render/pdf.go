// Package render — PDF renderer.
// Converts a story document into a styled PDF using gofpdf, as an optional
// companion to the canonical Markdown output. Handles headings, paragraphs
// and lists; image references are reduced to their alt text since assets
// live next to the Markdown, not inside the PDF.
package render

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/gaurav-prasanna/storyfetch/core"
)

// PDFRenderer renders a story document as a PDF.
type PDFRenderer struct{}

// NewPDFRenderer creates a PDFRenderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// Render converts the document into PDF bytes.
func (r *PDFRenderer) Render(doc core.StoryDocument) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("")

	// Title and byline from metadata.
	pdf.SetFont("Helvetica", "B", 18)
	pdf.MultiCell(0, 8, tr(doc.Meta.Title), "", "L", false)
	pdf.Ln(2)

	byline := doc.Meta.Author
	if doc.Meta.Published != "" {
		byline += " · " + doc.Meta.Published
	}
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(80, 80, 80)
	pdf.MultiCell(0, 5, tr(byline), "", "L", false)

	pdf.SetFont("Helvetica", "I", 9)
	pdf.SetTextColor(100, 100, 100)
	pdf.MultiCell(0, 5, "Source: "+doc.Meta.SourceURL, "", "L", false)
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(6)

	for _, line := range strings.Split(doc.Body, "\n") {
		// Blank lines become spacing.
		if strings.TrimSpace(line) == "" {
			pdf.Ln(3)
			continue
		}

		// Headings.
		if strings.HasPrefix(line, "#") {
			level := 0
			for _, ch := range line {
				if ch != '#' {
					break
				}
				level++
			}
			renderHeading(pdf, tr, strings.TrimSpace(strings.TrimLeft(line, "# ")), level)
			continue
		}

		// List items.
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") {
			pdf.SetFont("Helvetica", "", 10)
			text := "• " + cleanInlineMarkdown(strings.TrimSpace(trimmed[2:]))
			pdf.MultiCell(0, 5, tr(text), "", "L", false)
			continue
		}

		// Regular paragraph text.
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, tr(cleanInlineMarkdown(line)), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for PDF output.
func (r *PDFRenderer) Extension() string {
	return ".pdf"
}

// renderHeading sets the font size based on heading level and writes text.
func renderHeading(pdf *gofpdf.Fpdf, tr func(string) string, text string, level int) {
	sizes := map[int]float64{1: 18, 2: 15, 3: 13, 4: 12, 5: 11, 6: 10}
	size, ok := sizes[level]
	if !ok {
		size = 10
	}
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", size)
	pdf.MultiCell(0, size*0.6, tr(cleanInlineMarkdown(text)), "", "L", false)
	pdf.Ln(2)
}

var (
	imageRefPattern = regexp.MustCompile(`!\[([^\]]*)\]\([^)]+\)`)
	linkRefPattern  = regexp.MustCompile(`\[([^\]]*)\]\([^)]+\)`)
	italicPattern   = regexp.MustCompile(`(?:^|\s)\*([^*]+)\*(?:\s|$)`)
	inlineCodeClean = regexp.MustCompile("`([^`]+)`")
)

// cleanInlineMarkdown strips inline Markdown formatting for PDF rendering.
// Image references collapse to their alt text.
func cleanInlineMarkdown(text string) string {
	text = imageRefPattern.ReplaceAllString(text, "$1")
	text = linkRefPattern.ReplaceAllString(text, "$1")
	text = strings.ReplaceAll(text, "**", "")
	text = strings.ReplaceAll(text, "__", "")
	text = italicPattern.ReplaceAllString(text, " $1 ")
	text = inlineCodeClean.ReplaceAllString(text, "$1")
	return strings.TrimSpace(text)
}
