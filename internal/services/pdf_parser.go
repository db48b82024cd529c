package services

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
)

type PDFParserService interface {
	ExtractTextWithMetaData(filepath string) (*PDFContent, error)
}

type PDFContent struct {
	Text      string
	PageCount int
	FilePath  string
}

type pdfParserService struct{}

func NewPDFParserService() PDFParserService {
	return &pdfParserService{}
}

// ExtractTextWithMetaData reads every page as line-structured text. The pdf
// package panics on some malformed documents, so panics are turned into errors.
func (p *pdfParserService) ExtractTextWithMetaData(filePath string) (content *PDFContent, err error) {
	if _, statErr := os.Stat(filePath); os.IsNotExist(statErr) {
		return nil, fmt.Errorf("file does not exist: %s", filePath)
	}

	defer func() {
		if r := recover(); r != nil {
			content = nil
			err = fmt.Errorf("malformed PDF: %v", r)
		}
	}()

	f, r, err := pdf.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	var textBuilder strings.Builder
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		pageContent, err := pageText(page)
		if err != nil {
			// Skip unreadable pages, keep the rest
			continue
		}

		textBuilder.WriteString(pageContent)
		textBuilder.WriteString("\n")
	}

	text := textBuilder.String()
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("no text content found in PDF")
	}

	return &PDFContent{
		Text:      text,
		PageCount: totalPage,
		FilePath:  filePath,
	}, nil
}

const (
	// Fractions of the font size. A larger vertical move starts a new line,
	// a larger horizontal gap between glyphs becomes a space.
	lineTolerance = 0.5
	wordGapRatio  = 0.15
)

// pageText lays the page out from glyph positions and falls back to
// GetPlainText when the content stream yields no glyphs.
func pageText(page pdf.Page) (string, error) {
	if text, ok := layoutPage(page); ok {
		return text, nil
	}
	return page.GetPlainText(nil)
}

func layoutPage(page pdf.Page) (text string, ok bool) {
	defer func() {
		if recover() != nil {
			text, ok = "", false
		}
	}()

	glyphs := page.Content().Text
	if len(glyphs) == 0 {
		return "", false
	}
	return layoutText(glyphs), true
}

// layoutText joins glyphs in content-stream order.
func layoutText(glyphs []pdf.Text) string {
	var b strings.Builder
	var prev *pdf.Text

	for i := range glyphs {
		g := &glyphs[i]
		if g.S == "\n" || g.S == "\r" {
			continue
		}

		if prev != nil {
			size := math.Max(math.Abs(g.FontSize), 1)
			gap := g.X - (prev.X + prev.W)
			switch {
			case math.Abs(g.Y-prev.Y) > size*lineTolerance:
				b.WriteString("\n")
			case isBlank(g.S) || isBlank(prev.S):
			case gap > size*wordGapRatio || gap < -size:
				b.WriteString(" ")
			}
		}

		b.WriteString(g.S)
		prev = g
	}
	return b.String()
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// CleanText trims every line and drops blank ones.
func CleanText(text string) string {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	var cleanedLines []string

	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			cleanedLines = append(cleanedLines, line)
		}
	}

	return strings.Join(cleanedLines, "\n")
}
