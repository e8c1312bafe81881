package services

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

type FileFormat string

const (
	FormatPDF  FileFormat = "pdf"
	FormatDOCX FileFormat = "docx"
)

// ErrUnsupportedFormat is returned for any upload that is not a PDF or DOCX.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// ExtractionError wraps the underlying cause when a file of a supported
// format turns out to be malformed or unreadable.
type ExtractionError struct {
	Format FileFormat
	Err    error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("failed to extract text from %s: %v", e.Format, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// DetectFormat maps a filename extension to a supported format.
func DetectFormat(filename string) (FileFormat, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return FormatPDF, nil
	case ".docx":
		return FormatDOCX, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(filename))
	}
}

type TextExtractor interface {
	ExtractText(filePath string, format FileFormat) (string, error)
}

type textExtractor struct{}

func NewTextExtractor() TextExtractor {
	return &textExtractor{}
}

// ExtractText returns the document's textual content in document order. An
// empty result is not an error; callers decide how to treat text-free files.
func (t *textExtractor) ExtractText(filePath string, format FileFormat) (string, error) {
	switch format {
	case FormatPDF:
		return t.extractPDF(filePath)
	case FormatDOCX:
		return t.extractDOCX(filePath)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

func (t *textExtractor) extractPDF(filePath string) (string, error) {
	f, r, err := pdf.Open(filePath)
	if err != nil {
		return "", &ExtractionError{Format: FormatPDF, Err: err}
	}
	defer f.Close()

	var textBuilder strings.Builder
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Skip unreadable pages, keep the rest
			continue
		}

		textBuilder.WriteString(text)
		textBuilder.WriteString("\n\n")
	}

	return textBuilder.String(), nil
}

func (t *textExtractor) extractDOCX(filePath string) (string, error) {
	doc, err := docx.ReadDocxFile(filePath)
	if err != nil {
		return "", &ExtractionError{Format: FormatDOCX, Err: err}
	}
	defer doc.Close()

	// GetContent returns the raw word/document.xml markup
	return docxContentToText(doc.Editable().GetContent()), nil
}

var xmlUnescaper = strings.NewReplacer(
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&apos;", "'",
)

// docxContentToText pulls the text runs (<w:t> elements) out of document.xml,
// one line per paragraph.
func docxContentToText(content string) string {
	var lines []string

	for _, paragraph := range strings.Split(content, "</w:p>") {
		var lineBuilder strings.Builder

		rest := paragraph
		for {
			open := strings.Index(rest, "<w:t")
			if open == -1 {
				break
			}
			rest = rest[open+len("<w:t"):]

			// Guard against matching <w:tbl>, <w:tab> and friends
			if rest == "" || (rest[0] != '>' && rest[0] != ' ' && rest[0] != '/') {
				continue
			}

			tagEnd := strings.Index(rest, ">")
			if tagEnd == -1 {
				break
			}
			if strings.HasSuffix(rest[:tagEnd], "/") {
				rest = rest[tagEnd+1:]
				continue
			}
			rest = rest[tagEnd+1:]

			closing := strings.Index(rest, "</w:t>")
			if closing == -1 {
				break
			}

			lineBuilder.WriteString(xmlUnescaper.Replace(rest[:closing]))
			rest = rest[closing+len("</w:t>"):]
		}

		if line := strings.TrimSpace(lineBuilder.String()); line != "" {
			lines = append(lines, line)
		}
	}

	return strings.Join(lines, "\n")
}

// CleanText normalizes extracted text: trims each line and drops blank ones.
func CleanText(text string) string {
	text = strings.TrimSpace(text)

	lines := strings.Split(text, "\n")
	var cleanedLines []string

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleanedLines = append(cleanedLines, line)
		}
	}

	return strings.Join(cleanedLines, "\n")
}
