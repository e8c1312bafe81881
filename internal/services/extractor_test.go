package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		filename string
		want     FileFormat
		wantErr  bool
	}{
		{"resume.pdf", FormatPDF, false},
		{"Resume.PDF", FormatPDF, false},
		{"resume.docx", FormatDOCX, false},
		{"My Resume.DOCX", FormatDOCX, false},
		{"resume.txt", "", true},
		{"resume.doc", "", true},
		{"resume", "", true},
		{"resume.pdf.exe", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			format, err := DetectFormat(tt.filename)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnsupportedFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, format)
		})
	}
}

func TestExtractTextCorruptFiles(t *testing.T) {
	dir := t.TempDir()
	extractor := NewTextExtractor()

	tests := []struct {
		name   string
		file   string
		format FileFormat
	}{
		{"corrupt pdf", "broken.pdf", FormatPDF},
		{"corrupt docx", "broken.docx", FormatDOCX},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.file)
			require.NoError(t, os.WriteFile(path, []byte("this is not a real document"), 0644))

			_, err := extractor.ExtractText(path, tt.format)
			require.Error(t, err)

			var extractErr *ExtractionError
			require.ErrorAs(t, err, &extractErr)
			assert.Equal(t, tt.format, extractErr.Format)
		})
	}
}

func TestExtractTextUnknownFormat(t *testing.T) {
	extractor := NewTextExtractor()

	_, err := extractor.ExtractText("whatever.bin", FileFormat("bin"))
	require.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestDocxContentToText(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "single paragraph",
			content: `<w:p><w:r><w:t>Jane Doe</w:t></w:r></w:p>`,
			want:    "Jane Doe",
		},
		{
			name: "multiple runs in one paragraph",
			content: `<w:p><w:r><w:t>Jane </w:t></w:r><w:r><w:t>Doe</w:t></w:r></w:p>` +
				`<w:p><w:r><w:t>jane@x.com</w:t></w:r></w:p>`,
			want: "Jane Doe\njane@x.com",
		},
		{
			name:    "preserve-space attribute",
			content: `<w:p><w:r><w:t xml:space="preserve">Senior Engineer</w:t></w:r></w:p>`,
			want:    "Senior Engineer",
		},
		{
			name:    "escaped entities",
			content: `<w:p><w:r><w:t>R&amp;D &lt;lead&gt;</w:t></w:r></w:p>`,
			want:    "R&D <lead>",
		},
		{
			name:    "table tags are not text runs",
			content: `<w:tbl><w:p><w:r><w:t>cell text</w:t></w:r></w:p></w:tbl>`,
			want:    "cell text",
		},
		{
			name:    "self-closing run",
			content: `<w:p><w:r><w:t/></w:r><w:r><w:t>after</w:t></w:r></w:p>`,
			want:    "after",
		},
		{
			name:    "no text",
			content: `<w:p><w:r></w:r></w:p>`,
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, docxContentToText(tt.content))
		})
	}
}

func TestCleanText(t *testing.T) {
	in := "  Jane Doe  \n\n\n  Senior Engineer\n   \n jane@x.com "
	want := "Jane Doe\nSenior Engineer\njane@x.com"
	assert.Equal(t, want, CleanText(in))
}
