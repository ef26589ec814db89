// Package extract turns uploaded PDF documents into plain text for the
// analysis pipeline.
package extract

import (
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
)

// MaxChars caps the extracted text so downstream LLM calls stay inside
// provider token limits. Anything past the cap is dropped.
const MaxChars = 12000

// PDFExtractor reads financial PDF documents and returns cleaned text.
type PDFExtractor struct{}

// NewPDFExtractor creates a PDF extractor.
func NewPDFExtractor() *PDFExtractor {
	return &PDFExtractor{}
}

// Read extracts plain text from the PDF at path.
//
// A missing file is not an error: it returns a descriptive sentinel string so
// the pipeline keeps going and the model sees what happened. Parse failures
// are real errors and abort the current run.
func (e *PDFExtractor) Read(path string) (string, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Sprintf("Error: File not found at path %s", path), nil
	}

	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF %s: %w", path, err)
	}
	defer f.Close()

	var report strings.Builder
	for pageIndex := 1; pageIndex <= r.NumPage(); pageIndex++ {
		p := r.Page(pageIndex)
		if p.V.IsNull() {
			continue
		}
		content, err := p.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("failed to extract page %d of %s: %w", pageIndex, path, err)
		}
		report.WriteString(CollapseBlankLines(content))
		report.WriteString("\n")
	}

	return Truncate(report.String()), nil
}

// CollapseBlankLines squeezes runs of consecutive newlines down to a single
// newline. Applying it twice yields the same result as applying it once.
func CollapseBlankLines(s string) string {
	for strings.Contains(s, "\n\n") {
		s = strings.ReplaceAll(s, "\n\n", "\n")
	}
	return s
}

// Truncate enforces the MaxChars budget on extracted text.
func Truncate(s string) string {
	if len(s) > MaxChars {
		return s[:MaxChars]
	}
	return s
}
