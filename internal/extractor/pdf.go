package extractor

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"pdfchat/internal/service"
)

// Extraction holds the text pulled out of a PDF file.
type Extraction struct {
	Text  string // Full document text, pages joined by newlines
	Pages int    // Number of pages in the document
}

// PDFExtractor extracts plain text from PDF files page by page.
type PDFExtractor struct{}

// NewPDFExtractor creates a new PDFExtractor.
func NewPDFExtractor() *PDFExtractor {
	return &PDFExtractor{}
}

// Extract reads the PDF at path and returns its plain text.
// Files that cannot be parsed as PDF return an error wrapping service.ErrExtraction.
func (e *PDFExtractor) Extract(path string) (result *Extraction, err error) {
	// The parser panics on some malformed files instead of returning an error.
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("%w: parsing %s: %v", service.ErrExtraction, path, r)
		}
	}()

	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening %s: %v", service.ErrExtraction, path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	totalPages := reader.NumPage()
	var sb strings.Builder

	for pageNum := 1; pageNum <= totalPages; pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			return nil, fmt.Errorf("%w: extracting page %d of %s: %v", service.ErrExtraction, pageNum, path, err)
		}

		if sb.Len() > 0 && text != "" {
			sb.WriteString("\n")
		}
		sb.WriteString(text)
	}

	return &Extraction{
		Text:  sb.String(),
		Pages: totalPages,
	}, nil
}
