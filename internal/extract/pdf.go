package extract

import (
	"fmt"

	"github.com/ledongthuc/pdf"

	"slidesearch/internal/domain"
)

// PDFExtractor reads per-page plain text from PDF files.
type PDFExtractor struct{}

func NewPDFExtractor() *PDFExtractor { return &PDFExtractor{} }

// ExtractPages returns the text of each page of the PDF at path, using
// zero-based page indexes. Pages that cannot be rendered are skipped and
// reported in failed. An error is returned only when the file itself cannot
// be opened or parsed.
func (e *PDFExtractor) ExtractPages(path string) ([]domain.PageText, []int, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open pdf %s: %w", path, err)
	}
	defer f.Close()

	var pages []domain.PageText
	var failed []int
	total := reader.NumPage()
	for i := 1; i <= total; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			failed = append(failed, i-1)
			continue
		}
		fonts := make(map[string]*pdf.Font)
		text, err := page.GetPlainText(fonts)
		if err != nil {
			failed = append(failed, i-1)
			continue
		}
		pages = append(pages, domain.PageText{Index: i - 1, Text: text})
	}
	return pages, failed, nil
}
