package pdf

import (
	"bytes"
	"context"
	"fmt"

	"github.com/ledongthuc/pdf"

	"github.com/custodia-labs/dbxloader/internal/core/domain"
	"github.com/custodia-labs/dbxloader/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// Extractor handles PDF files, producing one fragment per page.
type Extractor struct{}

// New creates a new PDF extractor.
func New() *Extractor {
	return &Extractor{}
}

// Extract returns one fragment per page with 1-based page numbers.
// Encrypted or corrupted documents fail as a whole: the dispatcher records
// the fault and the file yields zero records.
func (e *Extractor) Extract(_ context.Context, content []byte) (fragments []driven.Fragment, err error) {
	// The parser panics on some malformed xref tables instead of
	// returning an error; treat those as malformed content.
	defer func() {
		if r := recover(); r != nil {
			fragments = nil
			err = fmt.Errorf("pdf parser panic: %v: %w", r, domain.ErrMalformedContent)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}

	total := reader.NumPage()
	for i := 1; i <= total; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			return nil, fmt.Errorf("extract page %d: %w", i, err)
		}

		pageNum := i
		fragments = append(fragments, driven.Fragment{Text: text, Page: &pageNum})
	}

	return fragments, nil
}
