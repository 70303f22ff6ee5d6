package extractors

import (
	"github.com/custodia-labs/dbxloader/internal/core/domain"
	"github.com/custodia-labs/dbxloader/internal/core/ports/driven"
	"github.com/custodia-labs/dbxloader/internal/extractors/docx"
	"github.com/custodia-labs/dbxloader/internal/extractors/html"
	"github.com/custodia-labs/dbxloader/internal/extractors/markdown"
	"github.com/custodia-labs/dbxloader/internal/extractors/pdf"
	"github.com/custodia-labs/dbxloader/internal/extractors/plaintext"
	"github.com/custodia-labs/dbxloader/internal/extractors/pptx"
	"github.com/custodia-labs/dbxloader/internal/extractors/rtf"
	"github.com/custodia-labs/dbxloader/internal/extractors/spreadsheet"
)

// Ensure Registry implements the interface.
var _ driven.ExtractorRegistry = (*Registry)(nil)

// Registry maps file kinds to their extraction routines.
type Registry struct {
	byKind map[domain.FileKind]driven.Extractor
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byKind: make(map[domain.FileKind]driven.Extractor),
	}
}

// Register binds a kind to an extractor, replacing any previous binding.
// Several kinds may share one extractor; Paper notes arrive as exported
// markdown and reuse the markdown routine.
func (r *Registry) Register(kind domain.FileKind, e driven.Extractor) {
	r.byKind[kind] = e
}

// Get returns the extractor for a kind.
func (r *Registry) Get(kind domain.FileKind) (driven.Extractor, bool) {
	e, ok := r.byKind[kind]
	return e, ok
}

// Defaults returns a registry covering every allow-listed kind.
func Defaults() *Registry {
	r := NewRegistry()
	r.Register(domain.KindText, plaintext.New())
	r.Register(domain.KindHTML, html.New())
	r.Register(domain.KindRTF, rtf.New())
	r.Register(domain.KindPDF, pdf.New())
	r.Register(domain.KindDocx, docx.New())
	r.Register(domain.KindSpreadsheet, spreadsheet.New())
	r.Register(domain.KindPresentation, pptx.New())

	md := markdown.New()
	r.Register(domain.KindMarkdown, md)
	r.Register(domain.KindPaper, md)
	return r
}
