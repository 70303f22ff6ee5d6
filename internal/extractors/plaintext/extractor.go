package plaintext

import (
	"context"
	"strings"

	"github.com/custodia-labs/dbxloader/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// Extractor handles plain text files.
type Extractor struct{}

// New creates a new plain text extractor.
func New() *Extractor {
	return &Extractor{}
}

// Extract returns the content as a single fragment with leading and
// trailing whitespace stripped.
func (e *Extractor) Extract(_ context.Context, content []byte) ([]driven.Fragment, error) {
	return []driven.Fragment{
		{Text: strings.TrimSpace(string(content))},
	}, nil
}
