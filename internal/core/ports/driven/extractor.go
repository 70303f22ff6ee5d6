package driven

import (
	"context"

	"github.com/custodia-labs/dbxloader/internal/core/domain"
)

// Fragment is one text unit produced by an extraction routine, before the
// dispatcher normalizes it into a domain.Record.
type Fragment struct {
	// Text is the extracted plain text.
	Text string

	// Page is the 1-based page number for paged formats, nil otherwise.
	Page *int
}

// Extractor converts downloaded bytes into ordered text fragments.
// Each extractor handles exactly one file kind's decoding; it knows nothing
// about where the bytes came from.
type Extractor interface {
	// Extract decodes the content. A decoding failure is returned as an
	// error; the dispatcher converts it into a warning and zero records
	// rather than aborting the batch.
	Extract(ctx context.Context, content []byte) ([]Fragment, error)
}

// ExtractorRegistry maps file kinds to their extraction routines.
// The default registry is total over the allow-list: every eligible kind
// resolves to exactly one extractor.
type ExtractorRegistry interface {
	// Get returns the extractor for a kind.
	Get(kind domain.FileKind) (Extractor, bool)
}
