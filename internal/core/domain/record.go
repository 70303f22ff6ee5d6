package domain

import "strings"

// KindFile is the record kind for file-backed content. It is the only kind
// this loader produces; the field exists so downstream indexers can mix
// records from other adapters.
const KindFile = "file"

// Record represents one normalized text-bearing unit extracted from a file.
// Paged formats (PDF) produce one record per page; everything else produces
// one record per file, or one per sheet/slide for tabular and slide decks.
type Record struct {
	// Content is the extracted plain text.
	Content string

	// Source is the stable web locator for the originating file.
	Source string

	// Kind is the record kind, always KindFile for this loader.
	Kind string

	// Page is the 1-based page number for paged formats, nil otherwise.
	Page *int
}

// ScrubContent replaces every null byte with a single space.
// Null bytes leak out of malformed PDFs and legacy office files and are
// rejected by most downstream text indexes.
func ScrubContent(s string) string {
	return strings.ReplaceAll(s, "\x00", " ")
}
