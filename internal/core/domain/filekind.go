package domain

import (
	"path"
	"strings"
)

// FileKind identifies a loadable file format. The set is closed: every kind
// maps to exactly one extraction routine, and any extension outside the
// mapping is ineligible rather than an error.
type FileKind int

const (
	// KindUnknown is the zero value for ineligible files.
	KindUnknown FileKind = iota

	// KindText is plain text (txt).
	KindText

	// KindHTML is HTML markup (htm, html).
	KindHTML

	// KindMarkdown is Markdown (md).
	KindMarkdown

	// KindRTF is Rich Text Format (rtf).
	KindRTF

	// KindPDF is PDF (pdf); extraction is per page.
	KindPDF

	// KindDocx is an OOXML word-processing document (docx).
	KindDocx

	// KindSpreadsheet is a spreadsheet (xls, xlsx).
	KindSpreadsheet

	// KindPresentation is an OOXML slide deck (pptx).
	KindPresentation

	// KindPaper is a Dropbox Paper note. It cannot be downloaded as raw
	// bytes; the API exports it as a markdown projection first.
	KindPaper
)

// kindByExtension is the allow-list. Lookups are lower-cased, so the
// comparison is case-insensitive.
var kindByExtension = map[string]FileKind{
	"txt":   KindText,
	"htm":   KindHTML,
	"html":  KindHTML,
	"md":    KindMarkdown,
	"rtf":   KindRTF,
	"pdf":   KindPDF,
	"docx":  KindDocx,
	"xls":   KindSpreadsheet,
	"xlsx":  KindSpreadsheet,
	"pptx":  KindPresentation,
	"paper": KindPaper,
}

// String returns the kind name for logging.
func (k FileKind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindHTML:
		return "html"
	case KindMarkdown:
		return "markdown"
	case KindRTF:
		return "rtf"
	case KindPDF:
		return "pdf"
	case KindDocx:
		return "docx"
	case KindSpreadsheet:
		return "spreadsheet"
	case KindPresentation:
		return "presentation"
	case KindPaper:
		return "paper"
	default:
		return "unknown"
	}
}

// Kinds returns every eligible kind. Used to verify that extractor
// registries are total over the allow-list.
func Kinds() []FileKind {
	return []FileKind{
		KindText, KindHTML, KindMarkdown, KindRTF, KindPDF,
		KindDocx, KindSpreadsheet, KindPresentation, KindPaper,
	}
}

// AllowedExtensions returns the allow-list in stable order.
func AllowedExtensions() []string {
	return []string{"md", "htm", "html", "docx", "xls", "xlsx", "pptx", "pdf", "rtf", "txt", "paper"}
}

// Classify derives the file kind and stem from a path. The extension is the
// substring after the last dot of the final path segment, compared
// case-insensitively against the allow-list. ok is false for ineligible
// files, including files with no extension.
func Classify(p string) (kind FileKind, stem string, ok bool) {
	base := path.Base(p)
	ext := path.Ext(base)
	stem = strings.TrimSuffix(base, ext)
	if ext == "" {
		return KindUnknown, stem, false
	}

	kind, ok = kindByExtension[strings.ToLower(strings.TrimPrefix(ext, "."))]
	if !ok {
		return KindUnknown, stem, false
	}
	return kind, stem, true
}

// KindForExtension maps a bare extension (no dot) to its kind.
func KindForExtension(ext string) (FileKind, bool) {
	kind, ok := kindByExtension[strings.ToLower(ext)]
	return kind, ok
}
