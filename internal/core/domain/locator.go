package domain

import (
	"net/url"
	"strings"
)

// homeURL is the base for web-viewable file references.
const homeURL = "https://www.dropbox.com/home"

// Locate builds a stable, human-readable web locator for a file path.
// The locator is deterministic and does not depend on the file being
// downloadable: it is computed from the path segments alone, so failed
// downloads still produce meaningful error context.
func Locate(p string) string {
	trimmed := strings.Trim(p, "/")
	if trimmed == "" {
		return homeURL
	}

	segments := strings.Split(trimmed, "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	return homeURL + "/" + strings.Join(segments, "/")
}
