// Package domain defines the core business entities for the Dropbox loader.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Record: A normalized text-bearing unit produced by extraction
//   - FileKind: The closed set of loadable file formats
//   - LoadRequest: One batch of work (folder, file list, or single file)
//   - LoadResult: Records plus invalid files, errors, and the progress trail
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
