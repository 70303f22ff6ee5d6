package driven

import (
	"context"

	"github.com/custodia-labs/dbxloader/internal/core/domain"
)

// EntryType classifies folder listing entries.
type EntryType int

const (
	// EntryFile is a regular file.
	EntryFile EntryType = iota

	// EntryFolder is a directory.
	EntryFolder
)

// Entry is one item of a folder listing page.
type Entry struct {
	// Type is the entry classification.
	Type EntryType

	// Name is the final path segment.
	Name string

	// PathLower is the canonical lower-cased path, used for API calls.
	PathLower string

	// PathDisplay is the cased path, used for user-facing output.
	PathDisplay string
}

// FolderPage is one page of a folder listing. When HasMore is true the
// Cursor fetches the next page via ListFolderContinue.
type FolderPage struct {
	Entries []Entry
	Cursor  string
	HasMore bool
}

// ExportFormatMarkdown is the export projection for Paper notes.
const ExportFormatMarkdown = "markdown"

// Storage is one authenticated session against the remote storage API.
// Implementations handle transport, token refresh, and rate limiting; the
// core treats every method as a blocking black box.
type Storage interface {
	// ListFolder starts a folder listing. Deleted entries are excluded.
	ListFolder(ctx context.Context, path string, recursive bool) (*FolderPage, error)

	// ListFolderContinue fetches the next page for an opaque cursor.
	ListFolderContinue(ctx context.Context, cursor string) (*FolderPage, error)

	// Download fetches a file's raw bytes through a transient temp-storage
	// slot. The slot is released before Download returns, including on
	// failure.
	Download(ctx context.Context, path string) ([]byte, error)

	// Export renders a cloud-native document (Paper) into the requested
	// format and returns the projected bytes.
	Export(ctx context.Context, path string, format string) ([]byte, error)

	// CurrentAccount returns the authenticated account and its namespaces.
	CurrentAccount(ctx context.Context) (*domain.AccountInfo, error)
}

// StorageProvider establishes authenticated sessions.
type StorageProvider interface {
	// Connect establishes a session on the caller's personal namespace.
	Connect(ctx context.Context, auth domain.Auth) (Storage, error)

	// ConnectNamespace establishes a session scoped to the given root
	// namespace, used for team/shared space access.
	ConnectNamespace(ctx context.Context, auth domain.Auth, namespaceID string) (Storage, error)
}
