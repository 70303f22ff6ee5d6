package driving

import (
	"context"

	"github.com/custodia-labs/dbxloader/internal/core/domain"
)

// Loader loads remote files into normalized text records.
type Loader interface {
	// Load resolves the request's target into file paths, downloads and
	// extracts each, and returns the complete outcome. The result is
	// partial by design: per-file and per-folder faults are recorded on
	// the result, not returned as errors. Only a structurally invalid
	// request yields a non-nil error.
	Load(ctx context.Context, req domain.LoadRequest) (*domain.LoadResult, error)

	// ListFolders returns the top-level folders of the selected namespace,
	// non-recursively. Used by UI pickers; not part of the extraction path.
	ListFolders(ctx context.Context, auth domain.Auth, teamSpace bool) ([]domain.FolderSummary, error)

	// Whoami returns the authenticated account and namespace information.
	Whoami(ctx context.Context, auth domain.Auth) (*domain.AccountInfo, error)
}
