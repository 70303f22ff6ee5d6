package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/custodia-labs/dbxloader/internal/core/domain"
	"github.com/custodia-labs/dbxloader/internal/core/ports/driven"
	"github.com/custodia-labs/dbxloader/internal/core/ports/driving"
	"github.com/custodia-labs/dbxloader/internal/logger"
)

// Ensure LoaderService implements the interface.
var _ driving.Loader = (*LoaderService)(nil)

// LoaderService coordinates the load pipeline: session resolution, target
// expansion, per-file fetch and extraction.
type LoaderService struct {
	provider driven.StorageProvider
	registry driven.ExtractorRegistry
}

// NewLoaderService creates a new loader service.
func NewLoaderService(provider driven.StorageProvider, registry driven.ExtractorRegistry) *LoaderService {
	return &LoaderService{
		provider: provider,
		registry: registry,
	}
}

// target pairs the API path used for fetch calls with the display path used
// for classification, locators and messages. Folder enumeration yields both;
// user-supplied paths serve as both.
type target struct {
	apiPath     string
	displayPath string
}

// Load resolves the request into file paths, fetches and extracts each, and
// returns the complete outcome. Per-file and per-folder faults land on the
// result; a session fault aborts the batch with exactly one error record and
// no fetch calls. Only a structurally invalid request returns an error.
func (s *LoaderService) Load(ctx context.Context, req domain.LoadRequest) (*domain.LoadResult, error) {
	if err := validateRequest(&req); err != nil {
		return nil, err
	}

	out := newOutcome()
	out.result.RunID = uuid.NewString()
	out.debug("load %s: resolving session", out.result.RunID[:8])

	storage, err := s.connect(ctx, req.Auth, req.TeamFolder)
	if err != nil {
		out.warnSession("%v", err)
		return out.take(), nil
	}

	targets := s.resolveTargets(ctx, storage, &req, out)
	for _, t := range targets {
		kind, _, ok := domain.Classify(t.displayPath)
		if !ok {
			out.invalid(t.displayPath)
			continue
		}
		s.loadFile(ctx, storage, t, kind, out)
	}

	out.info("load complete: %d records, %d invalid files, %d errors",
		len(out.result.Records), len(out.result.InvalidFiles), len(out.result.Errors))
	return out.take(), nil
}

// ListFolders returns the top-level folders of the selected namespace.
func (s *LoaderService) ListFolders(ctx context.Context, auth domain.Auth, teamSpace bool) ([]domain.FolderSummary, error) {
	if !usableAuth(auth) {
		return nil, fmt.Errorf("%w: no access or refresh token", domain.ErrAuthRequired)
	}

	storage, err := s.connect(ctx, auth, teamSpace)
	if err != nil {
		return nil, err
	}

	var folders []domain.FolderSummary
	page, err := storage.ListFolder(ctx, "", false)
	for {
		if err != nil {
			return nil, fmt.Errorf("list folders: %w", err)
		}
		for _, entry := range page.Entries {
			if entry.Type == driven.EntryFolder {
				folders = append(folders, domain.FolderSummary{
					Name: entry.Name,
					Path: entry.PathDisplay,
				})
			}
		}
		if !page.HasMore {
			return folders, nil
		}
		page, err = storage.ListFolderContinue(ctx, page.Cursor)
	}
}

// Whoami returns the authenticated account and its namespaces.
func (s *LoaderService) Whoami(ctx context.Context, auth domain.Auth) (*domain.AccountInfo, error) {
	if !usableAuth(auth) {
		return nil, fmt.Errorf("%w: no access or refresh token", domain.ErrAuthRequired)
	}

	storage, err := s.provider.Connect(ctx, auth)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSessionFailed, err)
	}

	account, err := storage.CurrentAccount(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSessionFailed, err)
	}
	return account, nil
}

// connect establishes the session for the requested namespace. Team loads
// resolve the account's root namespace first and re-connect scoped to it.
func (s *LoaderService) connect(ctx context.Context, auth domain.Auth, teamSpace bool) (driven.Storage, error) {
	storage, err := s.provider.Connect(ctx, auth)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSessionFailed, err)
	}
	if !teamSpace {
		return storage, nil
	}

	account, err := storage.CurrentAccount(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: resolve team namespace: %v", domain.ErrSessionFailed, err)
	}
	if account.RootNamespaceID == "" {
		return nil, fmt.Errorf("%w: account has no team namespace", domain.ErrSessionFailed)
	}

	storage, err = s.provider.ConnectNamespace(ctx, auth, account.RootNamespaceID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSessionFailed, err)
	}
	return storage, nil
}

// resolveTargets expands the request's target into file paths under the
// folder > list > single precedence.
func (s *LoaderService) resolveTargets(ctx context.Context, storage driven.Storage, req *domain.LoadRequest, out *outcome) []target {
	switch req.Target() {
	case domain.TargetFolder:
		return s.enumerate(ctx, storage, *req.FolderPath, out)
	case domain.TargetList:
		targets := make([]target, len(req.FilePaths))
		for i, p := range req.FilePaths {
			targets[i] = target{apiPath: p, displayPath: p}
		}
		return targets
	default:
		return []target{{apiPath: req.FilePath, displayPath: req.FilePath}}
	}
}

// enumerate walks a folder recursively, following the listing cursor until
// the last page. A listing failure aborts the walk but keeps the files seen
// so far; the fault is recorded against the folder.
func (s *LoaderService) enumerate(ctx context.Context, storage driven.Storage, folder string, out *outcome) []target {
	out.info("enumerating folder %s", displayFolder(folder))

	var targets []target
	page, err := storage.ListFolder(ctx, folder, true)
	for {
		if err != nil {
			out.warnFolder(displayFolder(folder), "folder listing failed: %v", err)
			return targets
		}
		for _, entry := range page.Entries {
			if entry.Type == driven.EntryFile {
				targets = append(targets, target{
					apiPath:     entry.PathLower,
					displayPath: entry.PathDisplay,
				})
			}
		}
		if !page.HasMore {
			break
		}
		page, err = storage.ListFolderContinue(ctx, page.Cursor)
	}

	out.debug("folder %s yielded %d files", displayFolder(folder), len(targets))
	return targets
}

// loadFile fetches one file and dispatches it to its extraction routine.
// Every failure is recorded against the file and leaves the batch running.
func (s *LoaderService) loadFile(ctx context.Context, storage driven.Storage, t target, kind domain.FileKind, out *outcome) {
	out.debug("fetching %s", t.displayPath)

	var content []byte
	var err error
	if kind == domain.KindPaper {
		// Paper notes are cloud-native and have no raw bytes; export the
		// markdown projection instead.
		content, err = storage.Export(ctx, t.apiPath, driven.ExportFormatMarkdown)
	} else {
		content, err = storage.Download(ctx, t.apiPath)
	}
	if err != nil {
		out.warnFile(t.displayPath, "fetch %s: %v", t.displayPath, err)
		return
	}

	extractor, ok := s.registry.Get(kind)
	if !ok {
		out.warnFile(t.displayPath, "%s: %v", t.displayPath, domain.ErrUnsupportedKind)
		return
	}

	fragments, err := extractor.Extract(ctx, content)
	if err != nil {
		out.warnFile(t.displayPath, "extract %s: %v", t.displayPath, err)
		return
	}

	source := domain.Locate(t.displayPath)
	for _, fragment := range fragments {
		out.add(domain.Record{
			Content: domain.ScrubContent(fragment.Text),
			Source:  source,
			Kind:    domain.KindFile,
			Page:    fragment.Page,
		})
	}
	logger.Debug("loaded %s: %d fragments", t.displayPath, len(fragments))
}

// validateRequest rejects requests no session could make sense of.
func validateRequest(req *domain.LoadRequest) error {
	if !usableAuth(req.Auth) {
		return fmt.Errorf("%w: no access or refresh token", domain.ErrAuthRequired)
	}
	if req.Target() == domain.TargetSingle && req.FilePath == "" {
		return fmt.Errorf("%w: no file or folder target", domain.ErrInvalidInput)
	}
	return nil
}

func usableAuth(auth domain.Auth) bool {
	return auth.AccessToken != "" || auth.CanRefresh()
}

// displayFolder renders the account root as "/" in messages.
func displayFolder(folder string) string {
	if folder == "" {
		return "/"
	}
	return folder
}
