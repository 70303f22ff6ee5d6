package dropbox

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dropbox/dropbox-sdk-go-unofficial/v6/dropbox"
	sdkauth "github.com/dropbox/dropbox-sdk-go-unofficial/v6/dropbox/auth"
	"github.com/dropbox/dropbox-sdk-go-unofficial/v6/dropbox/common"
	"github.com/dropbox/dropbox-sdk-go-unofficial/v6/dropbox/files"
	"github.com/dropbox/dropbox-sdk-go-unofficial/v6/dropbox/users"

	"github.com/custodia-labs/dbxloader/internal/core/domain"
	"github.com/custodia-labs/dbxloader/internal/core/ports/driven"
	"github.com/custodia-labs/dbxloader/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.Storage = (*Client)(nil)

// MaxContentSize bounds a single download or export. Oversize files become
// file-scoped faults instead of exhausting memory.
const MaxContentSize = 5 * 1024 * 1024

// Client is one authenticated Dropbox session.
type Client struct {
	files files.Client
	users users.Client

	// RPC and content routes have separate quotas.
	api     *RateLimiter
	content *RateLimiter
}

func newClient(config dropbox.Config) *Client {
	return &Client{
		files:   files.New(config),
		users:   users.New(config),
		api:     NewRateLimiter(RouteAPI),
		content: NewRateLimiter(RouteContent),
	}
}

// ListFolder starts a folder listing. Deleted entries are dropped.
func (c *Client) ListFolder(ctx context.Context, path string, recursive bool) (*driven.FolderPage, error) {
	if err := c.api.Wait(ctx); err != nil {
		return nil, err
	}

	arg := files.NewListFolderArg(path)
	arg.Recursive = recursive

	res, err := c.files.ListFolder(arg)
	if err != nil {
		c.recordThrottle(c.api, err)
		return nil, fmt.Errorf("list folder %q: %w", path, err)
	}
	return folderPage(res), nil
}

// ListFolderContinue fetches the next listing page.
func (c *Client) ListFolderContinue(ctx context.Context, cursor string) (*driven.FolderPage, error) {
	if err := c.api.Wait(ctx); err != nil {
		return nil, err
	}

	res, err := c.files.ListFolderContinue(files.NewListFolderContinueArg(cursor))
	if err != nil {
		c.recordThrottle(c.api, err)
		return nil, fmt.Errorf("continue folder listing: %w", err)
	}
	return folderPage(res), nil
}

// Download fetches a file's bytes through a transient temp-storage slot.
func (c *Client) Download(ctx context.Context, path string) ([]byte, error) {
	if err := c.content.Wait(ctx); err != nil {
		return nil, err
	}

	_, rc, err := c.files.Download(files.NewDownloadArg(path))
	if err != nil {
		c.recordThrottle(c.content, err)
		return nil, fmt.Errorf("download %q: %w", path, err)
	}
	defer rc.Close()

	content, err := spoolToTemp(rc)
	if err != nil {
		return nil, fmt.Errorf("download %q: %w", path, err)
	}
	return content, nil
}

// Export renders a cloud-native document into the requested format. Paper
// notes have no raw bytes, so this is the only way to read them.
func (c *Client) Export(ctx context.Context, path string, format string) ([]byte, error) {
	if err := c.content.Wait(ctx); err != nil {
		return nil, err
	}

	arg := files.NewExportArg(path)
	arg.ExportFormat = format

	_, rc, err := c.files.Export(arg)
	if err != nil {
		c.recordThrottle(c.content, err)
		return nil, fmt.Errorf("export %q as %s: %w", path, format, err)
	}
	defer rc.Close()

	content, err := spoolToTemp(rc)
	if err != nil {
		return nil, fmt.Errorf("export %q: %w", path, err)
	}
	return content, nil
}

// CurrentAccount returns the authenticated account and its namespaces.
func (c *Client) CurrentAccount(ctx context.Context) (*domain.AccountInfo, error) {
	if err := c.api.Wait(ctx); err != nil {
		return nil, err
	}

	account, err := c.users.GetCurrentAccount()
	if err != nil {
		c.recordThrottle(c.api, err)
		return nil, fmt.Errorf("get current account: %w", err)
	}

	info := &domain.AccountInfo{
		AccountID: account.AccountId,
		Email:     account.Email,
	}
	if account.Name != nil {
		info.DisplayName = account.Name.DisplayName
	}
	switch root := account.RootInfo.(type) {
	case *common.TeamRootInfo:
		info.RootNamespaceID = root.RootNamespaceId
		info.HomeNamespaceID = root.HomeNamespaceId
	case *common.UserRootInfo:
		// Individual accounts: root and home are the same namespace.
		info.RootNamespaceID = root.RootNamespaceId
		info.HomeNamespaceID = root.HomeNamespaceId
	}
	return info, nil
}

// recordThrottle feeds 429 backoff hints into the limiter.
func (c *Client) recordThrottle(limiter *RateLimiter, err error) {
	var rateErr sdkauth.RateLimitAPIError
	if !errors.As(err, &rateErr) {
		return
	}

	retryAfter := 0
	if rateErr.RateLimitError != nil {
		retryAfter = int(rateErr.RateLimitError.RetryAfter)
	}
	logger.Warn("dropbox rate limited, backing off %ds", retryAfter)
	limiter.RecordRateLimitError(retryAfter)
}

// folderPage converts an SDK listing result. Deleted entries are dropped;
// the loader only cares about live files and folders.
func folderPage(res *files.ListFolderResult) *driven.FolderPage {
	page := &driven.FolderPage{
		Cursor:  res.Cursor,
		HasMore: res.HasMore,
	}
	for _, raw := range res.Entries {
		switch md := raw.(type) {
		case *files.FileMetadata:
			page.Entries = append(page.Entries, driven.Entry{
				Type:        driven.EntryFile,
				Name:        md.Name,
				PathLower:   md.PathLower,
				PathDisplay: md.PathDisplay,
			})
		case *files.FolderMetadata:
			page.Entries = append(page.Entries, driven.Entry{
				Type:        driven.EntryFolder,
				Name:        md.Name,
				PathLower:   md.PathLower,
				PathDisplay: md.PathDisplay,
			})
		}
	}
	return page
}

// spoolToTemp drains a content stream through a transient on-disk slot and
// returns the bytes. The slot is always released, including on failure; the
// read is bounded by MaxContentSize.
func spoolToTemp(r io.Reader) ([]byte, error) {
	dir, err := os.MkdirTemp("", "dbxloader-*")
	if err != nil {
		return nil, fmt.Errorf("create temp slot: %w", err)
	}
	defer os.RemoveAll(dir)

	slot := filepath.Join(dir, "content")
	f, err := os.Create(slot)
	if err != nil {
		return nil, fmt.Errorf("create temp slot: %w", err)
	}

	written, err := io.Copy(f, io.LimitReader(r, MaxContentSize+1))
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return nil, fmt.Errorf("spool content: %w", err)
	}
	if written > MaxContentSize {
		return nil, domain.ErrContentTooLarge
	}

	return os.ReadFile(slot)
}
