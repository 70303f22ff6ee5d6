package dropbox

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dropbox/dropbox-sdk-go-unofficial/v6/dropbox"
	"golang.org/x/oauth2"

	"github.com/custodia-labs/dbxloader/internal/core/domain"
	"github.com/custodia-labs/dbxloader/internal/core/ports/driven"
	"github.com/custodia-labs/dbxloader/internal/logger"
)

// Ensure Provider implements the interface.
var _ driven.StorageProvider = (*Provider)(nil)

// tokenURL is the Dropbox OAuth2 token endpoint, used to mint access tokens
// from a refresh token.
const tokenURL = "https://api.dropboxapi.com/oauth2/token"

// Provider mints authenticated Dropbox sessions.
type Provider struct{}

// NewProvider creates a new Dropbox session provider.
func NewProvider() *Provider {
	return &Provider{}
}

// Connect establishes a session on the caller's personal namespace.
func (p *Provider) Connect(ctx context.Context, auth domain.Auth) (driven.Storage, error) {
	return p.connect(ctx, auth, "")
}

// ConnectNamespace establishes a session scoped to the given root namespace.
// Every call on the session carries a path-root header, so team-space paths
// resolve against the shared root instead of the member's home folder.
func (p *Provider) ConnectNamespace(ctx context.Context, auth domain.Auth, namespaceID string) (driven.Storage, error) {
	return p.connect(ctx, auth, namespaceID)
}

func (p *Provider) connect(ctx context.Context, auth domain.Auth, namespaceID string) (driven.Storage, error) {
	token, err := p.token(ctx, auth)
	if err != nil {
		return nil, fmt.Errorf("resolve access token: %w", err)
	}
	return newClient(sdkConfig(token, namespaceID)), nil
}

// token resolves the access token for a session. Refresh material wins over
// a stored access token: stored tokens are short-lived and a refresh always
// yields a fresh one.
func (p *Provider) token(ctx context.Context, auth domain.Auth) (string, error) {
	if auth.CanRefresh() {
		logger.Debug("minting access token from refresh token")
		conf := &oauth2.Config{
			ClientID:     auth.AppKey,
			ClientSecret: auth.AppSecret,
			Endpoint:     oauth2.Endpoint{TokenURL: tokenURL},
		}
		tok, err := conf.TokenSource(ctx, &oauth2.Token{RefreshToken: auth.RefreshToken}).Token()
		if err != nil {
			return "", fmt.Errorf("refresh token exchange: %w", err)
		}
		return tok.AccessToken, nil
	}

	if auth.AccessToken == "" {
		return "", domain.ErrAuthRequired
	}
	return auth.AccessToken, nil
}

// sdkConfig builds the SDK configuration. A non-empty namespace installs a
// path-root header generator on every route.
func sdkConfig(token, namespaceID string) dropbox.Config {
	config := dropbox.Config{
		Token:    token,
		LogLevel: dropbox.LogOff,
	}
	if namespaceID != "" {
		header := pathRootHeader(namespaceID)
		config.HeaderGenerator = func(_ string, _ string, _ string) map[string]string {
			return map[string]string{"Dropbox-API-Path-Root": header}
		}
	}
	return config
}

// pathRootHeader encodes the Dropbox-API-Path-Root header value for a root
// namespace.
func pathRootHeader(namespaceID string) string {
	root := struct {
		Tag  string `json:".tag"`
		Root string `json:"root"`
	}{
		Tag:  "root",
		Root: namespaceID,
	}
	encoded, _ := json.Marshal(root)
	return string(encoded)
}
