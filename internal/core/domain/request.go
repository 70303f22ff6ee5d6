package domain

import "encoding/json"

// Auth carries the OAuth material for one Dropbox account.
// An access token alone is sufficient; a refresh token plus app key/secret
// lets the adapter mint fresh access tokens when the stored one has expired.
type Auth struct {
	// AccessToken is the OAuth2 access token.
	AccessToken string

	// RefreshToken is the OAuth2 refresh token, optional.
	RefreshToken string

	// AppKey is the Dropbox app key, required to use RefreshToken.
	AppKey string

	// AppSecret is the Dropbox app secret, required to use RefreshToken.
	AppSecret string
}

// CanRefresh reports whether the payload carries everything needed to mint
// access tokens from the refresh token.
func (a Auth) CanRefresh() bool {
	return a.RefreshToken != "" && a.AppKey != "" && a.AppSecret != ""
}

// authJSON accepts both the current and the legacy field names. Older token
// payloads used "access"/"refresh"; current ones use
// "access_token"/"refresh_token".
type authJSON struct {
	AccessToken  string `json:"access_token"`
	Access       string `json:"access"`
	RefreshToken string `json:"refresh_token"`
	Refresh      string `json:"refresh"`
	AppKey       string `json:"app_key"`
	AppSecret    string `json:"app_secret"`
}

// UnmarshalJSON decodes an auth payload, accepting legacy field names.
func (a *Auth) UnmarshalJSON(data []byte) error {
	var raw authJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	a.AccessToken = raw.AccessToken
	if a.AccessToken == "" {
		a.AccessToken = raw.Access
	}
	a.RefreshToken = raw.RefreshToken
	if a.RefreshToken == "" {
		a.RefreshToken = raw.Refresh
	}
	a.AppKey = raw.AppKey
	a.AppSecret = raw.AppSecret
	return nil
}

// TargetMode identifies which of the three target fields governs a load.
type TargetMode int

const (
	// TargetSingle loads one file path.
	TargetSingle TargetMode = iota

	// TargetList loads an explicit list of file paths.
	TargetList

	// TargetFolder enumerates a folder recursively.
	TargetFolder
)

// LoadRequest describes one batch of work. Exactly one target mode is
// active; when more than one target field is populated the precedence is
// folder > list > single file. The precedence is deliberate and matches the
// behaviour callers have relied on since the first release.
type LoadRequest struct {
	// Auth is the account credential payload.
	Auth Auth

	// FolderPath selects folder mode when non-nil. The empty string is the
	// account root, which is why this is a pointer and not a string.
	FolderPath *string

	// FilePaths selects list mode when non-empty.
	FilePaths []string

	// FilePath is the single-file target, the default mode.
	FilePath string

	// TeamFolder selects the team/shared namespace session instead of the
	// personal one.
	TeamFolder bool
}

// Target resolves the active target mode under the folder > list > single
// precedence.
func (r *LoadRequest) Target() TargetMode {
	if r.FolderPath != nil {
		return TargetFolder
	}
	if len(r.FilePaths) > 0 {
		return TargetList
	}
	return TargetSingle
}
