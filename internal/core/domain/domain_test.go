package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocate(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{
			name:     "nested file",
			path:     "/Documents/Work/document.pdf",
			expected: "https://www.dropbox.com/home/Documents/Work/document.pdf",
		},
		{
			name:     "root level file",
			path:     "/file.txt",
			expected: "https://www.dropbox.com/home/file.txt",
		},
		{
			name:     "segment with spaces",
			path:     "/Canvas Test Files/Sheets Test - Old.xls",
			expected: "https://www.dropbox.com/home/Canvas%20Test%20Files/Sheets%20Test%20-%20Old.xls",
		},
		{
			name:     "root",
			path:     "",
			expected: "https://www.dropbox.com/home",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Locate(tt.path))
		})
	}
}

func TestLocate_Deterministic(t *testing.T) {
	// Locators must not depend on anything but the path.
	assert.Equal(t, Locate("/a/b.txt"), Locate("/a/b.txt"))
}

func TestScrubContent(t *testing.T) {
	assert.Equal(t, "hello world", ScrubContent("hello\x00world"))
	assert.Equal(t, "  ", ScrubContent("\x00\x00"))
	assert.Equal(t, "clean", ScrubContent("clean"))
	assert.NotContains(t, ScrubContent("a\x00b\x00c"), "\x00")
}

func TestLoadRequest_TargetPrecedence(t *testing.T) {
	folder := ""

	tests := []struct {
		name     string
		req      LoadRequest
		expected TargetMode
	}{
		{"single by default", LoadRequest{FilePath: "/a.txt"}, TargetSingle},
		{"empty request is single", LoadRequest{}, TargetSingle},
		{"list over single", LoadRequest{FilePath: "/a.txt", FilePaths: []string{"/b.txt"}}, TargetList},
		{"folder over list", LoadRequest{FolderPath: &folder, FilePaths: []string{"/b.txt"}}, TargetFolder},
		{"folder over single", LoadRequest{FolderPath: &folder, FilePath: "/a.txt"}, TargetFolder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.req.Target())
		})
	}
}

func TestAuth_UnmarshalJSON_CurrentFields(t *testing.T) {
	var auth Auth
	err := json.Unmarshal([]byte(`{
		"access_token": "tok",
		"refresh_token": "ref",
		"app_key": "key",
		"app_secret": "secret"
	}`), &auth)
	require.NoError(t, err)

	assert.Equal(t, "tok", auth.AccessToken)
	assert.Equal(t, "ref", auth.RefreshToken)
	assert.True(t, auth.CanRefresh())
}

func TestAuth_UnmarshalJSON_LegacyFields(t *testing.T) {
	// Older token payloads used "access"/"refresh".
	var auth Auth
	err := json.Unmarshal([]byte(`{"access": "tok", "refresh": "ref"}`), &auth)
	require.NoError(t, err)

	assert.Equal(t, "tok", auth.AccessToken)
	assert.Equal(t, "ref", auth.RefreshToken)
	assert.False(t, auth.CanRefresh())
}

func TestLoadResult_Details(t *testing.T) {
	result := &LoadResult{
		Progress: []LogEntry{
			{Message: "trace", Severity: SeverityDebug},
			{Message: "progress", Severity: SeverityInfo},
			{Message: "fault", Severity: SeverityWarning},
		},
	}

	warnings := result.Details(SeverityWarning)
	require.Len(t, warnings, 1)
	assert.Equal(t, "fault", warnings[0].Message)

	info := result.Details(SeverityInfo)
	assert.Len(t, info, 2)

	all := result.Details(SeverityDebug)
	assert.Len(t, all, 3)
}

func TestSeverity_String(t *testing.T) {
	assert.Equal(t, "DEBUG", SeverityDebug.String())
	assert.Equal(t, "INFO", SeverityInfo.String())
	assert.Equal(t, "WARNING", SeverityWarning.String())
}
