package dropbox

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dropbox/dropbox-sdk-go-unofficial/v6/dropbox/files"

	"github.com/custodia-labs/dbxloader/internal/core/domain"
	"github.com/custodia-labs/dbxloader/internal/core/ports/driven"
)

func TestSpoolToTemp(t *testing.T) {
	t.Run("round trips content", func(t *testing.T) {
		content, err := spoolToTemp(strings.NewReader("hello from dropbox"))
		require.NoError(t, err)
		assert.Equal(t, []byte("hello from dropbox"), content)
	})

	t.Run("empty stream", func(t *testing.T) {
		content, err := spoolToTemp(strings.NewReader(""))
		require.NoError(t, err)
		assert.Empty(t, content)
	})

	t.Run("oversize stream rejected", func(t *testing.T) {
		oversize := strings.NewReader(strings.Repeat("x", MaxContentSize+1))
		_, err := spoolToTemp(oversize)
		assert.ErrorIs(t, err, domain.ErrContentTooLarge)
	})

	t.Run("exactly at the cap passes", func(t *testing.T) {
		content, err := spoolToTemp(strings.NewReader(strings.Repeat("x", MaxContentSize)))
		require.NoError(t, err)
		assert.Len(t, content, MaxContentSize)
	})
}

func TestFolderPage(t *testing.T) {
	res := &files.ListFolderResult{
		Entries: []files.IsMetadata{
			&files.FileMetadata{
				Metadata: files.Metadata{Name: "a.txt", PathLower: "/a.txt", PathDisplay: "/A.txt"},
			},
			&files.FolderMetadata{
				Metadata: files.Metadata{Name: "Sub", PathLower: "/sub", PathDisplay: "/Sub"},
			},
			&files.DeletedMetadata{
				Metadata: files.Metadata{Name: "gone.txt", PathLower: "/gone.txt", PathDisplay: "/gone.txt"},
			},
		},
		Cursor:  "cursor-1",
		HasMore: true,
	}

	page := folderPage(res)

	assert.Equal(t, "cursor-1", page.Cursor)
	assert.True(t, page.HasMore)

	// Deleted entries are dropped.
	require.Len(t, page.Entries, 2)
	assert.Equal(t, driven.Entry{
		Type:        driven.EntryFile,
		Name:        "a.txt",
		PathLower:   "/a.txt",
		PathDisplay: "/A.txt",
	}, page.Entries[0])
	assert.Equal(t, driven.EntryFolder, page.Entries[1].Type)
}
