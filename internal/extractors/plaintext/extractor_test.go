package plaintext

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract(t *testing.T) {
	extractor := New()
	ctx := context.Background()

	fragments, err := extractor.Extract(ctx, []byte("  hello world\n\n"))
	require.NoError(t, err)
	require.Len(t, fragments, 1)

	assert.Equal(t, "hello world", fragments[0].Text)
	assert.Nil(t, fragments[0].Page)
}

func TestExtract_Empty(t *testing.T) {
	extractor := New()

	fragments, err := extractor.Extract(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, fragments, 1)
	assert.Empty(t, fragments[0].Text)
}

func TestExtract_PreservesInteriorWhitespace(t *testing.T) {
	extractor := New()

	fragments, err := extractor.Extract(context.Background(), []byte("a\n\nb\tc"))
	require.NoError(t, err)
	assert.Equal(t, "a\n\nb\tc", fragments[0].Text)
}
