package html

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract_StripsTags(t *testing.T) {
	extractor := New()

	page := `<html><head><title>Ignored</title></head><body>
		<h1>Heading</h1>
		<p>First paragraph.</p>
		<p>Second <b>bold</b> paragraph.</p>
	</body></html>`

	fragments, err := extractor.Extract(context.Background(), []byte(page))
	require.NoError(t, err)
	require.Len(t, fragments, 1)

	text := fragments[0].Text
	assert.Contains(t, text, "Heading")
	assert.Contains(t, text, "First paragraph.")
	assert.Contains(t, text, "Second bold paragraph.")
	assert.NotContains(t, text, "<")
	assert.NotContains(t, text, "Ignored")
	assert.Nil(t, fragments[0].Page)
}

func TestExtract_RemovesScriptAndStyle(t *testing.T) {
	extractor := New()

	page := `<body><script>var x = 1;</script><style>p { color: red }</style>visible</body>`

	fragments, err := extractor.Extract(context.Background(), []byte(page))
	require.NoError(t, err)

	assert.Equal(t, "visible", fragments[0].Text)
}

func TestExtract_DecodesEntities(t *testing.T) {
	extractor := New()

	fragments, err := extractor.Extract(context.Background(), []byte("<p>fish &amp; chips</p>"))
	require.NoError(t, err)

	assert.Equal(t, "fish & chips", fragments[0].Text)
}

func TestExtract_CollapsesWhitespace(t *testing.T) {
	extractor := New()

	fragments, err := extractor.Extract(context.Background(), []byte("<p>a    b</p>\n\n\n\n<p>c</p>"))
	require.NoError(t, err)

	assert.Equal(t, "a b\nc", fragments[0].Text)
}

func TestExtract_PlainTextPassthrough(t *testing.T) {
	extractor := New()

	fragments, err := extractor.Extract(context.Background(), []byte("no markup here"))
	require.NoError(t, err)
	assert.Equal(t, "no markup here", fragments[0].Text)
}
