package extractors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/dbxloader/internal/core/domain"
)

func TestDefaults_TotalOverAllowList(t *testing.T) {
	registry := Defaults()

	for _, kind := range domain.Kinds() {
		e, ok := registry.Get(kind)
		require.True(t, ok, "kind %s has no extractor", kind)
		assert.NotNil(t, e)
	}
}

func TestDefaults_PaperSharesMarkdownRoutine(t *testing.T) {
	registry := Defaults()

	md, ok := registry.Get(domain.KindMarkdown)
	require.True(t, ok)
	paper, ok := registry.Get(domain.KindPaper)
	require.True(t, ok)

	// Paper notes are exported as markdown before extraction.
	assert.Same(t, md, paper)
}

func TestRegistry_UnknownKind(t *testing.T) {
	registry := Defaults()

	_, ok := registry.Get(domain.KindUnknown)
	assert.False(t, ok)
}
