package catalog

import (
	"testing"

	"github.com/kernelsu-modules/catalog-builder/internal/platform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveAuthorsCollaboratorsOnly(t *testing.T) {
	collaborators := []platform.Collaborator{
		{Login: "a", DisplayName: "Alice"},
		{Login: "b"},
	}
	authors := ResolveAuthors("https://github.com", collaborators, "")
	require.Len(t, authors, 2)
	assert.Equal(t, "Alice", authors[0].Name)
	assert.Equal(t, "b", authors[1].Name)
	assert.Equal(t, "https://github.com/b", authors[1].Link)
}

func TestResolveAuthorsAdditionalAuthorsAdd(t *testing.T) {
	manifest := `{"additionalAuthors":[{"type":"add","name":"Carol","link":"https://example.com/carol"}]}`
	authors := ResolveAuthors("https://github.com", nil, manifest)
	require.Len(t, authors, 1)
	assert.Equal(t, "Carol", authors[0].Name)
	assert.Equal(t, "https://example.com/carol", authors[0].Link)
}

func TestResolveAuthorsAdditionalAuthorsRemoveByDisplayNameOrLogin(t *testing.T) {
	collaborators := []platform.Collaborator{
		{Login: "a", DisplayName: "Alice"},
		{Login: "b"},
	}
	manifest := `{"additionalAuthors":[{"type":"remove","name":"Alice"},{"type":"remove","name":"b"}]}`
	authors := ResolveAuthors("https://github.com", collaborators, manifest)
	assert.Empty(t, authors)
}

func TestResolveAuthorsDuplicateNameFirstWins(t *testing.T) {
	collaborators := []platform.Collaborator{{Login: "a", DisplayName: "Alice"}}
	manifest := `{"additionalAuthors":[{"type":"add","name":"Alice","link":"https://other"}]}`
	authors := ResolveAuthors("https://github.com", collaborators, manifest)
	require.Len(t, authors, 1)
	assert.Equal(t, "https://github.com/a", authors[0].Link)
}

func TestResolveAuthorsUnknownTypeIgnored(t *testing.T) {
	manifest := `{"additionalAuthors":[{"type":"weird","name":"Dave"}]}`
	authors := ResolveAuthors("https://github.com", nil, manifest)
	assert.Empty(t, authors)
}

func TestResolveAuthorsMalformedManifestDoesNotFail(t *testing.T) {
	collaborators := []platform.Collaborator{{Login: "a", DisplayName: "Alice"}}
	authors := ResolveAuthors("https://github.com", collaborators, "{not json")
	require.Len(t, authors, 1)
	assert.Equal(t, "Alice", authors[0].Name)
}

func TestExtractSummaryEllipsizes(t *testing.T) {
	long := ""
	for i := 0; i < 600; i++ {
		long += "x"
	}
	manifest := `{"summary":"` + long + `"}`
	summary := ExtractSummary(manifest)
	assert.Len(t, summary, 512)
}

func TestExtractSourceURLStripsNewlines(t *testing.T) {
	manifest := "{\"sourceUrl\":\"https://example.com/a\\r\\nb\"}"
	assert.Equal(t, "https://example.com/ab", ExtractSourceURL(manifest))
}

func TestExtractMetamoduleRequiresBooleanTrue(t *testing.T) {
	assert.True(t, ExtractMetamodule(`{"metamodule":true}`))
	assert.False(t, ExtractMetamodule(`{"metamodule":"true"}`))
	assert.False(t, ExtractMetamodule(``))
}
