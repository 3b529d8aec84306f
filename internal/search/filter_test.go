package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nethippo/developer-website/internal/content"
)

func testTree() []content.PageNode {
	return []content.PageNode{
		{DisplayName: "Get Started", URL: "/get-started"},
		{DisplayName: "Guides", URL: "/guides", Children: []content.PageNode{
			{DisplayName: "Deploy", Children: []content.PageNode{
				{DisplayName: "Docker", URL: "/guides/deploy/docker"},
			}},
			{DisplayName: "Build apps", URL: "/guides/build-apps"},
		}},
	}
}

func TestExpand_IncludesAncestors(t *testing.T) {
	f := Expand(testTree(), "docker", []string{"Docker"})

	assert.True(t, f.Active())
	assert.Equal(t, "docker", f.Term)

	// The match and every ancestor survive
	for _, name := range []string{"Docker", "Deploy", "Guides"} {
		assert.True(t, f.Matches(name), name)
	}
	// Unrelated branches do not
	assert.False(t, f.Matches("Get Started"))
	assert.False(t, f.Matches("Build apps"))
}

func TestExpand_EmptyTermIsInactive(t *testing.T) {
	f := Expand(testTree(), "", nil)

	assert.False(t, f.Active())
	// Inactive filter lets everything through
	assert.True(t, f.Matches("Docker"))
	assert.True(t, f.Matches("anything"))
}

func TestExpand_NoMatchesStillActive(t *testing.T) {
	f := Expand(testTree(), "zzz", nil)

	// Active with an empty set: everything is filtered out
	assert.True(t, f.Active())
	assert.False(t, f.Matches("Guides"))
}

func TestExpand_MultipleMatches(t *testing.T) {
	f := Expand(testTree(), "g", []string{"Get Started", "Docker"})

	for _, name := range []string{"Get Started", "Docker", "Deploy", "Guides"} {
		assert.True(t, f.Matches(name), name)
	}
	assert.False(t, f.Matches("Build apps"))
}
