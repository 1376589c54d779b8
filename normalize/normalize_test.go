package normalize

import (
	"testing"

	"dishcovery/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTagsCapAndOrder(t *testing.T) {
	// A recipe matching all four conditions must yield exactly the first
	// three tags in fixed order, never four.
	tags := BuildTags([]string{"vegan", "lacto-vegetarian"}, true, 90, 20)
	require.Len(t, tags, 3)
	assert.Equal(t, []string{"Vegan", "Vegetarian", "Healthy"}, tags)
}

func TestBuildTagsIndividualConditions(t *testing.T) {
	assert.Equal(t, []string{"Vegan"}, BuildTags([]string{"vegan"}, false, 0, 0))
	assert.Equal(t, []string{"Vegetarian"}, BuildTags([]string{"ovo-vegetarian"}, false, 0, 0))
	assert.Equal(t, []string{"Healthy"}, BuildTags(nil, true, 0, 0))
	assert.Equal(t, []string{"Healthy"}, BuildTags(nil, false, 60, 0))
	assert.Equal(t, []string{"Quick"}, BuildTags(nil, false, 0, 30))
	assert.Empty(t, BuildTags(nil, false, 59, 31))
	// zero ready time means unknown, not quick
	assert.Empty(t, BuildTags(nil, false, 0, 0))
}

func TestFromSearchResultEmptyFallbacks(t *testing.T) {
	ref := FromSearchResult(models.RawSearchResult{})
	assert.Equal(t, "0", ref.ID)
	assert.Equal(t, FallbackTitle, ref.Title)
	assert.Equal(t, FallbackImage, ref.Image)
	require.NotNil(t, ref.Tags)
	assert.Empty(t, ref.Tags)
	assert.NotZero(t, ref.AddedAt)
}

func TestFromDetail(t *testing.T) {
	ref := FromDetail(models.RawDetailResult{
		ID:             42,
		Title:          "Tomato Soup",
		Image:          "https://img.example/42.jpg",
		Diets:          []string{"vegan"},
		ReadyInMinutes: 25,
	})
	assert.Equal(t, "42", ref.ID)
	assert.Equal(t, "Tomato Soup", ref.Title)
	assert.Equal(t, []string{"Vegan", "Quick"}, ref.Tags)
}

func TestFromStoredKeepsTagsAndAddedAt(t *testing.T) {
	in := models.RecipeRef{
		ID:      "7",
		Tags:    []string{"Vegan", "Vegetarian", "Healthy", "Quick"},
		AddedAt: 1234,
	}
	out := FromStored(in)
	assert.Equal(t, FallbackTitle, out.Title)
	assert.Equal(t, FallbackImage, out.Image)
	// tags are not recomputed, only capped
	assert.Equal(t, []string{"Vegan", "Vegetarian", "Healthy"}, out.Tags)
	assert.EqualValues(t, 1234, out.AddedAt)
}
