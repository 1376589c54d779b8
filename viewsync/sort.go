package viewsync

import (
	"sort"

	"dishcovery/models"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type SortKey string

const (
	SortNewest SortKey = "newest"
	SortOldest SortKey = "oldest"
	SortAZ     SortKey = "az"
	SortZA     SortKey = "za"
)

// SortRefs orders a render-time copy of refs by key. The input is never
// mutated and ties keep their input order (stable), so re-sorting the same
// sequence is deterministic. Missing timestamps sort as epoch 0, missing
// titles as the empty string.
func SortRefs(refs []models.RecipeRef, key SortKey) []models.RecipeRef {
	out := make([]models.RecipeRef, len(refs))
	copy(out, refs)

	switch key {
	case SortOldest:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].AddedAt < out[j].AddedAt
		})
	case SortAZ, SortZA:
		// Collators keep internal buffers, so build one per call.
		c := collate.New(language.Und, collate.IgnoreCase)
		sort.SliceStable(out, func(i, j int) bool {
			cmp := c.CompareString(out[i].Title, out[j].Title)
			if key == SortZA {
				return cmp > 0
			}
			return cmp < 0
		})
	default: // SortNewest
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].AddedAt > out[j].AddedAt
		})
	}
	return out
}

// SortedFavorites flattens a favorites map into an ordered slice. The map has
// no meaningful iteration order, so entries are pre-ordered by id to make the
// result deterministic before the sort key is applied.
func SortedFavorites(favs models.FavoritesMap, key SortKey) []models.RecipeRef {
	refs := make([]models.RecipeRef, 0, len(favs))
	for _, ref := range favs {
		refs = append(refs, ref)
	}
	sort.Slice(refs, func(i, j int) bool { return refs[i].ID < refs[j].ID })
	return SortRefs(refs, key)
}
