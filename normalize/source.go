package normalize

import "dishcovery/models"

// Source is the tagged union of every shape a recipe can be captured from.
// Raw provider shapes never travel past FromSource.
type Source struct {
	Kind   string                  `json:"source"` // "search", "detail" or "stored"
	Search *models.RawSearchResult `json:"search,omitempty"`
	Detail *models.RawDetailResult `json:"detail,omitempty"`
	Ref    *models.RecipeRef       `json:"ref,omitempty"`
}

// FromSource normalizes whichever variant is populated. The bool reports
// whether a usable payload was present at all.
func FromSource(src Source) (models.RecipeRef, bool) {
	switch {
	case src.Kind == "search" && src.Search != nil:
		return FromSearchResult(*src.Search), true
	case src.Kind == "detail" && src.Detail != nil:
		return FromDetail(*src.Detail), true
	case src.Ref != nil:
		return FromStored(*src.Ref), true
	}
	return models.RecipeRef{}, false
}
