package models

// Raw recipe shapes as the data provider returns them. These never travel past
// the normalizer; everything downstream works on RecipeRef.

// RawSearchResult is one entry of a complex-search response (addRecipeInformation=true).
type RawSearchResult struct {
	ID             int64    `json:"id"`
	Title          string   `json:"title"`
	Image          string   `json:"image"`
	Diets          []string `json:"diets"`
	VeryHealthy    bool     `json:"veryHealthy"`
	HealthScore    float64  `json:"healthScore"`
	ReadyInMinutes int      `json:"readyInMinutes"`
}

// RawDetailResult is a single-recipe information document.
type RawDetailResult struct {
	ID             int64           `json:"id"`
	Title          string          `json:"title"`
	Image          string          `json:"image"`
	Diets          []string        `json:"diets"`
	VeryHealthy    bool            `json:"veryHealthy"`
	HealthScore    float64         `json:"healthScore"`
	ReadyInMinutes int             `json:"readyInMinutes"`
	Servings       int             `json:"servings"`
	SourceURL      string          `json:"sourceUrl"`
	Summary        string          `json:"summary"`
	Instructions   string          `json:"instructions"`
	Ingredients    []RawIngredient `json:"extendedIngredients"`
}

type RawIngredient struct {
	Name     string  `json:"name"`
	Amount   float64 `json:"amount"`
	Unit     string  `json:"unit"`
	Original string  `json:"original"`
}

// SearchResponse is the envelope of a complex-search call.
type SearchResponse struct {
	Results      []RawSearchResult `json:"results"`
	Offset       int               `json:"offset"`
	Number       int               `json:"number"`
	TotalResults int               `json:"totalResults"`
}
