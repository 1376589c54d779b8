package models

// RecipeRef is the minimal normalized recipe snapshot stored everywhere a
// recipe is referenced (favorites blob, recipes table, collection listings).
// It is immutable after capture; re-adding a recipe builds a fresh ref.
type RecipeRef struct {
	ID      string   `json:"id" bson:"_id"`
	Title   string   `json:"title" bson:"title"`
	Image   string   `json:"image" bson:"image"`
	Tags    []string `json:"tags" bson:"tags"`
	AddedAt int64    `json:"addedAt" bson:"added_at"` // epoch millis, sort key only
}

// FavoritesMap is one user's favorites, keyed by recipe id. Persisted as a
// single JSON blob; insertion order is irrelevant, sorting happens at read.
type FavoritesMap map[string]RecipeRef

// Collection is a named, user-owned group of recipes. Recipes is populated by
// a separate membership lookup and merged in memory; it is not stored inline.
type Collection struct {
	ID            string      `json:"id" bson:"_id"`
	UserID        string      `json:"user_id" bson:"user_id"`
	Title         string      `json:"title" bson:"title"`
	Description   string      `json:"description,omitempty" bson:"description,omitempty"`
	CoverImageURL string      `json:"cover_image_url,omitempty" bson:"cover_image_url,omitempty"`
	CreatedAt     int64       `json:"created_at" bson:"created_at"`
	UpdatedAt     int64       `json:"updated_at" bson:"updated_at"`
	Recipes       []RecipeRef `json:"recipes,omitempty" bson:"-"`
}

// CollectionMembership links a collection to a recipe. Unique per
// (collection_id, recipe_id); created on add, destroyed on remove, never updated.
type CollectionMembership struct {
	ID           string `json:"id" bson:"_id"`
	CollectionID string `json:"collection_id" bson:"collection_id"`
	RecipeID     string `json:"recipe_id" bson:"recipe_id"`
	AddedAt      int64  `json:"added_at" bson:"added_at"`
}
