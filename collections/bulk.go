package collections

import (
	"encoding/json"
	"net/http"

	"dishcovery/normalize"
	"dishcovery/utils"

	"github.com/julienschmidt/httprouter"
)

// Bulk operations are best-effort: one call per (collection, recipe) pair,
// all settled before responding, no rollback on partial failure. The response
// carries a failure count and the caller re-derives true state with a full
// reload instead of trusting in-memory deltas.

func BulkRemoveRecipes(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")
	if _, ok := ownedCollection(w, r, id); !ok {
		return
	}

	var input struct {
		RecipeIDs []string `json:"recipeIds"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	if len(input.RecipeIDs) == 0 {
		http.Error(w, "No recipes selected", http.StatusBadRequest)
		return
	}

	failed := 0
	for _, recipeID := range input.RecipeIDs {
		if !RemoveRecipeFromCollection(r.Context(), id, recipeID) {
			failed++
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"requested": len(input.RecipeIDs),
		"failed":    failed,
		"recipes":   ListCollectionRecipes(r.Context(), id),
	})
}

func AddRecipeToCollections(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var input struct {
		CollectionIDs []string         `json:"collectionIds"`
		Recipe        normalize.Source `json:"recipe"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	ref, ok := normalize.FromSource(input.Recipe)
	if !ok || ref.ID == "" {
		http.Error(w, "Missing recipe payload", http.StatusBadRequest)
		return
	}
	if len(input.CollectionIDs) == 0 {
		http.Error(w, "No collections selected", http.StatusBadRequest)
		return
	}

	failed := 0
	for _, collectionID := range input.CollectionIDs {
		col := GetCollection(r.Context(), collectionID)
		if col == nil || col.UserID != userID {
			failed++
			continue
		}
		if !AddRecipeToCollection(r.Context(), collectionID, ref) {
			failed++
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"requested": len(input.CollectionIDs),
		"failed":    failed,
	})
}
