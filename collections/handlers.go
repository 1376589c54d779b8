package collections

import (
	"encoding/json"
	"errors"
	"net/http"

	"dishcovery/normalize"
	"dishcovery/utils"

	"github.com/julienschmidt/httprouter"
)

// ownedCollection resolves the collection and checks the acting identity owns
// it. A foreign collection reads as not-found so ids cannot be probed.
func ownedCollection(w http.ResponseWriter, r *http.Request, id string) (string, bool) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return "", false
	}
	col := GetCollection(r.Context(), id)
	if col == nil || col.UserID != userID {
		http.Error(w, "Collection not found", http.StatusNotFound)
		return "", false
	}
	return userID, true
}

func GetCollections(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, ListCollections(r.Context(), userID))
}

func GetOneCollection(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")
	if _, ok := ownedCollection(w, r, id); !ok {
		return
	}
	col := GetCollection(r.Context(), id)
	if col == nil {
		http.Error(w, "Collection not found", http.StatusNotFound)
		return
	}
	col.Recipes = ListCollectionRecipes(r.Context(), id)
	utils.RespondWithJSON(w, http.StatusOK, col)
}

func GetRecipesInCollection(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")
	if _, ok := ownedCollection(w, r, id); !ok {
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, ListCollectionRecipes(r.Context(), id))
}

func CreateCollectionHandler(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		Title         string `json:"title"`
		Description   string `json:"description"`
		CoverImageURL string `json:"cover_image_url"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	userID := utils.GetUserIDFromRequest(r)
	col, err := CreateCollection(r.Context(), userID, userID, input.Title, input.Description, input.CoverImageURL)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, col)
}

func UpdateCollectionHandler(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")
	if _, ok := ownedCollection(w, r, id); !ok {
		return
	}

	var updates CollectionUpdate
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	col, err := UpdateCollection(r.Context(), id, updates)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, col)
}

func DeleteCollectionHandler(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")
	if _, ok := ownedCollection(w, r, id); !ok {
		return
	}
	if !DeleteCollection(r.Context(), id) {
		http.Error(w, "Failed to delete collection", http.StatusInternalServerError)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"deleted": true})
}

func AddRecipeHandler(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")
	if _, ok := ownedCollection(w, r, id); !ok {
		return
	}

	var src normalize.Source
	if err := json.NewDecoder(r.Body).Decode(&src); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	ref, ok := normalize.FromSource(src)
	if !ok || ref.ID == "" {
		http.Error(w, "Missing recipe payload", http.StatusBadRequest)
		return
	}

	if !AddRecipeToCollection(r.Context(), id, ref) {
		http.Error(w, "Failed to add recipe", http.StatusInternalServerError)
		return
	}
	// callers reload the collection after a mutation rather than patching
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"added": true})
}

func RemoveRecipeHandler(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")
	if _, ok := ownedCollection(w, r, id); !ok {
		return
	}
	if !RemoveRecipeFromCollection(r.Context(), id, ps.ByName("recipeId")) {
		http.Error(w, "Failed to remove recipe", http.StatusInternalServerError)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"removed": true})
}

func respondStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrAuthRequired):
		http.Error(w, err.Error(), http.StatusUnauthorized)
	case errors.Is(err, ErrValidation):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		http.Error(w, "Something went wrong, please retry", http.StatusInternalServerError)
	}
}
