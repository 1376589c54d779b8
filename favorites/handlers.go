package favorites

import (
	"encoding/json"
	"net/http"

	"dishcovery/normalize"
	"dishcovery/utils"

	"github.com/julienschmidt/httprouter"
)

// DefaultStore backs the HTTP surface. Anonymous requests land in the guest
// bucket via OptionalAuth.
var DefaultStore = NewStore(RedisBackend{})

func GetFavorites(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	utils.RespondWithJSON(w, http.StatusOK, DefaultStore.Load(userID))
}

func ToggleFavorite(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var src normalize.Source
	if err := json.NewDecoder(r.Body).Decode(&src); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	ref, ok := normalize.FromSource(src)
	if !ok {
		http.Error(w, "Missing recipe payload", http.StatusBadRequest)
		return
	}
	if ref.ID == "" {
		http.Error(w, "Recipe id is required", http.StatusBadRequest)
		return
	}

	userID := utils.GetUserIDFromRequest(r)
	favs := DefaultStore.Toggle(userID, ref)
	_, liked := favs[ref.ID]

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"liked":     liked,
		"favorites": favs,
	})
}

func RemoveFavorite(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	favs := DefaultStore.Remove(userID, ps.ByName("id"))
	utils.RespondWithJSON(w, http.StatusOK, favs)
}
