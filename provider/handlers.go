package provider

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"dishcovery/models"
	"dishcovery/normalize"
	"dishcovery/utils"

	"github.com/julienschmidt/httprouter"
)

var DefaultClient = NewClient()

// SearchRecipes proxies a complex search for the explore view and returns
// normalized refs alongside the raw results so favoriting does not need a
// second lookup.
func SearchRecipes(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	q := r.URL.Query()
	number, _ := strconv.Atoi(q.Get("number"))

	resp, err := DefaultClient.Search(r.Context(), q.Get("query"), SearchOptions{
		Cuisine: q.Get("cuisine"),
		Diet:    q.Get("diet"),
		Type:    q.Get("type"),
		Number:  number,
	})
	if err != nil {
		log.Printf("provider: search failed: %v", err)
		http.Error(w, "Recipe search is unavailable, please retry", http.StatusBadGateway)
		return
	}

	refs := make([]models.RecipeRef, 0, len(resp.Results))
	for _, raw := range resp.Results {
		refs = append(refs, normalize.FromSearchResult(raw))
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"results":      refs,
		"raw":          resp.Results,
		"totalResults": resp.TotalResults,
	})
}

func RandomRecipes(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	number, _ := strconv.Atoi(r.URL.Query().Get("number"))
	recipes, err := DefaultClient.Random(r.Context(), number, r.URL.Query().Get("tags"))
	if err != nil {
		log.Printf("provider: random failed: %v", err)
		http.Error(w, "Recipe search is unavailable, please retry", http.StatusBadGateway)
		return
	}

	refs := make([]models.RecipeRef, 0, len(recipes))
	for _, raw := range recipes {
		refs = append(refs, normalize.FromDetail(raw))
	}
	utils.RespondWithJSON(w, http.StatusOK, refs)
}

func AutocompleteRecipes(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	number, _ := strconv.Atoi(r.URL.Query().Get("number"))
	results, err := DefaultClient.Autocomplete(r.Context(), r.URL.Query().Get("query"), number)
	if err != nil {
		log.Printf("provider: autocomplete failed: %v", err)
		utils.RespondWithJSON(w, http.StatusOK, []models.RawSearchResult{})
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, results)
}

// FridgeSearch finds recipes cookable from the given ingredient list.
func FridgeSearch(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	raw := strings.TrimSpace(r.URL.Query().Get("ingredients"))
	if raw == "" {
		http.Error(w, "Ingredients are required", http.StatusBadRequest)
		return
	}

	var ingredients []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			ingredients = append(ingredients, p)
		}
	}

	number, _ := strconv.Atoi(r.URL.Query().Get("number"))
	results, err := DefaultClient.FindByIngredients(r.Context(), ingredients, number)
	if err != nil {
		log.Printf("provider: fridge search failed: %v", err)
		http.Error(w, "Recipe search is unavailable, please retry", http.StatusBadGateway)
		return
	}

	refs := make([]models.RecipeRef, 0, len(results))
	for _, res := range results {
		refs = append(refs, normalize.FromSearchResult(res))
	}
	utils.RespondWithJSON(w, http.StatusOK, refs)
}

func GetRecipeDetail(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	detail, err := DefaultClient.Detail(r.Context(), ps.ByName("id"))
	if err != nil {
		log.Printf("provider: detail failed: %v", err)
		http.Error(w, "Recipe not found", http.StatusNotFound)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"ref": normalize.FromDetail(*detail),
		"raw": detail,
	})
}

func GetRecipeNutrition(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	nutrition, err := DefaultClient.Nutrition(r.Context(), ps.ByName("id"))
	if err != nil {
		log.Printf("provider: nutrition failed: %v", err)
		http.Error(w, "Nutrition data unavailable", http.StatusBadGateway)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(nutrition)
}
