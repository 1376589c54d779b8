// Package provider is the HTTP client for the third-party recipe data API.
// Only the shapes consumed by the normalizer are decoded; everything else in
// the provider's documents is ignored.
package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"dishcovery/models"

	"golang.org/x/time/rate"
)

type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	limiter *rate.Limiter
}

// NewClient reads RECIPE_API_URL / RECIPE_API_KEY from the environment. The
// limiter keeps the daily API-key budget from being burned by a hot loop.
func NewClient() *Client {
	base := os.Getenv("RECIPE_API_URL")
	if base == "" {
		base = "https://api.spoonacular.com"
	}
	return &Client{
		baseURL: base,
		apiKey:  os.Getenv("RECIPE_API_KEY"),
		http:    &http.Client{Timeout: 10 * time.Second},
		limiter: rate.NewLimiter(rate.Limit(5), 5),
	}
}

// SearchOptions narrows a complex search.
type SearchOptions struct {
	Cuisine string
	Diet    string
	Type    string
	Number  int
}

// Search runs a complex search with recipe information included, so results
// carry the diet/health/time fields the tag derivation needs.
func (c *Client) Search(ctx context.Context, query string, opts SearchOptions) (*models.SearchResponse, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("addRecipeInformation", "true")
	number := opts.Number
	if number <= 0 {
		number = 10
	}
	params.Set("number", strconv.Itoa(number))
	if opts.Cuisine != "" {
		params.Set("cuisine", opts.Cuisine)
	}
	if opts.Diet != "" {
		params.Set("diet", opts.Diet)
	}
	if opts.Type != "" {
		params.Set("type", opts.Type)
	}

	var out models.SearchResponse
	if err := c.get(ctx, "/recipes/complexSearch", params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Detail fetches a single-recipe information document.
func (c *Client) Detail(ctx context.Context, id string) (*models.RawDetailResult, error) {
	var out models.RawDetailResult
	if err := c.get(ctx, "/recipes/"+url.PathEscape(id)+"/information", url.Values{}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Random fetches random recipes, optionally tag-filtered.
func (c *Client) Random(ctx context.Context, number int, tags string) ([]models.RawDetailResult, error) {
	params := url.Values{}
	if number <= 0 {
		number = 10
	}
	params.Set("number", strconv.Itoa(number))
	if tags != "" {
		params.Set("tags", tags)
	}

	var out struct {
		Recipes []models.RawDetailResult `json:"recipes"`
	}
	if err := c.get(ctx, "/recipes/random", params, &out); err != nil {
		return nil, err
	}
	return out.Recipes, nil
}

// FindByIngredients backs the fridge view: what can be cooked from what's on
// hand.
func (c *Client) FindByIngredients(ctx context.Context, ingredients []string, number int) ([]models.RawSearchResult, error) {
	params := url.Values{}
	params.Set("ingredients", strings.Join(ingredients, ","))
	if number <= 0 {
		number = 10
	}
	params.Set("number", strconv.Itoa(number))

	var out []models.RawSearchResult
	if err := c.get(ctx, "/recipes/findByIngredients", params, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Autocomplete returns title suggestions for a partial query.
func (c *Client) Autocomplete(ctx context.Context, query string, number int) ([]models.RawSearchResult, error) {
	params := url.Values{}
	params.Set("query", query)
	if number <= 0 {
		number = 5
	}
	params.Set("number", strconv.Itoa(number))

	var out []models.RawSearchResult
	if err := c.get(ctx, "/recipes/autocomplete", params, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Nutrition returns the provider's nutrition widget document untouched; the
// core never interprets it, the detail view renders it as-is.
func (c *Client) Nutrition(ctx context.Context, id string) (json.RawMessage, error) {
	var out json.RawMessage
	if err := c.get(ctx, "/recipes/"+url.PathEscape(id)+"/nutritionWidget.json", url.Values{}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	params.Set("apiKey", c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("provider returned %d for %s", resp.StatusCode, path)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
